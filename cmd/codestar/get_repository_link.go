package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getRepositoryLink = op[cs.GetRepositoryLinkInput, cs.GetRepositoryLinkOutput]{
	Name:     "GetRepositoryLink",
	Required: []string{"RepositoryLinkId"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.GetRepositoryLinkInput) (*cs.GetRepositoryLinkOutput, error) {
		return c.GetRepositoryLink(ctx, in)
	},
	Default: func(_ *cs.GetRepositoryLinkInput, out *cs.GetRepositoryLinkOutput) any { return out.RepositoryLinkInfo },
}

func newGetRepositoryLinkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-repository-link [REPOSITORY_LINK_ID]",
		Short: "Show a repository link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "repository-link-id")
			if err != nil {
				return err
			}
			return run(cmd, getRepositoryLink, &cs.GetRepositoryLinkInput{RepositoryLinkId: id})
		},
	}

	cmd.Flags().String("repository-link-id", "", "ID of the repository link")
	cli.AddSelectFlag(cmd)

	return cmd
}
