package codestar

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var deleteRepositoryLink = op[cs.DeleteRepositoryLinkInput, cs.DeleteRepositoryLinkOutput]{
	Name:     "DeleteRepositoryLink",
	Required: []string{"RepositoryLinkId"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.DeleteRepositoryLinkInput) (*cs.DeleteRepositoryLinkOutput, error) {
		return c.DeleteRepositoryLink(ctx, in)
	},
	Default: operation.Nothing[cs.DeleteRepositoryLinkInput, cs.DeleteRepositoryLinkOutput](),
}

func newDeleteRepositoryLinkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-repository-link [REPOSITORY_LINK_ID]",
		Short: "Delete a repository link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "repository-link-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete repository link", aws.ToString(id)) {
				return nil
			}
			return run(cmd, deleteRepositoryLink, &cs.DeleteRepositoryLinkInput{RepositoryLinkId: id})
		},
	}

	cmd.Flags().String("repository-link-id", "", "ID of the repository link to delete")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
