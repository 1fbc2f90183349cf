package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var updateRepositoryLink = op[cs.UpdateRepositoryLinkInput, cs.UpdateRepositoryLinkOutput]{
	Name:     "UpdateRepositoryLink",
	Required: []string{"RepositoryLinkId"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.UpdateRepositoryLinkInput) (*cs.UpdateRepositoryLinkOutput, error) {
		return c.UpdateRepositoryLink(ctx, in)
	},
	Default: func(_ *cs.UpdateRepositoryLinkInput, out *cs.UpdateRepositoryLinkOutput) any { return out.RepositoryLinkInfo },
}

func newUpdateRepositoryLinkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-repository-link [REPOSITORY_LINK_ID]",
		Short: "Change the connection or encryption key of a repository link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "repository-link-id")
			if err != nil {
				return err
			}
			return run(cmd, updateRepositoryLink, &cs.UpdateRepositoryLinkInput{
				RepositoryLinkId: id,
				ConnectionArn:    cli.String(cmd, "connection-arn"),
				EncryptionKeyArn: cli.String(cmd, "encryption-key-arn"),
			})
		},
	}

	cmd.Flags().String("repository-link-id", "", "ID of the repository link")
	cmd.Flags().String("connection-arn", "", "ARN of the new connection")
	cmd.Flags().String("encryption-key-arn", "", "ARN of the new KMS key")
	cli.AddSelectFlag(cmd)

	return cmd
}
