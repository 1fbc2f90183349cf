package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var createRepositoryLink = op[cs.CreateRepositoryLinkInput, cs.CreateRepositoryLinkOutput]{
	Name:     "CreateRepositoryLink",
	Required: []string{"ConnectionArn", "OwnerId", "RepositoryName"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.CreateRepositoryLinkInput) (*cs.CreateRepositoryLinkOutput, error) {
		return c.CreateRepositoryLink(ctx, in)
	},
	Default: func(_ *cs.CreateRepositoryLinkInput, out *cs.CreateRepositoryLinkOutput) any { return out.RepositoryLinkInfo },
}

func newCreateRepositoryLinkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-repository-link",
		Short: "Link a repository to a connection",
		Long: `Create a link between a connection and an external repository so that sync
configurations can track it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, createRepositoryLink, &cs.CreateRepositoryLinkInput{
				ConnectionArn:    cli.String(cmd, "connection-arn"),
				OwnerId:          cli.String(cmd, "owner-id"),
				RepositoryName:   cli.String(cmd, "repository-name"),
				EncryptionKeyArn: cli.String(cmd, "encryption-key-arn"),
				Tags:             tagList(cli.StringMap(cmd, cli.FlagTags)),
			})
		},
	}

	cmd.Flags().String("connection-arn", "", "ARN of the connection the repository is reached through")
	cmd.Flags().String("owner-id", "", "owner of the repository (user or organization)")
	cmd.Flags().String("repository-name", "", "name of the repository")
	cmd.Flags().String("encryption-key-arn", "", "KMS key used to encrypt the link")
	cli.AddTagsFlag(cmd, "tags to apply to the repository link")
	cli.AddSelectFlag(cmd)

	return cmd
}
