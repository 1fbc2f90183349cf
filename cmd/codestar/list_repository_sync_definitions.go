package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var listRepositorySyncDefinitions = op[cs.ListRepositorySyncDefinitionsInput, cs.ListRepositorySyncDefinitionsOutput]{
	Name:     "ListRepositorySyncDefinitions",
	Required: []string{"RepositoryLinkId", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.ListRepositorySyncDefinitionsInput) (*cs.ListRepositorySyncDefinitionsOutput, error) {
		return c.ListRepositorySyncDefinitions(ctx, in)
	},
	Default: func(_ *cs.ListRepositorySyncDefinitionsInput, out *cs.ListRepositorySyncDefinitionsOutput) any {
		return out.RepositorySyncDefinitions
	},
}

func newListRepositorySyncDefinitionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-repository-sync-definitions [REPOSITORY_LINK_ID]",
		Short: "List the branches and files synced from a repository link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "repository-link-id")
			if err != nil {
				return err
			}
			return run(cmd, listRepositorySyncDefinitions, &cs.ListRepositorySyncDefinitionsInput{
				RepositoryLinkId: id,
				SyncType:         cli.Enum[types.SyncConfigurationType](cmd, "sync-type"),
			})
		},
	}

	cmd.Flags().String("repository-link-id", "", "ID of the repository link")
	addSyncTypeFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
