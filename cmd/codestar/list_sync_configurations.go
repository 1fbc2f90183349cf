package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var listSyncConfigurations = op[cs.ListSyncConfigurationsInput, cs.ListSyncConfigurationsOutput]{
	Name:     "ListSyncConfigurations",
	Required: []string{"RepositoryLinkId", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.ListSyncConfigurationsInput) (*cs.ListSyncConfigurationsOutput, error) {
		return c.ListSyncConfigurations(ctx, in)
	},
	Default: func(_ *cs.ListSyncConfigurationsInput, out *cs.ListSyncConfigurationsOutput) any { return out.SyncConfigurations },
	Paging: &operation.Paging[cs.ListSyncConfigurationsInput, cs.ListSyncConfigurationsOutput]{
		SetToken:  func(in *cs.ListSyncConfigurationsInput, token *string) { in.NextToken = token },
		NextToken: func(out *cs.ListSyncConfigurationsOutput) *string { return out.NextToken },
	},
}

func newListSyncConfigurationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list-sync-configurations [REPOSITORY_LINK_ID]",
		Aliases: []string{"sync-configurations"},
		Short:   "List the sync configurations of a repository link",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "repository-link-id")
			if err != nil {
				return err
			}
			return run(cmd, listSyncConfigurations, &cs.ListSyncConfigurationsInput{
				RepositoryLinkId: id,
				SyncType:         cli.Enum[types.SyncConfigurationType](cmd, "sync-type"),
				MaxResults:       cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cmd.Flags().String("repository-link-id", "", "ID of the repository link")
	addSyncTypeFlag(cmd)
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
