package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getRepositorySyncStatus = op[cs.GetRepositorySyncStatusInput, cs.GetRepositorySyncStatusOutput]{
	Name:     "GetRepositorySyncStatus",
	Required: []string{"Branch", "RepositoryLinkId", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.GetRepositorySyncStatusInput) (*cs.GetRepositorySyncStatusOutput, error) {
		return c.GetRepositorySyncStatus(ctx, in)
	},
	Default: func(_ *cs.GetRepositorySyncStatusInput, out *cs.GetRepositorySyncStatusOutput) any { return out.LatestSync },
}

func newGetRepositorySyncStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-repository-sync-status [REPOSITORY_LINK_ID]",
		Short: "Show the latest sync of a repository branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "repository-link-id")
			if err != nil {
				return err
			}
			return run(cmd, getRepositorySyncStatus, &cs.GetRepositorySyncStatusInput{
				RepositoryLinkId: id,
				Branch:           cli.String(cmd, "branch"),
				SyncType:         cli.Enum[types.SyncConfigurationType](cmd, "sync-type"),
			})
		},
	}

	cmd.Flags().String("repository-link-id", "", "ID of the repository link")
	cmd.Flags().String("branch", "", "branch of the repository")
	addSyncTypeFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
