package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getResourceSyncStatus = op[cs.GetResourceSyncStatusInput, cs.GetResourceSyncStatusOutput]{
	Name:     "GetResourceSyncStatus",
	Required: []string{"ResourceName", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.GetResourceSyncStatusInput) (*cs.GetResourceSyncStatusOutput, error) {
		return c.GetResourceSyncStatus(ctx, in)
	},
}

func newGetResourceSyncStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-resource-sync-status [RESOURCE_NAME]",
		Short: "Show the desired state and latest syncs of a resource",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cli.Identifier(cmd, args, "resource-name")
			if err != nil {
				return err
			}
			return run(cmd, getResourceSyncStatus, &cs.GetResourceSyncStatusInput{
				ResourceName: name,
				SyncType:     cli.Enum[types.SyncConfigurationType](cmd, "sync-type"),
			})
		},
	}

	cmd.Flags().String("resource-name", "", "name of the synced resource")
	addSyncTypeFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
