package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var updateSyncBlocker = op[cs.UpdateSyncBlockerInput, cs.UpdateSyncBlockerOutput]{
	Name:     "UpdateSyncBlocker",
	Required: []string{"Id", "ResolvedReason", "ResourceName", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.UpdateSyncBlockerInput) (*cs.UpdateSyncBlockerOutput, error) {
		return c.UpdateSyncBlocker(ctx, in)
	},
}

func newUpdateSyncBlockerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-sync-blocker [ID]",
		Short: "Resolve a sync blocker",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "id")
			if err != nil {
				return err
			}
			return run(cmd, updateSyncBlocker, &cs.UpdateSyncBlockerInput{
				Id:             id,
				ResolvedReason: cli.String(cmd, "resolved-reason"),
				ResourceName:   cli.String(cmd, "resource-name"),
				SyncType:       cli.Enum[types.SyncConfigurationType](cmd, "sync-type"),
			})
		},
	}

	cmd.Flags().String("id", "", "ID of the sync blocker")
	cmd.Flags().String("resolved-reason", "", "reason the blocker is resolved")
	cmd.Flags().String("resource-name", "", "name of the blocked resource")
	addSyncTypeFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
