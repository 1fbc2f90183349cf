package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getSyncBlockerSummary = op[cs.GetSyncBlockerSummaryInput, cs.GetSyncBlockerSummaryOutput]{
	Name:     "GetSyncBlockerSummary",
	Required: []string{"ResourceName", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.GetSyncBlockerSummaryInput) (*cs.GetSyncBlockerSummaryOutput, error) {
		return c.GetSyncBlockerSummary(ctx, in)
	},
	Default: func(_ *cs.GetSyncBlockerSummaryInput, out *cs.GetSyncBlockerSummaryOutput) any { return out.SyncBlockerSummary },
}

func newGetSyncBlockerSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-sync-blocker-summary [RESOURCE_NAME]",
		Short: "Show the blockers that stop a resource from syncing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cli.Identifier(cmd, args, "resource-name")
			if err != nil {
				return err
			}
			return run(cmd, getSyncBlockerSummary, &cs.GetSyncBlockerSummaryInput{
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
