package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getSyncConfiguration = op[cs.GetSyncConfigurationInput, cs.GetSyncConfigurationOutput]{
	Name:     "GetSyncConfiguration",
	Required: []string{"ResourceName", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.GetSyncConfigurationInput) (*cs.GetSyncConfigurationOutput, error) {
		return c.GetSyncConfiguration(ctx, in)
	},
	Default: func(_ *cs.GetSyncConfigurationInput, out *cs.GetSyncConfigurationOutput) any { return out.SyncConfiguration },
}

func newGetSyncConfigurationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-sync-configuration [RESOURCE_NAME]",
		Short: "Show the sync configuration of a resource",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cli.Identifier(cmd, args, "resource-name")
			if err != nil {
				return err
			}
			return run(cmd, getSyncConfiguration, &cs.GetSyncConfigurationInput{
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
