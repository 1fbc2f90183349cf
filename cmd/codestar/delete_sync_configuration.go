package codestar

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var deleteSyncConfiguration = op[cs.DeleteSyncConfigurationInput, cs.DeleteSyncConfigurationOutput]{
	Name:     "DeleteSyncConfiguration",
	Required: []string{"ResourceName", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.DeleteSyncConfigurationInput) (*cs.DeleteSyncConfigurationOutput, error) {
		return c.DeleteSyncConfiguration(ctx, in)
	},
	Default: operation.Nothing[cs.DeleteSyncConfigurationInput, cs.DeleteSyncConfigurationOutput](),
}

func newDeleteSyncConfigurationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-sync-configuration [RESOURCE_NAME]",
		Short: "Delete a sync configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cli.Identifier(cmd, args, "resource-name")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete sync configuration", aws.ToString(name)) {
				return nil
			}
			return run(cmd, deleteSyncConfiguration, &cs.DeleteSyncConfigurationInput{
				ResourceName: name,
				SyncType:     cli.Enum[types.SyncConfigurationType](cmd, "sync-type"),
			})
		},
	}

	cmd.Flags().String("resource-name", "", "name of the synced resource")
	addSyncTypeFlag(cmd)
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
