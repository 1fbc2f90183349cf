package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var updateSyncConfiguration = op[cs.UpdateSyncConfigurationInput, cs.UpdateSyncConfigurationOutput]{
	Name:     "UpdateSyncConfiguration",
	Required: []string{"ResourceName", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.UpdateSyncConfigurationInput) (*cs.UpdateSyncConfigurationOutput, error) {
		return c.UpdateSyncConfiguration(ctx, in)
	},
	Default: func(_ *cs.UpdateSyncConfigurationInput, out *cs.UpdateSyncConfigurationOutput) any { return out.SyncConfiguration },
}

func newUpdateSyncConfigurationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-sync-configuration [RESOURCE_NAME]",
		Short: "Update a sync configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cli.Identifier(cmd, args, "resource-name")
			if err != nil {
				return err
			}
			return run(cmd, updateSyncConfiguration, &cs.UpdateSyncConfigurationInput{
				ResourceName:            name,
				SyncType:                cli.Enum[types.SyncConfigurationType](cmd, "sync-type"),
				Branch:                  cli.String(cmd, "branch"),
				ConfigFile:              cli.String(cmd, "config-file"),
				RepositoryLinkId:        cli.String(cmd, "repository-link-id"),
				RoleArn:                 cli.String(cmd, "role-arn"),
				PublishDeploymentStatus: cli.Enum[types.PublishDeploymentStatus](cmd, "publish-deployment-status"),
				TriggerResourceUpdateOn: cli.Enum[types.TriggerResourceUpdateOn](cmd, "trigger-resource-update-on"),
			})
		},
	}

	cmd.Flags().String("resource-name", "", "name of the synced resource")
	addSyncTypeFlag(cmd)
	cmd.Flags().String("branch", "", "branch to sync from")
	cmd.Flags().String("config-file", "", "path of the configuration file in the repository")
	cmd.Flags().String("repository-link-id", "", "ID of the repository link")
	cmd.Flags().String("role-arn", "", "IAM role the sync assumes")
	cli.AddEnumFlag[types.PublishDeploymentStatus](cmd, "publish-deployment-status", "publish deployment status to the provider")
	cli.AddEnumFlag[types.TriggerResourceUpdateOn](cmd, "trigger-resource-update-on", "which changes trigger a resource update")
	cli.AddSelectFlag(cmd)

	return cmd
}
