package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var createSyncConfiguration = op[cs.CreateSyncConfigurationInput, cs.CreateSyncConfigurationOutput]{
	Name:     "CreateSyncConfiguration",
	Required: []string{"Branch", "ConfigFile", "RepositoryLinkId", "ResourceName", "RoleArn", "SyncType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.CreateSyncConfigurationInput) (*cs.CreateSyncConfigurationOutput, error) {
		return c.CreateSyncConfiguration(ctx, in)
	},
	Default: func(_ *cs.CreateSyncConfigurationInput, out *cs.CreateSyncConfigurationOutput) any { return out.SyncConfiguration },
}

func newCreateSyncConfigurationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-sync-configuration [RESOURCE_NAME]",
		Short: "Sync a resource from a file in a linked repository",
		Long: `Create a sync configuration that keeps an AWS resource, such as a CloudFormation
stack, in sync with a configuration file on a branch of a linked repository.

Examples:
  awsctl codestar create-sync-configuration my-stack --sync-type CFN_STACK_SYNC \
    --repository-link-id 6053346f-... --branch main --config-file deploy.yaml \
    --role-arn arn:aws:iam::111122223333:role/sync`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cli.Identifier(cmd, args, "resource-name")
			if err != nil {
				return err
			}
			return run(cmd, createSyncConfiguration, &cs.CreateSyncConfigurationInput{
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

	cmd.Flags().String("resource-name", "", "name of the AWS resource to sync")
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
