// Package codestar holds the commands wrapping the AWS CodeStar Connections API, one file
// per API operation.
//
// Unlike the top-level commands in package cmd, which are package-level variables registered
// from init, every command here is built by a newXxxCommand constructor. NewCommand therefore
// returns an independent tree with fresh flag state on each call.
package codestar

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

// op is an operation against the CodeStar Connections API.
type op[In, Out any] = operation.Operation[awsclient.CodeStarAPI, In, Out]

// Cmd is the root command for CodeStar Connections operations
var Cmd = NewCommand()

// NewCommand creates the codestar command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "codestar",
		Aliases: []string{"codestar-connections", "csc"},
		Short:   "AWS CodeStar Connections commands",
		Long: `Manage AWS CodeStar Connections: connections to third-party source providers, hosts
for self-managed providers, repository links and Git sync configurations.

Examples:
  awsctl codestar list-connections --provider-type-filter GitHub
  awsctl codestar get-connection arn:aws:codestar-connections:eu-west-1:111122223333:connection/abc
  awsctl codestar create-host --name gitlab --provider-type GitLabSelfManaged --provider-endpoint https://gitlab.example.com`,
	}

	cmd.AddCommand(
		newCreateConnectionCommand(),
		newDeleteConnectionCommand(),
		newGetConnectionCommand(),
		newListConnectionsCommand(),
		newCreateHostCommand(),
		newDeleteHostCommand(),
		newGetHostCommand(),
		newListHostsCommand(),
		newUpdateHostCommand(),
		newCreateRepositoryLinkCommand(),
		newDeleteRepositoryLinkCommand(),
		newGetRepositoryLinkCommand(),
		newListRepositoryLinksCommand(),
		newUpdateRepositoryLinkCommand(),
		newCreateSyncConfigurationCommand(),
		newDeleteSyncConfigurationCommand(),
		newGetSyncConfigurationCommand(),
		newListSyncConfigurationsCommand(),
		newUpdateSyncConfigurationCommand(),
		newListRepositorySyncDefinitionsCommand(),
		newGetRepositorySyncStatusCommand(),
		newGetResourceSyncStatusCommand(),
		newGetSyncBlockerSummaryCommand(),
		newUpdateSyncBlockerCommand(),
		newListTagsCommand(),
		newTagResourceCommand(),
		newUntagResourceCommand(),
	)

	return cmd
}

// newClient returns the client commands run against. Tests replace it with a fake.
var newClient = func(ctx context.Context) (awsclient.CodeStarAPI, error) {
	c, err := cli.NewAWSClient(ctx)
	if err != nil {
		return nil, err
	}
	return c.CodeStar, nil
}

func run[In, Out any](cmd *cobra.Command, o op[In, Out], in *In) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	return cli.Run(cmd, o, client, in)
}

// tagList converts --tags into the API's tag list, ordered by key.
func tagList(m map[string]string) []types.Tag {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, types.Tag{Key: aws.String(k), Value: aws.String(m[k])})
	}
	return tags
}

// vpcConfiguration builds the host VPC settings from the --vpc-* flags, or nil when none is set.
func vpcConfiguration(cmd *cobra.Command) *types.VpcConfiguration {
	vpcID := cli.String(cmd, "vpc-id")
	subnets := cli.Strings(cmd, "subnet-ids")
	groups := cli.Strings(cmd, "security-group-ids")
	cert := cli.String(cmd, "tls-certificate")
	if vpcID == nil && len(subnets) == 0 && len(groups) == 0 && cert == nil {
		return nil
	}
	return &types.VpcConfiguration{
		VpcId:            vpcID,
		SubnetIds:        subnets,
		SecurityGroupIds: groups,
		TlsCertificate:   cert,
	}
}

func addVpcFlags(cmd *cobra.Command) {
	cmd.Flags().String("vpc-id", "", "ID of the VPC the host is reachable from")
	cmd.Flags().StringSlice("subnet-ids", nil, "subnet IDs for the host's VPC configuration")
	cmd.Flags().StringSlice("security-group-ids", nil, "security group IDs for the host's VPC configuration")
	cmd.Flags().String("tls-certificate", "", "TLS certificate of the provider endpoint")
}

func addSyncTypeFlag(cmd *cobra.Command) {
	cli.AddEnumFlag[types.SyncConfigurationType](cmd, "sync-type", "type of sync configuration")
}
