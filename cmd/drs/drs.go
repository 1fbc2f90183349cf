// Package drs holds the commands wrapping the AWS Elastic Disaster Recovery API, one file per
// API operation.
//
// Unlike the top-level commands in package cmd, which are package-level variables registered
// from init, every command here is built by a newXxxCommand constructor. NewCommand therefore
// returns an independent tree with fresh flag state on each call.
package drs

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/drs/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

// op is an operation against the Elastic Disaster Recovery API.
type op[In, Out any] = operation.Operation[awsclient.DRSAPI, In, Out]

// Cmd is the root command for Elastic Disaster Recovery operations
var Cmd = NewCommand()

// NewCommand creates the drs command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "drs",
		Aliases: []string{"disaster-recovery"},
		Short:   "AWS Elastic Disaster Recovery commands",
		Long: `Manage AWS Elastic Disaster Recovery: source servers and their replication, recovery
and failback jobs, recovery instances, launch and replication settings, source networks and
staging accounts.

Examples:
  awsctl drs describe-source-servers --hardware-id i-0abc
  awsctl drs start-recovery --source-servers s-1111,s-2222=pit-3333 --is-drill
  awsctl drs describe-job-log-items drsjob-1234 -o yaml`,
	}

	cmd.AddCommand(
		newInitializeServiceCommand(),
		newDescribeSourceServersCommand(),
		newDeleteSourceServerCommand(),
		newDisconnectSourceServerCommand(),
		newStartReplicationCommand(),
		newStopReplicationCommand(),
		newDescribeJobsCommand(),
		newDescribeJobLogItemsCommand(),
		newDeleteJobCommand(),
		newStartRecoveryCommand(),
		newDescribeRecoveryInstancesCommand(),
		newDescribeRecoverySnapshotsCommand(),
		newDeleteRecoveryInstanceCommand(),
		newDisconnectRecoveryInstanceCommand(),
		newTerminateRecoveryInstancesCommand(),
		newStartFailbackLaunchCommand(),
		newStopFailbackCommand(),
		newReverseReplicationCommand(),
		newGetLaunchConfigurationCommand(),
		newUpdateLaunchConfigurationCommand(),
		newGetReplicationConfigurationCommand(),
		newDescribeLaunchConfigurationTemplatesCommand(),
		newDeleteLaunchConfigurationTemplateCommand(),
		newDescribeReplicationConfigurationTemplatesCommand(),
		newDeleteReplicationConfigurationTemplateCommand(),
		newDescribeSourceNetworksCommand(),
		newDeleteSourceNetworkCommand(),
		newListStagingAccountsCommand(),
		newListExtensibleSourceServersCommand(),
		newListTagsCommand(),
		newTagResourceCommand(),
		newUntagResourceCommand(),
	)

	return cmd
}

// newClient returns the client commands run against. Tests replace it with a fake.
var newClient = func(ctx context.Context) (awsclient.DRSAPI, error) {
	c, err := cli.NewAWSClient(ctx)
	if err != nil {
		return nil, err
	}
	return c.DRS, nil
}

func run[In, Out any](cmd *cobra.Command, o op[In, Out], in *In) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	return cli.Run(cmd, o, client, in)
}

// sourceServers parses --source-servers entries of the form ID or ID=SNAPSHOT_ID.
func sourceServers(entries []string) ([]types.StartRecoveryRequestSourceServer, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	servers := make([]types.StartRecoveryRequestSourceServer, 0, len(entries))
	for _, e := range entries {
		id, snapshot, hasSnapshot := strings.Cut(e, "=")
		if id == "" || (hasSnapshot && snapshot == "") {
			return nil, fmt.Errorf("invalid source server %q, expected ID or ID=SNAPSHOT_ID", e)
		}

		s := types.StartRecoveryRequestSourceServer{SourceServerID: aws.String(id)}
		if hasSnapshot {
			s.RecoverySnapshotID = aws.String(snapshot)
		}
		servers = append(servers, s)
	}
	return servers, nil
}

// identifiers returns the IDs given as positional arguments and through the named list flag.
func identifiers(cmd *cobra.Command, args []string, name string) []string {
	ids := cli.Strings(cmd, name)
	if len(args) == 0 {
		return ids
	}
	return append(append([]string{}, args...), ids...)
}
