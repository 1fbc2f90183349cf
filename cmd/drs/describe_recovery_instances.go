package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/aws/aws-sdk-go-v2/service/drs/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var describeRecoveryInstances = op[drsapi.DescribeRecoveryInstancesInput, drsapi.DescribeRecoveryInstancesOutput]{
	Name: "DescribeRecoveryInstances",
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DescribeRecoveryInstancesInput) (*drsapi.DescribeRecoveryInstancesOutput, error) {
		return c.DescribeRecoveryInstances(ctx, in)
	},
	Default: func(_ *drsapi.DescribeRecoveryInstancesInput, out *drsapi.DescribeRecoveryInstancesOutput) any { return out.Items },
	Paging: &operation.Paging[drsapi.DescribeRecoveryInstancesInput, drsapi.DescribeRecoveryInstancesOutput]{
		SetToken:  func(in *drsapi.DescribeRecoveryInstancesInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.DescribeRecoveryInstancesOutput) *string { return out.NextToken },
	},
}

func newDescribeRecoveryInstancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe-recovery-instances [RECOVERY_INSTANCE_ID...]",
		Aliases: []string{"recovery-instances"},
		Short:   "List recovery instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &drsapi.DescribeRecoveryInstancesInput{MaxResults: cli.Int32(cmd, cli.FlagMaxResults)}

			ids := identifiers(cmd, args, "recovery-instance-ids")
			servers := cli.Strings(cmd, "source-server-ids")
			if len(ids) > 0 || len(servers) > 0 {
				in.Filters = &types.DescribeRecoveryInstancesRequestFilters{
					RecoveryInstanceIDs: ids,
					SourceServerIDs:     servers,
				}
			}

			return run(cmd, describeRecoveryInstances, in)
		},
	}

	cmd.Flags().StringSlice("recovery-instance-ids", nil, "only list these recovery instances")
	cmd.Flags().StringSlice("source-server-ids", nil, "only list recovery instances of these source servers")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
