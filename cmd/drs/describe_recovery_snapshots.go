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

var describeRecoverySnapshots = op[drsapi.DescribeRecoverySnapshotsInput, drsapi.DescribeRecoverySnapshotsOutput]{
	Name:     "DescribeRecoverySnapshots",
	Required: []string{"SourceServerID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DescribeRecoverySnapshotsInput) (*drsapi.DescribeRecoverySnapshotsOutput, error) {
		return c.DescribeRecoverySnapshots(ctx, in)
	},
	Default: func(_ *drsapi.DescribeRecoverySnapshotsInput, out *drsapi.DescribeRecoverySnapshotsOutput) any { return out.Items },
	Paging: &operation.Paging[drsapi.DescribeRecoverySnapshotsInput, drsapi.DescribeRecoverySnapshotsOutput]{
		SetToken:  func(in *drsapi.DescribeRecoverySnapshotsInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.DescribeRecoverySnapshotsOutput) *string { return out.NextToken },
	},
}

func newDescribeRecoverySnapshotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe-recovery-snapshots [SOURCE_SERVER_ID]",
		Aliases: []string{"snapshots"},
		Short:   "List the point-in-time snapshots of a source server",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-server-id")
			if err != nil {
				return err
			}

			in := &drsapi.DescribeRecoverySnapshotsInput{
				SourceServerID: id,
				Order:          cli.Enum[types.RecoverySnapshotsOrder](cmd, "order"),
				MaxResults:     cli.Int32(cmd, cli.FlagMaxResults),
			}
			from := cli.String(cmd, "from-date-time")
			to := cli.String(cmd, "to-date-time")
			if from != nil || to != nil {
				in.Filters = &types.DescribeRecoverySnapshotsRequestFilters{FromDateTime: from, ToDateTime: to}
			}

			return run(cmd, describeRecoverySnapshots, in)
		},
	}

	cmd.Flags().String("source-server-id", "", "ID of the source server")
	cmd.Flags().String("from-date-time", "", "only list snapshots taken at or after this ISO 8601 time")
	cmd.Flags().String("to-date-time", "", "only list snapshots taken at or before this ISO 8601 time")
	cli.AddEnumFlag[types.RecoverySnapshotsOrder](cmd, "order", "sort order by snapshot time")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
