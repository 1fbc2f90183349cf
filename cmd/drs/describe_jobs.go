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

var describeJobs = op[drsapi.DescribeJobsInput, drsapi.DescribeJobsOutput]{
	Name: "DescribeJobs",
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DescribeJobsInput) (*drsapi.DescribeJobsOutput, error) {
		return c.DescribeJobs(ctx, in)
	},
	Default: func(_ *drsapi.DescribeJobsInput, out *drsapi.DescribeJobsOutput) any { return out.Items },
	Paging: &operation.Paging[drsapi.DescribeJobsInput, drsapi.DescribeJobsOutput]{
		SetToken:  func(in *drsapi.DescribeJobsInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.DescribeJobsOutput) *string { return out.NextToken },
	},
}

func newDescribeJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe-jobs [JOB_ID...]",
		Aliases: []string{"jobs"},
		Short:   "List recovery, drill and failback jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &drsapi.DescribeJobsInput{MaxResults: cli.Int32(cmd, cli.FlagMaxResults)}

			ids := identifiers(cmd, args, "job-ids")
			from := cli.String(cmd, "from-date")
			to := cli.String(cmd, "to-date")
			if len(ids) > 0 || from != nil || to != nil {
				in.Filters = &types.DescribeJobsRequestFilters{JobIDs: ids, FromDate: from, ToDate: to}
			}

			return run(cmd, describeJobs, in)
		},
	}

	cmd.Flags().StringSlice("job-ids", nil, "only list these jobs")
	cmd.Flags().String("from-date", "", "only list jobs created at or after this ISO 8601 time")
	cmd.Flags().String("to-date", "", "only list jobs created at or before this ISO 8601 time")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
