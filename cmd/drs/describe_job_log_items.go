package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var describeJobLogItems = op[drsapi.DescribeJobLogItemsInput, drsapi.DescribeJobLogItemsOutput]{
	Name:     "DescribeJobLogItems",
	Required: []string{"JobID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DescribeJobLogItemsInput) (*drsapi.DescribeJobLogItemsOutput, error) {
		return c.DescribeJobLogItems(ctx, in)
	},
	Default: func(_ *drsapi.DescribeJobLogItemsInput, out *drsapi.DescribeJobLogItemsOutput) any { return out.Items },
	Paging: &operation.Paging[drsapi.DescribeJobLogItemsInput, drsapi.DescribeJobLogItemsOutput]{
		SetToken:  func(in *drsapi.DescribeJobLogItemsInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.DescribeJobLogItemsOutput) *string { return out.NextToken },
	},
}

func newDescribeJobLogItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe-job-log-items [JOB_ID]",
		Aliases: []string{"job-log"},
		Short:   "Show the event log of a job",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "job-id")
			if err != nil {
				return err
			}
			return run(cmd, describeJobLogItems, &drsapi.DescribeJobLogItemsInput{
				JobID:      id,
				MaxResults: cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cmd.Flags().String("job-id", "", "ID of the job")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
