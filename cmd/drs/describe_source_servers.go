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

var describeSourceServers = op[drsapi.DescribeSourceServersInput, drsapi.DescribeSourceServersOutput]{
	Name: "DescribeSourceServers",
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DescribeSourceServersInput) (*drsapi.DescribeSourceServersOutput, error) {
		return c.DescribeSourceServers(ctx, in)
	},
	Default: func(_ *drsapi.DescribeSourceServersInput, out *drsapi.DescribeSourceServersOutput) any { return out.Items },
	Paging: &operation.Paging[drsapi.DescribeSourceServersInput, drsapi.DescribeSourceServersOutput]{
		SetToken:  func(in *drsapi.DescribeSourceServersInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.DescribeSourceServersOutput) *string { return out.NextToken },
	},
}

func newDescribeSourceServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe-source-servers [SOURCE_SERVER_ID...]",
		Aliases: []string{"source-servers"},
		Short:   "List source servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &drsapi.DescribeSourceServersInput{MaxResults: cli.Int32(cmd, cli.FlagMaxResults)}

			ids := identifiers(cmd, args, "source-server-ids")
			hardware := cli.String(cmd, "hardware-id")
			staging := cli.Strings(cmd, "staging-account-ids")
			if len(ids) > 0 || hardware != nil || len(staging) > 0 {
				in.Filters = &types.DescribeSourceServersRequestFilters{
					SourceServerIDs:   ids,
					HardwareId:        hardware,
					StagingAccountIDs: staging,
				}
			}

			return run(cmd, describeSourceServers, in)
		},
	}

	cmd.Flags().StringSlice("source-server-ids", nil, "only list these source servers")
	cmd.Flags().String("hardware-id", "", "only list the source server with this hardware ID")
	cmd.Flags().StringSlice("staging-account-ids", nil, "only list source servers of these staging accounts")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
