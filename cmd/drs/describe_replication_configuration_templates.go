package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var describeReplicationConfigurationTemplates = op[drsapi.DescribeReplicationConfigurationTemplatesInput, drsapi.DescribeReplicationConfigurationTemplatesOutput]{
	Name: "DescribeReplicationConfigurationTemplates",
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DescribeReplicationConfigurationTemplatesInput) (*drsapi.DescribeReplicationConfigurationTemplatesOutput, error) {
		return c.DescribeReplicationConfigurationTemplates(ctx, in)
	},
	Default: func(_ *drsapi.DescribeReplicationConfigurationTemplatesInput, out *drsapi.DescribeReplicationConfigurationTemplatesOutput) any {
		return out.Items
	},
	Paging: &operation.Paging[drsapi.DescribeReplicationConfigurationTemplatesInput, drsapi.DescribeReplicationConfigurationTemplatesOutput]{
		SetToken:  func(in *drsapi.DescribeReplicationConfigurationTemplatesInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.DescribeReplicationConfigurationTemplatesOutput) *string { return out.NextToken },
	},
}

func newDescribeReplicationConfigurationTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe-replication-configuration-templates [TEMPLATE_ID...]",
		Aliases: []string{"replication-templates"},
		Short:   "List replication configuration templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, describeReplicationConfigurationTemplates, &drsapi.DescribeReplicationConfigurationTemplatesInput{
				ReplicationConfigurationTemplateIDs: identifiers(cmd, args, "replication-configuration-template-ids"),
				MaxResults:                          cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cmd.Flags().StringSlice("replication-configuration-template-ids", nil, "only list these templates")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
