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

var describeSourceNetworks = op[drsapi.DescribeSourceNetworksInput, drsapi.DescribeSourceNetworksOutput]{
	Name: "DescribeSourceNetworks",
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DescribeSourceNetworksInput) (*drsapi.DescribeSourceNetworksOutput, error) {
		return c.DescribeSourceNetworks(ctx, in)
	},
	Default: func(_ *drsapi.DescribeSourceNetworksInput, out *drsapi.DescribeSourceNetworksOutput) any { return out.Items },
	Paging: &operation.Paging[drsapi.DescribeSourceNetworksInput, drsapi.DescribeSourceNetworksOutput]{
		SetToken:  func(in *drsapi.DescribeSourceNetworksInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.DescribeSourceNetworksOutput) *string { return out.NextToken },
	},
}

func newDescribeSourceNetworksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe-source-networks [SOURCE_NETWORK_ID...]",
		Aliases: []string{"source-networks"},
		Short:   "List source networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &drsapi.DescribeSourceNetworksInput{MaxResults: cli.Int32(cmd, cli.FlagMaxResults)}

			ids := identifiers(cmd, args, "source-network-ids")
			account := cli.String(cmd, "origin-account-id")
			region := cli.String(cmd, "origin-region")
			if len(ids) > 0 || account != nil || region != nil {
				in.Filters = &types.DescribeSourceNetworksRequestFilters{
					SourceNetworkIDs: ids,
					OriginAccountID:  account,
					OriginRegion:     region,
				}
			}

			return run(cmd, describeSourceNetworks, in)
		},
	}

	cmd.Flags().StringSlice("source-network-ids", nil, "only list these source networks")
	cmd.Flags().String("origin-account-id", "", "only list networks from this account")
	cmd.Flags().String("origin-region", "", "only list networks from this region")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
