package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var listConnections = op[cs.ListConnectionsInput, cs.ListConnectionsOutput]{
	Name: "ListConnections",
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.ListConnectionsInput) (*cs.ListConnectionsOutput, error) {
		return c.ListConnections(ctx, in)
	},
	Default: func(_ *cs.ListConnectionsInput, out *cs.ListConnectionsOutput) any { return out.Connections },
	Paging: &operation.Paging[cs.ListConnectionsInput, cs.ListConnectionsOutput]{
		SetToken:  func(in *cs.ListConnectionsInput, token *string) { in.NextToken = token },
		NextToken: func(out *cs.ListConnectionsOutput) *string { return out.NextToken },
	},
}

func newListConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list-connections",
		Aliases: []string{"connections"},
		Short:   "List connections",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, listConnections, &cs.ListConnectionsInput{
				HostArnFilter:      cli.String(cmd, "host-arn-filter"),
				ProviderTypeFilter: cli.Enum[types.ProviderType](cmd, "provider-type-filter"),
				MaxResults:         cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cmd.Flags().String("host-arn-filter", "", "only list connections of this host")
	cli.AddEnumFlag[types.ProviderType](cmd, "provider-type-filter", "only list connections to this provider")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
