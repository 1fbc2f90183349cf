package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var listHosts = op[cs.ListHostsInput, cs.ListHostsOutput]{
	Name: "ListHosts",
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.ListHostsInput) (*cs.ListHostsOutput, error) {
		return c.ListHosts(ctx, in)
	},
	Default: func(_ *cs.ListHostsInput, out *cs.ListHostsOutput) any { return out.Hosts },
	Paging: &operation.Paging[cs.ListHostsInput, cs.ListHostsOutput]{
		SetToken:  func(in *cs.ListHostsInput, token *string) { in.NextToken = token },
		NextToken: func(out *cs.ListHostsOutput) *string { return out.NextToken },
	},
}

func newListHostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list-hosts",
		Aliases: []string{"hosts"},
		Short:   "List hosts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, listHosts, &cs.ListHostsInput{
				MaxResults: cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
