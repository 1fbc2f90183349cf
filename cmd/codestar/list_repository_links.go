package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var listRepositoryLinks = op[cs.ListRepositoryLinksInput, cs.ListRepositoryLinksOutput]{
	Name: "ListRepositoryLinks",
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.ListRepositoryLinksInput) (*cs.ListRepositoryLinksOutput, error) {
		return c.ListRepositoryLinks(ctx, in)
	},
	Default: func(_ *cs.ListRepositoryLinksInput, out *cs.ListRepositoryLinksOutput) any { return out.RepositoryLinks },
	Paging: &operation.Paging[cs.ListRepositoryLinksInput, cs.ListRepositoryLinksOutput]{
		SetToken:  func(in *cs.ListRepositoryLinksInput, token *string) { in.NextToken = token },
		NextToken: func(out *cs.ListRepositoryLinksOutput) *string { return out.NextToken },
	},
}

func newListRepositoryLinksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list-repository-links",
		Aliases: []string{"repository-links"},
		Short:   "List repository links",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, listRepositoryLinks, &cs.ListRepositoryLinksInput{
				MaxResults: cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
