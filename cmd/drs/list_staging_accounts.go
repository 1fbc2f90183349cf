package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var listStagingAccounts = op[drsapi.ListStagingAccountsInput, drsapi.ListStagingAccountsOutput]{
	Name: "ListStagingAccounts",
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.ListStagingAccountsInput) (*drsapi.ListStagingAccountsOutput, error) {
		return c.ListStagingAccounts(ctx, in)
	},
	Default: func(_ *drsapi.ListStagingAccountsInput, out *drsapi.ListStagingAccountsOutput) any { return out.Accounts },
	Paging: &operation.Paging[drsapi.ListStagingAccountsInput, drsapi.ListStagingAccountsOutput]{
		SetToken:  func(in *drsapi.ListStagingAccountsInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.ListStagingAccountsOutput) *string { return out.NextToken },
	},
}

func newListStagingAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list-staging-accounts",
		Aliases: []string{"staging-accounts"},
		Short:   "List staging accounts that replicate into this account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, listStagingAccounts, &drsapi.ListStagingAccountsInput{
				MaxResults: cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
