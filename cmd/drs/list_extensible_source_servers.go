package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var listExtensibleSourceServers = op[drsapi.ListExtensibleSourceServersInput, drsapi.ListExtensibleSourceServersOutput]{
	Name:     "ListExtensibleSourceServers",
	Required: []string{"StagingAccountID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.ListExtensibleSourceServersInput) (*drsapi.ListExtensibleSourceServersOutput, error) {
		return c.ListExtensibleSourceServers(ctx, in)
	},
	Default: func(_ *drsapi.ListExtensibleSourceServersInput, out *drsapi.ListExtensibleSourceServersOutput) any { return out.Items },
	Paging: &operation.Paging[drsapi.ListExtensibleSourceServersInput, drsapi.ListExtensibleSourceServersOutput]{
		SetToken:  func(in *drsapi.ListExtensibleSourceServersInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.ListExtensibleSourceServersOutput) *string { return out.NextToken },
	},
}

func newListExtensibleSourceServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-extensible-source-servers [STAGING_ACCOUNT_ID]",
		Short: "List source servers of a staging account that can be extended into this account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "staging-account-id")
			if err != nil {
				return err
			}
			return run(cmd, listExtensibleSourceServers, &drsapi.ListExtensibleSourceServersInput{
				StagingAccountID: id,
				MaxResults:       cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cmd.Flags().String("staging-account-id", "", "ID of the staging account")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
