package drs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var deleteSourceServer = op[drsapi.DeleteSourceServerInput, drsapi.DeleteSourceServerOutput]{
	Name:     "DeleteSourceServer",
	Required: []string{"SourceServerID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DeleteSourceServerInput) (*drsapi.DeleteSourceServerOutput, error) {
		return c.DeleteSourceServer(ctx, in)
	},
	Default: operation.Nothing[drsapi.DeleteSourceServerInput, drsapi.DeleteSourceServerOutput](),
}

func newDeleteSourceServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-source-server [SOURCE_SERVER_ID]",
		Short: "Delete a disconnected source server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-server-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete source server", aws.ToString(id)) {
				return nil
			}
			return run(cmd, deleteSourceServer, &drsapi.DeleteSourceServerInput{SourceServerID: id})
		},
	}

	cmd.Flags().String("source-server-id", "", "ID of the source server")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
