package drs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var disconnectSourceServer = op[drsapi.DisconnectSourceServerInput, drsapi.DisconnectSourceServerOutput]{
	Name:     "DisconnectSourceServer",
	Required: []string{"SourceServerID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DisconnectSourceServerInput) (*drsapi.DisconnectSourceServerOutput, error) {
		return c.DisconnectSourceServer(ctx, in)
	},
}

func newDisconnectSourceServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disconnect-source-server [SOURCE_SERVER_ID]",
		Short: "Stop replicating a source server and disconnect its agent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-server-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "disconnect source server", aws.ToString(id)) {
				return nil
			}
			return run(cmd, disconnectSourceServer, &drsapi.DisconnectSourceServerInput{SourceServerID: id})
		},
	}

	cmd.Flags().String("source-server-id", "", "ID of the source server")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
