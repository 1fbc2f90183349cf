package drs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var stopReplication = op[drsapi.StopReplicationInput, drsapi.StopReplicationOutput]{
	Name:     "StopReplication",
	Required: []string{"SourceServerID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.StopReplicationInput) (*drsapi.StopReplicationOutput, error) {
		return c.StopReplication(ctx, in)
	},
	Default: func(_ *drsapi.StopReplicationInput, out *drsapi.StopReplicationOutput) any { return out.SourceServer },
}

func newStopReplicationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop-replication [SOURCE_SERVER_ID]",
		Short: "Stop replication of a source server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-server-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "stop replication of", aws.ToString(id)) {
				return nil
			}
			return run(cmd, stopReplication, &drsapi.StopReplicationInput{SourceServerID: id})
		},
	}

	cmd.Flags().String("source-server-id", "", "ID of the source server")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
