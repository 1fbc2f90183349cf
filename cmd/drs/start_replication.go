package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var startReplication = op[drsapi.StartReplicationInput, drsapi.StartReplicationOutput]{
	Name:     "StartReplication",
	Required: []string{"SourceServerID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.StartReplicationInput) (*drsapi.StartReplicationOutput, error) {
		return c.StartReplication(ctx, in)
	},
	Default: func(_ *drsapi.StartReplicationInput, out *drsapi.StartReplicationOutput) any { return out.SourceServer },
}

func newStartReplicationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-replication [SOURCE_SERVER_ID]",
		Short: "Start replication of a source server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-server-id")
			if err != nil {
				return err
			}
			return run(cmd, startReplication, &drsapi.StartReplicationInput{SourceServerID: id})
		},
	}

	cmd.Flags().String("source-server-id", "", "ID of the source server")
	cli.AddSelectFlag(cmd)

	return cmd
}
