package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getReplicationConfiguration = op[drsapi.GetReplicationConfigurationInput, drsapi.GetReplicationConfigurationOutput]{
	Name:     "GetReplicationConfiguration",
	Required: []string{"SourceServerID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.GetReplicationConfigurationInput) (*drsapi.GetReplicationConfigurationOutput, error) {
		return c.GetReplicationConfiguration(ctx, in)
	},
}

func newGetReplicationConfigurationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-replication-configuration [SOURCE_SERVER_ID]",
		Short: "Show the replication settings of a source server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-server-id")
			if err != nil {
				return err
			}
			return run(cmd, getReplicationConfiguration, &drsapi.GetReplicationConfigurationInput{SourceServerID: id})
		},
	}

	cmd.Flags().String("source-server-id", "", "ID of the source server")
	cli.AddSelectFlag(cmd)

	return cmd
}
