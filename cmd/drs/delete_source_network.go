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

var deleteSourceNetwork = op[drsapi.DeleteSourceNetworkInput, drsapi.DeleteSourceNetworkOutput]{
	Name:     "DeleteSourceNetwork",
	Required: []string{"SourceNetworkID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DeleteSourceNetworkInput) (*drsapi.DeleteSourceNetworkOutput, error) {
		return c.DeleteSourceNetwork(ctx, in)
	},
	Default: operation.Nothing[drsapi.DeleteSourceNetworkInput, drsapi.DeleteSourceNetworkOutput](),
}

func newDeleteSourceNetworkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-source-network [SOURCE_NETWORK_ID]",
		Short: "Delete a source network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-network-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete source network", aws.ToString(id)) {
				return nil
			}
			return run(cmd, deleteSourceNetwork, &drsapi.DeleteSourceNetworkInput{SourceNetworkID: id})
		},
	}

	cmd.Flags().String("source-network-id", "", "ID of the source network")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
