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

var disconnectRecoveryInstance = op[drsapi.DisconnectRecoveryInstanceInput, drsapi.DisconnectRecoveryInstanceOutput]{
	Name:     "DisconnectRecoveryInstance",
	Required: []string{"RecoveryInstanceID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DisconnectRecoveryInstanceInput) (*drsapi.DisconnectRecoveryInstanceOutput, error) {
		return c.DisconnectRecoveryInstance(ctx, in)
	},
	Default: operation.Nothing[drsapi.DisconnectRecoveryInstanceInput, drsapi.DisconnectRecoveryInstanceOutput](),
}

func newDisconnectRecoveryInstanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disconnect-recovery-instance [RECOVERY_INSTANCE_ID]",
		Short: "Disconnect a recovery instance from the service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "recovery-instance-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "disconnect recovery instance", aws.ToString(id)) {
				return nil
			}
			return run(cmd, disconnectRecoveryInstance, &drsapi.DisconnectRecoveryInstanceInput{RecoveryInstanceID: id})
		},
	}

	cmd.Flags().String("recovery-instance-id", "", "ID of the recovery instance")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
