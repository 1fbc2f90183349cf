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

var deleteRecoveryInstance = op[drsapi.DeleteRecoveryInstanceInput, drsapi.DeleteRecoveryInstanceOutput]{
	Name:     "DeleteRecoveryInstance",
	Required: []string{"RecoveryInstanceID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DeleteRecoveryInstanceInput) (*drsapi.DeleteRecoveryInstanceOutput, error) {
		return c.DeleteRecoveryInstance(ctx, in)
	},
	Default: operation.Nothing[drsapi.DeleteRecoveryInstanceInput, drsapi.DeleteRecoveryInstanceOutput](),
}

func newDeleteRecoveryInstanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-recovery-instance [RECOVERY_INSTANCE_ID]",
		Short: "Delete a recovery instance record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "recovery-instance-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete recovery instance", aws.ToString(id)) {
				return nil
			}
			return run(cmd, deleteRecoveryInstance, &drsapi.DeleteRecoveryInstanceInput{RecoveryInstanceID: id})
		},
	}

	cmd.Flags().String("recovery-instance-id", "", "ID of the recovery instance")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
