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

var stopFailback = op[drsapi.StopFailbackInput, drsapi.StopFailbackOutput]{
	Name:     "StopFailback",
	Required: []string{"RecoveryInstanceID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.StopFailbackInput) (*drsapi.StopFailbackOutput, error) {
		return c.StopFailback(ctx, in)
	},
	Default: operation.Nothing[drsapi.StopFailbackInput, drsapi.StopFailbackOutput](),
}

func newStopFailbackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop-failback [RECOVERY_INSTANCE_ID]",
		Short: "Stop the failback of a recovery instance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "recovery-instance-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "stop failback of", aws.ToString(id)) {
				return nil
			}
			return run(cmd, stopFailback, &drsapi.StopFailbackInput{RecoveryInstanceID: id})
		},
	}

	cmd.Flags().String("recovery-instance-id", "", "ID of the recovery instance")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
