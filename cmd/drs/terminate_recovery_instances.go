package drs

import (
	"context"
	"strings"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var terminateRecoveryInstances = op[drsapi.TerminateRecoveryInstancesInput, drsapi.TerminateRecoveryInstancesOutput]{
	Name:     "TerminateRecoveryInstances",
	Required: []string{"RecoveryInstanceIDs"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.TerminateRecoveryInstancesInput) (*drsapi.TerminateRecoveryInstancesOutput, error) {
		return c.TerminateRecoveryInstances(ctx, in)
	},
	Default: func(_ *drsapi.TerminateRecoveryInstancesInput, out *drsapi.TerminateRecoveryInstancesOutput) any { return out.Job },
}

func newTerminateRecoveryInstancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terminate-recovery-instances [RECOVERY_INSTANCE_ID...]",
		Short: "Terminate recovery instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := identifiers(cmd, args, "recovery-instance-ids")
			if !cli.Confirm(cmd, "terminate recovery instances", strings.Join(ids, ", ")) {
				return nil
			}
			return run(cmd, terminateRecoveryInstances, &drsapi.TerminateRecoveryInstancesInput{RecoveryInstanceIDs: ids})
		},
	}

	cmd.Flags().StringSlice("recovery-instance-ids", nil, "IDs of the recovery instances")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
