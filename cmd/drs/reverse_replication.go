package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var reverseReplication = op[drsapi.ReverseReplicationInput, drsapi.ReverseReplicationOutput]{
	Name:     "ReverseReplication",
	Required: []string{"RecoveryInstanceID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.ReverseReplicationInput) (*drsapi.ReverseReplicationOutput, error) {
		return c.ReverseReplication(ctx, in)
	},
	Default: func(_ *drsapi.ReverseReplicationInput, out *drsapi.ReverseReplicationOutput) any {
		return out.ReversedDirectionSourceServerArn
	},
}

func newReverseReplicationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reverse-replication [RECOVERY_INSTANCE_ID]",
		Short: "Replicate a recovery instance back to its origin region",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "recovery-instance-id")
			if err != nil {
				return err
			}
			return run(cmd, reverseReplication, &drsapi.ReverseReplicationInput{RecoveryInstanceID: id})
		},
	}

	cmd.Flags().String("recovery-instance-id", "", "ID of the recovery instance")
	cli.AddSelectFlag(cmd)

	return cmd
}
