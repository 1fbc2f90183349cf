package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var startFailbackLaunch = op[drsapi.StartFailbackLaunchInput, drsapi.StartFailbackLaunchOutput]{
	Name:     "StartFailbackLaunch",
	Required: []string{"RecoveryInstanceIDs"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.StartFailbackLaunchInput) (*drsapi.StartFailbackLaunchOutput, error) {
		return c.StartFailbackLaunch(ctx, in)
	},
	Default: func(_ *drsapi.StartFailbackLaunchInput, out *drsapi.StartFailbackLaunchOutput) any { return out.Job },
}

func newStartFailbackLaunchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-failback-launch [RECOVERY_INSTANCE_ID...]",
		Short: "Fail recovery instances back to their source environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, startFailbackLaunch, &drsapi.StartFailbackLaunchInput{
				RecoveryInstanceIDs: identifiers(cmd, args, "recovery-instance-ids"),
				Tags:                cli.StringMap(cmd, cli.FlagTags),
			})
		},
	}

	cmd.Flags().StringSlice("recovery-instance-ids", nil, "IDs of the recovery instances to fail back")
	cli.AddTagsFlag(cmd, "tags to apply to the failback job")
	cli.AddSelectFlag(cmd)

	return cmd
}
