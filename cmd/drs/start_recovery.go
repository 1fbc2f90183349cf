package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var startRecovery = op[drsapi.StartRecoveryInput, drsapi.StartRecoveryOutput]{
	Name:     "StartRecovery",
	Required: []string{"SourceServers"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.StartRecoveryInput) (*drsapi.StartRecoveryOutput, error) {
		return c.StartRecovery(ctx, in)
	},
	Default: func(_ *drsapi.StartRecoveryInput, out *drsapi.StartRecoveryOutput) any { return out.Job },
}

func newStartRecoveryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-recovery [SOURCE_SERVER_ID...]",
		Short: "Launch recovery instances for source servers",
		Long: `Launch recovery instances for one or more source servers, from the latest snapshot or
from a given point in time.

Each source server is given as ID or ID=SNAPSHOT_ID.

Examples:
  awsctl drs start-recovery s-1111 s-2222 --is-drill
  awsctl drs start-recovery --source-servers s-1111=pit-0123 --tags ticket=INC-42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			servers, err := sourceServers(identifiers(cmd, args, "source-servers"))
			if err != nil {
				return err
			}
			return run(cmd, startRecovery, &drsapi.StartRecoveryInput{
				SourceServers: servers,
				IsDrill:       cli.Bool(cmd, "is-drill"),
				Tags:          cli.StringMap(cmd, cli.FlagTags),
			})
		},
	}

	cmd.Flags().StringSlice("source-servers", nil, "source servers to recover, as ID or ID=SNAPSHOT_ID")
	cmd.Flags().Bool("is-drill", false, "launch a drill instead of a recovery")
	cli.AddTagsFlag(cmd, "tags to apply to the recovery job")
	cli.AddSelectFlag(cmd)

	return cmd
}
