package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getLaunchConfiguration = op[drsapi.GetLaunchConfigurationInput, drsapi.GetLaunchConfigurationOutput]{
	Name:     "GetLaunchConfiguration",
	Required: []string{"SourceServerID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.GetLaunchConfigurationInput) (*drsapi.GetLaunchConfigurationOutput, error) {
		return c.GetLaunchConfiguration(ctx, in)
	},
}

func newGetLaunchConfigurationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-launch-configuration [SOURCE_SERVER_ID]",
		Short: "Show how recovery instances of a source server are launched",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-server-id")
			if err != nil {
				return err
			}
			return run(cmd, getLaunchConfiguration, &drsapi.GetLaunchConfigurationInput{SourceServerID: id})
		},
	}

	cmd.Flags().String("source-server-id", "", "ID of the source server")
	cli.AddSelectFlag(cmd)

	return cmd
}
