package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/aws/aws-sdk-go-v2/service/drs/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var updateLaunchConfiguration = op[drsapi.UpdateLaunchConfigurationInput, drsapi.UpdateLaunchConfigurationOutput]{
	Name:     "UpdateLaunchConfiguration",
	Required: []string{"SourceServerID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.UpdateLaunchConfigurationInput) (*drsapi.UpdateLaunchConfigurationOutput, error) {
		return c.UpdateLaunchConfiguration(ctx, in)
	},
}

func newUpdateLaunchConfigurationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-launch-configuration [SOURCE_SERVER_ID]",
		Short: "Change how recovery instances of a source server are launched",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "source-server-id")
			if err != nil {
				return err
			}

			in := &drsapi.UpdateLaunchConfigurationInput{
				SourceServerID:                      id,
				Name:                                cli.String(cmd, "name"),
				CopyPrivateIp:                       cli.Bool(cmd, "copy-private-ip"),
				CopyTags:                            cli.Bool(cmd, "copy-tags"),
				PostLaunchEnabled:                   cli.Bool(cmd, "post-launch-enabled"),
				LaunchDisposition:                   cli.Enum[types.LaunchDisposition](cmd, "launch-disposition"),
				TargetInstanceTypeRightSizingMethod: cli.Enum[types.TargetInstanceTypeRightSizingMethod](cmd, "target-instance-type-right-sizing-method"),
			}
			if byol := cli.Bool(cmd, "os-byol"); byol != nil {
				in.Licensing = &types.Licensing{OsByol: byol}
			}

			return run(cmd, updateLaunchConfiguration, in)
		},
	}

	cmd.Flags().String("source-server-id", "", "ID of the source server")
	cmd.Flags().String("name", "", "name of the launch configuration")
	cmd.Flags().Bool("copy-private-ip", false, "give the recovery instance the source server's private IP")
	cmd.Flags().Bool("copy-tags", false, "copy the source server's tags to the recovery instance")
	cmd.Flags().Bool("post-launch-enabled", false, "run post-launch actions")
	cmd.Flags().Bool("os-byol", false, "bring your own operating system license")
	cli.AddEnumFlag[types.LaunchDisposition](cmd, "launch-disposition", "state of the recovery instance after launch")
	cli.AddEnumFlag[types.TargetInstanceTypeRightSizingMethod](cmd, "target-instance-type-right-sizing-method", "how the instance type is chosen")
	cli.AddSelectFlag(cmd)

	return cmd
}
