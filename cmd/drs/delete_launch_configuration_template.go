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

var deleteLaunchConfigurationTemplate = op[drsapi.DeleteLaunchConfigurationTemplateInput, drsapi.DeleteLaunchConfigurationTemplateOutput]{
	Name:     "DeleteLaunchConfigurationTemplate",
	Required: []string{"LaunchConfigurationTemplateID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DeleteLaunchConfigurationTemplateInput) (*drsapi.DeleteLaunchConfigurationTemplateOutput, error) {
		return c.DeleteLaunchConfigurationTemplate(ctx, in)
	},
	Default: operation.Nothing[drsapi.DeleteLaunchConfigurationTemplateInput, drsapi.DeleteLaunchConfigurationTemplateOutput](),
}

func newDeleteLaunchConfigurationTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-launch-configuration-template [TEMPLATE_ID]",
		Short: "Delete a launch configuration template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "launch-configuration-template-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete launch configuration template", aws.ToString(id)) {
				return nil
			}
			return run(cmd, deleteLaunchConfigurationTemplate, &drsapi.DeleteLaunchConfigurationTemplateInput{
				LaunchConfigurationTemplateID: id,
			})
		},
	}

	cmd.Flags().String("launch-configuration-template-id", "", "ID of the template")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
