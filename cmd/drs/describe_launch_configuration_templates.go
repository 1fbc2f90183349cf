package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var describeLaunchConfigurationTemplates = op[drsapi.DescribeLaunchConfigurationTemplatesInput, drsapi.DescribeLaunchConfigurationTemplatesOutput]{
	Name: "DescribeLaunchConfigurationTemplates",
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DescribeLaunchConfigurationTemplatesInput) (*drsapi.DescribeLaunchConfigurationTemplatesOutput, error) {
		return c.DescribeLaunchConfigurationTemplates(ctx, in)
	},
	Default: func(_ *drsapi.DescribeLaunchConfigurationTemplatesInput, out *drsapi.DescribeLaunchConfigurationTemplatesOutput) any {
		return out.Items
	},
	Paging: &operation.Paging[drsapi.DescribeLaunchConfigurationTemplatesInput, drsapi.DescribeLaunchConfigurationTemplatesOutput]{
		SetToken:  func(in *drsapi.DescribeLaunchConfigurationTemplatesInput, token *string) { in.NextToken = token },
		NextToken: func(out *drsapi.DescribeLaunchConfigurationTemplatesOutput) *string { return out.NextToken },
	},
}

func newDescribeLaunchConfigurationTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe-launch-configuration-templates [TEMPLATE_ID...]",
		Aliases: []string{"launch-templates"},
		Short:   "List launch configuration templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, describeLaunchConfigurationTemplates, &drsapi.DescribeLaunchConfigurationTemplatesInput{
				LaunchConfigurationTemplateIDs: identifiers(cmd, args, "launch-configuration-template-ids"),
				MaxResults:                     cli.Int32(cmd, cli.FlagMaxResults),
			})
		},
	}

	cmd.Flags().StringSlice("launch-configuration-template-ids", nil, "only list these templates")
	cli.AddPagingFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
