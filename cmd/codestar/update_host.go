package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var updateHost = op[cs.UpdateHostInput, cs.UpdateHostOutput]{
	Name:     "UpdateHost",
	Required: []string{"HostArn"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.UpdateHostInput) (*cs.UpdateHostOutput, error) {
		return c.UpdateHost(ctx, in)
	},
	Default: operation.Nothing[cs.UpdateHostInput, cs.UpdateHostOutput](),
}

func newUpdateHostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-host [HOST_ARN]",
		Short: "Update a host's endpoint or VPC configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "host-arn")
			if err != nil {
				return err
			}
			return run(cmd, updateHost, &cs.UpdateHostInput{
				HostArn:          arn,
				ProviderEndpoint: cli.String(cmd, "provider-endpoint"),
				VpcConfiguration: vpcConfiguration(cmd),
			})
		},
	}

	cmd.Flags().String("host-arn", "", "ARN of the host")
	cmd.Flags().String("provider-endpoint", "", "new endpoint of the infrastructure the provider runs on")
	addVpcFlags(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
