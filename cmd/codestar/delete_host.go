package codestar

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var deleteHost = op[cs.DeleteHostInput, cs.DeleteHostOutput]{
	Name:     "DeleteHost",
	Required: []string{"HostArn"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.DeleteHostInput) (*cs.DeleteHostOutput, error) {
		return c.DeleteHost(ctx, in)
	},
	Default: operation.Nothing[cs.DeleteHostInput, cs.DeleteHostOutput](),
}

func newDeleteHostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-host [HOST_ARN]",
		Short: "Delete a host",
		Long: `Delete a host. The host must have no connections; it moves to VPC_CONFIG_DELETING
while its VPC resources are released.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "host-arn")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete host", aws.ToString(arn)) {
				return nil
			}
			return run(cmd, deleteHost, &cs.DeleteHostInput{HostArn: arn})
		},
	}

	cmd.Flags().String("host-arn", "", "ARN of the host to delete")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
