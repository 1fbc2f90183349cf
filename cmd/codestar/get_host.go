package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getHost = op[cs.GetHostInput, cs.GetHostOutput]{
	Name:     "GetHost",
	Required: []string{"HostArn"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.GetHostInput) (*cs.GetHostOutput, error) {
		return c.GetHost(ctx, in)
	},
}

func newGetHostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-host [HOST_ARN]",
		Short: "Show a host",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "host-arn")
			if err != nil {
				return err
			}
			return run(cmd, getHost, &cs.GetHostInput{HostArn: arn})
		},
	}

	cmd.Flags().String("host-arn", "", "ARN of the host")
	cli.AddSelectFlag(cmd)

	return cmd
}
