package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var getConnection = op[cs.GetConnectionInput, cs.GetConnectionOutput]{
	Name:     "GetConnection",
	Required: []string{"ConnectionArn"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.GetConnectionInput) (*cs.GetConnectionOutput, error) {
		return c.GetConnection(ctx, in)
	},
	Default: func(_ *cs.GetConnectionInput, out *cs.GetConnectionOutput) any { return out.Connection },
}

func newGetConnectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-connection [CONNECTION_ARN]",
		Short: "Show a connection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "connection-arn")
			if err != nil {
				return err
			}
			return run(cmd, getConnection, &cs.GetConnectionInput{ConnectionArn: arn})
		},
	}

	cmd.Flags().String("connection-arn", "", "ARN of the connection")
	cli.AddSelectFlag(cmd)

	return cmd
}
