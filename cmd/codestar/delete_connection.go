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

var deleteConnection = op[cs.DeleteConnectionInput, cs.DeleteConnectionOutput]{
	Name:     "DeleteConnection",
	Required: []string{"ConnectionArn"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.DeleteConnectionInput) (*cs.DeleteConnectionOutput, error) {
		return c.DeleteConnection(ctx, in)
	},
	Default: operation.Nothing[cs.DeleteConnectionInput, cs.DeleteConnectionOutput](),
}

func newDeleteConnectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-connection [CONNECTION_ARN]",
		Short: "Delete a connection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "connection-arn")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete connection", aws.ToString(arn)) {
				return nil
			}
			return run(cmd, deleteConnection, &cs.DeleteConnectionInput{ConnectionArn: arn})
		},
	}

	cmd.Flags().String("connection-arn", "", "ARN of the connection to delete")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
