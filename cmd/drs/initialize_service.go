package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var initializeService = op[drsapi.InitializeServiceInput, drsapi.InitializeServiceOutput]{
	Name: "InitializeService",
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.InitializeServiceInput) (*drsapi.InitializeServiceOutput, error) {
		return c.InitializeService(ctx, in)
	},
	Default: operation.Nothing[drsapi.InitializeServiceInput, drsapi.InitializeServiceOutput](),
}

func newInitializeServiceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize-service",
		Short: "Initialize Elastic Disaster Recovery in the current region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, initializeService, &drsapi.InitializeServiceInput{})
		},
	}

	cli.AddSelectFlag(cmd)

	return cmd
}
