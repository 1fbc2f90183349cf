package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var createConnection = op[cs.CreateConnectionInput, cs.CreateConnectionOutput]{
	Name:     "CreateConnection",
	Required: []string{"ConnectionName"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.CreateConnectionInput) (*cs.CreateConnectionOutput, error) {
		return c.CreateConnection(ctx, in)
	},
	Default: func(_ *cs.CreateConnectionInput, out *cs.CreateConnectionOutput) any { return out.ConnectionArn },
}

func newCreateConnectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-connection [CONNECTION_NAME]",
		Short: "Create a connection to a third-party source provider",
		Long: `Create a connection that AWS resources can use to access a repository hosted by a
third-party provider. The connection is created in PENDING status and must be completed in
the AWS console.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cli.Identifier(cmd, args, "connection-name")
			if err != nil {
				return err
			}
			return run(cmd, createConnection, &cs.CreateConnectionInput{
				ConnectionName: name,
				HostArn:        cli.String(cmd, "host-arn"),
				ProviderType:   cli.Enum[types.ProviderType](cmd, "provider-type"),
				Tags:           tagList(cli.StringMap(cmd, cli.FlagTags)),
			})
		},
	}

	cmd.Flags().String("connection-name", "", "name of the connection")
	cmd.Flags().String("host-arn", "", "ARN of the host for a self-managed provider")
	cli.AddEnumFlag[types.ProviderType](cmd, "provider-type", "external provider")
	cli.AddTagsFlag(cmd, "tags to apply to the connection")
	cli.AddSelectFlag(cmd)

	return cmd
}
