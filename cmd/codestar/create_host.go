package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var createHost = op[cs.CreateHostInput, cs.CreateHostOutput]{
	Name:     "CreateHost",
	Required: []string{"Name", "ProviderEndpoint", "ProviderType"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.CreateHostInput) (*cs.CreateHostOutput, error) {
		return c.CreateHost(ctx, in)
	},
	Default: func(_ *cs.CreateHostInput, out *cs.CreateHostOutput) any { return out.HostArn },
}

func newCreateHostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-host [NAME]",
		Short: "Create a host for a self-managed provider",
		Long: `Create a resource that represents the infrastructure where a self-managed provider
such as GitHub Enterprise Server or GitLab self-managed is installed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cli.Identifier(cmd, args, "name")
			if err != nil {
				return err
			}
			return run(cmd, createHost, &cs.CreateHostInput{
				Name:             name,
				ProviderEndpoint: cli.String(cmd, "provider-endpoint"),
				ProviderType:     cli.Enum[types.ProviderType](cmd, "provider-type"),
				VpcConfiguration: vpcConfiguration(cmd),
				Tags:             tagList(cli.StringMap(cmd, cli.FlagTags)),
			})
		},
	}

	cmd.Flags().String("name", "", "name of the host")
	cmd.Flags().String("provider-endpoint", "", "endpoint of the infrastructure the provider runs on")
	cli.AddEnumFlag[types.ProviderType](cmd, "provider-type", "provider installed on the host")
	addVpcFlags(cmd)
	cli.AddTagsFlag(cmd, "tags to apply to the host")
	cli.AddSelectFlag(cmd)

	return cmd
}
