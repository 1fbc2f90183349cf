package codestar

import (
	"context"

	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var tagResource = op[cs.TagResourceInput, cs.TagResourceOutput]{
	Name:     "TagResource",
	Required: []string{"ResourceArn", "Tags"},
	Call: func(ctx context.Context, c awsclient.CodeStarAPI, in *cs.TagResourceInput) (*cs.TagResourceOutput, error) {
		return c.TagResource(ctx, in)
	},
	Default: operation.Nothing[cs.TagResourceInput, cs.TagResourceOutput](),
}

func newTagResourceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag-resource [RESOURCE_ARN]",
		Short: "Add or overwrite tags on a resource",
		Long: `Add or overwrite tags on a connection, host or repository link.

Examples:
  awsctl codestar tag-resource arn:aws:codestar-connections:... --tags team=platform,env=prod`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "resource-arn")
			if err != nil {
				return err
			}
			return run(cmd, tagResource, &cs.TagResourceInput{
				ResourceArn: arn,
				Tags:        tagList(cli.StringMap(cmd, cli.FlagTags)),
			})
		},
	}

	cmd.Flags().String("resource-arn", "", "ARN of the resource")
	cli.AddTagsFlag(cmd, "tags to add")
	cli.AddSelectFlag(cmd)

	return cmd
}
