package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var tagResource = op[drsapi.TagResourceInput, drsapi.TagResourceOutput]{
	Name:     "TagResource",
	Required: []string{"ResourceArn", "Tags"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.TagResourceInput) (*drsapi.TagResourceOutput, error) {
		return c.TagResource(ctx, in)
	},
	Default: operation.Nothing[drsapi.TagResourceInput, drsapi.TagResourceOutput](),
}

func newTagResourceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag-resource [RESOURCE_ARN]",
		Short: "Add or overwrite tags on a resource",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "resource-arn")
			if err != nil {
				return err
			}
			return run(cmd, tagResource, &drsapi.TagResourceInput{
				ResourceArn: arn,
				Tags:        cli.StringMap(cmd, cli.FlagTags),
			})
		},
	}

	cmd.Flags().String("resource-arn", "", "ARN of the resource")
	cli.AddTagsFlag(cmd, "tags to add")
	cli.AddSelectFlag(cmd)

	return cmd
}
