package drs

import (
	"context"

	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
)

var listTags = op[drsapi.ListTagsForResourceInput, drsapi.ListTagsForResourceOutput]{
	Name:     "ListTagsForResource",
	Required: []string{"ResourceArn"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.ListTagsForResourceInput) (*drsapi.ListTagsForResourceOutput, error) {
		return c.ListTagsForResource(ctx, in)
	},
	Default: func(_ *drsapi.ListTagsForResourceInput, out *drsapi.ListTagsForResourceOutput) any { return out.Tags },
}

func newListTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list-tags [RESOURCE_ARN]",
		Aliases: []string{"list-tags-for-resource"},
		Short:   "List the tags of a resource",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "resource-arn")
			if err != nil {
				return err
			}
			return run(cmd, listTags, &drsapi.ListTagsForResourceInput{ResourceArn: arn})
		},
	}

	cmd.Flags().String("resource-arn", "", "ARN of the resource")
	cli.AddSelectFlag(cmd)

	return cmd
}
