package drs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/operation"
)

var untagResource = op[drsapi.UntagResourceInput, drsapi.UntagResourceOutput]{
	Name:     "UntagResource",
	Required: []string{"ResourceArn", "TagKeys"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.UntagResourceInput) (*drsapi.UntagResourceOutput, error) {
		return c.UntagResource(ctx, in)
	},
	Default: operation.Nothing[drsapi.UntagResourceInput, drsapi.UntagResourceOutput](),
}

func newUntagResourceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untag-resource [RESOURCE_ARN]",
		Short: "Remove tags from a resource",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arn, err := cli.Identifier(cmd, args, "resource-arn")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "untag resource", aws.ToString(arn)) {
				return nil
			}
			return run(cmd, untagResource, &drsapi.UntagResourceInput{
				ResourceArn: arn,
				TagKeys:     cli.Strings(cmd, "tag-keys"),
			})
		},
	}

	cmd.Flags().String("resource-arn", "", "ARN of the resource")
	cmd.Flags().StringSlice("tag-keys", nil, "keys of the tags to remove")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
