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

var deleteReplicationConfigurationTemplate = op[drsapi.DeleteReplicationConfigurationTemplateInput, drsapi.DeleteReplicationConfigurationTemplateOutput]{
	Name:     "DeleteReplicationConfigurationTemplate",
	Required: []string{"ReplicationConfigurationTemplateID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DeleteReplicationConfigurationTemplateInput) (*drsapi.DeleteReplicationConfigurationTemplateOutput, error) {
		return c.DeleteReplicationConfigurationTemplate(ctx, in)
	},
	Default: operation.Nothing[drsapi.DeleteReplicationConfigurationTemplateInput, drsapi.DeleteReplicationConfigurationTemplateOutput](),
}

func newDeleteReplicationConfigurationTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-replication-configuration-template [TEMPLATE_ID]",
		Short: "Delete a replication configuration template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "replication-configuration-template-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete replication configuration template", aws.ToString(id)) {
				return nil
			}
			return run(cmd, deleteReplicationConfigurationTemplate, &drsapi.DeleteReplicationConfigurationTemplateInput{
				ReplicationConfigurationTemplateID: id,
			})
		},
	}

	cmd.Flags().String("replication-configuration-template-id", "", "ID of the template")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
