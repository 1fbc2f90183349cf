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

var deleteJob = op[drsapi.DeleteJobInput, drsapi.DeleteJobOutput]{
	Name:     "DeleteJob",
	Required: []string{"JobID"},
	Call: func(ctx context.Context, c awsclient.DRSAPI, in *drsapi.DeleteJobInput) (*drsapi.DeleteJobOutput, error) {
		return c.DeleteJob(ctx, in)
	},
	Default: operation.Nothing[drsapi.DeleteJobInput, drsapi.DeleteJobOutput](),
}

func newDeleteJobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-job [JOB_ID]",
		Short: "Delete a finished job",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.Identifier(cmd, args, "job-id")
			if err != nil {
				return err
			}
			if !cli.Confirm(cmd, "delete job", aws.ToString(id)) {
				return nil
			}
			return run(cmd, deleteJob, &drsapi.DeleteJobInput{JobID: id})
		},
	}

	cmd.Flags().String("job-id", "", "ID of the job")
	cli.AddForceFlag(cmd)
	cli.AddSelectFlag(cmd)

	return cmd
}
