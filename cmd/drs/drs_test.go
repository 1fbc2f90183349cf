package drs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	drsapi "github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/aws/aws-sdk-go-v2/service/drs/types"
	"github.com/aws/smithy-go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/config"
)

type fakeDRS struct {
	awsclient.DRSAPI

	jobPages map[string]*drsapi.DescribeJobsOutput
	jobErr   error
	tokens   []*string

	serversInput   *drsapi.DescribeSourceServersInput
	recoveryInput  *drsapi.StartRecoveryInput
	terminateInput *drsapi.TerminateRecoveryInstancesInput
	launchInput    *drsapi.UpdateLaunchConfigurationInput
}

func (f *fakeDRS) DescribeJobs(_ context.Context, in *drsapi.DescribeJobsInput, _ ...func(*drsapi.Options)) (*drsapi.DescribeJobsOutput, error) {
	f.tokens = append(f.tokens, in.NextToken)
	if in.NextToken != nil && f.jobErr != nil {
		return nil, f.jobErr
	}
	return f.jobPages[aws.ToString(in.NextToken)], nil
}

func (f *fakeDRS) DescribeSourceServers(_ context.Context, in *drsapi.DescribeSourceServersInput, _ ...func(*drsapi.Options)) (*drsapi.DescribeSourceServersOutput, error) {
	f.serversInput = in
	return &drsapi.DescribeSourceServersOutput{Items: []types.SourceServer{}}, nil
}

func (f *fakeDRS) StartRecovery(_ context.Context, in *drsapi.StartRecoveryInput, _ ...func(*drsapi.Options)) (*drsapi.StartRecoveryOutput, error) {
	f.recoveryInput = in
	return &drsapi.StartRecoveryOutput{Job: &types.Job{JobID: aws.String("drsjob-1"), Type: types.JobType("LAUNCH")}}, nil
}

func (f *fakeDRS) TerminateRecoveryInstances(_ context.Context, in *drsapi.TerminateRecoveryInstancesInput, _ ...func(*drsapi.Options)) (*drsapi.TerminateRecoveryInstancesOutput, error) {
	f.terminateInput = in
	return &drsapi.TerminateRecoveryInstancesOutput{Job: &types.Job{JobID: aws.String("drsjob-2")}}, nil
}

func (f *fakeDRS) UpdateLaunchConfiguration(_ context.Context, in *drsapi.UpdateLaunchConfigurationInput, _ ...func(*drsapi.Options)) (*drsapi.UpdateLaunchConfigurationOutput, error) {
	f.launchInput = in
	return &drsapi.UpdateLaunchConfigurationOutput{SourceServerID: in.SourceServerID, Name: in.Name}, nil
}

func (f *fakeDRS) ListTagsForResource(_ context.Context, _ *drsapi.ListTagsForResourceInput, _ ...func(*drsapi.Options)) (*drsapi.ListTagsForResourceOutput, error) {
	return &drsapi.ListTagsForResourceOutput{Tags: map[string]string{"env": "prod"}}, nil
}

func (f *fakeDRS) ReverseReplication(_ context.Context, _ *drsapi.ReverseReplicationInput, _ ...func(*drsapi.Options)) (*drsapi.ReverseReplicationOutput, error) {
	return &drsapi.ReverseReplicationOutput{ReversedDirectionSourceServerArn: aws.String("arn:aws:drs:us-west-2:111122223333:source-server/s-9")}, nil
}

func jobPages() map[string]*drsapi.DescribeJobsOutput {
	return map[string]*drsapi.DescribeJobsOutput{
		"": {
			Items:     []types.Job{{JobID: aws.String("drsjob-1")}, {JobID: aws.String("drsjob-2")}},
			NextToken: aws.String("p2"),
		},
		"p2": {
			Items:     []types.Job{{JobID: aws.String("drsjob-3")}},
			NextToken: aws.String(""),
		},
	}
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, fake awsclient.DRSAPI, format, stdin string, args ...string) result {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.SetPath("")
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(cli.KeyOutput, format)

	orig := newClient
	newClient = func(context.Context) (awsclient.DRSAPI, error) { return fake, nil }
	t.Cleanup(func() { newClient = orig })

	var stdout, stderr bytes.Buffer
	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestDescribeJobs_EmptyTokenEndsPaging(t *testing.T) {
	fake := &fakeDRS{jobPages: jobPages()}

	res := execute(t, fake, "json", "", "describe-jobs")

	require.NoError(t, res.err)
	assert.Len(t, fake.tokens, 2)
	for _, id := range []string{"drsjob-1", "drsjob-2", "drsjob-3"} {
		assert.Contains(t, res.stdout, id)
	}
}

func TestDescribeJobs_TableSpansPages(t *testing.T) {
	fake := &fakeDRS{jobPages: jobPages()}

	res := execute(t, fake, "table", "", "describe-jobs")

	require.NoError(t, res.err)
	assert.NotContains(t, res.stdout, "No items found")
	for _, id := range []string{"drsjob-1", "drsjob-2", "drsjob-3"} {
		assert.Contains(t, res.stdout, id)
	}
}

func TestDescribeJobs_LaterPageFailure(t *testing.T) {
	fake := &fakeDRS{
		jobPages: jobPages(),
		jobErr:   &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"},
	}

	res := execute(t, fake, "json", "", "describe-jobs")

	var apiErr smithy.APIError
	require.ErrorAs(t, res.err, &apiErr)
	assert.Equal(t, "ThrottlingException", apiErr.ErrorCode())
	assert.Contains(t, res.stdout, "drsjob-2", "first page is still written")
}

func TestDescribeSourceServers_Filters(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *types.DescribeSourceServersRequestFilters
	}{
		{name: "none", args: nil, want: nil},
		{
			name: "positional ids",
			args: []string{"s-1", "s-2"},
			want: &types.DescribeSourceServersRequestFilters{SourceServerIDs: []string{"s-1", "s-2"}},
		},
		{
			name: "hardware id",
			args: []string{"--hardware-id", "i-0abc"},
			want: &types.DescribeSourceServersRequestFilters{HardwareId: aws.String("i-0abc")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDRS{}

			res := execute(t, fake, "json", "", append([]string{"describe-source-servers"}, tt.args...)...)

			require.NoError(t, res.err)
			assert.Equal(t, tt.want, fake.serversInput.Filters)
			assert.Equal(t, "[]", strings.TrimSpace(res.stdout))
		})
	}
}

func TestStartRecovery_SourceServers(t *testing.T) {
	fake := &fakeDRS{}

	res := execute(t, fake, "json", "", "start-recovery", "s-1", "--source-servers", "s-2=pit-9", "--is-drill", "--select", "Job.JobID")

	require.NoError(t, res.err)
	assert.Equal(t, `"drsjob-1"`, strings.TrimSpace(res.stdout))
	assert.Equal(t, []types.StartRecoveryRequestSourceServer{
		{SourceServerID: aws.String("s-1")},
		{SourceServerID: aws.String("s-2"), RecoverySnapshotID: aws.String("pit-9")},
	}, fake.recoveryInput.SourceServers)
	assert.Equal(t, aws.Bool(true), fake.recoveryInput.IsDrill)
	assert.Nil(t, fake.recoveryInput.Tags)
}

func TestStartRecovery_WarnsWithoutSourceServers(t *testing.T) {
	fake := &fakeDRS{}

	res := execute(t, fake, "json", "", "start-recovery")

	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "parameter=SourceServers")
	require.NotNil(t, fake.recoveryInput)
}

func TestStartRecovery_InvalidSourceServer(t *testing.T) {
	fake := &fakeDRS{}

	res := execute(t, fake, "json", "", "start-recovery", "s-1=")

	require.Error(t, res.err)
	assert.Nil(t, fake.recoveryInput)
}

func TestTerminateRecoveryInstances_Confirm(t *testing.T) {
	fake := &fakeDRS{}

	res := execute(t, fake, "json", "no\n", "terminate-recovery-instances", "i-1", "i-2")

	require.NoError(t, res.err)
	assert.Nil(t, fake.terminateInput)
	assert.Contains(t, res.stderr, "Really terminate recovery instances 'i-1, i-2'? (y/N): ")

	res = execute(t, fake, "json", "Y\n", "terminate-recovery-instances", "i-1", "i-2")

	require.NoError(t, res.err)
	require.NotNil(t, fake.terminateInput)
	assert.Equal(t, []string{"i-1", "i-2"}, fake.terminateInput.RecoveryInstanceIDs)
	assert.Contains(t, res.stdout, "drsjob-2")
}

func TestUpdateLaunchConfiguration_OnlyChangedFields(t *testing.T) {
	fake := &fakeDRS{}

	res := execute(t, fake, "yaml", "", "update-launch-configuration", "s-1",
		"--copy-tags=false", "--os-byol", "--launch-disposition", "started")

	require.NoError(t, res.err)
	in := fake.launchInput
	assert.Equal(t, aws.Bool(false), in.CopyTags)
	assert.Nil(t, in.CopyPrivateIp)
	assert.Nil(t, in.Name)
	assert.Equal(t, &types.Licensing{OsByol: aws.Bool(true)}, in.Licensing)
	assert.Equal(t, types.LaunchDisposition("STARTED"), in.LaunchDisposition)
	assert.Contains(t, res.stdout, "SourceServerID: s-1")
}

func TestListTags_Table(t *testing.T) {
	res := execute(t, &fakeDRS{}, "table", "", "list-tags", "arn:aws:drs:us-east-1:111122223333:source-server/s-1")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "env")
	assert.Contains(t, res.stdout, "prod")
}

func TestReverseReplication_DefaultOutput(t *testing.T) {
	res := execute(t, &fakeDRS{}, "json", "", "reverse-replication", "i-1")

	require.NoError(t, res.err)
	assert.Equal(t, `"arn:aws:drs:us-west-2:111122223333:source-server/s-9"`, strings.TrimSpace(res.stdout))
}

func TestSourceServers(t *testing.T) {
	servers, err := sourceServers(nil)
	require.NoError(t, err)
	assert.Nil(t, servers)

	for _, bad := range []string{"", "=pit-1", "s-1="} {
		_, err := sourceServers([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestCommands_CommonFlags(t *testing.T) {
	paged := map[string]bool{
		"describe-source-servers":                      true,
		"describe-jobs":                                true,
		"describe-job-log-items":                       true,
		"describe-recovery-instances":                  true,
		"describe-recovery-snapshots":                  true,
		"describe-launch-configuration-templates":      true,
		"describe-replication-configuration-templates": true,
		"describe-source-networks":                     true,
		"list-staging-accounts":                        true,
		"list-extensible-source-servers":               true,
	}

	cmds := NewCommand().Commands()
	require.Len(t, cmds, 32)

	for _, c := range cmds {
		name := c.Name()
		assert.NotNil(t, c.Flags().Lookup(cli.FlagSelect), name)
		assert.Equal(t, paged[name], c.Flags().Lookup(cli.FlagMaxResults) != nil, name)

		destructive := strings.HasPrefix(name, "delete-") ||
			strings.HasPrefix(name, "disconnect-") ||
			strings.HasPrefix(name, "terminate-") ||
			strings.HasPrefix(name, "stop-") ||
			name == "untag-resource"
		assert.Equal(t, destructive, c.Flags().Lookup(cli.FlagForce) != nil, name)
	}
}

func TestNewCommand_FreshFlagState(t *testing.T) {
	first := NewCommand()
	first.SetArgs([]string{"describe-jobs", "--max-results", "5", "--help"})
	first.SetOut(&bytes.Buffer{})
	require.NoError(t, first.Execute())

	sub, _, err := NewCommand().Find([]string{"describe-jobs"})
	require.NoError(t, err)
	assert.False(t, sub.Flags().Changed(cli.FlagMaxResults))
}
