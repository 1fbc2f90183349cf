package codestar

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	cs "github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/config"
)

type fakeCodeStar struct {
	awsclient.CodeStarAPI

	pages  map[string]*cs.ListConnectionsOutput
	tokens []*string

	listInput    *cs.ListConnectionsInput
	getInput     *cs.GetConnectionInput
	deleteInput  *cs.DeleteConnectionInput
	createInput  *cs.CreateConnectionInput
	hostInput    *cs.CreateHostInput
	syncInput    *cs.ListSyncConfigurationsInput
	deleteCalled bool
}

func (f *fakeCodeStar) ListConnections(_ context.Context, in *cs.ListConnectionsInput, _ ...func(*cs.Options)) (*cs.ListConnectionsOutput, error) {
	f.listInput = in
	f.tokens = append(f.tokens, in.NextToken)
	return f.pages[aws.ToString(in.NextToken)], nil
}

func (f *fakeCodeStar) GetConnection(_ context.Context, in *cs.GetConnectionInput, _ ...func(*cs.Options)) (*cs.GetConnectionOutput, error) {
	f.getInput = in
	return &cs.GetConnectionOutput{Connection: &types.Connection{
		ConnectionArn:    in.ConnectionArn,
		ConnectionName:   aws.String("github"),
		ConnectionStatus: types.ConnectionStatus("AVAILABLE"),
		ProviderType:     types.ProviderType("GitHub"),
	}}, nil
}

func (f *fakeCodeStar) DeleteConnection(_ context.Context, in *cs.DeleteConnectionInput, _ ...func(*cs.Options)) (*cs.DeleteConnectionOutput, error) {
	f.deleteCalled = true
	f.deleteInput = in
	return &cs.DeleteConnectionOutput{}, nil
}

func (f *fakeCodeStar) CreateConnection(_ context.Context, in *cs.CreateConnectionInput, _ ...func(*cs.Options)) (*cs.CreateConnectionOutput, error) {
	f.createInput = in
	return &cs.CreateConnectionOutput{ConnectionArn: aws.String("arn:aws:codestar-connections:eu-west-1:111122223333:connection/new")}, nil
}

func (f *fakeCodeStar) CreateHost(_ context.Context, in *cs.CreateHostInput, _ ...func(*cs.Options)) (*cs.CreateHostOutput, error) {
	f.hostInput = in
	return &cs.CreateHostOutput{HostArn: aws.String("arn:aws:codestar-connections:eu-west-1:111122223333:host/gitlab")}, nil
}

func (f *fakeCodeStar) ListSyncConfigurations(_ context.Context, in *cs.ListSyncConfigurationsInput, _ ...func(*cs.Options)) (*cs.ListSyncConfigurationsOutput, error) {
	f.syncInput = in
	return &cs.ListSyncConfigurationsOutput{}, nil
}

func connectionPages() map[string]*cs.ListConnectionsOutput {
	return map[string]*cs.ListConnectionsOutput{
		"": {
			Connections: []types.Connection{{ConnectionName: aws.String("github"), ProviderType: types.ProviderType("GitHub")}},
			NextToken:   aws.String("p2"),
		},
		"p2": {
			Connections: []types.Connection{{ConnectionName: aws.String("bitbucket"), ProviderType: types.ProviderType("Bitbucket")}},
		},
	}
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, fake awsclient.CodeStarAPI, stdin string, args ...string) result {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.SetPath("")
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(cli.KeyOutput, "json")

	orig := newClient
	newClient = func(context.Context) (awsclient.CodeStarAPI, error) { return fake, nil }
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

func TestListConnections_FollowsEveryPage(t *testing.T) {
	fake := &fakeCodeStar{pages: connectionPages()}

	res := execute(t, fake, "", "list-connections", "--provider-type-filter", "github")

	require.NoError(t, res.err)
	assert.Equal(t, []*string{nil, aws.String("p2")}, fake.tokens)
	assert.Equal(t, types.ProviderType("GitHub"), fake.listInput.ProviderTypeFilter)
	assert.Contains(t, res.stdout, `"ConnectionName": "github"`)
	assert.Contains(t, res.stdout, `"ConnectionName": "bitbucket"`)
}

func TestListConnections_NoPaginateReportsToken(t *testing.T) {
	fake := &fakeCodeStar{pages: connectionPages()}

	res := execute(t, fake, "", "list-connections", "--no-paginate", "--max-results", "1")

	require.NoError(t, res.err)
	assert.Len(t, fake.tokens, 1)
	assert.Equal(t, aws.Int32(1), fake.listInput.MaxResults)
	assert.NotContains(t, res.stdout, "bitbucket")
	assert.Contains(t, res.stderr, "next_token=p2")
}

func TestGetConnection_PositionalIdentifierAndSelect(t *testing.T) {
	fake := &fakeCodeStar{}
	arn := "arn:aws:codestar-connections:eu-west-1:111122223333:connection/abc"

	res := execute(t, fake, "", "get-connection", arn, "--select", "Connection.ConnectionStatus")

	require.NoError(t, res.err)
	assert.Equal(t, arn, aws.ToString(fake.getInput.ConnectionArn))
	assert.Equal(t, `"AVAILABLE"`, strings.TrimSpace(res.stdout))
}

func TestGetConnection_ConflictingIdentifiers(t *testing.T) {
	fake := &fakeCodeStar{}

	res := execute(t, fake, "", "get-connection", "arn-a", "--connection-arn", "arn-b")

	require.Error(t, res.err)
	assert.Nil(t, fake.getInput)
}

func TestDeleteConnection_Confirmation(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantCalled bool
	}{
		{name: "declined", stdin: "n\n", args: []string{"delete-connection", "arn-a"}},
		{name: "accepted", stdin: "y\n", args: []string{"delete-connection", "arn-a"}, wantCalled: true},
		{name: "forced", args: []string{"delete-connection", "arn-a", "--force"}, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCodeStar{}

			res := execute(t, fake, tt.stdin, tt.args...)

			require.NoError(t, res.err)
			assert.Equal(t, tt.wantCalled, fake.deleteCalled)
			assert.Empty(t, res.stdout)
			if !tt.wantCalled {
				assert.Contains(t, res.stderr, "Cancelled")
			}
		})
	}
}

func TestCreateConnection_TagsAndParamEcho(t *testing.T) {
	fake := &fakeCodeStar{}

	res := execute(t, fake, "", "create-connection", "github",
		"--provider-type", "GitHub", "--tags", "team=platform,env=prod", "--select", "^ConnectionName")

	require.NoError(t, res.err)
	assert.Equal(t, `"github"`, strings.TrimSpace(res.stdout))
	assert.Equal(t, []types.Tag{
		{Key: aws.String("env"), Value: aws.String("prod")},
		{Key: aws.String("team"), Value: aws.String("platform")},
	}, fake.createInput.Tags)
	assert.Nil(t, fake.createInput.HostArn)
}

func TestCreateHost_WarnsOnMissingRequired(t *testing.T) {
	fake := &fakeCodeStar{}

	res := execute(t, fake, "", "create-host", "gitlab", "--provider-type", "GitLabSelfManaged")

	require.NoError(t, res.err)
	require.NotNil(t, fake.hostInput, "request is still sent")
	assert.Contains(t, res.stderr, "parameter=ProviderEndpoint")
	assert.NotContains(t, res.stderr, "parameter=Name")
	assert.Nil(t, fake.hostInput.VpcConfiguration)
	assert.Contains(t, res.stdout, "host/gitlab")
}

func TestCreateHost_VpcConfiguration(t *testing.T) {
	fake := &fakeCodeStar{}

	res := execute(t, fake, "", "create-host", "gitlab",
		"--provider-type", "GitLabSelfManaged",
		"--provider-endpoint", "https://gitlab.example.com",
		"--vpc-id", "vpc-1", "--subnet-ids", "subnet-a,subnet-b")

	require.NoError(t, res.err)
	require.NotNil(t, fake.hostInput.VpcConfiguration)
	assert.Equal(t, "vpc-1", aws.ToString(fake.hostInput.VpcConfiguration.VpcId))
	assert.Equal(t, []string{"subnet-a", "subnet-b"}, fake.hostInput.VpcConfiguration.SubnetIds)
	assert.Empty(t, res.stderr)
}

func TestListSyncConfigurations_EnumIsNormalized(t *testing.T) {
	fake := &fakeCodeStar{}

	res := execute(t, fake, "", "list-sync-configurations", "link-1", "--sync-type", "cfn_stack_sync")

	require.NoError(t, res.err)
	assert.Equal(t, types.SyncConfigurationType("CFN_STACK_SYNC"), fake.syncInput.SyncType)
	assert.Equal(t, "link-1", aws.ToString(fake.syncInput.RepositoryLinkId))
}

func TestListSyncConfigurations_RejectsUnknownEnum(t *testing.T) {
	fake := &fakeCodeStar{}

	res := execute(t, fake, "", "list-sync-configurations", "link-1", "--sync-type", "bogus")

	require.Error(t, res.err)
	assert.Nil(t, fake.syncInput)
}

func TestRun_ClientError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	orig := newClient
	newClient = func(context.Context) (awsclient.CodeStarAPI, error) { return nil, errors.New("no credentials") }
	t.Cleanup(func() { newClient = orig })

	cmd := NewCommand()
	cmd.SetArgs([]string{"list-hosts"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.EqualError(t, cmd.ExecuteContext(context.Background()), "no credentials")
}

func TestCommands_CommonFlags(t *testing.T) {
	paged := map[string]bool{
		"list-connections":         true,
		"list-hosts":               true,
		"list-repository-links":    true,
		"list-sync-configurations": true,
	}
	destructive := map[string]bool{
		"delete-connection":         true,
		"delete-host":               true,
		"delete-repository-link":    true,
		"delete-sync-configuration": true,
		"untag-resource":            true,
	}

	cmds := NewCommand().Commands()
	require.Len(t, cmds, 27)

	for _, c := range cmds {
		name := c.Name()
		assert.NotNil(t, c.Flags().Lookup(cli.FlagSelect), name)
		assert.Equal(t, paged[name], c.Flags().Lookup(cli.FlagNextToken) != nil, name)
		assert.Equal(t, destructive[name], c.Flags().Lookup(cli.FlagForce) != nil, name)
	}
}

func TestTagList(t *testing.T) {
	assert.Nil(t, tagList(nil))
	assert.Equal(t, []types.Tag{
		{Key: aws.String("a"), Value: aws.String("1")},
		{Key: aws.String("b"), Value: aws.String("")},
	}, tagList(map[string]string{"b": "", "a": "1"}))
}
