package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	cstypes "github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	"github.com/aws/smithy-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietdv277/awsctl/internal/config"
	"github.com/vietdv277/awsctl/internal/operation"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.SetPath("")
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestResolveTarget_Precedence(t *testing.T) {
	isolate(t)
	require.NoError(t, config.AddContext("prod", &config.Context{Profile: "prod-sso", Region: "eu-west-1"}))
	require.NoError(t, config.AddContext("local", &config.Context{Region: "us-east-1", EndpointURL: "http://localhost:4566"}))

	target, err := ResolveTarget()
	require.NoError(t, err)
	assert.Equal(t, Target{Context: "prod", Profile: "prod-sso", Region: "eu-west-1"}, target)

	viper.Set(KeyRegion, "ap-southeast-1")
	target, err = ResolveTarget()
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-1", target.Region, "flag beats context")
	assert.Equal(t, "prod-sso", target.Profile)

	viper.Set(KeyContext, "local")
	target, err = ResolveTarget()
	require.NoError(t, err)
	assert.Equal(t, Target{Context: "local", Region: "ap-southeast-1", EndpointURL: "http://localhost:4566"}, target)
}

func TestResolveTarget_NoContext(t *testing.T) {
	isolate(t)

	target, err := ResolveTarget()

	require.NoError(t, err)
	assert.Equal(t, Target{}, target)
}

func TestResolveTarget_UnknownContext(t *testing.T) {
	isolate(t)
	viper.Set(KeyContext, "ghost")

	_, err := ResolveTarget()

	assert.ErrorIs(t, err, config.ErrContextNotFound)
}

func TestOutputFormat(t *testing.T) {
	isolate(t)
	assert.Equal(t, "table", OutputFormat())

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	cfg.Defaults.Output = "yaml"
	require.NoError(t, config.SaveConfig(cfg))
	assert.Equal(t, "yaml", OutputFormat())

	viper.Set(KeyOutput, "json")
	assert.Equal(t, "json", OutputFormat())
}

func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().String("connection-arn", "", "")
	cmd.Flags().Int32("max-items", 0, "")
	cmd.Flags().Bool("is-drill", false, "")
	cmd.Flags().StringSlice("ids", nil, "")
	AddTagsFlag(cmd, "tags")
	AddEnumFlag[cstypes.ProviderType](cmd, "provider-type", "provider")
	return cmd
}

func TestFlagGetters_UnsetGivesNil(t *testing.T) {
	cmd := newFlagCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	assert.Nil(t, String(cmd, "connection-arn"))
	assert.Nil(t, Int32(cmd, "max-items"))
	assert.Nil(t, Bool(cmd, "is-drill"))
	assert.Empty(t, Strings(cmd, "ids"))
	assert.Nil(t, StringMap(cmd, FlagTags))
	assert.Equal(t, cstypes.ProviderType(""), Enum[cstypes.ProviderType](cmd, "provider-type"))
}

func TestFlagGetters_Set(t *testing.T) {
	cmd := newFlagCommand()
	require.NoError(t, cmd.ParseFlags([]string{
		"--connection-arn", "",
		"--max-items", "25",
		"--is-drill=false",
		"--ids", "s-1,s-2", "--ids", "s-3",
		"--tags", "env=prod,team=platform",
		"--provider-type", "github",
	}))

	assert.Equal(t, aws.String(""), String(cmd, "connection-arn"), "explicit empty value is kept")
	assert.Equal(t, aws.Int32(25), Int32(cmd, "max-items"))
	assert.Equal(t, aws.Bool(false), Bool(cmd, "is-drill"))
	assert.Equal(t, []string{"s-1", "s-2", "s-3"}, Strings(cmd, "ids"))
	assert.Equal(t, map[string]string{"env": "prod", "team": "platform"}, StringMap(cmd, FlagTags))
	assert.Equal(t, cstypes.ProviderType("GitHub"), Enum[cstypes.ProviderType](cmd, "provider-type"))
}

func TestEnumFlag_RejectsUnknownValue(t *testing.T) {
	cmd := newFlagCommand()

	err := cmd.ParseFlags([]string{"--provider-type", "SourceForge"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GitHub")
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		args    []string
		want    *string
		wantErr bool
	}{
		{name: "none"},
		{name: "positional", args: []string{"arn:1"}, want: aws.String("arn:1")},
		{name: "flag", flags: []string{"--connection-arn", "arn:2"}, want: aws.String("arn:2")},
		{name: "both agree", flags: []string{"--connection-arn", "arn:3"}, args: []string{"arn:3"}, want: aws.String("arn:3")},
		{name: "conflict", flags: []string{"--connection-arn", "arn:4"}, args: []string{"arn:5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newFlagCommand()
			require.NoError(t, cmd.ParseFlags(tt.flags))

			got, err := Identifier(cmd, tt.args, "connection-arn")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "upper yes", input: "Y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty", input: "", want: false},
		{name: "force", flags: []string{"--force"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "delete-host"}
			AddForceFlag(cmd)
			require.NoError(t, cmd.ParseFlags(tt.flags))
			var stderr bytes.Buffer
			cmd.SetErr(&stderr)
			cmd.SetIn(strings.NewReader(tt.input))

			got := Confirm(cmd, "delete host", "arn:host")

			assert.Equal(t, tt.want, got)
			if len(tt.flags) == 0 {
				assert.Contains(t, stderr.String(), "Really delete host 'arn:host'? (y/N)")
			}
			if !tt.want {
				assert.Contains(t, stderr.String(), "Cancelled")
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	apiErr := &smithy.OperationError{
		ServiceID:     "drs",
		OperationName: "DescribeJobs",
		Err:           &smithy.GenericAPIError{Code: "UninitializedAccountException", Message: "Account not initialized"},
	}
	dnsErr := operation.Translate("ListHosts", &net.DNSError{Err: "no such host", Name: "example.invalid"})

	assert.Equal(t, "UninitializedAccountException: Account not initialized", FormatError(apiErr))
	assert.Equal(t, "AccessDenied", FormatError(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.Contains(t, FormatError(dnsErr), "name resolution failure")
	assert.Equal(t, "boom", FormatError(errors.New("boom")))
}

type listInput struct {
	Owner     *string
	NextToken *string
}

type listOutput struct {
	Names     []string
	NextToken *string
}

type pagedFake map[string]listOutput

var listNames = operation.Operation[pagedFake, listInput, listOutput]{
	Name: "ListNames",
	Call: func(_ context.Context, f pagedFake, in *listInput) (*listOutput, error) {
		out, ok := f[aws.ToString(in.NextToken)]
		if !ok {
			return nil, fmt.Errorf("bad token %q", aws.ToString(in.NextToken))
		}
		return &out, nil
	},
	Default: func(_ *listInput, out *listOutput) any { return out.Names },
	Paging: &operation.Paging[listInput, listOutput]{
		SetToken:  func(in *listInput, token *string) { in.NextToken = token },
		NextToken: func(out *listOutput) *string { return out.NextToken },
	},
}

func runList(t *testing.T, flags ...string) (string, error) {
	t.Helper()
	fake := pagedFake{
		"":   {Names: []string{"a", "b"}, NextToken: aws.String("p2")},
		"p2": {Names: []string{"c"}},
	}
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{
		Use: "list-names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, listNames, fake, &listInput{Owner: aws.String("me")})
		},
	}
	AddSelectFlag(cmd)
	AddPagingFlags(cmd)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(flags)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRun_StreamsAllPages(t *testing.T) {
	isolate(t)
	viper.Set(KeyOutput, "json")

	out, err := runList(t)

	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]\n[\n  \"c\"\n]\n", out)
}

func TestRun_PagingAndSelectFlags(t *testing.T) {
	isolate(t)
	viper.Set(KeyOutput, "json")

	out, err := runList(t, "--next-token", "p2", "--select", "^Owner")

	require.NoError(t, err)
	assert.Equal(t, "\"me\"\n", out)
}

func TestRun_EmptyNextTokenFollowsEveryPage(t *testing.T) {
	isolate(t)
	viper.Set(KeyOutput, "json")

	out, err := runList(t, "--next-token", "")

	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]\n[\n  \"c\"\n]\n", out)
}

func TestRun_ParamEchoOnListPrintsOnce(t *testing.T) {
	isolate(t)
	viper.Set(KeyOutput, "json")

	out, err := runList(t, "--select", "^Owner")

	require.NoError(t, err)
	assert.Equal(t, "\"me\"\n", out)
}

func TestRun_UnknownSelect(t *testing.T) {
	isolate(t)

	_, err := runList(t, "--select", "Colors")

	assert.ErrorIs(t, err, operation.ErrUnknownSelect)
}

func TestRun_UnknownOutputFormat(t *testing.T) {
	isolate(t)
	viper.Set(KeyOutput, "csv")

	_, err := runList(t)

	assert.Error(t, err)
}
