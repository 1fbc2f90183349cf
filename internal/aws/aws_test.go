package aws

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigFile = `# shared config
[default]
region = us-east-1

[profile prod-sso]
sso_session = corp
sso_account_id = 111122223333
region = eu-west-1

[sso-session corp]
sso_start_url = https://corp.awsapps.com/start
sso_region = eu-west-1

[profile dev]
output = json

[profile staging]
region = eu-west-1
`

const testCredentialsFile = `[default]
aws_access_key_id = AKIAEXAMPLE
aws_secret_access_key = secret

[ci]
aws_access_key_id = AKIAEXAMPLE2
aws_secret_access_key = secret2
`

func useSharedFiles(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config")
	credPath := filepath.Join(dir, "credentials")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfigFile), 0o600))
	require.NoError(t, os.WriteFile(credPath, []byte(testCredentialsFile), 0o600))

	t.Setenv("AWS_CONFIG_FILE", configPath)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credPath)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_ENDPOINT_URL", "")
}

func TestListProfiles(t *testing.T) {
	useSharedFiles(t)

	profiles, err := ListProfiles()

	require.NoError(t, err)
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"default", "ci", "dev", "prod-sso", "staging"}, names)

	assert.Equal(t, Profile{Name: "default", Region: "us-east-1", Source: "credentials"}, profiles[0])
	assert.Equal(t, Profile{Name: "prod-sso", Region: "eu-west-1", SSO: true, Source: "config"}, profiles[3])
}

func TestListProfiles_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "nope"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "nope-either"))

	profiles, err := ListProfiles()

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestFindProfile(t *testing.T) {
	useSharedFiles(t)

	p, ok := FindProfile("ci")
	assert.True(t, ok)
	assert.Equal(t, "credentials", p.Source)

	_, ok = FindProfile("qa")
	assert.False(t, ok)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name       string
		opts       []ClientOption
		wantRegion string
		wantBase   *string
	}{
		{
			name:       "profile region",
			opts:       []ClientOption{WithProfile("staging")},
			wantRegion: "eu-west-1",
		},
		{
			name:       "explicit region wins",
			opts:       []ClientOption{WithProfile("staging"), WithRegion("ap-southeast-2")},
			wantRegion: "ap-southeast-2",
		},
		{
			name:       "endpoint override",
			opts:       []ClientOption{WithRegion("us-east-1"), WithEndpoint("http://localhost:4566")},
			wantRegion: "us-east-1",
			wantBase:   awsv2.String("http://localhost:4566"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useSharedFiles(t)

			c, err := NewClient(context.Background(), tt.opts...)

			require.NoError(t, err)
			assert.Equal(t, tt.wantRegion, c.Region())
			assert.Equal(t, tt.wantBase, c.Config().BaseEndpoint)
			assert.NotNil(t, c.CodeStar)
			assert.NotNil(t, c.DRS)
			assert.NotNil(t, c.STS)
		})
	}
}

func TestNewClient_UnknownProfile(t *testing.T) {
	useSharedFiles(t)

	_, err := NewClient(context.Background(), WithProfile("does-not-exist"))

	assert.ErrorContains(t, err, "failed to load AWS SDK config")
}

type fakeSTS struct {
	STSAPI
	out *sts.GetCallerIdentityOutput
	err error
}

func (f *fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return f.out, f.err
}

func TestGetCallerIdentity(t *testing.T) {
	fake := &fakeSTS{out: &sts.GetCallerIdentityOutput{
		Account: awsv2.String("111122223333"),
		Arn:     awsv2.String("arn:aws:sts::111122223333:assumed-role/Admin/alice"),
		UserId:  awsv2.String("AROAEXAMPLE:alice"),
	}}

	id, err := GetCallerIdentity(context.Background(), fake)

	require.NoError(t, err)
	assert.Equal(t, &CallerIdentity{
		Account: "111122223333",
		Arn:     "arn:aws:sts::111122223333:assumed-role/Admin/alice",
		UserID:  "AROAEXAMPLE:alice",
	}, id)
}

func TestGetCallerIdentity_Error(t *testing.T) {
	expired := errors.New("ExpiredToken: the security token included in the request is expired")

	_, err := GetCallerIdentity(context.Background(), &fakeSTS{err: expired})

	assert.ErrorIs(t, err, expired)
}
