package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/goccy/go-json"
	cstypes "github.com/aws/aws-sdk-go-v2/service/codestarconnections/types"
	drstypes "github.com/aws/aws-sdk-go-v2/service/drs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testConnections() []cstypes.Connection {
	return []cstypes.Connection{
		{
			ConnectionName:   aws.String("github-main"),
			ConnectionArn:    aws.String("arn:aws:codestar-connections:eu-west-1:111122223333:connection/aaaa"),
			ConnectionStatus: cstypes.ConnectionStatus("AVAILABLE"),
			ProviderType:     cstypes.ProviderType("GitHub"),
		},
		{
			ConnectionName:   aws.String("bitbucket-ops"),
			ConnectionArn:    aws.String("arn:aws:codestar-connections:eu-west-1:111122223333:connection/bbbb"),
			ConnectionStatus: cstypes.ConnectionStatusPending,
			ProviderType:     cstypes.ProviderType("Bitbucket"),
		},
	}
}

func emitAll(t *testing.T, format string, values ...any) string {
	t.Helper()
	var buf bytes.Buffer
	em, err := New(&buf, format)
	require.NoError(t, err)

	for _, v := range values {
		require.NoError(t, em.Emit(v))
	}
	require.NoError(t, em.Flush())
	return buf.String()
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestJSON_StreamsEachValue(t *testing.T) {
	var buf bytes.Buffer
	em, err := New(&buf, FormatJSON)
	require.NoError(t, err)

	require.NoError(t, em.Emit(testConnections()[:1]))
	assert.Contains(t, buf.String(), `"ConnectionName": "github-main"`, "written before flush")

	require.NoError(t, em.Emit(testConnections()[1:]))
	require.NoError(t, em.Flush())
	assert.Contains(t, buf.String(), `"ConnectionStatus": "PENDING"`)
	assert.Equal(t, 2, strings.Count(buf.String(), "]\n"))
}

func TestJSON_PagesDecodeAsDocumentStream(t *testing.T) {
	out := emitAll(t, FormatJSON, []string{"a", "b"}, []string{"c"})

	dec := json.NewDecoder(strings.NewReader(out))
	var pages [][]string
	for dec.More() {
		var page []string
		require.NoError(t, dec.Decode(&page))
		pages = append(pages, page)
	}

	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, pages)
}

func TestJSON_Scalar(t *testing.T) {
	out := emitAll(t, FormatJSON, "arn:aws:codestar-connections:eu-west-1:111122223333:host/h-1")
	assert.Equal(t, "\"arn:aws:codestar-connections:eu-west-1:111122223333:host/h-1\"\n", out)
}

func TestYAML_UsesFieldNames(t *testing.T) {
	out := emitAll(t, FormatYAML, testConnections())

	assert.Contains(t, out, "ConnectionName: github-main")
	assert.Contains(t, out, "ConnectionStatus: AVAILABLE")
	assert.NotContains(t, out, "{", "block style expected")

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "bitbucket-ops", decoded[1]["ConnectionName"])
}

func TestYAML_QuotesAmbiguousStrings(t *testing.T) {
	out := emitAll(t, FormatYAML, map[string]string{"Version": "1.10", "Enabled": "true"})

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.10", decoded["Version"])
	assert.Equal(t, "true", decoded["Enabled"])
}

func TestYAML_SeparatesDocuments(t *testing.T) {
	out := emitAll(t, FormatYAML, "first", "second")
	assert.Equal(t, "first\n---\nsecond\n", out)
}

func TestTable_ListPagesShareOneTable(t *testing.T) {
	conns := testConnections()
	var buf bytes.Buffer
	em, err := New(&buf, FormatTable)
	require.NoError(t, err)

	require.NoError(t, em.Emit(conns[:1]))
	require.NoError(t, em.Emit(conns[1:]))

	tables := em.(*tableEmitter).tables
	require.Len(t, tables, 1)
	assert.Len(t, tables[0].rows, 2)
	assert.Contains(t, tables[0].header, "ConnectionName")
	assert.Empty(t, buf.String(), "tables render on flush")

	require.NoError(t, em.Flush())
	out := buf.String()
	assert.Contains(t, out, "github-main")
	assert.Contains(t, out, "bitbucket-ops")
	assert.Contains(t, out, "AVAILABLE")
}

func TestTable_StructRendersProperties(t *testing.T) {
	job := &drstypes.Job{
		JobID:            aws.String("drsjob-0123456789abcdef0"),
		Status:           drstypes.JobStatusCompleted,
		InitiatedBy:      drstypes.InitiatedByStartRecovery,
		CreationDateTime: aws.String("2024-03-01T12:00:00Z"),
		Tags:             map[string]string{"team": "dr", "env": "prod"},
	}

	out := emitAll(t, FormatTable, job)

	assert.Contains(t, out, "drsjob-0123456789abcdef0")
	assert.Contains(t, out, "COMPLETED")
	assert.Contains(t, out, "2024-03-01T12:00:00Z")
	assert.Contains(t, out, "env=prod, team=dr")
}

func TestTable_ScalarsPrintImmediately(t *testing.T) {
	var buf bytes.Buffer
	em, err := New(&buf, FormatTable)
	require.NoError(t, err)

	require.NoError(t, em.Emit(aws.String("drs-source-server-arn")))
	assert.Equal(t, "drs-source-server-arn\n", buf.String())

	require.NoError(t, em.Emit([]string{"a", "b"}))
	assert.Equal(t, "drs-source-server-arn\na\nb\n", buf.String())
	require.NoError(t, em.Flush())
}

func TestTable_TagList(t *testing.T) {
	tags := []cstypes.Tag{
		{Key: aws.String("team"), Value: aws.String("platform")},
		{Key: aws.String("env"), Value: aws.String("dev")},
	}

	out := emitAll(t, FormatTable, tags)

	assert.Contains(t, out, "platform")
	assert.Contains(t, out, "dev")
}

func TestTable_EmptyList(t *testing.T) {
	out := emitAll(t, FormatTable, []drstypes.SourceServer{})
	assert.Equal(t, "No items found\n", out)
}

func TestTable_NilValueEmitsNothing(t *testing.T) {
	var job *drstypes.Job
	out := emitAll(t, FormatTable, job)
	assert.Empty(t, out)
}
