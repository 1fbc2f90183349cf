package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietdv277/awsctl/internal/config"
)

func testContexts() map[string]*config.Context {
	return map[string]*config.Context{
		"prod":  {Profile: "prod-sso", Region: "eu-west-1"},
		"dev":   {Profile: "dev", Region: "us-east-1"},
		"local": {Region: "us-east-1", EndpointURL: "http://localhost:4566"},
	}
}

func send(t *testing.T, m ContextModel, msgs ...tea.Msg) ContextModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(ContextModel)
		require.True(t, ok)
	}
	return m
}

func TestContextModel_StartsOnCurrent(t *testing.T) {
	m := newContextModel(testContexts(), "prod")

	assert.Equal(t, "prod", m.filtered[m.cursor].name)
}

func TestContextModel_NavigateAndSelect(t *testing.T) {
	m := newContextModel(testContexts(), "")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "local", m.selected)
	assert.False(t, m.cancelled)
}

func TestContextModel_FilterByRegion(t *testing.T) {
	m := newContextModel(testContexts(), "")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("eu-")})

	require.Len(t, m.filtered, 1)
	assert.Equal(t, "prod", m.filtered[0].name)
	assert.Contains(t, m.View(), "1/3 contexts")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Len(t, m.filtered, 3)
}

func TestContextModel_Cancel(t *testing.T) {
	m := newContextModel(testContexts(), "dev")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.cancelled)
	assert.Empty(t, m.View())
}

func TestContextModel_ViewShowsDetails(t *testing.T) {
	m := newContextModel(testContexts(), "local")

	view := m.View()

	assert.Contains(t, view, "Context Details")
	assert.Contains(t, view, "http://localhost:4566")
}

func TestSelectContext_NoContexts(t *testing.T) {
	_, err := SelectContext(nil, "")
	assert.ErrorIs(t, err, config.ErrNoContexts)
}

func TestBoxTable_Render(t *testing.T) {
	out := BoxTable{
		Headers:   []string{"CONTEXT", "REGION"},
		Rows:      [][]string{{"prod", "eu-west-1"}, {"dev", "us-east-1"}},
		Highlight: map[int]bool{0: true},
	}.Render()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "CONTEXT")
	assert.Contains(t, lines[3], "prod")
	assert.Contains(t, lines[4], "us-east-1")
}

func TestProfileModel_FilterAndSelect(t *testing.T) {
	m := NewProfileModel([]ProfileEntry{
		{Name: "default", Region: "us-east-1"},
		{Name: "prod-sso", Region: "eu-west-1", SSO: true},
		{Name: "staging", Region: "eu-west-1"},
	}, "default")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("eu")})
	m = next.(ProfileModel)
	require.Len(t, m.filtered, 2)
	assert.Contains(t, m.View(), "sso")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ProfileModel)

	require.NotNil(t, m.selected)
	assert.Equal(t, "staging", m.selected.Name)
}
