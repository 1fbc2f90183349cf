package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/vietdv277/awsctl/internal/config"
)

// ErrSelectionCancelled is returned when the user leaves the selector without choosing.
var ErrSelectionCancelled = errors.New("selection cancelled")

// contextItem holds display data for a single context entry.
type contextItem struct {
	name    string
	ctx     *config.Context
	current bool
}

// ContextModel is the bubbletea model for interactive context selection.
type ContextModel struct {
	items        []contextItem
	filtered     []contextItem
	cursor       int
	offset       int
	search       string
	selected     string
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int
	colWidths    []int // [Name, Profile, Region]
}

func newContextModel(contexts map[string]*config.Context, current string) ContextModel {
	names := config.ContextNames(contexts)
	items := make([]contextItem, len(names))
	for i, name := range names {
		items[i] = contextItem{name: name, ctx: contexts[name], current: name == current}
	}

	m := ContextModel{
		items:     items,
		filtered:  items,
		termWidth: 80,
	}
	for i, item := range items {
		if item.current {
			m.cursor = i
			break
		}
	}
	m.calculateContextWidths()
	return m
}

func (m *ContextModel) calculateContextWidths() {
	m.contentWidth = min(max(m.termWidth-2, minWidth), maxWidth)

	profW := 10
	regW := 10
	for _, item := range m.items {
		profW = max(profW, runewidth.StringWidth(orDash(item.ctx.Profile)))
		regW = max(regW, runewidth.StringWidth(orDash(item.ctx.Region)))
	}

	// cursor+marker(3) + name + sp(2) + profile + sp(2) + region
	nameW := max(m.contentWidth-(3+2+profW+2+regW), 10)

	m.colWidths = []int{nameW, profW, regW}
}

// Init implements tea.Model.
func (m ContextModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m ContextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateContextWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = m.filtered[m.cursor].name
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterContexts()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterContexts()
		}
	}

	return m, nil
}

// filterContexts matches the search against context name, profile and region.
func (m *ContextModel) filterContexts() {
	if m.search == "" {
		m.filtered = m.items
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, item := range m.items {
			haystack := strings.ToLower(item.name + " " + item.ctx.Profile + " " + item.ctx.Region)
			if strings.Contains(haystack, query) {
				m.filtered = append(m.filtered, item)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
	m.offset = 0
}

// View implements tea.Model.
func (m ContextModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth
	blank := func() {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(strings.Repeat(" ", w))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}
	rule := func(left, right string) {
		sb.WriteString(BorderStyle.Render(left))
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
		sb.WriteString(BorderStyle.Render(right))
		sb.WriteString("\n")
	}

	rule(TopLeft, TopRight)

	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(NameStyle.Render(padRight(" > "+m.search, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")
	blank()

	visibleEnd := min(m.offset+listHeight, len(m.filtered))
	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderContextRow(i))
	}
	for i := visibleEnd; i < m.offset+listHeight; i++ {
		blank()
	}
	blank()

	rule(LeftT, RightT)
	sb.WriteString(m.renderContextDetailsPanel())
	rule(BottomLeft, BottomRight)

	sb.WriteString(m.renderContextStatusBar())

	return sb.String()
}

func (m ContextModel) renderContextRow(idx int) string {
	item := m.filtered[idx]

	cursor := " "
	if idx == m.cursor {
		cursor = ">"
	}
	marker := " "
	if item.current {
		marker = "*"
	}

	nameStyle := NameStyle
	if item.current {
		nameStyle = RunningStyle
	}

	line := " " + cursor + marker +
		nameStyle.Render(padRight(item.name, m.colWidths[0])) + "  " +
		MutedStyle.Render(padRight(orDash(item.ctx.Profile), m.colWidths[1])) + "  " +
		ValueStyle.Render(padRight(orDash(item.ctx.Region), m.colWidths[2]))

	plainWidth := 3 + m.colWidths[0] + 2 + m.colWidths[1] + 2 + m.colWidths[2]
	if plainWidth < m.contentWidth {
		line += strings.Repeat(" ", m.contentWidth-plainWidth)
	}

	return BorderStyle.Render(Vertical) + line + BorderStyle.Render(Vertical) + "\n"
}

func (m ContextModel) renderContextDetailsPanel() string {
	var sb strings.Builder
	w := m.contentWidth

	line := func(s string, style lipgloss.Style) {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(style.Render(padRight(s, w)))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	line(" Context Details", HeaderStyle)
	line(" "+strings.Repeat(Horizontal, 20), MutedStyle)

	if len(m.filtered) == 0 {
		line(" No contexts found", MutedStyle)
		for range 4 {
			line("", MutedStyle)
		}
		return sb.String()
	}

	item := m.filtered[m.cursor]
	details := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Context:", item.name, NameStyle},
		{"Profile:", orDash(item.ctx.Profile), MutedStyle},
		{"Region:", orDash(item.ctx.Region), ValueStyle},
		{"Endpoint:", orDash(item.ctx.EndpointURL), ValueStyle},
	}

	for _, d := range details {
		valueText := d.value
		maxValueWidth := w - 1 - detailLabelWidth
		if runewidth.StringWidth(valueText) > maxValueWidth {
			valueText = runewidth.Truncate(valueText, maxValueWidth, "...")
		}

		plainWidth := 1 + detailLabelWidth + runewidth.StringWidth(valueText)
		text := MutedStyle.Render(" "+padRight(d.label, detailLabelWidth)) + d.style.Render(valueText)
		if plainWidth < w {
			text += strings.Repeat(" ", w-plainWidth)
		}

		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(text)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	line("", MutedStyle)
	return sb.String()
}

func (m ContextModel) renderContextStatusBar() string {
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d contexts", len(m.filtered), len(m.items))
	hintsPlain := "[Enter:select] [Esc:quit]"

	padding := w - runewidth.StringWidth(countInfo) - runewidth.StringWidth(hintsPlain)

	var sb strings.Builder
	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}

// SelectContext runs the interactive context selector and returns the chosen context name.
// The current context is pre-highlighted in the list.
func SelectContext(contexts map[string]*config.Context, current string) (string, error) {
	if len(contexts) == 0 {
		return "", config.ErrNoContexts
	}

	finalModel, err := tea.NewProgram(newContextModel(contexts, current)).Run()
	if err != nil {
		return "", fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(ContextModel)
	if result.cancelled {
		return "", ErrSelectionCancelled
	}

	return result.selected, nil
}
