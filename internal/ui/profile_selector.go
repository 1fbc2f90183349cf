package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const profileListHeight = 10

// ProfileEntry is one selectable shared-config profile.
type ProfileEntry struct {
	Name   string
	Region string
	SSO    bool
}

// ProfileModel represents the bubbletea model for profile selection
type ProfileModel struct {
	profiles      []ProfileEntry
	filtered      []ProfileEntry
	cursor        int
	offset        int
	search        string
	selected      *ProfileEntry
	quitting      bool
	cancelled     bool
	termWidth     int
	contentWidth  int
	activeProfile string
}

// NewProfileModel creates a new profile selector model
func NewProfileModel(profiles []ProfileEntry, activeProfile string) ProfileModel {
	m := ProfileModel{
		profiles:      profiles,
		filtered:      profiles,
		termWidth:     80,
		activeProfile: activeProfile,
	}
	m.contentWidth = min(max(m.termWidth-2, minWidth), maxWidth)
	return m
}

// Init implements tea.Model
func (m ProfileModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.contentWidth = min(max(m.termWidth-2, minWidth), maxWidth)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				selected := m.filtered[m.cursor]
				m.selected = &selected
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
				if m.cursor >= m.offset+profileListHeight {
					m.offset = m.cursor - profileListHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterProfiles()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterProfiles()
		}
	}

	return m, nil
}

func (m *ProfileModel) filterProfiles() {
	if m.search == "" {
		m.filtered = m.profiles
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, p := range m.profiles {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Region), query) {
				m.filtered = append(m.filtered, p)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
	m.offset = 0
}

// View implements tea.Model
func (m ProfileModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth
	boxed := func(s string) {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(s)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}
	rule := func(left, right string) {
		sb.WriteString(BorderStyle.Render(left + strings.Repeat(Horizontal, w) + right))
		sb.WriteString("\n")
	}

	rule(TopLeft, TopRight)
	boxed(HeaderStyle.Render(padRight(" Select AWS Profile", w)))
	rule(LeftT, RightT)
	boxed(NameStyle.Render(padRight(" > "+m.search, w)))
	boxed(strings.Repeat(" ", w))

	visibleEnd := min(m.offset+profileListHeight, len(m.filtered))
	for i := m.offset; i < visibleEnd; i++ {
		boxed(m.renderProfileRow(i))
	}
	for i := visibleEnd; i < m.offset+profileListHeight; i++ {
		boxed(strings.Repeat(" ", w))
	}

	rule(BottomLeft, BottomRight)
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m ProfileModel) renderProfileRow(idx int) string {
	profile := m.filtered[idx]

	prefix := "   "
	switch {
	case profile.Name == m.activeProfile:
		prefix = " ● "
	case idx == m.cursor:
		prefix = " > "
	}

	const nameWidth, regionWidth, kindWidth = 30, 20, 5

	nameStyle := NameStyle
	if profile.Name == m.activeProfile {
		nameStyle = RunningStyle
	}
	kind := ""
	if profile.SSO {
		kind = "sso"
	}

	line := prefix +
		nameStyle.Render(padRight(profile.Name, nameWidth)) + "  " +
		MutedStyle.Render(padRight(orDash(profile.Region), regionWidth)) + "  " +
		HintStyle.Render(padRight(kind, kindWidth))

	plainWidth := 3 + nameWidth + 2 + regionWidth + 2 + kindWidth
	if plainWidth < m.contentWidth {
		line += strings.Repeat(" ", m.contentWidth-plainWidth)
	}
	return line
}

func (m ProfileModel) renderStatusBar() string {
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d profiles", len(m.filtered), len(m.profiles))
	hintsPlain := "[Enter:select] [Esc:cancel]"
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

// SelectProfile displays an interactive selector for AWS profiles
func SelectProfile(profiles []ProfileEntry, activeProfile string) (*ProfileEntry, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles available")
	}

	finalModel, err := tea.NewProgram(NewProfileModel(profiles, activeProfile)).Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(ProfileModel)
	if result.cancelled {
		return nil, ErrSelectionCancelled
	}

	return result.selected, nil
}
