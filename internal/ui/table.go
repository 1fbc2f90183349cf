package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// BoxTable is a small rounded-border table for human-facing listings such as contexts.
type BoxTable struct {
	Headers []string
	Rows    [][]string

	// Highlight marks rows rendered with RunningStyle.
	Highlight map[int]bool
}

func (t BoxTable) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}
	return widths
}

// Render returns the table with a trailing newline.
func (t BoxTable) Render() string {
	widths := t.widths()

	var sb strings.Builder
	border := func(left, mid, right string) {
		sb.WriteString(BorderStyle.Render(left))
		for i, w := range widths {
			sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
			if i < len(widths)-1 {
				sb.WriteString(BorderStyle.Render(mid))
			}
		}
		sb.WriteString(BorderStyle.Render(right))
		sb.WriteString("\n")
	}
	row := func(cells []string, style lipgloss.Style) {
		sb.WriteString(BorderStyle.Render(Vertical))
		for i, w := range widths {
			var c string
			if i < len(cells) {
				c = cells[i]
			}
			sb.WriteString(style.Render(" " + padRight(c, w) + " "))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	border(TopLeft, TopT, TopRight)
	row(t.Headers, HeaderStyle)
	border(LeftT, Cross, RightT)
	for i, cells := range t.Rows {
		style := ValueStyle
		if t.Highlight[i] {
			style = RunningStyle
		}
		row(cells, style)
	}
	border(BottomLeft, BottomT, BottomRight)

	return sb.String()
}
