package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RenderTable renders rows as a static themed table sized to its content.
func RenderTable(theme *Theme, columns []table.Column, rows []table.Row) string {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	return NewStyledTable(theme, columns, rows, width, len(rows)+1).View()
}

// FocusMemoryColumns returns columns for the focus memory table.
func FocusMemoryColumns() []table.Column {
	return []table.Column{
		{Title: "Screen", Width: 20},
		{Title: "Focus key", Width: 32},
		{Title: "Updated", Width: 12},
	}
}

// GamepadColumns returns columns for the gamepad table.
func GamepadColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Device", Width: 18},
		{Title: "Name", Width: 36},
		{Title: "Axes", Width: 5},
		{Title: "Buttons", Width: 8},
	}
}

// EmptyState renders a muted "nothing here" line.
func (t *Theme) EmptyState(what string) string {
	return fmt.Sprintf("\n  %s %s\n", t.Subtle.Render(IconInfo), t.Subtle.Render(strings.TrimSpace(what)))
}
