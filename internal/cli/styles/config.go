package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/remotenav/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file location and how many keys
// differ from the defaults.
func (r *ConfigRenderer) RenderConfigInfo(path string, changedCount int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := fmt.Sprintf("\n  %s %s", iconStyle.Render(IconCheck), r.theme.Subtle.Render("Using defaults"))
	if changedCount > 0 {
		countStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
		status = fmt.Sprintf("\n  %s %s settings differ from defaults",
			iconStyle.Render(IconInfo),
			countStyle.Render(fmt.Sprintf("%d", changedCount)),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderChanges renders the keys that differ between two configs.
func (r *ConfigRenderer) RenderChanges(changes []config.KeyChange) string {
	if len(changes) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Highlight
	oldStyle := r.theme.Subtle
	newStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  Changed settings (%d):\n", len(changes)))

	for _, c := range changes {
		var detail string
		switch c.Type {
		case config.KeyChangeAdded:
			detail = newStyle.Render(c.NewValue)
		case config.KeyChangeRemoved:
			detail = oldStyle.Render(c.OldValue) + " (removed)"
		default:
			detail = fmt.Sprintf("%s %s %s", oldStyle.Render(c.OldValue), IconCursor, newStyle.Render(c.NewValue))
		}
		sb.WriteString(fmt.Sprintf(
			"    %s %s\n      %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render(c.Key),
			detail,
		))
	}

	return sb.String()
}

// RenderSchemaWritten renders the success message after writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Schema written to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
