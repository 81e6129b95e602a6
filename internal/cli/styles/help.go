package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// RemoteKeyMap is the key-hint legend shown while navigating with a remote.
// Bindings are for display only; input is routed through the input adapters.
type RemoteKeyMap struct {
	Navigate key.Binding
	Select   key.Binding
	Back     key.Binding
	Gamepad  key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k RemoteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Select, k.Back, k.Gamepad, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k RemoteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Select, k.Back},
		{k.Gamepad, k.Quit},
	}
}

// DefaultRemoteKeyMap returns the remote-control legend.
func DefaultRemoteKeyMap() RemoteKeyMap {
	return RemoteKeyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", "navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Gamepad: key.NewBinding(
			key.WithKeys(),
			key.WithHelp(IconGamepad+" A/B", "select/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
