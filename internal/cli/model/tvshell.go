package model

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/remotenav/internal/cli/styles"
	"github.com/bnema/remotenav/internal/ui/focus"
	"github.com/bnema/remotenav/internal/ui/input"
)

// Rows drawn around the shell viewport.
const (
	headerRows = 2
	footerRows = 2
)

// changedMsg wakes the program after a change made outside Update
// (gamepad frames, hint timers, config reloads).
type changedMsg struct{}

// TVShellDeps are the collaborators of the TV shell model.
type TVShellDeps struct {
	Shell     *Shell
	Engine    *focus.Engine
	Keyboard  *input.KeyboardAdapter
	Pointer   *input.PointerAdapter
	Indicator *input.ModeIndicator
	Theme     *styles.Theme
	// Gamepads is shown in the header; nil hides the count.
	Gamepads func() int
}

// TVShell is the Bubble Tea model of `remotenav demo`. Keys and mouse events
// are translated into the input adapters; rendering is delegated to Shell.
type TVShell struct {
	ctx  context.Context
	deps TVShellDeps

	help    help.Model
	keys    styles.RemoteKeyMap
	changes chan struct{}

	width  int
	height int
}

// NewTVShell creates the model and subscribes it to every change source.
func NewTVShell(ctx context.Context, deps TVShellDeps) *TVShell {
	m := &TVShell{
		ctx:     ctx,
		deps:    deps,
		help:    styles.NewStyledHelp(deps.Theme),
		keys:    styles.DefaultRemoteKeyMap(),
		changes: make(chan struct{}, 1),
	}

	deps.Shell.OnChange(m.Notify)
	deps.Indicator.OnHintChange(func(bool) { m.Notify() })
	deps.Engine.Controller.OnModeChange(func(bool) { m.Notify() })
	return m
}

// Notify schedules a redraw. It never blocks.
func (m *TVShell) Notify() {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

func (m *TVShell) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.changes:
			return changedMsg{}
		case <-m.ctx.Done():
			return tea.Quit()
		}
	}
}

// Init implements tea.Model.
func (m *TVShell) Init() tea.Cmd {
	return m.waitForChange()
}

// Update implements tea.Model.
func (m *TVShell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.deps.Shell.SetViewport(msg.Width, max(msg.Height-headerRows-footerRows, 1))
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case changedMsg:
		return m, m.waitForChange()
	}
	return m, nil
}

func (m *TVShell) handleKey(msg tea.KeyMsg) tea.Cmd {
	inText := m.deps.Shell.InTextField()

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "q":
		if !inText {
			return tea.Quit
		}
	}

	ev := input.KeyEvent{Key: input.ParseKey(msg.String()), InTextField: inText}
	if m.deps.Keyboard.HandleKey(m.ctx, ev) {
		return nil
	}

	if !inText {
		return nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		m.deps.Shell.TypeText(string(msg.Runes))
	case tea.KeySpace:
		m.deps.Shell.TypeText(" ")
	case tea.KeyBackspace:
		m.deps.Shell.DeleteChar()
	}
	return nil
}

func (m *TVShell) handleMouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-headerRows
	ctx := m.ctx

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.deps.Pointer.HandleMove(ctx, (float64(col)+0.5)*cellW, (float64(row)+0.5)*cellH)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if id, ok := m.deps.Shell.HitTest(col, row); ok {
			m.deps.Pointer.HandleClick(ctx, id)
			m.deps.Shell.Activate(id)
		}

	case msg.Button == tea.MouseButtonWheelUp:
		m.deps.Shell.ScrollVertical(-3 * cellH)

	case msg.Button == tea.MouseButtonWheelDown:
		m.deps.Shell.ScrollVertical(3 * cellH)
	}
}

// View implements tea.Model.
func (m *TVShell) View() string {
	theme := m.deps.Theme
	remote := m.deps.Engine.Controller.RemoteMode()

	header := theme.Title.Render(styles.IconRemote+" remotenav") + "  " +
		theme.ModeBadge(remote) + "  " +
		theme.Subtle.Render(m.deps.Shell.Screen())
	if m.deps.Gamepads != nil {
		if n := m.deps.Gamepads(); n > 0 {
			header += "  " + theme.MutedBadge(styles.IconGamepad+" "+strconv.Itoa(n))
		}
	}

	footer := theme.Subtle.Render(m.deps.Shell.Status())
	if m.deps.Indicator.HintVisible() {
		footer = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.deps.Shell.Render(theme),
		strings.Repeat("─", max(m.width, 0)),
		footer,
	)
}
