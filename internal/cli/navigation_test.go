package cli

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/remotenav/internal/cli/model"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/infrastructure/config"
	"github.com/bnema/remotenav/internal/ui/input"
)

type noPads struct{}

func (noPads) Gamepads() []entity.GamepadState { return nil }

type countingMemory struct {
	mu   sync.Mutex
	sets int
	data map[string]*entity.FocusMemory
}

func (m *countingMemory) Get(_ context.Context, screen string) (*entity.FocusMemory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[screen], nil
}

func (m *countingMemory) Set(_ context.Context, mem *entity.FocusMemory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]*entity.FocusMemory)
	}
	m.sets++
	m.data[mem.Screen] = mem
	return nil
}

func (m *countingMemory) Delete(context.Context, string) error { return nil }

func (m *countingMemory) GetAll(context.Context) ([]*entity.FocusMemory, error) { return nil, nil }

func (m *countingMemory) Clear(context.Context) error { return nil }

func (m *countingMemory) Sets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Keyboard.NavDelayMs = 0
	return cfg
}

func newTestNavigation(t *testing.T, cfg *config.Config, memory *countingMemory) (*Navigation, *model.Shell) {
	t.Helper()
	ctx := context.Background()
	shell := model.NewShell(ctx, model.DemoCatalog())
	shell.SetViewport(120, 40)

	deps := NavigationDeps{
		Surface:  shell,
		Renderer: shell,
		Scroller: shell,
		Router:   shell,
		Gamepads: noPads{},
	}
	if memory != nil {
		deps.Memory = memory
	}
	nav := NewNavigation(ctx, cfg, deps)
	shell.Attach(nav.Engine)
	t.Cleanup(nav.Close)
	return nav, shell
}

func press(nav *Navigation, key input.Key) bool {
	return nav.Keyboard.HandleKey(context.Background(), input.KeyEvent{Key: key})
}

func TestNewNavigation_GamepadFollowsConfig(t *testing.T) {
	nav, _ := newTestNavigation(t, testConfig(), nil)
	assert.NotNil(t, nav.Gamepad)

	cfg := testConfig()
	cfg.Gamepad.Enabled = false
	nav, _ = newTestNavigation(t, cfg, nil)
	assert.Nil(t, nav.Gamepad)
}

func TestNavigation_KeyboardDrivesShell(t *testing.T) {
	nav, shell := newTestNavigation(t, testConfig(), nil)

	require.True(t, press(nav, input.KeyArrowDown))
	assert.True(t, nav.Engine.Controller.RemoteMode())
	assert.True(t, shell.Focused("channel:news24"), "cold start focuses the first channel")
	assert.True(t, nav.Indicator.HintVisible())

	require.True(t, press(nav, input.KeyArrowDown))
	assert.True(t, shell.Focused("channel:sport"))
	assert.False(t, shell.Focused("channel:news24"))
}

func TestNavigation_ApplyDisables(t *testing.T) {
	nav, shell := newTestNavigation(t, testConfig(), nil)
	require.True(t, press(nav, input.KeyArrowDown))

	cfg := testConfig()
	cfg.Navigation.Enabled = false
	nav.Apply(context.Background(), cfg)

	press(nav, input.KeyArrowDown)
	assert.True(t, shell.Focused("channel:news24"), "focus is kept while disabled")
	assert.False(t, nav.Engine.Controller.State().Enabled)
}

func TestNavigation_RememberFocusOff(t *testing.T) {
	mem := &countingMemory{}
	cfg := testConfig()
	cfg.Database.RememberFocus = false
	nav, _ := newTestNavigation(t, cfg, mem)

	ctx := context.Background()
	nav.Engine.Controller.ResetForRoute(ctx, model.ScreenHome)
	require.True(t, press(nav, input.KeyArrowDown))
	nav.Engine.Controller.ResetForRoute(ctx, model.ScreenPlayer)

	assert.Zero(t, mem.Sets())
}

func TestNavigation_RememberFocusOn(t *testing.T) {
	mem := &countingMemory{}
	nav, _ := newTestNavigation(t, testConfig(), mem)

	ctx := context.Background()
	nav.Engine.Controller.ResetForRoute(ctx, model.ScreenHome)
	require.True(t, press(nav, input.KeyArrowDown))
	nav.Engine.Controller.ResetForRoute(ctx, model.ScreenPlayer)

	require.Equal(t, 1, mem.Sets())
	got, err := mem.Get(ctx, model.ScreenHome)
	require.NoError(t, err)
	assert.Equal(t, "channel:news24", got.Key)
}
