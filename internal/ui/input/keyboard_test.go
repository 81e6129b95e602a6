package input

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/remotenav/internal/domain/entity"
)

func newKeyboardRig(t *testing.T) (*KeyboardAdapter, *fakeNav, *fakeBack, *fakeNotifier, *manualClock) {
	t.Helper()
	nav := &fakeNav{}
	back := &fakeBack{}
	notifier := &fakeNotifier{}
	clock := newManualClock()
	kb := NewKeyboardAdapter(context.Background(), nav, back, notifier, DefaultKeyNavDelay)
	kb.SetClock(clock.Now)
	return kb, nav, back, notifier, clock
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"up", KeyArrowUp},
		{"ArrowUp", KeyArrowUp},
		{"right", KeyArrowRight},
		{"enter", KeyEnter},
		{" ", KeySpace},
		{"space", KeySpace},
		{"esc", KeyEscape},
		{"Backspace", KeyBackspace},
		{"q", Key("q")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKey(tt.in))
		})
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     KeyEvent
		action Action
		dir    entity.Direction
	}{
		{"arrow up", KeyEvent{Key: KeyArrowUp}, ActionMove, entity.DirUp},
		{"arrow left", KeyEvent{Key: KeyArrowLeft}, ActionMove, entity.DirLeft},
		{"enter", KeyEvent{Key: KeyEnter}, ActionActivate, ""},
		{"space", KeyEvent{Key: KeySpace}, ActionActivate, ""},
		{"escape", KeyEvent{Key: KeyEscape}, ActionBack, ""},
		{"backspace", KeyEvent{Key: KeyBackspace}, ActionBack, ""},
		{"letter", KeyEvent{Key: "a"}, ActionNone, ""},
		{"text field down", KeyEvent{Key: KeyArrowDown, InTextField: true}, ActionMove, entity.DirDown},
		{"text field escape", KeyEvent{Key: KeyEscape, InTextField: true}, ActionBack, ""},
		{"text field left", KeyEvent{Key: KeyArrowLeft, InTextField: true}, ActionNone, ""},
		{"text field space", KeyEvent{Key: KeySpace, InTextField: true}, ActionNone, ""},
		{"text field backspace", KeyEvent{Key: KeyBackspace, InTextField: true}, ActionNone, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := MapKey(tt.ev)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.dir, dir)
		})
	}
}

func TestKeyboardAdapter_NavDelay(t *testing.T) {
	ctx := context.Background()
	kb, nav, _, notifier, clock := newKeyboardRig(t)

	assert.True(t, kb.HandleKey(ctx, KeyEvent{Key: KeyArrowRight}))

	clock.Advance(50 * time.Millisecond)
	assert.True(t, kb.HandleKey(ctx, KeyEvent{Key: KeyArrowRight}), "throttled keys are still consumed")

	clock.Advance(60 * time.Millisecond)
	assert.True(t, kb.HandleKey(ctx, KeyEvent{Key: KeyArrowDown}))

	assert.Equal(t, []entity.Direction{entity.DirRight, entity.DirDown}, nav.Moves())
	assert.Equal(t, 2, notifier.count)
}

func TestKeyboardAdapter_UnmappedKeyPassesThrough(t *testing.T) {
	kb, nav, _, notifier, _ := newKeyboardRig(t)

	assert.False(t, kb.HandleKey(context.Background(), KeyEvent{Key: "x"}))
	assert.Empty(t, nav.Moves())
	assert.Zero(t, notifier.count)
}

func TestKeyboardAdapter_TextField(t *testing.T) {
	ctx := context.Background()
	kb, nav, back, _, _ := newKeyboardRig(t)

	assert.False(t, kb.HandleKey(ctx, KeyEvent{Key: KeyArrowLeft, InTextField: true}))
	assert.False(t, kb.HandleKey(ctx, KeyEvent{Key: KeyBackspace, InTextField: true}))
	assert.Empty(t, nav.Moves())
	assert.Zero(t, back.calls)

	assert.True(t, kb.HandleKey(ctx, KeyEvent{Key: KeyArrowDown, InTextField: true}))
	assert.Equal(t, []entity.Direction{entity.DirDown}, nav.Moves())
}

func TestKeyboardAdapter_Activate(t *testing.T) {
	ctx := context.Background()
	kb, nav, _, _, _ := newKeyboardRig(t)

	assert.False(t, kb.HandleKey(ctx, KeyEvent{Key: KeyEnter}), "nothing focused")

	nav.hasFocus = true
	assert.True(t, kb.HandleKey(ctx, KeyEvent{Key: KeySpace}))
	assert.Equal(t, 1, nav.activations)
}

func TestKeyboardAdapter_Back(t *testing.T) {
	ctx := context.Background()
	kb, _, back, _, _ := newKeyboardRig(t)

	assert.False(t, kb.HandleKey(ctx, KeyEvent{Key: KeyEscape}))
	require.Equal(t, 1, back.calls)

	back.consume = true
	assert.True(t, kb.HandleKey(ctx, KeyEvent{Key: KeyBackspace}))
	assert.Equal(t, 2, back.calls)
}
