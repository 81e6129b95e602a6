package input

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newPointerRig() (*PointerAdapter, *fakeNav, *manualClock) {
	nav := &fakeNav{remote: true}
	clock := newManualClock()
	p := NewPointerAdapter(nav, DefaultPointerOptions())
	p.SetClock(clock.Now)
	return p, nav, clock
}

func TestPointerAdapter_ClickKeepsRemoteMode(t *testing.T) {
	p, nav, _ := newPointerRig()

	assert.True(t, p.HandleClick(context.Background(), "movie-3"))
	assert.False(t, p.HandleClick(context.Background(), ""))

	assert.Equal(t, 1, len(nav.synced))
	assert.True(t, nav.remote)
	assert.Zero(t, nav.pointerMode)
}

func TestPointerAdapter_JitterStaysRemote(t *testing.T) {
	ctx := context.Background()
	p, nav, clock := newPointerRig()

	x := 100.0
	for i := range 50 {
		clock.Advance(10 * time.Millisecond)
		if i%2 == 0 {
			x += 3
		} else {
			x -= 3
		}
		assert.False(t, p.HandleMove(ctx, x, 100))
	}
	assert.True(t, nav.remote)
}

func TestPointerAdapter_DeliberateMovement(t *testing.T) {
	ctx := context.Background()
	p, nav, clock := newPointerRig()

	p.HandleMove(ctx, 0, 0)
	for i := 1; i <= 4; i++ {
		clock.Advance(20 * time.Millisecond)
		assert.False(t, p.HandleMove(ctx, float64(i*15), 0))
	}
	clock.Advance(20 * time.Millisecond)
	assert.True(t, p.HandleMove(ctx, 75, 0))

	assert.False(t, nav.remote)
	assert.Equal(t, 1, nav.pointerMode)
}

func TestPointerAdapter_SmallMoveResetsCount(t *testing.T) {
	ctx := context.Background()
	p, nav, clock := newPointerRig()

	p.HandleMove(ctx, 0, 0)
	x := 0.0
	for range 4 {
		clock.Advance(20 * time.Millisecond)
		x += 20
		p.HandleMove(ctx, x, 0)
	}
	clock.Advance(20 * time.Millisecond)
	p.HandleMove(ctx, x+2, 0)

	clock.Advance(20 * time.Millisecond)
	assert.False(t, p.HandleMove(ctx, x+30, 0))
	assert.True(t, nav.remote)
}

func TestPointerAdapter_ResetWindow(t *testing.T) {
	ctx := context.Background()
	p, nav, clock := newPointerRig()

	p.HandleMove(ctx, 0, 0)
	x := 0.0
	for range 4 {
		clock.Advance(20 * time.Millisecond)
		x += 20
		p.HandleMove(ctx, x, 0)
	}

	clock.Advance(time.Second)
	x += 20
	assert.False(t, p.HandleMove(ctx, x, 0), "stale moves no longer count")
	assert.True(t, nav.remote)
}

func TestPointerAdapter_IgnoredInPointerMode(t *testing.T) {
	ctx := context.Background()
	p, nav, clock := newPointerRig()
	nav.remote = false

	p.HandleMove(ctx, 0, 0)
	for i := 1; i <= 10; i++ {
		clock.Advance(20 * time.Millisecond)
		assert.False(t, p.HandleMove(ctx, float64(i*50), 0))
	}
	assert.Zero(t, nav.pointerMode)
}
