package input

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameLoop_StartStop(t *testing.T) {
	var ticks atomic.Int32
	loop := NewFrameLoop(time.Millisecond, func(context.Context) {
		ticks.Add(1)
	})

	assert.True(t, loop.Start(context.Background()))
	assert.False(t, loop.Start(context.Background()), "already running")
	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	loop.Stop()
	assert.False(t, loop.Running())

	stopped := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())

	loop.Stop()
	assert.True(t, loop.Start(context.Background()), "restart after stop")
	loop.Stop()
}

func TestFrameLoop_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewFrameLoop(time.Millisecond, func(context.Context) {})

	assert.True(t, loop.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !loop.Running() }, time.Second, time.Millisecond)
	assert.True(t, loop.Start(context.Background()))
	loop.Stop()
}

func TestFrameLoop_DefaultInterval(t *testing.T) {
	loop := NewFrameLoop(0, func(context.Context) {})
	assert.Equal(t, DefaultFrameInterval, loop.interval)
}
