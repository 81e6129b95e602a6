package logging

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and re-panics.
// Use with defer at the top of long-lived goroutines.
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	LogPanic(ctx, r)
	panic(r)
}

// LogPanic records a recovered value together with runtime details.
func LogPanic(ctx context.Context, r any) {
	log := FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s", r, debug.Stack())
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	log.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Int("goroutines", runtime.NumGoroutine()).
		Uint64("alloc_kb", m.Alloc/1024).
		Bytes("stack", debug.Stack()).
		Msg("panic recovered")
}
