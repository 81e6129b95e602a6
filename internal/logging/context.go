package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With creates a child logger with additional fields and returns a new context
func With(ctx context.Context, fields map[string]any) context.Context {
	childCtx := FromContext(ctx).With()
	for k, v := range fields {
		childCtx = childCtx.Interface(k, v)
	}
	return WithContext(ctx, childCtx.Logger())
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithScreen creates a child logger with a screen field
func WithScreen(ctx context.Context, screen string) context.Context {
	return withStr(ctx, "screen", screen)
}

// WithGamepad creates a child logger with a gamepad index field
func WithGamepad(ctx context.Context, index int) context.Context {
	childLogger := FromContext(ctx).With().Int("gamepad", index).Logger()
	return WithContext(ctx, childLogger)
}

func withStr(ctx context.Context, key, value string) context.Context {
	childLogger := FromContext(ctx).With().Str(key, value).Logger()
	return WithContext(ctx, childLogger)
}
