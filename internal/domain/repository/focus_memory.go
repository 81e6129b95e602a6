package repository

import (
	"context"

	"github.com/bnema/remotenav/internal/domain/entity"
)

// FocusMemoryRepository defines operations for per-screen focus persistence.
type FocusMemoryRepository interface {
	// Get retrieves the remembered focus for a screen.
	// Returns nil if nothing was remembered.
	Get(ctx context.Context, screen string) (*entity.FocusMemory, error)

	// Set saves or updates the remembered focus key for a screen.
	Set(ctx context.Context, memory *entity.FocusMemory) error

	// Delete forgets the remembered focus for a screen.
	Delete(ctx context.Context, screen string) error

	// GetAll retrieves all remembered screens, most recent first.
	GetAll(ctx context.Context) ([]*entity.FocusMemory, error)

	// Clear forgets every remembered screen.
	Clear(ctx context.Context) error
}

// HintRepository persists whether the remote-control key hint was already shown.
type HintRepository interface {
	// HintSeen reports whether the hint was shown in a previous run.
	HintSeen(ctx context.Context) (bool, error)

	// MarkHintSeen records that the hint was shown.
	MarkHintSeen(ctx context.Context) error

	// ResetHint forgets that the hint was shown.
	ResetHint(ctx context.Context) error
}
