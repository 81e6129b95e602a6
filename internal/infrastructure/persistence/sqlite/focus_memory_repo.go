package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/domain/repository"
	"github.com/bnema/remotenav/internal/logging"
)

const flagHintSeen = "hint_seen"

type focusMemoryRepo struct {
	queries *Queries
	now     func() time.Time
}

// NewFocusMemoryRepository creates a new SQLite-backed focus memory repository.
func NewFocusMemoryRepository(db *sql.DB) repository.FocusMemoryRepository {
	return &focusMemoryRepo{queries: newQueries(db), now: time.Now}
}

func (r *focusMemoryRepo) Get(ctx context.Context, screen string) (*entity.FocusMemory, error) {
	row, err := r.queries.GetFocusMemory(ctx, screen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get focus memory for %q: %w", screen, err)
	}
	return focusMemoryFromRow(row), nil
}

func (r *focusMemoryRepo) Set(ctx context.Context, memory *entity.FocusMemory) error {
	if memory == nil || memory.Screen == "" {
		return fmt.Errorf("focus memory requires a screen")
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("screen", memory.Screen).Str("key", memory.Key).Msg("remembering focus")

	updatedAt := memory.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}
	return r.queries.UpsertFocusMemory(ctx, focusMemoryRow{
		Screen:    memory.Screen,
		FocusKey:  memory.Key,
		UpdatedAt: updatedAt.UnixNano(),
	})
}

func (r *focusMemoryRepo) Delete(ctx context.Context, screen string) error {
	return r.queries.DeleteFocusMemory(ctx, screen)
}

func (r *focusMemoryRepo) GetAll(ctx context.Context) ([]*entity.FocusMemory, error) {
	rows, err := r.queries.ListFocusMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list focus memory: %w", err)
	}

	items := make([]*entity.FocusMemory, len(rows))
	for i, row := range rows {
		items[i] = focusMemoryFromRow(row)
	}
	return items, nil
}

func (r *focusMemoryRepo) Clear(ctx context.Context) error {
	return r.queries.ClearFocusMemory(ctx)
}

func focusMemoryFromRow(row focusMemoryRow) *entity.FocusMemory {
	return &entity.FocusMemory{
		Screen:    row.Screen,
		Key:       row.FocusKey,
		UpdatedAt: time.Unix(0, row.UpdatedAt),
	}
}

type hintRepo struct {
	queries *Queries
}

// NewHintRepository creates a SQLite-backed store for the key-hint flag.
func NewHintRepository(db *sql.DB) repository.HintRepository {
	return &hintRepo{queries: newQueries(db)}
}

func (r *hintRepo) HintSeen(ctx context.Context) (bool, error) {
	value, err := r.queries.GetFlag(ctx, flagHintSeen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("read hint flag: %w", err)
	}
	return value != 0, nil
}

func (r *hintRepo) MarkHintSeen(ctx context.Context) error {
	return r.queries.SetFlag(ctx, flagHintSeen, 1, time.Now().UnixNano())
}

func (r *hintRepo) ResetHint(ctx context.Context) error {
	return r.queries.SetFlag(ctx, flagHintSeen, 0, time.Now().UnixNano())
}
