// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrappers implement the same repository interfaces as their eager
// counterparts and open the database on first use through a
// port.DatabaseProvider.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/domain/repository"
)

// LazyFocusMemoryRepository wraps a focus memory repository with lazy database initialization.
type LazyFocusMemoryRepository struct {
	provider port.DatabaseProvider
	repo     repository.FocusMemoryRepository
	once     sync.Once
	initErr  error
}

// NewLazyFocusMemoryRepository creates a lazy-loading focus memory repository.
func NewLazyFocusMemoryRepository(provider port.DatabaseProvider) repository.FocusMemoryRepository {
	return &LazyFocusMemoryRepository{provider: provider}
}

func (r *LazyFocusMemoryRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewFocusMemoryRepository(db)
	})
	return r.initErr
}

func (r *LazyFocusMemoryRepository) Get(ctx context.Context, screen string) (*entity.FocusMemory, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, screen)
}

func (r *LazyFocusMemoryRepository) Set(ctx context.Context, memory *entity.FocusMemory) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, memory)
}

func (r *LazyFocusMemoryRepository) Delete(ctx context.Context, screen string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, screen)
}

func (r *LazyFocusMemoryRepository) GetAll(ctx context.Context) ([]*entity.FocusMemory, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetAll(ctx)
}

func (r *LazyFocusMemoryRepository) Clear(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Clear(ctx)
}

// LazyHintRepository wraps a hint repository with lazy database initialization.
type LazyHintRepository struct {
	provider port.DatabaseProvider
	repo     repository.HintRepository
	once     sync.Once
	initErr  error
}

// NewLazyHintRepository creates a lazy-loading hint repository.
func NewLazyHintRepository(provider port.DatabaseProvider) repository.HintRepository {
	return &LazyHintRepository{provider: provider}
}

func (r *LazyHintRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewHintRepository(db)
	})
	return r.initErr
}

func (r *LazyHintRepository) HintSeen(ctx context.Context) (bool, error) {
	if err := r.init(ctx); err != nil {
		return false, err
	}
	return r.repo.HintSeen(ctx)
}

func (r *LazyHintRepository) MarkHintSeen(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.MarkHintSeen(ctx)
}

func (r *LazyHintRepository) ResetHint(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.ResetHint(ctx)
}
