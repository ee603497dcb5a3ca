package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
)

// LazyLayoutPresetRepository opens the database on the first preset call, so
// layout commands that never touch presets skip the SQLite startup cost.
type LazyLayoutPresetRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutPresetRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutPresetRepository creates a lazy-loading preset repository.
func NewLazyLayoutPresetRepository(provider port.DatabaseProvider) repository.LayoutPresetRepository {
	return &LazyLayoutPresetRepository{provider: provider}
}

func (r *LazyLayoutPresetRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutPresetRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutPresetRepository) Save(ctx context.Context, preset *entity.LayoutPreset) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, preset)
}

func (r *LazyLayoutPresetRepository) FindByName(ctx context.Context, name string) (*entity.LayoutPreset, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByName(ctx, name)
}

func (r *LazyLayoutPresetRepository) List(ctx context.Context) ([]*entity.LayoutPreset, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutPresetRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}
