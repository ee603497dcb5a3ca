package repository

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutPresetRepository persists named layout presets.
type LayoutPresetRepository interface {
	// Save inserts the preset or replaces the one with the same name.
	// The stored ID wins on replace and is written back to preset.ID.
	Save(ctx context.Context, preset *entity.LayoutPreset) error

	// FindByName returns nil, nil when no preset has that name.
	FindByName(ctx context.Context, name string) (*entity.LayoutPreset, error)

	// List returns every preset ordered by name.
	List(ctx context.Context) ([]*entity.LayoutPreset, error)

	// Delete removes a preset. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
