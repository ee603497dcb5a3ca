package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	// ErrPresetNotFound is returned when no preset has the requested name.
	ErrPresetNotFound = errors.New("preset not found")
	// ErrPresetNameRequired is returned for blank preset names.
	ErrPresetNameRequired = errors.New("preset name required")
)

// ManagePresetsUseCase handles named layout presets.
type ManagePresetsUseCase struct {
	presetRepo repository.LayoutPresetRepository
}

// NewManagePresetsUseCase creates a new preset management use case.
func NewManagePresetsUseCase(presetRepo repository.LayoutPresetRepository) *ManagePresetsUseCase {
	return &ManagePresetsUseCase{presetRepo: presetRepo}
}

func presetName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrPresetNameRequired
	}
	return name, nil
}

// Save stores tree under name, replacing any preset with that name.
func (uc *ManagePresetsUseCase) Save(ctx context.Context, name string, tree *entity.LayoutTree) (*entity.LayoutPreset, error) {
	log := logging.FromContext(ctx)

	name, err := presetName(name)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, fmt.Errorf("layout tree required")
	}
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to save invalid layout: %w", err)
	}

	preset := entity.NewLayoutPreset(name, tree)
	existing, err := uc.presetRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing preset: %w", err)
	}
	if existing != nil {
		preset.ID = existing.ID
		preset.CreatedAt = existing.CreatedAt
		preset.UpdatedAt = time.Now()
	}

	if err := uc.presetRepo.Save(ctx, preset); err != nil {
		return nil, fmt.Errorf("failed to save preset: %w", err)
	}

	log.Info().
		Str("name", name).
		Str("id", string(preset.ID)).
		Int("panel_count", preset.PanelCount).
		Bool("replaced", existing != nil).
		Msg("preset saved")
	return preset, nil
}

// Load decodes the preset called name.
func (uc *ManagePresetsUseCase) Load(ctx context.Context, name string) (*entity.LayoutTree, error) {
	name, err := presetName(name)
	if err != nil {
		return nil, err
	}

	preset, err := uc.presetRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find preset: %w", err)
	}
	if preset == nil {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	tree, err := preset.Tree()
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("name", name).Msg("stored preset is invalid")
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return tree, nil
}

// List returns every stored preset.
func (uc *ManagePresetsUseCase) List(ctx context.Context) ([]*entity.LayoutPreset, error) {
	presets, err := uc.presetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

// Delete removes the preset called name.
func (uc *ManagePresetsUseCase) Delete(ctx context.Context, name string) error {
	name, err := presetName(name)
	if err != nil {
		return err
	}

	preset, err := uc.presetRepo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to find preset: %w", err)
	}
	if preset == nil {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	if err := uc.presetRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	logging.FromContext(ctx).Info().Str("name", name).Msg("preset deleted")
	return nil
}
