package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// RestoreSource tells where a restored layout came from.
type RestoreSource string

const (
	// RestoreFromFile means the stored layout decoded cleanly.
	RestoreFromFile RestoreSource = "file"
	// RestoreFromDefault means nothing was stored yet.
	RestoreFromDefault RestoreSource = "default"
	// RestoreFromFallback means the stored layout was corrupt.
	RestoreFromFallback RestoreSource = "fallback"
)

// RestoreLayoutUseCase loads the working layout with fallbacks.
type RestoreLayoutUseCase struct {
	store port.LayoutFileStore
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(store port.LayoutFileStore) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{store: store}
}

// RestoreLayoutOutput contains the restored tree.
type RestoreLayoutOutput struct {
	Tree   *entity.LayoutTree
	Source RestoreSource
	// DecodeErr is set when Source is RestoreFromFallback.
	DecodeErr error
}

// Execute loads the stored layout. A missing file yields the default layout
// and a corrupt one the single-panel fallback. Only storage failures are
// returned as errors.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context) (*RestoreLayoutOutput, error) {
	log := logging.FromContext(ctx)

	layout, err := uc.store.Load(ctx)
	switch {
	case errors.Is(err, port.ErrLayoutNotFound):
		log.Info().Str("path", uc.store.Path()).Msg("no saved layout, using default")
		return &RestoreLayoutOutput{Tree: entity.DefaultLayoutTree(), Source: RestoreFromDefault}, nil
	case errors.Is(err, entity.ErrDecode):
		return uc.fallback(ctx, err), nil
	case err != nil:
		return nil, fmt.Errorf("load layout: %w", err)
	}

	tree, err := entity.FromPersisted(layout)
	if err != nil {
		return uc.fallback(ctx, err), nil
	}

	log.Info().
		Str("path", uc.store.Path()).
		Int("panel_count", len(tree.Panels())).
		Msg("layout restored")

	return &RestoreLayoutOutput{Tree: tree, Source: RestoreFromFile}, nil
}

func (uc *RestoreLayoutUseCase) fallback(ctx context.Context, cause error) *RestoreLayoutOutput {
	logging.FromContext(ctx).Warn().
		Err(cause).
		Str("path", uc.store.Path()).
		Msg("saved layout is invalid, using fallback layout")
	return &RestoreLayoutOutput{
		Tree:      entity.FallbackLayoutTree(),
		Source:    RestoreFromFallback,
		DecodeErr: cause,
	}
}
