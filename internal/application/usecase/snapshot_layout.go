package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// SnapshotLayoutUseCase writes the working layout to its file.
type SnapshotLayoutUseCase struct {
	store port.LayoutFileStore
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
func NewSnapshotLayoutUseCase(store port.LayoutFileStore) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{store: store}
}

// Execute encodes tree and saves it.
func (uc *SnapshotLayoutUseCase) Execute(ctx context.Context, tree *entity.LayoutTree) error {
	log := logging.FromContext(ctx)

	if tree == nil {
		return fmt.Errorf("layout tree required")
	}
	if err := tree.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid layout: %w", err)
	}

	layout := entity.ToPersisted(tree)

	log.Debug().
		Str("path", uc.store.Path()).
		Int("node_count", len(layout.Nodes)).
		Int("floating_count", len(layout.Floating)).
		Msg("saving layout snapshot")

	if err := uc.store.Save(ctx, layout); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	return nil
}
