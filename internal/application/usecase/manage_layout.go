package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	// ErrNothingToUndo is returned by Undo on an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo when no step was undone.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// LayoutPolicy holds the tunables applied on top of the raw tree operations.
type LayoutPolicy struct {
	DefaultRatio  float64
	MinSplitRatio float64
	MaxSplitRatio float64
}

// DefaultLayoutPolicy matches the built-in configuration defaults.
func DefaultLayoutPolicy() LayoutPolicy {
	return LayoutPolicy{
		DefaultRatio:  entity.DefaultSplitRatio,
		MinSplitRatio: 0.1,
		MaxSplitRatio: 0.9,
	}
}

// ClampRatio keeps ratio inside the policy's divider range.
func (p LayoutPolicy) ClampRatio(ratio float64) float64 {
	return min(max(ratio, p.MinSplitRatio), p.MaxSplitRatio)
}

// ManageLayoutUseCase applies layout mutations and records them for undo.
// Every operation runs on a copy of the tree and is committed only if it
// succeeds, so a failed call leaves the tree untouched.
//
// It is not safe for concurrent use: the host drives it from its frame or
// update loop, and Tree returns the live tree.
type ManageLayoutUseCase struct {
	tree    *entity.LayoutTree
	history *LayoutHistory
	policy  LayoutPolicy
}

// NewManageLayoutUseCase wraps tree. A nil history gets a fresh default-sized one.
func NewManageLayoutUseCase(tree *entity.LayoutTree, history *LayoutHistory, policy LayoutPolicy) *ManageLayoutUseCase {
	if history == nil {
		history = NewLayoutHistory(DefaultHistoryLimit)
	}
	return &ManageLayoutUseCase{
		tree:    tree,
		history: history,
		policy:  policy,
	}
}

// MutationOutput describes a committed (or no-op) mutation.
type MutationOutput struct {
	// Leaf is the leaf the operation produced or targeted, NoContainer when none.
	Leaf    entity.ContainerID
	Version uint64
	Label   string
	// Changed is false when the call was valid but left the tree as it was.
	Changed bool
}

// Tree returns the live tree. Callers must treat it as read-only.
func (uc *ManageLayoutUseCase) Tree() *entity.LayoutTree {
	return uc.tree
}

// History exposes the undo stack.
func (uc *ManageLayoutUseCase) History() *LayoutHistory {
	return uc.history
}

// Policy returns the ratio policy in use.
func (uc *ManageLayoutUseCase) Policy() LayoutPolicy {
	return uc.policy
}

func (uc *ManageLayoutUseCase) apply(
	ctx context.Context,
	label, mergeKey string,
	op func(t *entity.LayoutTree) (entity.ContainerID, error),
) (*MutationOutput, error) {
	log := logging.FromContext(logging.WithOperation(ctx, label))

	work := uc.tree.Clone()
	leaf, err := op(work)
	if err != nil {
		log.Debug().Err(err).Msg("layout mutation rejected")
		return nil, err
	}
	if work.Version() == uc.tree.Version() {
		return &MutationOutput{Leaf: leaf, Version: uc.tree.Version(), Label: label}, nil
	}

	before := uc.tree.Clone()
	uc.tree.ReplaceWith(work)
	uc.history.Record(label, mergeKey, before, uc.tree.Clone())

	log.Debug().
		Uint64("version", uc.tree.Version()).
		Uint64("leaf", uint64(leaf)).
		Msg("layout mutation applied")

	return &MutationOutput{Leaf: leaf, Version: uc.tree.Version(), Label: label, Changed: true}, nil
}

// SplitPanelInput contains parameters for docking a new panel.
type SplitPanelInput struct {
	Target entity.ContainerID
	Panel  entity.PanelID
	Zone   entity.DropZone
	Ratio  float64 // 0 = policy default
}

// Split docks a new panel next to (or into) the target leaf.
func (uc *ManageLayoutUseCase) Split(ctx context.Context, input SplitPanelInput) (*MutationOutput, error) {
	ratio := input.Ratio
	if ratio == 0 {
		ratio = uc.policy.DefaultRatio
	}
	label := fmt.Sprintf("split %s %s", input.Panel, input.Zone)
	return uc.apply(ctx, label, "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return t.Split(input.Target, input.Panel, input.Zone, ratio)
	})
}

// ClosePanel removes a panel and collapses what it leaves behind.
func (uc *ManageLayoutUseCase) ClosePanel(ctx context.Context, panel entity.PanelID) (*MutationOutput, error) {
	return uc.apply(ctx, "close "+string(panel), "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return entity.NoContainer, t.RemovePanel(panel)
	})
}

// MovePanelInput contains parameters for a drag-and-drop move.
type MovePanelInput struct {
	Panel  entity.PanelID
	Target entity.ContainerID
	Zone   entity.DropZone
}

// MovePanel relocates a panel as one undoable step.
func (uc *ManageLayoutUseCase) MovePanel(ctx context.Context, input MovePanelInput) (*MutationOutput, error) {
	label := fmt.Sprintf("move %s %s", input.Panel, input.Zone)
	return uc.apply(ctx, label, "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return t.MovePanel(input.Panel, input.Target, input.Zone)
	})
}

// SetActiveTab activates panel inside leaf.
func (uc *ManageLayoutUseCase) SetActiveTab(ctx context.Context, leaf entity.ContainerID, panel entity.PanelID) (*MutationOutput, error) {
	return uc.apply(ctx, "activate "+string(panel), "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return leaf, t.SetActiveTab(leaf, panel)
	})
}

// SetSplitRatio moves a divider. The ratio is clamped to the policy range and
// successive calls on the same split merge into one undo step until the
// history is sealed.
func (uc *ManageLayoutUseCase) SetSplitRatio(ctx context.Context, split entity.ContainerID, ratio float64) (*MutationOutput, error) {
	clamped := uc.policy.ClampRatio(ratio)
	mergeKey := fmt.Sprintf("ratio:%d", split)
	return uc.apply(ctx, "resize", mergeKey, func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return split, t.SetSplitRatio(split, clamped)
	})
}

// ReorderTab moves a panel within its own stack.
func (uc *ManageLayoutUseCase) ReorderTab(ctx context.Context, panel entity.PanelID, index int) (*MutationOutput, error) {
	return uc.apply(ctx, "reorder "+string(panel), "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		if err := t.ReorderTab(panel, index); err != nil {
			return entity.NoContainer, err
		}
		leaf, _ := t.FindLeafContaining(panel)
		return leaf, nil
	})
}

// Undock floats a panel in a new window at frame.
func (uc *ManageLayoutUseCase) Undock(ctx context.Context, panel entity.PanelID, frame entity.Rect) (*MutationOutput, error) {
	return uc.apply(ctx, "undock "+string(panel), "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return t.Undock(panel, frame)
	})
}

// DockFloatingInput contains parameters for docking a floating window.
type DockFloatingInput struct {
	Window entity.ContainerID
	Target entity.ContainerID
	Zone   entity.DropZone
}

// DockFloating docks every panel of a floating window at the target.
func (uc *ManageLayoutUseCase) DockFloating(ctx context.Context, input DockFloatingInput) (*MutationOutput, error) {
	label := fmt.Sprintf("dock window %d %s", input.Window, input.Zone)
	return uc.apply(ctx, label, "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return t.DockFloating(input.Window, input.Target, input.Zone)
	})
}

// RaiseFloating brings a floating window to the front.
func (uc *ManageLayoutUseCase) RaiseFloating(ctx context.Context, window entity.ContainerID) (*MutationOutput, error) {
	return uc.apply(ctx, "raise window", "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return window, t.RaiseFloating(window)
	})
}

// MoveFloating changes the frame of a floating window. Successive moves of
// one window merge like divider drags.
func (uc *ManageLayoutUseCase) MoveFloating(ctx context.Context, window entity.ContainerID, frame entity.Rect) (*MutationOutput, error) {
	mergeKey := fmt.Sprintf("frame:%d", window)
	return uc.apply(ctx, "move window", mergeKey, func(t *entity.LayoutTree) (entity.ContainerID, error) {
		return window, t.MoveFloating(window, frame)
	})
}

// Replace swaps in a whole new layout, e.g. a loaded preset, as one undoable
// step. The incoming containers get fresh ids; Undo brings the old ones back.
func (uc *ManageLayoutUseCase) Replace(ctx context.Context, label string, next *entity.LayoutTree) (*MutationOutput, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: replacement layout is nil", entity.ErrInvalidOperation)
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return uc.apply(ctx, label, "", func(t *entity.LayoutTree) (entity.ContainerID, error) {
		t.Adopt(next)
		return t.Root(), nil
	})
}

// Undo reverts the latest step.
func (uc *ManageLayoutUseCase) Undo(ctx context.Context) (*MutationOutput, error) {
	label, ok := uc.history.Undo(uc.tree)
	if !ok {
		return nil, ErrNothingToUndo
	}
	logging.FromContext(ctx).Debug().Str("op", label).Uint64("version", uc.tree.Version()).Msg("layout undo")
	return &MutationOutput{Leaf: uc.tree.Root(), Version: uc.tree.Version(), Label: label, Changed: true}, nil
}

// Redo re-applies the latest undone step.
func (uc *ManageLayoutUseCase) Redo(ctx context.Context) (*MutationOutput, error) {
	label, ok := uc.history.Redo(uc.tree)
	if !ok {
		return nil, ErrNothingToRedo
	}
	logging.FromContext(ctx).Debug().Str("op", label).Uint64("version", uc.tree.Version()).Msg("layout redo")
	return &MutationOutput{Leaf: uc.tree.Root(), Version: uc.tree.Version(), Label: label, Changed: true}, nil
}

// SealHistory ends the current merge run, typically at the end of a gesture.
func (uc *ManageLayoutUseCase) SealHistory() {
	uc.history.Seal()
}
