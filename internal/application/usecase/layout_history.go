package usecase

import (
	"github.com/bnema/dockyard/internal/domain/entity"
)

// DefaultHistoryLimit is the number of undo steps kept when no limit is configured.
const DefaultHistoryLimit = 100

type historyEntry struct {
	label    string
	mergeKey string
	before   *entity.LayoutTree
	after    *entity.LayoutTree
}

// LayoutHistory is a bounded undo/redo stack of whole-tree snapshots.
//
// Consecutive records that share a non-empty merge key collapse into one step,
// so a divider drag that reports many ratios undoes in one go. Seal ends the
// current merge run. It is owned by one ManageLayoutUseCase and shares its
// single-goroutine contract.
type LayoutHistory struct {
	limit  int
	undo   []historyEntry
	redo   []historyEntry
	sealed bool
}

// NewLayoutHistory creates a history keeping at most limit steps.
func NewLayoutHistory(limit int) *LayoutHistory {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &LayoutHistory{limit: limit}
}

// Record stores one committed mutation. before and after must not be
// mutated by the caller afterwards.
func (h *LayoutHistory) Record(label, mergeKey string, before, after *entity.LayoutTree) {
	h.redo = nil
	if n := len(h.undo); n > 0 && !h.sealed && mergeKey != "" && h.undo[n-1].mergeKey == mergeKey {
		h.undo[n-1].after = after
		return
	}

	h.undo = append(h.undo, historyEntry{label: label, mergeKey: mergeKey, before: before, after: after})
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.sealed = false
}

// Seal stops the next record from merging into the current top entry.
func (h *LayoutHistory) Seal() {
	h.sealed = true
}

// Undo restores tree to the state before the latest step.
func (h *LayoutHistory) Undo(tree *entity.LayoutTree) (string, bool) {
	n := len(h.undo)
	if n == 0 {
		return "", false
	}
	e := h.undo[n-1]
	h.undo = h.undo[:n-1]
	tree.ReplaceWith(e.before)
	h.redo = append(h.redo, e)
	h.sealed = true
	return e.label, true
}

// Redo re-applies the most recently undone step.
func (h *LayoutHistory) Redo(tree *entity.LayoutTree) (string, bool) {
	n := len(h.redo)
	if n == 0 {
		return "", false
	}
	e := h.redo[n-1]
	h.redo = h.redo[:n-1]
	tree.ReplaceWith(e.after)
	h.undo = append(h.undo, e)
	h.sealed = true
	return e.label, true
}

// CanUndo reports whether Undo would do anything.
func (h *LayoutHistory) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether Redo would do anything.
func (h *LayoutHistory) CanRedo() bool {
	return len(h.redo) > 0
}

// Len returns the number of undoable steps.
func (h *LayoutHistory) Len() int {
	return len(h.undo)
}

// Clear drops every step.
func (h *LayoutHistory) Clear() {
	h.undo = nil
	h.redo = nil
	h.sealed = false
}
