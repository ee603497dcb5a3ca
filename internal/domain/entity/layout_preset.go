package entity

import (
	"time"

	"github.com/google/uuid"
)

// PresetID uniquely identifies a saved layout preset.
type PresetID string

// LayoutPreset is a named layout stored alongside the working layout file.
type LayoutPreset struct {
	ID         PresetID
	Name       string
	Layout     *PersistedLayout
	PanelCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLayoutPreset captures tree under name.
func NewLayoutPreset(name string, tree *LayoutTree) *LayoutPreset {
	now := time.Now()
	return &LayoutPreset{
		ID:         PresetID(uuid.New().String()),
		Name:       name,
		Layout:     ToPersisted(tree),
		PanelCount: len(tree.Panels()),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Tree decodes the preset back into a layout tree.
func (p *LayoutPreset) Tree() (*LayoutTree, error) {
	return FromPersisted(p.Layout)
}
