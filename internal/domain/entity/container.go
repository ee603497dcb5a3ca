package entity

import (
	"fmt"
	"slices"
)

// ContainerID identifies a container for the lifetime of a layout tree.
// Ids are issued monotonically and never reused.
type ContainerID uint64

// NoContainer is the zero id, used for "no parent" and "not found".
const NoContainer ContainerID = 0

// PanelID identifies a host-owned panel (hierarchy, inspector, ...).
type PanelID string

// DefaultSplitRatio is used when a split does not specify one.
const DefaultSplitRatio = 0.5

// Orientation describes how a split divides its rectangle.
type Orientation int

const (
	OrientationVertical   Orientation = iota // Children side by side, vertical divider
	OrientationHorizontal                    // Children stacked, horizontal divider
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationVertical:
		return "vertical"
	case OrientationHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// ParseOrientation converts an orientation name back into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "vertical":
		return OrientationVertical, nil
	case "horizontal":
		return OrientationHorizontal, nil
	default:
		return OrientationVertical, fmt.Errorf("unknown orientation %q", s)
	}
}

// ContainerKind distinguishes splits from leaves.
type ContainerKind int

const (
	ContainerLeaf  ContainerKind = iota // Tab stack of panels
	ContainerSplit                      // Two children divided at Ratio
)

// String returns a human-readable kind name.
func (k ContainerKind) String() string {
	switch k {
	case ContainerLeaf:
		return "leaf"
	case ContainerSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Container is a node in the layout tree. Children are referenced by id;
// the tree arena owns every container.
type Container struct {
	ID     ContainerID
	Kind   ContainerKind
	Parent ContainerID // NoContainer for the docked root and floating roots

	// Split fields
	Orientation Orientation
	Ratio       float64 // Portion of the extent given to First
	First       ContainerID
	Second      ContainerID

	// Leaf fields
	Panels []PanelID
	Active int
}

// IsLeaf returns true if this container is a tab stack.
func (c *Container) IsLeaf() bool { return c.Kind == ContainerLeaf }

// IsSplit returns true if this container divides into two children.
func (c *Container) IsSplit() bool { return c.Kind == ContainerSplit }

// ActivePanel returns the visible panel of a leaf, or "" for splits.
func (c *Container) ActivePanel() PanelID {
	if !c.IsLeaf() || c.Active < 0 || c.Active >= len(c.Panels) {
		return ""
	}
	return c.Panels[c.Active]
}

// IndexOf returns the tab index of panel, or -1.
func (c *Container) IndexOf(panel PanelID) int {
	return slices.Index(c.Panels, panel)
}

// Children returns both children of a split in order, nil for leaves.
func (c *Container) Children() []ContainerID {
	if !c.IsSplit() {
		return nil
	}
	return []ContainerID{c.First, c.Second}
}

func (c *Container) clone() *Container {
	cp := *c
	cp.Panels = slices.Clone(c.Panels)
	return &cp
}

// FloatingWindow is an undocked subtree drawn above the docked area.
type FloatingWindow struct {
	Root  ContainerID
	Frame Rect
	Z     int // Higher draws on top; docked containers are 0
}

func validRatio(r float64) bool {
	return r > 0 && r < 1
}
