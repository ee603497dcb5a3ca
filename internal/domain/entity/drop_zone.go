package entity

import "fmt"

// DropZone indicates where a dragged panel lands relative to a target leaf.
type DropZone int

const (
	DropCenter DropZone = iota // Add as a tab to the target stack
	DropLeft                   // Dock left of the target
	DropRight                  // Dock right of the target
	DropTop                    // Dock above the target
	DropBottom                 // Dock below the target
)

// String returns a human-readable zone name.
func (z DropZone) String() string {
	switch z {
	case DropCenter:
		return "center"
	case DropLeft:
		return "left"
	case DropRight:
		return "right"
	case DropTop:
		return "top"
	case DropBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParseDropZone converts a zone name back into a DropZone.
func ParseDropZone(s string) (DropZone, error) {
	switch s {
	case "center":
		return DropCenter, nil
	case "left":
		return DropLeft, nil
	case "right":
		return DropRight, nil
	case "top":
		return DropTop, nil
	case "bottom":
		return DropBottom, nil
	default:
		return DropCenter, fmt.Errorf("unknown drop zone %q", s)
	}
}

// IsEdge reports whether the zone creates a split rather than a tab.
func (z DropZone) IsEdge() bool {
	switch z {
	case DropLeft, DropRight, DropTop, DropBottom:
		return true
	default:
		return false
	}
}

// Orientation returns the split orientation an edge zone produces.
// Left/Right place children side by side (vertical divider),
// Top/Bottom stack them (horizontal divider).
func (z DropZone) Orientation() Orientation {
	switch z {
	case DropTop, DropBottom:
		return OrientationHorizontal
	default:
		return OrientationVertical
	}
}

// NewLeafFirst reports whether the docked panel becomes the first child.
func (z DropZone) NewLeafFirst() bool {
	return z == DropLeft || z == DropTop
}
