package layout

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// DefaultDividerTolerance is how far from a divider a press still grabs it.
const DefaultDividerTolerance = 4.0

// Candidate is a drop target under the cursor.
type Candidate struct {
	Leaf entity.ContainerID
	Zone entity.DropZone
}

// HitTestLeaf returns the top-most leaf containing p.
func HitTestLeaf(sol Solution, p entity.Point) (entity.ContainerID, bool) {
	for _, id := range sol.Leaves {
		if sol.Placements[id].Rect.Contains(p) {
			return id, true
		}
	}
	return entity.NoContainer, false
}

// ResolveCandidate hit-tests p and resolves the zone inside the leaf it lands on.
func ResolveCandidate(sol Solution, p entity.Point, band float64) (Candidate, bool) {
	leaf, ok := HitTestLeaf(sol, p)
	if !ok {
		return Candidate{}, false
	}
	zone, ok := ResolveDropZoneWithBand(sol.Placements[leaf].Rect, p, band)
	if !ok {
		return Candidate{}, false
	}
	return Candidate{Leaf: leaf, Zone: zone}, true
}

// HitTestDivider returns the divider within tolerance of p on the layer the
// cursor is over. When dividers nest, the deepest split wins.
func HitTestDivider(sol Solution, p entity.Point, tolerance float64) (Divider, bool) {
	z := 0
	if leaf, ok := HitTestLeaf(sol, p); ok {
		z = sol.Placements[leaf].Z
	}

	var (
		best  Divider
		found bool
	)
	// Dividers are appended parent before child, so the last match is the deepest.
	for _, d := range sol.Dividers {
		if d.Z == z && nearDivider(d, p, tolerance) {
			best = d
			found = true
		}
	}
	return best, found
}

func nearDivider(d Divider, p entity.Point, tolerance float64) bool {
	b := d.Bounds
	if b.Empty() {
		return false
	}
	if d.Orientation == entity.OrientationVertical {
		return math.Abs(p.X-d.Position) <= tolerance && p.Y >= b.Y && p.Y <= b.Bottom()
	}
	return math.Abs(p.Y-d.Position) <= tolerance && p.X >= b.X && p.X <= b.Right()
}

// DragRatio returns the split ratio after the divider moved by delta pixels
// along its axis, clamped to [lo, hi].
func DragRatio(original, delta, extent, lo, hi float64) float64 {
	if extent <= 0 {
		return original
	}
	return min(max(original+delta/extent, lo), hi)
}
