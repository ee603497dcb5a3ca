package layout

import "github.com/bnema/dockyard/internal/domain/entity"

// DefaultEdgeBand is the share of each axis claimed by an edge zone.
const DefaultEdgeBand = 0.3

// ResolveDropZone maps a cursor inside r to a drop zone using the default
// 30% edge bands. It returns false when p lies outside r.
func ResolveDropZone(r entity.Rect, p entity.Point) (entity.DropZone, bool) {
	return ResolveDropZoneWithBand(r, p, DefaultEdgeBand)
}

// ResolveDropZoneWithBand is ResolveDropZone with a custom band, clamped to
// [0, 0.5]. Lateral edges are tested before vertical ones, so corners
// resolve to Left or Right.
func ResolveDropZoneWithBand(r entity.Rect, p entity.Point, band float64) (entity.DropZone, bool) {
	if !r.Contains(p) {
		return entity.DropCenter, false
	}
	band = min(max(band, 0), 0.5)
	x, y := r.Normalize(p)

	switch {
	case x < band:
		return entity.DropLeft, true
	case x > 1-band:
		return entity.DropRight, true
	case y < band:
		return entity.DropTop, true
	case y > 1-band:
		return entity.DropBottom, true
	default:
		return entity.DropCenter, true
	}
}

// ZoneRect returns the area of r that a zone would hand to the dropped panel,
// for drawing a drop preview.
func ZoneRect(r entity.Rect, zone entity.DropZone) entity.Rect {
	switch zone {
	case entity.DropLeft:
		return entity.NewRect(r.X, r.Y, r.W/2, r.H)
	case entity.DropRight:
		return entity.NewRect(r.X+r.W/2, r.Y, r.W/2, r.H)
	case entity.DropTop:
		return entity.NewRect(r.X, r.Y, r.W, r.H/2)
	case entity.DropBottom:
		return entity.NewRect(r.X, r.Y+r.H/2, r.W, r.H/2)
	default:
		return r
	}
}
