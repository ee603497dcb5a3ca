package layout_test

import (
	"testing"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/stretchr/testify/assert"
)

func TestResolveDropZone(t *testing.T) {
	r := entity.NewRect(100, 50, 200, 100)
	at := func(nx, ny float64) entity.Point {
		return entity.Point{X: r.X + nx*r.W, Y: r.Y + ny*r.H}
	}

	tests := []struct {
		name   string
		p      entity.Point
		want   entity.DropZone
		wantOK bool
	}{
		{"left band", at(0.1, 0.5), entity.DropLeft, true},
		{"center", at(0.5, 0.5), entity.DropCenter, true},
		{"top-left corner resolves lateral", at(0.1, 0.1), entity.DropLeft, true},
		{"bottom-right corner resolves lateral", at(0.9, 0.9), entity.DropRight, true},
		{"right band", at(0.8, 0.5), entity.DropRight, true},
		{"top band", at(0.5, 0.2), entity.DropTop, true},
		{"bottom band", at(0.5, 0.8), entity.DropBottom, true},
		{"band boundary is center", at(0.3, 0.7), entity.DropCenter, true},
		{"left edge inclusive", at(0, 0.5), entity.DropLeft, true},
		{"bottom-right corner inclusive", at(1, 1), entity.DropRight, true},
		{"outside left", entity.Point{X: 99, Y: 100}, entity.DropCenter, false},
		{"outside below", entity.Point{X: 150, Y: 151}, entity.DropCenter, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := layout.ResolveDropZone(r, tt.p)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveDropZone_CenterIsInner40Percent(t *testing.T) {
	r := entity.NewRect(0, 0, 100, 100)
	for x := 0.0; x <= 100; x += 2.5 {
		for y := 0.0; y <= 100; y += 2.5 {
			zone, ok := layout.ResolveDropZone(r, entity.Point{X: x, Y: y})
			assert.True(t, ok)
			inner := x >= 30 && x <= 70 && y >= 30 && y <= 70
			assert.Equal(t, inner, zone == entity.DropCenter, "(%v,%v)", x, y)
		}
	}
}

func TestResolveDropZone_DegenerateRect(t *testing.T) {
	_, ok := layout.ResolveDropZone(entity.NewRect(10, 10, 0, 50), entity.Point{X: 10, Y: 20})
	assert.False(t, ok)
}

func TestResolveDropZoneWithBand(t *testing.T) {
	r := entity.NewRect(0, 0, 100, 100)

	zone, ok := layout.ResolveDropZoneWithBand(r, entity.Point{X: 15, Y: 50}, 0.1)
	assert.True(t, ok)
	assert.Equal(t, entity.DropCenter, zone)

	zone, _ = layout.ResolveDropZoneWithBand(r, entity.Point{X: 45, Y: 50}, 0.9)
	assert.Equal(t, entity.DropLeft, zone, "band clamps to 0.5")

	zone, _ = layout.ResolveDropZoneWithBand(r, entity.Point{X: 0, Y: 0}, 0)
	assert.Equal(t, entity.DropCenter, zone)
}

func TestZoneRect(t *testing.T) {
	r := entity.NewRect(0, 0, 200, 100)
	assert.Equal(t, entity.NewRect(0, 0, 100, 100), layout.ZoneRect(r, entity.DropLeft))
	assert.Equal(t, entity.NewRect(100, 0, 100, 100), layout.ZoneRect(r, entity.DropRight))
	assert.Equal(t, entity.NewRect(0, 0, 200, 50), layout.ZoneRect(r, entity.DropTop))
	assert.Equal(t, entity.NewRect(0, 50, 200, 50), layout.ZoneRect(r, entity.DropBottom))
	assert.Equal(t, r, layout.ZoneRect(r, entity.DropCenter))
}
