package model

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
)

// cells is a rectangle snapped to the terminal grid. x1 and y1 are exclusive.
type cells struct {
	x0, y0, x1, y1 int
}

func cellRect(r entity.Rect) cells {
	return cells{
		x0: int(math.Round(r.X)),
		y0: int(math.Round(r.Y)),
		x1: int(math.Round(r.Right())),
		y1: int(math.Round(r.Bottom())),
	}
}

func (c cells) contains(p entity.Point) bool {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	return x >= c.x0 && x < c.x1 && y >= c.y0 && y < c.y1
}

// leafAt is the top-most leaf whose cells hold p. Unlike layout.HitTestLeaf
// neighbours do not share their boundary cells.
func leafAt(sol layout.Solution, p entity.Point) (entity.ContainerID, bool) {
	for _, id := range sol.Leaves {
		if cellRect(sol.Placements[id].Rect).contains(p) {
			return id, true
		}
	}
	return entity.NoContainer, false
}

// tabHit is a tab label drawn on the top border of a leaf.
type tabHit struct {
	leaf   entity.ContainerID
	panel  entity.PanelID
	active bool
	y      int
	x0, x1 int
}

func (h tabHit) contains(p entity.Point) bool {
	x := int(math.Floor(p.X))
	return int(math.Floor(p.Y)) == h.y && x >= h.x0 && x < h.x1
}

func tabLabel(panel entity.PanelID) string {
	return " " + string(panel) + " "
}

// tabHits lays tab labels out left to right on each leaf's top border.
// Labels that do not fit are left out.
func tabHits(tree *entity.LayoutTree, sol layout.Solution) []tabHit {
	var hits []tabHit
	for _, id := range sol.Leaves {
		c, ok := tree.Container(id)
		if !ok {
			continue
		}
		r := cellRect(sol.Placements[id].Rect)
		x := r.x0 + 1
		for i, panel := range c.Panels {
			w := len([]rune(tabLabel(panel)))
			if x+w > r.x1-1 {
				break
			}
			hits = append(hits, tabHit{leaf: id, panel: panel, active: i == c.Active, y: r.y0, x0: x, x1: x + w})
			x += w
		}
	}
	return hits
}

type cellKind int

const (
	kindBlank cellKind = iota
	kindFrame
	kindFloating
	kindName
	kindTab
	kindActiveTab
)

type canvas struct {
	w, h  int
	runes []rune
	kinds []cellKind
	drop  []bool
}

func newCanvas(w, h int) *canvas {
	c := &canvas{
		w:     w,
		h:     h,
		runes: make([]rune, w*h),
		kinds: make([]cellKind, w*h),
		drop:  make([]bool, w*h),
	}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

func (c *canvas) set(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y*c.w+x] = r
	c.kinds[y*c.w+x] = k
}

func (c *canvas) text(x, y int, s string, k cellKind) {
	for _, r := range s {
		c.set(x, y, r, k)
		x++
	}
}

func (c *canvas) box(r cells, k cellKind, clear bool) {
	if r.x1-r.x0 < 2 || r.y1-r.y0 < 2 {
		return
	}
	if clear {
		for y := r.y0; y < r.y1; y++ {
			for x := r.x0; x < r.x1; x++ {
				c.set(x, y, ' ', kindBlank)
			}
		}
	}
	for x := r.x0 + 1; x < r.x1-1; x++ {
		c.set(x, r.y0, '─', k)
		c.set(x, r.y1-1, '─', k)
	}
	for y := r.y0 + 1; y < r.y1-1; y++ {
		c.set(r.x0, y, '│', k)
		c.set(r.x1-1, y, '│', k)
	}
	c.set(r.x0, r.y0, '╭', k)
	c.set(r.x1-1, r.y0, '╮', k)
	c.set(r.x0, r.y1-1, '╰', k)
	c.set(r.x1-1, r.y1-1, '╯', k)
}

func (c *canvas) markDrop(r cells) {
	for y := max(r.y0, 0); y < min(r.y1, c.h); y++ {
		for x := max(r.x0, 0); x < min(r.x1, c.w); x++ {
			c.drop[y*c.w+x] = true
		}
	}
}

func (c *canvas) render(theme *styles.Theme) string {
	style := map[cellKind]lipgloss.Style{
		kindBlank:     lipgloss.NewStyle(),
		kindFrame:     theme.PanelFrame,
		kindFloating:  theme.FloatingFrame,
		kindName:      theme.Subtle,
		kindTab:       theme.InactiveTab,
		kindActiveTab: theme.ActiveTab,
	}

	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.w; x++ {
			i, j := y*c.w+x, y*c.w+start
			if x < c.w && c.kinds[i] == c.kinds[j] && c.drop[i] == c.drop[j] {
				continue
			}
			run := string(c.runes[j : y*c.w+x])
			if c.drop[j] {
				b.WriteString(theme.DropZone.Render(run))
			} else {
				b.WriteString(style[c.kinds[j]].Render(run))
			}
			start = x
		}
	}
	return b.String()
}

// renderCanvas draws every leaf as a box, floating windows last so they
// cover the docked tree, and highlights the pending drop zone.
func (m PreviewModel) renderCanvas() string {
	vp := m.viewport()
	tree := m.layout.Tree()
	sol := m.drag.Solve(vp)
	cv := newCanvas(int(vp.W), int(vp.H))
	hits := tabHits(tree, sol)

	for i := len(sol.Leaves) - 1; i >= 0; i-- {
		id := sol.Leaves[i]
		r := cellRect(sol.Placements[id].Rect)
		if tree.IsDocked(id) {
			cv.box(r, kindFrame, false)
		} else {
			cv.box(r, kindFloating, true)
		}
		if c, ok := tree.Container(id); ok && len(c.Panels) > 0 {
			name := string(c.Panels[c.Active])
			cv.text((r.x0+r.x1-len([]rune(name)))/2, (r.y0+r.y1)/2, name, kindName)
		}
		for _, hit := range hits {
			if hit.leaf != id {
				continue
			}
			k := kindTab
			if hit.active {
				k = kindActiveTab
			}
			cv.text(hit.x0, hit.y, tabLabel(hit.panel), k)
		}
	}

	if cand, ok := m.drag.Candidate(); ok {
		if p, ok := sol.Placements[cand.Leaf]; ok {
			cv.markDrop(cellRect(layout.ZoneRect(p.Rect, cand.Zone)))
		}
	}
	return cv.render(m.theme)
}
