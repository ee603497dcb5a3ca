// Package layout computes container rectangles and resolves pointer
// positions against them. Everything here is pure and deterministic.
package layout

import (
	"cmp"
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// DefaultMinExtent is the smallest width or height a split child is given.
const DefaultMinExtent = 50.0

// Options tunes the solver.
type Options struct {
	// MinExtent is the minimum child extent along a split's axis. When the
	// split itself is narrower than twice this value, both children get half.
	MinExtent float64
}

// DefaultOptions returns the solver options used by the editor.
func DefaultOptions() Options {
	return Options{MinExtent: DefaultMinExtent}
}

// Placement is where a container lands on screen.
type Placement struct {
	Rect entity.Rect
	Z    int // 0 for docked containers, the window z for floating ones
}

// Divider is the line between the two children of a split.
type Divider struct {
	Split       entity.ContainerID
	Orientation entity.Orientation
	Bounds      entity.Rect // the split's own rectangle
	Position    float64     // x for vertical dividers, y for horizontal ones
	Z           int
}

// Extent returns the length of the split along its axis.
func (d Divider) Extent() float64 {
	if d.Orientation == entity.OrientationVertical {
		return d.Bounds.W
	}
	return d.Bounds.H
}

// Solution is the solver output. It must be treated as read-only.
type Solution struct {
	Placements map[entity.ContainerID]Placement
	// Leaves lists leaves in hit-test order: floating windows from the
	// highest z down, then the docked tree in pre-order.
	Leaves   []entity.ContainerID
	Dividers []Divider
}

// Rect returns the rectangle of a container.
func (s Solution) Rect(id entity.ContainerID) (entity.Rect, bool) {
	p, ok := s.Placements[id]
	return p.Rect, ok
}

// Solve assigns a rectangle to every container of tree. The docked tree
// fills root; each floating window fills its own frame.
func Solve(tree *entity.LayoutTree, root entity.Rect, opts Options) Solution {
	sol := Solution{Placements: make(map[entity.ContainerID]Placement, tree.Len())}
	minExtent := max(opts.MinExtent, 0)

	windows := tree.Floating()
	// Stable on index so that among equal z the later window is on top.
	order := make([]int, len(windows))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(windows[b].Z, windows[a].Z); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})
	for _, i := range order {
		w := windows[i]
		solveNode(tree, w.Root, w.Frame, w.Z, minExtent, &sol)
	}
	solveNode(tree, tree.Root(), root, 0, minExtent, &sol)
	return sol
}

func solveNode(tree *entity.LayoutTree, id entity.ContainerID, r entity.Rect, z int, minExtent float64, sol *Solution) {
	c, ok := tree.Container(id)
	if !ok {
		return
	}
	sol.Placements[id] = Placement{Rect: r, Z: z}
	if c.IsLeaf() {
		sol.Leaves = append(sol.Leaves, id)
		return
	}

	first, second, pos := splitRect(r, c.Orientation, c.Ratio, minExtent)
	sol.Dividers = append(sol.Dividers, Divider{
		Split:       id,
		Orientation: c.Orientation,
		Bounds:      r,
		Position:    pos,
		Z:           z,
	})
	solveNode(tree, c.First, first, z, minExtent, sol)
	solveNode(tree, c.Second, second, z, minExtent, sol)
}

// splitRect divides r at ratio along the orientation's axis, clamping the
// first child so neither side drops below minExtent.
func splitRect(r entity.Rect, o entity.Orientation, ratio, minExtent float64) (first, second entity.Rect, pos float64) {
	extent := r.H
	if o == entity.OrientationVertical {
		extent = r.W
	}

	size := firstExtent(extent, ratio, minExtent)
	if o == entity.OrientationVertical {
		first = entity.NewRect(r.X, r.Y, size, r.H)
		second = entity.NewRect(r.X+size, r.Y, r.W-size, r.H)
		return first, second, r.X + size
	}
	first = entity.NewRect(r.X, r.Y, r.W, size)
	second = entity.NewRect(r.X, r.Y+size, r.W, r.H-size)
	return first, second, r.Y + size
}

func firstExtent(extent, ratio, minExtent float64) float64 {
	if extent <= 0 {
		return 0
	}
	if extent < 2*minExtent {
		return extent / 2
	}
	return min(max(extent*ratio, minExtent), extent-minExtent)
}

// EffectiveRatio returns the ratio a split actually renders with once the
// minimum extent is applied.
func EffectiveRatio(extent, ratio, minExtent float64) float64 {
	if extent <= 0 {
		return ratio
	}
	return firstExtent(extent, ratio, max(minExtent, 0)) / extent
}

// Solver caches the last solution keyed by tree identity, version and root
// rectangle. It is not safe for concurrent use.
type Solver struct {
	opts Options

	tree    *entity.LayoutTree
	version uint64
	root    entity.Rect
	last    Solution
	cached  bool
}

// NewSolver creates a caching solver.
func NewSolver(opts Options) *Solver {
	return &Solver{opts: opts}
}

// Options returns the solver options.
func (s *Solver) Options() Options { return s.opts }

// Solve returns the cached solution when nothing changed since the last call.
func (s *Solver) Solve(tree *entity.LayoutTree, root entity.Rect) Solution {
	if s.cached && s.tree == tree && s.version == tree.Version() && s.root == root {
		return s.last
	}
	s.last = Solve(tree, root, s.opts)
	s.tree = tree
	s.version = tree.Version()
	s.root = root
	s.cached = true
	return s.last
}

// Invalidate drops the cached solution.
func (s *Solver) Invalidate() {
	s.cached = false
	s.tree = nil
	s.last = Solution{}
}
