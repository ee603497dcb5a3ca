package layout_test

import (
	"math"
	"testing"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_SplitRight800x600(t *testing.T) {
	tree := entity.NewLayoutTree("Hierarchy")
	hierarchy := tree.Root()
	inspector, err := tree.Split(hierarchy, "Inspector", entity.DropRight, 0.5)
	require.NoError(t, err)

	sol := layout.Solve(tree, entity.NewRect(0, 0, 800, 600), layout.DefaultOptions())

	r, ok := sol.Rect(hierarchy)
	require.True(t, ok)
	assert.Equal(t, entity.NewRect(0, 0, 400, 600), r)
	r, ok = sol.Rect(inspector)
	require.True(t, ok)
	assert.Equal(t, entity.NewRect(400, 0, 400, 600), r)
	r, _ = sol.Rect(tree.Root())
	assert.Equal(t, entity.NewRect(0, 0, 800, 600), r)

	require.Len(t, sol.Dividers, 1)
	assert.Equal(t, 400.0, sol.Dividers[0].Position)
	assert.Equal(t, 800.0, sol.Dividers[0].Extent())
}

func TestSolve_CollapsedTreeCoversRoot(t *testing.T) {
	tree := entity.NewLayoutTree("Hierarchy")
	inspector, err := tree.Split(tree.Root(), "Inspector", entity.DropRight, 0.5)
	require.NoError(t, err)
	require.NoError(t, tree.RemovePanel("Hierarchy"))

	sol := layout.Solve(tree, entity.NewRect(0, 0, 800, 600), layout.DefaultOptions())

	assert.Len(t, sol.Placements, 1)
	r, _ := sol.Rect(inspector)
	assert.Equal(t, entity.NewRect(0, 0, 800, 600), r)
}

func TestSolve_DefaultLayout(t *testing.T) {
	tree := entity.DefaultLayoutTree()
	sol := layout.Solve(tree, entity.NewRect(0, 0, 1000, 800), layout.DefaultOptions())

	viewport, _ := tree.FindLeafContaining(entity.PanelViewport)
	hierarchy, _ := tree.FindLeafContaining(entity.PanelHierarchy)
	inspector, _ := tree.FindLeafContaining(entity.PanelInspector)

	r, _ := sol.Rect(viewport)
	assert.InDelta(t, 700, r.W, 1e-9)
	r, _ = sol.Rect(hierarchy)
	assert.InDelta(t, 700, r.X, 1e-9)
	assert.InDelta(t, 400, r.H, 1e-9)
	r, _ = sol.Rect(inspector)
	assert.InDelta(t, 400, r.Y, 1e-9)
	assert.Equal(t, []entity.ContainerID{viewport, hierarchy, inspector}, sol.Leaves)
}

func TestSolve_MinExtentClamp(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		ratio     float64
		wantFirst float64
	}{
		{"ratio respected", 800, 0.25, 200},
		{"first clamped up", 800, 0.01, 50},
		{"first clamped down", 800, 0.99, 750},
		{"too narrow halves", 80, 0.9, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := entity.NewLayoutTree("A")
			a := tree.Root()
			b, err := tree.Split(a, "B", entity.DropRight, tt.ratio)
			require.NoError(t, err)

			sol := layout.Solve(tree, entity.NewRect(0, 0, tt.width, 100), layout.DefaultOptions())

			ra, _ := sol.Rect(a)
			rb, _ := sol.Rect(b)
			assert.InDelta(t, tt.wantFirst, ra.W, 1e-9)
			assert.InDelta(t, tt.width-tt.wantFirst, rb.W, 1e-9)
			assert.InDelta(t, tt.wantFirst/tt.width, layout.EffectiveRatio(tt.width, tt.ratio, layout.DefaultMinExtent), 1e-9)
		})
	}
}

func TestSolve_HorizontalSplitStacks(t *testing.T) {
	tree := entity.NewLayoutTree("A")
	a := tree.Root()
	b, err := tree.Split(a, "B", entity.DropTop, 0.25)
	require.NoError(t, err)

	sol := layout.Solve(tree, entity.NewRect(10, 20, 300, 400), layout.DefaultOptions())

	rb, _ := sol.Rect(b)
	ra, _ := sol.Rect(a)
	assert.Equal(t, entity.NewRect(10, 20, 300, 100), rb)
	assert.Equal(t, entity.NewRect(10, 120, 300, 300), ra)
}

func TestSolve_FloatingWindows(t *testing.T) {
	tree := entity.NewLayoutTree("A", "B", "C")
	low, err := tree.Undock("B", entity.NewRect(100, 100, 200, 200))
	require.NoError(t, err)
	high, err := tree.Undock("C", entity.NewRect(150, 150, 200, 200))
	require.NoError(t, err)

	sol := layout.Solve(tree, entity.NewRect(0, 0, 800, 600), layout.DefaultOptions())

	assert.Equal(t, []entity.ContainerID{high, low, tree.Root()}, sol.Leaves)
	assert.Equal(t, 0, sol.Placements[tree.Root()].Z)
	assert.Equal(t, 1, sol.Placements[low].Z)
	assert.Equal(t, 2, sol.Placements[high].Z)
	assert.Equal(t, entity.NewRect(150, 150, 200, 200), sol.Placements[high].Rect)
}

func TestSolve_Deterministic(t *testing.T) {
	tree := entity.DefaultLayoutTree()
	viewport, _ := tree.FindLeafContaining(entity.PanelViewport)
	_, err := tree.Split(viewport, "Console", entity.DropBottom, 1.0/3.0)
	require.NoError(t, err)
	root := entity.NewRect(0.5, 1.25, 1023.7, 767.3)

	first := layout.Solve(tree, root, layout.DefaultOptions())
	second := layout.Solve(tree, root, layout.DefaultOptions())

	require.Equal(t, len(first.Placements), len(second.Placements))
	for id, p := range first.Placements {
		q := second.Placements[id]
		assert.Equal(t, math.Float64bits(p.Rect.X), math.Float64bits(q.Rect.X))
		assert.Equal(t, math.Float64bits(p.Rect.Y), math.Float64bits(q.Rect.Y))
		assert.Equal(t, math.Float64bits(p.Rect.W), math.Float64bits(q.Rect.W))
		assert.Equal(t, math.Float64bits(p.Rect.H), math.Float64bits(q.Rect.H))
	}
	assert.Equal(t, first.Leaves, second.Leaves)
}

func TestSolver_CachesByVersionAndRect(t *testing.T) {
	tree := entity.DefaultLayoutTree()
	solver := layout.NewSolver(layout.DefaultOptions())
	root := entity.NewRect(0, 0, 800, 600)

	first := solver.Solve(tree, root)
	again := solver.Solve(tree, root)
	assert.Equal(t, first, again)

	require.NoError(t, tree.SetSplitRatio(tree.Root(), 0.5))
	afterMutation := solver.Solve(tree, root)
	viewport, _ := tree.FindLeafContaining(entity.PanelViewport)
	r, _ := afterMutation.Rect(viewport)
	assert.Equal(t, 400.0, r.W)

	resized := solver.Solve(tree, entity.NewRect(0, 0, 1000, 600))
	r, _ = resized.Rect(viewport)
	assert.Equal(t, 500.0, r.W)

	clone := tree.Clone()
	require.NoError(t, clone.SetSplitRatio(clone.Root(), 0.3))
	require.NoError(t, tree.SetSplitRatio(tree.Root(), 0.6))
	require.Equal(t, tree.Version(), clone.Version())
	r, _ = solver.Solve(tree, entity.NewRect(0, 0, 1000, 600)).Rect(viewport)
	assert.InDelta(t, 600, r.W, 1e-9)
	// Same version on a different tree must not hit the cache.
	r, _ = solver.Solve(clone, entity.NewRect(0, 0, 1000, 600)).Rect(viewport)
	assert.InDelta(t, 300, r.W, 1e-9)
}
