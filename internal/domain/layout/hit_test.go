package layout_test

import (
	"testing"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitTestLeaf(t *testing.T) {
	tree := entity.DefaultLayoutTree()
	floating, err := tree.Undock(entity.PanelInspector, entity.NewRect(50, 50, 100, 100))
	require.NoError(t, err)
	sol := layout.Solve(tree, entity.NewRect(0, 0, 1000, 800), layout.DefaultOptions())

	viewport, _ := tree.FindLeafContaining(entity.PanelViewport)
	hierarchy, _ := tree.FindLeafContaining(entity.PanelHierarchy)

	tests := []struct {
		name   string
		p      entity.Point
		want   entity.ContainerID
		wantOK bool
	}{
		{"floating window wins over docked", entity.Point{X: 100, Y: 100}, floating, true},
		{"docked viewport", entity.Point{X: 500, Y: 400}, viewport, true},
		{"docked sidebar", entity.Point{X: 900, Y: 700}, hierarchy, true},
		{"outside everything", entity.Point{X: 1200, Y: 10}, entity.NoContainer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := layout.HitTestLeaf(sol, tt.p)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCandidate(t *testing.T) {
	tree := entity.NewLayoutTree("Hierarchy")
	inspector, err := tree.Split(tree.Root(), "Inspector", entity.DropRight, 0.5)
	require.NoError(t, err)
	sol := layout.Solve(tree, entity.NewRect(0, 0, 800, 600), layout.DefaultOptions())

	c, ok := layout.ResolveCandidate(sol, entity.Point{X: 760, Y: 300}, layout.DefaultEdgeBand)
	require.True(t, ok)
	assert.Equal(t, layout.Candidate{Leaf: inspector, Zone: entity.DropRight}, c)

	_, ok = layout.ResolveCandidate(sol, entity.Point{X: -5, Y: 300}, layout.DefaultEdgeBand)
	assert.False(t, ok)
}

func TestHitTestDivider(t *testing.T) {
	tree := entity.DefaultLayoutTree()
	sol := layout.Solve(tree, entity.NewRect(0, 0, 1000, 800), layout.DefaultOptions())
	root := tree.Root()
	rootSplit, _ := tree.Container(root)

	d, ok := layout.HitTestDivider(sol, entity.Point{X: 702, Y: 300}, layout.DefaultDividerTolerance)
	require.True(t, ok)
	assert.Equal(t, root, d.Split)

	d, ok = layout.HitTestDivider(sol, entity.Point{X: 850, Y: 398}, layout.DefaultDividerTolerance)
	require.True(t, ok)
	assert.Equal(t, rootSplit.Second, d.Split)

	_, ok = layout.HitTestDivider(sol, entity.Point{X: 300, Y: 398}, layout.DefaultDividerTolerance)
	assert.False(t, ok, "the sidebar divider does not cross the viewport")
}

func TestDragRatio(t *testing.T) {
	assert.InDelta(t, 0.6, layout.DragRatio(0.5, 100, 1000, 0.1, 0.9), 1e-9)
	assert.Equal(t, 0.9, layout.DragRatio(0.5, 900, 1000, 0.1, 0.9))
	assert.Equal(t, 0.1, layout.DragRatio(0.5, -900, 1000, 0.1, 0.9))
	assert.Equal(t, 0.5, layout.DragRatio(0.5, 10, 0, 0.1, 0.9))
}
