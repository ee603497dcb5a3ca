package entity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPersisted_DefaultLayout(t *testing.T) {
	p := entity.ToPersisted(entity.DefaultLayoutTree())

	want := &entity.PersistedLayout{
		Version: entity.PersistedLayoutVersion,
		Root:    0,
		Nodes: []entity.PersistedNode{
			{Kind: "split", Orientation: "vertical", Ratio: 0.7, First: 1, Second: 2},
			{Kind: "leaf", Panels: []entity.PanelID{"Viewport"}},
			{Kind: "split", Orientation: "horizontal", Ratio: 0.5, First: 3, Second: 4},
			{Kind: "leaf", Panels: []entity.PanelID{"Hierarchy"}},
			{Kind: "leaf", Panels: []entity.PanelID{"Inspector"}},
		},
	}
	assert.Empty(t, cmp.Diff(want, p))
}

func TestPersistedLayout_RoundTrip(t *testing.T) {
	tree := entity.DefaultLayoutTree()
	viewport, _ := tree.FindLeafContaining(entity.PanelViewport)
	_, err := tree.Split(viewport, "Console", entity.DropBottom, 0.75)
	require.NoError(t, err)
	_, err = tree.Split(viewport, "Game", entity.DropCenter, 0)
	require.NoError(t, err)
	require.NoError(t, tree.SetActiveTab(viewport, entity.PanelViewport))
	window, err := tree.Undock(entity.PanelInspector, entity.NewRect(40, 40, 320, 240))
	require.NoError(t, err)
	_, err = tree.Split(window, "Assets", entity.DropTop, 0.4)
	require.NoError(t, err)

	persisted := entity.ToPersisted(tree)
	decoded, err := entity.FromPersisted(persisted)
	require.NoError(t, err)
	require.NoError(t, decoded.Validate())

	assert.Empty(t, cmp.Diff(persisted, entity.ToPersisted(decoded)))
	assert.Equal(t, tree.Panels(), decoded.Panels())
	assert.Equal(t, tree.Len(), decoded.Len())
	require.Len(t, decoded.Floating(), 1)
	assert.Equal(t, entity.NewRect(40, 40, 320, 240), decoded.Floating()[0].Frame)
}

func TestFromPersisted_Rejects(t *testing.T) {
	leaf := func(panels ...entity.PanelID) entity.PersistedNode {
		return entity.PersistedNode{Kind: "leaf", Panels: panels}
	}
	split := func(first, second int) entity.PersistedNode {
		return entity.PersistedNode{Kind: "split", Orientation: "vertical", Ratio: 0.5, First: first, Second: second}
	}

	tests := []struct {
		name   string
		layout *entity.PersistedLayout
		node   int
	}{
		{"nil layout", nil, -1},
		{"no nodes", &entity.PersistedLayout{Version: 1}, -1},
		{"root out of range", &entity.PersistedLayout{Version: 1, Root: 3, Nodes: []entity.PersistedNode{leaf("A")}}, -1},
		{"newer version", &entity.PersistedLayout{Version: 99, Nodes: []entity.PersistedNode{leaf("A")}}, -1},
		{"empty leaf", &entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{leaf()}}, 0},
		{"blank panel", &entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{leaf(" ")}}, 0},
		{
			"active out of range",
			&entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{{Kind: "leaf", Panels: []entity.PanelID{"A"}, Active: 1}}},
			0,
		},
		{"unknown kind", &entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{{Kind: "tabs"}}}, 0},
		{
			"unknown orientation",
			&entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{
				{Kind: "split", Orientation: "diagonal", Ratio: 0.5, First: 1, Second: 2}, leaf("A"), leaf("B"),
			}},
			0,
		},
		{
			"ratio zero",
			&entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{
				{Kind: "split", Orientation: "vertical", First: 1, Second: 2}, leaf("A"), leaf("B"),
			}},
			0,
		},
		{
			"ratio NaN",
			&entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{
				{Kind: "split", Orientation: "vertical", Ratio: math.NaN(), First: 1, Second: 2}, leaf("A"), leaf("B"),
			}},
			0,
		},
		{"dangling child", &entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{split(1, 5), leaf("A")}}, 0},
		{"self reference", &entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{split(0, 1), leaf("A")}}, 0},
		{"same child twice", &entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{split(1, 1), leaf("A")}}, 0},
		{
			"cycle",
			&entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{split(1, 2), split(0, 2), leaf("A")}},
			0,
		},
		{
			"shared child",
			&entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{split(1, 2), split(3, 4), split(3, 5), leaf("A"), leaf("B"), leaf("C")}},
			3,
		},
		{"unreachable node", &entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{leaf("A"), leaf("B")}}, 1},
		{"duplicate panel", &entity.PersistedLayout{Version: 1, Nodes: []entity.PersistedNode{split(1, 2), leaf("A"), leaf("A")}}, 2},
		{
			"floating without area",
			&entity.PersistedLayout{
				Version:  1,
				Nodes:    []entity.PersistedNode{leaf("A"), leaf("B")},
				Floating: []entity.PersistedFloating{{Node: 1, Frame: entity.NewRect(0, 0, 0, 10), Z: 1}},
			},
			1,
		},
		{
			"floating is the docked root",
			&entity.PersistedLayout{
				Version:  1,
				Nodes:    []entity.PersistedNode{leaf("A")},
				Floating: []entity.PersistedFloating{{Node: 0, Frame: entity.NewRect(0, 0, 10, 10), Z: 1}},
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := entity.FromPersisted(tt.layout)
			require.ErrorIs(t, err, entity.ErrDecode)
			assert.Nil(t, tree)

			var decodeErr *entity.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.node, decodeErr.Node)
			assert.NotEmpty(t, decodeErr.Reason)
		})
	}
}

func TestFromPersisted_IssuesFreshIDs(t *testing.T) {
	p := &entity.PersistedLayout{
		Version: 1,
		Root:    2,
		Nodes: []entity.PersistedNode{
			{Kind: "leaf", Panels: []entity.PanelID{"Left"}},
			{Kind: "leaf", Panels: []entity.PanelID{"Right", "Extra"}, Active: 1},
			{Kind: "split", Orientation: "vertical", Ratio: 0.3, First: 0, Second: 1},
		},
	}

	tree, err := entity.FromPersisted(p)
	require.NoError(t, err)
	require.NoError(t, tree.Validate())

	root, _ := tree.Container(tree.Root())
	assert.Equal(t, entity.ContainerID(1), root.ID)
	assert.Equal(t, 0.3, root.Ratio)
	right, _ := tree.Container(root.Second)
	assert.Equal(t, entity.PanelID("Extra"), right.ActivePanel())

	// Re-encoding normalizes to pre-order with the root first.
	assert.Equal(t, 0, entity.ToPersisted(tree).Root)
}
