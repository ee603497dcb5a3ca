package entity

import (
	"math"
	"strings"
)

// PersistedLayoutVersion is the current schema version of the layout file.
// Increment when making breaking changes to the serialization format.
const PersistedLayoutVersion = 1

// Persisted node kinds.
const (
	NodeKindSplit = "split"
	NodeKindLeaf  = "leaf"
)

// PersistedLayout is the flat, index-addressed form of a LayoutTree.
// Nodes are listed in pre-order starting at Root; floating windows follow.
type PersistedLayout struct {
	Version  int                 `json:"version" toml:"version" yaml:"version" jsonschema:"minimum=1"`
	Root     int                 `json:"root" toml:"root" yaml:"root" jsonschema:"minimum=0"`
	Nodes    []PersistedNode     `json:"nodes" toml:"nodes" yaml:"nodes" jsonschema:"minItems=1"`
	Floating []PersistedFloating `json:"floating,omitempty" toml:"floating,omitempty" yaml:"floating,omitempty"`
}

// PersistedNode is either a split record or a leaf record.
type PersistedNode struct {
	Kind string `json:"kind" toml:"kind" yaml:"kind" jsonschema:"enum=split,enum=leaf"`

	// Split fields
	Orientation string  `json:"orientation,omitempty" toml:"orientation,omitempty" yaml:"orientation,omitempty" jsonschema:"enum=vertical,enum=horizontal"`
	Ratio       float64 `json:"ratio,omitempty" toml:"ratio,omitempty" yaml:"ratio,omitempty" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
	First       int     `json:"first,omitempty" toml:"first,omitempty" yaml:"first,omitempty"`
	Second      int     `json:"second,omitempty" toml:"second,omitempty" yaml:"second,omitempty"`

	// Leaf fields
	Panels []PanelID `json:"panels,omitempty" toml:"panels,omitempty" yaml:"panels,omitempty"`
	Active int       `json:"active,omitempty" toml:"active,omitempty" yaml:"active,omitempty"`
}

// PersistedFloating places the subtree rooted at Node in a floating window.
type PersistedFloating struct {
	Node  int  `json:"node" toml:"node" yaml:"node"`
	Frame Rect `json:"frame" toml:"frame" yaml:"frame"`
	Z     int  `json:"z" toml:"z" yaml:"z" jsonschema:"minimum=1"`
}

// ToPersisted flattens the tree. The docked root is always node 0.
func ToPersisted(t *LayoutTree) *PersistedLayout {
	p := &PersistedLayout{Version: PersistedLayoutVersion}
	p.Root = appendPersisted(t, t.root, p)
	for _, w := range t.floating {
		p.Floating = append(p.Floating, PersistedFloating{
			Node:  appendPersisted(t, w.Root, p),
			Frame: w.Frame,
			Z:     w.Z,
		})
	}
	return p
}

func appendPersisted(t *LayoutTree, id ContainerID, p *PersistedLayout) int {
	c := t.nodes[id]
	idx := len(p.Nodes)
	if c.IsLeaf() {
		p.Nodes = append(p.Nodes, PersistedNode{
			Kind:   NodeKindLeaf,
			Panels: append([]PanelID(nil), c.Panels...),
			Active: c.Active,
		})
		return idx
	}

	p.Nodes = append(p.Nodes, PersistedNode{
		Kind:        NodeKindSplit,
		Orientation: c.Orientation.String(),
		Ratio:       c.Ratio,
	})
	first := appendPersisted(t, c.First, p)
	second := appendPersisted(t, c.Second, p)
	p.Nodes[idx].First = first
	p.Nodes[idx].Second = second
	return idx
}

// FromPersisted rebuilds a tree from its flat form with freshly issued ids.
// Any structural problem yields a *DecodeError and no tree.
func FromPersisted(p *PersistedLayout) (*LayoutTree, error) {
	if p == nil {
		return nil, decodeErrorf(-1, "no layout")
	}
	if p.Version > PersistedLayoutVersion {
		return nil, decodeErrorf(-1, "version %d is newer than supported version %d", p.Version, PersistedLayoutVersion)
	}
	if len(p.Nodes) == 0 {
		return nil, decodeErrorf(-1, "no nodes")
	}
	if p.Root < 0 || p.Root >= len(p.Nodes) {
		return nil, decodeErrorf(-1, "root index %d out of range [0,%d)", p.Root, len(p.Nodes))
	}

	for i := range p.Nodes {
		if err := checkPersistedNode(p.Nodes, i); err != nil {
			return nil, err
		}
	}

	reached := make([]bool, len(p.Nodes))
	panels := make(map[PanelID]int)
	if err := markReachable(p.Nodes, p.Root, reached, panels); err != nil {
		return nil, err
	}
	for _, f := range p.Floating {
		if f.Node < 0 || f.Node >= len(p.Nodes) {
			return nil, decodeErrorf(-1, "floating node index %d out of range", f.Node)
		}
		if f.Frame.Empty() {
			return nil, decodeErrorf(f.Node, "floating frame has no area")
		}
		if f.Z < 1 {
			return nil, decodeErrorf(f.Node, "floating z %d must be at least 1", f.Z)
		}
		if err := markReachable(p.Nodes, f.Node, reached, panels); err != nil {
			return nil, err
		}
	}
	for i, ok := range reached {
		if !ok {
			return nil, decodeErrorf(i, "unreachable from any root")
		}
	}

	t := newArena()
	t.root = buildPersisted(t, p.Nodes, p.Root, NoContainer)
	for _, f := range p.Floating {
		t.floating = append(t.floating, FloatingWindow{
			Root:  buildPersisted(t, p.Nodes, f.Node, NoContainer),
			Frame: f.Frame,
			Z:     f.Z,
		})
	}
	return t, nil
}

func checkPersistedNode(nodes []PersistedNode, i int) error {
	n := nodes[i]
	switch n.Kind {
	case NodeKindLeaf:
		if len(n.Panels) == 0 {
			return decodeErrorf(i, "empty leaf")
		}
		for _, panel := range n.Panels {
			if strings.TrimSpace(string(panel)) == "" {
				return decodeErrorf(i, "blank panel id")
			}
		}
		if n.Active < 0 || n.Active >= len(n.Panels) {
			return decodeErrorf(i, "active index %d out of range [0,%d)", n.Active, len(n.Panels))
		}
	case NodeKindSplit:
		if _, err := ParseOrientation(n.Orientation); err != nil {
			return decodeErrorf(i, "%v", err)
		}
		if math.IsNaN(n.Ratio) || !validRatio(n.Ratio) {
			return decodeErrorf(i, "ratio %v outside (0,1)", n.Ratio)
		}
		for _, child := range []int{n.First, n.Second} {
			if child < 0 || child >= len(nodes) {
				return decodeErrorf(i, "child index %d out of range [0,%d)", child, len(nodes))
			}
			if child == i {
				return decodeErrorf(i, "references itself")
			}
		}
		if n.First == n.Second {
			return decodeErrorf(i, "both children are node %d", n.First)
		}
	default:
		return decodeErrorf(i, "unknown kind %q", n.Kind)
	}
	return nil
}

// markReachable walks from i and fails on any node reached twice, which
// covers both cycles and shared ownership.
func markReachable(nodes []PersistedNode, i int, reached []bool, panels map[PanelID]int) error {
	if reached[i] {
		return decodeErrorf(i, "reached more than once (cycle or shared child)")
	}
	reached[i] = true

	n := nodes[i]
	if n.Kind == NodeKindLeaf {
		for _, panel := range n.Panels {
			if owner, dup := panels[panel]; dup {
				return decodeErrorf(i, "panel %q already in node %d", panel, owner)
			}
			panels[panel] = i
		}
		return nil
	}
	if err := markReachable(nodes, n.First, reached, panels); err != nil {
		return err
	}
	return markReachable(nodes, n.Second, reached, panels)
}

// buildPersisted assumes the nodes passed validation.
func buildPersisted(t *LayoutTree, nodes []PersistedNode, i int, parent ContainerID) ContainerID {
	n := nodes[i]
	if n.Kind == NodeKindLeaf {
		leaf := t.addLeaf(parent, append([]PanelID(nil), n.Panels...))
		leaf.Active = n.Active
		return leaf.ID
	}

	orientation, _ := ParseOrientation(n.Orientation)
	split := &Container{
		ID:          t.issueID(),
		Kind:        ContainerSplit,
		Parent:      parent,
		Orientation: orientation,
		Ratio:       n.Ratio,
	}
	t.nodes[split.ID] = split
	split.First = buildPersisted(t, nodes, n.First, split.ID)
	split.Second = buildPersisted(t, nodes, n.Second, split.ID)
	return split.ID
}
