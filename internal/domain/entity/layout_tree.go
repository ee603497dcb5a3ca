package entity

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvariant is returned by Validate when the arena is structurally broken.
var ErrInvariant = errors.New("layout invariant violated")

// LayoutTree is an arena of containers with a single docked root and
// optional floating windows. Every container is reachable from exactly one
// root and has exactly one parent (roots have none).
type LayoutTree struct {
	nodes    map[ContainerID]*Container
	root     ContainerID
	floating []FloatingWindow
	nextID   ContainerID
	version  uint64
}

func newArena() *LayoutTree {
	return &LayoutTree{
		nodes:  make(map[ContainerID]*Container),
		nextID: 1,
	}
}

// NewLayoutTree creates a tree holding a single leaf with the given panels.
// The first panel is active.
func NewLayoutTree(first PanelID, rest ...PanelID) *LayoutTree {
	t := newArena()
	panels := append([]PanelID{first}, rest...)
	leaf := t.addLeaf(NoContainer, panels)
	t.root = leaf.ID
	return t
}

func (t *LayoutTree) issueID() ContainerID {
	id := t.nextID
	t.nextID++
	return id
}

func (t *LayoutTree) addLeaf(parent ContainerID, panels []PanelID) *Container {
	leaf := &Container{
		ID:     t.issueID(),
		Kind:   ContainerLeaf,
		Parent: parent,
		Panels: panels,
	}
	t.nodes[leaf.ID] = leaf
	return leaf
}

func (t *LayoutTree) touch() {
	t.version++
}

// Root returns the id of the docked root container.
func (t *LayoutTree) Root() ContainerID { return t.root }

// Version increases on every successful mutation.
func (t *LayoutTree) Version() uint64 { return t.version }

// Len returns the number of containers, floating ones included.
func (t *LayoutTree) Len() int { return len(t.nodes) }

// Container returns a copy of the container with the given id.
func (t *LayoutTree) Container(id ContainerID) (Container, bool) {
	c, ok := t.nodes[id]
	if !ok {
		return Container{}, false
	}
	return *c.clone(), true
}

func (t *LayoutTree) leaf(id ContainerID) (*Container, error) {
	c, ok := t.nodes[id]
	if !ok {
		return nil, unknownContainer(id)
	}
	if !c.IsLeaf() {
		return nil, invalidOperation("container %d is a split, not a tab stack", id)
	}
	return c, nil
}

// Roots returns the docked root followed by floating window roots, back to front.
func (t *LayoutTree) Roots() []ContainerID {
	roots := make([]ContainerID, 0, 1+len(t.floating))
	roots = append(roots, t.root)
	for _, w := range t.floating {
		roots = append(roots, w.Root)
	}
	return roots
}

// Floating returns a copy of the floating windows.
func (t *LayoutTree) Floating() []FloatingWindow {
	return slices.Clone(t.floating)
}

// FloatingWindow returns the window rooted at id.
func (t *LayoutTree) FloatingWindow(root ContainerID) (FloatingWindow, bool) {
	i := t.floatingIndex(root)
	if i < 0 {
		return FloatingWindow{}, false
	}
	return t.floating[i], true
}

func (t *LayoutTree) floatingIndex(root ContainerID) int {
	return slices.IndexFunc(t.floating, func(w FloatingWindow) bool { return w.Root == root })
}

// RootOf climbs parent links to the root holding id.
func (t *LayoutTree) RootOf(id ContainerID) (ContainerID, bool) {
	c, ok := t.nodes[id]
	if !ok {
		return NoContainer, false
	}
	for c.Parent != NoContainer {
		c = t.nodes[c.Parent]
	}
	return c.ID, true
}

// IsDocked reports whether id belongs to the docked tree.
func (t *LayoutTree) IsDocked(id ContainerID) bool {
	root, ok := t.RootOf(id)
	return ok && root == t.root
}

// Walk visits every container in pre-order, the docked tree first and then
// each floating window. Returning false from fn stops the walk.
func (t *LayoutTree) Walk(fn func(c Container, depth int) bool) {
	for _, root := range t.Roots() {
		if !t.walk(root, 0, fn) {
			return
		}
	}
}

func (t *LayoutTree) walk(id ContainerID, depth int, fn func(Container, int) bool) bool {
	c, ok := t.nodes[id]
	if !ok {
		return true
	}
	if !fn(*c.clone(), depth) {
		return false
	}
	if c.IsSplit() {
		if !t.walk(c.First, depth+1, fn) {
			return false
		}
		return t.walk(c.Second, depth+1, fn)
	}
	return true
}

// Leaves returns every leaf id in walk order.
func (t *LayoutTree) Leaves() []ContainerID {
	var leaves []ContainerID
	t.Walk(func(c Container, _ int) bool {
		if c.IsLeaf() {
			leaves = append(leaves, c.ID)
		}
		return true
	})
	return leaves
}

// Panels returns every panel in walk order.
func (t *LayoutTree) Panels() []PanelID {
	var panels []PanelID
	t.Walk(func(c Container, _ int) bool {
		panels = append(panels, c.Panels...)
		return true
	})
	return panels
}

// FindLeafContaining returns the leaf whose tab stack holds panel.
func (t *LayoutTree) FindLeafContaining(panel PanelID) (ContainerID, bool) {
	found := NoContainer
	t.Walk(func(c Container, _ int) bool {
		if c.IsLeaf() && c.IndexOf(panel) >= 0 {
			found = c.ID
			return false
		}
		return true
	})
	return found, found != NoContainer
}

// replaceChild points whatever referenced old (a split or a root slot) at repl.
func (t *LayoutTree) replaceChild(parent, old, repl ContainerID) {
	if parent == NoContainer {
		if t.root == old {
			t.root = repl
			return
		}
		if i := t.floatingIndex(old); i >= 0 {
			t.floating[i].Root = repl
		}
		return
	}
	p := t.nodes[parent]
	switch old {
	case p.First:
		p.First = repl
	case p.Second:
		p.Second = repl
	}
}

func (t *LayoutTree) topZ() int {
	z := 0
	for _, w := range t.floating {
		z = max(z, w.Z)
	}
	return z
}

// Clone returns a deep copy sharing no state with t.
func (t *LayoutTree) Clone() *LayoutTree {
	c := &LayoutTree{
		nodes:    make(map[ContainerID]*Container, len(t.nodes)),
		root:     t.root,
		floating: slices.Clone(t.floating),
		nextID:   t.nextID,
		version:  t.version,
	}
	for id, n := range t.nodes {
		c.nodes[id] = n.clone()
	}
	return c
}

// ReplaceWith swaps the contents of t for a copy of other in one step.
// Id issuance never goes backwards, so ids stay unique across replacements.
func (t *LayoutTree) ReplaceWith(other *LayoutTree) {
	c := other.Clone()
	t.nodes = c.nodes
	t.root = c.root
	t.floating = c.floating
	t.nextID = max(t.nextID, c.nextID)
	t.version = max(t.version, c.version) + 1
}

// Adopt replaces the contents of t with other, renumbered so that none of
// its ids has been issued by t before. Ids held for containers of the old
// layout then fail with ErrUnknownContainer instead of naming new ones.
func (t *LayoutTree) Adopt(other *LayoutTree) {
	t.ReplaceWith(other.Rebase(t.nextID))
}

// Rebase returns a copy of t whose ids are issued again from start in walk
// order: the docked tree first, then floating windows back to front.
func (t *LayoutTree) Rebase(start ContainerID) *LayoutTree {
	start = max(start, 1)
	remap := make(map[ContainerID]ContainerID, len(t.nodes))
	next := start
	t.Walk(func(c Container, _ int) bool {
		remap[c.ID] = next
		next++
		return true
	})
	to := func(id ContainerID) ContainerID {
		if id == NoContainer {
			return NoContainer
		}
		return remap[id]
	}

	out := &LayoutTree{
		nodes:    make(map[ContainerID]*Container, len(remap)),
		root:     to(t.root),
		floating: make([]FloatingWindow, 0, len(t.floating)),
		nextID:   next,
		version:  t.version,
	}
	for id, n := range t.nodes {
		nid, ok := remap[id]
		if !ok {
			continue
		}
		c := n.clone()
		c.ID, c.Parent, c.First, c.Second = nid, to(c.Parent), to(c.First), to(c.Second)
		out.nodes[nid] = c
	}
	for _, w := range t.floating {
		w.Root = to(w.Root)
		out.floating = append(out.floating, w)
	}
	return out
}

// Validate checks the structural invariants: single docked root, exactly one
// parent per non-root node, consistent child links, no empty leaves, ratios in
// (0,1), and each panel in at most one stack.
func (t *LayoutTree) Validate() error {
	if _, ok := t.nodes[t.root]; !ok {
		return fmt.Errorf("%w: missing root %d", ErrInvariant, t.root)
	}
	visited := make(map[ContainerID]bool, len(t.nodes))
	panels := make(map[PanelID]ContainerID)

	for _, w := range t.floating {
		if w.Frame.Empty() {
			return fmt.Errorf("%w: floating window %d has no area", ErrInvariant, w.Root)
		}
	}
	for _, root := range t.Roots() {
		c, ok := t.nodes[root]
		if !ok {
			return fmt.Errorf("%w: missing root %d", ErrInvariant, root)
		}
		if c.Parent != NoContainer {
			return fmt.Errorf("%w: root %d has parent %d", ErrInvariant, root, c.Parent)
		}
		if err := t.validateNode(root, visited, panels); err != nil {
			return err
		}
	}
	if len(visited) != len(t.nodes) {
		return fmt.Errorf("%w: %d orphaned containers", ErrInvariant, len(t.nodes)-len(visited))
	}
	return nil
}

func (t *LayoutTree) validateNode(id ContainerID, visited map[ContainerID]bool, panels map[PanelID]ContainerID) error {
	if visited[id] {
		return fmt.Errorf("%w: container %d reachable twice", ErrInvariant, id)
	}
	visited[id] = true
	c := t.nodes[id]
	if id >= t.nextID {
		return fmt.Errorf("%w: container %d was never issued", ErrInvariant, id)
	}

	if c.IsLeaf() {
		if len(c.Panels) == 0 {
			return fmt.Errorf("%w: leaf %d is empty", ErrInvariant, id)
		}
		if c.Active < 0 || c.Active >= len(c.Panels) {
			return fmt.Errorf("%w: leaf %d active index %d out of range", ErrInvariant, id, c.Active)
		}
		for _, p := range c.Panels {
			if owner, dup := panels[p]; dup {
				return fmt.Errorf("%w: panel %q in leaves %d and %d", ErrInvariant, p, owner, id)
			}
			panels[p] = id
		}
		return nil
	}

	if !validRatio(c.Ratio) {
		return fmt.Errorf("%w: split %d ratio %v outside (0,1)", ErrInvariant, id, c.Ratio)
	}
	for _, child := range c.Children() {
		n, ok := t.nodes[child]
		if !ok {
			return fmt.Errorf("%w: split %d references missing child %d", ErrInvariant, id, child)
		}
		if n.Parent != id {
			return fmt.Errorf("%w: child %d of split %d has parent %d", ErrInvariant, child, id, n.Parent)
		}
		if err := t.validateNode(child, visited, panels); err != nil {
			return err
		}
	}
	return nil
}
