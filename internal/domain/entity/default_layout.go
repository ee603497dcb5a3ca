package entity

// Built-in panels of the editor layout.
const (
	PanelViewport  PanelID = "Viewport"
	PanelHierarchy PanelID = "Hierarchy"
	PanelInspector PanelID = "Inspector"
)

// Default layout ratios: 70% viewport, sidebar split in half.
const (
	defaultViewportRatio = 0.7
	defaultSidebarRatio  = 0.5
)

// DefaultLayoutTree returns the viewport with a right sidebar holding the
// hierarchy above the inspector.
func DefaultLayoutTree() *LayoutTree {
	t := newArena()

	root := &Container{
		ID:          t.issueID(),
		Kind:        ContainerSplit,
		Orientation: OrientationVertical,
		Ratio:       defaultViewportRatio,
	}
	t.nodes[root.ID] = root
	t.root = root.ID

	viewport := t.addLeaf(root.ID, []PanelID{PanelViewport})

	sidebar := &Container{
		ID:          t.issueID(),
		Kind:        ContainerSplit,
		Parent:      root.ID,
		Orientation: OrientationHorizontal,
		Ratio:       defaultSidebarRatio,
	}
	t.nodes[sidebar.ID] = sidebar

	hierarchy := t.addLeaf(sidebar.ID, []PanelID{PanelHierarchy})
	inspector := t.addLeaf(sidebar.ID, []PanelID{PanelInspector})

	root.First, root.Second = viewport.ID, sidebar.ID
	sidebar.First, sidebar.Second = hierarchy.ID, inspector.ID
	return t
}

// FallbackLayoutTree is the single-panel tree used when a saved layout
// cannot be decoded.
func FallbackLayoutTree() *LayoutTree {
	return NewLayoutTree(PanelViewport)
}
