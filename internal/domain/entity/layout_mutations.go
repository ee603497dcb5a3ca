package entity

import "slices"

// Every mutation below validates all of its preconditions before touching
// the arena, so a returned error always leaves the tree unchanged.

// Split docks newPanel at target. Center adds it as the active tab of the
// target stack; edge zones replace target with a split whose other child is
// the original leaf (keeping its id). A zero ratio selects DefaultSplitRatio.
// It returns the leaf now holding newPanel.
func (t *LayoutTree) Split(target ContainerID, newPanel PanelID, zone DropZone, ratio float64) (ContainerID, error) {
	leaf, err := t.leaf(target)
	if err != nil {
		return NoContainer, err
	}
	if newPanel == "" {
		return NoContainer, invalidOperation("empty panel id")
	}
	if owner, ok := t.FindLeafContaining(newPanel); ok {
		return NoContainer, invalidOperation("panel %q is already docked in %d", newPanel, owner)
	}
	if ratio == 0 {
		ratio = DefaultSplitRatio
	}
	if !validRatio(ratio) {
		return NoContainer, invalidOperation("split ratio %v outside (0,1)", ratio)
	}
	if err := checkZone(zone); err != nil {
		return NoContainer, err
	}

	id := t.insertPanel(leaf, newPanel, zone, ratio)
	t.touch()
	return id, nil
}

// RemovePanel closes a panel. An emptied leaf is deleted and its parent split
// collapses into the surviving sibling, which keeps its id and subtree.
func (t *LayoutTree) RemovePanel(panel PanelID) error {
	source, ok := t.FindLeafContaining(panel)
	if !ok {
		return invalidOperation("panel %q is not docked", panel)
	}
	if t.isFinalPanel(source) {
		return ErrCannotRemoveFinalPanel
	}

	t.detachPanel(source, panel)
	t.touch()
	return nil
}

// MovePanel removes panel from its stack and docks it at target in one step.
// Dropping a panel onto its own stack's center is rejected as a no-op.
func (t *LayoutTree) MovePanel(panel PanelID, target ContainerID, zone DropZone) (ContainerID, error) {
	source, ok := t.FindLeafContaining(panel)
	if !ok {
		return NoContainer, invalidOperation("panel %q is not docked", panel)
	}
	dest, err := t.leaf(target)
	if err != nil {
		return NoContainer, err
	}
	if err := checkZone(zone); err != nil {
		return NoContainer, err
	}
	if source == target {
		if !zone.IsEdge() {
			return NoContainer, invalidOperation("panel %q is already in stack %d", panel, target)
		}
		if len(dest.Panels) == 1 {
			return NoContainer, invalidOperation("cannot split stack %d around its only panel", target)
		}
	}
	if t.isFinalPanel(source) {
		return NoContainer, ErrCannotRemoveFinalPanel
	}

	// target survives the detach: it is either a different leaf (collapse
	// keeps sibling ids) or the source stack still holding other panels.
	t.detachPanel(source, panel)
	id := t.insertPanel(t.nodes[target], panel, zone, DefaultSplitRatio)
	t.touch()
	return id, nil
}

// SetActiveTab makes panel the visible tab of leaf.
func (t *LayoutTree) SetActiveTab(leafID ContainerID, panel PanelID) error {
	leaf, err := t.leaf(leafID)
	if err != nil {
		return err
	}
	idx := leaf.IndexOf(panel)
	if idx < 0 {
		return invalidOperation("panel %q is not in stack %d", panel, leafID)
	}
	if leaf.Active == idx {
		return nil
	}
	leaf.Active = idx
	t.touch()
	return nil
}

// SetSplitRatio moves the divider of a split.
func (t *LayoutTree) SetSplitRatio(splitID ContainerID, ratio float64) error {
	c, ok := t.nodes[splitID]
	if !ok {
		return unknownContainer(splitID)
	}
	if !c.IsSplit() {
		return invalidOperation("container %d is not a split", splitID)
	}
	if !validRatio(ratio) {
		return invalidOperation("split ratio %v outside (0,1)", ratio)
	}
	if c.Ratio == ratio {
		return nil
	}
	c.Ratio = ratio
	t.touch()
	return nil
}

// ReorderTab moves panel to index within its own stack. The active panel
// stays active. Out-of-range indexes clamp to the ends of the stack.
func (t *LayoutTree) ReorderTab(panel PanelID, index int) error {
	leafID, ok := t.FindLeafContaining(panel)
	if !ok {
		return invalidOperation("panel %q is not docked", panel)
	}
	leaf := t.nodes[leafID]
	from := leaf.IndexOf(panel)
	to := min(max(index, 0), len(leaf.Panels)-1)
	if from == to {
		return invalidOperation("panel %q is already at index %d", panel, to)
	}

	active := leaf.ActivePanel()
	leaf.Panels = slices.Delete(leaf.Panels, from, from+1)
	leaf.Panels = slices.Insert(leaf.Panels, to, panel)
	leaf.Active = leaf.IndexOf(active)
	t.touch()
	return nil
}

// Undock moves panel into a new floating window placed at frame, on top of
// every other window. It returns the floating leaf id.
func (t *LayoutTree) Undock(panel PanelID, frame Rect) (ContainerID, error) {
	source, ok := t.FindLeafContaining(panel)
	if !ok {
		return NoContainer, invalidOperation("panel %q is not docked", panel)
	}
	if frame.Empty() {
		return NoContainer, invalidOperation("floating frame has no area")
	}
	if t.isFinalPanel(source) {
		return NoContainer, ErrCannotRemoveFinalPanel
	}

	t.detachPanel(source, panel)
	leaf := t.addLeaf(NoContainer, []PanelID{panel})
	t.floating = append(t.floating, FloatingWindow{Root: leaf.ID, Frame: frame, Z: t.topZ() + 1})
	t.touch()
	return leaf.ID, nil
}

// DockFloating moves every panel of a floating window to target. The first
// panel docks at zone; the rest join it as tabs. The window disappears.
func (t *LayoutTree) DockFloating(window, target ContainerID, zone DropZone) (ContainerID, error) {
	if t.floatingIndex(window) < 0 {
		return NoContainer, invalidOperation("container %d is not a floating window", window)
	}
	if _, err := t.leaf(target); err != nil {
		return NoContainer, err
	}
	if err := checkZone(zone); err != nil {
		return NoContainer, err
	}
	if root, _ := t.RootOf(target); root == window {
		return NoContainer, invalidOperation("cannot dock window %d into itself", window)
	}

	var panels []PanelID
	var leaves []ContainerID
	_ = t.walk(window, 0, func(c Container, _ int) bool {
		if c.IsLeaf() {
			leaves = append(leaves, c.ID)
			panels = append(panels, c.Panels...)
		}
		return true
	})
	// Remove the whole window subtree before re-inserting its panels.
	for _, leafID := range leaves {
		for _, p := range slices.Clone(t.nodes[leafID].Panels) {
			t.detachPanel(leafID, p)
		}
	}

	dest := t.insertPanel(t.nodes[target], panels[0], zone, DefaultSplitRatio)
	for _, p := range panels[1:] {
		t.insertPanel(t.nodes[dest], p, DropCenter, DefaultSplitRatio)
	}
	t.touch()
	return dest, nil
}

// RaiseFloating brings a floating window to the front.
func (t *LayoutTree) RaiseFloating(window ContainerID) error {
	i := t.floatingIndex(window)
	if i < 0 {
		return invalidOperation("container %d is not a floating window", window)
	}
	top := t.topZ()
	if t.floating[i].Z == top && countZ(t.floating, top) == 1 {
		return nil
	}
	t.floating[i].Z = top + 1
	t.touch()
	return nil
}

// MoveFloating changes the frame of a floating window.
func (t *LayoutTree) MoveFloating(window ContainerID, frame Rect) error {
	i := t.floatingIndex(window)
	if i < 0 {
		return invalidOperation("container %d is not a floating window", window)
	}
	if frame.Empty() {
		return invalidOperation("floating frame has no area")
	}
	t.floating[i].Frame = frame
	t.touch()
	return nil
}

func countZ(windows []FloatingWindow, z int) int {
	n := 0
	for _, w := range windows {
		if w.Z == z {
			n++
		}
	}
	return n
}

func checkZone(zone DropZone) error {
	switch zone {
	case DropCenter, DropLeft, DropRight, DropTop, DropBottom:
		return nil
	default:
		return invalidOperation("unknown drop zone %d", zone)
	}
}

// isFinalPanel reports whether leafID holds the only panel of the docked tree.
func (t *LayoutTree) isFinalPanel(leafID ContainerID) bool {
	return leafID == t.root && len(t.nodes[leafID].Panels) == 1
}

// insertPanel docks panel at leaf without any validation.
func (t *LayoutTree) insertPanel(leaf *Container, panel PanelID, zone DropZone, ratio float64) ContainerID {
	if !zone.IsEdge() {
		leaf.Panels = append(leaf.Panels, panel)
		leaf.Active = len(leaf.Panels) - 1
		return leaf.ID
	}

	split := &Container{
		ID:          t.issueID(),
		Kind:        ContainerSplit,
		Parent:      leaf.Parent,
		Orientation: zone.Orientation(),
		Ratio:       ratio,
	}
	t.nodes[split.ID] = split
	fresh := t.addLeaf(split.ID, []PanelID{panel})

	t.replaceChild(leaf.Parent, leaf.ID, split.ID)
	leaf.Parent = split.ID

	if zone.NewLeafFirst() {
		split.First, split.Second = fresh.ID, leaf.ID
	} else {
		split.First, split.Second = leaf.ID, fresh.ID
	}
	return fresh.ID
}

// detachPanel removes panel from leafID, deleting the leaf if it empties.
func (t *LayoutTree) detachPanel(leafID ContainerID, panel PanelID) {
	leaf := t.nodes[leafID]
	idx := leaf.IndexOf(panel)
	leaf.Panels = slices.Delete(leaf.Panels, idx, idx+1)

	switch {
	case len(leaf.Panels) == 0:
		t.removeLeaf(leaf)
	case idx < leaf.Active:
		leaf.Active--
	case leaf.Active >= len(leaf.Panels):
		leaf.Active = len(leaf.Panels) - 1
	}
}

// removeLeaf deletes an empty leaf and collapses its parent split.
func (t *LayoutTree) removeLeaf(leaf *Container) {
	delete(t.nodes, leaf.ID)

	if leaf.Parent == NoContainer {
		// Only floating roots can empty out; the docked root is guarded by
		// the final-panel check.
		if i := t.floatingIndex(leaf.ID); i >= 0 {
			t.floating = slices.Delete(t.floating, i, i+1)
		}
		return
	}

	parent := t.nodes[leaf.Parent]
	sibling := parent.First
	if sibling == leaf.ID {
		sibling = parent.Second
	}
	t.nodes[sibling].Parent = parent.Parent
	t.replaceChild(parent.Parent, parent.ID, sibling)
	delete(t.nodes, parent.ID)
}
