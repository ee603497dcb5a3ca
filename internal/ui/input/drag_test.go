package input_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/input"
	mock_input "github.com/bnema/dockyard/internal/ui/input/mocks"
)

var viewport = entity.NewRect(0, 0, 1000, 600)

type floatMatcher struct {
	expected  float64
	tolerance float64
}

func (f floatMatcher) Matches(x any) bool {
	actual, ok := x.(float64)
	return ok && math.Abs(actual-f.expected) < f.tolerance
}

func (f floatMatcher) String() string {
	return fmt.Sprintf("is within %g of %g", f.tolerance, f.expected)
}

func floatEq(expected float64) gomock.Matcher {
	return floatMatcher{expected: expected, tolerance: 1e-9}
}

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func at(x, y float64, b input.Button) input.Frame {
	return input.Frame{Pointer: entity.Point{X: x, Y: y}, Button: b, Viewport: viewport}
}

func pressTab(x, y float64, panel entity.PanelID) input.Frame {
	f := at(x, y, input.ButtonPress)
	f.Handle = input.TabHandle(panel)
	return f
}

func leafOf(t *testing.T, tree *entity.LayoutTree, panel entity.PanelID) entity.ContainerID {
	t.Helper()
	leaf, ok := tree.FindLeafContaining(panel)
	require.True(t, ok)
	return leaf
}

// The default tree in a 1000x600 viewport: Viewport (0,0,700,600),
// Hierarchy (700,0,300,300), Inspector (700,300,300,300).
func newMockedController(t *testing.T) (*input.DragController, *mock_input.MockLayoutCommands, *entity.LayoutTree) {
	t.Helper()
	ctrl := gomock.NewController(t)
	commands := mock_input.NewMockLayoutCommands(ctrl)
	tree := entity.DefaultLayoutTree()
	commands.EXPECT().Tree().Return(tree).AnyTimes()
	return input.NewDragController(commands, input.DefaultDragOptions()), commands, tree
}

func TestDragController_TabDragDropsOnCandidate(t *testing.T) {
	ctx := testCtx()
	c, commands, tree := newMockedController(t)
	target := leafOf(t, tree, entity.PanelViewport)

	res := c.Update(ctx, pressTab(710, 310, entity.PanelInspector))
	assert.Equal(t, input.DragArmed, res.State)

	res = c.Update(ctx, at(712, 312, input.ButtonHeld))
	assert.Equal(t, input.DragArmed, res.State)
	assert.False(t, res.HasCandidate)

	res = c.Update(ctx, at(100, 300, input.ButtonHeld))
	require.Equal(t, input.DragDragging, res.State)
	require.True(t, res.HasCandidate)
	assert.Equal(t, target, res.Candidate.Leaf)
	assert.Equal(t, entity.DropLeft, res.Candidate.Zone)
	panel, ok := c.DraggedPanel()
	assert.True(t, ok)
	assert.Equal(t, entity.PanelInspector, panel)

	commands.EXPECT().
		MovePanel(gomock.Any(), usecase.MovePanelInput{Panel: entity.PanelInspector, Target: target, Zone: entity.DropLeft}).
		Return(&usecase.MutationOutput{Leaf: 9, Changed: true}, nil)

	res = c.Update(ctx, at(100, 300, input.ButtonRelease))
	assert.Equal(t, input.OutcomeDropped, res.Outcome)
	assert.Equal(t, input.DragIdle, res.State)
	assert.Equal(t, entity.PanelInspector, res.Panel)
	require.NotNil(t, res.Mutation)
	assert.True(t, res.Mutation.Changed)

	_, has := c.Candidate()
	assert.False(t, has)
}

func TestDragController_ThresholdIsExclusive(t *testing.T) {
	ctx := testCtx()
	c, _, _ := newMockedController(t)

	c.Update(ctx, pressTab(710, 310, entity.PanelInspector))
	res := c.Update(ctx, at(715, 310, input.ButtonHeld))
	assert.Equal(t, input.DragArmed, res.State)

	res = c.Update(ctx, at(716, 310, input.ButtonNone))
	assert.Equal(t, input.DragDragging, res.State)
}

func TestDragController_ReleaseWhileArmedIsClick(t *testing.T) {
	ctx := testCtx()
	// no command expectations: a click must not touch the layout
	c, _, tree := newMockedController(t)
	leaf := leafOf(t, tree, entity.PanelInspector)

	c.Update(ctx, pressTab(710, 310, entity.PanelInspector))
	c.Update(ctx, at(712, 311, input.ButtonHeld))
	res := c.Update(ctx, at(712, 311, input.ButtonRelease))

	assert.Equal(t, input.OutcomeClick, res.Outcome)
	assert.Equal(t, input.DragIdle, res.State)
	assert.Equal(t, entity.PanelInspector, res.Panel)
	assert.Equal(t, leaf, res.Leaf)
	assert.Nil(t, res.Mutation)
	assert.NoError(t, res.Err)
}

func TestDragController_ClickKeepsTreeVersion(t *testing.T) {
	ctx := testCtx()
	tree := entity.NewLayoutTree("A", "B")
	uc := usecase.NewManageLayoutUseCase(tree, usecase.NewLayoutHistory(10), usecase.DefaultLayoutPolicy())
	c := input.NewDragController(uc, input.DefaultDragOptions())
	before := tree.Version()

	c.Update(ctx, pressTab(100, 5, "B"))
	res := c.Update(ctx, at(100, 5, input.ButtonRelease))

	require.Equal(t, input.OutcomeClick, res.Outcome)
	assert.Equal(t, before, tree.Version())
	assert.Equal(t, 0, uc.History().Len())
	leaf, ok := tree.Container(tree.Root())
	require.True(t, ok)
	assert.Equal(t, 0, leaf.Active)
}

func TestDragController_ReleasePastThresholdDrops(t *testing.T) {
	ctx := testCtx()
	c, commands, tree := newMockedController(t)
	target := leafOf(t, tree, entity.PanelViewport)

	commands.EXPECT().
		MovePanel(gomock.Any(), usecase.MovePanelInput{Panel: entity.PanelInspector, Target: target, Zone: entity.DropLeft}).
		Return(&usecase.MutationOutput{Leaf: 9, Changed: true}, nil)

	c.Update(ctx, pressTab(710, 310, entity.PanelInspector))
	res := c.Update(ctx, at(100, 300, input.ButtonRelease))

	assert.Equal(t, input.OutcomeDropped, res.Outcome)
	assert.Equal(t, input.DragIdle, res.State)
	require.True(t, res.HasCandidate)
	assert.Equal(t, target, res.Candidate.Leaf)
}

func TestDragController_ReleaseOutsideCancels(t *testing.T) {
	ctx := testCtx()
	c, _, _ := newMockedController(t)

	c.Update(ctx, pressTab(710, 310, entity.PanelInspector))
	c.Update(ctx, at(500, 300, input.ButtonHeld))
	res := c.Update(ctx, at(1200, 300, input.ButtonHeld))
	assert.False(t, res.HasCandidate)

	res = c.Update(ctx, at(1200, 300, input.ButtonRelease))
	assert.Equal(t, input.OutcomeCancelled, res.Outcome)
	assert.Equal(t, input.DragIdle, res.State)
}

func TestDragController_CancelSignalEndsSessionInSameFrame(t *testing.T) {
	ctx := testCtx()
	c, _, _ := newMockedController(t)

	c.Update(ctx, pressTab(710, 310, entity.PanelInspector))
	c.Update(ctx, at(300, 300, input.ButtonHeld))
	require.Equal(t, input.DragDragging, c.State())

	res := c.Update(ctx, input.Frame{Cancel: true, Viewport: viewport})
	assert.Equal(t, input.OutcomeCancelled, res.Outcome)
	assert.Equal(t, input.DragIdle, res.State)
	assert.False(t, res.HasCandidate)

	// the release that follows focus loss belongs to no session
	res = c.Update(ctx, at(300, 300, input.ButtonRelease))
	assert.Equal(t, input.OutcomeNone, res.Outcome)
}

func TestDragController_FailedDropReturnsToIdle(t *testing.T) {
	ctx := testCtx()
	c, commands, tree := newMockedController(t)
	own := leafOf(t, tree, entity.PanelInspector)

	commands.EXPECT().
		MovePanel(gomock.Any(), usecase.MovePanelInput{Panel: entity.PanelInspector, Target: own, Zone: entity.DropCenter}).
		Return(nil, entity.ErrInvalidOperation)

	c.Update(ctx, pressTab(710, 310, entity.PanelInspector))
	c.Update(ctx, at(850, 450, input.ButtonHeld))
	res := c.Update(ctx, at(850, 450, input.ButtonRelease))

	assert.Equal(t, input.OutcomeDropFailed, res.Outcome)
	assert.ErrorIs(t, res.Err, entity.ErrInvalidOperation)
	assert.Equal(t, input.DragIdle, res.State)
}

func TestDragController_DividerDragClampsAndSeals(t *testing.T) {
	ctx := testCtx()
	c, commands, tree := newMockedController(t)
	root := tree.Root()

	gomock.InOrder(
		commands.EXPECT().SetSplitRatio(gomock.Any(), root, floatEq(0.8)).Return(&usecase.MutationOutput{Changed: true}, nil),
		commands.EXPECT().SetSplitRatio(gomock.Any(), root, floatEq(0.9)).Return(&usecase.MutationOutput{Changed: true}, nil),
		commands.EXPECT().SetSplitRatio(gomock.Any(), root, floatEq(0.9)).Return(&usecase.MutationOutput{}, nil),
		commands.EXPECT().SealHistory(),
	)

	res := c.Update(ctx, at(701, 100, input.ButtonPress))
	require.Equal(t, input.DragArmed, res.State)

	c.Update(ctx, at(801, 100, input.ButtonHeld))
	c.Update(ctx, at(1001, 100, input.ButtonHeld))
	res = c.Update(ctx, at(1001, 100, input.ButtonRelease))

	assert.Equal(t, input.OutcomeResized, res.Outcome)
	assert.Equal(t, input.DragIdle, res.State)
}

func TestDragController_PressOnNothingStaysIdle(t *testing.T) {
	ctx := testCtx()
	c, _, _ := newMockedController(t)

	res := c.Update(ctx, at(300, 300, input.ButtonPress))
	assert.Equal(t, input.DragIdle, res.State)

	res = c.Update(ctx, pressTab(300, 300, "Missing"))
	assert.Equal(t, input.DragIdle, res.State)
}

func newRealController(t *testing.T) (*input.DragController, *usecase.ManageLayoutUseCase, *entity.LayoutTree) {
	t.Helper()
	tree := entity.DefaultLayoutTree()
	uc := usecase.NewManageLayoutUseCase(tree, usecase.NewLayoutHistory(20), usecase.DefaultLayoutPolicy())
	return input.NewDragController(uc, input.DefaultDragOptions()), uc, tree
}

func TestDragController_DropIsOneUndoableStep(t *testing.T) {
	ctx := testCtx()
	c, uc, tree := newRealController(t)
	before := entity.ToPersisted(tree)
	target := leafOf(t, tree, entity.PanelViewport)

	c.Update(ctx, pressTab(710, 10, entity.PanelHierarchy))
	c.Update(ctx, at(340, 290, input.ButtonHeld))
	res := c.Update(ctx, at(350, 300, input.ButtonRelease))

	require.Equal(t, input.OutcomeDropped, res.Outcome)
	require.NoError(t, res.Err)
	assert.Equal(t, target, leafOf(t, tree, entity.PanelHierarchy))
	assert.Equal(t, 1, uc.History().Len())
	require.NoError(t, tree.Validate())

	_, err := uc.Undo(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, entity.ToPersisted(tree))
}

func TestDragController_DividerGesturesMergePerGesture(t *testing.T) {
	ctx := testCtx()
	c, uc, tree := newRealController(t)
	root := tree.Root()

	c.Update(ctx, at(700, 100, input.ButtonPress))
	for _, x := range []float64{720, 760, 800} {
		c.Update(ctx, at(x, 100, input.ButtonHeld))
	}
	res := c.Update(ctx, at(800, 100, input.ButtonRelease))
	require.Equal(t, input.OutcomeResized, res.Outcome)

	split, _ := tree.Container(root)
	assert.InDelta(t, 0.8, split.Ratio, 1e-9)
	assert.Equal(t, 1, uc.History().Len())

	c.Update(ctx, at(800, 100, input.ButtonPress))
	c.Update(ctx, at(750, 100, input.ButtonHeld))
	c.Update(ctx, at(750, 100, input.ButtonRelease))
	assert.Equal(t, 2, uc.History().Len())

	_, err := uc.Undo(ctx)
	require.NoError(t, err)
	split, _ = tree.Container(root)
	assert.InDelta(t, 0.8, split.Ratio, 1e-9)
}

func TestDragController_CancelledDividerDragRestoresRatio(t *testing.T) {
	ctx := testCtx()
	c, _, tree := newRealController(t)
	root := tree.Root()

	c.Update(ctx, at(700, 100, input.ButtonPress))
	c.Update(ctx, at(600, 100, input.ButtonHeld))
	split, _ := tree.Container(root)
	require.InDelta(t, 0.6, split.Ratio, 1e-9)

	res := c.Update(ctx, input.Frame{Cancel: true, Viewport: viewport})
	assert.Equal(t, input.OutcomeCancelled, res.Outcome)
	split, _ = tree.Container(root)
	assert.InDelta(t, 0.7, split.Ratio, 1e-9)
}

func TestDragController_FloatingWindowFollowsPointer(t *testing.T) {
	ctx := testCtx()
	c, uc, tree := newRealController(t)

	out, err := uc.Undock(ctx, entity.PanelInspector, entity.NewRect(100, 100, 200, 150))
	require.NoError(t, err)
	window := out.Leaf

	press := at(150, 105, input.ButtonPress)
	press.Handle = input.WindowHandle(window)
	c.Update(ctx, press)
	c.Update(ctx, at(200, 155, input.ButtonHeld))

	w, ok := tree.FloatingWindow(window)
	require.True(t, ok)
	assert.Equal(t, entity.NewRect(150, 150, 200, 150), w.Frame)

	res := c.Update(ctx, at(210, 165, input.ButtonRelease))
	assert.Equal(t, input.OutcomeMoved, res.Outcome)
	w, _ = tree.FloatingWindow(window)
	assert.Equal(t, entity.NewRect(160, 160, 200, 150), w.Frame)

	// undock plus one merged move
	assert.Equal(t, 2, uc.History().Len())
}

func TestDragController_FloatingLeafIsHitBeforeDockedTree(t *testing.T) {
	ctx := testCtx()
	c, uc, tree := newRealController(t)

	out, err := uc.Undock(ctx, entity.PanelInspector, entity.NewRect(100, 100, 200, 200))
	require.NoError(t, err)

	c.Update(ctx, pressTab(710, 10, entity.PanelHierarchy))
	res := c.Update(ctx, at(200, 200, input.ButtonHeld))
	require.True(t, res.HasCandidate)
	assert.Equal(t, out.Leaf, res.Candidate.Leaf)
	assert.Equal(t, entity.DropCenter, res.Candidate.Zone)

	res = c.Update(ctx, at(200, 200, input.ButtonRelease))
	require.Equal(t, input.OutcomeDropped, res.Outcome)
	assert.Equal(t, out.Leaf, leafOf(t, tree, entity.PanelHierarchy))
}
