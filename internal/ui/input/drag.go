package input

import (
	"context"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultDragThreshold is the pointer travel in pixels that turns a press into a drag.
const DefaultDragThreshold = 5.0

// DragOptions tunes the controller.
type DragOptions struct {
	Threshold        float64
	EdgeBand         float64
	DividerTolerance float64
	MinRatio         float64
	MaxRatio         float64
	Solver           layout.Options
}

// DefaultDragOptions returns the editor defaults.
func DefaultDragOptions() DragOptions {
	return DragOptions{
		Threshold:        DefaultDragThreshold,
		EdgeBand:         layout.DefaultEdgeBand,
		DividerTolerance: layout.DefaultDividerTolerance,
		MinRatio:         0.1,
		MaxRatio:         0.9,
		Solver:           layout.DefaultOptions(),
	}
}

type dragSession struct {
	kind  HandleKind
	press entity.Point

	panel  entity.PanelID
	origin entity.ContainerID

	divider    layout.Divider
	startRatio float64

	window     entity.ContainerID
	startFrame entity.Rect

	// changed is set once a divider or window drag committed a mutation.
	changed bool
}

// DragController turns polled pointer frames into drag lifecycle transitions
// and layout mutations. It is owned by the host's frame loop and is not safe
// for concurrent use.
type DragController struct {
	commands LayoutCommands
	solver   *layout.Solver
	opts     DragOptions

	state        DragState
	session      *dragSession
	candidate    layout.Candidate
	hasCandidate bool
}

// NewDragController creates an idle controller.
func NewDragController(commands LayoutCommands, opts DragOptions) *DragController {
	return &DragController{
		commands: commands,
		solver:   layout.NewSolver(opts.Solver),
		opts:     opts,
	}
}

// State returns the current state.
func (c *DragController) State() DragState {
	return c.state
}

// Candidate returns the drop target under the pointer while dragging a tab.
func (c *DragController) Candidate() (layout.Candidate, bool) {
	return c.candidate, c.hasCandidate
}

// DraggedPanel returns the panel of the active tab session.
func (c *DragController) DraggedPanel() (entity.PanelID, bool) {
	if c.session == nil || c.session.kind != HandleTab {
		return "", false
	}
	return c.session.panel, true
}

// Solve returns the current layout solution for viewport.
func (c *DragController) Solve(viewport entity.Rect) layout.Solution {
	return c.solver.Solve(c.commands.Tree(), viewport)
}

// Update processes one frame and returns immediately.
func (c *DragController) Update(ctx context.Context, f Frame) FrameResult {
	if f.Cancel {
		return c.cancel(ctx, "cancel signal")
	}

	if f.Button == ButtonPress {
		if c.session != nil {
			// a press without a release in between: the old gesture is gone
			c.cancel(ctx, "new press")
		}
		return c.press(ctx, f)
	}

	if c.session == nil {
		return c.result(OutcomeNone)
	}

	if f.Button == ButtonRelease {
		return c.release(ctx, f)
	}
	return c.motion(ctx, f)
}

func (c *DragController) press(ctx context.Context, f Frame) FrameResult {
	log := logging.FromContext(ctx)
	tree := c.commands.Tree()
	s := &dragSession{kind: f.Handle.Kind, press: f.Pointer}

	switch f.Handle.Kind {
	case HandleTab:
		leaf, ok := tree.FindLeafContaining(f.Handle.Panel)
		if !ok {
			log.Debug().Str("panel", string(f.Handle.Panel)).Msg("press on unknown tab ignored")
			return c.result(OutcomeNone)
		}
		s.panel = f.Handle.Panel
		s.origin = leaf

	case HandleWindow:
		w, ok := tree.FloatingWindow(f.Handle.Window)
		if !ok {
			return c.result(OutcomeNone)
		}
		s.window = w.Root
		s.startFrame = w.Frame
		if _, err := c.commands.RaiseFloating(ctx, w.Root); err != nil {
			log.Debug().Err(err).Msg("raise floating window failed")
		}

	case HandleDivider, HandleNone:
		d, ok := c.findDivider(tree, f)
		if !ok {
			return c.result(OutcomeNone)
		}
		split, _ := tree.Container(d.Split)
		s.kind = HandleDivider
		s.divider = d
		s.startRatio = split.Ratio

	default:
		return c.result(OutcomeNone)
	}

	c.session = s
	c.state = DragArmed
	log.Debug().
		Str("handle", handleName(s.kind)).
		Str("panel", string(s.panel)).
		Float64("x", f.Pointer.X).
		Float64("y", f.Pointer.Y).
		Msg("drag armed")
	return c.result(OutcomeNone)
}

func (c *DragController) findDivider(tree *entity.LayoutTree, f Frame) (layout.Divider, bool) {
	sol := c.solver.Solve(tree, f.Viewport)
	if f.Handle.Kind == HandleDivider && f.Handle.Split != entity.NoContainer {
		for _, d := range sol.Dividers {
			if d.Split == f.Handle.Split {
				return d, true
			}
		}
		return layout.Divider{}, false
	}
	return layout.HitTestDivider(sol, f.Pointer, c.opts.DividerTolerance)
}

func (c *DragController) motion(ctx context.Context, f Frame) FrameResult {
	s := c.session

	if c.state == DragArmed {
		if entity.Distance(s.press, f.Pointer) <= c.opts.Threshold {
			return c.result(OutcomeNone)
		}
		c.state = DragDragging
		logging.FromContext(ctx).Debug().
			Str("handle", handleName(s.kind)).
			Str("panel", string(s.panel)).
			Msg("drag started")
	}

	switch s.kind {
	case HandleTab:
		c.candidate, c.hasCandidate = layout.ResolveCandidate(c.Solve(f.Viewport), f.Pointer, c.opts.EdgeBand)
		return c.result(OutcomeNone)
	case HandleDivider:
		return c.dragDivider(ctx, f)
	case HandleWindow:
		return c.dragWindow(ctx, f)
	}
	return c.result(OutcomeNone)
}

func (c *DragController) dragDivider(ctx context.Context, f Frame) FrameResult {
	s := c.session
	delta := f.Pointer.Y - s.press.Y
	if s.divider.Orientation == entity.OrientationVertical {
		delta = f.Pointer.X - s.press.X
	}
	ratio := layout.DragRatio(s.startRatio, delta, s.divider.Extent(), c.opts.MinRatio, c.opts.MaxRatio)

	out, err := c.commands.SetSplitRatio(ctx, s.divider.Split, ratio)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("divider drag rejected")
		res := c.result(OutcomeNone)
		res.Err = err
		return res
	}
	s.changed = s.changed || out.Changed
	res := c.result(OutcomeNone)
	res.Mutation = out
	return res
}

func (c *DragController) dragWindow(ctx context.Context, f Frame) FrameResult {
	s := c.session
	frame := s.startFrame
	frame.X += f.Pointer.X - s.press.X
	frame.Y += f.Pointer.Y - s.press.Y

	out, err := c.commands.MoveFloating(ctx, s.window, frame)
	if err != nil {
		res := c.result(OutcomeNone)
		res.Err = err
		return res
	}
	s.changed = s.changed || out.Changed
	res := c.result(OutcomeNone)
	res.Mutation = out
	return res
}

func (c *DragController) release(ctx context.Context, f Frame) FrameResult {
	log := logging.FromContext(ctx)
	s := c.session

	// a coarse host may report the release without the motion that led there
	if c.state == DragArmed && entity.Distance(s.press, f.Pointer) > c.opts.Threshold {
		c.state = DragDragging
	}

	if c.state == DragArmed {
		if s.kind != HandleTab {
			c.reset()
			return c.result(OutcomeNone)
		}
		// a click leaves the tree alone; the host decides whether to activate
		res := c.finish(OutcomeClick, s)
		res.Leaf = s.origin
		log.Debug().Str("panel", string(s.panel)).Msg("tab clicked")
		return res
	}

	switch s.kind {
	case HandleDivider:
		// the final frame may carry a position the motion frames never saw
		res := c.dragDivider(ctx, f)
		c.commands.SealHistory()
		final := c.finish(OutcomeResized, s)
		final.Mutation, final.Err = res.Mutation, res.Err
		return final
	case HandleWindow:
		res := c.dragWindow(ctx, f)
		c.commands.SealHistory()
		final := c.finish(OutcomeMoved, s)
		final.Mutation, final.Err = res.Mutation, res.Err
		return final
	}

	cand, ok := layout.ResolveCandidate(c.Solve(f.Viewport), f.Pointer, c.opts.EdgeBand)
	if !ok {
		log.Debug().Str("panel", string(s.panel)).Msg("drag released outside every container")
		return c.finish(OutcomeCancelled, s)
	}

	out, err := c.commands.MovePanel(ctx, moveInput(s.panel, cand))
	if err != nil {
		log.Debug().
			Err(err).
			Str("panel", string(s.panel)).
			Str("zone", cand.Zone.String()).
			Msg("drop rejected")
		res := c.finish(OutcomeDropFailed, s)
		res.Candidate, res.HasCandidate = cand, true
		res.Err = err
		return res
	}

	log.Debug().
		Str("panel", string(s.panel)).
		Uint64("target", uint64(cand.Leaf)).
		Str("zone", cand.Zone.String()).
		Msg("panel dropped")
	res := c.finish(OutcomeDropped, s)
	res.Candidate, res.HasCandidate = cand, true
	res.Mutation = out
	return res
}

func (c *DragController) cancel(ctx context.Context, reason string) FrameResult {
	s := c.session
	if s == nil {
		return c.result(OutcomeNone)
	}
	if s.changed {
		c.revert(ctx, s)
		c.commands.SealHistory()
	}
	logging.FromContext(ctx).Debug().Str("reason", reason).Str("state", c.state.String()).Msg("drag cancelled")
	return c.finish(OutcomeCancelled, s)
}

// revert puts a divider or window back where the gesture found it.
func (c *DragController) revert(ctx context.Context, s *dragSession) {
	var err error
	switch s.kind {
	case HandleDivider:
		_, err = c.commands.SetSplitRatio(ctx, s.divider.Split, s.startRatio)
	case HandleWindow:
		_, err = c.commands.MoveFloating(ctx, s.window, s.startFrame)
	}
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("could not revert cancelled drag")
	}
}

// finish reports outcome for session and returns the controller to Idle.
func (c *DragController) finish(outcome Outcome, s *dragSession) FrameResult {
	c.reset()
	res := c.result(outcome)
	res.Panel = s.panel
	return res
}

func (c *DragController) reset() {
	c.session = nil
	c.state = DragIdle
	c.candidate, c.hasCandidate = layout.Candidate{}, false
}

func (c *DragController) result(outcome Outcome) FrameResult {
	res := FrameResult{
		State:        c.state,
		Candidate:    c.candidate,
		HasCandidate: c.hasCandidate,
		Outcome:      outcome,
	}
	if c.session != nil {
		res.Panel = c.session.panel
	}
	return res
}

func moveInput(panel entity.PanelID, cand layout.Candidate) usecase.MovePanelInput {
	return usecase.MovePanelInput{Panel: panel, Target: cand.Leaf, Zone: cand.Zone}
}

func handleName(k HandleKind) string {
	switch k {
	case HandleTab:
		return "tab"
	case HandleDivider:
		return "divider"
	case HandleWindow:
		return "window"
	default:
		return "none"
	}
}
