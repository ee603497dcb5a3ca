// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/input"
)

// headerRows is the number of screen rows above the canvas.
const headerRows = 1

// DragOptionsMsg replaces the drag tuning, e.g. after a config reload.
type DragOptionsMsg input.DragOptions

type layoutSavedMsg struct {
	path string
	err  error
}

// PreviewModelConfig holds the dependencies of the preview.
type PreviewModelConfig struct {
	Layout      *usecase.ManageLayoutUseCase
	DragOptions input.DragOptions
	// Save persists a snapshot of the tree.
	Save func(ctx context.Context, tree *entity.LayoutTree) error
	Path string
}

// PreviewModel draws the layout in the terminal and edits it with the mouse.
// Terminal cells are the units of every rectangle.
type PreviewModel struct {
	help    help.Model
	keys    styles.PreviewKeyMap
	confirm *styles.ConfirmModel

	width  int
	height int
	focus  entity.PanelID
	status string
	dirty  bool

	ctx    context.Context
	layout *usecase.ManageLayoutUseCase
	drag   *input.DragController
	save   func(ctx context.Context, tree *entity.LayoutTree) error
	path   string
	theme  *styles.Theme
}

// NewPreviewModel creates the preview for cfg.Layout.
func NewPreviewModel(ctx context.Context, theme *styles.Theme, cfg PreviewModelConfig) PreviewModel {
	m := PreviewModel{
		help:   styles.NewStyledHelp(theme),
		keys:   styles.DefaultPreviewKeyMap(),
		width:  80,
		height: 24,
		ctx:    logging.WithComponent(ctx, "preview"),
		layout: cfg.Layout,
		drag:   input.NewDragController(cfg.Layout, cfg.DragOptions),
		save:   cfg.Save,
		path:   cfg.Path,
		theme:  theme,
	}
	if panels := cfg.Layout.Tree().Panels(); len(panels) > 0 {
		m.focus = panels[0]
	}
	return m
}

// Init implements tea.Model.
func (PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case DragOptionsMsg:
		if m.drag.State() == input.DragIdle {
			m.drag = input.NewDragController(m.layout, input.DragOptions(msg))
			m.status = "config reloaded"
		}
		return m, nil

	case layoutSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
		} else {
			m.dirty = false
			m.status = "saved " + msg.path
		}
		return m, nil
	}
	return m, nil
}

// viewport is the canvas rectangle in cells, relative to the first canvas row.
func (m PreviewModel) viewport() entity.Rect {
	return entity.NewRect(0, 0, float64(m.width), float64(max(m.height-headerRows-1, 1)))
}

func (m PreviewModel) handleMouse(msg tea.MouseMsg) PreviewModel {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m
	}

	f := input.Frame{
		Pointer:  entity.Point{X: float64(msg.X), Y: float64(msg.Y - headerRows)},
		Viewport: m.viewport(),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		f.Button = input.ButtonPress
		f.Handle = m.handleAt(f.Pointer)
	case tea.MouseActionRelease:
		f.Button = input.ButtonRelease
	default:
		f.Button = input.ButtonHeld
	}

	return m.applyFrame(f)
}

func (m PreviewModel) applyFrame(f input.Frame) PreviewModel {
	res := m.drag.Update(m.ctx, f)
	if res.Mutation != nil && res.Mutation.Changed {
		m.dirty = true
	}

	switch res.Outcome {
	case input.OutcomeClick:
		m.focus = res.Panel
		m.status = ""
		m = m.report(m.layout.SetActiveTab(m.ctx, res.Leaf, res.Panel))
	case input.OutcomeDropped:
		m.focus = res.Panel
		m.status = fmt.Sprintf("%s docked %s", res.Panel, res.Candidate.Zone)
	case input.OutcomeDropFailed:
		m.status = fmt.Sprintf("cannot drop %s there: %v", res.Panel, res.Err)
	case input.OutcomeCancelled:
		m.status = "drag cancelled"
	case input.OutcomeResized, input.OutcomeMoved:
		m.status = ""
	}
	return m
}

// handleAt classifies what a press at p grabs: a tab label, the title row
// of a floating window, or nothing (the controller then looks for a divider).
func (m PreviewModel) handleAt(p entity.Point) input.Handle {
	tree := m.layout.Tree()
	sol := m.drag.Solve(m.viewport())

	leaf, ok := leafAt(sol, p)
	if !ok {
		return input.Handle{}
	}
	for _, hit := range tabHits(tree, sol) {
		if hit.leaf == leaf && hit.contains(p) {
			return input.TabHandle(hit.panel)
		}
	}
	if tree.IsDocked(leaf) {
		return input.Handle{}
	}
	r := cellRect(sol.Placements[leaf].Rect)
	if int(math.Floor(p.Y)) == r.y0 {
		if root, ok := tree.RootOf(leaf); ok {
			return input.WindowHandle(root)
		}
	}
	return input.Handle{}
}

func (m PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc && m.drag.State() != input.DragIdle {
		return m.applyFrame(input.Frame{Cancel: true, Viewport: m.viewport()}), nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		return m.report(m.layout.Undo(m.ctx)), nil

	case key.Matches(msg, m.keys.Redo):
		return m.report(m.layout.Redo(m.ctx)), nil

	case key.Matches(msg, m.keys.Close):
		return m.report(m.layout.ClosePanel(m.ctx, m.focus)), nil

	case key.Matches(msg, m.keys.Undock):
		vp := m.viewport()
		frame := entity.NewRect(math.Round(vp.W/4), math.Round(vp.H/4), math.Round(vp.W/2), math.Round(vp.H/2))
		return m.report(m.layout.Undock(m.ctx, m.focus, frame)), nil

	case key.Matches(msg, m.keys.Dock):
		return m.dockFocused(), nil

	case key.Matches(msg, m.keys.Reset):
		confirm := styles.NewConfirm(m.theme, "Reset to the default layout?")
		m.confirm = &confirm
		return m, nil

	case key.Matches(msg, m.keys.Save):
		if m.save == nil {
			m.status = "saving is disabled"
			return m, nil
		}
		return m, m.saveLayout()
	}
	return m, nil
}

// dockFocused docks the floating window holding the focused panel into the
// first docked stack.
func (m PreviewModel) dockFocused() PreviewModel {
	tree := m.layout.Tree()
	leaf, ok := tree.FindLeafContaining(m.focus)
	if !ok || tree.IsDocked(leaf) {
		m.status = fmt.Sprintf("%s is not floating", m.focus)
		return m
	}
	window, _ := tree.RootOf(leaf)

	var target entity.ContainerID
	for _, id := range tree.Leaves() {
		if tree.IsDocked(id) {
			target = id
			break
		}
	}
	return m.report(m.layout.DockFloating(m.ctx, usecase.DockFloatingInput{Window: window, Target: target, Zone: entity.DropCenter}))
}

func (m PreviewModel) report(out *usecase.MutationOutput, err error) PreviewModel {
	switch {
	case errors.Is(err, usecase.ErrNothingToUndo), errors.Is(err, usecase.ErrNothingToRedo):
		m.status = err.Error()
	case err != nil:
		m.status = fmt.Sprintf("error: %v", err)
	case out.Changed:
		m.dirty = true
		m.status = out.Label
		if _, ok := m.layout.Tree().FindLeafContaining(m.focus); !ok {
			if panels := m.layout.Tree().Panels(); len(panels) > 0 {
				m.focus = panels[0]
			}
		}
	}
	return m
}

func (m PreviewModel) handleConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() {
		m = m.report(m.layout.Replace(m.ctx, "reset", entity.DefaultLayoutTree()))
	}
	m.confirm = nil
	return m, cmd
}

func (m PreviewModel) saveLayout() tea.Cmd {
	snapshot := m.layout.Tree().Clone()
	return func() tea.Msg {
		err := m.save(m.ctx, snapshot)
		if err != nil {
			logging.FromContext(m.ctx).Error().Err(err).Str("path", m.path).Msg("failed to save layout")
		}
		return layoutSavedMsg{path: m.path, err: err}
	}
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderCanvas(), m.help.View(m.keys))
}

func (m PreviewModel) renderHeader() string {
	t := m.theme
	parts := []string{
		t.Title.Render("dockyard"),
		t.MutedBadge(fmt.Sprintf("v%d", m.layout.Tree().Version())),
		t.Subtle.Render("focus " + string(m.focus)),
	}
	if m.dirty {
		parts = append(parts, t.WarningStyle.Render("unsaved"))
	}
	if state := m.drag.State(); state != input.DragIdle {
		parts = append(parts, t.Highlight.Render(state.String()))
	}
	if m.status != "" {
		parts = append(parts, t.Subtle.Render(m.status))
	}
	return strings.Join(parts, " ")
}
