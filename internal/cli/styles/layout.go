package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
)

// ValidationResult is the outcome of checking one layout file.
type ValidationResult struct {
	Path   string
	Panels int
	Err    error
}

// LayoutRenderer renders layout trees and the results of layout commands.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderTree draws the docked tree and every floating window as an outline.
// sol may be nil; when set, each container shows its solved rectangle.
func (r *LayoutRenderer) RenderTree(tree *entity.LayoutTree, sol *layout.Solution) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s %s\n",
		r.theme.Highlight.Render(IconTree),
		r.theme.Title.Render("Layout"),
		r.theme.MutedBadge(fmt.Sprintf("v%d", tree.Version())),
	))

	r.renderNode(&b, tree, tree.Root(), "", "", sol)

	for _, w := range tree.Floating() {
		b.WriteString(fmt.Sprintf("\n%s %s %s %s\n",
			r.theme.Highlight.Render(IconWindow),
			r.theme.Subtitle.Render(fmt.Sprintf("floating #%d", w.Root)),
			r.theme.Subtle.Render(formatRect(w.Frame)),
			r.theme.MutedBadge(fmt.Sprintf("z=%d", w.Z)),
		))
		r.renderNode(&b, tree, w.Root, "", "", sol)
	}
	return b.String()
}

func (r *LayoutRenderer) renderNode(b *strings.Builder, tree *entity.LayoutTree, id entity.ContainerID, prefix, branch string, sol *layout.Solution) {
	c, ok := tree.Container(id)
	if !ok {
		return
	}

	b.WriteString(r.theme.Subtle.Render(prefix + branch))
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("#%d ", c.ID)))
	if c.IsSplit() {
		b.WriteString(fmt.Sprintf("%s %s", r.theme.Normal.Render(c.Orientation.String()), r.theme.Subtle.Render(fmt.Sprintf("%.2f", c.Ratio))))
	} else {
		b.WriteString(r.renderTabs(c))
	}
	if sol != nil {
		if rect, ok := sol.Rect(id); ok {
			b.WriteString("  " + r.theme.Subtle.Render(formatRect(rect)))
		}
	}
	b.WriteString("\n")

	if !c.IsSplit() {
		return
	}
	childPrefix := prefix
	switch branch {
	case "├─ ":
		childPrefix += "│  "
	case "└─ ":
		childPrefix += "   "
	}
	r.renderNode(b, tree, c.First, childPrefix, "├─ ", sol)
	r.renderNode(b, tree, c.Second, childPrefix, "└─ ", sol)
}

func (r *LayoutRenderer) renderTabs(c entity.Container) string {
	tabs := make([]string, len(c.Panels))
	for i, p := range c.Panels {
		if i == c.Active {
			tabs[i] = r.theme.ActiveTab.Render(string(p))
		} else {
			tabs[i] = r.theme.InactiveTab.Render(string(p))
		}
	}
	return strings.Join(tabs, "")
}

// RenderRestoreSource explains where a loaded layout came from. It returns
// "" for a clean load from file.
func (r *LayoutRenderer) RenderRestoreSource(out *usecase.RestoreLayoutOutput, path string) string {
	switch out.Source {
	case usecase.RestoreFromDefault:
		return fmt.Sprintf("%s %s",
			r.theme.Highlight.Render(IconInfo),
			r.theme.Subtle.Render(fmt.Sprintf("No layout at %s yet, using the default.", path)),
		)
	case usecase.RestoreFromFallback:
		return fmt.Sprintf("%s Layout at %s could not be read, using a single panel.\n  %s",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Highlight.Render(path),
			r.theme.Subtle.Render(fmt.Sprint(out.DecodeErr)),
		)
	default:
		return ""
	}
}

// RenderMutation confirms one applied command.
func (r *LayoutRenderer) RenderMutation(out *usecase.MutationOutput, path string) string {
	if !out.Changed {
		return fmt.Sprintf("%s %s", r.theme.Subtle.Render(IconInfo), r.theme.Subtle.Render("Nothing to change."))
	}
	return fmt.Sprintf("%s %s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(out.Label),
		r.theme.MutedBadge(fmt.Sprintf("v%d", out.Version)),
		r.theme.Subtle.Render(path),
	)
}

// RenderReset confirms the working layout was replaced by the default.
func (r *LayoutRenderer) RenderReset(path string) string {
	return fmt.Sprintf("%s Layout reset to default in %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderValidation lists one line per file and a summary.
func (r *LayoutRenderer) RenderValidation(results []ValidationResult) string {
	var b strings.Builder
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			b.WriteString(fmt.Sprintf("%s %s\n  %s\n",
				r.theme.ErrorStyle.Render(IconX),
				r.theme.Highlight.Render(res.Path),
				r.theme.Subtle.Render(res.Err.Error()),
			))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Normal.Render(res.Path),
			r.theme.CountBadge(res.Panels, "panel", "panels"),
		))
	}

	summary := fmt.Sprintf("%d of %d valid", len(results)-failed, len(results))
	if failed > 0 {
		b.WriteString("\n" + r.theme.WarningStyle.Render(summary))
	} else {
		b.WriteString("\n" + r.theme.SuccessStyle.Render(summary))
	}
	return b.String()
}

// RenderPanelMatches lists search hits with the matched runes highlighted.
func (r *LayoutRenderer) RenderPanelMatches(matches []usecase.PanelMatch) string {
	if len(matches) == 0 {
		return r.theme.Subtle.Render("No matching panels.")
	}

	var b strings.Builder
	for _, m := range matches {
		where := fmt.Sprintf("leaf #%d", m.Leaf)
		if !m.Docked {
			where = fmt.Sprintf("floating leaf #%d", m.Leaf)
		}
		state := r.theme.MutedBadge("tab")
		if m.Active {
			state = r.theme.AccentBadge("active")
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			r.theme.Subtle.Render(IconSearch),
			r.highlightMatch(string(m.Panel), m.MatchedIndexes),
			state,
			r.theme.Subtle.Render(where),
		))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (r *LayoutRenderer) highlightMatch(name string, idx []int) string {
	if len(idx) == 0 {
		return r.theme.Normal.Render(name)
	}
	hit := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	matched := make(map[int]bool, len(idx))
	for _, i := range idx {
		matched[i] = true
	}

	var b strings.Builder
	for i, ch := range name {
		if matched[i] {
			b.WriteString(hit.Render(string(ch)))
		} else {
			b.WriteString(r.theme.Normal.Render(string(ch)))
		}
	}
	return b.String()
}

// RenderError renders an error message.
func (r *LayoutRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func formatRect(rect entity.Rect) string {
	return fmt.Sprintf("(%g,%g %gx%g)", rect.X, rect.Y, rect.W, rect.H)
}
