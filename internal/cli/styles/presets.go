package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// PresetsCLIRenderer renders output for the preset subcommands
// (e.g. `dockyard preset list`, `load`, `delete`).
type PresetsCLIRenderer struct {
	theme *Theme
}

func NewPresetsCLIRenderer(theme *Theme) *PresetsCLIRenderer {
	return &PresetsCLIRenderer{theme: theme}
}

func (r *PresetsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved presets found.")
}

func (r *PresetsCLIRenderer) RenderList(items []*entity.LayoutPreset) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconTree), r.theme.Title.Render("Presets")))
	b.WriteString("\n\n")

	width := 0
	for _, p := range items {
		width = max(width, len(p.Name))
	}
	for _, p := range items {
		b.WriteString(r.renderOne(p, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: `dockyard preset load <name>` replaces the working layout."))
	return b.String()
}

func (r *PresetsCLIRenderer) renderOne(p *entity.LayoutPreset, width int) string {
	name := r.theme.Highlight.Render(fmt.Sprintf("%-*s", width, p.Name))
	floating := 0
	if p.Layout != nil {
		floating = len(p.Layout.Floating)
	}

	parts := []string{
		r.theme.CountBadge(p.PanelCount, "panel", "panels"),
	}
	if floating > 0 {
		parts = append(parts, r.theme.CountBadge(floating, "window", "windows"))
	}
	parts = append(parts, r.theme.Subtle.Render(RelativeTime(p.UpdatedAt)))

	return fmt.Sprintf("%s %s  %s", r.theme.Subtle.Render(IconCursor), name, strings.Join(parts, " "))
}

func (r *PresetsCLIRenderer) RenderSaved(p *entity.LayoutPreset) string {
	return fmt.Sprintf("%s Preset %s saved (%s).",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(p.Name),
		r.theme.CountBadge(p.PanelCount, "panel", "panels"),
	)
}

func (r *PresetsCLIRenderer) RenderLoaded(name, path string) string {
	return fmt.Sprintf("%s Preset %s loaded into %s.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
		r.theme.Subtle.Render(path),
	)
}

func (r *PresetsCLIRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Preset %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
	)
}

func (r *PresetsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
