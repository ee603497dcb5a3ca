package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ConfigSchemaRenderer renders the documented config keys.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render lists keys grouped by section, sections in the order they first appear.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	t := r.theme
	if len(keys) == 0 {
		return t.Subtle.Render("No configuration keys found")
	}

	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k.Key))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", lipgloss.NewStyle().Foreground(t.Accent).Render(IconConfig), t.Title.Render("Config keys")))

	section := ""
	for _, k := range keys {
		if k.Section != section {
			section = k.Section
			b.WriteString("\n" + t.Subtitle.Render(section) + "\n")
		}
		b.WriteString(r.renderKey(k, width))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *ConfigSchemaRenderer) renderKey(k entity.ConfigKeyInfo, width int) string {
	t := r.theme
	name := t.Normal.Bold(true).Render(k.Key + strings.Repeat(" ", width-lipgloss.Width(k.Key)))
	line := fmt.Sprintf("  %s  %s = %s", name, t.Subtle.Render(k.Type), t.Highlight.Render(k.Default))

	switch {
	case len(k.Values) > 0:
		line += t.Subtle.Render("  (" + strings.Join(k.Values, "|") + ")")
	case k.Range != "":
		line += t.Subtle.Render("  [" + k.Range + "]")
	}
	line += "\n"
	if k.Description != "" {
		line += "  " + strings.Repeat(" ", width) + "  " + t.Subtle.Render(k.Description) + "\n"
	}
	return line
}

// RenderJSON renders the keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}
