package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigPaths lists the files dockyard reads and writes.
type ConfigPaths struct {
	Config   string
	Schema   string
	Layout   string
	Database string
	LogDir   string
}

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders every resolved path, one per line.
func (r *ConfigRenderer) RenderConfigInfo(paths ConfigPaths) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Width(10)
	pathStyle := r.theme.Subtle

	line := func(icon, label, path string) string {
		if path == "" {
			path = "-"
		}
		return fmt.Sprintf("  %s %s %s\n", iconStyle.Render(icon), labelStyle.Render(label), pathStyle.Render(path))
	}

	return "\n" +
		line(IconConfig, "Config", paths.Config) +
		line(IconConfig, "Schema", paths.Schema) +
		line(IconPane, "Layout", paths.Layout) +
		line(IconDatabase, "Presets", paths.Database) +
		line(IconFolder, "Logs", paths.LogDir)
}

// RenderSchemaWritten confirms the editor schema was (re)generated.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote %s\n  %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(filepath.Base(path)),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
	)
}
