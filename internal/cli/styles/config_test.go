package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo(styles.ConfigPaths{
		Config: "/tmp/dockyard/config.toml",
		Layout: "/tmp/dockyard/layout.yaml",
	})
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "layout.yaml")
	// unset paths still get a line
	assert.Contains(t, out, "Presets")
	assert.Contains(t, out, "-")
}

func TestConfigRenderer_RenderSchemaWritten(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderSchemaWritten("/tmp/dockyard/config.schema.json")
	assert.Contains(t, out, "Wrote")
	assert.Contains(t, out, "config.schema.json")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("boom"))
	assert.Contains(t, out, "Config error: boom")
}

func TestConfigSchemaRenderer_Render(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	assert.Contains(t, r.Render(nil), "No configuration keys")

	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "drag.threshold", Type: "float64", Default: "5", Range: ">0", Section: "Drag", Description: "Pointer travel before a drag starts"},
		{Key: "logging.level", Type: "string", Default: "info", Values: []string{"debug", "info"}, Section: "Logging"},
	})
	assert.Contains(t, out, "Drag")
	assert.Contains(t, out, "drag.threshold")
	assert.Contains(t, out, "[>0]")
	assert.Contains(t, out, "(debug|info)")
	assert.Contains(t, out, "Pointer travel before a drag starts")
	assert.Less(t, strings.Index(out, "Drag"), strings.Index(out, "Logging"))

	data, err := r.RenderJSON([]entity.ConfigKeyInfo{{Key: "layout.file", Section: "Layout"}})
	require.NoError(t, err)
	assert.Contains(t, data, `"key": "layout.file"`)
}
