package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestPresetsCLIRenderer(t *testing.T) {
	r := styles.NewPresetsCLIRenderer(styles.NewTheme())

	out := r.RenderEmptyList()
	require.Contains(t, out, "No saved presets found.")

	tree := entity.DefaultLayoutTree()
	_, err := tree.Undock(entity.PanelInspector, entity.NewRect(10, 10, 200, 100))
	require.NoError(t, err)

	preset := entity.NewLayoutPreset("review", tree)
	preset.UpdatedAt = time.Now().Add(-2 * time.Hour)

	out = r.RenderList([]*entity.LayoutPreset{preset, entity.NewLayoutPreset("solo", entity.NewLayoutTree("Viewport"))})
	require.Contains(t, out, "Presets")
	require.Contains(t, out, "review")
	require.Contains(t, out, "3 panels")
	require.Contains(t, out, "1 window")
	require.Contains(t, out, "1 panel")
	require.Contains(t, out, "2h ago")

	require.Contains(t, r.RenderDeleted("review"), "review")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		at   time.Time
		want string
	}{
		{now, "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-2 * 24 * time.Hour), "2d ago"},
		{now.Add(-14 * 24 * time.Hour), "2w ago"},
		{now.Add(-800 * 24 * time.Hour), "2y ago"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, styles.RelativeTime(tt.at))
	}
}
