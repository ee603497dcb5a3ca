package config

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerWatch_NotifiesOnEdit(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })
	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()))

	path := mgr.GetConfigFile()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "edge_band = 0.3", "edge_band = 0.2", 1)
	require.NotEqual(t, string(data), edited)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	select {
	case cfg := <-changed:
		assert.InDelta(t, 0.2, cfg.Drag.EdgeBand, 1e-9)
	case <-time.After(5 * time.Second):
		t.Fatal("no config change notification")
	}
	assert.InDelta(t, 0.2, mgr.Get().Drag.EdgeBand, 1e-9)
}

func TestManagerWatch_RequiresFile(t *testing.T) {
	mgr, err := NewManager()
	require.NoError(t, err)

	assert.Error(t, mgr.Watch(context.Background()))
}
