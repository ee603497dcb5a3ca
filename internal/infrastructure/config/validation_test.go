package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"ratio zero", func(c *Config) { c.Layout.DefaultRatio = 0 }, "layout.default_ratio"},
		{"ratio one", func(c *Config) { c.Layout.DefaultRatio = 1 }, "layout.default_ratio"},
		{"negative min extent", func(c *Config) { c.Layout.MinExtent = -1 }, "layout.min_extent"},
		{"inverted clamp", func(c *Config) { c.Layout.MinSplitRatio, c.Layout.MaxSplitRatio = 0.8, 0.2 }, "layout.min_split_ratio"},
		{"no history", func(c *Config) { c.Layout.HistoryLimit = 0 }, "layout.history_limit"},
		{"unknown layout ext", func(c *Config) { c.Layout.File = "/tmp/layout.ini" }, "layout.file"},
		{"negative threshold", func(c *Config) { c.Drag.Threshold = -2 }, "drag.threshold"},
		{"band too wide", func(c *Config) { c.Drag.EdgeBand = 0.6 }, "drag.edge_band"},
		{"negative tolerance", func(c *Config) { c.Drag.DividerTolerance = -1 }, "drag.divider_tolerance"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"tiny log file", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"preview extent", func(c *Config) { c.Preview.MinExtent = 0 }, "preview.min_extent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidateConfig_CollectsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drag.EdgeBand = 1
	cfg.Logging.Level = "nope"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drag.edge_band")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidateConfig_AcceptsLayoutFormats(t *testing.T) {
	for _, file := range []string{"a.toml", "b.YAML", "c.yml", "d.json", "e.jsonc"} {
		cfg := DefaultConfig()
		cfg.Layout.File = file
		assert.NoError(t, validateConfig(cfg), file)
	}
}
