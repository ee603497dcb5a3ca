package config

import "path/filepath"

// Default configuration constants
const (
	// Layout defaults
	defaultSplitRatio    = 0.5
	defaultMinExtent     = 50.0 // pixels
	defaultMinSplitRatio = 0.1
	defaultMaxSplitRatio = 0.9
	defaultHistoryLimit  = 100 // entries

	// Drag defaults
	defaultDragThreshold    = 5.0 // pixels
	defaultEdgeBand         = 0.3
	defaultDividerTolerance = 4.0 // pixels

	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3

	// Preview defaults, in terminal cells
	defaultPreviewMinExtent     = 4.0
	defaultPreviewDragThreshold = 1.0
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return filepath.Join(".", "logs")
	}
	return logDir
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			DefaultRatio:  defaultSplitRatio,
			MinExtent:     defaultMinExtent,
			MinSplitRatio: defaultMinSplitRatio,
			MaxSplitRatio: defaultMaxSplitRatio,
			HistoryLimit:  defaultHistoryLimit,
		},
		Drag: DragConfig{
			Threshold:        defaultDragThreshold,
			EdgeBand:         defaultEdgeBand,
			DividerTolerance: defaultDividerTolerance,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
		},
		Preview: PreviewConfig{
			MinExtent:     defaultPreviewMinExtent,
			DragThreshold: defaultPreviewDragThreshold,
		},
	}
}
