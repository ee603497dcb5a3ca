package config

// Config represents the complete configuration for dockyard.
type Config struct {
	// Layout controls the working layout file and split behavior.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Drag tunes the drag-and-drop controller.
	Drag     DragConfig     `mapstructure:"drag" yaml:"drag" toml:"drag" json:"drag"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	// Preview configures the terminal preview host, measured in cells.
	Preview PreviewConfig `mapstructure:"preview" yaml:"preview" toml:"preview" json:"preview"`
}

// LayoutConfig holds layout tree and solver settings.
type LayoutConfig struct {
	// File is the working layout file. The extension picks the format
	// (.toml, .yaml/.yml, .json/.jsonc). Empty means $XDG_DATA_HOME/dockyard/layout.toml.
	File string `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
	// DefaultRatio is used for new splits that do not ask for one.
	DefaultRatio float64 `mapstructure:"default_ratio" yaml:"default_ratio" toml:"default_ratio" json:"default_ratio" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
	// MinExtent is the smallest child width/height in pixels.
	MinExtent float64 `mapstructure:"min_extent" yaml:"min_extent" toml:"min_extent" json:"min_extent" jsonschema:"minimum=0"`
	// MinSplitRatio and MaxSplitRatio bound divider drags.
	MinSplitRatio float64 `mapstructure:"min_split_ratio" yaml:"min_split_ratio" toml:"min_split_ratio" json:"min_split_ratio"`
	MaxSplitRatio float64 `mapstructure:"max_split_ratio" yaml:"max_split_ratio" toml:"max_split_ratio" json:"max_split_ratio"`
	// HistoryLimit caps the undo stack.
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit" toml:"history_limit" json:"history_limit" jsonschema:"minimum=1"`
}

// DragConfig holds drag controller settings.
type DragConfig struct {
	// Threshold is the pointer travel in pixels before a press becomes a drag.
	Threshold float64 `mapstructure:"threshold" yaml:"threshold" toml:"threshold" json:"threshold" jsonschema:"minimum=0"`
	// EdgeBand is the share of each axis that docks to an edge instead of the center.
	EdgeBand float64 `mapstructure:"edge_band" yaml:"edge_band" toml:"edge_band" json:"edge_band" jsonschema:"minimum=0,maximum=0.5"`
	// DividerTolerance is how many pixels from a divider still grab it.
	DividerTolerance float64 `mapstructure:"divider_tolerance" yaml:"divider_tolerance" toml:"divider_tolerance" json:"divider_tolerance" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// DatabaseConfig holds the preset database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// PreviewConfig holds terminal preview settings in character cells.
type PreviewConfig struct {
	MinExtent     float64 `mapstructure:"min_extent" yaml:"min_extent" toml:"min_extent" json:"min_extent" jsonschema:"minimum=1"`
	DragThreshold float64 `mapstructure:"drag_threshold" yaml:"drag_threshold" toml:"drag_threshold" json:"drag_threshold" jsonschema:"minimum=0"`
}
