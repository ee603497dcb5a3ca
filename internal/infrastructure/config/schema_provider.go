package config

import (
	"fmt"
	"strconv"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout   = "Layout"
	SectionDrag     = "Drag"
	SectionLogging  = "Logging"
	SectionDatabase = "Database"
	SectionPreview  = "Preview"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 20)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getDragKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getPreviewKeys(defaults)...)
	return keys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.file",
			Type:        "string",
			Default:     "",
			Description: "Working layout file; the extension selects TOML, YAML or JSON (empty = XDG data dir)",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.default_ratio",
			Type:        "float64",
			Default:     formatFloat(defaults.Layout.DefaultRatio),
			Description: "Split ratio used when a split does not ask for one",
			Range:       "0-1 (exclusive)",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.min_extent",
			Type:        "float64",
			Default:     formatFloat(defaults.Layout.MinExtent),
			Description: "Smallest width or height of a split child in pixels",
			Range:       ">=0",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.min_split_ratio",
			Type:        "float64",
			Default:     formatFloat(defaults.Layout.MinSplitRatio),
			Description: "Lower bound for divider drags",
			Range:       "0-1 (exclusive)",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.max_split_ratio",
			Type:        "float64",
			Default:     formatFloat(defaults.Layout.MaxSplitRatio),
			Description: "Upper bound for divider drags",
			Range:       "0-1 (exclusive)",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.history_limit",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Layout.HistoryLimit),
			Description: "Maximum number of undo steps kept",
			Range:       ">=1",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getDragKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "drag.threshold",
			Type:        "float64",
			Default:     formatFloat(defaults.Drag.Threshold),
			Description: "Pointer travel in pixels before a tab press becomes a drag",
			Range:       ">=0",
			Section:     SectionDrag,
		},
		{
			Key:         "drag.edge_band",
			Type:        "float64",
			Default:     formatFloat(defaults.Drag.EdgeBand),
			Description: "Share of a leaf's width/height that docks to an edge",
			Range:       "0-0.5",
			Section:     SectionDrag,
		},
		{
			Key:         "drag.divider_tolerance",
			Type:        "float64",
			Default:     formatFloat(defaults.Drag.DividerTolerance),
			Description: "Distance in pixels from a divider that still grabs it",
			Range:       ">=0",
			Section:     SectionDrag,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      validLogLevels,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      validLogFormats,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     defaults.Logging.LogDir,
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.EnableFileLog),
			Description: "Also write logs to a rotated file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file past this size",
			Range:       ">=1",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       ">=0",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "",
			Description: "Preset database path (empty = XDG data dir)",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getPreviewKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "preview.min_extent",
			Type:        "float64",
			Default:     formatFloat(defaults.Preview.MinExtent),
			Description: "Smallest split child in the terminal preview, in cells",
			Range:       ">=1",
			Section:     SectionPreview,
		},
		{
			Key:         "preview.drag_threshold",
			Type:        "float64",
			Default:     formatFloat(defaults.Preview.DragThreshold),
			Description: "Drag threshold in the terminal preview, in cells",
			Range:       ">=0",
			Section:     SectionPreview,
		},
	}
}
