package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
	validLayoutExts = []string{".toml", ".yaml", ".yml", ".json", ".jsonc"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateDrag(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePreview(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	if l.DefaultRatio <= 0 || l.DefaultRatio >= 1 {
		validationErrors = append(validationErrors, "layout.default_ratio must be between 0 and 1 (exclusive)")
	}
	if l.MinExtent < 0 {
		validationErrors = append(validationErrors, "layout.min_extent must be non-negative")
	}
	if l.MinSplitRatio <= 0 || l.MaxSplitRatio >= 1 || l.MinSplitRatio >= l.MaxSplitRatio {
		validationErrors = append(validationErrors, "layout.min_split_ratio and layout.max_split_ratio must satisfy 0 < min < max < 1")
	}
	if l.HistoryLimit < 1 {
		validationErrors = append(validationErrors, "layout.history_limit must be at least 1")
	}
	if l.File != "" && !slices.Contains(validLayoutExts, layoutExt(l.File)) {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.file must end with one of %s", strings.Join(validLayoutExts, ", ")))
	}
	return validationErrors
}

func validateDrag(config *Config) []string {
	var validationErrors []string
	if config.Drag.Threshold < 0 {
		validationErrors = append(validationErrors, "drag.threshold must be non-negative")
	}
	if config.Drag.EdgeBand < 0 || config.Drag.EdgeBand > 0.5 {
		validationErrors = append(validationErrors, "drag.edge_band must be between 0 and 0.5")
	}
	if config.Drag.DividerTolerance < 0 {
		validationErrors = append(validationErrors, "drag.divider_tolerance must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, strings.ToLower(config.Logging.Level)) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(config.Logging.Format)) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: %s", strings.Join(validLogFormats, ", ")))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validatePreview(config *Config) []string {
	var validationErrors []string
	if config.Preview.MinExtent < 1 {
		validationErrors = append(validationErrors, "preview.min_extent must be at least 1")
	}
	if config.Preview.DragThreshold < 0 {
		validationErrors = append(validationErrors, "preview.drag_threshold must be non-negative")
	}
	return validationErrors
}
