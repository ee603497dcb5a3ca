// Package layoutfile stores the working layout as TOML, YAML or JSON.
package layoutfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Format is an on-disk encoding of entity.PersistedLayout.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported layout file extension %q (want .toml, .yaml, .yml, .json or .jsonc)", filepath.Ext(path))
	}
}

// Encode renders layout in format.
func Encode(format Format, layout *entity.PersistedLayout) ([]byte, error) {
	if layout == nil {
		return nil, fmt.Errorf("layout is nil")
	}

	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(layout); err != nil {
			return nil, fmt.Errorf("encode toml layout: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(layout); err != nil {
			return nil, fmt.Errorf("encode yaml layout: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml layout: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(layout); err != nil {
			return nil, fmt.Errorf("encode json layout: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown layout format %q", format)
	}
	return buf.Bytes(), nil
}

// Decode parses data in format. Syntax errors come back as *entity.DecodeError
// so callers can treat them like structural problems.
func Decode(format Format, data []byte) (*entity.PersistedLayout, error) {
	var layout entity.PersistedLayout
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &layout)
	case FormatYAML:
		err = yaml.Unmarshal(data, &layout)
	case FormatJSON:
		err = json.Unmarshal(jsonc.ToJSON(data), &layout)
	default:
		return nil, fmt.Errorf("unknown layout format %q", format)
	}
	if err != nil {
		return nil, &entity.DecodeError{Node: -1, Reason: fmt.Sprintf("parse %s: %v", format, err)}
	}
	return &layout, nil
}
