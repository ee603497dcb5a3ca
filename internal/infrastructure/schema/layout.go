// Package schema publishes JSON schemas for the on-disk formats.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

const layoutSchemaID = "https://github.com/bnema/dockyard/layout.schema.json"

// LayoutProvider implements port.LayoutSchemaProvider.
type LayoutProvider struct{}

var _ port.LayoutSchemaProvider = (*LayoutProvider)(nil)

// NewLayoutProvider creates a new LayoutProvider.
func NewLayoutProvider() *LayoutProvider {
	return &LayoutProvider{}
}

// LayoutSchema returns the indented JSON schema of entity.PersistedLayout.
func (*LayoutProvider) LayoutSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	s := r.Reflect(&entity.PersistedLayout{})
	s.ID = layoutSchemaID
	s.Title = "Dockyard Layout"
	s.Description = "Flat, index-addressed docking layout. Nodes are listed in pre-order from root; floating windows point at their subtree root."

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout schema: %w", err)
	}
	return data, nil
}
