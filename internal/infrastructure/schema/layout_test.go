package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/infrastructure/schema"
)

func TestLayoutProvider_LayoutSchema(t *testing.T) {
	data, err := schema.NewLayoutProvider().LayoutSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "https://github.com/bnema/dockyard/layout.schema.json", doc["$id"])
	assert.Equal(t, "Dockyard Layout", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"version", "root", "nodes", "floating"} {
		assert.Contains(t, props, key)
	}

	required, ok := doc["required"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"version", "root", "nodes"}, required)
}

func TestLayoutProvider_NodeKindEnum(t *testing.T) {
	data, err := schema.NewLayoutProvider().LayoutSchema()
	require.NoError(t, err)

	var doc struct {
		Properties struct {
			Nodes struct {
				Items struct {
					Properties map[string]struct {
						Enum []string `json:"enum"`
					} `json:"properties"`
				} `json:"items"`
			} `json:"nodes"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	node := doc.Properties.Nodes.Items.Properties
	assert.Equal(t, []string{"split", "leaf"}, node["kind"].Enum)
	assert.Equal(t, []string{"vertical", "horizontal"}, node["orientation"].Enum)
}
