package port

// LayoutSchemaProvider describes the persisted layout format.
type LayoutSchemaProvider interface {
	// LayoutSchema returns the JSON Schema document for entity.PersistedLayout.
	LayoutSchema() ([]byte, error)
}
