package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
)

// GetLayoutSchemaUseCase returns the JSON Schema of the layout file format.
type GetLayoutSchemaUseCase struct {
	provider port.LayoutSchemaProvider
}

// NewGetLayoutSchemaUseCase creates a new GetLayoutSchemaUseCase.
func NewGetLayoutSchemaUseCase(provider port.LayoutSchemaProvider) *GetLayoutSchemaUseCase {
	return &GetLayoutSchemaUseCase{provider: provider}
}

// Execute renders the schema document.
func (uc *GetLayoutSchemaUseCase) Execute(_ context.Context) ([]byte, error) {
	doc, err := uc.provider.LayoutSchema()
	if err != nil {
		return nil, fmt.Errorf("generate layout schema: %w", err)
	}
	return doc, nil
}
