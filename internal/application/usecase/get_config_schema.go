package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// ErrUnknownConfigSection is returned when a section filter matches no key.
var ErrUnknownConfigSection = errors.New("unknown config section")

// GetConfigSchemaUseCase lists the documented configuration keys.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput filters the listing.
type GetConfigSchemaInput struct {
	// Section keeps only the keys of one section, matched case-insensitively.
	Section string
}

// GetConfigSchemaOutput lists keys in provider order.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute returns every key, or the keys of input.Section.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()
	section := strings.TrimSpace(input.Section)
	if section == "" {
		return &GetConfigSchemaOutput{Keys: keys}, nil
	}

	var filtered []entity.ConfigKeyInfo
	for _, k := range keys {
		if strings.EqualFold(k.Section, section) {
			filtered = append(filtered, k)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConfigSection, section)
	}
	return &GetConfigSchemaOutput{Keys: filtered}, nil
}
