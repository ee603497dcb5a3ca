package port

import (
	"context"
	"errors"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ErrLayoutNotFound is returned by LayoutFileStore.Load when no layout has been saved yet.
var ErrLayoutNotFound = errors.New("layout file not found")

// LayoutFileStore reads and writes the working layout file.
type LayoutFileStore interface {
	// Load returns the stored layout, or ErrLayoutNotFound.
	// A file that exists but cannot be parsed yields an error wrapping entity.ErrDecode.
	Load(ctx context.Context) (*entity.PersistedLayout, error)
	// Save replaces the stored layout.
	Save(ctx context.Context, layout *entity.PersistedLayout) error
	// Path returns the file location, for messages.
	Path() string
}
