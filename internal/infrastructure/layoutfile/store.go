package layoutfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store implements port.LayoutFileStore on an afero filesystem.
type Store struct {
	fs     afero.Fs
	path   string
	format Format
}

var _ port.LayoutFileStore = (*Store)(nil)

// NewStore creates a store for path. The extension selects the format.
func NewStore(fsys afero.Fs, path string) (*Store, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	return &Store{fs: fsys, path: path, format: format}, nil
}

// NewOSStore creates a store on the real filesystem.
func NewOSStore(path string) (*Store, error) {
	return NewStore(afero.NewOsFs(), path)
}

// Path returns the layout file location.
func (s *Store) Path() string {
	return s.path
}

// Format returns the encoding used by the store.
func (s *Store) Format() Format {
	return s.format
}

// Load reads and parses the layout file.
func (s *Store) Load(ctx context.Context) (*entity.PersistedLayout, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, port.ErrLayoutNotFound
		}
		return nil, fmt.Errorf("read layout file %s: %w", s.path, err)
	}

	layout, err := Decode(s.format, data)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("path", s.path).
		Str("format", string(s.format)).
		Int("bytes", len(data)).
		Msg("layout file loaded")
	return layout, nil
}

// Save writes layout to a sibling temporary file and renames it into place.
func (s *Store) Save(ctx context.Context, layout *entity.PersistedLayout) error {
	data, err := Encode(s.format, layout)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create layout directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, filePerm); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace layout file: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", s.path).
		Str("format", string(s.format)).
		Int("bytes", len(data)).
		Msg("layout file saved")
	return nil
}

// ReadRaw returns the file contents without parsing them.
func (s *Store) ReadRaw() ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, port.ErrLayoutNotFound
	}
	return data, err
}

// Remove deletes the layout file. A missing file is not an error.
func (s *Store) Remove() error {
	err := s.fs.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove layout file: %w", err)
	}
	return nil
}
