package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/logging"
)

// LazyDB implements port.DatabaseProvider. Layout commands never touch the
// preset store, so the connection (and the WASM compilation behind it) waits
// for the first preset command.
type LazyDB struct {
	path string

	once sync.Once
	db   *sql.DB
	err  error

	open atomic.Bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for path. Nothing is opened yet.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens the database on first use; later calls share the handle or the
// first error.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() { l.connect(ctx) })
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

func (l *LazyDB) connect(ctx context.Context) {
	log := logging.FromContext(ctx).With().Str("db", l.path).Logger()
	log.Debug().Msg("opening preset database")

	l.db, l.err = NewConnection(ctx, l.path)
	if l.err != nil {
		log.Error().Err(l.err).Msg("preset database unavailable")
		return
	}
	l.open.Store(true)
}

// Close releases the connection. It is a no-op when DB was never called.
func (l *LazyDB) Close() error {
	if !l.open.Swap(false) {
		return nil
	}
	return l.db.Close()
}

// IsInitialized reports whether a connection is currently open.
func (l *LazyDB) IsInitialized() bool {
	return l.open.Load()
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}
