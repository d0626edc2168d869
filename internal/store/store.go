package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/inovacc/ghexplorer/internal/store/sqlite"
)

// Backend names accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a durable key/value slot store. Each Put replaces the whole value
// of a key atomically.
type Store interface {
	Ping() error
	// Get returns the stored value, or nil with no error when the key is absent.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// Open opens the named backend inside dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendBolt, "":
		return NewBolt(filepath.Join(dir, "ghexplorer.bolt"))
	case BackendSQLite:
		return sqlite.New(filepath.Join(dir, "ghexplorer.db"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
