package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Repository is the destination-side contract every storage backend
// implements. InsertRows appends one batch aligned to the columns order; it
// either inserts every row and returns the count, or inserts none and
// returns the error.
type Repository interface {
	InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
	Exec(ctx context.Context, sql string) error
	Close()
}

// Config selects and parameterises a backend.
type Config struct {
	// Kind names a registered backend, e.g. "postgres", "sqlite", "mssql".
	Kind string
	// DSN is the backend-specific connection string.
	DSN string
}

// Factory opens a Repository for a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	regMu     sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) the factory for a storage kind. Backend
// packages call it from init(), so importing a backend for side effects is
// enough to make its kind available.
func Register(kind string, fn Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	factories[kind] = fn
}

// New opens the Repository selected by cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	regMu.RLock()
	fn, ok := factories[cfg.Kind]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported storage.kind=%s", cfg.Kind)
	}
	return fn(ctx, cfg)
}

// ListKinds returns the registered kinds, sorted, as a snapshot copy.
func ListKinds() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
