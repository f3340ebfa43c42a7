// Package postgres provides a Postgres-backed storage.Repository
// implementation. This adapter wires the backend into the storage-agnostic
// factory by registering a constructor at init time, so callers obtain a
// Repository via storage.New(...) without importing this package directly.
//
// The adapter also registers a DDL bootstrapper so callers can apply
// backend-specific DDL based only on the storage kind, without branching on
// the backend themselves.
package postgres

import (
	"context"
	"fmt"

	"github.com/DataFrosch/scraper-fts/internal/ddl"
	"github.com/DataFrosch/scraper-fts/internal/storage"
	pgddl "github.com/DataFrosch/scraper-fts/internal/storage/postgres/ddl"
)

// newRepository is a test hook that points to NewRepository by default.
// Tests may replace this variable to avoid real DB connections.
var newRepository = NewRepository

// wrappedRepo implements storage.Repository by delegating to the concrete
// *postgres.Repository while providing a Close method that calls the close
// function returned by NewRepository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

// Ensure wrappedRepo satisfies storage.Repository at compile time.
var _ storage.Repository = (*wrappedRepo)(nil)

// Close implements storage.Repository.Close.
func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

// init registers the "postgres" backend with the storage factory and a DDL
// bootstrapper for the same kind. This keeps the wiring in one place and
// allows callers to remain backend-agnostic.
func init() {
	storage.Register("postgres", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{DSN: cfg.DSN})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("postgres",
		func(ctx context.Context, repo storage.Repository, def ddl.TableDef) error {
			if err := pgddl.EnsureTable(ctx, repo, def); err != nil {
				return fmt.Errorf("apply DDL: %w", err)
			}
			return nil
		})
}
