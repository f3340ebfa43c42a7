// Package mssql wires the SQL Server backend into the storage factory. It
// registers a constructor and a DDL bootstrapper at init time; importing the
// package for side effects is enough to make the "mssql" kind available
// through storage.New.
package mssql

import (
	"context"
	"fmt"

	"github.com/DataFrosch/scraper-fts/internal/ddl"
	"github.com/DataFrosch/scraper-fts/internal/storage"
	msddl "github.com/DataFrosch/scraper-fts/internal/storage/mssql/ddl"
)

// newRepository is a test hook that points to NewRepository by default.
var newRepository = NewRepository

// wrappedRepo implements storage.Repository by delegating to the concrete
// *mssql.Repository while providing a Close method that calls the close
// function returned by NewRepository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

var _ storage.Repository = (*wrappedRepo)(nil)

// Close implements storage.Repository.Close.
func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

func init() {
	storage.Register("mssql", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{DSN: cfg.DSN})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("mssql",
		func(ctx context.Context, repo storage.Repository, def ddl.TableDef) error {
			if err := msddl.EnsureTable(ctx, repo, def); err != nil {
				return fmt.Errorf("apply DDL: %w", err)
			}
			return nil
		})
}
