// Package all wires all built-in storage backends into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) causes the init functions of each concrete storage backend to run,
// which in turn register their factories and DDL bootstrappers with the
// storage package.
//
// In other words, importing this package makes the following storage kinds
// available at runtime:
//
//   - "postgres" (internal/storage/postgres)
//   - "mssql"    (internal/storage/mssql)
//   - "sqlite"   (internal/storage/sqlite)
//
// Typical usage (in cmd/scraper-fts/main.go or a similar wiring layer):
//
//	import (
//	    _ "github.com/DataFrosch/scraper-fts/internal/storage/all" // enable all built-in backends
//	)
//
//	repo, err := storage.New(ctx, storage.Config{Kind: cfg.DBDriver, DSN: cfg.EffectiveDSN()})
//	if err != nil {
//	    // handle error
//	}
//	defer repo.Close()
//
//	if err := storage.EnsureTable(ctx, cfg.DBDriver, repo, fts.Table()); err != nil {
//	    // handle DDL error
//	}
//
// From this point on, the caller can remain fully backend-agnostic: writes go
// through the storage.Repository interface regardless of whether the
// underlying backend is Postgres, MSSQL, or SQLite.
//
// Note: if you want a binary that supports only a subset of backends, you can
// define an alternative wiring package that imports only the required ones
// instead of this package.
package all

import (
	_ "github.com/DataFrosch/scraper-fts/internal/storage/mssql"
	_ "github.com/DataFrosch/scraper-fts/internal/storage/postgres"
	_ "github.com/DataFrosch/scraper-fts/internal/storage/sqlite"
)
