package ddl

import (
	"context"

	gddl "github.com/DataFrosch/scraper-fts/internal/ddl"
	"github.com/DataFrosch/scraper-fts/internal/storage"
)

// EnsureTable creates the target SQLite table if it does not exist. It is
// idempotent and simply issues the CREATE TABLE IF NOT EXISTS via the
// repository's Exec method.
func EnsureTable(ctx context.Context, repo storage.Repository, def gddl.TableDef) error {
	sql, err := BuildCreateTableSQL(def)
	if err != nil {
		return err
	}
	return repo.Exec(ctx, sql)
}
