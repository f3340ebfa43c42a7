package ddl

import (
	"context"

	gddl "github.com/DataFrosch/scraper-fts/internal/ddl"
	"github.com/DataFrosch/scraper-fts/internal/storage"
)

// EnsureTable creates the target SQL Server table if it does not already
// exist. The generated script is guarded by an IF OBJECT_ID(...) check, so
// the operation is idempotent and safe to call on every run.
func EnsureTable(ctx context.Context, repo storage.Repository, def gddl.TableDef) error {
	sql, err := BuildCreateTableSQL(def)
	if err != nil {
		return err
	}
	return repo.Exec(ctx, sql)
}
