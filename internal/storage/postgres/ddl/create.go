package ddl

import (
	"strings"

	gddl "github.com/DataFrosch/scraper-fts/internal/ddl"
)

// quoteIdent quotes a single identifier segment for Postgres.
func quoteIdent(id string) string { return `"` + strings.ReplaceAll(id, `"`, `""`) + `"` }

// BuildCreateTableSQL returns a Postgres CREATE TABLE IF NOT EXISTS statement
// for the given table definition. It is a thin wrapper over the generic ddl
// renderer with the Postgres type mapping and quoting plugged in.
func BuildCreateTableSQL(def gddl.TableDef) (string, error) {
	return gddl.BuildCreateTableSQL(def, MapType, quoteIdent)
}
