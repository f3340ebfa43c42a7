package ddl

import (
	"strings"

	gddl "github.com/DataFrosch/scraper-fts/internal/ddl"
)

// quoteIdent quotes a single identifier segment for SQLite.
func quoteIdent(id string) string { return `"` + strings.ReplaceAll(id, `"`, `""`) + `"` }

// BuildCreateTableSQL returns a SQLite CREATE TABLE IF NOT EXISTS statement
// for the given table definition, using the SQLite affinity mapping.
func BuildCreateTableSQL(def gddl.TableDef) (string, error) {
	return gddl.BuildCreateTableSQL(def, MapType, quoteIdent)
}
