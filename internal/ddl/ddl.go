// Package ddl defines a small dialect-neutral model for table definitions and
// a renderer for CREATE TABLE IF NOT EXISTS statements.
//
// Columns carry logical kinds ("id", "int", "bool", "date", "numeric",
// "text") rather than SQL types; each backend supplies its own kind→type
// mapping and identifier quoting at render time. Rendering is deterministic:
// the same definition always produces the same statement, which keeps the
// bootstrap idempotent together with the IF NOT EXISTS clause.
package ddl

import (
	"fmt"
	"strings"
)

// ColumnDef describes a single column by logical kind. The kind is resolved
// into a dialect column type (possibly a full clause, e.g. "SERIAL PRIMARY
// KEY" for surrogate keys) by the backend's MapType function.
type ColumnDef struct {
	Name string
	Kind string
}

// TableDef holds the table name and an ordered list of columns. Name may be
// schema-qualified in dotted form (e.g. "public.fts_data"); renderers quote
// each segment individually.
type TableDef struct {
	Name    string
	Columns []ColumnDef
}

// BuildCreateTableSQL renders a CREATE TABLE IF NOT EXISTS statement for the
// definition. mapType resolves logical kinds into dialect types and
// quoteIdent quotes a single identifier segment; both must be non-nil.
func BuildCreateTableSQL(t TableDef, mapType func(string) string, quoteIdent func(string) string) (string, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return "", fmt.Errorf("ddl: table name must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("ddl: at least one column is required")
	}
	if mapType == nil || quoteIdent == nil {
		return "", fmt.Errorf("ddl: mapType and quoteIdent must not be nil")
	}

	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		cn := strings.TrimSpace(c.Name)
		if cn == "" {
			return "", fmt.Errorf("ddl: column with empty name in table %s", name)
		}
		typ := strings.TrimSpace(mapType(c.Kind))
		if typ == "" {
			return "", fmt.Errorf("ddl: column %s: no type mapping for kind %q", cn, c.Kind)
		}
		cols = append(cols, quoteIdent(cn)+" "+typ)
	}

	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
		QuoteFQN(name, quoteIdent),
		strings.Join(cols, ",\n  "),
	)
	return stmt, nil
}

// QuoteFQN quotes a possibly schema-qualified name segment by segment using
// quoteIdent. Empty segments (doubled or trailing dots) are skipped.
func QuoteFQN(fqn string, quoteIdent func(string) string) string {
	parts := strings.Split(fqn, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, quoteIdent(p))
	}
	return strings.Join(out, ".")
}
