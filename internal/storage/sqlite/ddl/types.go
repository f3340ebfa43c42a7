// Package ddl contains SQLite-specific helpers for generating DDL.
//
// SQLite supports dynamic typing, so the mapping prefers canonical
// affinities: boolean lands on INTEGER (0/1) and dates are stored as
// ISO-8601 TEXT.
package ddl

import "strings"

// MapType resolves a logical column kind into a SQLite column type.
func MapType(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "id":
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	case "int", "integer", "bigint":
		return "INTEGER"
	case "bool", "boolean":
		return "INTEGER" // 0/1
	case "float", "double", "real":
		return "REAL"
	case "numeric", "decimal":
		return "NUMERIC"
	case "date", "timestamp", "datetime":
		return "TEXT" // store ISO-8601 strings
	case "blob", "bytes":
		return "BLOB"
	default:
		return "TEXT"
	}
}
