// Package ddl contains Postgres-specific helpers for generating DDL.
package ddl

import "strings"

// MapType resolves a logical column kind into a Postgres SQL type.
//
//	"id"                 -> SERIAL PRIMARY KEY
//	"int"/"integer"      -> INTEGER
//	"bool"/"boolean"     -> BOOLEAN
//	"date"               -> DATE
//	"numeric"/"decimal"  -> NUMERIC
//	everything else      -> TEXT
func MapType(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "id":
		return "SERIAL PRIMARY KEY"
	case "int", "integer":
		return "INTEGER"
	case "bool", "boolean":
		return "BOOLEAN"
	case "date":
		return "DATE"
	case "numeric", "decimal":
		return "NUMERIC"
	default:
		return "TEXT"
	}
}
