// Package ddl contains MSSQL-specific helpers for generating DDL.
//
// It maps logical column kinds into SQL Server types. The mapping is
// intentionally conservative and biased toward safe, widely-supported
// choices.
package ddl

import "strings"

// MapType resolves a logical column kind into a SQL Server column type.
//
// Unknown or empty kinds fall back to NVARCHAR(MAX).
func MapType(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "id":
		return "INT IDENTITY(1,1) PRIMARY KEY"
	case "int", "integer", "bigint":
		return "BIGINT"
	case "bool", "boolean":
		return "BIT"
	case "date":
		return "DATE"
	case "timestamp", "datetime", "timestamptz":
		return "DATETIME2"
	case "float", "double", "numeric", "decimal":
		return "DECIMAL(38, 10)"
	case "uuid":
		return "UNIQUEIDENTIFIER"
	default:
		// Default to a flexible Unicode string type.
		return "NVARCHAR(MAX)"
	}
}
