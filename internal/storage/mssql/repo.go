// Package mssql implements a Microsoft SQL Server repository using
// go-mssqldb. Batches are written with paged multi-row INSERT statements
// inside one transaction per batch; the page size respects the server's
// 2100-parameter limit per statement.
package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/microsoft/go-mssqldb/msdsn"

	_ "github.com/microsoft/go-mssqldb"
)

// maxParams is the SQL Server limit on parameters per statement.
const maxParams = 2100

// insertPageRows caps the rows packed into a single INSERT statement.
const insertPageRows = 1000

// Config holds MSSQL repository configuration.
type Config struct {
	DSN string
}

// Repository is an MSSQL-backed implementation of storage.Repository.
type Repository struct {
	db *sql.DB
}

// NewRepository constructs a Repository and returns a Close function for
// cleanup.
func NewRepository(ctx context.Context, cfg Config) (*Repository, func(), error) {
	// Validate DSN early to fail fast on obvious mistakes.
	if _, err := msdsn.Parse(cfg.DSN); err != nil {
		return nil, nil, fmt.Errorf("mssql dsn: %w", err)
	}
	db, err := sql.Open("sqlserver", cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}
	closeFn := func() { _ = db.Close() }
	return &Repository{db: db}, closeFn, nil
}

// InsertRows appends rows to table inside a single transaction. On any error
// the transaction is rolled back and zero is returned.
func (r *Repository) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("no columns configured")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	page := pageSize(len(columns))
	var inserted int64
	for start := 0; start < len(rows); start += page {
		end := start + page
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		args := make([]any, 0, len(chunk)*len(columns))
		for i, row := range chunk {
			if len(row) != len(columns) {
				return 0, fmt.Errorf("row %d has %d values, want %d", start+i, len(row), len(columns))
			}
			args = append(args, row...)
		}

		res, err := tx.ExecContext(ctx, insertSQL(table, columns, len(chunk)), args...)
		if err != nil {
			return 0, fmt.Errorf("insert into %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// Exec executes a SQL statement against the pool.
func (r *Repository) Exec(ctx context.Context, sqlText string) error {
	_, err := r.db.ExecContext(ctx, sqlText)
	return err
}

// pageSize returns how many rows fit into one INSERT for the given column
// count without blowing the parameter limit.
func pageSize(ncols int) int {
	if ncols <= 0 {
		return insertPageRows
	}
	n := maxParams / ncols
	if n < 1 {
		n = 1
	}
	if n > insertPageRows {
		n = insertPageRows
	}
	return n
}

// insertSQL renders a multi-row INSERT with @pN placeholders for nRows rows.
func insertSQL(table string, columns []string, nRows int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(msFQN(table))
	b.WriteString(" (")
	b.WriteString(strings.Join(mapIdent(columns), ", "))
	b.WriteString(") VALUES ")

	p := 1
	for r := 0; r < nRows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := range columns {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString("@p")
			b.WriteString(strconv.Itoa(p))
			p++
		}
		b.WriteByte(')')
	}
	return b.String()
}

// msIdent safely quotes a SQL Server identifier using [brackets], escaping ].
func msIdent(id string) string { return `[` + strings.ReplaceAll(id, `]`, `]]`) + `]` }

// msFQN quotes a possibly schema-qualified name like "dbo.fts_data" to
// "[dbo].[fts_data]". If no dot is present, returns a single quoted ident.
func msFQN(name string) string {
	parts := strings.Split(name, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, msIdent(p))
		}
	}
	return strings.Join(out, ".")
}

// mapIdent maps a list of column names to their quoted forms.
func mapIdent(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = msIdent(c)
	}
	return out
}
