// Package postgres implements a Postgres repository using pgx v5. Batches
// are written with paged multi-row INSERT statements inside one transaction
// per batch, so a batch either lands whole or not at all.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// maxParams is the extended-protocol limit on bind parameters per statement
// (the wire format counts them in a uint16).
const maxParams = 65535

// insertPageRows caps the rows packed into a single INSERT statement.
const insertPageRows = 1000

// Config holds Postgres repository configuration.
type Config struct {
	DSN string // connection string for pgx.Connect
}

// Repository is a Postgres-backed implementation of storage.Repository. It
// holds one connection that is reused serially for the whole run.
type Repository struct {
	conn *pgx.Conn
}

// NewRepository connects and returns a Repository and a close function for
// cleanup.
func NewRepository(ctx context.Context, cfg Config) (*Repository, func(), error) {
	conn, err := pgx.Connect(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("pgx connect: %w", err)
	}
	closeFn := func() { _ = conn.Close(context.Background()) }
	return &Repository{conn: conn}, closeFn, nil
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

	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

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

		tag, err := tx.Exec(ctx, insertSQL(table, columns, len(chunk)), args...)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Detail != "" {
				return 0, fmt.Errorf("insert into %s: %s (%s)", table, pgErr.Detail, pgErr.SQLState())
			}
			return 0, fmt.Errorf("insert into %s: %w", table, err)
		}
		inserted += tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// Exec implements storage.Repository.Exec for Postgres.
func (r *Repository) Exec(ctx context.Context, sql string) error {
	_, err := r.conn.Exec(ctx, sql)
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

// insertSQL renders a multi-row INSERT with $n placeholders for nRows rows.
func insertSQL(table string, columns []string, nRows int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(pgFQN(table))
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
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(p))
			p++
		}
		b.WriteByte(')')
	}
	return b.String()
}

// pgIdent safely quotes a single identifier segment for Postgres.
func pgIdent(id string) string { return `"` + strings.ReplaceAll(id, `"`, `""`) + `"` }

// pgFQN quotes a possibly schema-qualified name like "public.fts_data" to
// "public"."fts_data". If no dot is present, returns a single quoted ident.
func pgFQN(name string) string {
	parts := strings.Split(name, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, pgIdent(p))
		}
	}
	return strings.Join(out, ".")
}

// mapIdent maps a list of column names to their quoted forms.
func mapIdent(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = pgIdent(c)
	}
	return out
}
