// Package storage contains storage-agnostic contracts and utilities: the
// backend registry, the DDL bootstrap hooks, and a generic batched loader
// that pulls rows from a source and hands fixed-size batches to a Repository.
//
// Logging: on every successful flush, a concise progress line is emitted with
// running totals and instantaneous rows/sec since the previous flush.
package storage

import (
	"context"
	"fmt"
	"log"
	"time"
)

// RowSource is a pull iterator over destination rows. Next advances and
// reports whether a row is available; Err reports the first read error after
// Next has returned false. Sources are single-pass, and the slice returned by
// Row is handed off to the caller, never reused by the source.
type RowSource interface {
	Next() bool
	Row() []any
	Err() error
}

// LoadBatches pulls rows from src, groups them into batches of batchSize, and
// inserts each non-empty batch into table through repo. Batches are inserted
// strictly in arrival order. It returns the inserted row and batch totals and
// the first error encountered; batches committed before the error stay
// committed.
//
// Cancellation: returns (totals, ctx.Err()) when ctx is done. Progress is
// logged on each successful flush.
func LoadBatches(
	ctx context.Context,
	repo Repository,
	table string,
	columns []string,
	src RowSource,
	batchSize int,
) (int64, int64, error) {
	if batchSize <= 0 {
		return 0, 0, fmt.Errorf("batchSize must be > 0")
	}
	if repo == nil {
		return 0, 0, fmt.Errorf("repo must not be nil")
	}
	if src == nil {
		return 0, 0, fmt.Errorf("src must not be nil")
	}

	var (
		total       int64
		batches     int64
		batch       = make([][]any, 0, batchSize)
		start       = time.Now()
		lastFlushTS = start
		lastTotal   int64
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := repo.InsertRows(ctx, table, columns, batch)
		total += n

		// Reuse allocated slice; keep capacity to avoid churn.
		batch = batch[:0]

		if err != nil {
			log.Printf("loader: insert failed batch=%d total=%d err=%v", batches+1, total, err)

			return err
		}

		// Progress log per successful batch.
		batches++
		now := time.Now()
		sinceLast := now.Sub(lastFlushTS)
		insertedSinceLast := total - lastTotal
		rps := float64(0)
		if sinceLast > 0 {
			rps = float64(insertedSinceLast) / sinceLast.Seconds()
		}
		log.Printf(
			"batch #%d: rps=%.0f inserted=%d total_inserted=%d elapsed=%s since_last=%s",
			batches,
			rps,
			n,
			total,
			now.Sub(start).Truncate(time.Millisecond),
			sinceLast.Truncate(time.Millisecond),
		)
		lastFlushTS = now
		lastTotal = total

		return nil
	}

	for src.Next() {
		if err := ctx.Err(); err != nil {
			return total, batches, err
		}
		batch = append(batch, src.Row())
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return total, batches, err
			}
		}
	}
	if err := src.Err(); err != nil {
		// Rows buffered after the last flush are dropped on purpose: the
		// source is broken and the caller treats the whole pass as failed.
		return total, batches, fmt.Errorf("reading rows: %w", err)
	}
	if err := flush(); err != nil {
		return total, batches, err
	}

	log.Printf("loader: source drained total_inserted=%d batches=%d", total, batches)

	return total, batches, nil
}
