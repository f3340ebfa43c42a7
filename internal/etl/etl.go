// Package etl drives the yearly download, normalize, and load loop.
//
// Each dataset year is fetched, parsed, and inserted independently: a broken
// or missing year never stops the years after it. Batches committed before a
// mid-year failure stay committed, so a rerun converges rather than starting
// over.
package etl

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/DataFrosch/scraper-fts/internal/config"
	"github.com/DataFrosch/scraper-fts/internal/fetcher"
	"github.com/DataFrosch/scraper-fts/internal/fts"
	"github.com/DataFrosch/scraper-fts/internal/metrics"
	"github.com/DataFrosch/scraper-fts/internal/parser/xlsx"
	"github.com/DataFrosch/scraper-fts/internal/storage"
	"github.com/DataFrosch/scraper-fts/internal/transformer"
)

// Fetcher abstracts the dataset downloader so tests can run against local
// HTTP fixtures.
type Fetcher interface {
	FetchYear(ctx context.Context, year int, dir string) (string, error)
}

// Stats summarizes one pipeline run.
type Stats struct {
	Years   int   // years attempted
	Loaded  int   // years fully loaded
	Skipped int   // years the server does not publish (yet)
	Failed  int   // years aborted by an error
	Rows    int64 // rows inserted across all years
	Batches int64 // batches committed across all years
}

// Run executes the pipeline over the configured year range, in ascending
// order, loading every year into the fts_data table through repo.
//
// The destination table is created up front; a DDL failure aborts the run.
// After that, errors are contained per year: an unpublished year counts as
// skipped, anything else as failed, and the loop moves on. Run only returns
// an error for the up-front steps or a cancelled context.
func Run(ctx context.Context, cfg *config.Config, repo storage.Repository, f Fetcher) (Stats, error) {
	var stats Stats

	if err := storage.EnsureTable(ctx, cfg.DBDriver, repo, fts.Table()); err != nil {
		return stats, fmt.Errorf("ensure table: %w", err)
	}

	dir, err := os.MkdirTemp("", "fts-datasets-*")
	if err != nil {
		return stats, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	from, to := cfg.Years(time.Now())
	log.Printf("run: years=%d..%d batch=%d table=%s", from, to, cfg.BatchSize, fts.TableName)

	for year := from; year <= to; year++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Years++

		start := time.Now()
		rows, batches, err := loadYear(ctx, cfg, repo, f, dir, year)
		elapsed := time.Since(start)

		stats.Rows += rows
		stats.Batches += batches
		metrics.RecordRows(rows)
		metrics.RecordBatches(batches)

		switch {
		case errors.Is(err, fetcher.ErrNotAvailable):
			stats.Skipped++
			metrics.RecordYear(metrics.YearSkipped, elapsed)
			log.Printf("year %d: %v", year, err)
		case err != nil:
			stats.Failed++
			metrics.RecordYear(metrics.YearFailed, elapsed)
			log.Printf("year %d: failed after %s: %v", year, elapsed.Truncate(time.Millisecond), err)
		default:
			stats.Loaded++
			metrics.RecordYear(metrics.YearProcessed, elapsed)
			log.Printf("year %d: loaded rows=%d batches=%d in %s", year, rows, batches, elapsed.Truncate(time.Millisecond))
		}
	}

	log.Printf("run complete: years=%d loaded=%d skipped=%d failed=%d rows=%d batches=%d",
		stats.Years, stats.Loaded, stats.Skipped, stats.Failed, stats.Rows, stats.Batches)
	return stats, nil
}

// loadYear downloads one year and streams its rows into the destination
// table. The downloaded file is removed before returning so a long range
// never accumulates tens of workbooks in the temp dir.
func loadYear(ctx context.Context, cfg *config.Config, repo storage.Repository, f Fetcher, dir string, year int) (rows, batches int64, err error) {
	path, err := f.FetchYear(ctx, year, dir)
	if err != nil {
		return 0, 0, err
	}
	defer os.Remove(path)

	r, err := xlsx.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open workbook: %w", err)
	}
	defer r.Close()

	plan, err := transformer.ResolvePlan(r.Header())
	if err != nil {
		return 0, 0, err
	}
	log.Printf("year %d: mapped %d of %d sheet columns", year, len(plan.Columns), len(r.Header()))

	it := transformer.NewRowIter(r, plan)
	return storage.LoadBatches(ctx, repo, fts.TableName, plan.Columns, it, cfg.BatchSize)
}
