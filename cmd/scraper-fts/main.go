package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/DataFrosch/scraper-fts/internal/config"
	"github.com/DataFrosch/scraper-fts/internal/etl"
	"github.com/DataFrosch/scraper-fts/internal/fetcher"
	"github.com/DataFrosch/scraper-fts/internal/metrics"
	"github.com/DataFrosch/scraper-fts/internal/metrics/datadog"
	"github.com/DataFrosch/scraper-fts/internal/metrics/prompush"
	"github.com/DataFrosch/scraper-fts/internal/storage"

	// register all backends with the storage factory.
	// config specifies which to use but we need to build in support for all of them.
	_ "github.com/DataFrosch/scraper-fts/internal/storage/all"
)

// main is the entry point for the scraper binary. It loads the config,
// optionally initializes a metrics backend, and executes the yearly
// download/load loop. Per-year failures are logged and absorbed by the loop;
// only setup problems (config, database, DDL) terminate the process.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fatalf("config: %v", err)
	}

	switch cfg.MetricsBackend {
	case "pushgateway":
		b, err := prompush.NewBackend(cfg.MetricsJob, cfg.PushgatewayURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
		} else {
			log.Printf("metrics: backend=pushgateway url=%s job=%s", cfg.PushgatewayURL, cfg.MetricsJob)
			metrics.SetBackend(b)
			defer flushMetrics()
		}

	case "datadog":
		b, err := datadog.NewBackend(datadog.Config{Addr: cfg.DDAgentAddr})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
		} else {
			log.Printf("metrics: backend=datadog agent=%s", cfg.DDAgentAddr)
			metrics.SetBackend(b)
			defer flushMetrics()
		}

	case "", "none":
		// metrics disabled; nop backend remains

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", cfg.MetricsBackend)
	}

	ctx := context.Background()
	start := time.Now()

	repo, err := storage.New(ctx, storage.Config{Kind: cfg.DBDriver, DSN: cfg.EffectiveDSN()})
	if err != nil {
		fatalf("connect %s: %v", cfg.DBDriver, err)
	}
	defer repo.Close()

	if _, err := etl.Run(ctx, cfg, repo, fetcher.NewClient(fetcher.Config{BaseURL: cfg.BaseURL})); err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
}

func flushMetrics() {
	if err := metrics.Flush(); err != nil {
		log.Printf("metrics: flush error: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
