// Package config centralizes application configuration. It follows a
// "clean" configuration pattern where all tunables live outside the
// code and are sourced from command-line flags with environment-variable
// fallbacks (12-factor friendly). Flags are defined first so that
// `-help` shows all available knobs and their defaults.
//
// Typical usage:
//
//	cfg := config.Load() // reads os.Args and os.Environ
//
// For tests, prefer LoadFromArgs to keep them hermetic:
//
//	fs := flag.NewFlagSet("test", flag.ContinueOnError)
//	getenv := func(k string) string { return testEnv[k] }
//	cfg := config.LoadFromArgs(fs, getenv, []string{"-from_year=2020"})
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all process configuration derived from flags and
// environment variables. All fields are plain values so the struct
// can be safely copied after construction.
type Config struct {
	// DB describes the destination database. For Postgres, DSN is optional
	// (it can be built from the discrete parts below); for every other
	// driver a full DSN is required.
	DBDriver   string // Storage backend: "postgres", "mssql", or "sqlite".
	DSN        string // Full DSN override.
	DBHost     string // Database host (Postgres convenience).
	DBPort     string // Database port (Postgres convenience).
	DBName     string // Database name. Required.
	DBUser     string // Database username. Required.
	DBPassword string // Database password. Required.

	// Scrape range and throughput.
	FromYear  int // First dataset year to fetch.
	ToYear    int // Last dataset year; 0 means the current year.
	BatchSize int // Rows per insert batch.

	// BaseURL overrides the dataset download endpoint. Empty keeps the
	// public one.
	BaseURL string

	// Metrics backend selection.
	MetricsBackend string // "pushgateway", "datadog", or "none".
	PushgatewayURL string // Pushgateway base URL.
	MetricsJob     string // Pushgateway "job" grouping name.
	DDAgentAddr    string // DogStatsD agent address.
}

// LoadFromArgs builds a Config by defining flags on fs, wiring each flag
// to an environment-variable fallback via getenv, and then parsing args.
// This is the most testable entry point: callers supply a private FlagSet,
// a getenv func (often backed by a map), and a synthetic arg slice.
//
// Precedence:
//  1. Environment values seed each flag's default.
//  2. Explicit CLI flags (in args) override the seeded defaults.
//
// The returned Config is fully populated; no further mutation occurs.
func LoadFromArgs(fs *flag.FlagSet, getenv func(string) string, args []string) *Config {
	cfg := &Config{}

	// Inline helpers use the provided getenv to avoid touching process env.
	envOrDefaultFn := func(k, d string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return d
	}
	intEnvOrDefaultFn := func(k string, d int) int {
		if v := getenv(k); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				return i
			}
		}
		return d
	}

	// DB connectivity
	fs.StringVar(&cfg.DBDriver, "db_driver", envOrDefaultFn("DB_DRIVER", "postgres"), "Storage backend: 'postgres', 'mssql', or 'sqlite'.")
	fs.StringVar(&cfg.DSN, "dsn", getenv("DB_DSN"), "Full DSN (required for mssql and sqlite).")
	fs.StringVar(&cfg.DBHost, "db_host", envOrDefaultFn("DB_HOST", "localhost"), "DB host")
	fs.StringVar(&cfg.DBPort, "db_port", envOrDefaultFn("DB_PORT", "5432"), "DB port")
	fs.StringVar(&cfg.DBName, "db_name", getenv("DB_NAME"), "DB name (required)")
	fs.StringVar(&cfg.DBUser, "db_user", getenv("DB_USER"), "DB user (required)")
	fs.StringVar(&cfg.DBPassword, "db_password", getenv("DB_PASSWORD"), "DB password (required)")

	// Scrape range & throughput
	fs.IntVar(&cfg.FromYear, "from_year", intEnvOrDefaultFn("FROM_YEAR", 2007), "First dataset year to fetch")
	fs.IntVar(&cfg.ToYear, "to_year", intEnvOrDefaultFn("TO_YEAR", 0), "Last dataset year to fetch (0 = current year)")
	fs.IntVar(&cfg.BatchSize, "batch_size", intEnvOrDefaultFn("BATCH_SIZE", 5000), "Number of rows per insert batch")
	fs.StringVar(&cfg.BaseURL, "base_url", getenv("FTS_BASE_URL"), "Override the dataset download endpoint")

	// Metrics
	fs.StringVar(&cfg.MetricsBackend, "metrics_backend", envOrDefaultFn("METRICS_BACKEND", "none"), "Metrics backend: 'pushgateway', 'datadog', or 'none'.")
	fs.StringVar(&cfg.PushgatewayURL, "pushgateway_url", envOrDefaultFn("PUSHGATEWAY_URL", "http://localhost:9091"), "Pushgateway base URL")
	fs.StringVar(&cfg.MetricsJob, "metrics_job", envOrDefaultFn("METRICS_JOB", "scraper-fts"), "Pushgateway job name")
	fs.StringVar(&cfg.DDAgentAddr, "dd_agent_addr", envOrDefaultFn("DD_AGENT_ADDR", "127.0.0.1:8125"), "DogStatsD agent address")

	// Parse the provided args (nil means no extra args).
	if args == nil {
		args = []string{}
	}
	_ = fs.Parse(args)
	return cfg
}

// LoadFrom is a compatibility wrapper around LoadFromArgs for call-sites
// that don't need to pass args explicitly (useful in some tests).
func LoadFrom(fs *flag.FlagSet, getenv func(string) string) *Config {
	return LoadFromArgs(fs, getenv, nil)
}

// Load is the production entry point. It wires the loader to the process
// flag set (flag.CommandLine), reads environment variables via os.Getenv,
// and parses os.Args[1:] as the CLI arguments.
func Load() *Config {
	return LoadFromArgs(flag.CommandLine, os.Getenv, os.Args[1:])
}

// Validate reports the first configuration error that must stop the process.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "":
		return fmt.Errorf("db_driver must not be empty")
	case "postgres":
		if c.DSN == "" {
			var missing []string
			if c.DBName == "" {
				missing = append(missing, "DB_NAME")
			}
			if c.DBUser == "" {
				missing = append(missing, "DB_USER")
			}
			if c.DBPassword == "" {
				missing = append(missing, "DB_PASSWORD")
			}
			if len(missing) > 0 {
				return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
			}
		}
	default:
		// Unknown drivers are rejected later by the storage factory; here we
		// only require that non-Postgres drivers carry an explicit DSN.
		if c.DSN == "" {
			return fmt.Errorf("dsn required for db_driver=%q", c.DBDriver)
		}
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.FromYear <= 0 {
		return fmt.Errorf("from_year must be positive, got %d", c.FromYear)
	}
	if c.ToYear != 0 && c.ToYear < c.FromYear {
		return fmt.Errorf("to_year %d precedes from_year %d", c.ToYear, c.FromYear)
	}
	return nil
}

// EffectiveDSN returns the DSN to hand to the storage factory: the explicit
// override when set, otherwise one assembled from the discrete Postgres parts.
func (c *Config) EffectiveDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName
}

// Years resolves the scrape range against the given clock. A zero ToYear
// means "through the current year".
func (c *Config) Years(now time.Time) (from, to int) {
	to = c.ToYear
	if to == 0 {
		to = now.Year()
	}
	return c.FromYear, to
}
