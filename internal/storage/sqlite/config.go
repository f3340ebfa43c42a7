// Package sqlite implements a SQLite-backed storage.Repository.
package sqlite

// Config holds SQLite repository configuration derived from storage.Config.
type Config struct {
	// DSN is a SQLite connection string or file path, e.g.:
	//   "file:fts.db?mode=rwc"
	//   ":memory:"
	//   "fts.db" (interpreted by the driver)
	DSN string
}
