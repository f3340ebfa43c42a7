package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DataFrosch/scraper-fts/internal/ddl"
)

// fakeRepo is a minimal Repository implementation for tests.
type fakeRepo struct {
	closed bool
	execed []string
}

func (f *fakeRepo) InsertRows(_ context.Context, _ string, _ []string, rows [][]any) (int64, error) {
	return int64(len(rows)), nil
}
func (f *fakeRepo) Exec(_ context.Context, sql string) error {
	f.execed = append(f.execed, sql)
	return nil
}
func (f *fakeRepo) Close() { f.closed = true }

// TestRegisterAndNew_Success verifies that registering a backend enables New()
// to return the corresponding repository.
func TestRegisterAndNew_Success(t *testing.T) {
	t.Parallel()

	kind := "fake"
	Register(kind, func(ctx context.Context, cfg Config) (Repository, error) {
		return &fakeRepo{}, nil
	})

	repo, err := New(context.Background(), Config{Kind: kind})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if repo == nil {
		t.Fatalf("New returned nil repo")
	}

	// Ensure ListKinds contains the registered kind.
	kinds := ListKinds()
	found := false
	for _, k := range kinds {
		if k == kind {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("registered kind %q not present in ListKinds: %v", kind, kinds)
	}
}

// TestNew_Unsupported verifies that unsupported kinds return a helpful error.
func TestNew_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{Kind: "does-not-exist"})
	if err == nil {
		t.Fatalf("expected error for unsupported kind")
	}
	if got, want := err.Error(), "unsupported storage.kind=does-not-exist"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

// TestRegister_Override verifies that re-registering a kind overrides the
// previous factory (useful for tests and dynamic wiring).
func TestRegister_Override(t *testing.T) {
	t.Parallel()

	kind := "override"
	calls := 0

	Register(kind, func(ctx context.Context, cfg Config) (Repository, error) {
		calls++
		return &fakeRepo{}, nil
	})
	Register(kind, func(ctx context.Context, cfg Config) (Repository, error) {
		calls += 10
		return &fakeRepo{}, nil
	})

	_, err := New(context.Background(), Config{Kind: kind})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if calls != 10 { // only the second factory should have been used
		t.Fatalf("factory call count = %d, want 10", calls)
	}
}

// TestListKinds_Snapshot performs a shallow sanity check that ListKinds returns
// a copy (mutations by caller do not affect internal registry).
func TestListKinds_Snapshot(t *testing.T) {
	t.Parallel()

	k := "snap"
	Register(k, func(ctx context.Context, cfg Config) (Repository, error) { return &fakeRepo{}, nil })

	a := ListKinds()
	if len(a) == 0 {
		t.Fatalf("ListKinds empty after registration")
	}
	// Mutate the returned slice; registry should be unaffected.
	a[0] = "mutated"

	b := ListKinds()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("ListKinds returned same slice; want snapshot copy")
	}
}

// TestRegister_AllowsErrors shows factories can return errors that bubble up.
func TestRegister_AllowsErrors(t *testing.T) {
	t.Parallel()

	kind := "errkind"
	want := errors.New("boom")

	Register(kind, func(ctx context.Context, cfg Config) (Repository, error) {
		return nil, want
	})

	_, err := New(context.Background(), Config{Kind: kind})
	if !errors.Is(err, want) {
		t.Fatalf("want %v, got %v", want, err)
	}
}

// TestEnsureTable routes through the registered bootstrapper for the kind.
func TestEnsureTable(t *testing.T) {
	t.Parallel()

	def := ddl.TableDef{
		Name:    "things",
		Columns: []ddl.ColumnDef{{Name: "id", Kind: "id"}},
	}

	var got ddl.TableDef
	RegisterDDL("ddlkind", func(ctx context.Context, repo Repository, d ddl.TableDef) error {
		got = d
		return repo.Exec(ctx, "CREATE TABLE things ()")
	})

	repo := &fakeRepo{}
	if err := EnsureTable(context.Background(), "ddlkind", repo, def); err != nil {
		t.Fatalf("EnsureTable error: %v", err)
	}
	if got.Name != "things" {
		t.Fatalf("bootstrapper saw def %+v", got)
	}
	if len(repo.execed) != 1 {
		t.Fatalf("Exec calls = %d, want 1", len(repo.execed))
	}
}

// TestEnsureTable_Unregistered verifies the missing-kind error.
func TestEnsureTable_Unregistered(t *testing.T) {
	t.Parallel()

	err := EnsureTable(context.Background(), "no-such-kind", &fakeRepo{}, ddl.TableDef{})
	if err == nil {
		t.Fatalf("expected error for unregistered kind")
	}
	if got, want := err.Error(), `no DDL bootstrapper registered for storage.kind="no-such-kind"`; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}
