package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// TestNewClient_Defaults verifies that NewClient applies sensible defaults.
func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{})

	if c.baseURL != DefaultBaseURL {
		t.Fatalf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	// A zero timeout would hang the pipeline on a stalled download.
	if c.httpClient.Timeout <= 0 {
		t.Fatalf("expected non-zero timeout, got %v", c.httpClient.Timeout)
	}
}

func TestURL(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{BaseURL: "http://example.com/download"})
	got := c.url(2020)
	want := "http://example.com/download/2020_FTS_dataset_en.xlsx"
	if got != want {
		t.Fatalf("url(2020) = %q, want %q", got, want)
	}
}

// TestFetchYear_Success verifies the happy path: the request carries the
// browser headers, the body lands in the destination file, and the server is
// hit exactly once.
func TestFetchYear_Success(t *testing.T) {
	t.Parallel()

	payload := []byte("PK\x03\x04 not a real workbook")
	var hits int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)

		if r.URL.Path != "/2020_FTS_dataset_en.xlsx" {
			t.Errorf("path = %q, want /2020_FTS_dataset_en.xlsx", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Firefox") {
			t.Errorf("User-Agent = %q, want a browser string", ua)
		}
		if ref := r.Header.Get("Referer"); !strings.Contains(ref, "financial-transparency-system") {
			t.Errorf("Referer = %q, want the FTS help page", ref)
		}
		if got := r.Header.Get("Sec-Fetch-Mode"); got != "navigate" {
			t.Errorf("Sec-Fetch-Mode = %q, want %q", got, "navigate")
		}

		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})

	path, err := c.FetchYear(context.Background(), 2020, dir)
	if err != nil {
		t.Fatalf("FetchYear error: %v", err)
	}
	if want := filepath.Join(dir, "2020_FTS_dataset_en.xlsx"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatalf("downloaded %d bytes, want %d", len(data), len(payload))
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected exactly 1 request, got %d", got)
	}
}

// TestFetchYear_NotAvailable verifies that a non-200 status maps to
// ErrNotAvailable and leaves the destination directory untouched.
func TestFetchYear_NotAvailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})

	_, err := c.FetchYear(context.Background(), 2031, dir)
	if !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("FetchYear error = %v, want ErrNotAvailable", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("FetchYear error = %q, want the status line in it", err.Error())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("destination dir has %d entries, want 0", len(entries))
	}
}

// TestFetchYear_TransportError verifies that a transport failure is a plain
// error, not ErrNotAvailable.
func TestFetchYear_TransportError(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{
		BaseURL: "http://example.com",
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset")
		}),
	})

	_, err := c.FetchYear(context.Background(), 2020, t.TempDir())
	if err == nil {
		t.Fatalf("FetchYear error = nil, want non-nil")
	}
	if errors.Is(err, ErrNotAvailable) {
		t.Fatalf("transport failure must not report ErrNotAvailable: %v", err)
	}
}

func TestFetchYear_EmptyDir(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{})
	if _, err := c.FetchYear(context.Background(), 2020, ""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

// TestFetchYear_ContextCancel verifies the request honors an already
// cancelled context.
func TestFetchYear_ContextCancel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.FetchYear(ctx, 2020, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Fatalf("FetchYear error = %v, want context.Canceled", err)
	}
}
