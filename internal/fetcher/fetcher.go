// Package fetcher downloads the yearly Financial Transparency System
// datasets published by the European Commission.
//
// Design goals:
//
//   - Keep a tiny, explicit API (one client, one FetchYear call).
//   - Send browser-like headers; the download endpoint refuses obviously
//     non-interactive clients.
//   - Respect context cancellation during requests.
//   - Be easy to test by injecting a custom RoundTripper.
//
// Each year is fetched with a single GET. A non-200 response reports
// ErrNotAvailable so callers can tell an unpublished year apart from a
// transport failure.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/xxh3"
)

// DefaultBaseURL is the public download endpoint for the yearly datasets.
const DefaultBaseURL = "https://ec.europa.eu/budget/financial-transparency-system/download"

// ErrNotAvailable reports that the server answered but did not serve the
// dataset, typically because the year has not been published yet.
var ErrNotAvailable = errors.New("dataset not available")

// browserHeaders mimic a regular Firefox navigation. The download endpoint
// serves an error page to clients it does not recognise as browsers.
var browserHeaders = http.Header{
	"User-Agent":                {"Mozilla/5.0 (X11; Linux x86_64; rv:138.0) Gecko/20100101 Firefox/138.0"},
	"Accept":                    {"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
	"Accept-Language":           {"en-US,en;q=0.5"},
	"Connection":                {"keep-alive"},
	"Referer":                   {"https://ec.europa.eu/budget/financial-transparency-system/help.html"},
	"Upgrade-Insecure-Requests": {"1"},
	"Sec-Fetch-Dest":            {"document"},
	"Sec-Fetch-Mode":            {"navigate"},
	"Sec-Fetch-Site":            {"same-origin"},
	"Sec-Fetch-User":            {"?1"},
	"Priority":                  {"u=0, i"},
}

// Config configures the dataset fetcher.
//
// Zero values are given sensible defaults:
//   - BaseURL: DefaultBaseURL
//   - Timeout: 5m
type Config struct {
	// BaseURL is the endpoint the yearly file names are appended to.
	BaseURL string

	// Timeout is the per-request timeout applied at the http.Client level.
	// The yearly exports run to tens of megabytes, so this covers the full
	// body read, not just the first byte.
	Timeout time.Duration

	// Transport is an optional custom RoundTripper. When nil, the default
	// http.Transport is used.
	Transport http.RoundTripper
}

// Client downloads dataset files over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a Client from Config, applying defaults for zero values.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		baseURL: cfg.BaseURL,
	}
}

// fileName returns the published name of one yearly export.
func fileName(year int) string {
	return fmt.Sprintf("%d_FTS_dataset_en.xlsx", year)
}

// url returns the full download URL for a year.
func (c *Client) url(year int) string {
	return c.baseURL + "/" + fileName(year)
}

// FetchYear downloads the dataset for one year into dir and returns the path
// of the written file.
//
// A non-200 response is reported as ErrNotAvailable (wrapped with the status
// line); any other failure is a transport or filesystem error. Nothing is
// written on error.
func (c *Client) FetchYear(ctx context.Context, year int, dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("fetcher: dir must not be empty")
	}

	url := c.url(year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetcher: build request: %w", err)
	}
	for k, vs := range browserHeaders {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetcher: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetcher: year %d status %s: %w", year, resp.Status, ErrNotAvailable)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetcher: read body: %w", err)
	}

	dest := filepath.Join(dir, fileName(year))
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("fetcher: write %s: %w", dest, err)
	}

	log.Printf("fetcher: year=%d size=%d xxh3=%016x file=%s", year, len(data), xxh3.Hash(data), dest)
	return dest, nil
}
