package transformer

import (
	"testing"

	"github.com/DataFrosch/scraper-fts/internal/parser/xlsx"
)

func TestCleanValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell xlsx.Cell
		typ  string
		want any
	}{
		{"empty bool", xlsx.Cell{Kind: xlsx.KindEmpty}, "boolean", nil},
		{"empty date", xlsx.Cell{Kind: xlsx.KindEmpty}, "date", nil},
		{"empty numeric", xlsx.Cell{Kind: xlsx.KindEmpty}, "numeric", nil},
		{"empty text", xlsx.Cell{Kind: xlsx.KindEmpty}, "", nil},

		{"bool yes", xlsx.Classify("Yes"), "boolean", true},
		{"bool no", xlsx.Classify("No"), "boolean", false},
		{"bool other word", xlsx.Classify("maybe"), "boolean", nil},
		{"bool digit", xlsx.Classify("1"), "boolean", nil},
		{"bool padded", xlsx.Cell{Kind: xlsx.KindText, Text: " Yes "}, "boolean", true},

		{"date iso", xlsx.Classify("2023-05-01"), "date", "2023-05-01"},
		{"date dash", xlsx.Classify("-"), "date", nil},
		{"date day first", xlsx.Classify("15/01/2020"), "date", "2020-01-15"},
		{"date ambiguous is day first", xlsx.Classify("03/04/2020"), "date", "2020-04-03"},
		{"date dotted", xlsx.Classify("01.02.2020"), "date", "2020-02-01"},
		{"date with time", xlsx.Classify("2020-01-15 10:30:00"), "date", "2020-01-15"},
		{"date serial", xlsx.Classify("44197"), "date", "2021-01-01"},
		{"date junk", xlsx.Classify("soon"), "date", nil},

		{"numeric native", xlsx.Classify("42"), "numeric", float64(42)},
		{"numeric grouped", xlsx.Classify("1,000.00"), "numeric", float64(1000)},
		{"numeric grouped fraction", xlsx.Classify("1,234.50"), "numeric", 1234.5},
		{"numeric negative", xlsx.Classify("-12.5"), "numeric", -12.5},
		{"numeric junk", xlsx.Classify("abc"), "numeric", nil},

		{"text passthrough", xlsx.Classify("hello"), "", "hello"},
		{"text keeps leading zeros", xlsx.Classify("00100"), "", "00100"},
		{"text keeps date shape", xlsx.Classify("2020-01-15"), "", "2020-01-15"},
		{"text keeps digit year", xlsx.Classify("2020"), "", "2020"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanValue(tc.cell, tc.typ); got != tc.want {
				t.Fatalf("CleanValue(%+v, %q) = %#v, want %#v", tc.cell, tc.typ, got, tc.want)
			}
		})
	}
}

func TestParseDate_LayoutOrder(t *testing.T) {
	t.Parallel()

	// 03/04 must read as the 3rd of April, not March 4th.
	got, ok := parseDate("03/04/2020")
	if !ok || got != "2020-04-03" {
		t.Fatalf("parseDate(03/04/2020) = (%q, %v), want (2020-04-03, true)", got, ok)
	}
	// A day above 12 forces the day-first layout to do the work.
	got, ok = parseDate("25/12/2019")
	if !ok || got != "2019-12-25" {
		t.Fatalf("parseDate(25/12/2019) = (%q, %v)", got, ok)
	}
	if _, ok := parseDate(""); ok {
		t.Fatalf("parseDate accepted an empty string")
	}
}

func TestSerialToDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		serial float64
		want   string
	}{
		{43831, "2020-01-01"},
		{44197, "2021-01-01"},
		{44197.75, "2021-01-01"}, // time of day is dropped
	}
	for _, tc := range tests {
		if got := serialToDate(tc.serial); got != tc.want {
			t.Fatalf("serialToDate(%v) = %q, want %q", tc.serial, got, tc.want)
		}
	}
}
