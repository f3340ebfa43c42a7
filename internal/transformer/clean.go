// Package transformer turns raw sheet rows into destination rows: it matches
// the header row against the column dictionary once per file, then coerces
// every cell through the cleaning rule for its column type. Cleaning never
// fails a row; a value that cannot be coerced becomes NULL.
package transformer

import (
	"strconv"
	"strings"
	"time"

	"github.com/DataFrosch/scraper-fts/internal/parser/xlsx"
)

// dateLayouts are tried in order. ISO first, then day-first forms ahead of
// the US month-first ones so ambiguous dates resolve day-first.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
	"2006/01/02",
	"01/02/2006",
	"01-02-06",
	"1/2/06 15:04",
	"2006-01-02 15:04:05",
}

// excelEpoch is day zero of the workbook 1900 date system. The two-day shift
// from 1900-01-01 absorbs the phantom 1900-02-29, so serials from March 1900
// onward land on the right day.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func serialToDate(serial float64) string {
	return excelEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
}

func parseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// CleanValue coerces one cell to its destination value. typ is one of
// "boolean", "date", "numeric", or anything else for opaque text.
//
// Untyped cells pass their raw text through untouched, which keeps values
// like zero-padded postal codes intact even when the cell content happens to
// look numeric.
func CleanValue(c xlsx.Cell, typ string) any {
	if c.Kind == xlsx.KindEmpty {
		return nil
	}

	switch typ {
	case "boolean":
		switch strings.TrimSpace(c.Text) {
		case "Yes":
			return true
		case "No":
			return false
		}
		return nil

	case "date":
		// A bare number in a date column is a raw serial, typically an
		// unstyled cell streamed without its date format.
		if c.Kind == xlsx.KindNumber {
			return serialToDate(c.Num)
		}
		if d, ok := parseDate(c.Text); ok {
			return d
		}
		return nil

	case "numeric":
		if c.Kind == xlsx.KindNumber {
			return c.Num
		}
		s := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return f

	default:
		return c.Text
	}
}
