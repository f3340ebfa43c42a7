// Package xlsx streams rows out of an Office Open XML workbook for the
// pipeline. It reads the first sheet row by row (the yearly exports run to
// hundreds of thousands of rows, so the whole-file API is off the table) and
// fixes the shape of every cell at ingestion: empty, numeric, or text.
// Downstream cleaning switches on that tag instead of sniffing runtime types.
package xlsx

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// CellKind tags the shape of a cell as determined at ingestion.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
)

// Cell is one spreadsheet cell. Text always holds the raw formatted value
// (so untyped columns can pass the source text through losslessly); Num is
// additionally set when Kind is KindNumber.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

// Reader streams the first sheet of a workbook. The header row is consumed
// at open time; Next then walks the data rows.
type Reader struct {
	f      *excelize.File
	rows   *excelize.Rows
	header []string
	cur    []Cell
	err    error
}

// Open opens the workbook at path and positions the reader after the header
// row of the first sheet. The caller must Close the reader.
func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %s: %w", path, err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("xlsx: %s: workbook has no sheets", path)
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("xlsx: open sheet %s: %w", sheets[0], err)
	}

	r := &Reader{f: f, rows: rows}
	if rows.Next() {
		header, err := rows.Columns()
		if err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("xlsx: read header row: %w", err)
		}
		r.header = header
	}
	return r, nil
}

// Header returns the first row of the sheet as raw strings. It is empty when
// the sheet has no rows at all.
func (r *Reader) Header() []string { return r.header }

// Next advances to the next data row. It returns false at the end of the
// sheet or on error; Err disambiguates.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.rows.Next() {
		r.err = r.rows.Error()
		return false
	}
	cols, err := r.rows.Columns()
	if err != nil {
		r.err = err
		return false
	}
	if cap(r.cur) < len(cols) {
		r.cur = make([]Cell, len(cols))
	}
	r.cur = r.cur[:len(cols)]
	for i, s := range cols {
		r.cur[i] = Classify(s)
	}
	return true
}

// Row returns the current row. The backing slice is reused between calls to
// Next; callers must not retain it.
func (r *Reader) Row() []Cell { return r.cur }

// Err reports the first error encountered while streaming, if any.
func (r *Reader) Err() error { return r.err }

// Close releases the row iterator and the underlying workbook.
func (r *Reader) Close() error {
	var first error
	if r.rows != nil {
		if err := r.rows.Close(); err != nil {
			first = err
		}
	}
	if err := r.f.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

// Classify fixes the kind of one formatted cell value: empty string, a value
// that parses as a plain float, or text. Values with grouping separators
// ("1,234.50") deliberately stay text; the numeric cleaner owns that case.
func Classify(s string) Cell {
	if s == "" {
		return Cell{Kind: KindEmpty}
	}
	if looksNumeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Cell{Kind: KindNumber, Text: s, Num: f}
		}
	}
	return Cell{Kind: KindText, Text: s}
}

// looksNumeric is a cheap gate in front of ParseFloat so ordinary text cells
// skip the parse attempt.
func looksNumeric(s string) bool {
	c := s[0]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}
