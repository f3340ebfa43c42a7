package transformer

import "github.com/DataFrosch/scraper-fts/internal/parser/xlsx"

// RowIter adapts a sheet reader into the row stream the batch loader pulls
// from. Single pass: once consumed it cannot be rewound, the source has to be
// reopened.
type RowIter struct {
	r    *xlsx.Reader
	plan *Plan
	row  []any
}

func NewRowIter(r *xlsx.Reader, plan *Plan) *RowIter {
	return &RowIter{r: r, plan: plan}
}

// Next advances to the next data row. It returns false at end of sheet or on
// a read error; check Err after the loop.
func (it *RowIter) Next() bool {
	if !it.r.Next() {
		return false
	}
	it.row = it.plan.CleanRow(it.r.Row())
	return true
}

// Row returns the cleaned destination values for the current row, ordered as
// Plan.Columns.
func (it *RowIter) Row() []any { return it.row }

func (it *RowIter) Err() error { return it.r.Err() }
