package transformer

import (
	"fmt"

	"github.com/DataFrosch/scraper-fts/internal/fts"
	"github.com/DataFrosch/scraper-fts/internal/parser/xlsx"
)

// Plan binds sheet column positions to destination columns for one file. It
// is resolved once from the header row; headers that do not match the column
// dictionary are left out entirely, so an unknown column cannot leak into the
// destination column set.
type Plan struct {
	// Columns are destination column names in sheet order.
	Columns []string

	src   []int
	types []string
}

// ResolvePlan matches a header row against the column dictionary.
func ResolvePlan(header []string) (*Plan, error) {
	p := &Plan{}
	for i, h := range header {
		col, ok := fts.Resolve(h)
		if !ok {
			continue
		}
		p.Columns = append(p.Columns, col)
		p.src = append(p.src, i)
		p.types = append(p.types, fts.TypeOf(h))
	}
	if len(p.Columns) == 0 {
		return nil, fmt.Errorf("no recognised columns in header row %q", header)
	}
	return p, nil
}

// CleanRow produces the destination values for one sheet row. The result is a
// fresh slice on every call since batches hold on to rows. Cells past the end
// of a short row read as empty.
func (p *Plan) CleanRow(cells []xlsx.Cell) []any {
	out := make([]any, len(p.Columns))
	for i, src := range p.src {
		if src >= len(cells) {
			continue
		}
		out[i] = CleanValue(cells[src], p.types[i])
	}
	return out
}
