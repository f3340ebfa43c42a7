package fts

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// canonicalCols and canonicalTypes index the dictionary by folded header
// form, so lookups survive the whitespace drift the portal has shipped over
// the years (non-breaking spaces, doubled or trimmed spaces, stray accents).
var (
	canonicalCols  = map[string]string{}
	canonicalTypes = map[string]string{}
)

func init() {
	for h, col := range ColumnMapping {
		canonicalCols[CanonicalHeader(h)] = col
	}
	for h, typ := range ColumnTypes {
		canonicalTypes[CanonicalHeader(h)] = typ
	}
}

// CanonicalHeader folds a header for tolerant matching: accents are stripped
// (decompose, drop nonspacing marks, recompose), the result is lower-cased,
// and every run of Unicode whitespace collapses to a single space.
func CanonicalHeader(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, _ := transform.String(t, s)
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	space := false
	for _, r := range folded {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// Resolve maps a source header to its destination column: exact dictionary
// match first, canonical match second.
func Resolve(header string) (string, bool) {
	if col, ok := ColumnMapping[header]; ok {
		return col, true
	}
	col, ok := canonicalCols[CanonicalHeader(header)]
	return col, ok
}

// TypeOf returns the cleaning type for a source header ("boolean", "date",
// "numeric") or "" for opaque text, with the same exact-then-canonical
// lookup as Resolve.
func TypeOf(header string) string {
	if typ, ok := ColumnTypes[header]; ok {
		return typ
	}
	return canonicalTypes[CanonicalHeader(header)]
}
