package ddl

import "testing"

// TestMapType verifies that MapType resolves logical kinds into the expected
// Postgres SQL types and defaults to TEXT.
func TestMapType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind string
		want string
	}{
		{name: "surrogate id", kind: "id", want: "SERIAL PRIMARY KEY"},
		{name: "int lower", kind: "int", want: "INTEGER"},
		{name: "integer mixed case", kind: " InTeGeR ", want: "INTEGER"},
		{name: "bool lower", kind: "bool", want: "BOOLEAN"},
		{name: "boolean upper", kind: "BOOLEAN", want: "BOOLEAN"},
		{name: "date lower", kind: "date", want: "DATE"},
		{name: "numeric lower", kind: "numeric", want: "NUMERIC"},
		{name: "decimal lower", kind: "decimal", want: "NUMERIC"},
		{name: "empty string", kind: "", want: "TEXT"},
		{name: "spaces only", kind: "   ", want: "TEXT"},
		{name: "text", kind: "text", want: "TEXT"},
		{name: "unknown", kind: "jsonb", want: "TEXT"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapType(tt.kind)
			if got != tt.want {
				t.Fatalf("MapType(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

// BenchmarkMapType measures MapType under a mixture of known and unknown
// logical kinds.
func BenchmarkMapType(b *testing.B) {
	kinds := []string{"id", "int", "bool", "date", "numeric", "", "text", "jsonb"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MapType(kinds[i%len(kinds)])
	}
}
