package ddl

import "testing"

// TestMapType verifies the affinity choices for logical kinds.
func TestMapType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind string
		want string
	}{
		{name: "surrogate id", kind: "id", want: "INTEGER PRIMARY KEY AUTOINCREMENT"},
		{name: "int", kind: "int", want: "INTEGER"},
		{name: "bigint", kind: "bigint", want: "INTEGER"},
		{name: "bool stored as 0/1", kind: "bool", want: "INTEGER"},
		{name: "real", kind: "real", want: "REAL"},
		{name: "numeric", kind: "numeric", want: "NUMERIC"},
		{name: "date stored as text", kind: "date", want: "TEXT"},
		{name: "blob", kind: "blob", want: "BLOB"},
		{name: "empty", kind: "", want: "TEXT"},
		{name: "unknown", kind: "geometry", want: "TEXT"},
		{name: "mixed case", kind: " DaTe ", want: "TEXT"},
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
