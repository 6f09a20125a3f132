package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "Dune", 10, "Dune"},
		{"exact", "Dune", 4, "Dune"},
		{"long", "The Left Hand of Darkness", 10, "The Lef..."},
		{"zero_limit", "Dune", 0, "Dune"},
		{"tiny_limit", "Dune", 2, "Du"},
		{"trims", "  Dune  ", 10, "Dune"},
		{"multibyte", "Cien años de soledad", 12, "Cien años..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}
