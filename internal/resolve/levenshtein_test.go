// ABOUTME: Tests for edit distance and normalized similarity.
// ABOUTME: Table-driven over known distances.
package resolve

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"hrv", "hrv", 0},
		{"recovery", "recovary", 1},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("recovery", "recovery"); got != 1 {
		t.Errorf("identical strings: got %v, want 1", got)
	}
	if got := Similarity("", ""); got != 1 {
		t.Errorf("empty strings: got %v, want 1", got)
	}
	// One edit over eight characters.
	if got := Similarity("recovery", "recovary"); got != 1-1.0/8 {
		t.Errorf("Similarity = %v, want %v", got, 1-1.0/8)
	}
	if got := Similarity("abc", "xyz"); got != 0 {
		t.Errorf("disjoint strings: got %v, want 0", got)
	}
}
