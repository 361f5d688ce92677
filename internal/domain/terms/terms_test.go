package terms

import (
	"slices"
	"testing"
)

func TestNew_LowercasesAndSkipsEmpty(t *testing.T) {
	s := New("Comedy", "", "DRAMA", "comedy")

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains("comedy") || !s.Contains("drama") {
		t.Errorf("unexpected set: %v", s.Slice())
	}
}

func TestUnion(t *testing.T) {
	a := New("funny")
	a.Union(New("comic", "funny"))

	got := a.Slice()
	want := []string{"comic", "funny"}
	if !slices.Equal(got, want) {
		t.Errorf("Slice() = %v, want %v", got, want)
	}
}

func TestSlice_Sorted(t *testing.T) {
	s := New("zeta", "alpha", "mid")
	if got := s.Slice(); !slices.IsSorted(got) {
		t.Errorf("Slice() not sorted: %v", got)
	}
}

func TestLower(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Comedies, Dramas", "comedies, dramas"},
		{"ACCIÓN", "acción"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Lower(tc.in); got != tc.want {
			t.Errorf("Lower(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
