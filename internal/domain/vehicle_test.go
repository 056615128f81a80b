package domain

import "testing"

func TestNewCapacityCatalogSortsDescending(t *testing.T) {
	c, err := NewCapacityCatalog([]int{8, 15, 19, 20, 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{40, 20, 19, 15, 8}
	if len(c) != len(want) {
		t.Fatalf("catalog length = %d, want %d", len(c), len(want))
	}
	for i, cap := range want {
		if c[i] != cap {
			t.Errorf("catalog[%d] = %d, want %d", i, c[i], cap)
		}
	}

	if c.Largest() != 40 {
		t.Errorf("Largest() = %d, want 40", c.Largest())
	}
}

func TestNewCapacityCatalogRejectsBadInput(t *testing.T) {
	if _, err := NewCapacityCatalog(nil); err == nil {
		t.Error("expected error for empty catalog")
	}
	if _, err := NewCapacityCatalog([]int{20, 0}); err == nil {
		t.Error("expected error for non-positive capacity")
	}
}

func TestSmallestAtLeast(t *testing.T) {
	c, err := NewCapacityCatalog([]int{8, 15, 19, 20, 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		n     int
		want  int
		found bool
	}{
		{1, 8, true},
		{5, 8, true},
		{8, 8, true},
		{9, 15, true},
		{16, 19, true},
		{20, 20, true},
		{21, 40, true},
		{40, 40, true},
		{41, 0, false},
	}

	for _, tc := range cases {
		got, ok := c.SmallestAtLeast(tc.n)
		if ok != tc.found || got != tc.want {
			t.Errorf("SmallestAtLeast(%d) = (%d, %v), want (%d, %v)", tc.n, got, ok, tc.want, tc.found)
		}
	}
}
