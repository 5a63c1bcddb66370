package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.a.Intersects(tc.b); result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if result := tc.b.Intersects(tc.a); result != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(10, 10, 20, 10).Inset(2)

	if r.X != 12 || r.Y != 12 {
		t.Errorf("Inset origin = (%v, %v), expected (12, 12)", r.X, r.Y)
	}
	if r.W != 16 || r.H != 6 {
		t.Errorf("Inset size = (%v, %v), expected (16, 6)", r.W, r.H)
	}

	// Two tiles that touch stop intersecting once inset
	a := NewRect(0, 0, 10, 10)
	b := NewRect(9, 0, 10, 10)
	if !a.Intersects(b) {
		t.Fatal("expected raw rects to intersect")
	}
	if a.Inset(1).Intersects(b.Inset(1)) {
		t.Error("expected inset rects to separate")
	}
}

func TestRectVSpan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected float64
	}{
		{"full overlap", NewRect(0, 0, 5, 10), NewRect(20, 0, 5, 10), 10},
		{"partial overlap", NewRect(0, 0, 5, 10), NewRect(20, 6, 5, 10), 4},
		{"touching", NewRect(0, 0, 5, 10), NewRect(20, 10, 5, 10), 0},
		{"disjoint", NewRect(0, 0, 5, 10), NewRect(20, 15, 5, 10), -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.VSpan(tc.b); got != tc.expected {
				t.Errorf("VSpan() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.VSpan(tc.a); got != tc.expected {
				t.Errorf("VSpan() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min is broken")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max is broken")
	}
	if MinF(1.5, 2.5) != 1.5 || MaxF(1.5, 2.5) != 2.5 {
		t.Error("MinF/MaxF is broken")
	}
}
