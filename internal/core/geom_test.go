package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects() = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(tc.a); got != tc.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner is exclusive", 30, 25, false},
		{"left of", 5, 15, false},
		{"below", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), want (25, 25)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), want (15, 17)", cx, cy)
	}
}

func TestFRect(t *testing.T) {
	a := FRect{X: 1.5, Y: 1.5, W: 2, H: 1}
	b := FRect{X: 3.4, Y: 2.4, W: 1, H: 1}
	if !a.Intersects(b) {
		t.Error("expected fractional overlap to intersect")
	}
	c := FRect{X: 3.5, Y: 1.5, W: 1, H: 1}
	if a.Intersects(c) {
		t.Error("touching rectangles must not intersect")
	}

	cells := FRect{X: 2.9, Y: 4.2, W: 0.4, H: 1.6}.Cells()
	if cells != NewRect(2, 4, 1, 1) {
		t.Errorf("Cells() = %+v, want {2 4 1 1}", cells)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
	if got := Clamp(15.5, 0.0, 10.0); got != 10.0 {
		t.Errorf("Clamp float = %f, want 10", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, want int
	}{
		{0, 30, 0},
		{30, 30, 0},
		{-1, 30, 29},
		{31, 30, 1},
		{5, 0, 0},
	}
	for _, tc := range tests {
		if got := Wrap(tc.v, tc.n); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Error("Abs broken")
	}
}

func TestTicksFor(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}
	if got := cfg.TicksFor(800); got != 48 {
		t.Errorf("TicksFor(800) = %d, want 48", got)
	}
	if got := cfg.TicksFor(1); got != 1 {
		t.Errorf("TicksFor(1) = %d, want at least 1", got)
	}
	if got := (RuntimeConfig{}).TicksFor(1000); got != 60 {
		t.Errorf("zero tick rate should default to 60, got %d", got)
	}
}
