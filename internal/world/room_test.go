package world

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(3, 4, 6, 8)
	if r != (Rect{X1: 3, Y1: 4, X2: 9, Y2: 12}) {
		t.Errorf("NewRect(3,4,6,8) = %+v", r)
	}
	if r.Width() != 6 || r.Height() != 8 {
		t.Errorf("size = %dx%d, want 6x8", r.Width(), r.Height())
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		r      Rect
		cx, cy int
	}{
		{NewRect(0, 0, 6, 6), 3, 3},
		{NewRect(10, 5, 7, 9), 13, 9},
		{NewRect(1, 1, 1, 1), 1, 1},
	}

	for _, tt := range tests {
		cx, cy := tt.r.Center()
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("%+v.Center() = (%d,%d), want (%d,%d)", tt.r, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 6, 6) // (10,10)-(16,16)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"overlapping", NewRect(13, 13, 6, 6), true},
		{"contained", NewRect(11, 11, 2, 2), true},
		{"shared right edge", NewRect(16, 10, 6, 6), true},
		{"shared corner", NewRect(16, 16, 4, 4), true},
		{"gap to the right", NewRect(17, 10, 6, 6), false},
		{"gap above", NewRect(10, 0, 6, 9), false},
		{"diagonal apart", NewRect(0, 0, 5, 5), false},
	}

	for _, tt := range tests {
		if got := base.Intersects(tt.other); got != tt.want {
			t.Errorf("%s: Intersects() = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Intersects(base); got != tt.want {
			t.Errorf("%s: Intersects() not symmetric", tt.name)
		}
	}
}

func TestRectContainsInteriorOnly(t *testing.T) {
	r := NewRect(2, 2, 4, 4) // interior 3..5

	if !r.Contains(3, 3) || !r.Contains(5, 5) {
		t.Error("interior points should be contained")
	}
	if r.Contains(2, 3) || r.Contains(6, 3) || r.Contains(3, 6) {
		t.Error("border points should not be contained")
	}
}
