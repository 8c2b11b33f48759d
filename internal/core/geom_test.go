package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "player on obstacle",
			a:        NewRect(100, 310, 40, 40),
			b:        NewRect(120, 290, 30, 60),
			expected: true,
		},
		{
			name:     "obstacle ahead",
			a:        NewRect(100, 310, 40, 40),
			b:        NewRect(200, 290, 30, 60),
			expected: false,
		},
		{
			name:     "player above obstacle",
			a:        NewRect(120, 200, 40, 40),
			b:        NewRect(120, 290, 30, 60),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(300, 310, 40, 40).Translate(-200, 0)
	if r != NewRect(100, 310, 40, 40) {
		t.Errorf("Translate() = %+v", r)
	}
}

func TestRectScale(t *testing.T) {
	tests := []struct {
		name     string
		in       Rect
		ux, uy   float64
		expected Rect
	}{
		{"exact", NewRect(100, 300, 40, 40), 10, 20, NewRect(10, 15, 4, 2)},
		{"small box keeps a cell", NewRect(105, 305, 3, 3), 10, 20, NewRect(10, 15, 1, 1)},
		{"negative x floors", NewRect(-30, 0, 30, 20), 10, 20, NewRect(-3, 0, 3, 1)},
		{"zero units is identity", NewRect(7, 8, 9, 10), 0, 0, NewRect(7, 8, 9, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Scale(tc.ux, tc.uy); got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickDuration() <= 0 {
		t.Fatal("TickDuration() should be positive")
	}
	cfg.TickRate = 0
	if cfg.TickDuration() != DefaultConfig().TickDuration() {
		t.Error("TickDuration() should fall back to 60 Hz")
	}
}
