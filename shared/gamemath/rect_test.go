package gamemath

import "testing"

func TestOverlapsIsSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"same box", Rect{0, 0, 20, 20}, Rect{0, 0, 20, 20}, true},
		{"partial", Rect{0, 0, 20, 20}, Rect{10, 15, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{40, 40, 5, 5}, true},
		{"sub pixel", Rect{0.5, 0, 20, 20}, Rect{20.2, 0, 10, 10}, true},
		{"apart", Rect{0, 0, 20, 20}, Rect{50, 50, 10, 10}, false},
		{"touching right edge", Rect{0, 0, 20, 20}, Rect{20, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 20, 20}, Rect{0, 20, 10, 10}, false},
		{"touching corner", Rect{0, 0, 20, 20}, Rect{20, 20, 10, 10}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("b.Overlaps(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInside(t *testing.T) {
	if !(Rect{-5, 10, 10, 5}).Inside(800, 600) {
		t.Fatal("box straddling the left edge should count as inside")
	}
	if (Rect{-10, 10, 10, 5}).Inside(800, 600) {
		t.Fatal("box ending on the left edge should be outside")
	}
	if (Rect{100, 600, 10, 5}).Inside(800, 600) {
		t.Fatal("box below the area should be outside")
	}
}

func TestCenter(t *testing.T) {
	x, y := Rect{10, 20, 20, 40}.Center()
	if x != 20 || y != 40 {
		t.Fatalf("Center() = (%v, %v), want (20, 40)", x, y)
	}
}
