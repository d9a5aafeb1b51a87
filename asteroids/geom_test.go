package asteroids

import "testing"

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
	if d := Distance(2, 2, 2, 2); d != 0 {
		t.Errorf("expected 0, got %f", d)
	}
}

func TestWrapAroundLeavesTopLeft(t *testing.T) {
	x, y := WrapAround(-10, -10, 5, Bounds{W: 100, H: 100})
	if x != 105 || y != 105 {
		t.Errorf("expected (105, 105), got (%f, %f)", x, y)
	}
}

func TestWrapAroundLeavesBottomRight(t *testing.T) {
	x, y := WrapAround(110, 106, 5, Bounds{W: 100, H: 100})
	if x != -5 || y != -5 {
		t.Errorf("expected (-5, -5), got (%f, %f)", x, y)
	}
}

func TestWrapAroundAxesIndependent(t *testing.T) {
	x, y := WrapAround(-10, 50, 5, Bounds{W: 100, H: 100})
	if x != 105 || y != 50 {
		t.Errorf("expected only x to wrap, got (%f, %f)", x, y)
	}
}

func TestWrapAroundIdempotentInBounds(t *testing.T) {
	b := Bounds{W: 100, H: 100}
	points := [][2]float64{{50, 50}, {0, 0}, {-5, 105}, {100, 100}}
	for _, p := range points {
		x, y := WrapAround(p[0], p[1], 5, b)
		if x != p[0] || y != p[1] {
			t.Errorf("(%f, %f) should not move, got (%f, %f)", p[0], p[1], x, y)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("clamp out of range")
	}
}
