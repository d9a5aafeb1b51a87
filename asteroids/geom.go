package asteroids

import "math"

// Vec is a 2D position or velocity in field pixels. y grows downward.
type Vec struct {
	X float64 `msgpack:"x" json:"x"`
	Y float64 `msgpack:"y" json:"y"`
}

// Polygon is a closed outline; the last vertex connects back to the first
type Polygon []Vec

// Bounds is the size of the playfield
type Bounds struct {
	W, H float64
}

// Centre returns the midpoint of the field
func (b Bounds) Centre() Vec {
	return Vec{X: b.W / 2, Y: b.H / 2}
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// WrapAround teleports a body of radius r that has fully left one side of
// the field to just outside the opposite side. x and y wrap independently.
func WrapAround(x, y, r float64, b Bounds) (float64, float64) {
	if x < -r {
		x = b.W + r
	} else if x > b.W+r {
		x = -r
	}
	if y < -r {
		y = b.H + r
	} else if y > b.H+r {
		y = -r
	}
	return x, y
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
