package asteroids

import "math"

// polyEpsilon keeps horizontal edges from dividing by zero
const polyEpsilon = 0.000001

// CheckCollision checks if two circles overlap
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	radSum := r1 + r2
	return dx*dx+dy*dy < radSum*radSum
}

// PointInPolygon is an even-odd ray cast. Points exactly on an edge may land
// either way.
func PointInPolygon(p Vec, poly Polygon) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi+polyEpsilon)+xi {
			inside = !inside
		}
	}
	return inside
}

// PolygonsIntersect runs a separating-axis test using every edge normal of
// both outlines. Only exact for convex shapes; asteroid outlines can be
// concave and are tested as if they were not.
func PolygonsIntersect(a, b Polygon) bool {
	for _, poly := range [2]Polygon{a, b} {
		n := len(poly)
		for i := 0; i < n; i++ {
			p1 := poly[i]
			p2 := poly[(i+1)%n]
			normal := Vec{X: p2.Y - p1.Y, Y: p1.X - p2.X}

			minA, maxA := project(a, normal)
			minB, maxB := project(b, normal)
			if maxA < minB || maxB < minA {
				return false
			}
		}
	}
	return true
}

func project(poly Polygon, axis Vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		d := axis.X*p.X + axis.Y*p.Y
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
