// Package geometry provides the 2D primitives used to measure joint angles
// and segment alignment in image space.
//
// All functions operate on pixel-space coordinates with the image
// convention: y grows downward. Degenerate inputs (zero-length vectors,
// coincident line points) are reported through the ok return value rather
// than a numeric sentinel, so invalid geometry can never leak into an
// aggregate.
package geometry

import "math"

// Point is a 2D point in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Sub returns the vector p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// AngleAtVertex returns the angle in degrees between the rays b->a and b->c.
// The result is in [0, 180]. ok is false when either ray has zero length.
func AngleAtVertex(a, b, c Point) (deg float64, ok bool) {
	v1 := a.Sub(b)
	v2 := c.Sub(b)
	n1 := math.Hypot(v1.X, v1.Y)
	n2 := math.Hypot(v2.X, v2.Y)
	if n1 == 0 || n2 == 0 {
		return 0, false
	}
	cos := (v1.X*v2.X + v1.Y*v2.Y) / (n1 * n2)
	return math.Acos(clamp(cos)) * 180 / math.Pi, true
}

// AngleToVertical returns the angle in degrees between the vector b->a and
// the downward vertical axis: 0 when a sits directly below b, 180 when
// directly above. ok is false when a and b coincide.
func AngleToVertical(a, b Point) (deg float64, ok bool) {
	v := a.Sub(b)
	n := math.Hypot(v.X, v.Y)
	if n == 0 {
		return 0, false
	}
	// Dot product with the unit vector (0, 1).
	return math.Acos(clamp(v.Y/n)) * 180 / math.Pi, true
}

// AngleToHorizontal returns the angle in degrees between the vector b->a
// and the rightward horizontal axis. ok is false when a and b coincide.
func AngleToHorizontal(a, b Point) (deg float64, ok bool) {
	v := a.Sub(b)
	n := math.Hypot(v.X, v.Y)
	if n == 0 {
		return 0, false
	}
	return math.Acos(clamp(v.X/n)) * 180 / math.Pi, true
}

// DistPointToLine returns the perpendicular distance from p to the infinite
// line through a and b. ok is false when a and b coincide.
func DistPointToLine(p, a, b Point) (dist float64, ok bool) {
	ab := b.Sub(a)
	ap := p.Sub(a)
	denom := math.Hypot(ab.X, ab.Y)
	if denom == 0 {
		return 0, false
	}
	cross := ab.X*ap.Y - ab.Y*ap.X
	return math.Abs(cross) / denom, true
}

// clamp guards the acos argument against floating-point overshoot.
func clamp(cos float64) float64 {
	if cos > 1 {
		return 1
	}
	if cos < -1 {
		return -1
	}
	return cos
}
