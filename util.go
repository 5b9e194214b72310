package svg2polylines

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when comparing coordinates for equality.
const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point is a coordinate pair in 2D space. Coordinates are kept exactly as
// parsed, no rounding is applied.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// PerpDot returns the cross product of P and Q, ie. the signed area of the
// parallelogram they span.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Interpolate returns a point on PQ at parameter t in [0,1].
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Polyline is an ordered sequence of points connected by straight line
// segments. The point order is the draw order.
type Polyline []Point

// Empty returns true if the polyline has fewer than two points and thus
// describes no line segment at all.
func (p Polyline) Empty() bool {
	return len(p) < 2
}

// Closed returns true if the last point coincides with the first.
func (p Polyline) Closed() bool {
	return 1 < len(p) && p[0].Equals(p[len(p)-1])
}

// Bounds returns the bounding box (xmin, ymin, xmax, ymax) over all points
// of all polylines.
func Bounds(lines []Polyline) (float64, float64, float64, float64) {
	first := true
	var x0, y0, x1, y1 float64
	for _, line := range lines {
		for _, point := range line {
			if first {
				x0, y0, x1, y1 = point.X, point.Y, point.X, point.Y
				first = false
				continue
			}
			x0 = math.Min(x0, point.X)
			y0 = math.Min(y0, point.Y)
			x1 = math.Max(x1, point.X)
			y1 = math.Max(y1, point.Y)
		}
	}
	return x0, y0, x1, y1
}
