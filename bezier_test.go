package svg2polylines

import (
	"math"
	"reflect"
	"testing"

	"github.com/tdewolff/test"
)

func TestSplitCubicBezier(t *testing.T) {
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{0.0, 1.0}, Point{1.0, 1.0}, Point{1.0, 0.0}
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(p0, p1, p2, p3, 0.5)

	test.T(t, q0, p0)
	test.T(t, r3, p3)
	test.T(t, q3, r0) // both halves share the split point
	test.T(t, q1, Point{0.0, 0.5})
	test.T(t, q2, Point{0.25, 0.75})
	test.T(t, r0, Point{0.5, 0.75})
	test.T(t, r1, Point{0.75, 0.75})
	test.T(t, r2, Point{1.0, 0.5})
}

func TestQuadraticToCubicBezier(t *testing.T) {
	c1, c2 := quadraticToCubicBezier(Point{0.0, 0.0}, Point{3.0, 3.0}, Point{6.0, 0.0})
	test.That(t, c1.Equals(Point{2.0, 2.0}))
	test.That(t, c2.Equals(Point{4.0, 2.0}))
}

func TestFlattenCubicBezierDegenerate(t *testing.T) {
	// all control points collinear, a single segment suffices
	tests := []struct {
		p0, p1, p2, p3 Point
	}{
		{Point{0.0, 0.0}, Point{0.0, 0.0}, Point{10.0, 0.0}, Point{10.0, 0.0}},
		{Point{0.0, 0.0}, Point{1.0, 0.0}, Point{2.0, 0.0}, Point{3.0, 0.0}},
		{Point{0.0, 0.0}, Point{0.0, 0.0}, Point{0.0, 0.0}, Point{10.0, 10.0}},
	}
	for _, tt := range tests {
		line := flattenCubicBezier(tt.p0, tt.p1, tt.p2, tt.p3, DefaultFlatness)
		test.T(t, line, Polyline{tt.p3})
	}
}

func TestFlattenCubicBezier(t *testing.T) {
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{0.0, 10.0}, Point{10.0, 10.0}, Point{10.0, 0.0}
	line := flattenCubicBezier(p0, p1, p2, p3, DefaultFlatness)

	test.That(t, 2 <= len(line))
	test.T(t, line[len(line)-1], p3)
	for _, p := range line {
		// intermediate points are on the curve, within its control hull
		test.That(t, -Epsilon <= p.X && p.X <= 10.0+Epsilon)
		test.That(t, -Epsilon <= p.Y && p.Y <= 7.5+Epsilon) // curve maximum at t=0.5
	}

	// a coarser tolerance never needs more points
	coarse := flattenCubicBezier(p0, p1, p2, p3, 1.0)
	test.That(t, len(coarse) <= len(line))

	// deterministic for identical input
	again := flattenCubicBezier(p0, p1, p2, p3, DefaultFlatness)
	test.That(t, reflect.DeepEqual(line, again))
}

func TestFlattenCubicBezierInflection(t *testing.T) {
	// this curve has an inflection point at t=0.5
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{4.0, 4.0}, Point{0.0, 4.0}, Point{4.0, 0.0}
	line := flattenCubicBezier(p0, p1, p2, p3, DefaultFlatness)

	test.That(t, 1 <= len(line))
	test.T(t, line[len(line)-1], p3)
	for _, p := range line {
		test.That(t, !math.IsNaN(p.X) && !math.IsNaN(p.Y))
		test.That(t, !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0))
	}
}

func TestFlattenQuadraticBezier(t *testing.T) {
	line := flattenQuadraticBezier(Point{0.0, 0.0}, Point{5.0, 5.0}, Point{10.0, 0.0}, DefaultFlatness)
	test.That(t, 2 <= len(line))
	test.T(t, line[len(line)-1], Point{10.0, 0.0})
	for _, p := range line {
		test.That(t, -Epsilon <= p.Y && p.Y <= 2.5+Epsilon) // curve maximum at t=0.5
	}
}
