package svg2polylines

import (
	"encoding/json"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	test.T(t, Point{1.0, 2.0}.Add(Point{3.0, 4.0}), Point{4.0, 6.0})
	test.T(t, Point{1.0, 2.0}.Sub(Point{3.0, 4.0}), Point{-2.0, -2.0})
	test.T(t, Point{1.0, 2.0}.Mul(2.0), Point{2.0, 4.0})
	test.Float(t, Point{1.0, 2.0}.PerpDot(Point{3.0, 4.0}), -2.0)
	test.T(t, Point{0.0, 0.0}.Interpolate(Point{10.0, 20.0}, 0.5), Point{5.0, 10.0})
	test.That(t, Point{1.0, 2.0}.Equals(Point{1.0 + 1e-12, 2.0}))
	test.That(t, !Point{1.0, 2.0}.Equals(Point{1.1, 2.0}))
	test.T(t, Point{1.0, 2.5}.String(), "(1,2.5)")
}

func TestPointJSON(t *testing.T) {
	b, err := json.Marshal(Point{1.5, 2.0})
	test.Error(t, err)
	test.String(t, string(b), `{"x":1.5,"y":2}`)
}

func TestPolyline(t *testing.T) {
	test.That(t, Polyline{}.Empty())
	test.That(t, Polyline{{1.0, 1.0}}.Empty())
	test.That(t, !Polyline{{1.0, 1.0}, {2.0, 2.0}}.Empty())

	test.That(t, !Polyline{{1.0, 1.0}, {2.0, 2.0}}.Closed())
	test.That(t, Polyline{{1.0, 1.0}, {2.0, 2.0}, {1.0, 1.0}}.Closed())
}

func TestBounds(t *testing.T) {
	x0, y0, x1, y1 := Bounds([]Polyline{
		{{1.0, 2.0}, {3.0, -4.0}},
		{{-5.0, 0.0}, {0.0, 6.0}},
	})
	test.Float(t, x0, -5.0)
	test.Float(t, y0, -4.0)
	test.Float(t, x1, 3.0)
	test.Float(t, y1, 6.0)
}
