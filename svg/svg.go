// Package svg writes polylines as an SVG document, mainly useful to preview
// conversion results in a browser.
package svg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"

	"github.com/plotkit/svg2polylines"
)

// Precision is the number of significant digits written for coordinates.
const Precision = 6

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// Writer writes the polylines as an SVG document with a viewBox fitted to
// their bounding box. Each polyline becomes one path element drawn as a
// move-to followed by line-tos; polylines with fewer than two points are
// skipped.
func Writer(w io.Writer, lines []svg2polylines.Polyline) error {
	x0, y0, x1, y1 := svg2polylines.Bounds(lines)
	if _, err := fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="%v %v %v %v" xmlns="http://www.w3.org/2000/svg">`, num(x1-x0), num(y1-y0), num(x0), num(y0), num(x1-x0), num(y1-y0)); err != nil {
		return err
	}
	for _, line := range lines {
		if line.Empty() {
			continue
		}
		fmt.Fprintf(w, `<path d="`)
		for i, point := range line {
			if i == 0 {
				fmt.Fprintf(w, "M%v %v", num(point.X), num(point.Y))
			} else {
				fmt.Fprintf(w, "L%v %v", num(point.X), num(point.Y))
			}
		}
		fmt.Fprintf(w, `" fill="none" stroke="black"/>`)
	}
	_, err := fmt.Fprintf(w, "</svg>")
	return err
}
