// Package dxf writes polylines as a minimal ASCII DXF (R12) document for
// interchange with CAD tooling.
//
// SVG uses a y-down coordinate system while DXF is y-up, so every written
// y-coordinate is negated. Dropping the flip mirrors the drawing vertically.
package dxf

import (
	"fmt"
	"io"

	"github.com/tdewolff/minify/v2"

	"github.com/plotkit/svg2polylines"
)

// Precision is the number of decimals written for coordinates.
const Precision = 6

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	return string(minify.Decimal([]byte(s), Precision))
}

// Writer writes the polylines as the ENTITIES section of a DXF document.
// Two-point polylines become LINE entities, longer ones POLYLINE entities
// with one VERTEX per point. Polylines with fewer than two points are
// skipped.
func Writer(w io.Writer, lines []svg2polylines.Polyline) error {
	if _, err := fmt.Fprint(w, "0\nSECTION\n2\nENTITIES\n"); err != nil {
		return err
	}
	for _, line := range lines {
		if line.Empty() {
			continue
		}
		if len(line) == 2 {
			fmt.Fprintf(w, "0\nLINE\n8\n0\n10\n%v\n20\n%v\n11\n%v\n21\n%v\n",
				dec(line[0].X), dec(-line[0].Y), dec(line[1].X), dec(-line[1].Y))
			continue
		}
		fmt.Fprint(w, "0\nPOLYLINE\n8\n0\n66\n1\n")
		for _, point := range line {
			fmt.Fprintf(w, "0\nVERTEX\n8\n0\n10\n%v\n20\n%v\n", dec(point.X), dec(-point.Y))
		}
		fmt.Fprint(w, "0\nSEQEND\n")
	}
	_, err := fmt.Fprint(w, "0\nENDSEC\n0\nEOF\n")
	return err
}
