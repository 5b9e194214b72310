// Package svg2polylines converts the vector path data embedded in an SVG
// document into a set of polylines, for consumers such as pen plotters and
// drawing robots that only understand straight line segments.
//
// Path style (stroke, fill, transforms, units) is ignored completely; only
// the path geometry is returned. Quadratic and cubic Bézier segments are
// flattened into line segments within a configurable tolerance. Arcs and
// the smooth curve shorthands are not supported: a path element using them
// is skipped with its already completed subpaths kept.
package svg2polylines

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Parser converts SVG documents to polylines. The zero value is not usable,
// call NewParser and adjust fields before the first Parse call.
type Parser struct {
	// Flatness is the maximum deviation between a Bézier curve and the line
	// segments approximating it.
	Flatness float64

	// PreFilter drops points during accumulation that stay within
	// PreFilterTolerance of the last point in both axes. This thins out
	// flattened curves before any simplification pass, at the cost of
	// reducing the effective curve fidelity below Flatness. Off by default.
	PreFilter bool

	// PreFilterTolerance is the per-axis tolerance of PreFilter. When zero,
	// Flatness is used.
	PreFilterTolerance float64
}

// NewParser returns a parser with the default curve flatness and no
// accumulation filter.
func NewParser() *Parser {
	return &Parser{Flatness: DefaultFlatness}
}

// Parse reads an SVG document and returns the polylines of all path data in
// document order. Path elements that fail to parse are logged and skipped;
// an error in the document scanner aborts the whole parse and returns the
// polylines collected so far along with the error.
func Parse(r io.Reader) ([]Polyline, error) {
	return NewParser().Parse(r)
}

// ParseString is Parse on a string input.
func ParseString(svg string) ([]Polyline, error) {
	return NewParser().Parse(strings.NewReader(svg))
}

// Parse reads an SVG document and returns the polylines of all path data in
// document order.
func (p *Parser) Parse(r io.Reader) ([]Polyline, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	var lines []Polyline
	l := xml.NewLexer(z)
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return lines, l.Err()
			}
			return lines, nil
		case xml.AttributeToken:
			if string(l.Text()) != "d" {
				continue
			}
			val := l.AttrVal()
			if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
				val = val[1 : len(val)-1]
			}
			lines = append(lines, p.parsePath(val)...)
		}
	}
}

// parsePath converts the data of one d attribute to polylines. On any error
// the element is abandoned: the error is logged and only the subpaths
// completed before it are returned.
func (p *Parser) parsePath(d []byte) []Polyline {
	Logger().Debug("parsing path element", "d", string(d))

	var lines []Polyline
	line := currentLine{filter: p.PreFilter, filterTol: p.PreFilterTolerance}
	if line.filter && line.filterTol == 0.0 {
		line.filterTol = p.Flatness
	}

	s := NewPathScanner(d)
	for s.Scan() {
		if err := p.command(&line, &lines, s.Command()); err != nil {
			Logger().Warn("skipping path element", "error", err)
			return lines
		}
	}
	if err := s.Err(); err != nil {
		Logger().Warn("skipping path element", "error", err)
		return lines
	}

	// end of stream, keep the line being accumulated if it is valid
	if line.valid() {
		lines = append(lines, line.finish())
	}
	return lines
}

// command applies a single path command to the accumulator state.
func (p *Parser) command(line *currentLine, lines *[]Polyline, cmd PathCommand) error {
	switch cmd.Kind {
	case MoveToCmd:
		if line.valid() {
			*lines = append(*lines, line.finish())
		}
		line.moveTo(cmd.Abs, Point{cmd.X, cmd.Y})
	case LineToCmd:
		line.add(cmd.Abs, Point{cmd.X, cmd.Y})
	case HLineToCmd:
		last, ok := line.last()
		if !ok {
			return &StateError{cmd, "horizontal line with no current point"}
		}
		if cmd.Abs {
			line.addAbsolute(Point{cmd.X, last.Y})
		} else {
			line.addRelative(Point{cmd.X, 0.0})
		}
	case VLineToCmd:
		last, ok := line.last()
		if !ok {
			return &StateError{cmd, "vertical line with no current point"}
		}
		if cmd.Abs {
			line.addAbsolute(Point{last.X, cmd.Y})
		} else {
			line.addRelative(Point{0.0, cmd.Y})
		}
	case CubeToCmd:
		from, ok := line.last()
		if !ok {
			return &StateError{cmd, "curve with no current point"}
		}
		cp1 := Point{cmd.X1, cmd.Y1}
		cp2 := Point{cmd.X2, cmd.Y2}
		to := Point{cmd.X, cmd.Y}
		if !cmd.Abs {
			cp1 = from.Add(cp1)
			cp2 = from.Add(cp2)
			to = from.Add(to)
		}
		for _, point := range flattenCubicBezier(from, cp1, cp2, to, p.Flatness) {
			line.addAbsolute(point)
		}
	case QuadToCmd:
		from, ok := line.last()
		if !ok {
			return &StateError{cmd, "curve with no current point"}
		}
		cp := Point{cmd.X1, cmd.Y1}
		to := Point{cmd.X, cmd.Y}
		if !cmd.Abs {
			cp = from.Add(cp)
			to = from.Add(to)
		}
		for _, point := range flattenQuadraticBezier(from, cp, to, p.Flatness) {
			line.addAbsolute(point)
		}
	case CloseCmd:
		return line.close(cmd)
	case UnsupportedCmd:
		return &UnsupportedError{cmd.Letter}
	}
	return nil
}
