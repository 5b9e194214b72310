package svg2polylines

import "math"

// currentLine buffers the polyline being accumulated for the subpath under
// construction. prevEnd holds the point a previous subpath was closed at,
// which is what a subsequent relative MoveTo resolves against.
type currentLine struct {
	line       Polyline
	prevEnd    Point
	hasPrevEnd bool

	// optional accumulation filter: drop points that stay within filterTol
	// of the last point in both axes
	filter    bool
	filterTol float64
}

// valid returns true when the line is worth keeping, ie. when it has more
// than one point.
func (l *currentLine) valid() bool {
	return 1 < len(l.line)
}

// last returns the most recently added point, if any.
func (l *currentLine) last() (Point, bool) {
	if len(l.line) == 0 {
		return Point{}, false
	}
	return l.line[len(l.line)-1], true
}

// addAbsolute appends a point in absolute coordinates.
func (l *currentLine) addAbsolute(p Point) {
	if l.filter && 0 < len(l.line) {
		last := l.line[len(l.line)-1]
		if math.Abs(p.X-last.X) <= l.filterTol && math.Abs(p.Y-last.Y) <= l.filterTol {
			return
		}
	}
	l.line = append(l.line, p)
}

// addRelative appends a point relative to the last point, or to the end of
// the previous subpath if the line is still empty, or as an absolute point
// when there is no reference point at all.
func (l *currentLine) addRelative(p Point) {
	if last, ok := l.last(); ok {
		l.addAbsolute(last.Add(p))
	} else if l.hasPrevEnd {
		l.addAbsolute(l.prevEnd.Add(p))
	} else {
		l.addAbsolute(p)
	}
}

func (l *currentLine) add(abs bool, p Point) {
	if abs {
		l.addAbsolute(p)
	} else {
		l.addRelative(p)
	}
}

// moveTo starts a new subpath at the given target, which becomes the sole
// point of the line. The caller must have committed the previous subpath
// first.
func (l *currentLine) moveTo(abs bool, p Point) {
	target := p
	if !abs {
		if last, ok := l.last(); ok {
			target = last.Add(p)
		} else if l.hasPrevEnd {
			target = l.prevEnd.Add(p)
		}
	}
	l.line = Polyline{target}
}

// close appends a copy of the first point and records it as the reference
// for a following relative MoveTo.
func (l *currentLine) close(cmd PathCommand) error {
	if len(l.line) < 2 {
		return &StateError{cmd, "cannot close a line with fewer than 2 points"}
	}
	first := l.line[0]
	l.line = append(l.line, first)
	l.prevEnd = first
	l.hasPrevEnd = true
	return nil
}

// finish returns the accumulated polyline and resets the line to empty. The
// previous subpath end point is kept.
func (l *currentLine) finish() Polyline {
	line := l.line
	l.line = nil
	return line
}
