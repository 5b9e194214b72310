package svg2polylines

import "fmt"

// LexerError is returned when the path data of a single element contains a
// malformed numeric operand or starts without a command letter. It aborts
// parsing of that element only.
type LexerError struct {
	Pos int // byte offset into the path data
	Msg string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("bad path data at position %d: %s", e.Pos, e.Msg)
}

// StateError is returned when a positional command arrives in a state it
// cannot be resolved in, such as a horizontal line before any current point
// or a close on fewer than two points. It aborts parsing of that element
// only.
type StateError struct {
	Cmd PathCommand
	Msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state: %s: %s", e.Msg, e.Cmd)
}

// UnsupportedError is returned for recognized but unimplemented path
// commands such as arcs and the smooth curve shorthands. It aborts parsing
// of that element only.
type UnsupportedError struct {
	Letter byte
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported path command %q", e.Letter)
}
