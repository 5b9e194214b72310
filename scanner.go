package svg2polylines

import (
	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func isCommandLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// PathScanner scans the data of one d attribute into a sequence of path
// commands. A scanner cannot be rewound, create a new one to scan again.
type PathScanner struct {
	path []byte
	i    int

	prevCmd byte
	cmd     PathCommand
	stopped bool
	err     error
}

// NewPathScanner returns a scanner over the given path data.
func NewPathScanner(path []byte) *PathScanner {
	return &PathScanner{path: path}
}

// Scan advances to the next path command. It returns false when the data is
// exhausted, after the first lexical error, or after an unsupported command
// was returned.
func (s *PathScanner) Scan() bool {
	if s.err != nil || s.stopped {
		return false
	}
	s.i += skipCommaWhitespace(s.path[s.i:])
	if len(s.path) <= s.i {
		return false
	}

	cmd := s.path[s.i]
	if isCommandLetter(cmd) {
		s.i++
		s.prevCmd = cmd
	} else {
		// a bare operand group repeats the previous command, except after
		// MoveTo where the SVG grammar makes it an implicit LineTo
		switch s.prevCmd {
		case 0:
			s.err = &LexerError{s.i, "expected command letter"}
			return false
		case 'M':
			s.prevCmd = 'L'
		case 'm':
			s.prevCmd = 'l'
		case 'Z', 'z':
			s.err = &LexerError{s.i, "coordinates after close path"}
			return false
		}
		cmd = s.prevCmd
	}

	abs := cmd < 'a'
	switch cmd {
	case 'M', 'm':
		s.cmd = PathCommand{Kind: MoveToCmd, Abs: abs, Letter: cmd}
		s.cmd.X = s.parseNum()
		s.cmd.Y = s.parseNum()
	case 'L', 'l':
		s.cmd = PathCommand{Kind: LineToCmd, Abs: abs, Letter: cmd}
		s.cmd.X = s.parseNum()
		s.cmd.Y = s.parseNum()
	case 'H', 'h':
		s.cmd = PathCommand{Kind: HLineToCmd, Abs: abs, Letter: cmd}
		s.cmd.X = s.parseNum()
	case 'V', 'v':
		s.cmd = PathCommand{Kind: VLineToCmd, Abs: abs, Letter: cmd}
		s.cmd.Y = s.parseNum()
	case 'C', 'c':
		s.cmd = PathCommand{Kind: CubeToCmd, Abs: abs, Letter: cmd}
		s.cmd.X1 = s.parseNum()
		s.cmd.Y1 = s.parseNum()
		s.cmd.X2 = s.parseNum()
		s.cmd.Y2 = s.parseNum()
		s.cmd.X = s.parseNum()
		s.cmd.Y = s.parseNum()
	case 'Q', 'q':
		s.cmd = PathCommand{Kind: QuadToCmd, Abs: abs, Letter: cmd}
		s.cmd.X1 = s.parseNum()
		s.cmd.Y1 = s.parseNum()
		s.cmd.X = s.parseNum()
		s.cmd.Y = s.parseNum()
	case 'Z', 'z':
		s.cmd = PathCommand{Kind: CloseCmd, Abs: abs, Letter: cmd}
	default:
		// arcs, smooth shorthands and unknown letters: the operand count is
		// unknown, so scanning cannot continue past this command
		s.cmd = PathCommand{Kind: UnsupportedCmd, Abs: abs, Letter: cmd}
		s.stopped = true
	}
	return s.err == nil
}

// Command returns the last scanned path command.
func (s *PathScanner) Command() PathCommand {
	return s.cmd
}

// Err returns the first lexical error encountered, if any.
func (s *PathScanner) Err() error {
	return s.err
}

func (s *PathScanner) parseNum() float64 {
	if s.err != nil {
		return 0.0
	}
	s.i += skipCommaWhitespace(s.path[s.i:])
	f, n := strconv.ParseFloat(s.path[s.i:])
	if n == 0 {
		s.err = &LexerError{s.i, "expected number"}
		return 0.0
	}
	s.i += n
	return f
}
