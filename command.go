package svg2polylines

import "fmt"

// CommandKind discriminates path commands scanned from SVG path data.
type CommandKind int

const (
	MoveToCmd CommandKind = iota
	LineToCmd
	HLineToCmd
	VLineToCmd
	CubeToCmd
	QuadToCmd
	CloseCmd
	UnsupportedCmd
)

func (kind CommandKind) String() string {
	switch kind {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case HLineToCmd:
		return "HorizontalLineTo"
	case VLineToCmd:
		return "VerticalLineTo"
	case CubeToCmd:
		return "CubeTo"
	case QuadToCmd:
		return "QuadTo"
	case CloseCmd:
		return "Close"
	case UnsupportedCmd:
		return "Unsupported"
	}
	return "Invalid"
}

// PathCommand is a single path command with its operands resolved from the
// SVG path grammar. Abs is true for uppercase command letters. Which operand
// fields are meaningful depends on Kind: MoveTo/LineTo/Close use X,Y;
// HorizontalLineTo uses X; VerticalLineTo uses Y; QuadTo adds the control
// point X1,Y1 and CubeTo the control points X1,Y1 and X2,Y2. Letter holds
// the command letter as written, which for UnsupportedCmd is the only
// information there is.
type PathCommand struct {
	Kind   CommandKind
	Abs    bool
	Letter byte

	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

func (cmd PathCommand) String() string {
	switch cmd.Kind {
	case HLineToCmd:
		return fmt.Sprintf("%s(%c %g)", cmd.Kind, cmd.Letter, cmd.X)
	case VLineToCmd:
		return fmt.Sprintf("%s(%c %g)", cmd.Kind, cmd.Letter, cmd.Y)
	case CubeToCmd:
		return fmt.Sprintf("%s(%c %g %g %g %g %g %g)", cmd.Kind, cmd.Letter, cmd.X1, cmd.Y1, cmd.X2, cmd.Y2, cmd.X, cmd.Y)
	case QuadToCmd:
		return fmt.Sprintf("%s(%c %g %g %g %g)", cmd.Kind, cmd.Letter, cmd.X1, cmd.Y1, cmd.X, cmd.Y)
	case CloseCmd, UnsupportedCmd:
		return fmt.Sprintf("%s(%c)", cmd.Kind, cmd.Letter)
	}
	return fmt.Sprintf("%s(%c %g %g)", cmd.Kind, cmd.Letter, cmd.X, cmd.Y)
}
