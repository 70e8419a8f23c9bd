package logging

// TextPosition represents a positional range in the source text.  Lines and
// columns are 1-based as the parsing stage reports them.
type TextPosition struct {
	StartLn, StartCol int // starting line, starting column
	EndLn, EndCol     int // ending line, column trailing the last character
}

// NewPosition creates a text position covering a single point.
func NewPosition(line, col int) *TextPosition {
	return &TextPosition{StartLn: line, StartCol: col, EndLn: line, EndCol: col + 1}
}

// TextPositionFromRange takes two positions and computes the text position
// spanning them.
func TextPositionFromRange(start, end *TextPosition) *TextPosition {
	return &TextPosition{
		StartLn:  start.StartLn,
		StartCol: start.StartCol,
		EndLn:    end.EndLn,
		EndCol:   end.EndCol,
	}
}

// Before reports whether this position starts before the other one.  A nil
// position sorts before everything.
func (tp *TextPosition) Before(other *TextPosition) bool {
	if tp == nil {
		return other != nil
	} else if other == nil {
		return false
	}

	if tp.StartLn != other.StartLn {
		return tp.StartLn < other.StartLn
	}

	return tp.StartCol < other.StartCol
}
