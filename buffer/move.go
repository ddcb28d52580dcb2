package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirLineStart
	DirLineEnd
)

func (d MoveDir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLineStart:
		return "line-start"
	case DirLineEnd:
		return "line-end"
	default:
		return "unknown"
	}
}

// Move returns the position reached from p in direction dir. It never
// mutates the buffer and always returns a valid position.
//
// Horizontal moves clamp at column 0 and at the line length; they never
// wrap onto adjacent lines. Vertical moves keep p.Col when the target line
// is long enough and clamp it otherwise, so p.Col may carry a goal column
// beyond the current line's length.
func (b *Buffer) Move(p Pos, dir MoveDir) Pos {
	row := clamp(p.Row, 0, len(b.lines)-1)
	col := p.Col
	if col < 0 {
		col = 0
	}
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		col = min(col, len(b.lines[row]))
		if col > 0 {
			col--
		}
		return Pos{Row: row, Col: col}
	case DirRight:
		col = min(col, len(b.lines[row]))
		if col < len(b.lines[row]) {
			col++
		}
		return Pos{Row: row, Col: col}
	case DirUp:
		if row > 0 {
			row--
		}
		return Pos{Row: row, Col: min(col, len(b.lines[row]))}
	case DirDown:
		if row < lastRow {
			row++
		}
		return Pos{Row: row, Col: min(col, len(b.lines[row]))}
	case DirLineStart:
		return Pos{Row: row, Col: 0}
	case DirLineEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	default:
		return b.ClampPos(p)
	}
}
