package session

// Mode is the active interpretation context for keystrokes.
type Mode uint8

const (
	// ModeNormal interprets keys as movement and commands.
	ModeNormal Mode = iota
	// ModeInsert inserts printable keys into the buffer.
	ModeInsert
	// ModeSelection is reserved. No key enters it and every key is ignored
	// while it is active.
	ModeSelection
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeSelection:
		return "SELECTION"
	default:
		return "UNKNOWN"
	}
}

// CursorShape tells the renderer how to draw the cursor.
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorLine
	CursorUnderscore
)

func (c CursorShape) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorLine:
		return "line"
	case CursorUnderscore:
		return "underscore"
	default:
		return "unknown"
	}
}

// Shape returns the cursor shape used while m is active.
func (m Mode) Shape() CursorShape {
	switch m {
	case ModeInsert:
		return CursorLine
	case ModeSelection:
		return CursorUnderscore
	default:
		return CursorBlock
	}
}
