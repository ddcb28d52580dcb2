package session

import "github.com/iw2rmb/modus/buffer"

// IntentKind identifies the semantic action requested by a keystroke.
type IntentKind uint8

const (
	IntentMove IntentKind = iota
	IntentPage
	IntentSetMode
	IntentInsert
	IntentSplitLine
	IntentDeleteBefore
	IntentDeleteAt
	IntentSave
	IntentQuit
)

func (k IntentKind) String() string {
	switch k {
	case IntentMove:
		return "move"
	case IntentPage:
		return "page"
	case IntentSetMode:
		return "set-mode"
	case IntentInsert:
		return "insert"
	case IntentSplitLine:
		return "split-line"
	case IntentDeleteBefore:
		return "delete-before"
	case IntentDeleteAt:
		return "delete-at"
	case IntentSave:
		return "save"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// PageDir is the direction of a page command.
type PageDir int8

const (
	PageUp   PageDir = -1
	PageDown PageDir = 1
)

// Intent is a typed action produced by Translate. Only the fields relevant
// to Kind are set.
type Intent struct {
	Kind IntentKind
	Move buffer.MoveDir // IntentMove
	Page PageDir        // IntentPage
	Mode Mode           // IntentSetMode
	Rune rune           // IntentInsert
}

func moveIntent(dir buffer.MoveDir) Intent { return Intent{Kind: IntentMove, Move: dir} }

func pageIntent(dir PageDir) Intent { return Intent{Kind: IntentPage, Page: dir} }

func modeIntent(m Mode) Intent { return Intent{Kind: IntentSetMode, Mode: m} }
