package session

import "fmt"

// Key classifies an InputEvent.
type Key uint8

const (
	KeyUnknown Key = iota
	// KeyRune carries a printable character in InputEvent.Rune.
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyPageUp
	KeyPageDown

	keyCount
)

var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyRune:      "rune",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEscape:    "escape",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// InputEvent is one decoded keystroke.
type InputEvent struct {
	Key  Key
	Rune rune
}

// RuneEvent returns the event for typing r.
func RuneEvent(r rune) InputEvent { return InputEvent{Key: KeyRune, Rune: r} }

// KeyEvent returns the event for a named key.
func KeyEvent(k Key) InputEvent { return InputEvent{Key: k} }

func (e InputEvent) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("%q", e.Rune)
	}
	return e.Key.String()
}

// Printable reports whether e inserts text in INSERT mode. Tabs count as
// printable; other control characters do not.
func (e InputEvent) Printable() bool {
	if e.Key != KeyRune {
		return false
	}
	if e.Rune == '\t' {
		return true
	}
	return e.Rune >= 0x20 && e.Rune != 0x7f && (e.Rune < 0x80 || e.Rune > 0x9f)
}
