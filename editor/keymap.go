package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/modus/session"
)

// KeyMap defines which terminal keys produce the session's named keys.
//
// Letters are not bound here: the session interprets runes per mode.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Escape            key.Binding

	// Interrupt quits the program without going through the session.
	Interrupt key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode / quit")),

		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without saving")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Enter.Keys()) == 0 && len(km.Escape.Keys()) == 0
}

// Events classifies msg into session input events. Typed and pasted runes
// yield one event per rune; unbound keys yield a single KeyUnknown event.
func (km KeyMap) Events(msg tea.KeyMsg) []session.InputEvent {
	if k, ok := km.named(msg); ok {
		return []session.InputEvent{session.KeyEvent(k)}
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			break
		}
		out := make([]session.InputEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch r {
			case '\r':
				continue
			case '\n':
				out = append(out, session.KeyEvent(session.KeyEnter))
			default:
				out = append(out, session.RuneEvent(r))
			}
		}
		return out
	case tea.KeySpace:
		return []session.InputEvent{session.RuneEvent(' ')}
	case tea.KeyTab:
		return []session.InputEvent{session.RuneEvent('\t')}
	}
	return []session.InputEvent{session.KeyEvent(session.KeyUnknown)}
}

func (km KeyMap) named(msg tea.KeyMsg) (session.Key, bool) {
	switch {
	case key.Matches(msg, km.Left):
		return session.KeyLeft, true
	case key.Matches(msg, km.Right):
		return session.KeyRight, true
	case key.Matches(msg, km.Up):
		return session.KeyUp, true
	case key.Matches(msg, km.Down):
		return session.KeyDown, true
	case key.Matches(msg, km.Home):
		return session.KeyHome, true
	case key.Matches(msg, km.End):
		return session.KeyEnd, true
	case key.Matches(msg, km.PageUp):
		return session.KeyPageUp, true
	case key.Matches(msg, km.PageDown):
		return session.KeyPageDown, true
	case key.Matches(msg, km.Backspace):
		return session.KeyBackspace, true
	case key.Matches(msg, km.Delete):
		return session.KeyDelete, true
	case key.Matches(msg, km.Enter):
		return session.KeyEnter, true
	case key.Matches(msg, km.Escape):
		return session.KeyEscape, true
	}
	return session.KeyUnknown, false
}
