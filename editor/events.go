package editor

import (
	"github.com/iw2rmb/modus/buffer"
	"github.com/iw2rmb/modus/session"
)

// ChangeEvent reports the session state after a key changed it.
type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	Mode    session.Mode
	Dirty   bool

	// Text is the whole document.
	Text string
}

type changeState struct {
	version uint64
	cursor  buffer.Pos
	mode    session.Mode
}

func (m Model) changeState() changeState {
	return changeState{
		version: m.sess.Buffer().Version(),
		cursor:  m.sess.Cursor(),
		mode:    m.sess.Mode(),
	}
}

func (m Model) notifyChange(before changeState) {
	if m.cfg.OnChange == nil || m.changeState() == before {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.sess))
}

func buildChangeEvent(s *session.Session) ChangeEvent {
	return ChangeEvent{
		Version: s.Buffer().Version(),
		Cursor:  s.Cursor(),
		Mode:    s.Mode(),
		Dirty:   s.Dirty(),
		Text:    s.Buffer().Text(),
	}
}
