package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/modus/session"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if key.Matches(msg, m.cfg.KeyMap.Interrupt) {
		if m.sess.Dirty() && m.cfg.Logger != nil {
			m.cfg.Logger.Warn("interrupted with unsaved changes", "path", m.sess.Path())
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Pasted text is only ever inserted, never run as commands.
	if msg.Paste && m.sess.Mode() != session.ModeInsert {
		return m, nil
	}

	before := m.changeState()
	for _, ev := range m.cfg.KeyMap.Events(msg) {
		if m.sess.Step(ev) == session.SignalQuit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	m.notifyChange(before)
	return m, nil
}
