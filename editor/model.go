package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/modus/session"
)

// Model is a Bubble Tea component that renders and drives an editing
// session. The last screen row is the status line.
type Model struct {
	cfg  Config
	sess *session.Session

	width  int
	height int

	quitting bool
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{cfg: cfg}
	m.sess = session.New(cfg.Text, session.Options{
		Path:        cfg.Path,
		Storage:     cfg.Storage,
		Logger:      cfg.Logger,
		TabWidth:    cfg.TabWidth,
		LineNumbers: cfg.ShowLineNums,
	})
	return m
}

func (m Model) Session() *session.Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sizes the component. One row goes to the status line.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.sess.Resize(width, height-1)
	return m
}

// Quitting reports whether the model has asked the program to quit.
func (m Model) Quitting() bool { return m.quitting }
