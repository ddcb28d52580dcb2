package editor

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/modus/session"
)

// Config configures the editor Model.
type Config struct {
	// Initial document text. Line breaks are '\n'.
	Text string

	// Path names the document for saving and the status line.
	Path    string
	Storage session.Storage
	Logger  *log.Logger

	// Rendering options.
	ShowLineNums bool
	TabWidth     int
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap

	// OnChange is called after a key changes the document, the cursor or
	// the mode.
	OnChange func(ChangeEvent)
}
