package session

import (
	"fmt"
	"path/filepath"

	"github.com/iw2rmb/modus/buffer"
	"github.com/iw2rmb/modus/internal/grapheme"
)

// Redraw hints which part of the screen changed since the previous
// RenderModel. Renderers that repaint everything may ignore it.
type Redraw uint8

const (
	// RedrawNone: nothing visible changed.
	RedrawNone Redraw = iota
	// RedrawCursor: only the cursor, mode or status line changed.
	RedrawCursor
	// RedrawLine: one visible row changed (RenderModel.RedrawRow), plus the
	// cursor and status line.
	RedrawLine
	// RedrawAll: repaint every row.
	RedrawAll
)

func (r Redraw) String() string {
	switch r {
	case RedrawNone:
		return "none"
	case RedrawCursor:
		return "cursor"
	case RedrawLine:
		return "line"
	case RedrawAll:
		return "all"
	default:
		return "unknown"
	}
}

// Row is one visible document line.
type Row struct {
	// Number is the 1-based document line number.
	Number int
	// Text is the visible part of the line: tabs expanded, clipped to the
	// viewport's horizontal window.
	Text string
}

// Status is the message shown on the status line.
type Status struct {
	Text string
	Err  bool
}

// RenderModel is the snapshot handed to the renderer after every event.
type RenderModel struct {
	Rows []Row

	// CursorRow and CursorCol locate the cursor on screen, relative to the
	// top-left corner of the editing area. CursorCol includes GutterWidth.
	CursorRow int
	CursorCol int
	Shape     CursorShape

	// GutterWidth is the width of the line-number gutter, 0 when disabled.
	GutterWidth int

	Mode      Mode
	Status    Status
	Path      string
	Dirty     bool
	Cursor    buffer.Pos
	LineCount int

	Redraw    Redraw
	RedrawRow int
}

// FileLabel names the document for a status line: the base name of Path
// ("[No Name]" when unset) with " [+]" while there are unsaved changes.
func (rm RenderModel) FileLabel() string {
	name := "[No Name]"
	if rm.Path != "" {
		name = filepath.Base(rm.Path)
	}
	if rm.Dirty {
		name += " [+]"
	}
	return name
}

// Position returns the 1-based "row:col" of the cursor.
func (rm RenderModel) Position() string {
	return fmt.Sprintf("%d:%d", rm.Cursor.Row+1, rm.Cursor.Col+1)
}

// LineNumberWidth returns the gutter width used for lineCount lines: the
// digits of the largest line number plus one separating space.
func LineNumberWidth(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount)) + 1
}

// GutterCell formats the gutter text for line number n at width w.
func GutterCell(n, w int) string {
	if w <= 0 {
		return ""
	}
	return fmt.Sprintf("%*d ", w-1, n)
}

// Render builds the snapshot of the current state.
func (s *Session) Render() RenderModel {
	gutter := s.gutterWidth()
	rm := RenderModel{
		Shape:       s.mode.Shape(),
		GutterWidth: gutter,
		Mode:        s.mode,
		Status:      s.status,
		Path:        s.path,
		Dirty:       s.Dirty(),
		Cursor:      s.cursor,
		LineCount:   s.buf.LineCount(),
		Redraw:      s.redraw,
		RedrawRow:   s.redrawRow,
	}

	end := minInt(s.vp.Bottom(), s.buf.LineCount()-1)
	rm.Rows = make([]Row, 0, end-s.vp.Top+1)
	for row := s.vp.Top; row <= end; row++ {
		rm.Rows = append(rm.Rows, Row{
			Number: row + 1,
			Text:   grapheme.Render(s.buf.LineRunes(row), s.tabWidth, s.vp.Left, s.vp.Width),
		})
	}

	rm.CursorRow = s.cursor.Row - s.vp.Top
	rm.CursorCol = gutter + s.cursorCell() - s.vp.Left
	return rm
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
