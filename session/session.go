package session

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/modus/buffer"
	"github.com/iw2rmb/modus/internal/grapheme"
)

// DefaultTabWidth is used when Options.TabWidth is not set.
const DefaultTabWidth = 4

// Signal tells the caller of Step whether to keep going.
type Signal uint8

const (
	SignalContinue Signal = iota
	SignalQuit
)

// InputSource produces keystrokes. Next blocks until an event is available.
type InputSource interface {
	Next(ctx context.Context) (InputEvent, error)
}

// Renderer paints a RenderModel.
type Renderer interface {
	Render(RenderModel) error
}

// Storage persists the document.
type Storage interface {
	Save(path, text string) error
}

// Options configures a Session.
type Options struct {
	// Path names the document for saving and display.
	Path    string
	Storage Storage
	Logger  *log.Logger

	TabWidth    int
	LineNumbers bool

	// Width and Height size the editing area in terminal cells. A zero
	// Width disables horizontal clipping.
	Width  int
	Height int
}

// Session is one editing session over one document.
type Session struct {
	buf     *buffer.Buffer
	cursor  buffer.Pos
	goalCol int
	vp      Viewport
	mode    Mode

	path    string
	storage Storage
	log     *log.Logger

	tabWidth    int
	lineNumbers bool
	width       int

	savedVersion uint64
	status       Status

	redraw    Redraw
	redrawRow int
	// resized forces the next step to report RedrawAll.
	resized bool
}

// New starts a session on text with the cursor at (0,0) in NORMAL mode.
func New(text string, opt Options) *Session {
	if opt.TabWidth <= 0 {
		opt.TabWidth = DefaultTabWidth
	}
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		buf:         buffer.New(text),
		mode:        ModeNormal,
		path:        opt.Path,
		storage:     opt.Storage,
		log:         logger,
		tabWidth:    opt.TabWidth,
		lineNumbers: opt.LineNumbers,
		redraw:      RedrawAll,
	}
	s.savedVersion = s.buf.Version()
	s.Resize(opt.Width, opt.Height)
	s.resized = false
	return s
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Cursor() buffer.Pos { return s.cursor }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Viewport() Viewport { return s.vp }

func (s *Session) Path() string { return s.path }

func (s *Session) Status() Status { return s.status }

// Dirty reports whether the buffer changed since it was loaded or saved.
func (s *Session) Dirty() bool { return s.buf.Version() != s.savedVersion }

// Resize sets the editing area size. The gutter, when enabled, is taken
// from width.
func (s *Session) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	s.width = width
	s.vp.Resize(s.textWidth(), height)
	s.follow()
	s.redraw = RedrawAll
	s.resized = true
}

// Step processes one keystroke to completion.
func (s *Session) Step(ev InputEvent) Signal {
	before := s.frame()

	intents := Translate(s.mode, ev)
	if len(intents) == 0 {
		s.log.Debug("key ignored", "mode", s.mode, "key", ev)
	}

	sig := SignalContinue
	for _, in := range intents {
		if s.apply(in) == SignalQuit {
			sig = SignalQuit
			break
		}
	}

	if s.buf.Version() != before.version {
		s.status = Status{}
	}
	s.follow()
	s.redraw, s.redrawRow = s.redrawSince(before)
	if s.resized {
		s.redraw, s.redrawRow = RedrawAll, 0
		s.resized = false
	}
	return sig
}

// Run renders the initial state, then processes events until a quit
// signal, a context cancellation, or an input or render failure.
func (s *Session) Run(ctx context.Context, in InputSource, out Renderer) error {
	s.redraw = RedrawAll
	if err := out.Render(s.Render()); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := in.Next(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("read input: %w", err)
		}

		if s.Step(ev) == SignalQuit {
			return nil
		}
		if err := out.Render(s.Render()); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
}

func (s *Session) apply(in Intent) Signal {
	switch in.Kind {
	case IntentMove:
		s.move(in.Move)
	case IntentPage:
		s.page(in.Page)
	case IntentSetMode:
		s.setMode(in.Mode)
	case IntentInsert:
		s.setCursor(s.buf.InsertChar(s.cursor.Row, s.cursor.Col, in.Rune))
	case IntentSplitLine:
		s.setCursor(s.buf.SplitLine(s.cursor.Row, s.cursor.Col))
	case IntentDeleteBefore:
		s.setCursor(s.buf.DeleteCharBefore(s.cursor.Row, s.cursor.Col))
	case IntentDeleteAt:
		s.buf.DeleteCharAt(s.cursor.Row, s.cursor.Col)
		s.cursor = s.buf.ClampPos(s.cursor)
	case IntentSave:
		s.save()
	case IntentQuit:
		if s.Dirty() {
			s.log.Warn("quitting with unsaved changes", "path", s.path)
		}
		return SignalQuit
	}
	return SignalContinue
}

func (s *Session) setCursor(p buffer.Pos) {
	s.cursor = s.buf.ClampPos(p)
	s.goalCol = s.cursor.Col
}

func (s *Session) move(dir buffer.MoveDir) {
	switch dir {
	case buffer.DirUp, buffer.DirDown:
		s.cursor = s.buf.Move(buffer.Pos{Row: s.cursor.Row, Col: s.goalCol}, dir)
	default:
		s.setCursor(s.buf.Move(s.cursor, dir))
	}
}

func (s *Session) page(dir PageDir) {
	n := s.buf.LineCount()
	s.vp.Page(dir, n)
	row := s.vp.ClampRow(s.cursor.Row, n)
	if row == s.cursor.Row {
		return
	}
	s.cursor = s.buf.ClampPos(buffer.Pos{Row: row, Col: s.goalCol})
}

func (s *Session) setMode(m Mode) {
	if m == s.mode {
		return
	}
	s.log.Debug("mode change", "from", s.mode, "to", m)
	s.mode = m
}

func (s *Session) save() {
	if s.storage == nil {
		s.status = Status{Text: "no storage configured", Err: true}
		return
	}

	if err := s.storage.Save(s.path, s.buf.Text()); err != nil {
		s.log.Error("save failed", "path", s.path, "err", err)
		s.status = Status{Text: fmt.Sprintf("save failed: %v", err), Err: true}
		return
	}

	s.savedVersion = s.buf.Version()
	s.log.Info("saved", "path", s.path, "lines", s.buf.LineCount())
	s.status = Status{Text: fmt.Sprintf("%q %dL written", s.path, s.buf.LineCount())}
}

func (s *Session) gutterWidth() int {
	if !s.lineNumbers {
		return 0
	}
	return LineNumberWidth(s.buf.LineCount())
}

func (s *Session) textWidth() int {
	if s.width <= 0 {
		return 0
	}
	return maxInt(1, s.width-s.gutterWidth())
}

func (s *Session) cursorCell() int {
	return grapheme.CellOffset(s.buf.LineRunes(s.cursor.Row), s.cursor.Col, s.tabWidth)
}

func (s *Session) follow() {
	s.vp.Width = s.textWidth()
	s.vp.Follow(s.cursor.Row, s.buf.LineCount())
	s.vp.FollowColumn(s.cursorCell())
}

type frame struct {
	version   uint64
	top       int
	left      int
	lineCount int
	gutter    int
	cursor    buffer.Pos
	mode      Mode
	status    Status
	dirty     bool
}

func (s *Session) frame() frame {
	return frame{
		version:   s.buf.Version(),
		top:       s.vp.Top,
		left:      s.vp.Left,
		lineCount: s.buf.LineCount(),
		gutter:    s.gutterWidth(),
		cursor:    s.cursor,
		mode:      s.mode,
		status:    s.status,
		dirty:     s.Dirty(),
	}
}

func (s *Session) redrawSince(before frame) (Redraw, int) {
	after := s.frame()
	if after.top != before.top || after.left != before.left ||
		after.lineCount != before.lineCount || after.gutter != before.gutter {
		return RedrawAll, 0
	}
	if after.version != before.version {
		ch, ok := s.buf.LastChange()
		if !ok || ch.Kind.Structural() || !s.vp.Contains(ch.Row) {
			return RedrawAll, 0
		}
		return RedrawLine, ch.Row - s.vp.Top
	}
	if after != before {
		return RedrawCursor, 0
	}
	return RedrawNone, 0
}
