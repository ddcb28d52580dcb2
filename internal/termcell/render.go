package termcell

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/modus/internal/grapheme"
	"github.com/iw2rmb/modus/session"
)

// Palette holds the configurable colors as ANSI numbers, names or hex.
type Palette struct {
	Gutter        string
	LineNumActive string
	StatusBar     string
	StatusError   string
}

// Theme is the set of cell styles used by the Renderer.
type Theme struct {
	Text          tcell.Style
	LineNum       tcell.Style
	LineNumActive tcell.Style
	Filler        tcell.Style
	StatusBar     tcell.Style
	StatusMode    tcell.Style
	StatusError   tcell.Style
}

// Color parses an ANSI palette number ("240") or anything tcell.GetColor
// accepts ("red", "#ff8800"). Unknown strings yield tcell.ColorDefault.
func Color(s string) tcell.Color {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < 256 {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(s)
}

func PaletteTheme(p Palette) Theme {
	gutter := tcell.StyleDefault.Foreground(Color(p.Gutter))
	bar := tcell.StyleDefault.Background(Color(p.StatusBar))
	return Theme{
		Text:          tcell.StyleDefault,
		LineNum:       gutter,
		LineNumActive: tcell.StyleDefault.Foreground(Color(p.LineNumActive)).Bold(true),
		Filler:        gutter,
		StatusBar:     bar,
		StatusMode:    bar.Bold(true),
		StatusError:   bar.Foreground(Color(p.StatusError)),
	}
}

// Renderer paints RenderModels onto a tcell.Screen. It implements
// session.Renderer and repaints only what the model's Redraw hint names.
// The editing area is every row but the last, which holds the status line.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

func (r *Renderer) Render(rm session.RenderModel) error {
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return nil
	}
	textRows := height - 1

	switch rm.Redraw {
	case session.RedrawAll:
		r.screen.Clear()
		for y := 0; y < textRows; y++ {
			r.drawRow(rm, y, width)
		}
	case session.RedrawLine:
		if rm.RedrawRow >= 0 && rm.RedrawRow < textRows {
			r.drawRow(rm, rm.RedrawRow, width)
		}
		r.drawGutters(rm, textRows)
	case session.RedrawCursor:
		r.drawGutters(rm, textRows)
	}

	r.drawStatus(rm, height-1, width)
	r.placeCursor(rm, textRows)
	r.screen.Show()
	return nil
}

func (r *Renderer) drawRow(rm session.RenderModel, y, width int) {
	if y >= len(rm.Rows) {
		x := r.put(0, y, "~", r.theme.Filler)
		r.fill(x, y, width, r.theme.Text)
		return
	}
	r.drawGutter(rm, y)

	end := rm.GutterWidth
	for _, c := range grapheme.Layout([]rune(rm.Rows[y].Text), 1) {
		x := rm.GutterWidth + c.Start
		if x+c.Width > width {
			break
		}
		r.setCell(x, y, c.Text, r.theme.Text)
		end = x + c.Width
	}
	r.fill(end, y, width, r.theme.Text)
}

func (r *Renderer) drawGutters(rm session.RenderModel, textRows int) {
	for y := 0; y < textRows && y < len(rm.Rows); y++ {
		r.drawGutter(rm, y)
	}
}

func (r *Renderer) drawGutter(rm session.RenderModel, y int) {
	if rm.GutterWidth <= 0 {
		return
	}
	st := r.theme.LineNum
	if y == rm.CursorRow {
		st = r.theme.LineNumActive
	}
	r.put(0, y, session.GutterCell(rm.Rows[y].Number, rm.GutterWidth), st)
}

func (r *Renderer) drawStatus(rm session.RenderModel, y, width int) {
	x := r.put(0, y, " "+rm.Mode.String()+" ", r.theme.StatusMode)
	x = r.put(x, y, " "+rm.FileLabel(), r.theme.StatusBar)
	if rm.Status.Text != "" {
		st := r.theme.StatusBar
		if rm.Status.Err {
			st = r.theme.StatusError
		}
		x = r.put(x, y, "  ", r.theme.StatusBar)
		x = r.put(x, y, rm.Status.Text, st)
	}
	r.fill(x, y, width, r.theme.StatusBar)

	pos := rm.Position() + " "
	if px := width - len(pos); px > x {
		r.put(px, y, pos, r.theme.StatusBar)
	}
}

func (r *Renderer) placeCursor(rm session.RenderModel, textRows int) {
	if rm.CursorRow < 0 || rm.CursorRow >= textRows {
		r.screen.HideCursor()
		return
	}
	r.screen.SetCursorStyle(cursorStyle(rm.Shape))
	r.screen.ShowCursor(rm.CursorCol, rm.CursorRow)
}

func cursorStyle(shape session.CursorShape) tcell.CursorStyle {
	switch shape {
	case session.CursorLine:
		return tcell.CursorStyleSteadyBar
	case session.CursorUnderscore:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}

// put draws s from x and returns the column after it.
func (r *Renderer) put(x, y int, s string, st tcell.Style) int {
	for _, c := range grapheme.Layout([]rune(s), 1) {
		r.setCell(x+c.Start, y, c.Text, st)
	}
	return x + grapheme.CellOffset([]rune(s), len([]rune(s)), 1)
}

func (r *Renderer) setCell(x, y int, cluster string, st tcell.Style) {
	runes := []rune(cluster)
	r.screen.SetContent(x, y, runes[0], runes[1:], st)
}

func (r *Renderer) fill(from, y, width int, st tcell.Style) {
	for x := from; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, st)
	}
}
