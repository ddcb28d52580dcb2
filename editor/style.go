package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/modus/session"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	// Filler marks screen rows past the end of the document.
	Filler lipgloss.Style

	Text lipgloss.Style

	CursorBlock      lipgloss.Style
	CursorLine       lipgloss.Style
	CursorUnderscore lipgloss.Style

	StatusBar   lipgloss.Style
	StatusMode  lipgloss.Style
	StatusError lipgloss.Style
}

// Palette holds the configurable colors, as ANSI numbers or hex strings.
type Palette struct {
	Gutter        string
	LineNumActive string
	StatusBar     string
	StatusError   string
}

func DefaultPalette() Palette {
	return Palette{Gutter: "240", LineNumActive: "250", StatusBar: "236", StatusError: "196"}
}

func DefaultStyle() Style { return PaletteStyle(DefaultPalette()) }

// PaletteStyle builds the default style set from p. Empty colors fall back
// to DefaultPalette.
func PaletteStyle(p Palette) Style {
	def := DefaultPalette()
	if p.Gutter == "" {
		p.Gutter = def.Gutter
	}
	if p.LineNumActive == "" {
		p.LineNumActive = def.LineNumActive
	}
	if p.StatusBar == "" {
		p.StatusBar = def.StatusBar
	}
	if p.StatusError == "" {
		p.StatusError = def.StatusError
	}

	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Gutter))
	bar := lipgloss.NewStyle().Background(lipgloss.Color(p.StatusBar))
	return Style{
		Gutter:           gutter,
		LineNum:          gutter,
		LineNumActive:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.LineNumActive)).Bold(true),
		Filler:           gutter,
		Text:             lipgloss.NewStyle(),
		CursorBlock:      lipgloss.NewStyle().Reverse(true),
		CursorLine:       lipgloss.NewStyle().Background(lipgloss.Color("33")),
		CursorUnderscore: lipgloss.NewStyle().Underline(true),
		StatusBar:        bar,
		StatusMode:       bar.Bold(true),
		StatusError:      bar.Foreground(lipgloss.Color(p.StatusError)),
	}
}

func (s Style) cursor(shape session.CursorShape) lipgloss.Style {
	switch shape {
	case session.CursorLine:
		return s.CursorLine
	case session.CursorUnderscore:
		return s.CursorUnderscore
	default:
		return s.CursorBlock
	}
}
