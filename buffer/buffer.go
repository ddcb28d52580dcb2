package buffer

import "strings"

// Buffer is the document state: an ordered list of lines without line
// breaks. It always holds at least one line.
type Buffer struct {
	lines   [][]rune
	version uint64

	lastChange    Change
	hasLastChange bool
}

// New builds a buffer from text. Lines are separated by '\n'; an empty text
// yields a single empty line.
func New(text string) *Buffer {
	return &Buffer{
		lines: splitLines(text),
	}
}

// Text joins the lines with '\n'. New(b.Text()) reproduces b.
func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, line := range b.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// Version increments on every effective text mutation.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineRunes returns a copy of the runes of row.
func (b *Buffer) LineRunes(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]rune(nil), b.lines[row]...)
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// ClampPos returns the valid position nearest to p: the row is bounded to
// the existing lines, then the column to that row's length.
func (b *Buffer) ClampPos(p Pos) Pos {
	row := clamp(p.Row, 0, len(b.lines)-1)
	return Pos{Row: row, Col: clamp(p.Col, 0, len(b.lines[row]))}
}

// splitLines never returns an empty slice: strings.Split yields at least
// one element.
func splitLines(text string) [][]rune {
	var lines [][]rune
	for line := range strings.SplitSeq(text, "\n") {
		lines = append(lines, []rune(line))
	}
	return lines
}
