package buffer

// InsertChar inserts ch at (row, col) and returns the position after it.
//
// Line breaks are not characters of a line: '\n' and '\r' are ignored and
// the clamped position is returned unchanged. Use SplitLine instead.
func (b *Buffer) InsertChar(row, col int, ch rune) Pos {
	p := b.ClampPos(Pos{Row: row, Col: col})
	if ch == '\n' || ch == '\r' {
		return p
	}

	line := b.lines[p.Row]
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:p.Col]...)
	next = append(next, ch)
	next = append(next, line[p.Col:]...)
	b.lines[p.Row] = next

	b.commitChange(ChangeInsert, p.Row, len(b.lines))
	return Pos{Row: p.Row, Col: p.Col + 1}
}

// SplitLine breaks the line at (row, col). The tail becomes a new line
// right after row. It returns the start of the new line.
func (b *Buffer) SplitLine(row, col int) Pos {
	p := b.ClampPos(Pos{Row: row, Col: col})
	before := len(b.lines)

	line := b.lines[p.Row]
	head := append([]rune(nil), line[:p.Col]...)
	tail := append([]rune(nil), line[p.Col:]...)

	out := make([][]rune, 0, len(b.lines)+1)
	out = append(out, b.lines[:p.Row]...)
	out = append(out, head, tail)
	out = append(out, b.lines[p.Row+1:]...)
	b.lines = out

	b.commitChange(ChangeSplit, p.Row, before)
	return Pos{Row: p.Row + 1, Col: 0}
}

// DeleteCharBefore applies backspace semantics at (row, col) and returns the
// resulting cursor position.
//
// Inside a line it removes the rune at col-1. At column 0 of a row > 0 it
// joins the row onto the previous one; the returned position is the end of
// the previous line's original content. At (0,0) it does nothing.
func (b *Buffer) DeleteCharBefore(row, col int) Pos {
	p := b.ClampPos(Pos{Row: row, Col: col})
	if p.Col > 0 {
		line := b.lines[p.Row]
		next := make([]rune, 0, len(line)-1)
		next = append(next, line[:p.Col-1]...)
		next = append(next, line[p.Col:]...)
		b.lines[p.Row] = next

		b.commitChange(ChangeDelete, p.Row, len(b.lines))
		return Pos{Row: p.Row, Col: p.Col - 1}
	}
	if p.Row == 0 {
		return p
	}

	prevRow := p.Row - 1
	joinCol := len(b.lines[prevRow])
	b.joinWithNext(prevRow)
	return Pos{Row: prevRow, Col: joinCol}
}

// DeleteCharAt applies delete-key semantics at (row, col).
//
// Inside a line it removes the rune at col. At the end of a line that has a
// successor it joins the next line onto this one. At the end of the buffer
// it does nothing. The cursor position is unaffected in every case.
func (b *Buffer) DeleteCharAt(row, col int) {
	p := b.ClampPos(Pos{Row: row, Col: col})
	line := b.lines[p.Row]
	if p.Col < len(line) {
		next := make([]rune, 0, len(line)-1)
		next = append(next, line[:p.Col]...)
		next = append(next, line[p.Col+1:]...)
		b.lines[p.Row] = next

		b.commitChange(ChangeDelete, p.Row, len(b.lines))
		return
	}
	if p.Row == len(b.lines)-1 {
		return
	}
	b.joinWithNext(p.Row)
}

func (b *Buffer) joinWithNext(row int) {
	before := len(b.lines)

	joined := make([]rune, 0, len(b.lines[row])+len(b.lines[row+1]))
	joined = append(joined, b.lines[row]...)
	joined = append(joined, b.lines[row+1]...)

	out := make([][]rune, 0, len(b.lines)-1)
	out = append(out, b.lines[:row]...)
	out = append(out, joined)
	out = append(out, b.lines[row+2:]...)
	b.lines = out

	b.commitChange(ChangeJoin, row, before)
}
