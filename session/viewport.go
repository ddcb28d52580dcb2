package session

// Viewport is the window of the document currently on screen.
//
// Rows are document lines. Columns are terminal cells of the text area
// (gutter excluded); Width == 0 disables horizontal clipping.
type Viewport struct {
	Top    int
	Height int
	Left   int
	Width  int
}

// NewViewport returns a viewport of the given size at the document origin.
func NewViewport(width, height int) Viewport {
	v := Viewport{}
	v.Resize(width, height)
	return v
}

// Resize changes the visible size. Height is kept >= 1.
func (v *Viewport) Resize(width, height int) {
	if height < 1 {
		height = 1
	}
	if width < 0 {
		width = 0
	}
	v.Height = height
	v.Width = width
}

// Bottom returns the last document row inside the window.
func (v Viewport) Bottom() int { return v.Top + v.Height - 1 }

// Contains reports whether row is inside the window.
func (v Viewport) Contains(row int) bool { return row >= v.Top && row <= v.Bottom() }

func (v Viewport) maxTop(lineCount int) int {
	return maxInt(0, lineCount-v.Height)
}

// Follow scrolls by the smallest amount that brings row into the window,
// then clamps Top to [0, max(0, lineCount-Height)].
func (v *Viewport) Follow(row, lineCount int) {
	if row < v.Top {
		v.Top = row
	} else if row > v.Bottom() {
		v.Top = row - v.Height + 1
	}
	v.Top = clampInt(v.Top, 0, v.maxTop(lineCount))
}

// FollowColumn scrolls horizontally by the smallest amount that brings
// cell into [Left, Left+Width-1].
func (v *Viewport) FollowColumn(cell int) {
	if v.Width <= 0 {
		v.Left = 0
		return
	}
	if cell < v.Left {
		v.Left = cell
	} else if cell > v.Left+v.Width-1 {
		v.Left = cell - v.Width + 1
	}
	if v.Left < 0 {
		v.Left = 0
	}
}

// Page shifts Top by one window height in dir, clamped to
// [0, max(0, lineCount-Height)].
func (v *Viewport) Page(dir PageDir, lineCount int) {
	v.Top = clampInt(v.Top+int(dir)*v.Height, 0, v.maxTop(lineCount))
}

// ClampRow returns row moved into the window and the document.
func (v Viewport) ClampRow(row, lineCount int) int {
	row = clampInt(row, v.Top, v.Bottom())
	return clampInt(row, 0, maxInt(0, lineCount-1))
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
