package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is one grapheme cluster placed on the terminal grid.
type Cell struct {
	Text string
	// RuneCol is the rune index of the cluster's first rune in its line.
	RuneCol int
	// Start is the first terminal cell the cluster occupies.
	Start int
	// Width is the number of terminal cells the cluster occupies.
	Width int
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of a single cluster. Tabs are not
// handled here; see Layout.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Caret returns the caret notation ("^M", "^?") shown for a control
// character cluster. Tabs are not control characters here.
func Caret(cluster string) (string, bool) {
	r := []rune(cluster)
	if len(r) != 1 || r[0] == '\t' {
		return "", false
	}
	switch {
	case r[0] < 0x20:
		return "^" + string(r[0]+'@'), true
	case r[0] == 0x7f:
		return "^?", true
	}
	return "", false
}

// Layout places the clusters of line on the terminal grid. Tabs advance to
// the next multiple of tabWidth; control characters take the two cells of
// their caret notation.
func Layout(line []rune, tabWidth int) []Cell {
	if len(line) == 0 {
		return nil
	}
	if tabWidth <= 0 {
		tabWidth = 1
	}

	out := make([]Cell, 0, len(line))
	runeCol, cell := 0, 0
	for _, c := range Split(string(line)) {
		var w int
		if c == "\t" {
			w = tabWidth - cell%tabWidth
		} else if caret, ok := Caret(c); ok {
			w = len(caret)
		} else {
			w = Width(c)
		}
		out = append(out, Cell{Text: c, RuneCol: runeCol, Start: cell, Width: w})
		runeCol += len([]rune(c))
		cell += w
	}
	return out
}

// CellOffset returns the terminal cell at which rune column col of line
// starts. A col inside a multi-rune cluster maps past that cluster.
func CellOffset(line []rune, col, tabWidth int) int {
	off := 0
	for _, c := range Layout(line, tabWidth) {
		if c.RuneCol >= col {
			break
		}
		off = c.Start + c.Width
	}
	return off
}

// Render returns the cells [left, left+width) of line as text, with tabs
// expanded to spaces and control characters in caret notation. Wide clusters
// cut by either edge are replaced by spaces for their visible part. A width
// <= 0 means no right edge.
func Render(line []rune, tabWidth, left, width int) string {
	if left < 0 {
		left = 0
	}
	right := -1
	if width > 0 {
		right = left + width
	}

	var sb strings.Builder
	for _, c := range Layout(line, tabWidth) {
		end := c.Start + c.Width
		if end <= left {
			continue
		}
		if right >= 0 && c.Start >= right {
			break
		}
		full := c.Start >= left && (right < 0 || end <= right)
		if full && c.Text != "\t" {
			if caret, ok := Caret(c.Text); ok {
				sb.WriteString(caret)
			} else {
				sb.WriteString(c.Text)
			}
			continue
		}
		from, to := maxInt(c.Start, left), end
		if right >= 0 && to > right {
			to = right
		}
		sb.WriteString(strings.Repeat(" ", to-from))
	}
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
