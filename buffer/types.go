package buffer

import "fmt"

// Pos is a place in the document: a 0-based row and a column counted in
// runes. A column equal to the row length addresses the end of the line.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Row, p.Col) }

// clamp bounds v to [lo, hi]. An empty range yields lo.
func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }
