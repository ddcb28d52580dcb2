package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/modus/internal/grapheme"
	"github.com/iw2rmb/modus/session"
)

func (m Model) View() string {
	if m.quitting || m.height <= 0 {
		return ""
	}

	rm := m.sess.Render()
	textRows := m.height - 1
	out := make([]string, 0, m.height)
	for i := 0; i < textRows; i++ {
		if i < len(rm.Rows) {
			out = append(out, m.renderRow(rm, i))
			continue
		}
		out = append(out, m.cfg.Style.Filler.Render("~"))
	}
	out = append(out, m.renderStatus(rm))
	return strings.Join(out, "\n")
}

func (m Model) renderRow(rm session.RenderModel, i int) string {
	row := rm.Rows[i]
	st := m.cfg.Style

	var sb strings.Builder
	if rm.GutterWidth > 0 {
		numStyle := st.LineNum
		if i == rm.CursorRow {
			numStyle = st.LineNumActive
		}
		sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", rm.GutterWidth-1, row.Number)))
		sb.WriteString(st.Gutter.Render(" "))
	}

	if i != rm.CursorRow {
		writeStyled(&sb, st.Text, row.Text)
		return sb.String()
	}

	before, at, after := splitAtCell(row.Text, rm.CursorCol-rm.GutterWidth)
	writeStyled(&sb, st.Text, before)
	sb.WriteString(st.cursor(rm.Shape).Render(at))
	writeStyled(&sb, st.Text, after)
	return sb.String()
}

func writeStyled(sb *strings.Builder, st lipgloss.Style, s string) {
	if s == "" {
		return
	}
	sb.WriteString(st.Render(s))
}

// splitAtCell splits rendered row text around the grapheme covering cell.
// Past the end of the text the cursor sits on a blank cell.
func splitAtCell(text string, cell int) (before, at, after string) {
	if cell < 0 {
		cell = 0
	}
	cells := grapheme.Layout([]rune(text), 1)
	for i, c := range cells {
		if cell >= c.Start && cell < c.Start+c.Width {
			var b, a strings.Builder
			for _, p := range cells[:i] {
				b.WriteString(p.Text)
			}
			for _, p := range cells[i+1:] {
				a.WriteString(p.Text)
			}
			return b.String(), c.Text, a.String()
		}
	}

	pad := cell
	if n := len(cells); n > 0 {
		pad = cell - (cells[n-1].Start + cells[n-1].Width)
	}
	return text + strings.Repeat(" ", max(pad, 0)), " ", ""
}

func (m Model) renderStatus(rm session.RenderModel) string {
	st := m.cfg.Style

	left := st.StatusMode.Render(" "+rm.Mode.String()+" ") + st.StatusBar.Render(" "+rm.FileLabel())
	if rm.Status.Text != "" {
		msgStyle := st.StatusBar
		if rm.Status.Err {
			msgStyle = st.StatusError
		}
		left += st.StatusBar.Render("  ") + msgStyle.Render(rm.Status.Text)
	}
	right := st.StatusBar.Render(rm.Position() + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + st.StatusBar.Render(strings.Repeat(" ", gap)) + right
	if m.width > 0 && lipgloss.Width(line) > m.width {
		line = ansi.Truncate(line, m.width, "")
	}
	return line
}
