package session

import (
	"testing"

	"pgregory.net/rapid"
)

var streamKeys = []InputEvent{
	RuneEvent('h'), RuneEvent('j'), RuneEvent('k'), RuneEvent('l'),
	RuneEvent('i'), RuneEvent('a'), RuneEvent('A'), RuneEvent('I'),
	RuneEvent('x'), RuneEvent('\t'), RuneEvent('é'), RuneEvent('界'),
	KeyEvent(KeyLeft), KeyEvent(KeyRight), KeyEvent(KeyUp), KeyEvent(KeyDown),
	KeyEvent(KeyHome), KeyEvent(KeyEnd),
	KeyEvent(KeyEnter), KeyEvent(KeyBackspace), KeyEvent(KeyDelete),
	KeyEvent(KeyEscape), KeyEvent(KeyPageUp), KeyEvent(KeyPageDown),
	KeyEvent(KeyUnknown),
}

func TestSession_RandomKeyStreamsKeepInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-c\n\t]{0,40}`).Draw(t, "text")
		width := rapid.IntRange(0, 12).Draw(t, "width")
		height := rapid.IntRange(1, 6).Draw(t, "height")
		s := New(text, Options{Width: width, Height: height, LineNumbers: rapid.Bool().Draw(t, "numbers")})

		n := rapid.IntRange(0, 200).Draw(t, "steps")
		for i := 0; i < n; i++ {
			ev := rapid.SampledFrom(streamKeys).Draw(t, "key")
			if s.Step(ev) == SignalQuit {
				// Escape in NORMAL quits; keep exercising the session.
				if s.Mode() != ModeNormal {
					t.Fatalf("quit outside NORMAL mode")
				}
			}
			checkSessionInvariants(t, s)
		}
	})
}

func checkSessionInvariants(t *rapid.T, s *Session) {
	b := s.Buffer()
	c := s.Cursor()
	if b.LineCount() < 1 {
		t.Fatalf("line count=%d", b.LineCount())
	}
	if c != b.ClampPos(c) {
		t.Fatalf("cursor %v outside buffer", c)
	}
	if s.Mode() == ModeSelection {
		t.Fatalf("entered SELECTION mode")
	}

	vp := s.Viewport()
	if vp.Height < 1 {
		t.Fatalf("viewport height=%d", vp.Height)
	}
	if !vp.Contains(c.Row) {
		t.Fatalf("viewport %+v does not contain cursor row %d", vp, c.Row)
	}
	maxTop := b.LineCount() - vp.Height
	if maxTop < 0 {
		maxTop = 0
	}
	if vp.Top < 0 || vp.Top > maxTop {
		t.Fatalf("top=%d outside [0,%d]", vp.Top, maxTop)
	}

	rm := s.Render()
	wantRows := b.LineCount() - vp.Top
	if wantRows > vp.Height {
		wantRows = vp.Height
	}
	if len(rm.Rows) != wantRows {
		t.Fatalf("rows=%d, want %d", len(rm.Rows), wantRows)
	}
	if rm.CursorRow < 0 || rm.CursorRow >= vp.Height {
		t.Fatalf("cursor screen row=%d outside window", rm.CursorRow)
	}
	if vp.Width > 0 {
		if off := rm.CursorCol - rm.GutterWidth; off < 0 || off >= vp.Width {
			t.Fatalf("cursor text col=%d outside [0,%d)", off, vp.Width)
		}
	}
	if rm.Cursor != c {
		t.Fatalf("render cursor=%v, want %v", rm.Cursor, c)
	}
}
