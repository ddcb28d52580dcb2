package buffer

import "testing"

func lines(b *Buffer) []string {
	out := make([]string, b.LineCount())
	for i := range out {
		out[i] = b.Line(i)
	}
	return out
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInsertChar(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		pos     Pos
		ch      rune
		want    []string
		wantPos Pos
	}{
		{name: "start", text: "bc", pos: Pos{Row: 0, Col: 0}, ch: 'a', want: []string{"abc"}, wantPos: Pos{Row: 0, Col: 1}},
		{name: "middle", text: "ac", pos: Pos{Row: 0, Col: 1}, ch: 'b', want: []string{"abc"}, wantPos: Pos{Row: 0, Col: 2}},
		{name: "end", text: "abc\ndef", pos: Pos{Row: 0, Col: 3}, ch: '!', want: []string{"abc!", "def"}, wantPos: Pos{Row: 0, Col: 4}},
		{name: "empty line", text: "", pos: Pos{}, ch: 'x', want: []string{"x"}, wantPos: Pos{Row: 0, Col: 1}},
		{name: "unicode", text: "ab", pos: Pos{Row: 0, Col: 1}, ch: 'π', want: []string{"aπb"}, wantPos: Pos{Row: 0, Col: 2}},
		{name: "clamped column", text: "ab", pos: Pos{Row: 0, Col: 99}, ch: 'c', want: []string{"abc"}, wantPos: Pos{Row: 0, Col: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			gotPos := b.InsertChar(tc.pos.Row, tc.pos.Col, tc.ch)
			if got := lines(b); !equalLines(got, tc.want) {
				t.Fatalf("lines=%q, want %q", got, tc.want)
			}
			if gotPos != tc.wantPos {
				t.Fatalf("pos=%v, want %v", gotPos, tc.wantPos)
			}
			if b.Version() != 1 {
				t.Fatalf("version=%d, want 1", b.Version())
			}
		})
	}
}

func TestInsertChar_RejectsLineBreaks(t *testing.T) {
	b := New("ab")
	for _, ch := range []rune{'\n', '\r'} {
		got := b.InsertChar(0, 1, ch)
		if got != (Pos{Row: 0, Col: 1}) {
			t.Fatalf("pos after %q=%v, want (0,1)", ch, got)
		}
	}
	if got := b.Text(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
	if b.Version() != 0 {
		t.Fatalf("version=%d, want 0", b.Version())
	}
}

func TestSplitLine(t *testing.T) {
	cases := []struct {
		name string
		text string
		pos  Pos
		want []string
	}{
		{name: "end of line", text: "abc!\ndef", pos: Pos{Row: 0, Col: 4}, want: []string{"abc!", "", "def"}},
		{name: "middle", text: "abcd", pos: Pos{Row: 0, Col: 2}, want: []string{"ab", "cd"}},
		{name: "start", text: "abcd", pos: Pos{Row: 0, Col: 0}, want: []string{"", "abcd"}},
		{name: "last line", text: "a\nbc", pos: Pos{Row: 1, Col: 1}, want: []string{"a", "b", "c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			before := b.LineCount()
			gotPos := b.SplitLine(tc.pos.Row, tc.pos.Col)
			if got := lines(b); !equalLines(got, tc.want) {
				t.Fatalf("lines=%q, want %q", got, tc.want)
			}
			if b.LineCount() != before+1 {
				t.Fatalf("line count=%d, want %d", b.LineCount(), before+1)
			}
			if want := (Pos{Row: tc.pos.Row + 1, Col: 0}); gotPos != want {
				t.Fatalf("pos=%v, want %v", gotPos, want)
			}
		})
	}
}

func TestDeleteCharBefore(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		pos     Pos
		want    []string
		wantPos Pos
		changed bool
	}{
		{name: "inside line", text: "abc", pos: Pos{Row: 0, Col: 2}, want: []string{"ac"}, wantPos: Pos{Row: 0, Col: 1}, changed: true},
		{name: "end of line", text: "abc", pos: Pos{Row: 0, Col: 3}, want: []string{"ab"}, wantPos: Pos{Row: 0, Col: 2}, changed: true},
		{name: "join with previous", text: "ab\ncd", pos: Pos{Row: 1, Col: 0}, want: []string{"abcd"}, wantPos: Pos{Row: 0, Col: 2}, changed: true},
		{name: "join empty previous", text: "\ncd", pos: Pos{Row: 1, Col: 0}, want: []string{"cd"}, wantPos: Pos{Row: 0, Col: 0}, changed: true},
		{name: "top left corner", text: "ab", pos: Pos{Row: 0, Col: 0}, want: []string{"ab"}, wantPos: Pos{Row: 0, Col: 0}, changed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			gotPos := b.DeleteCharBefore(tc.pos.Row, tc.pos.Col)
			if got := lines(b); !equalLines(got, tc.want) {
				t.Fatalf("lines=%q, want %q", got, tc.want)
			}
			if gotPos != tc.wantPos {
				t.Fatalf("pos=%v, want %v", gotPos, tc.wantPos)
			}
			if changed := b.Version() != 0; changed != tc.changed {
				t.Fatalf("changed=%v, want %v", changed, tc.changed)
			}
		})
	}
}

func TestDeleteCharAt(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		pos     Pos
		want    []string
		changed bool
	}{
		{name: "inside line", text: "abc", pos: Pos{Row: 0, Col: 1}, want: []string{"ac"}, changed: true},
		{name: "join next", text: "ab\ncd", pos: Pos{Row: 0, Col: 2}, want: []string{"abcd"}, changed: true},
		{name: "join empty next", text: "ab\n\ncd", pos: Pos{Row: 0, Col: 2}, want: []string{"ab", "cd"}, changed: true},
		{name: "end of buffer", text: "ab\ncd", pos: Pos{Row: 1, Col: 2}, want: []string{"ab", "cd"}, changed: false},
		{name: "empty buffer", text: "", pos: Pos{}, want: []string{""}, changed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			b.DeleteCharAt(tc.pos.Row, tc.pos.Col)
			if got := lines(b); !equalLines(got, tc.want) {
				t.Fatalf("lines=%q, want %q", got, tc.want)
			}
			if changed := b.Version() != 0; changed != tc.changed {
				t.Fatalf("changed=%v, want %v", changed, tc.changed)
			}
		})
	}
}

func TestDeleteCharAt_LastRemainingLineStaysPresent(t *testing.T) {
	b := New("a")
	b.DeleteCharAt(0, 0)
	b.DeleteCharAt(0, 0)
	if b.LineCount() != 1 || b.Line(0) != "" {
		t.Fatalf("lines=%q, want one empty line", lines(b))
	}
}
