package buffer

import "testing"

func TestLastChange_EmptyUntilMutation(t *testing.T) {
	b := New("ab")
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change on fresh buffer")
	}

	b.DeleteCharAt(0, 2) // end of buffer: no-op
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change after no-op delete")
	}
}

func TestLastChange_RecordsKindRowAndLineCounts(t *testing.T) {
	b := New("ab\ncd")

	b.InsertChar(1, 1, 'x')
	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected change after insert")
	}
	if ch.Kind != ChangeInsert || ch.Row != 1 || ch.VersionBefore != 0 || ch.VersionAfter != 1 {
		t.Fatalf("insert change=%+v", ch)
	}

	b.SplitLine(0, 1)
	ch, _ = b.LastChange()
	if ch.Kind != ChangeSplit || ch.Row != 0 || ch.LinesBefore != 2 || ch.LinesAfter != 3 {
		t.Fatalf("split change=%+v", ch)
	}
	if !ch.Kind.Structural() {
		t.Fatalf("split must be structural")
	}

	b.DeleteCharBefore(1, 0)
	ch, _ = b.LastChange()
	if ch.Kind != ChangeJoin || ch.Row != 0 || ch.LinesBefore != 3 || ch.LinesAfter != 2 {
		t.Fatalf("join change=%+v", ch)
	}

	b.DeleteCharBefore(0, 2)
	ch, _ = b.LastChange()
	if ch.Kind != ChangeDelete || ch.Kind.Structural() {
		t.Fatalf("delete change=%+v", ch)
	}
	if ch.VersionAfter != b.Version() {
		t.Fatalf("version after=%d, want %d", ch.VersionAfter, b.Version())
	}
}

func TestChangeKind_String(t *testing.T) {
	cases := map[ChangeKind]string{
		ChangeInsert:   "insert",
		ChangeDelete:   "delete",
		ChangeSplit:    "split",
		ChangeJoin:     "join",
		ChangeKind(42): "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String()=%q, want %q", k, got, want)
		}
	}
}
