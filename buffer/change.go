package buffer

// ChangeKind identifies the structural effect of a mutation.
type ChangeKind uint8

const (
	// ChangeInsert added a rune inside one line.
	ChangeInsert ChangeKind = iota
	// ChangeDelete removed a rune inside one line.
	ChangeDelete
	// ChangeSplit broke one line into two.
	ChangeSplit
	// ChangeJoin merged two lines into one.
	ChangeJoin
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeSplit:
		return "split"
	case ChangeJoin:
		return "join"
	default:
		return "unknown"
	}
}

// Structural reports whether the change altered the line count.
func (k ChangeKind) Structural() bool {
	return k == ChangeSplit || k == ChangeJoin
}

// Change describes the most recent effective mutation.
type Change struct {
	Kind ChangeKind
	// Row is the first row whose content changed. For joins it is the row
	// that absorbed the following line.
	Row           int
	VersionBefore uint64
	VersionAfter  uint64
	LinesBefore   int
	LinesAfter    int
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) commitChange(kind ChangeKind, row, linesBefore int) {
	before := b.version
	b.version++
	b.lastChange = Change{
		Kind:          kind,
		Row:           row,
		VersionBefore: before,
		VersionAfter:  b.version,
		LinesBefore:   linesBefore,
		LinesAfter:    len(b.lines),
	}
	b.hasLastChange = true
}
