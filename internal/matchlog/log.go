// Package matchlog is the per-match append-only log named in the Match
// State entity's invariants. It is history, not telemetry: entries survive
// for the life of the match and are never emitted to a process-wide
// sink. Contrast internal/logging, which is the operator-facing structured
// logger used by the server process itself.
package matchlog

// Entry is one append-only record of something that happened in a match.
type Entry struct {
	Seq     int
	Round   int
	Message string
}

// Log is an append-only sequence of Entry. The zero value is ready to use.
type Log struct {
	entries []Entry
	next    int
}

// Append records a new entry and returns it.
func (l *Log) Append(round int, message string) Entry {
	e := Entry{Seq: l.next, Round: round, Message: message}
	l.entries = append(l.entries, e)
	l.next++
	return e
}

// Entries returns every recorded entry, in append order. The returned
// slice is owned by the caller; the log keeps its own internal copy.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}
