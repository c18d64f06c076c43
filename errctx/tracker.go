package errctx

// Tracker holds the stack of records for one logical operation.
// The record on top of the stack is the one call sites write to; Store pushes
// a fresh record and Reset pops it again, restoring the outer operation's view.
//
// A Tracker is owned by a single goroutine and performs no locking.
type Tracker struct {
	current *Record
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Instance returns the current record, creating it on first use.
func (t *Tracker) Instance() *Record {
	if t.current == nil {
		t.current = &Record{}
	}
	return t.current
}

// Store pushes a fresh record on top of the current one and returns it.
func (t *Tracker) Store() *Record {
	next := &Record{stored: t.Instance()}
	t.current = next
	return next
}

// Reset discards the current record and restores the one stored beneath it.
// With nothing stored the tracker returns to its empty state.
func (t *Tracker) Reset() {
	if t.current == nil {
		return
	}
	t.current = t.current.stored
}

// Clear drops every record, including stored ones.
func (t *Tracker) Clear() {
	t.current = nil
}

// Depth returns the number of records on the stack.
func (t *Tracker) Depth() int {
	depth := 0
	for r := t.current; r != nil; r = r.stored {
		depth++
	}
	return depth
}

// restore makes rec the current record again. Used by release funcs so an
// outer release is correct even if an inner scope forgot its own.
func (t *Tracker) restore(rec *Record) {
	t.current = rec
}
