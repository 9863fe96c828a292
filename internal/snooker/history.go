package snooker

// HistoryLimit is the maximum number of frame snapshots kept for undo.
const HistoryLimit = 50

// History is a bounded stack of frame snapshots used for undo.
// Values are immutable: Push and Pop return a new History and never write
// into a backing array another History can see.
type History struct {
	entries []Frame
}

// Len returns the number of snapshots held.
func (h History) Len() int {
	return len(h.entries)
}

// Push returns a history with f appended, evicting the oldest snapshot when
// the limit is exceeded.
func (h History) Push(f Frame) History {
	keep := h.entries
	if len(keep) >= HistoryLimit {
		keep = keep[len(keep)-HistoryLimit+1:]
	}
	entries := make([]Frame, len(keep), len(keep)+1)
	copy(entries, keep)
	return History{entries: append(entries, f)}
}

// Pop returns the most recent snapshot and the history without it.
// The boolean is false when the history is empty.
func (h History) Pop() (Frame, History, bool) {
	if len(h.entries) == 0 {
		return Frame{}, h, false
	}
	last := h.entries[len(h.entries)-1]
	if len(h.entries) == 1 {
		// Same value as the history of a fresh state
		return last, History{}, true
	}
	rest := h.entries[:len(h.entries)-1 : len(h.entries)-1]
	return last, History{entries: rest}, true
}

// Peek returns the most recent snapshot without removing it.
func (h History) Peek() (Frame, bool) {
	if len(h.entries) == 0 {
		return Frame{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Frames returns a copy of the snapshots, oldest first.
func (h History) Frames() []Frame {
	return append([]Frame(nil), h.entries...)
}
