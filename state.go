package trace

import "sync"

// State remembers the call stack of the previous traced line and the current basis depth.
//
// A State is safe for concurrent use. The lock is held for the whole capture, diff and
// render sequence of one line, so lines are fully ordered. Because the remembered stack is
// shared, lines from different goroutines diff against each other and may indent
// misleadingly. Give each goroutine its own State (see [Config.State]) to avoid that.
type State struct {
	mu    sync.Mutex
	last  []string
	basis int
}

// NewState returns an empty State: no remembered frames and a basis depth of 0.
func NewState() *State {
	return new(State)
}

var stdState = NewState()

// Frames returns a copy of the remembered frame descriptors, root first.
func (st *State) Frames() []string {
	st.mu.Lock()
	defer st.mu.Unlock()

	frames := make([]string, len(st.last))
	copy(frames, st.last)
	return frames
}

// Basis returns the current basis depth.
func (st *State) Basis() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.basis
}

// Reset forgets the remembered frames and basis depth.
func (st *State) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.last = st.last[:0]
	st.basis = 0
}

// diff counts the leading frames shared by frames and the remembered sequence, and
// replaces the remembered sequence with frames. Counting stops at the first mismatch.
// The leaf frame never counts as matched, so the result is at most len(frames)-1.
//
// The caller holds st.mu, and frames is not empty.
func (st *State) diff(frames []string) (match int) {
	for i, f := range frames {
		if i < len(st.last) {
			if match == i && st.last[i] == f {
				match++
			}
			st.last[i] = f
		} else {
			st.last = append(st.last, f)
		}
	}
	st.last = st.last[:len(frames)]

	if leaf := len(frames) - 1; match > leaf {
		match = leaf
	}
	return match
}
