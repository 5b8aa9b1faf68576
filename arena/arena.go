package arena

// Arena is an ordered, append-only sequence of State. Index 0 is reserved
// as NoState at creation and holds a harmless placeholder. Appending a
// state returns its new, stable index; states may have their Out1/Out2
// fields rewritten in place by the builder after being appended (closure
// and alternation operators patch an earlier fragment's exit state).
type Arena struct {
	states []State
}

// New creates an Arena with the sentinel state pre-inserted at index 0.
func New() *Arena {
	a := &Arena{states: make([]State, 0, 16)}
	a.states = append(a.states, State{Kind: Match}) // placeholder, never reachable as live
	return a
}

// Append adds a state and returns its new index. Growth amortizes via the
// underlying slice's append, matching the teacher's Builder.states policy.
func (a *Arena) Append(s State) StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, s)
	return id
}

// Get returns the state at index. The caller guarantees index is in range.
func (a *Arena) Get(id StateID) State {
	return a.states[id]
}

// Set overwrites the state at index. The caller guarantees index is in
// range. This is how the builder rewrites a fragment's exit state when
// composing two fragments (see concat, alternate, star and plus in package
// compiler).
func (a *Arena) Set(id StateID, s State) {
	a.states[id] = s
}

// Len returns the number of states stored, including the sentinel.
func (a *Arena) Len() int {
	return len(a.states)
}
