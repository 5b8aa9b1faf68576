// Package sim implements the simulator described in §4.3: given a
// compiled pattern's arena and start state, it advances a set of active
// NFA states one input byte at a time, using step-indexed deduplication
// to keep each step O(|states|). This mirrors the overall shape of the
// teacher's nfa.PikeVM (a queue/nextQueue pair advanced by "step" and
// "addThread", swapped each iteration), adapted per §9's design notes to
// a lastActive step-stamp array instead of a clearable sparse set: a
// Matcher must tell generation k apart from generation k+1 without an
// explicit per-generation Clear() call, since states are entered into
// generation k+1's list while generation k's list is still being scanned.
package sim

import "github.com/coregx/mininfa/arena"

// noStep is a sentinel distinct from any real step number (steps count
// from 0), used to mark a state as not-yet-entered in the current run.
const noStep = -1

// Matcher is a reusable working buffer for matching many input strings
// against one compiled pattern (one arena + start state). Buffers are
// sized once, at construction, to the arena's state count and are never
// reallocated by Match. A Matcher holds a non-owning reference to its
// arena; the pattern (and its arena) must outlive the matcher.
type Matcher struct {
	source *arena.Arena
	start  arena.StateID

	active     [2][]arena.StateID
	lastActive []int
}

// New creates a Matcher for the given compiled pattern (arena + start
// state). This is the only point at which a Matcher allocates memory;
// Match never allocates.
func New(pattern *arena.Arena, start arena.StateID) *Matcher {
	n := pattern.Len()
	m := &Matcher{
		source:     pattern,
		start:      start,
		lastActive: make([]int, n),
	}
	m.active[0] = make([]arena.StateID, 0, n)
	m.active[1] = make([]arena.StateID, 0, n)
	for i := range m.lastActive {
		m.lastActive[i] = noStep
	}
	return m
}

// Match reports whether input is accepted by the compiled pattern in its
// entirety (anchored, whole-string match — §4.3's contract). It may be
// called repeatedly on the same Matcher with different inputs; each call
// first resets the working buffers to a known initial state.
func (m *Matcher) Match(input string) bool {
	for i := range m.lastActive {
		m.lastActive[i] = noStep
	}
	m.active[0] = m.active[0][:0]
	m.active[1] = m.active[1][:0]

	cur := 0
	step := 0
	m.enter(cur, m.start, step)

	for i := 0; i < len(input); i++ {
		c := input[i]
		step++
		next := 1 - cur
		m.active[next] = m.active[next][:0]

		for _, sid := range m.active[cur] {
			s := m.source.Get(sid)
			if s.Kind == arena.Range && c >= s.Lo && c <= s.Hi {
				m.enter(next, s.Out1, step)
			}
		}
		cur = next
	}

	for _, sid := range m.active[cur] {
		if m.source.Get(sid).Kind == arena.Match {
			return true
		}
	}
	return false
}

// enter adds state s to the given active list at step, eagerly folding in
// epsilon closure: Split states are never themselves added to a list,
// they immediately recurse into both of their (possibly absent) branches.
// Range and Match states are byte-consuming or accepting respectively and
// so are the only kinds that end up on an active list.
func (m *Matcher) enter(list int, s arena.StateID, step int) {
	if s == arena.NoState {
		return
	}
	if m.lastActive[s] == step {
		return
	}
	m.lastActive[s] = step

	state := m.source.Get(s)
	if state.Kind == arena.Split {
		m.enter(list, state.Out1, step)
		m.enter(list, state.Out2, step)
		return
	}
	m.active[list] = append(m.active[list], s)
}
