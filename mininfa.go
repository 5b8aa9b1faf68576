// Package mininfa is a small regular-expression engine built on the
// classical Thompson construction and parallel-state NFA simulation. It
// compiles a pattern into a nondeterministic finite automaton stored in a
// flat arena and matches input strings in time linear in the input
// length.
//
// The grammar supports literals, '.', '*'/'+'/'?' quantifiers, grouping,
// alternation, and character classes (including negation) over 7-bit
// printable bytes. It does not support Unicode, capture groups,
// backreferences, counted repetition, lookaround, or substring search:
// every match is anchored — it succeeds exactly when the entire input is
// accepted.
//
// Basic usage:
//
//	pat, err := mininfa.Compile(`h(e|a)*llo*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pat.Close()
//
//	m, err := mininfa.NewMatcher(pat)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	if m.Match("haeeeallooo") {
//	    fmt.Println("matched!")
//	}
package mininfa

import (
	"github.com/coregx/mininfa/arena"
	"github.com/coregx/mininfa/compiler"
	"github.com/coregx/mininfa/sim"
	"github.com/coregx/mininfa/status"
)

// Status is the outcome of a compile attempt; see status.Status.
type Status = status.Status

// Re-exported status constants, so callers need not import the status
// package directly for the common case.
const (
	StatusSuccess           = status.Success
	StatusExpectedChar      = status.ExpectedChar
	StatusExpectedElement   = status.ExpectedElement
	StatusExpectedRBracket  = status.ExpectedRBracket
	StatusExpectedRParen    = status.ExpectedRParen
	StatusExpectedSpecial   = status.ExpectedSpecial
	StatusUnexpectedSpecial = status.UnexpectedSpecial
	StatusUnexpectedEnd     = status.UnexpectedEnd
	StatusUnorderedRange    = status.UnorderedRange
	StatusOutOfMemory       = status.OutOfMemory
)

// StatusText returns a short English description of status. Unrecognized
// values map to "Unknown error".
func StatusText(s Status) string {
	return status.Text(s)
}

// CompileError is returned by Compile on failure; Status classifies the
// failure and Offset is the cursor position that triggered it.
type CompileError = compiler.CompileError

// Pattern is an immutable compiled regular expression: an NFA arena plus
// its start state. A Pattern is safe to share read-only across
// goroutines once compiled; its NFA is never mutated after Compile
// returns (Close only sets a closed flag).
type Pattern struct {
	source    string
	arena     *arena.Arena
	start     arena.StateID
	endOffset int
	closed    bool
}

// Compile compiles pattern into a Pattern.
//
// On success it returns the compiled pattern; Pattern.EndOffset reports
// the cursor position one past the last byte the outer expression
// consumed (trailing bytes are not rejected — see DESIGN.md).
//
// On failure it returns a *CompileError identifying the status and the
// offset of the byte that triggered it.
func Compile(pattern string) (*Pattern, error) {
	ar, start, offset, err := compiler.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Pattern{source: pattern, arena: ar, start: start, endOffset: offset}, nil
}

// MustCompile compiles pattern and panics if it fails. Useful for
// patterns known to be valid at compile time, e.g. package-level
// variables.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("mininfa: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// EndOffset returns the cursor position reported at the end of a
// successful compile (§6.2).
func (p *Pattern) EndOffset() int {
	return p.endOffset
}

// States returns the number of states in the pattern's NFA arena,
// including the reserved sentinel at index 0.
func (p *Pattern) States() int {
	return p.arena.Len()
}

// Close releases the pattern. After Close, the pattern must not be used
// by any matcher, and any outstanding matcher created from it must be
// closed before the pattern is discarded (§3.7). Go's garbage collector
// reclaims the arena regardless; Close exists so callers that want
// deterministic, explicit resource release (mirroring the spec's C-shaped
// lifecycle) have somewhere to put it, and so a use-after-close bug is
// visible rather than silently harmless.
func (p *Pattern) Close() error {
	p.closed = true
	return nil
}

// Matcher is a reusable working buffer for matching many input strings
// against one compiled Pattern. It is single-owner mutable state: methods
// on the same Matcher must not be called concurrently, though distinct
// Matchers created from the same Pattern may be used concurrently from
// different goroutines (§5).
type Matcher struct {
	pattern *Pattern
	sim     *sim.Matcher
	closed  bool
}

// NewMatcher creates a Matcher for pattern. This is the only point at
// which a Matcher allocates memory; Match never allocates.
func NewMatcher(pattern *Pattern) (*Matcher, error) {
	if pattern == nil || pattern.closed {
		return nil, &CompileError{Status: status.OutOfMemory, Offset: 0}
	}
	return &Matcher{pattern: pattern, sim: sim.New(pattern.arena, pattern.start)}, nil
}

// Match reports whether input is accepted by the matcher's pattern in its
// entirety. Matching is anchored: the pattern must match the whole
// string. Match may be called repeatedly with different inputs; each
// call first resets the matcher's working buffers.
func (m *Matcher) Match(input string) bool {
	return m.sim.Match(input)
}

// Close marks the matcher as closed. It does not free the working buffers
// itself; the garbage collector reclaims them once the Matcher is
// unreachable. Match does not check the closed flag.
func (m *Matcher) Close() error {
	m.closed = true
	return nil
}
