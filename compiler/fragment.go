package compiler

import "github.com/coregx/mininfa/arena"

// fragment is a transient (start, end) pair naming a partially built NFA
// with one entry and one exit (§3.4). end is always, at the moment a
// fragment is returned from one of the functions below, a Match state —
// either a genuine placeholder awaiting a later rewrite, or (for the
// top-level fragment returned by Compile) the pattern's unique accepting
// state.
type fragment struct {
	start arena.StateID
	end   arena.StateID
}

// isTrivial reports whether f's start is a single Range state pointing
// directly at f's end — the shape eligible for the short-circuit
// optimizations in §4.2.3.
func (p *parser) isTrivial(f fragment) bool {
	s := p.arena.Get(f.start)
	return s.Kind == arena.Range && s.Out1 == f.end
}

// literalFrag builds the fragment for a single literal byte c.
func (p *parser) literalFrag(c byte) fragment {
	return p.rangeFrag(c, c)
}

// dotFrag builds the fragment for '.', accepting any printable byte.
func (p *parser) dotFrag() fragment {
	return p.rangeFrag(0x20, 0x7E)
}

// rangeFrag builds a single Range(lo,hi) -> Match fragment.
func (p *parser) rangeFrag(lo, hi byte) fragment {
	end := p.arena.Append(arena.State{Kind: arena.Match})
	start := p.arena.Append(arena.State{Kind: arena.Range, Lo: lo, Hi: hi, Out1: end})
	return fragment{start: start, end: end}
}

// negatedRangeFrag builds the fragment for a negated class range [lo,hi]
// (§4.2.4): two Range states covering [0x20, lo-1] and [hi+1, 0x7E], fanned
// in by a Split, both leading to a shared Match end. A negated range that
// spans the entire printable domain (e.g. "[^ -~]") has no printable byte
// left to accept; it is represented as a Range with lo > hi, which can
// never satisfy lo <= c <= hi during simulation.
func (p *parser) negatedRangeFrag(lo, hi byte) fragment {
	end := p.arena.Append(arena.State{Kind: arena.Match})

	var left, right arena.StateID = arena.NoState, arena.NoState
	if lo > 0x20 {
		left = p.arena.Append(arena.State{Kind: arena.Range, Lo: 0x20, Hi: lo - 1, Out1: end})
	}
	if hi < 0x7E {
		right = p.arena.Append(arena.State{Kind: arena.Range, Lo: hi + 1, Hi: 0x7E, Out1: end})
	}

	switch {
	case left != arena.NoState && right != arena.NoState:
		start := p.arena.Append(arena.State{Kind: arena.Split, Out1: left, Out2: right})
		return fragment{start: start, end: end}
	case left != arena.NoState:
		return fragment{start: left, end: end}
	case right != arena.NoState:
		return fragment{start: right, end: end}
	default:
		dead := p.arena.Append(arena.State{Kind: arena.Range, Lo: 1, Hi: 0, Out1: end})
		return fragment{start: dead, end: end}
	}
}

// buildRangeFrag builds a single class-range fragment, positive or
// negated per the class's leading '^'.
func (p *parser) buildRangeFrag(lo, hi byte, negate bool) fragment {
	if negate {
		return p.negatedRangeFrag(lo, hi)
	}
	return p.rangeFrag(lo, hi)
}

// concat composes A B: overwrites A's end with a one-branch Split pointing
// at B's start (an epsilon link, since this design has no dedicated
// epsilon state — see §3.2), and returns (A.start, B.end). When A is
// trivial, its single Range state is reused directly as the concatenation
// point instead of patched through an extra Split, dropping a dead state.
func (p *parser) concat(a, b fragment) fragment {
	if p.isTrivial(a) {
		s := p.arena.Get(a.start)
		s.Out1 = b.start
		p.arena.Set(a.start, s)
		return fragment{start: a.start, end: b.end}
	}
	p.arena.Set(a.end, arena.State{Kind: arena.Split, Out1: b.start, Out2: arena.NoState})
	return fragment{start: a.start, end: b.end}
}

// alternate composes A|B: a new Split fans into A.start and B.start; both
// operands' end placeholders are rewritten to fan into a shared new Match
// end. When either operand is trivial, its end placeholder is dropped
// instead: the trivial operand's Range is repointed directly at the
// other operand's end, and that shared end is reused as the alternation's
// own end rather than allocating a new one.
func (p *parser) alternate(a, b fragment) fragment {
	switch {
	case p.isTrivial(a):
		s := p.arena.Get(a.start)
		s.Out1 = b.end
		p.arena.Set(a.start, s)
		split := p.arena.Append(arena.State{Kind: arena.Split, Out1: a.start, Out2: b.start})
		return fragment{start: split, end: b.end}
	case p.isTrivial(b):
		s := p.arena.Get(b.start)
		s.Out1 = a.end
		p.arena.Set(b.start, s)
		split := p.arena.Append(arena.State{Kind: arena.Split, Out1: a.start, Out2: b.start})
		return fragment{start: split, end: a.end}
	default:
		end := p.arena.Append(arena.State{Kind: arena.Match})
		p.arena.Set(a.end, arena.State{Kind: arena.Split, Out1: end, Out2: arena.NoState})
		p.arena.Set(b.end, arena.State{Kind: arena.Split, Out1: end, Out2: arena.NoState})
		split := p.arena.Append(arena.State{Kind: arena.Split, Out1: a.start, Out2: b.start})
		return fragment{start: split, end: end}
	}
}

// star composes A*: a new entry Split either enters A or jumps straight to
// a new Match end; A's own end is rewritten to the same Split content so
// the loop can repeat or exit after each pass through A.
func (p *parser) star(a fragment) fragment {
	end := p.arena.Append(arena.State{Kind: arena.Match})
	start := p.arena.Append(arena.State{Kind: arena.Split, Out1: a.start, Out2: end})
	p.arena.Set(a.end, arena.State{Kind: arena.Split, Out1: a.start, Out2: end})
	return fragment{start: start, end: end}
}

// plus composes A+: like star, but entry is unconditional (A.start is
// reused as-is; there is no bypass split before the first iteration).
func (p *parser) plus(a fragment) fragment {
	end := p.arena.Append(arena.State{Kind: arena.Match})
	p.arena.Set(a.end, arena.State{Kind: arena.Split, Out1: a.start, Out2: end})
	return fragment{start: a.start, end: end}
}

// question composes A?: a new entry Split either enters A or skips
// straight to A's own (unmodified) end.
func (p *parser) question(a fragment) fragment {
	start := p.arena.Append(arena.State{Kind: arena.Split, Out1: a.start, Out2: a.end})
	return fragment{start: start, end: a.end}
}
