// Package compiler implements the recursive-descent parser and NFA
// builder described in §4.2: it parses the grammar in §6.1 and, for every
// accepted production, produces an NFA fragment by allocating a small,
// fixed number of states into an arena.Arena and rewriting earlier
// fragments' exit states. The parser directly produces states — there is
// no separate AST stage — mirroring how the teacher's nfa.Builder lets a
// caller allocate states and patch their successors after the fact.
package compiler

import (
	"github.com/coregx/mininfa/arena"
	"github.com/coregx/mininfa/status"
)

// parser holds the mutable compilation state: the cursor over the pattern
// text and the arena fragments are built into.
type parser struct {
	cur   *cursor
	arena *arena.Arena
}

// Compile parses pattern and builds its NFA. On success it returns the
// arena, the pattern's start state, and the cursor's final offset (one
// past the last byte the outer Expr production consumed). On failure it
// returns a nil arena, a *CompileError, and the offset of the byte that
// triggered the failure.
//
// Trailing bytes after a successfully parsed Expr are not rejected here;
// per the reference behavior recorded in DESIGN.md, Compile reports
// success with a partial end-offset rather than treating leftover input
// as an error.
func Compile(pattern string) (*arena.Arena, arena.StateID, int, error) {
	p := &parser{cur: newCursor(pattern), arena: arena.New()}

	frag, err := p.parseExpr()
	if err != nil {
		return nil, arena.NoState, p.cur.offset(), err
	}
	return p.arena, frag.start, p.cur.offset(), nil
}

func (p *parser) errAt(s status.Status) error {
	return &CompileError{Status: s, Offset: p.cur.offset()}
}

func isSpecial(b byte) bool {
	switch b {
	case '.', '*', '+', '?', '(', ')', '[', ']', '^', '{', '|', '}':
		return true
	}
	return false
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// parseExpr implements Expr -> Term ('|' Expr)?
func (p *parser) parseExpr() (fragment, error) {
	left, err := p.parseTerm()
	if err != nil {
		return fragment{}, err
	}
	if p.cur.peek() == '|' {
		p.cur.eat()
		right, err := p.parseExpr()
		if err != nil {
			return fragment{}, err
		}
		return p.alternate(left, right), nil
	}
	return left, nil
}

// parseTerm implements Term -> Factor Term?
func (p *parser) parseTerm() (fragment, error) {
	left, err := p.parseFactor()
	if err != nil {
		return fragment{}, err
	}
	c := p.cur.peek()
	if c != 0 && c != ')' && c != '|' {
		right, err := p.parseTerm()
		if err != nil {
			return fragment{}, err
		}
		return p.concat(left, right), nil
	}
	return left, nil
}

// parseFactor implements Factor -> Atom ('*'|'+'|'?')?
func (p *parser) parseFactor() (fragment, error) {
	a, err := p.parseAtom()
	if err != nil {
		return fragment{}, err
	}
	switch p.cur.peek() {
	case '*':
		p.cur.eat()
		return p.star(a), nil
	case '+':
		p.cur.eat()
		return p.plus(a), nil
	case '?':
		p.cur.eat()
		return p.question(a), nil
	default:
		return a, nil
	}
}

// parseAtom implements Atom -> Char | '.' | '(' Expr ')' | '[' Set ']'
func (p *parser) parseAtom() (fragment, error) {
	c := p.cur.peek()

	switch {
	case c == 0:
		return fragment{}, p.errAt(status.UnexpectedEnd)

	case c == '(':
		p.cur.eat()
		inner, err := p.parseExpr()
		if err != nil {
			return fragment{}, err
		}
		if p.cur.peek() != ')' {
			return fragment{}, p.errAt(status.ExpectedRParen)
		}
		p.cur.eat()
		return inner, nil

	case c == '[':
		p.cur.eat()
		frag, err := p.parseSet()
		if err != nil {
			return fragment{}, err
		}
		// parseSet only returns successfully with the cursor sitting on ']'.
		p.cur.eat()
		return frag, nil

	case c == '.':
		p.cur.eat()
		return p.dotFrag(), nil

	case c == '\\':
		p.cur.eat()
		return p.parseEscapedChar()

	case isSpecial(c):
		return fragment{}, p.errAt(status.UnexpectedSpecial)

	case !isPrintable(c):
		return fragment{}, p.errAt(status.ExpectedChar)

	default:
		p.cur.eat()
		return p.literalFrag(c), nil
	}
}

// parseEscapedChar implements the ESCAPE production outside a class, with
// the leading backslash already consumed: '\' (SPECIAL | '-').
func (p *parser) parseEscapedChar() (fragment, error) {
	c := p.cur.peek()
	if c == 0 {
		return fragment{}, p.errAt(status.UnexpectedEnd)
	}
	if isSpecial(c) || c == '-' {
		p.cur.eat()
		return p.literalFrag(c), nil
	}
	return fragment{}, p.errAt(status.ExpectedSpecial)
}

// parseSet implements Set -> '^'? Range+, with the leading '[' already
// consumed. On success the cursor is left positioned on the closing ']'
// (not yet consumed — the caller, parseAtom, consumes it).
func (p *parser) parseSet() (fragment, error) {
	negate := false
	if p.cur.peek() == '^' {
		p.cur.eat()
		negate = true
	}

	if p.cur.peek() == 0 {
		return fragment{}, p.errAt(status.UnexpectedEnd)
	}
	if p.cur.peek() == ']' {
		// Range+ requires at least one range; a bracket closing
		// immediately is a structural byte where an element was required.
		return fragment{}, p.errAt(status.UnexpectedSpecial)
	}

	var result fragment
	haveResult := false
	for {
		lo, hi, err := p.parseRange()
		if err != nil {
			return fragment{}, err
		}
		frag := p.buildRangeFrag(lo, hi, negate)
		if !haveResult {
			result = frag
			haveResult = true
		} else {
			result = p.alternate(result, frag)
		}

		if p.cur.peek() == ']' {
			break
		}
		if p.cur.peek() == 0 {
			return fragment{}, p.errAt(status.UnexpectedEnd)
		}
	}
	return result, nil
}

// parseRange implements Range -> Element ('-' Element)?. The two-byte
// lookahead in §4.2.4 resolves whether '-' is the range operator or a
// literal element: it's literal unless followed by a non-']' element.
func (p *parser) parseRange() (lo, hi byte, err error) {
	lo, err = p.parseElement()
	if err != nil {
		return 0, 0, err
	}

	if p.cur.peek() == '-' {
		ahead := p.cur.peekAhead()
		if ahead != 0 && ahead != ']' {
			p.cur.eat() // consume '-' as the range operator
			hi, err = p.parseElement()
			if err != nil {
				return 0, 0, err
			}
			if hi < lo {
				return 0, 0, p.errAt(status.UnorderedRange)
			}
			return lo, hi, nil
		}
	}
	return lo, lo, nil
}

// parseElement implements ELEMENT -> ([0x20-0x7E] - ']') | ('\' ']').
func (p *parser) parseElement() (byte, error) {
	c := p.cur.peek()
	switch {
	case c == 0:
		return 0, p.errAt(status.UnexpectedEnd)
	case c == '\\':
		p.cur.eat()
		next := p.cur.peek()
		if next == 0 {
			return 0, p.errAt(status.UnexpectedEnd)
		}
		if next == ']' {
			p.cur.eat()
			return next, nil
		}
		return 0, p.errAt(status.ExpectedRBracket)
	case c == ']':
		return 0, p.errAt(status.UnexpectedSpecial)
	case !isPrintable(c):
		return 0, p.errAt(status.ExpectedElement)
	default:
		p.cur.eat()
		return c, nil
	}
}
