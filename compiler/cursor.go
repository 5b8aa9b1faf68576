package compiler

// cursor is a read cursor over the pattern string (the "input abstraction"
// of §4.2.1). Offsets are zero-based; peek/peekAhead report 0 at or past
// end of input, matching the NUL pattern terminator convention (§3.1).
type cursor struct {
	src []byte
	pos int
}

func newCursor(pattern string) *cursor {
	return &cursor{src: []byte(pattern)}
}

// peek returns the byte at the cursor, or 0 at end.
func (c *cursor) peek() byte {
	if c.pos >= len(c.src) {
		return 0
	}
	return c.src[c.pos]
}

// peekAhead returns the byte one past the cursor, or 0 at or past end.
// Needed to disambiguate '-' inside character classes (§4.2.4).
func (c *cursor) peekAhead() byte {
	if c.pos+1 >= len(c.src) {
		return 0
	}
	return c.src[c.pos+1]
}

// eat returns the current byte and advances the cursor by one.
func (c *cursor) eat() byte {
	b := c.peek()
	c.pos++
	return b
}

// offset reports the current cursor position, used verbatim as the
// end-offset surfaced to callers on both success and failure (§6.2).
func (c *cursor) offset() int {
	return c.pos
}
