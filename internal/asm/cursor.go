package asm

// Cursor is an index into a borrowed token slice. It is deliberately a
// small value type rather than a pointer/iterator: every consume_* helper
// takes a Cursor by value and returns a new Cursor on success, so a failed
// attempt can never leave the caller's position disturbed (spec §4.1,
// "atomic" consume functions; spec §9, "Iterator atomicity").
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor returns a Cursor positioned at the first token of the slice.
// The tokens slice is borrowed, never mutated (spec §5).
func NewCursor(tokens []Token) Cursor {
	return Cursor{tokens: tokens}
}

// AtStart reports whether the cursor sits at the mnemonic slot (position
// zero). Used to decide between InvalidInstruction and InvalidOperand on a
// literal mismatch (spec §4.1, consume_literal).
func (c Cursor) AtStart() bool {
	return c.pos == 0
}

// Peek returns the token at the cursor without advancing, and false if the
// cursor has run off the end of the slice.
func (c Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

// Advance returns a new cursor one position further along. It does not
// mutate the receiver.
func (c Cursor) Advance() Cursor {
	return Cursor{tokens: c.tokens, pos: c.pos + 1}
}

// Remaining returns the number of tokens not yet consumed. This is the raw
// material for the dispatcher's "quality" heuristic (spec §4.4, §7).
func (c Cursor) Remaining() int {
	return len(c.tokens) - c.pos
}

// Len returns the total number of tokens the cursor was created with.
func (c Cursor) Len() int {
	return len(c.tokens)
}
