package asm

// This file implements the Operand Classifier (spec §4.1). Every
// consume_* function is atomic: on failure it returns the cursor
// unchanged, so the caller's "tokens remaining" count can be used as the
// dispatcher's quality heuristic (spec §4.4, §9 "Iterator atomicity").

// ConsumeLiteral succeeds iff the next token is exactly text; it advances
// the cursor on success. On failure it reports InvalidInstruction if the
// cursor sits at the mnemonic slot, InvalidOperand otherwise (spec §4.1).
func ConsumeLiteral(c Cursor, text string) (Cursor, error) {
	tok, ok := c.Peek()
	if !ok || !tok.Is(text) {
		kind := InvalidOperand
		if c.AtStart() {
			kind = InvalidInstruction
		}
		return c, DispatchError{Kind: kind, Quality: c.Remaining()}
	}
	return c.Advance(), nil
}

// ConsumeReg succeeds iff the next token names a general-purpose register
// of exactly the given bit width; it returns the classified operand and
// the advanced cursor (spec §4.1, consume_reg).
func ConsumeReg(c Cursor, width int, lookup RegisterLookup) (Operand, Cursor, error) {
	tok, ok := c.Peek()
	if !ok {
		return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
	}
	info, ok := lookup(tok.Literal, width)
	if !ok {
		return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
	}
	op := Operand{
		Kind:           KindReg,
		Index:          info.Index,
		Width:          width,
		regRequiresREX: info.RequiresREX,
		regForbidsREX:  info.ForbidsREX,
	}
	return op, c.Advance(), nil
}

// RequiresREX reports whether this classified 8-bit register operand can
// only be encoded in the presence of a REX prefix (spl/bpl/sil/dil).
func (o Operand) RequiresREX() bool {
	return o.regRequiresREX
}

// ForbidsREX reports whether this classified 8-bit register operand can
// only be encoded in the absence of any REX prefix (ah/ch/dh/bh).
func (o Operand) ForbidsREX() bool {
	return o.regForbidsREX
}

// ConsumeRM succeeds on either (a) a bare register of the given width
// (mode NoDereference), or (b) a memory expression `[base]` or
// `[base + disp]` where base is a 64-bit address register and disp is a
// signed literal classified as disp8 if it fits in a signed byte, disp32
// otherwise (spec §4.1, consume_rm).
func ConsumeRM(c Cursor, width int, lookup RegisterLookup) (Operand, Cursor, error) {
	if tok, ok := c.Peek(); ok && tok.Kind == TokIdent {
		if info, ok := lookup(tok.Literal, width); ok {
			op := Operand{
				Kind:           KindRM,
				Index:          info.Index,
				Mode:           NoDereference,
				Width:          width,
				regRequiresREX: info.RequiresREX,
				regForbidsREX:  info.ForbidsREX,
			}
			return op, c.Advance(), nil
		}
	}

	cur := c
	var ok bool
	if cur, ok = consumePunct(cur, TokLBracket); !ok {
		return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
	}

	baseTok, hasBase := cur.Peek()
	if !hasBase {
		return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
	}
	baseInfo, ok := lookup(baseTok.Literal, 64)
	if !ok {
		return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
	}
	cur = cur.Advance()

	op := Operand{Kind: KindRM, Index: baseInfo.Index, Mode: IndirectNoDisp, Width: width}

	if tok, ok := cur.Peek(); ok && tok.Kind == TokPlus {
		cur = cur.Advance()
		dtok, ok := cur.Peek()
		if !ok || dtok.Kind != TokNumber {
			return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
		}
		dv, ok := parseLiteralInt(dtok.Literal)
		if !ok {
			return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
		}
		cur = cur.Advance()

		op.HasDisp = true
		op.Disp = int32(dv)
		if dv >= -128 && dv <= 127 {
			op.Mode = IndirectDisp8
		} else {
			op.Mode = IndirectDisp32
		}
	}

	if cur, ok = consumePunct(cur, TokRBracket); !ok {
		return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
	}

	return op, cur, nil
}

func consumePunct(c Cursor, kind TokenKind) (Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || tok.Kind != kind {
		return c, false
	}
	return c.Advance(), true
}

// ConsumeImm succeeds on a numeric literal that fits in a signed
// two's-complement integer of the given bit width (spec §4.1,
// consume_imm).
func ConsumeImm(c Cursor, width int) (Operand, Cursor, error) {
	tok, ok := c.Peek()
	if !ok || tok.Kind != TokNumber {
		return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
	}
	v, ok := parseLiteralInt(tok.Literal)
	if !ok || !fitsSignedWidth(v, width) {
		return Operand{}, c, DispatchError{Kind: InvalidOperand, Quality: c.Remaining()}
	}
	return Operand{Kind: KindImm, Value: v, Width: width}, c.Advance(), nil
}

// ConsumeRel is identical to ConsumeImm: the value is semantically a
// PC-relative displacement rather than an immediate operand, but the
// classifier applies the same width/overflow rule (spec §4.1,
// consume_rel).
func ConsumeRel(c Cursor, width int) (Operand, Cursor, error) {
	op, next, err := ConsumeImm(c, width)
	if err != nil {
		return op, next, err
	}
	op.Kind = KindRel
	return op, next, nil
}
