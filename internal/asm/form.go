package asm

// This file implements the generic half of the Form Table / Form
// Dispatcher (spec §4.3, §4.4): the row schema (Form) and the single
// interpreter that walks any row (spec §9, "Table-driven vs
// function-per-form" — the table-driven variant, strongly recommended by
// the spec for maintainability). Architecture packages supply only the
// data: a []Form plus a RegisterLookup.

// NoSlot marks a Form field that has no corresponding operand slot.
const NoSlot = -1

// SlotKind distinguishes a form's fixed-keyword slots (e.g. the literal
// "1" in `shl r/m8, 1`, or a segment-register keyword) from slots that
// must run through the Operand Classifier (spec §3, "Keyword").
type SlotKind int

const (
	SlotOperand SlotKind = iota
	SlotLiteral
	// SlotVerb is a literal keyword that continues the mnemonic itself
	// rather than occupying an operand-list position — e.g. the "movsb"
	// in "rep movsb", or the "add" in "lock add [rax], eax". It is
	// matched with no comma before it (spec.md §3's "Keyword" token kind
	// extended to multi-word mnemonics; see forms_string.go and
	// forms_atomic.go for the two cases that need it).
	SlotVerb
)

// Slot is one position in a form's operand list, in source order, commas
// implied between every pair (spec §4.3 step 2).
type Slot struct {
	Kind    SlotKind
	Operand OperandSpec
	Literal string
}

// OperandSlot declares a classifier-driven operand slot.
func OperandSlot(spec OperandSpec) Slot { return Slot{Kind: SlotOperand, Operand: spec} }

// LiteralSlot declares a fixed-keyword slot matched via consume_literal.
func LiteralSlot(text string) Slot { return Slot{Kind: SlotLiteral, Literal: text} }

// VerbSlot declares a mnemonic-continuation keyword — see SlotVerb.
func VerbSlot(text string) Slot { return Slot{Kind: SlotVerb, Literal: text} }

// ImmSpec says which classified slot supplies bytes for one of the
// immediate/displacement fields emitted in step 9, and how wide (in
// bytes) to emit it.
type ImmSpec struct {
	Slot       int
	WidthBytes int
}

// Form is one row of the instruction encoding table: "mnemonic M
// followed by operand shape S produces byte template T" (spec §4.3,
// Glossary "Form").
type Form struct {
	// Mnemonic is matched against the token stream's first token,
	// lowercase (tokens arrive lowercase per spec §6.1).
	Mnemonic string
	Slots    []Slot

	// Prefixes are mandatory legacy prefix bytes emitted before REX/opcode,
	// in table order (spec §4.3 step 5).
	Prefixes []byte

	// REXW forces REX.W=1 — this form always operates on a 64-bit operand
	// and therefore always carries a REX prefix (spec §4.3 step 6).
	REXW bool

	// Opcode is the fixed 1-4 byte opcode sequence (legacy escape,
	// optional 0x38/0x3A, primary opcode) (spec §4.3 step 7).
	Opcode []byte

	// PlusR, when set, adds the register index at PlusRSlot into the low
	// 3 bits of the last opcode byte instead of emitting a ModR/M byte
	// (spec §4.3 step 7, "+r"; Glossary "+r encoding").
	PlusR     bool
	PlusRSlot int

	// ModRM, when set, emits a ModR/M(+disp) byte via RMSlot for the r/m
	// field, and either RegSlot (a real register operand) or OpcodeExt (a
	// 0-7 opcode-selector constant) for the reg field (spec §4.3 step 8;
	// Glossary "Opcode extension").
	ModRM     bool
	RMSlot    int
	RegSlot   int
	OpcodeExt int

	// Imms lists, in emission order, which classified slots supply
	// immediate/displacement bytes and at what width (spec §4.3 step 9).
	Imms []ImmSpec
}

// FormTable is an ordered catalogue of forms plus a mnemonic index built
// once at construction time. Declaration order within a mnemonic group is
// the disambiguation contract (spec §4.4, §8, §9) — grouping by mnemonic
// is purely a lookup optimization: a form whose mnemonic cannot match
// only ever contributes a quality of len(tokens), which per
// InitialTracker can never beat the dispatcher's starting tracker, so
// skipping those forms changes no observable outcome (teacher's
// Instruction.FormsByOperandType cache in internal/asm/instruction.go is
// the precedent for this kind of derived index).
type FormTable struct {
	ordered []Form
	byMnem  map[string][]Form
}

// NewFormTable builds a FormTable from an ordered slice of forms,
// preserving declaration order.
func NewFormTable(forms []Form) *FormTable {
	t := &FormTable{ordered: forms, byMnem: make(map[string][]Form)}
	for _, f := range forms {
		t.byMnem[f.Mnemonic] = append(t.byMnem[f.Mnemonic], f)
	}
	return t
}

// Forms returns the full ordered catalogue.
func (t *FormTable) Forms() []Form { return t.ordered }

// Dispatch tries forms against tokens and selects a winner using the
// longest-prefix-matched error policy (spec §4.4, Public operation
// "match").
func (t *FormTable) Dispatch(tokens []Token, lookup RegisterLookup) (*Buffer, error) {
	best := InitialTracker(len(tokens))

	mnemonic := ""
	if len(tokens) > 0 {
		mnemonic = tokens[0].Literal
	}

	for _, f := range t.byMnem[mnemonic] {
		buf, err := tryForm(tokens, f, lookup)
		if err == nil {
			return buf, nil
		}
		de := err.(DispatchError)
		if de.Quality < best.Quality {
			best = de
		}
	}

	return nil, best
}

// tryForm attempts a single form's recognizer body against tokens,
// following the canonical nine-step order from spec §4.3.
func tryForm(tokens []Token, f Form, lookup RegisterLookup) (*Buffer, error) {
	cur := NewCursor(tokens)
	var err error

	// Step 1: mnemonic literal.
	cur, err = ConsumeLiteral(cur, f.Mnemonic)
	if err != nil {
		return nil, err
	}

	// Step 2: operands, comma-separated — except that a slot immediately
	// following a SlotVerb keyword is a mnemonic continuation, not an
	// operand-list entry, and so takes no comma before it (spec.md §3;
	// see SlotVerb).
	classified := make([]Operand, len(f.Slots))
	for i, slot := range f.Slots {
		if i > 0 && f.Slots[i-1].Kind != SlotVerb {
			cur, err = ConsumeLiteral(cur, ",")
			if err != nil {
				return nil, err
			}
		}

		switch slot.Kind {
		case SlotLiteral, SlotVerb:
			cur, err = ConsumeLiteral(cur, slot.Literal)
			if err != nil {
				return nil, err
			}
		case SlotOperand:
			var op Operand
			switch slot.Operand.Kind {
			case KindReg:
				op, cur, err = ConsumeReg(cur, slot.Operand.Width, lookup)
			case KindRM:
				op, cur, err = ConsumeRM(cur, slot.Operand.Width, lookup)
			case KindImm:
				op, cur, err = ConsumeImm(cur, slot.Operand.Width)
			case KindRel:
				op, cur, err = ConsumeRel(cur, slot.Operand.Width)
			}
			if err != nil {
				return nil, err
			}
			classified[i] = op
		}
	}

	// Step 3: no trailing tokens.
	if cur.Remaining() > 0 {
		return nil, DispatchError{Kind: ExtraneousTokenAfterInstruction, Quality: cur.Remaining()}
	}

	// Step 4: construct the buffer.
	buf := NewBuffer(f.Mnemonic)

	// Step 5: mandatory legacy prefixes.
	if len(f.Prefixes) > 0 {
		buf.WriteBytes(f.Prefixes...)
	}

	// Step 6: REX. REX.W forces the prefix unconditionally (64-bit
	// operand). Otherwise it is needed whenever a register participating
	// in ModR/M, SIB-less addressing, or the +r opcode byte has an
	// encoding index >= 8 (REX.R/B), or an 8-bit operand names one of the
	// REX-only low-byte registers (spl/bpl/sil/dil).
	emitREX := f.REXW
	var rexRM, rexReg byte
	if f.ModRM {
		rexRM = classified[f.RMSlot].Index
		if rexRM >= 8 {
			emitREX = true
		}
		if f.RegSlot != NoSlot {
			rexReg = classified[f.RegSlot].Index
			if rexReg >= 8 {
				emitREX = true
			}
		}
	}
	if f.PlusR {
		rexRM = classified[f.PlusRSlot].Index
		if rexRM >= 8 {
			emitREX = true
		}
	}
	forbidsREX := false
	for _, op := range classified {
		if op.RequiresREX() {
			emitREX = true
		}
		if op.ForbidsREX() {
			forbidsREX = true
		}
	}
	if forbidsREX && emitREX {
		return nil, DispatchError{Kind: InvalidOperand, Quality: 0}
	}
	if emitREX {
		buf.WriteREX(f.REXW, rexRM, rexReg)
	}

	// Step 7: opcode bytes, with +r register folding.
	opcode := append([]byte(nil), f.Opcode...)
	if f.PlusR {
		opcode[len(opcode)-1] += classified[f.PlusRSlot].Index & 0x07
	}
	buf.WriteBytes(opcode...)

	// Step 8: ModR/M + displacement.
	if f.ModRM {
		rm := classified[f.RMSlot]
		mode := rm.Mode
		if rm.Kind == KindReg {
			mode = NoDereference
		}
		regField := byte(f.OpcodeExt)
		if f.RegSlot != NoSlot {
			regField = classified[f.RegSlot].Index
		}
		buf.WriteModRMDisp(mode, rm.Index, regField, rm.Disp)
	}

	// Step 9: immediate/displacement bytes.
	for _, imm := range f.Imms {
		buf.WriteImm(classified[imm.Slot].Value, imm.WidthBytes)
	}

	return buf, nil
}
