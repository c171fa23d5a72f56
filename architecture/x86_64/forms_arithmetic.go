package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// Arithmetic and logic forms: the eight ALU-shaped mnemonics (add, adc,
// sub, sbb, and, or, xor, cmp), test, and the F6/F7-extension unary group
// (neg, not, mul, imul, div, idiv), plus inc/dec. Grounded on the
// teacher's ADD entry in architecture/x86_64/instructions.go and the Intel
// SDM's shared ALU opcode layout (base+0/1/2/3 for r/m-r and r-r/m
// directions, 0x80/0x81/0x83 plus a /digit extension for immediate forms).
//
// Accumulator-shorthand opcodes (e.g. `add al, imm8` at 0x04, one byte
// shorter than the general r/m8, imm8 form at 0x80 /0) are intentionally
// not declared: with both present, an input naming the accumulator
// register would always resolve to whichever is declared first, which
// amounts to an automatic encoding-size choice — a documented Non-goal
// (spec.md §1). The general r/m, imm forms cover every accumulator case
// correctly, just never with the shorter bytes a size-optimizing
// assembler would pick.
func arithmeticForms() []asm.Form {
	var forms []asm.Form
	for _, op := range aluOps {
		forms = append(forms, aluForms(op.mnemonic, op.base, op.ext)...)
	}

	// test r/m, r and r/m, imm — test has no reg/rm "load" direction
	// variant (it is symmetric and side-effect-free beyond flags).
	forms = append(forms,
		mr("test", 8, 0x84),
		mr("test", 16, 0x85),
		mr("test", 32, 0x85),
		mr("test", 64, 0x85),
		extRMImm("test", 8, 8, 0, 0xF6),
		extRMImm("test", 16, 16, 0, 0xF7),
		extRMImm("test", 32, 32, 0, 0xF7),
		extRMImm("test", 64, 32, 0, 0xF7),
	)

	// neg, not, mul, imul (one-operand), div, idiv — shared F6/F7 opcode,
	// distinguished only by the /digit opcode extension (spec.md §4.3,
	// Glossary "Opcode extension").
	for _, u := range []struct {
		mnemonic string
		ext      int
	}{
		{"not", 2}, {"neg", 3}, {"mul", 4}, {"imul", 5}, {"div", 6}, {"idiv", 7},
	} {
		forms = append(forms,
			extUnary(u.mnemonic, 8, 0xF6, u.ext),
			extUnary(u.mnemonic, 16, 0xF7, u.ext),
			extUnary(u.mnemonic, 32, 0xF7, u.ext),
			extUnary(u.mnemonic, 64, 0xF7, u.ext),
		)
	}

	// imul r, r/m (two-operand, 0F AF /r) and imul r, r/m, imm8/imm32
	// (three-operand, 0x6B/0x69 /r)
	forms = append(forms,
		rm("imul", 16, 16, 0x0F, 0xAF),
		rm("imul", 32, 32, 0x0F, 0xAF),
		rm("imul", 64, 64, 0x0F, 0xAF),
		imul3("imul", 16, 8, 0x6B),
		imul3("imul", 32, 8, 0x6B),
		imul3("imul", 64, 8, 0x6B),
		imul3("imul", 16, 16, 0x69),
		imul3("imul", 32, 32, 0x69),
		imul3("imul", 64, 32, 0x69),
	)

	// inc/dec — FE/FF /0 and /1. The single-byte +r forms from 32-bit
	// mode are not valid encodings in 64-bit mode (the opcode space is
	// reused for REX prefixes), so only the ModR/M forms are declared.
	forms = append(forms,
		extUnary("inc", 8, 0xFE, 0),
		extUnary("inc", 16, 0xFF, 0),
		extUnary("inc", 32, 0xFF, 0),
		extUnary("inc", 64, 0xFF, 0),
		extUnary("dec", 8, 0xFE, 1),
		extUnary("dec", 16, 0xFF, 1),
		extUnary("dec", 32, 0xFF, 1),
		extUnary("dec", 64, 0xFF, 1),
	)

	return forms
}

type aluOp struct {
	mnemonic string
	base     byte
	ext      int
}

var aluOps = []aluOp{
	{"add", 0x00, 0},
	{"or", 0x08, 1},
	{"adc", 0x10, 2},
	{"sbb", 0x18, 3},
	{"and", 0x20, 4},
	{"sub", 0x28, 5},
	{"xor", 0x30, 6},
	{"cmp", 0x38, 7},
}

// aluForms expands one ALU mnemonic across its register-direction and
// immediate-form encodings at all four operand widths.
func aluForms(mnemonic string, base byte, ext int) []asm.Form {
	return []asm.Form{
		mr(mnemonic, 8, base+0x00),
		mr(mnemonic, 16, base+0x01),
		mr(mnemonic, 32, base+0x01),
		mr(mnemonic, 64, base+0x01),
		rm(mnemonic, 8, 8, base+0x02),
		rm(mnemonic, 16, 16, base+0x03),
		rm(mnemonic, 32, 32, base+0x03),
		rm(mnemonic, 64, 64, base+0x03),
		extRMImm(mnemonic, 8, 8, ext, 0x80),
		extRMImm(mnemonic, 16, 16, ext, 0x81),
		extRMImm(mnemonic, 32, 32, ext, 0x81),
		extRMImm(mnemonic, 64, 32, ext, 0x81),
		extRMImm(mnemonic, 16, 8, ext, 0x83),
		extRMImm(mnemonic, 32, 8, ext, 0x83),
		extRMImm(mnemonic, 64, 8, ext, 0x83),
	}
}

// imul3 builds the three-operand `imul r, r/m, imm` form: reg and r/m
// slots both classified, followed by a sign-extending immediate.
func imul3(mnemonic string, width, immWidth int, opcode byte) asm.Form {
	return asm.Form{
		Mnemonic: mnemonic,
		Slots: []asm.Slot{
			asm.OperandSlot(asm.Reg(width)),
			asm.OperandSlot(asm.RM(width)),
			asm.OperandSlot(asm.Imm(immWidth)),
		},
		Prefixes: opSizePrefix(width),
		REXW:     width == 64,
		Opcode:   []byte{opcode},
		ModRM:    true,
		RMSlot:   1,
		RegSlot:  0,
		Imms:     []asm.ImmSpec{{Slot: 2, WidthBytes: immWidth / 8}},
	}
}
