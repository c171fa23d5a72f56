package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// Shift/rotate forms: shl, shr, sar, rol, ror, rcl, rcr. Each mnemonic
// shares the D0/D1 (shift-by-1), D2/D3 (shift-by-cl), and C0/C1
// (shift-by-imm8) opcode triplet, distinguished only by a /digit
// extension — grounded on the same opcode-extension mechanism as the
// F6/F7 unary group in forms_arithmetic.go (spec.md §3, Glossary "Opcode
// extension"). The shift-by-1 and shift-by-cl forms have no real operand
// in their second slot: "1" and "cl" are fixed keywords the form matches
// literally (spec.md §3's "Keyword" token kind), not values the
// classifier extracts.
func shiftForms() []asm.Form {
	var forms []asm.Form
	for _, op := range shiftOps {
		forms = append(forms, shiftTriplet(op.mnemonic, op.ext)...)
	}
	return forms
}

type shiftOp struct {
	mnemonic string
	ext      int
}

var shiftOps = []shiftOp{
	{"rol", 0}, {"ror", 1}, {"rcl", 2}, {"rcr", 3},
	{"shl", 4}, {"shr", 5}, {"sar", 7},
}

func shiftTriplet(mnemonic string, ext int) []asm.Form {
	var forms []asm.Form
	for _, width := range []int{8, 16, 32, 64} {
		byOpcode := byte(0xD0)
		if width != 8 {
			byOpcode = 0xD1
		}
		clOpcode := byte(0xD2)
		if width != 8 {
			clOpcode = 0xD3
		}
		immOpcode := byte(0xC0)
		if width != 8 {
			immOpcode = 0xC1
		}

		forms = append(forms,
			asm.Form{
				Mnemonic:  mnemonic,
				Slots:     []asm.Slot{asm.OperandSlot(asm.RM(width)), asm.LiteralSlot("1")},
				Prefixes:  opSizePrefix(width),
				REXW:      width == 64,
				Opcode:    []byte{byOpcode},
				ModRM:     true,
				RMSlot:    0,
				RegSlot:   asm.NoSlot,
				OpcodeExt: ext,
			},
			asm.Form{
				Mnemonic:  mnemonic,
				Slots:     []asm.Slot{asm.OperandSlot(asm.RM(width)), asm.LiteralSlot("cl")},
				Prefixes:  opSizePrefix(width),
				REXW:      width == 64,
				Opcode:    []byte{clOpcode},
				ModRM:     true,
				RMSlot:    0,
				RegSlot:   asm.NoSlot,
				OpcodeExt: ext,
			},
			extRMImm(mnemonic, width, 8, ext, immOpcode),
		)
	}
	return forms
}
