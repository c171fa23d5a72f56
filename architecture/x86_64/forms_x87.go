package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// x87 register-stack forms: fld, fstp, fadd, fmul, fsub, fdiv. FPU stack
// registers (st(0)..st(7)) are not part of the general-purpose register
// catalogue Lookup serves, and carrying full x87 state-machine semantics
// is an explicit Non-goal beyond opcode-byte correctness (spec.md §1,
// SPEC_FULL.md §4.3's x87 entry). Each st(i) is therefore modeled as a
// literal keyword (LiteralSlot), the same mechanism the shift group uses
// for its fixed "1"/"cl" operands — the stack index is baked into the
// opcode's low three bits exactly like a "+r" register, just resolved at
// table-construction time instead of dispatch time, since the source text
// already names the exact index.
func x87Forms() []asm.Form {
	var forms []asm.Form

	for i := 0; i < 8; i++ {
		st := stackReg(i)
		forms = append(forms,
			asm.Form{Mnemonic: "fld", Slots: []asm.Slot{asm.LiteralSlot(st)}, Opcode: []byte{0xD9, 0xC0 + byte(i)}, RMSlot: asm.NoSlot, RegSlot: asm.NoSlot},
			asm.Form{Mnemonic: "fstp", Slots: []asm.Slot{asm.LiteralSlot(st)}, Opcode: []byte{0xDD, 0xD8 + byte(i)}, RMSlot: asm.NoSlot, RegSlot: asm.NoSlot},
		)
	}

	for _, op := range []struct {
		mnemonic string
		base     byte
	}{
		{"fadd", 0xC0}, {"fmul", 0xC8}, {"fsub", 0xE0}, {"fdiv", 0xF0},
	} {
		for i := 0; i < 8; i++ {
			forms = append(forms,
				// fadd st(0), st(i)
				asm.Form{
					Mnemonic: op.mnemonic,
					Slots:    []asm.Slot{asm.LiteralSlot(stackReg(0)), asm.LiteralSlot(stackReg(i))},
					Opcode:   []byte{0xD8, op.base + byte(i)},
					RMSlot:   asm.NoSlot, RegSlot: asm.NoSlot,
				},
				// fadd st(i), st(0) — the reverse-destination variant
				// (st(i) is the destination, nothing is popped), distinct
				// opcode escape (0xDC) per the SDM.
				asm.Form{
					Mnemonic: op.mnemonic,
					Slots:    []asm.Slot{asm.LiteralSlot(stackReg(i)), asm.LiteralSlot(stackReg(0))},
					Opcode:   []byte{0xDC, op.base + byte(i)},
					RMSlot:   asm.NoSlot, RegSlot: asm.NoSlot,
				},
			)
		}
	}

	return forms
}

func stackReg(i int) string {
	return "st(" + string(rune('0'+i)) + ")"
}
