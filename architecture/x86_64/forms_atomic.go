package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// Atomic primitive forms: LOCK-prefixed xadd, cmpxchg, and the LOCK
// variants of the ALU-shaped mnemonics (add, sub, and, or, xor). Like the
// REP family in forms_string.go, "lock" is declared as its own mnemonic
// whose first slot is a VerbSlot naming the real instruction, followed by
// that instruction's ordinary comma-separated operand slots.
func atomicForms() []asm.Form {
	var forms []asm.Form

	for _, op := range aluOps {
		if op.mnemonic == "cmp" {
			continue // lock cmp is not a valid encoding: cmp never writes its destination
		}
		for _, width := range []int{8, 16, 32, 64} {
			opcode := op.base + 0x01
			if width == 8 {
				opcode = op.base
			}
			forms = append(forms, lockMR(op.mnemonic, width, opcode))
		}
	}

	for _, width := range []int{8, 16, 32, 64} {
		forms = append(forms, lockMR("xadd", width, xaddOpcode(width)))
		forms = append(forms, lockCmpxchg(width))
	}

	return forms
}

func xaddOpcode(width int) byte {
	if width == 8 {
		return 0xC0
	}
	return 0xC1
}

// lockMR builds `lock <mnemonic> r/m, r` — the store-direction ModR/M
// shape, prefixed with 0xF0 ahead of any REX byte (spec.md §4.3 point 5).
func lockMR(mnemonic string, width int, opcode byte) asm.Form {
	f := mr(mnemonic, width, opcode)
	if mnemonic == "xadd" {
		f.Opcode = []byte{0x0F, opcode}
	}
	f.Prefixes = append([]byte{0xF0}, f.Prefixes...)
	return asm.Form{
		Mnemonic: "lock",
		Slots:    append([]asm.Slot{asm.VerbSlot(mnemonic)}, f.Slots...),
		Prefixes: f.Prefixes,
		REXW:     f.REXW,
		Opcode:   f.Opcode,
		ModRM:    f.ModRM,
		RMSlot:   f.RMSlot + 1,
		RegSlot:  f.RegSlot + 1,
	}
}

// lockCmpxchg builds `lock cmpxchg r/m, r` (opcode 0F B0/B1).
func lockCmpxchg(width int) asm.Form {
	opcode := byte(0xB0)
	if width != 8 {
		opcode = 0xB1
	}
	return asm.Form{
		Mnemonic: "lock",
		Slots:    []asm.Slot{asm.VerbSlot("cmpxchg"), asm.OperandSlot(asm.RM(width)), asm.OperandSlot(asm.Reg(width))},
		Prefixes: []byte{0xF0},
		REXW:     width == 64,
		Opcode:   []byte{0x0F, opcode},
		ModRM:    true,
		RMSlot:   1,
		RegSlot:  2,
	}
}
