package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// This file holds the small, shape-based constructors the forms_*.go data
// files build on — the teacher's architecture/x86_64/instructions.go lists
// one literal asm.InstructionForm per row; this expansion keeps that same
// one-row-per-encoding-variant texture but factors out the handful of
// repeated shapes (reg/rm pairs at each of the four widths, opcode+imm,
// opcode-only) since the form count here is an order of magnitude larger
// than the teacher's own table.

// opSizePrefix returns the mandatory 0x66 operand-size override a 16-bit
// form needs (spec.md §4.3 point 5); every other width needs none.
func opSizePrefix(width int) []byte {
	if width == 16 {
		return []byte{0x66}
	}
	return nil
}

// mr builds a ModR/M form whose r/m slot is the destination (operand 0)
// and whose reg slot is the source (operand 1) — the "MR" encoding, e.g.
// `mov r/m8, r8` opcode 0x88.
func mr(mnemonic string, width int, opcode ...byte) asm.Form {
	return asm.Form{
		Mnemonic: mnemonic,
		Slots:    []asm.Slot{asm.OperandSlot(asm.RM(width)), asm.OperandSlot(asm.Reg(width))},
		Prefixes: opSizePrefix(width),
		REXW:     width == 64,
		Opcode:   opcode,
		ModRM:    true,
		RMSlot:   0,
		RegSlot:  1,
	}
}

// rm builds a ModR/M form whose reg slot is the destination (operand 0)
// and whose r/m slot is the source (operand 1) — the "RM" encoding, e.g.
// `movzx r32, r/m8` opcode 0F B6.
func rm(mnemonic string, dstWidth, srcWidth int, opcode ...byte) asm.Form {
	return asm.Form{
		Mnemonic: mnemonic,
		Slots:    []asm.Slot{asm.OperandSlot(asm.Reg(dstWidth)), asm.OperandSlot(asm.RM(srcWidth))},
		Prefixes: opSizePrefix(dstWidth),
		REXW:     dstWidth == 64,
		Opcode:   opcode,
		ModRM:    true,
		RMSlot:   1,
		RegSlot:  0,
	}
}

// extUnary builds a ModR/M form with a single r/m operand and an opcode
// extension in the reg field instead of a second operand — e.g.
// `neg r/m32` is opcode 0xF7 /3.
func extUnary(mnemonic string, width int, opcode byte, ext int) asm.Form {
	return asm.Form{
		Mnemonic:  mnemonic,
		Slots:     []asm.Slot{asm.OperandSlot(asm.RM(width))},
		Prefixes:  opSizePrefix(width),
		REXW:      width == 64,
		Opcode:    []byte{opcode},
		ModRM:     true,
		RMSlot:    0,
		RegSlot:   asm.NoSlot,
		OpcodeExt: ext,
	}
}

// extRMImm builds a ModR/M form with an r/m operand, an opcode extension
// in the reg field, and a trailing immediate — e.g. `add r/m32, imm8` is
// opcode 0x83 /0 ib; `bt r/m32, imm8` is the two-byte opcode 0F BA /4 ib.
func extRMImm(mnemonic string, rmWidth, immWidth int, ext int, opcode ...byte) asm.Form {
	return asm.Form{
		Mnemonic:  mnemonic,
		Slots:     []asm.Slot{asm.OperandSlot(asm.RM(rmWidth)), asm.OperandSlot(asm.Imm(immWidth))},
		Prefixes:  opSizePrefix(rmWidth),
		REXW:      rmWidth == 64,
		Opcode:    opcode,
		ModRM:     true,
		RMSlot:    0,
		RegSlot:   asm.NoSlot,
		OpcodeExt: ext,
		Imms:      []asm.ImmSpec{{Slot: 1, WidthBytes: immWidth / 8}},
	}
}

// riPlusR builds a "+r" form with the register folded into the opcode's
// low 3 bits, followed by an immediate of immWidth bits — e.g.
// `mov r32, imm32` opcode 0xB8+r id (width=32, immWidth=32), or
// `mov r64, imm64` opcode 0xB8+r io (width=64, immWidth=64: unlike the
// ALU-shaped opcodes, MOV's +r immediate form never sign-extends a
// narrower immediate).
func riPlusR(mnemonic string, width, immWidth int, opcode byte) asm.Form {
	return asm.Form{
		Mnemonic:  mnemonic,
		Slots:     []asm.Slot{asm.OperandSlot(asm.Reg(width)), asm.OperandSlot(asm.Imm(immWidth))},
		Prefixes:  opSizePrefix(width),
		REXW:      width == 64,
		Opcode:    []byte{opcode},
		PlusR:     true,
		PlusRSlot: 0,
		RMSlot:    asm.NoSlot,
		RegSlot:   asm.NoSlot,
		Imms:      []asm.ImmSpec{{Slot: 1, WidthBytes: immWidth / 8}},
	}
}

// plusR builds a bare "+r" form with no trailing immediate, e.g.
// `push r64` opcode 0x50+r.
func plusR(mnemonic string, width int, opcode byte) asm.Form {
	return asm.Form{
		Mnemonic:  mnemonic,
		Slots:     []asm.Slot{asm.OperandSlot(asm.Reg(width))},
		Prefixes:  opSizePrefix(width),
		Opcode:    []byte{opcode},
		PlusR:     true,
		PlusRSlot: 0,
		RMSlot:    asm.NoSlot,
		RegSlot:   asm.NoSlot,
	}
}

// niladic builds a form with no operands at all, e.g. `ret` opcode 0xC3.
func niladic(mnemonic string, opcode ...byte) asm.Form {
	return asm.Form{
		Mnemonic: mnemonic,
		Opcode:   opcode,
		RMSlot:   asm.NoSlot,
		RegSlot:  asm.NoSlot,
	}
}

// relForm builds a rel8/rel32 control-transfer form, e.g. `jmp rel8`
// opcode 0xEB.
func relForm(mnemonic string, width int, opcode ...byte) asm.Form {
	return asm.Form{
		Mnemonic: mnemonic,
		Slots:    []asm.Slot{asm.OperandSlot(asm.Rel(width))},
		Opcode:   opcode,
		RMSlot:   asm.NoSlot,
		RegSlot:  asm.NoSlot,
		Imms:     []asm.ImmSpec{{Slot: 0, WidthBytes: width / 8}},
	}
}

// immOnly builds a form with a single immediate and no register/memory
// operand, e.g. `ret imm16` opcode 0xC2 iw, or `push imm32` opcode 0x68 id.
func immOnly(mnemonic string, width int, opcode ...byte) asm.Form {
	return asm.Form{
		Mnemonic: mnemonic,
		Slots:    []asm.Slot{asm.OperandSlot(asm.Imm(width))},
		Opcode:   opcode,
		RMSlot:   asm.NoSlot,
		RegSlot:  asm.NoSlot,
		Imms:     []asm.ImmSpec{{Slot: 0, WidthBytes: width / 8}},
	}
}
