// Package encodeprim holds the pure functions that compute ModR/M
// addressing mode, REX composition, and "+r" opcode offsets from abstract
// operand descriptors (spec §4.5, "Encoding Primitives"). These are
// deliberately free of any I/O or buffer mutation so that they can also be
// used by the size-estimation pass a driver performs before relocation
// (spec §1: "the encoder sees only resolved immediates and resolved
// relative displacements" — a caller computing provisional sizes needs
// the same ModR/M math without committing bytes).
package encodeprim

import "github.com/corvid-systems/x64asm/internal/asm"

// ModeFromRM projects an rm operand onto a ModR/M mode: NoDereference when
// the operand is a bare register, IndirectNoDisp for `[base]` with no
// displacement, IndirectDisp8 when the displacement fits in a signed
// byte, IndirectDisp32 otherwise (spec §4.5, mod_from_rm).
func ModeFromRM(isMemory bool, hasDisp bool, disp int32) asm.ModRMMode {
	if !isMemory {
		return asm.NoDereference
	}
	if !hasDisp || disp == 0 {
		return asm.IndirectNoDisp
	}
	if disp >= -128 && disp <= 127 {
		return asm.IndirectDisp8
	}
	return asm.IndirectDisp32
}

// ComposeREX computes the REX prefix byte for the given W bit and the two
// register indices that feed REX.R (reg field) and REX.B (rm field).
// REX.X is always zero in this core — SIB-indexed addressing is not part
// of the operand grammar (spec §4.2, §4.5, §9).
func ComposeREX(w bool, rmIndex, regIndex byte) byte {
	var wBit byte
	if w {
		wBit = 1
	}
	return 0x40 | (wBit << 3) | ((regIndex >> 3) << 2) | (rmIndex >> 3)
}

// OpcodePlusR adds only the low three bits of a register index into a
// base opcode byte; the high bit, if any, is carried by REX.B instead
// (spec §4.5, "opcode+r").
func OpcodePlusR(opcode, regIndex byte) byte {
	return opcode + (regIndex & 0x07)
}

// NeedsRexB reports whether encoding rmIndex as the r/m (or +r opcode)
// register requires REX.B — i.e. the index is 8 or greater.
func NeedsRexB(index byte) bool {
	return index >= 8
}
