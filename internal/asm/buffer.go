package asm

import "encoding/binary"

// Buffer is the append-only byte container owned by exactly one form
// recognizer attempt (spec §3, §4.2). It is the only place instruction
// bytes are produced — forms never compute bytes in isolation. A failed
// attempt's buffer is simply discarded; only the winning form's buffer
// survives to the caller (spec §5).
type Buffer struct {
	mnemonic string
	bytes    []byte
}

// NewBuffer creates an empty buffer tagged with the mnemonic it is
// encoding, for diagnostics/listing purposes (spec §3, §6.2).
func NewBuffer(mnemonic string) *Buffer {
	return &Buffer{mnemonic: mnemonic}
}

// Mnemonic returns the instruction name this buffer was built for.
func (b *Buffer) Mnemonic() string { return b.mnemonic }

// Bytes returns the emitted byte sequence, 1 to 15 bytes long on a
// completed instruction (spec §6.2).
func (b *Buffer) Bytes() []byte { return b.bytes }

// WriteByte appends one byte (spec §4.2, write_byte).
func (b *Buffer) WriteByte(v byte) {
	b.bytes = append(b.bytes, v)
}

// WriteBytes appends a fixed sequence, used for opcode byte sequences and
// mandatory legacy prefixes (spec §4.3, steps 5 and 7).
func (b *Buffer) WriteBytes(vs ...byte) {
	b.bytes = append(b.bytes, vs...)
}

// WriteImm appends value in little-endian two's-complement using exactly
// widthBytes bytes (spec §4.2, write_imm). Overflow is a caller contract —
// already checked by the classifier before the value reaches here.
func (b *Buffer) WriteImm(value int64, widthBytes int) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(value))
	b.bytes = append(b.bytes, tmp[:widthBytes]...)
}

// WriteREX appends a single REX prefix byte: 0x40 | (W<<3) |
// ((regIndex>>3)<<2) | (rmIndex>>3) (spec §4.2, write_rex). rmIndex maps
// to REX.B, regIndex to REX.R. REX.X is never set — SIB-indexed
// addressing is outside this core's operand grammar (spec §4.2, §9).
func (b *Buffer) WriteREX(w bool, rmIndex, regIndex byte) {
	var wBit byte
	if w {
		wBit = 1
	}
	rex := 0x40 | (wBit << 3) | ((regIndex >> 3) << 2) | (rmIndex >> 3)
	b.WriteByte(rex)
}

// WriteModRMDisp composes the ModR/M byte as (mod<<6) |
// ((regOrOpcodeExt&7)<<3) | (rmIndex&7) and, for IndirectDisp8/
// IndirectDisp32 modes, appends the displacement in 1 or 4 little-endian
// bytes. No SIB byte is ever emitted (spec §4.2, write_offset).
func (b *Buffer) WriteModRMDisp(mode ModRMMode, rmIndex, regOrOpcodeExt byte, disp int32) {
	modrm := (mode.modBits() << 6) | ((regOrOpcodeExt & 7) << 3) | (rmIndex & 7)
	b.WriteByte(modrm)

	switch mode.DispBytes() {
	case 1:
		b.WriteByte(byte(int8(disp)))
	case 4:
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(disp))
		b.bytes = append(b.bytes, tmp[:]...)
	}
}
