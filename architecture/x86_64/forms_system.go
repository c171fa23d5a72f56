package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// System and flag instruction forms: all niladic, grounded on the
// teacher's v0/kasm/codegen_encode.go opcode table for the handful it
// already lists (syscall, nop) and the Intel SDM one-byte-opcode tables
// for the rest.
func systemForms() []asm.Form {
	return []asm.Form{
		{Mnemonic: "syscall", Opcode: []byte{0x0F, 0x05}, RMSlot: asm.NoSlot, RegSlot: asm.NoSlot},
		{Mnemonic: "cpuid", Opcode: []byte{0x0F, 0xA2}, RMSlot: asm.NoSlot, RegSlot: asm.NoSlot},
		niladic("hlt", 0xF4),
		niladic("nop", 0x90),
		niladic("clc", 0xF8),
		niladic("stc", 0xF9),
		niladic("cmc", 0xF5),
		niladic("cli", 0xFA),
		niladic("sti", 0xFB),
		niladic("cld", 0xFC),
		niladic("std", 0xFD),
		niladic("lahf", 0x9F),
		niladic("sahf", 0x9E),
		{Mnemonic: "cwd", Prefixes: []byte{0x66}, Opcode: []byte{0x99}, RMSlot: asm.NoSlot, RegSlot: asm.NoSlot},
		niladic("cdq", 0x99),
		{Mnemonic: "cqo", REXW: true, Opcode: []byte{0x99}, RMSlot: asm.NoSlot, RegSlot: asm.NoSlot},
	}
}
