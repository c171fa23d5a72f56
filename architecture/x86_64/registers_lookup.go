package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// widthOf maps a RegisterType to the bit width the classifier's
// consume_reg/consume_rm width parameter expects. Only the four
// general-purpose widths participate in core instruction encoding (spec
// §3, "A register name... belongs to exactly one of four width classes");
// every other RegisterType reports 0 and is therefore unreachable through
// Lookup.
func widthOf(t RegisterType) int {
	switch t {
	case Register8:
		return 8
	case Register16:
		return 16
	case Register32:
		return 32
	case Register64:
		return 64
	default:
		return 0
	}
}

// highByteAlias is the legacy 8-bit high-byte register set that can only
// be encoded in the absence of any REX prefix, because encoding index 4-7
// is reused by the REX-only spl/bpl/sil/dil registers (spec §4.3 step 6,
// §9).
var highByteAlias = map[string]bool{"ah": true, "ch": true, "dh": true, "bh": true}

// rexOnlyLowByte is the low-byte register set that shares encoding index
// 4-7 with the high-byte aliases above, reachable only when a REX prefix
// is present.
var rexOnlyLowByte = map[string]bool{"spl": true, "bpl": true, "sil": true, "dil": true}

// Lookup resolves a register name to its classifier-facing info,
// constrained to registers of exactly the requested width (spec §4.1,
// consume_reg/consume_rm; Glossary "RegisterLookup"). It satisfies
// asm.RegisterLookup.
func Lookup(name string, width int) (asm.RegisterInfo, bool) {
	reg, ok := RegistersByName[name]
	if !ok {
		return asm.RegisterInfo{}, false
	}
	if widthOf(reg.Type) != width {
		return asm.RegisterInfo{}, false
	}
	return asm.RegisterInfo{
		Index:       reg.Encoding,
		Width:       width,
		RequiresREX: rexOnlyLowByte[name],
		ForbidsREX:  highByteAlias[name],
	}, true
}
