package asm

// RegisterInfo is what an architecture's register catalogue hands back to
// the classifier for a recognized register name (spec §6.1: "Recognition
// as one of a fixed catalogue of register names mapping to an index 0-15
// and a width bucket").
//
// RequiresREX and ForbidsREX exist only for the 8-bit register space,
// where encoding index 4-7 is ambiguous between the legacy high-byte
// registers (ah/ch/dh/bh — only reachable without any REX prefix) and the
// REX-only low-byte extensions (spl/bpl/sil/dil — only reachable with a
// REX prefix present). See spec §4.3 step 6 and §9.
type RegisterInfo struct {
	Index       byte
	Width       int
	RequiresREX bool
	ForbidsREX  bool
}

// RegisterLookup resolves a lowercase register name to its encoding
// info, constrained to registers of exactly the given bit width (spec
// §4.1, consume_reg: "the classifier rejects a register of the wrong
// width").
type RegisterLookup func(name string, width int) (RegisterInfo, bool)
