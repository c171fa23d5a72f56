package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// Data movement forms: mov, movzx, movsx, lea, xchg, push, pop, cmovcc.
// Grounded on the teacher's architecture/x86_64/instructions.go MOV/
// MOVZX/MOVSX/LEA/PUSH/POP/XCHG entries, generalized across all four
// operand widths.
func dataMovementForms() []asm.Form {
	var forms []asm.Form

	// mov r/m, r (store direction, opcode 0x88/0x89)
	forms = append(forms,
		mr("mov", 8, 0x88),
		mr("mov", 16, 0x89),
		mr("mov", 32, 0x89),
		mr("mov", 64, 0x89),
	)
	// mov r, r/m (load direction, opcode 0x8A/0x8B) — lets `mov r8, [rbx]`
	// classify, since `mr` above only accepts a register second operand.
	// When both operands are registers the store-direction form above is
	// declared first and always wins (e.g. `mov eax, ebx` is 89 D8, not the
	// equivalent 8B C3), so these rows are reached only when the second
	// operand is a memory reference.
	forms = append(forms,
		rm("mov", 8, 8, 0x8A),
		rm("mov", 16, 16, 0x8B),
		rm("mov", 32, 32, 0x8B),
		rm("mov", 64, 64, 0x8B),
	)
	// mov r, imm
	forms = append(forms,
		riPlusR("mov", 8, 8, 0xB0),
		riPlusR("mov", 16, 16, 0xB8),
		riPlusR("mov", 32, 32, 0xB8),
		riPlusR("mov", 64, 64, 0xB8),
	)
	// mov r/m, imm
	forms = append(forms,
		extRMImm("mov", 8, 8, 0, 0xC6),
		extRMImm("mov", 16, 16, 0, 0xC7),
		extRMImm("mov", 32, 32, 0, 0xC7),
		extRMImm("mov", 64, 32, 0, 0xC7),
	)

	// movzx r, r/m8 and r, r/m16
	forms = append(forms,
		rm("movzx", 16, 8, 0x0F, 0xB6),
		rm("movzx", 32, 8, 0x0F, 0xB6),
		rm("movzx", 64, 8, 0x0F, 0xB6),
		rm("movzx", 32, 16, 0x0F, 0xB7),
		rm("movzx", 64, 16, 0x0F, 0xB7),
	)
	// movsx r, r/m8 and r, r/m16; movsxd r, r/m32
	forms = append(forms,
		rm("movsx", 16, 8, 0x0F, 0xBE),
		rm("movsx", 32, 8, 0x0F, 0xBE),
		rm("movsx", 64, 8, 0x0F, 0xBE),
		rm("movsx", 32, 16, 0x0F, 0xBF),
		rm("movsx", 64, 16, 0x0F, 0xBF),
		rm("movsxd", 64, 32, 0x63),
	)

	// lea r, m (the rm slot must be a memory reference; the classifier's
	// consume_rm accepts a bare register too, which would make `lea r, r`
	// classify bytes-wise identically to a nonsensical address-of-register
	// — callers are expected to only ever supply a bracketed operand, per
	// spec.md §4.1's scope: the classifier does not itself forbid it, as
	// rejecting a syntactically valid rm based on its semantic meaning
	// would require look-ahead the grammar does not carry).
	forms = append(forms,
		rm("lea", 32, 32, 0x8D),
		rm("lea", 64, 64, 0x8D),
	)

	// xchg r, r/m (also the r/m, r direction produces identical bytes
	// since xchg is symmetric; only one direction is declared)
	forms = append(forms,
		rm("xchg", 8, 8, 0x86),
		rm("xchg", 16, 16, 0x87),
		rm("xchg", 32, 32, 0x87),
		rm("xchg", 64, 64, 0x87),
	)

	// push / pop
	forms = append(forms,
		plusR("push", 64, 0x50),
		plusR("push", 16, 0x50),
		immOnly("push", 8, 0x6A),
		immOnly("push", 32, 0x68),
		extUnary("push", 64, 0xFF, 6),
		plusR("pop", 64, 0x58),
		plusR("pop", 16, 0x58),
		extUnary("pop", 64, 0x8F, 0),
	)

	// cmovcc r, r/m — conditional move family, one row per condition code.
	for _, cc := range conditionCodes {
		forms = append(forms,
			rm("cmov"+cc.suffix, 16, 16, 0x0F, 0x40+cc.code),
			rm("cmov"+cc.suffix, 32, 32, 0x0F, 0x40+cc.code),
			rm("cmov"+cc.suffix, 64, 64, 0x0F, 0x40+cc.code),
		)
	}

	return forms
}

// conditionCode pairs a mnemonic suffix with the condition-code nibble
// shared by Jcc, CMOVcc, and SETcc (spec.md §4.3's Jcc family list).
type conditionCode struct {
	suffix string
	code   byte
}

var conditionCodes = []conditionCode{
	{"o", 0x0}, {"no", 0x1}, {"b", 0x2}, {"ae", 0x3},
	{"e", 0x4}, {"ne", 0x5}, {"be", 0x6}, {"a", 0x7},
	{"s", 0x8}, {"ns", 0x9}, {"p", 0xA}, {"np", 0xB},
	{"l", 0xC}, {"ge", 0xD}, {"le", 0xE}, {"g", 0xF},
}
