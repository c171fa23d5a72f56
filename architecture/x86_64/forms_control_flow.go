package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// Control transfer forms: jmp, call, ret, the full jcc family, and the
// loop/loope/loopne family. Grounded on the teacher's v0/kasm/
// codegen_encode.go JMP/CALL opcode-extension switch, generalized into
// table rows.
func controlFlowForms() []asm.Form {
	var forms []asm.Form

	forms = append(forms,
		relForm("jmp", 8, 0xEB),
		relForm("jmp", 32, 0xE9),
		extUnary("jmp", 64, 0xFF, 4),

		relForm("call", 32, 0xE8),
		extUnary("call", 64, 0xFF, 2),

		niladic("ret", 0xC3),
		immOnly("ret", 16, 0xC2),

		relForm("loop", 8, 0xE2),
		relForm("loope", 8, 0xE1),
		relForm("loopne", 8, 0xE0),
	)

	for _, cc := range conditionCodes {
		forms = append(forms,
			relForm("j"+cc.suffix, 8, 0x70+cc.code),
			relForm("j"+cc.suffix, 32, 0x0F, 0x80+cc.code),
		)
	}

	return forms
}
