package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// String instruction forms: movs, stos, lods, cmps, scas, each in their
// byte/word/dword/qword-suffixed spelling (movsb/movsw/movsd/movsq, ...),
// plus the REP/REPE/REPNE mandatory-prefix variants (spec.md §4.3's
// string-operation group).
//
// The source grammar spells a repeat prefix as a separate leading word
// ("rep movsb"), which does not fit the single-leading-mnemonic-token
// model the rest of this table uses. Rather than extending the Form
// Dispatcher to special-case multi-token mnemonics, each repeat prefix is
// declared as its own mnemonic ("rep", "repe", "repne") whose one slot is
// a mnemonic-continuation keyword (asm.VerbSlot) naming the underlying
// string op — matched with no comma before it, unlike an ordinary
// operand-list keyword.
func stringForms() []asm.Form {
	var forms []asm.Form

	forms = append(forms, stringOpForms("movs", 0xA4, 0xA5)...)
	forms = append(forms, stringOpForms("stos", 0xAA, 0xAB)...)
	forms = append(forms, stringOpForms("lods", 0xAC, 0xAD)...)
	forms = append(forms, stringOpForms("cmps", 0xA6, 0xA7)...)
	forms = append(forms, stringOpForms("scas", 0xAE, 0xAF)...)

	for _, suffix := range []string{"b", "w", "d", "q"} {
		forms = append(forms,
			repForm("rep", "movs"+suffix, 0xF3, 0xA4, 0xA5, suffix),
			repForm("rep", "stos"+suffix, 0xF3, 0xAA, 0xAB, suffix),
			repForm("rep", "lods"+suffix, 0xF3, 0xAC, 0xAD, suffix),
			repForm("repe", "cmps"+suffix, 0xF3, 0xA6, 0xA7, suffix),
			repForm("repne", "cmps"+suffix, 0xF2, 0xA6, 0xA7, suffix),
			repForm("repe", "scas"+suffix, 0xF3, 0xAE, 0xAF, suffix),
			repForm("repne", "scas"+suffix, 0xF2, 0xAE, 0xAF, suffix),
		)
	}

	return forms
}

// stringOpForms builds the four bare (no repeat prefix) niladic forms for
// one string mnemonic stem: byteOpcode is the b-suffixed opcode, wideOpcode
// is shared by the w/d/q suffixes (distinguished only by 0x66 or REX.W).
func stringOpForms(stem string, byteOpcode, wideOpcode byte) []asm.Form {
	return []asm.Form{
		niladic(stem+"b", byteOpcode),
		{Mnemonic: stem + "w", Prefixes: []byte{0x66}, Opcode: []byte{wideOpcode}, RMSlot: asm.NoSlot, RegSlot: asm.NoSlot},
		niladic(stem+"d", wideOpcode),
		{Mnemonic: stem + "q", REXW: true, Opcode: []byte{wideOpcode}, RMSlot: asm.NoSlot, RegSlot: asm.NoSlot},
	}
}

// repForm builds one repeat-prefixed form: prefixByte ahead of the
// suffix-selected opcode, with the underlying string op name matched as a
// literal keyword rather than a second mnemonic.
func repForm(repMnemonic, literalOp string, prefixByte, byteOpcode, wideOpcode byte, suffix string) asm.Form {
	opcode := wideOpcode
	var prefixes []byte
	switch suffix {
	case "b":
		opcode = byteOpcode
		prefixes = []byte{prefixByte}
	case "w":
		prefixes = []byte{prefixByte, 0x66}
	case "d":
		prefixes = []byte{prefixByte}
	case "q":
		prefixes = []byte{prefixByte}
	}
	f := asm.Form{
		Mnemonic: repMnemonic,
		Slots:    []asm.Slot{asm.VerbSlot(literalOp)},
		Prefixes: prefixes,
		Opcode:   []byte{opcode},
		RMSlot:   asm.NoSlot,
		RegSlot:  asm.NoSlot,
	}
	if suffix == "q" {
		f.REXW = true
	}
	return f
}
