package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// Bit manipulation forms: bt, bts, btr, btc, bsf, bsr, popcnt. None of
// these mnemonics has an 8-bit-operand encoding in the ISA, so only the
// 16/32/64 widths are declared, mirroring the Intel SDM tables these are
// grounded on.
func bitForms() []asm.Form {
	var forms []asm.Form

	for _, op := range []struct {
		mnemonic string
		opcode2  byte // 0F xx /r register-index form
		ext      int  // 0F BA /ext ib immediate-index form
	}{
		{"bt", 0xA3, 4},
		{"bts", 0xAB, 5},
		{"btr", 0xB3, 6},
		{"btc", 0xBB, 7},
	} {
		for _, width := range []int{16, 32, 64} {
			forms = append(forms,
				mr(op.mnemonic, width, 0x0F, op.opcode2),
				extRMImm(op.mnemonic, width, 8, op.ext, 0x0F, 0xBA),
			)
		}
	}

	for _, width := range []int{16, 32, 64} {
		forms = append(forms,
			rm("bsf", width, width, 0x0F, 0xBC),
			rm("bsr", width, width, 0x0F, 0xBD),
			popcnt(width),
		)
	}

	return forms
}

// popcnt r, r/m carries a mandatory 0xF3 prefix ahead of its 0F escape
// (spec.md §4.3 point 5: mandatory legacy prefixes are part of the form's
// fixed byte template, emitted before REX).
func popcnt(width int) asm.Form {
	f := rm("popcnt", width, width, 0x0F, 0xB8)
	f.Prefixes = append([]byte{0xF3}, f.Prefixes...)
	return f
}
