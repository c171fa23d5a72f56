package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// adcx, adox, and crc32 are spec.md §4.3/§9's named exceptions to the
// usual derived-prefix convention: their mandatory 0x66/0xF2/0xF3 bytes
// are opcode-map selectors, not operand-size overrides, and the table
// carries them as an explicit per-form byte list rather than computing
// them from operand width the way opSizePrefix does for every other
// group (SPEC_FULL.md §4.3's last bullet).
func literalByteListForms() []asm.Form {
	var forms []asm.Form

	for _, width := range []int{32, 64} {
		forms = append(forms,
			asm.Form{
				Mnemonic: "adcx",
				Slots:    []asm.Slot{asm.OperandSlot(asm.Reg(width)), asm.OperandSlot(asm.RM(width))},
				Prefixes: []byte{0x66},
				REXW:     width == 64,
				Opcode:   []byte{0x0F, 0x38, 0xF6},
				ModRM:    true,
				RMSlot:   1,
				RegSlot:  0,
			},
			asm.Form{
				Mnemonic: "adox",
				Slots:    []asm.Slot{asm.OperandSlot(asm.Reg(width)), asm.OperandSlot(asm.RM(width))},
				Prefixes: []byte{0xF3},
				REXW:     width == 64,
				Opcode:   []byte{0x0F, 0x38, 0xF6},
				ModRM:    true,
				RMSlot:   1,
				RegSlot:  0,
			},
		)
	}

	forms = append(forms,
		crc32Form(32, 8, []byte{0xF2}, 0xF0),
		crc32Form(32, 16, []byte{0xF2, 0x66}, 0xF1),
		crc32Form(32, 32, []byte{0xF2}, 0xF1),
		crc32Form(64, 8, []byte{0xF2}, 0xF0),
		crc32Form(64, 64, []byte{0xF2}, 0xF1),
	)

	return forms
}

func crc32Form(dstWidth, srcWidth int, prefixes []byte, opcode2 byte) asm.Form {
	return asm.Form{
		Mnemonic: "crc32",
		Slots:    []asm.Slot{asm.OperandSlot(asm.Reg(dstWidth)), asm.OperandSlot(asm.RM(srcWidth))},
		Prefixes: prefixes,
		REXW:     dstWidth == 64,
		Opcode:   []byte{0x0F, 0x38, opcode2},
		ModRM:    true,
		RMSlot:   1,
		RegSlot:  0,
	}
}
