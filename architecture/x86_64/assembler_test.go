package x86_64_test

import (
	"testing"

	"github.com/corvid-systems/x64asm/architecture/x86_64"
	"github.com/corvid-systems/x64asm/internal/asm"
)

func TestAssembler_IsInstruction(t *testing.T) {
	scenarios := []struct {
		name        string
		instruction string
		expected    bool
	}{
		// Data Movement Instructions
		{"Valid instruction mov", "mov", true},
		{"Valid instruction movzx", "movzx", true},
		{"Valid instruction movsx", "movsx", true},
		{"Valid instruction lea", "lea", true},
		{"Valid instruction push", "push", true},
		{"Valid instruction pop", "pop", true},
		{"Valid instruction xchg", "xchg", true},

		// Arithmetic Instructions
		{"Valid instruction add", "add", true},
		{"Valid instruction sub", "sub", true},
		{"Valid instruction cmp", "cmp", true},

		// Logical Instructions
		{"Valid instruction and", "and", true},
		{"Valid instruction or", "or", true},
		{"Valid instruction xor", "xor", true},

		// Shift and Rotate Instructions
		{"Valid instruction shl", "shl", true},
		{"Valid instruction shr", "shr", true},
		{"Valid instruction sar", "sar", true},
		{"Valid instruction rol", "rol", true},
		{"Valid instruction ror", "ror", true},

		// Control Flow Instructions
		{"Valid instruction jmp", "jmp", true},
		{"Valid instruction je", "je", true},
		{"Valid instruction call", "call", true},
		{"Valid instruction ret", "ret", true},

		// Miscellaneous Instructions
		{"Valid instruction nop", "nop", true},
		{"Valid instruction hlt", "hlt", true},
		{"Valid instruction syscall", "syscall", true},
		{"Valid instruction cpuid", "cpuid", true},

		// Invalid Instructions
		{"Invalid instruction uppercase", "MOV", false},
		{"Invalid instruction empty", "", false},
		{"Invalid instruction random", "frobnicate", false},
		{"Invalid instruction typo", "mova", false},
		{"Invalid instruction partial", "mo", false},
	}

	architecture := x86_64.New("")

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			result := architecture.IsInstruction(scenario.instruction)
			if result != scenario.expected {
				t.Errorf("Expected IsInstruction(%q) to be %v, got %v", scenario.instruction, scenario.expected, result)
			}
		})
	}
}

func TestAssembler_IsRegister(t *testing.T) {
	scenarios := []struct {
		name     string
		register string
		expected bool
	}{
		{"64-bit register", "rax", true},
		{"32-bit register", "eax", true},
		{"16-bit register", "ax", true},
		{"8-bit register", "al", true},
		{"high-byte register", "ah", true},
		{"REX-only low byte", "spl", true},
		{"extended register", "r15", true},
		{"not a register", "frobnicate", false},
		{"empty string", "", false},
		{"mnemonic is not a register", "mov", false},
	}

	architecture := x86_64.New("")

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			result := architecture.IsRegister(scenario.register)
			if result != scenario.expected {
				t.Errorf("Expected IsRegister(%q) to be %v, got %v", scenario.register, scenario.expected, result)
			}
		})
	}
}

func TestAssembler_Assemble(t *testing.T) {
	ident := asm.NewIdent
	num := asm.NewNumber
	comma := func() asm.Token { return asm.NewPunct(asm.TokComma, ",") }

	scenarios := []struct {
		name     string
		tokens   []asm.Token
		expected []byte
	}{
		{
			name:     "ret",
			tokens:   []asm.Token{ident("ret")},
			expected: []byte{0xC3},
		},
		{
			name:     "nop",
			tokens:   []asm.Token{ident("nop")},
			expected: []byte{0x90},
		},
		{
			name:     "mov eax, 1",
			tokens:   []asm.Token{ident("mov"), ident("eax"), comma(), num("1")},
			expected: []byte{0xB8, 0x01, 0x00, 0x00, 0x00},
		},
		{
			name:   "mov rax, 1",
			tokens: []asm.Token{ident("mov"), ident("rax"), comma(), num("1")},
			expected: []byte{
				0x48, 0xB8,
				0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name:     "add rax, eax (register-to-register)",
			tokens:   []asm.Token{ident("add"), ident("rax"), comma(), ident("eax")},
			expected: nil, // width mismatch: must fail to dispatch
		},
	}

	architecture := x86_64.New("")

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			buf, err := architecture.Assemble(scenario.tokens)
			if scenario.expected == nil {
				if err == nil {
					t.Fatalf("expected a dispatch error, got bytes %X", buf.Bytes())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := buf.Bytes()
			if len(got) != len(scenario.expected) {
				t.Fatalf("got %X, want %X", got, scenario.expected)
			}
			for i := range got {
				if got[i] != scenario.expected[i] {
					t.Fatalf("got %X, want %X", got, scenario.expected)
				}
			}
		})
	}
}
