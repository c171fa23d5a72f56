package lexer

import (
	"testing"

	"github.com/corvid-systems/x64asm/internal/asm"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []asm.Token
	}{
		{
			name: "no operands",
			line: "ret",
			want: []asm.Token{asm.NewIdent("ret")},
		},
		{
			name: "two register operands",
			line: "mov rax, rbx",
			want: []asm.Token{
				asm.NewIdent("mov"),
				asm.NewIdent("rax"),
				asm.NewPunct(asm.TokComma, ","),
				asm.NewIdent("rbx"),
			},
		},
		{
			name: "immediate operand",
			line: "mov eax, 1",
			want: []asm.Token{
				asm.NewIdent("mov"),
				asm.NewIdent("eax"),
				asm.NewPunct(asm.TokComma, ","),
				asm.NewNumber("1"),
			},
		},
		{
			name: "memory operand with displacement",
			line: "mov [rbx+8], eax",
			want: []asm.Token{
				asm.NewIdent("mov"),
				asm.NewPunct(asm.TokLBracket, "["),
				asm.NewIdent("rbx"),
				asm.NewPunct(asm.TokPlus, "+"),
				asm.NewNumber("8"),
				asm.NewPunct(asm.TokRBracket, "]"),
				asm.NewPunct(asm.TokComma, ","),
				asm.NewIdent("eax"),
			},
		},
		{
			name: "uppercase mnemonic and register lowercased",
			line: "MOV RAX, 1",
			want: []asm.Token{
				asm.NewIdent("mov"),
				asm.NewIdent("rax"),
				asm.NewPunct(asm.TokComma, ","),
				asm.NewNumber("1"),
			},
		},
		{
			name: "trailing comment stripped",
			line: "nop ; no-op",
			want: []asm.Token{asm.NewIdent("nop")},
		},
		{
			name: "comment-only line yields no tokens",
			line: "; just a comment",
			want: nil,
		},
		{
			name: "blank line yields no tokens",
			line: "   ",
			want: nil,
		},
		{
			name: "verb chain keeps both words as idents",
			line: "rep movsb",
			want: []asm.Token{asm.NewIdent("rep"), asm.NewIdent("movsb")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("Scan(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Scan(%q)[%d] = %+v, want %+v", tt.line, i, got[i], tt.want[i])
				}
			}
		})
	}
}
