package asm_test

import (
	"testing"

	"github.com/corvid-systems/x64asm/internal/asm"
)

type fakeArchitecture struct {
	registers map[string]bool
}

func (f fakeArchitecture) Name() string { return "fake" }
func (f fakeArchitecture) IsRegister(name string) bool {
	return f.registers[name]
}
func (f fakeArchitecture) Assemble([]asm.Token) (*asm.Buffer, error) {
	return nil, nil
}

func TestIsLabel(t *testing.T) {
	arch := fakeArchitecture{registers: map[string]bool{"rax": true, "eax": true}}

	scenarios := []struct {
		name     string
		line     string
		expected bool
	}{
		{"simple label", "start:", true},
		{"label with leading whitespace", "   loop:", true},
		{"label with trailing comment", "stop: ; end of program", true},
		{"instruction is not a label", "mov rax, 1", false},
		{"register name with colon is not a label", "rax:", false},
		{"empty line is not a label", "", false},
		{"name with embedded space is not a label", "not a label:", false},
		{"line without trailing colon is not a label", "start", false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			if got := asm.IsLabel(scenario.line, arch); got != scenario.expected {
				t.Errorf("IsLabel(%q) = %v, want %v", scenario.line, got, scenario.expected)
			}
		})
	}
}
