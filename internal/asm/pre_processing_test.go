package asm_test

import (
	"testing"

	"github.com/corvid-systems/x64asm/internal/asm"
)

func TestPreProcessingRemoveComments(t *testing.T) {
	scenarios := []struct {
		name     string
		input    string
		expected string
	}{
		{"no comment", "mov rax, 1\n", "mov rax, 1\n"},
		{"trailing comment stripped", "mov rax, 1 ; load one\n", "mov rax, 1 \n"},
		{"comment-only line becomes empty", "; just a comment\n", "\n"},
		{"multiple lines", "nop ; a\nret ; b\n", "nop \nret \n"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			if got := asm.PreProcessingRemoveComments(scenario.input); got != scenario.expected {
				t.Errorf("PreProcessingRemoveComments(%q) = %q, want %q", scenario.input, got, scenario.expected)
			}
		})
	}
}

func TestPreProcessingTrimWhitespace(t *testing.T) {
	scenarios := []struct {
		name     string
		input    string
		expected string
	}{
		{"leading and trailing spaces trimmed", "  mov rax, 1  \n", "mov rax, 1\n"},
		{"tabs trimmed", "\tret\t\n", "ret\n"},
		{"already trimmed line is unchanged", "nop\n", "nop\n"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			if got := asm.PreProcessingTrimWhitespace(scenario.input); got != scenario.expected {
				t.Errorf("PreProcessingTrimWhitespace(%q) = %q, want %q", scenario.input, got, scenario.expected)
			}
		})
	}
}

func TestPreProcessingRemoveEmptyLines(t *testing.T) {
	scenarios := []struct {
		name     string
		input    string
		expected string
	}{
		{"blank lines removed", "mov rax, 1\n\n\nret\n", "mov rax, 1\nret\n"},
		{"whitespace-only line removed", "nop\n   \nret\n", "nop\nret\n"},
		{"no blank lines is unchanged", "nop\nret\n", "nop\nret\n"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			if got := asm.PreProcessingRemoveEmptyLines(scenario.input); got != scenario.expected {
				t.Errorf("PreProcessingRemoveEmptyLines(%q) = %q, want %q", scenario.input, got, scenario.expected)
			}
		})
	}
}
