package x86_64

import "github.com/corvid-systems/x64asm/internal/asm"

// Forms is the x86-64 instruction form catalogue (spec.md §4.3; SPEC_FULL.md
// §4.3's group list), assembled from the forms_*.go files in this package.
// Declaration order is the disambiguation contract (spec.md §4.4, §8, §9)
// and must never be reordered.
var Forms = buildForms()

// table is built once at package-init time as immutable data (SPEC_FULL.md
// §5, teacher's own instructions.go pattern of constructing its form slices
// at init and never mutating them afterward).
var table = asm.NewFormTable(Forms)

func buildForms() []asm.Form {
	var forms []asm.Form
	forms = append(forms, dataMovementForms()...)
	forms = append(forms, arithmeticForms()...)
	forms = append(forms, shiftForms()...)
	forms = append(forms, controlFlowForms()...)
	forms = append(forms, bitForms()...)
	forms = append(forms, stringForms()...)
	forms = append(forms, systemForms()...)
	forms = append(forms, atomicForms()...)
	forms = append(forms, x87Forms()...)
	forms = append(forms, literalByteListForms()...)
	return forms
}

// Dispatch walks the form table against tokens using Lookup as the
// register catalogue, returning the winning form's emitted bytes or the
// deepest-reaching DispatchError (spec.md §4.4).
func Dispatch(tokens []asm.Token) (*asm.Buffer, error) {
	return table.Dispatch(tokens, Lookup)
}
