package x86_64

import (
	"github.com/corvid-systems/x64asm/internal/asm"
)

// Assembler is the x86-64 encoding engine: it satisfies asm.Architecture
// by recognizing register names against the register catalogue and
// dispatching instruction lines through the package's Form Table.
type Assembler struct {
	rawSource string
}

// New returns a new x86-64 Assembler over the given raw source text
// (teacher's AssemblerNew constructor, renamed to the idiomatic New now
// that the package exports a single architecture type).
func New(rawSource string) *Assembler {
	return &Assembler{rawSource: rawSource}
}

// Name returns the architecture's identifier.
func (a *Assembler) Name() string {
	return "x86_64"
}

// IsRegister reports whether name is a register of this architecture at
// any supported width.
func (a *Assembler) IsRegister(name string) bool {
	_, ok := RegistersByName[name]
	return ok
}

// IsInstruction reports whether mnemonic (case-sensitive, as the lexer
// would hand it to Assemble) names at least one declared Form.
func (a *Assembler) IsInstruction(mnemonic string) bool {
	for _, f := range Forms {
		if f.Mnemonic == mnemonic {
			return true
		}
	}
	return false
}

// Assemble dispatches one line's tokens through the Form Table and
// returns the winning buffer or the deepest-reaching DispatchError.
func (a *Assembler) Assemble(tokens []asm.Token) (*asm.Buffer, error) {
	return Dispatch(tokens)
}

// RawSource returns the raw assembly source text the Assembler was
// constructed with.
func (a *Assembler) RawSource() string {
	return a.rawSource
}
