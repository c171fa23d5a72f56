package asm

// OperandKind discriminates the classifier's return value — the tagged
// union across {Register, MemoryOrRegister, Immediate, Relative} that
// spec §9 ("Sum types for operands") calls for. Go has no native sum
// type, so this is modeled as a discriminant enum plus a payload struct.
type OperandKind int

const (
	KindReg OperandKind = iota
	KindRM
	KindImm
	KindRel
)

// Operand is a classified operand value: the payload produced by one of
// the Operand Classifier's consume_* functions (spec §3, §4.1).
//
// Reg: Index holds the register's encoding number (0-15), Width its bit
// width.
//
// RM: Index holds the base register's encoding number, Mode its
// addressing mode, Disp/HasDisp the optional displacement, Width the
// requested data width (not the address width).
//
// Imm/Rel: Value holds the sign-extended integer, Width its declared bit
// width.
type Operand struct {
	Kind    OperandKind
	Index   byte
	Mode    ModRMMode
	Disp    int32
	HasDisp bool
	Value   int64
	Width   int

	// regRequiresREX and regForbidsREX apply only to 8-bit register
	// classifications (spec §4.3 step 6): spl/bpl/sil/dil can only be
	// encoded with a REX prefix present; ah/ch/dh/bh can only be encoded
	// without one.
	regRequiresREX bool
	regForbidsREX  bool
}

// IsMemory reports whether this rm operand is a real memory reference
// rather than a bare register (spec §3: "An rm with mode no-deref carries
// a register index and no displacement; other modes are memory
// references").
func (o Operand) IsMemory() bool {
	return o.Kind == KindRM && o.Mode != NoDereference
}
