package asm

// OperandSpec declares the shape an operand slot of a form accepts — the
// "operand shape S" half of a form row (spec §4.3). Kind says which
// consume_* function to invoke; Width constrains it. A KindRM slot also
// accepts a bare register of the declared width (spec §3: "An rm with
// mode no-deref carries a register index").
type OperandSpec struct {
	Kind  OperandKind
	Width int
}

// Reg declares a register operand slot of the given bit width.
func Reg(width int) OperandSpec { return OperandSpec{Kind: KindReg, Width: width} }

// RM declares a register-or-memory operand slot of the given bit width.
func RM(width int) OperandSpec { return OperandSpec{Kind: KindRM, Width: width} }

// Imm declares an immediate operand slot of the given bit width.
func Imm(width int) OperandSpec { return OperandSpec{Kind: KindImm, Width: width} }

// Rel declares a PC-relative displacement operand slot of the given bit
// width.
func Rel(width int) OperandSpec { return OperandSpec{Kind: KindRel, Width: width} }
