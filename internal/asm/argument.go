package asm

// Argument is one element of the variadic list PushFrame accepts: a size in
// bytes, its OperandType, and the Operand itself (spec.md §9 "Replacing
// varargs").
type Argument struct {
	Size    int
	Type    OperandType
	Operand Operand
}
