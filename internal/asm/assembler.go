package asm

// Assembler is the stateful emission surface a client (the IR producer)
// drives: apply lowers one IR operation at a time, endBlock/offset manage
// relocatable segmentation, and writeTo materializes the final bytes with
// every deferred patch applied (spec.md §6 External Interfaces).
type Assembler interface {
	SetClient(client Client)
	Arch() Architecture

	ApplyNullary(op Operation)
	ApplyUnary(op Operation, size int, operand Operand)
	ApplyBinary(op Operation, aSize int, a Operand, bSize int, b Operand)
	ApplyTernary(op Operation, aSize int, a Operand, bSize int, b Operand, cSize int, c Operand)

	SaveFrame(stackOffset int)
	PushFrame(args []Argument)
	PopFrame()
	AllocateFrame(footprintWords int)

	// WriteTo materializes the assembled code into dst. Precondition: every
	// Block returned by EndBlock has been resolved.
	WriteTo(dst []byte)

	// Offset returns a Promise for the current emission position.
	Offset() Promise

	// EndBlock closes the current Block, optionally starting a new one, and
	// returns the Block that was just closed.
	EndBlock(startNew bool) *Block

	// Length returns the number of bytes emitted to the in-progress buffer
	// so far.
	Length() int

	Dispose()
}
