package asm

// Architecture answers static questions about a target instruction set: its
// register file, calling convention, frame layout, and which operand-type
// combinations a given operation supports (spec.md §4.7). It is reference
// counted so multiple Assemblers can share one instance; Acquire/Release
// gate construction/teardown, not method calls.
type Architecture interface {
	Acquire()
	Release()

	RegisterCount() int
	Reserved(r Register) bool
	ArgumentRegisterCount() int
	ArgumentRegister(i int) Register
	ReturnLow() Register
	ReturnHigh() Register
	CondensedAddressing() bool
	BigEndian() bool

	FrameFooterSize() int
	FrameHeaderSize() int
	FrameReturnAddressSize() int
	AlignFrameSize(words int) int

	// Plan reports, for op at the given operand size, which OperandTypes are
	// permitted for each operand position and whether the operation must
	// instead be compiled as an out-of-line Thunk call.
	Plan(op Operation, size int) Plan
}

// Plan is the result of Architecture.Plan: which operand types op supports
// at each position, and whether it must be routed through a runtime thunk
// instead of lowered inline (spec.md GLOSSARY "Thunk").
type Plan struct {
	AllowedFirst  []OperandType
	AllowedSecond []OperandType
	Thunk         bool
}

// Allows reports whether t is among the allowed types at position.
func (p Plan) Allows(position int, t OperandType) bool {
	var allowed []OperandType
	if position == 0 {
		allowed = p.AllowedFirst
	} else {
		allowed = p.AllowedSecond
	}
	if allowed == nil {
		return true
	}
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
