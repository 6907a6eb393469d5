package ppc

import "github.com/gwipplinger/avian/internal/asm"

// Architecture is the concrete asm.Architecture for this 32-bit PowerPC
// target. It is stateless beyond the reference count, matching arm.cpp's
// MyArchitecture: all dispatch tables it answers through Plan live in
// ArchitectureContext, not here, since the two are shared independently
// (many Contexts, one Architecture, one ArchitectureContext).
type Architecture struct {
	refCount int
}

// NewArchitecture returns an unacquired Architecture. Callers must Acquire
// it before use, matching the reference-counted construction pattern
// arm.cpp's makeArchitecture uses.
func NewArchitecture() *Architecture {
	return &Architecture{}
}

func (a *Architecture) Acquire() { a.refCount++ }
func (a *Architecture) Release() { a.refCount-- }

func (a *Architecture) RegisterCount() int { return RegisterCount }

// Reserved reports whether r is one of the three registers this target
// never hands out to a Client: r0 (hard-wired to zero in several
// instruction forms), the stack pointer, and the thread pointer.
func (a *Architecture) Reserved(r asm.Register) bool {
	return r == R0 || r == StackRegister || r == ThreadRegister
}

// argumentRegisterCount and argumentRegisterBase name the PowerPC32 System
// V calling convention this target follows: up to 8 integer arguments in
// r3..r10, the same registers ReturnLow/ReturnHigh alias for the first two
// words of a return value.
const argumentRegisterCount = 8
const argumentRegisterBase = R3

func (a *Architecture) ArgumentRegisterCount() int { return argumentRegisterCount }

func (a *Architecture) ArgumentRegister(i int) asm.Register {
	return argumentRegisterBase + asm.Register(i)
}

func (a *Architecture) ReturnLow() asm.Register  { return R4 }
func (a *Architecture) ReturnHigh() asm.Register { return R3 }

func (a *Architecture) CondensedAddressing() bool { return false }
func (a *Architecture) BigEndian() bool           { return true }

func (a *Architecture) FrameFooterSize() int       { return FrameFooterSize }
func (a *Architecture) FrameHeaderSize() int       { return 0 }
func (a *Architecture) FrameReturnAddressSize() int { return 0 }

// frameAlignWords is the frame-size granularity this ABI requires (16
// bytes, i.e. 4 words), matching arm.cpp's stack alignment rule.
const frameAlignWords = 4

// AlignFrameSize rounds words up to the next multiple of frameAlignWords,
// after adding the fixed footer (spec.md §4.6).
func (a *Architecture) AlignFrameSize(words int) int {
	total := words + FrameFooterSize
	if rem := total % frameAlignWords; rem != 0 {
		total += frameAlignWords - rem
	}
	return total
}

// Plan reports which operand shapes a given operation accepts at each
// position, for the size (in bytes) it is being applied at. Operations not
// named here default to "every OperandType accepted, never a Thunk" — the
// zero-valued Plan.
func (a *Architecture) Plan(op asm.Operation, size int) asm.Plan {
	registerOnly := []asm.OperandType{asm.RegisterOperandType}
	registerOrConstant := []asm.OperandType{asm.RegisterOperandType, asm.ConstantOperandType}

	switch op {
	case asm.Negate:
		return asm.Plan{AllowedFirst: registerOnly}

	case asm.Multiply:
		return asm.Plan{AllowedFirst: registerOnly, AllowedSecond: registerOnly}

	case asm.Compare:
		return asm.Plan{AllowedFirst: registerOrConstant, AllowedSecond: registerOnly}

	case asm.LongCompare:
		return asm.Plan{AllowedFirst: registerOrConstant, AllowedSecond: registerOnly}

	case asm.Add, asm.Subtract:
		if size == 8 {
			return asm.Plan{AllowedFirst: registerOnly, AllowedSecond: registerOnly}
		}
		return asm.Plan{}

	case asm.Divide, asm.Remainder:
		if size == 8 {
			// No 64-bit divide/remainder instruction on this target; the
			// caller must route through a runtime thunk (spec.md §4.7
			// "Thunk").
			return asm.Plan{Thunk: true}
		}
		return asm.Plan{AllowedFirst: registerOnly, AllowedSecond: registerOnly}

	default:
		return asm.Plan{}
	}
}
