package ppc

import "github.com/gwipplinger/avian/internal/asm"

// saveFrame stores the current stack register into the thread register's
// stackOffset slot, giving the GC stack walker a known place to find the
// top of the active frame (spec.md §4.6).
func saveFrame(m *Assembler, stackOffset int) {
	m.emit(STW(StackRegister, ThreadRegister, int32(stackOffset)))
}

// allocateFrame saves the link register into the incoming frame's
// return-address slot, then decrements the stack pointer by footprintWords
// (rounded up to this ABI's 4-word alignment, with the fixed footer folded
// in by Architecture.AlignFrameSize) and threads the new frame's back-chain
// word to the old stack pointer, matching the standard PowerPC "probe-free"
// prologue shape.
func allocateFrame(m *Assembler, footprintWords int) {
	total := int32(m.arch.AlignFrameSize(footprintWords) * WordSize)
	m.emit(MFLR(R0))
	m.emit(STW(R0, StackRegister, 8))

	tmp := m.acquireTemp()
	m.emit(MR(tmp, StackRegister))
	if fitsInSimm16(int64(-total)) {
		m.emit(ADDI(StackRegister, StackRegister, -total))
	} else {
		loadImmediate(m, asm.Resolved(int64(-total)), R0)
		m.emit(ADD(StackRegister, StackRegister, R0))
	}
	m.emit(STW(tmp, StackRegister, 0))
	m.releaseTemp(tmp)
}

// popFrame restores the stack pointer from the current frame's back-chain
// word, then reloads the link register from the return-address slot
// allocateFrame wrote there, so the caller can emit Return immediately
// after.
func popFrame(m *Assembler) {
	m.emit(LWZ(StackRegister, StackRegister, 0))
	m.emit(LWZ(R0, StackRegister, 8))
	m.emit(MTLR(R0))
}

// pushFrame places call arguments into the first ArgumentRegisterCount
// argument registers, spilling any remainder into frame slots starting
// FrameFooterSize words above the thread register — the placement decided
// for this target's variadic-call convention (spec.md §9 "Replacing
// varargs"; see the Open Question recorded in SPEC_FULL.md §C on footer
// placement relative to the thread register).
func pushFrame(m *Assembler, args []asm.Argument) {
	argRegs := m.arch.ArgumentRegisterCount()
	for i, arg := range args {
		if i < argRegs {
			dst := asm.RegisterOperand(m.arch.ArgumentRegister(i))
			placeArgument(m, arg, dst)
			continue
		}
		slot := int32((FrameFooterSize + (i - argRegs)) * WordSize)
		storeArgumentToStack(m, arg, slot)
	}
}

func placeArgument(m *Assembler, arg asm.Argument, dst asm.Operand) {
	switch arg.Type {
	case asm.RegisterOperandType:
		lowerMoveRR(m, arg.Size, arg.Operand, arg.Size, dst)
	case asm.ConstantOperandType:
		lowerMoveCR(m, arg.Size, arg.Operand, arg.Size, dst)
	case asm.MemoryOperandType:
		lowerMoveMR(m, arg.Size, arg.Operand, arg.Size, dst)
	case asm.AddressOperandType:
		lowerMoveAR(m, arg.Size, arg.Operand, arg.Size, dst)
	default:
		asm.Abort(m.system(), "unsupported argument operand type %s", arg.Type)
	}
}

func storeArgumentToStack(m *Assembler, arg asm.Argument, offset int32) {
	tmp := m.acquireTemp()
	placeArgument(m, arg, asm.RegisterOperand(tmp))
	mem := asm.MemoryOperand(ThreadRegister, offset, asm.NoRegister, 0)
	storeToMemory(m, arg.Size, asm.RegisterOperand(tmp), mem)
	m.releaseTemp(tmp)
}
