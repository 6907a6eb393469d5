package ppc

import "github.com/gwipplinger/avian/internal/asm"

func lowerReturn(m *Assembler)      { m.emit(BLR()) }
func lowerLoadBarrier(m *Assembler) { m.emit(SYNC()) }
func lowerStoreBarrier(m *Assembler) { m.emit(SYNC()) }

func lowerJumpC(m *Assembler, size int, operand asm.Operand) {
	instrOffset := m.Offset()
	m.emit(B(0))
	AppendOffsetTask(m.ctx, operand.Value, instrOffset, false)
}

func lowerJumpR(m *Assembler, size int, operand asm.Operand) {
	m.emit(MTCTR(operand.Register))
	m.emit(BCTR())
}

func lowerCallC(m *Assembler, size int, operand asm.Operand) {
	instrOffset := m.Offset()
	m.emit(BL(0))
	AppendOffsetTask(m.ctx, operand.Value, instrOffset, false)
}

func lowerCallR(m *Assembler, size int, operand asm.Operand) {
	m.emit(MTCTR(operand.Register))
	m.emit(BCTRL())
}

// lowerLongCallC/lowerLongJumpC materialize an address that is too far away
// for a direct branch displacement (or not yet resolvable into one) through
// a scratch register, matching spec.md §4.5: lis/ori/mtctr/bctr[l] (a
// single li replaces lis/ori when the address is resolved and fits simm16).
func lowerLongJumpC(m *Assembler, size int, operand asm.Operand) {
	tmp := m.acquireTemp()
	loadImmediate(m, operand.Value, tmp)
	m.emit(MTCTR(tmp))
	m.emit(BCTR())
	m.releaseTemp(tmp)
}

func lowerLongCallC(m *Assembler, size int, operand asm.Operand) {
	tmp := m.acquireTemp()
	loadImmediate(m, operand.Value, tmp)
	m.emit(MTCTR(tmp))
	m.emit(BCTRL())
	m.releaseTemp(tmp)
}

// emitCondBranches appends one conditional branch per (bo, bi) test, each
// carrying its own OffsetTask against the same target. The JumpIfX "OrEqual"
// variants need two tests (e.g. less-or-equal is "less, or equal") since
// this target's branch-conditional instruction only ever tests one CR0 bit.
func emitCondBranches(m *Assembler, target asm.Promise, tests [][2]uint32) {
	for _, t := range tests {
		instrOffset := m.Offset()
		m.emit(BC(t[0], t[1], 0))
		AppendOffsetTask(m.ctx, target, instrOffset, true)
	}
}

func lowerJumpIfEqualC(m *Assembler, size int, operand asm.Operand) {
	emitCondBranches(m, operand.Value, [][2]uint32{{boTrue, condEQ}})
}

func lowerJumpIfNotEqualC(m *Assembler, size int, operand asm.Operand) {
	emitCondBranches(m, operand.Value, [][2]uint32{{boFalse, condEQ}})
}

func lowerJumpIfLessC(m *Assembler, size int, operand asm.Operand) {
	emitCondBranches(m, operand.Value, [][2]uint32{{boTrue, condLT}})
}

func lowerJumpIfGreaterC(m *Assembler, size int, operand asm.Operand) {
	emitCondBranches(m, operand.Value, [][2]uint32{{boTrue, condGT}})
}

func lowerJumpIfLessOrEqualC(m *Assembler, size int, operand asm.Operand) {
	emitCondBranches(m, operand.Value, [][2]uint32{{boTrue, condLT}, {boTrue, condEQ}})
}

func lowerJumpIfGreaterOrEqualC(m *Assembler, size int, operand asm.Operand) {
	emitCondBranches(m, operand.Value, [][2]uint32{{boTrue, condGT}, {boTrue, condEQ}})
}
