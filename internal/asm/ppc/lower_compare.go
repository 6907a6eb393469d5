package ppc

import "github.com/gwipplinger/avian/internal/asm"

// Compare(a, b) sets CR0 as if computing a-b: LT means a<b, GT means a>b.
// JumpIfX/LongCompare downstream rely on this orientation.

func lowerCompareRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	m.emit(CMPW(a.Register, b.Register))
}

// lowerCompareCR materializes the constant into a scratch register rather
// than using cmpwi directly: cmpwi's fixed RA-vs-SIMM operand order would
// compare b against a, the reverse of this package's a-vs-b convention, and
// keeping that convention uniform here saves lower_control.go from needing
// a second, swapped set of branch conditions.
func lowerCompareCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	tmp := m.acquireTemp()
	loadImmediate(m, a.Value, tmp)
	m.emit(CMPW(tmp, b.Register))
	m.releaseTemp(tmp)
}

// patchLocalBranch rewrites a branch instruction emitted earlier in the
// same in-progress block to target another offset already emitted in that
// same block. Unlike OffsetTask, nothing here is deferred: both ends are
// known the moment the second one is emitted, and the intra-block distance
// between them is invariant under whatever start the block is eventually
// resolved to.
func patchLocalBranch(m *Assembler, branchOffset, target uint32, conditional bool) {
	updateOffset(m.system(), m.ctx.Code.Data(), branchOffset, conditional, target)
}

// lowerLongCompareRR lowers a 64-bit three-way compare into a seven-branch
// tree (four conditional, three unconditional): compare high words first; if they differ, that alone decides LT/GT;
// otherwise compare low words unsigned to decide LT/EQ/GT. c receives -1, 0,
// or 1. Every branch here is local (patched inline, not via OffsetTask) per
// the resolved Open Question on how this sequence should be built (spec.md
// §9): the whole tree lives in one block, emitted in one call, so there is
// no reason to defer what can be patched immediately.
func lowerLongCompareRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	dst := c.Register

	m.emit(CMPW(a.RegisterHigh, b.RegisterHigh))
	bneHigh := m.emit(BC(boFalse, condEQ, 0))

	m.emit(CMPLW(a.Register, b.Register))
	bltLow := m.emit(BC(boTrue, condLT, 0))
	bgtLow := m.emit(BC(boTrue, condGT, 0))

	m.emit(LI(dst, 0))
	bEnd1 := m.emit(B(0))

	highDiffStart := m.ctx.Code.Length()
	bltHigh := m.emit(BC(boTrue, condLT, 0))
	m.emit(LI(dst, 1))
	bEnd2 := m.emit(B(0))

	lessStart := m.ctx.Code.Length()
	m.emit(LI(dst, -1))
	bEnd3 := m.emit(B(0))

	greaterStart := m.ctx.Code.Length()
	m.emit(LI(dst, 1))
	end := m.ctx.Code.Length()

	patchLocalBranch(m, bneHigh, highDiffStart, true)
	patchLocalBranch(m, bltLow, lessStart, true)
	patchLocalBranch(m, bgtLow, greaterStart, true)
	patchLocalBranch(m, bltHigh, lessStart, true)
	patchLocalBranch(m, bEnd1, end, false)
	patchLocalBranch(m, bEnd2, end, false)
	patchLocalBranch(m, bEnd3, end, false)
}
