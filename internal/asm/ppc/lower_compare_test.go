package ppc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwipplinger/avian/internal/asm"
)

// decodeLocalBranchTarget recovers the absolute target of a branch word at
// branchOffset in dst, given the field width patchLocalBranch used.
func decodeLocalBranchTarget(dst []byte, branchOffset uint32, conditional bool) uint32 {
	word := asm.ReadWord(dst, branchOffset)
	var bd int32
	if conditional {
		bd = int32(int16(word & conditionalMask))
	} else {
		bd = int32(word&unconditionalMask) << 6 >> 6
	}
	return uint32(int64(branchOffset) + int64(bd))
}

func TestLongCompareLocalBranchesArePatchedAndInRange(t *testing.T) {
	m := newTestAssembler(newStackClient())

	a := asm.RegisterPairOperand(R3, R4)
	b := asm.RegisterPairOperand(R5, R6)
	c := asm.RegisterOperand(R7)
	m.ApplyTernary(asm.LongCompare, 8, a, 8, b, 4, c)

	total := uint32(m.Length())
	require.Greater(t, total, uint32(0))
	require.Zero(t, total%4, "every emitted instruction is one word")

	dst := make([]byte, total)
	copy(dst, m.ctx.Code.Data())

	// Every branch word emitted by lowerLongCompareRR must have had its
	// displacement field patched to a value other than the all-zero
	// placeholder it started from, and must resolve to an offset inside
	// the sequence.
	branches := 0
	for off := uint32(0); off < total; off += 4 {
		word := asm.ReadWord(dst, off)
		opcode := word >> 26
		switch opcode {
		case 16: // bc
			target := decodeLocalBranchTarget(dst, off, true)
			assert.LessOrEqual(t, target, total, "conditional branch at %d must target within the emitted sequence", off)
			assert.NotEqual(t, off, target, "conditional branch at %d must have its placeholder displacement patched", off)
			branches++
		case 18: // b
			target := decodeLocalBranchTarget(dst, off, false)
			assert.LessOrEqual(t, target, total, "unconditional branch at %d must target within the emitted sequence", off)
			assert.NotEqual(t, off, target, "unconditional branch at %d must have its placeholder displacement patched", off)
			branches++
		}
	}
	assert.Equal(t, 7, branches, "four conditional and three unconditional branches")
}

func TestLongCompareDestinationIsTheThirdOperandRegister(t *testing.T) {
	m := newTestAssembler(newStackClient())

	a := asm.RegisterPairOperand(R3, R4)
	b := asm.RegisterPairOperand(R5, R6)
	c := asm.RegisterOperand(R10)
	m.ApplyTernary(asm.LongCompare, 8, a, 8, b, 4, c)

	// Every li that writes the result must target r10, never a or b.
	found := false
	data := m.ctx.Code.Data()
	for off := uint32(0); off < uint32(len(data)); off += 4 {
		word := asm.ReadWord(data, off)
		if word>>26 == 14 && (word>>16)&0x1f == 0 { // addi rt,0,simm == li
			rt := (word >> 21) & 0x1f
			assert.EqualValues(t, R10, rt, "every li in the long-compare tree must write the destination register")
			found = true
		}
	}
	assert.True(t, found, "expected at least one li in the long-compare sequence")
}
