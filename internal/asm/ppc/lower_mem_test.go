package ppc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gwipplinger/avian/internal/asm"
)

func TestNormalizeIndexPassesThroughWhenAlreadyXFormShape(t *testing.T) {
	m := newTestAssembler(newStackClient())

	mem := asm.MemoryOperand(R3, 0, R9, 1)
	idx := normalizeIndex(m, mem)

	assert.Equal(t, R9, idx)
	assert.EqualValues(t, 0, m.Length(), "no folding means no instructions should be emitted")
}

func TestNormalizeIndexFoldsScale(t *testing.T) {
	m := newTestAssembler(newStackClient(R14))

	mem := asm.MemoryOperand(R3, 0, R9, 4)
	idx := normalizeIndex(m, mem)

	assert.Equal(t, Register(R14), idx)
	assert.Greater(t, m.Length(), 0, "scale folding must emit a shift")
}

func TestNormalizeIndexFoldsSmallOffsetWithAddi(t *testing.T) {
	m := newTestAssembler(newStackClient(R14))

	mem := asm.MemoryOperand(R3, 40, R9, 1)
	idx := normalizeIndex(m, mem)

	assert.Equal(t, Register(R14), idx)
	require := m.ctx.Code.Word(0)
	assert.Equal(t, ADDI(R14, R9, 40), require, "a small offset folds via a single addi into the scratch register")
}

func TestNormalizeIndexFoldsLargeOffsetViaMaterializeAndAdd(t *testing.T) {
	m := newTestAssembler(newStackClient(R14, R15))

	mem := asm.MemoryOperand(R3, 1<<20, R9, 1)
	idx := normalizeIndex(m, mem)

	// stackClient is LIFO, so the first temporary acquired (the folded
	// index) is R15; R14 holds the materialized offset.
	assert.Equal(t, Register(R15), idx)
	assert.Greater(t, m.Length(), 4, "an offset too large for simm16 must materialize through a second temp before adding")
}
