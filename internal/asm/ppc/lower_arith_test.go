package ppc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gwipplinger/avian/internal/asm"
)

func TestContiguousMaskDetectsMSBFirstRuns(t *testing.T) {
	cases := []struct {
		name   string
		v      uint32
		wantMB uint32
		wantME uint32
		wantOK bool
	}{
		{"low byte", 0x000000FF, 24, 31, true},
		{"high byte", 0xFF000000, 0, 7, true},
		{"single bit", 0x00000001, 31, 31, true},
		{"all ones", 0xFFFFFFFF, 0, 0, false},
		{"zero", 0x00000000, 0, 0, false},
		{"wrapping run", 0xF000000F, 0, 0, false},
		{"two separate runs", 0x00FF00FF, 0, 0, false},
		{"middle run", 0x0000FF00, 16, 23, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mb, me, ok := contiguousMask(c.v)
			assert.Equal(t, c.wantOK, ok)
			if c.wantOK {
				assert.Equal(t, c.wantMB, mb, "mb")
				assert.Equal(t, c.wantME, me, "me")
			}
		})
	}
}

func TestLowerAndCRContiguousMaskUsesSingleRlwinm(t *testing.T) {
	m := newTestAssembler(newStackClient(R14, R15))

	a := asm.ConstantOperand(asm.Resolved(0x000000FF))
	b := asm.RegisterOperand(R6)
	c := asm.RegisterOperand(R7)
	m.ApplyTernary(asm.And, 4, a, 4, b, 4, c)

	assert.EqualValues(t, 4, m.Length(), "the contiguous-mask fast path must emit exactly one rlwinm")
	got := m.ctx.Code.Word(0)
	want := RLWINM(R7, R6, 0, 24, 31)
	assert.Equal(t, want, got)
}

func TestLowerAndCRNonContiguousMaterializesConstant(t *testing.T) {
	m := newTestAssembler(newStackClient(R14, R15))

	a := asm.ConstantOperand(asm.Resolved(0x00FF00FF))
	b := asm.RegisterOperand(R6)
	c := asm.RegisterOperand(R7)
	m.ApplyTernary(asm.And, 4, a, 4, b, 4, c)

	assert.Greater(t, m.Length(), 4, "a non-contiguous, non-half-zero mask must fall back past a single rlwinm")
}
