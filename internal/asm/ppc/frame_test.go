package ppc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwipplinger/avian/internal/asm"
)

func TestSaveFrameEmitsSingleStw(t *testing.T) {
	m := newTestAssembler(newStackClient())
	saveFrame(m, 24)

	data := m.ctx.Code.Data()
	require.EqualValues(t, 4, len(data))
	assert.Equal(t, STW(StackRegister, ThreadRegister, 24), asm.ReadWord(data, 0))
}

func TestAllocateFrameAlignsAndThreadsBackChain(t *testing.T) {
	m := newTestAssembler(newStackClient(R14))
	allocateFrame(m, 3) // + FrameFooterSize(6) = 9 words, rounds to 12

	data := m.ctx.Code.Data()
	// mflr r0 ; stw r0,8(sp) ; mr tmp,sp ; addi sp,sp,-48 ; stw tmp,0(sp)
	require.EqualValues(t, 20, len(data))
	assert.Equal(t, MFLR(R0), asm.ReadWord(data, 0))
	assert.Equal(t, STW(R0, StackRegister, 8), asm.ReadWord(data, 4))
	assert.Equal(t, MR(R14, StackRegister), asm.ReadWord(data, 8))
	assert.Equal(t, ADDI(StackRegister, StackRegister, -48), asm.ReadWord(data, 12))
	assert.Equal(t, STW(R14, StackRegister, 0), asm.ReadWord(data, 16))
}

func TestPopFrameReloadsStackPointerFromBackChain(t *testing.T) {
	m := newTestAssembler(newStackClient())
	popFrame(m)

	data := m.ctx.Code.Data()
	require.EqualValues(t, 12, len(data))
	assert.Equal(t, LWZ(StackRegister, StackRegister, 0), asm.ReadWord(data, 0))
	assert.Equal(t, LWZ(R0, StackRegister, 8), asm.ReadWord(data, 4))
	assert.Equal(t, MTLR(R0), asm.ReadWord(data, 8))
}

func TestPushFrameSpillsArgumentsPastArgumentRegisterCountToStack(t *testing.T) {
	m := newTestAssembler(newStackClient(R14))

	args := make([]asm.Argument, 0, 9)
	for i := 0; i < 8; i++ {
		args = append(args, asm.Argument{
			Size:    4,
			Type:    asm.RegisterOperandType,
			Operand: asm.RegisterOperand(R20),
		})
	}
	// A ninth argument overflows the 8 argument registers and must spill.
	args = append(args, asm.Argument{
		Size:    4,
		Type:    asm.RegisterOperandType,
		Operand: asm.RegisterOperand(R21),
	})

	pushFrame(m, args)

	data := m.ctx.Code.Data()
	// Last instruction emitted for the spilled argument must be a stw
	// through the thread register at the FrameFooterSize-based slot.
	lastWord := asm.ReadWord(data, uint32(len(data))-4)
	wantOffset := int32(FrameFooterSize * WordSize)
	assert.Equal(t, STW(R14, ThreadRegister, wantOffset), lastWord)
}
