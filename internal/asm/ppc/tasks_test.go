package ppc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwipplinger/avian/internal/asm"
)

func TestUpdateOffsetRoundTripsUnconditional(t *testing.T) {
	dst := make([]byte, 16)
	asm.WriteWord(dst, 0, B(0))

	updateOffset(asm.PanicSystem{}, dst, 0, false, 12)

	word := asm.ReadWord(dst, 0)
	assert.EqualValues(t, 12, int32(word&unconditionalMask), "branch to +12 bytes must encode as a word offset of 3, placed in the LI field")
}

func TestUpdateOffsetRoundTripsConditional(t *testing.T) {
	dst := make([]byte, 16)
	asm.WriteWord(dst, 4, BC(boTrue, condEQ, 0))

	updateOffset(asm.PanicSystem{}, dst, 4, true, 0)

	word := asm.ReadWord(dst, 4)
	var bd int32 = int32(int16(word & conditionalMask))
	assert.EqualValues(t, -4, bd, "branch at offset 4 to target 0 is -4 bytes")
	assert.EqualValues(t, boTrue, (word>>21)&0x1f, "BO field must be preserved by updateOffset")
	assert.EqualValues(t, condEQ, (word>>16)&0x1f, "BI field must be preserved by updateOffset")
}

func TestUpdateOffsetAbortsOnMisalignedDisplacement(t *testing.T) {
	dst := make([]byte, 16)
	assert.Panics(t, func() {
		updateOffset(asm.PanicSystem{}, dst, 0, false, 3)
	}, "a non-word-aligned displacement must abort, not silently truncate")
}

func TestUpdateOffsetAbortsOnConditionalOverflow(t *testing.T) {
	dst := make([]byte, 16)
	assert.Panics(t, func() {
		updateOffset(asm.PanicSystem{}, dst, 0, true, 1<<20)
	}, "a displacement past the 16-bit conditional field must abort rather than truncate silently")
}

func TestOffsetTaskPatchesImmediatelyWhenTargetAlreadyResolved(t *testing.T) {
	dst := make([]byte, 16)
	asm.WriteWord(dst, 0, B(0))

	ctx := asm.NewContext(asm.PanicSystem{}, asm.NewZone(), nil)
	ctx.Result = dst

	task := &OffsetTask{
		target:            asm.Resolved(16),
		instructionOffset: asm.Resolved(0),
		conditional:       false,
	}
	task.Run(ctx)

	word := asm.ReadWord(dst, 0)
	assert.EqualValues(t, 16, int32(word&unconditionalMask))
}

// deferredPromise is a Promise a test resolves later, to exercise the
// Listen branch of OffsetTask/ImmediateTask.Run.
type deferredPromise struct {
	resolved  bool
	value     int64
	listeners []asm.Listener
}

func (p *deferredPromise) Resolved() bool { return p.resolved }
func (p *deferredPromise) Value() int64   { return p.value }
func (p *deferredPromise) Listen(l asm.Listener) {
	if p.resolved {
		l.Resolved(p.value)
		return
	}
	p.listeners = append(p.listeners, l)
}
func (p *deferredPromise) resolve(v int64) {
	p.resolved = true
	p.value = v
	for _, l := range p.listeners {
		l.Resolved(v)
	}
}

func TestOffsetTaskSubscribesWhenTargetNotYetResolved(t *testing.T) {
	dst := make([]byte, 16)
	asm.WriteWord(dst, 0, B(0))

	ctx := asm.NewContext(asm.PanicSystem{}, asm.NewZone(), nil)
	ctx.Result = dst

	target := &deferredPromise{}
	task := &OffsetTask{target: target, instructionOffset: asm.Resolved(0), conditional: false}
	task.Run(ctx)

	assert.EqualValues(t, 0, asm.ReadWord(dst, 0)&unconditionalMask, "nothing should be patched before the target resolves")

	target.resolve(8)
	assert.EqualValues(t, 8, int32(asm.ReadWord(dst, 0)&unconditionalMask))
}

func TestImmediateTaskPreservesDestinationRegister(t *testing.T) {
	dst := make([]byte, 16)
	asm.WriteWord(dst, 0, ADDIS(R7, R0, 0))
	asm.WriteWord(dst, 4, ORI(R7, R7, 0))

	ctx := asm.NewContext(asm.PanicSystem{}, asm.NewZone(), nil)
	ctx.Result = dst

	task := &ImmediateTask{value: asm.Resolved(0x12345678), sequenceOffset: asm.Resolved(0), dest: R7}
	task.Run(ctx)

	require.EqualValues(t, 0x12345678, getConstant(dst, 0))

	lis := asm.ReadWord(dst, 0)
	assert.EqualValues(t, R7, (lis>>21)&0x1f, "patched lis must still target r7")
}

func TestSetConstantAndGetConstantRoundTrip(t *testing.T) {
	dst := make([]byte, 8)
	asm.WriteWord(dst, 0, ADDIS(R12, R0, 0))
	asm.WriteWord(dst, 4, ORI(R12, R12, 0))

	setConstant(dst, 0, 0xCAFEBABE)

	assert.EqualValues(t, 0xCAFEBABE, getConstant(dst, 0))
	assert.EqualValues(t, R12, (asm.ReadWord(dst, 0)>>21)&0x1f)
}
