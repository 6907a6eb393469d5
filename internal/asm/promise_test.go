package asm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwipplinger/avian/internal/asm"
)

func TestResolvedPromise(t *testing.T) {
	p := asm.Resolved(42)
	require.True(t, p.Resolved())
	assert.EqualValues(t, 42, p.Value())

	var got int64 = -1
	p.Listen(asm.ListenerFunc(func(v int64) { got = v }))
	assert.EqualValues(t, 42, got, "Listen on an already-resolved promise must fire immediately")
}

// fakeBasePromise is a minimal asm.Promise a test can resolve on demand,
// standing in for the Block/Offset machinery that normally drives
// ShiftMaskPromise in production.
type fakeBasePromise struct {
	resolved  bool
	value     int64
	listeners []asm.Listener
}

func (f *fakeBasePromise) Resolved() bool { return f.resolved }
func (f *fakeBasePromise) Value() int64   { return f.value }
func (f *fakeBasePromise) Listen(l asm.Listener) {
	if f.resolved {
		l.Resolved(f.value)
		return
	}
	f.listeners = append(f.listeners, l)
}
func (f *fakeBasePromise) resolve(v int64) {
	f.resolved = true
	f.value = v
	for _, l := range f.listeners {
		l.Resolved(v)
	}
}

func TestShiftMaskPromiseImmediateResolution(t *testing.T) {
	base := asm.Resolved(0x1234567890ABCDEF)
	low := asm.NewShiftMaskPromise(base, 0, 0xffffffff)
	high := asm.NewShiftMaskPromise(base, 32, 0xffffffff)

	require.True(t, low.Resolved())
	require.True(t, high.Resolved())
	assert.EqualValues(t, 0x90ABCDEF, low.Value())
	assert.EqualValues(t, 0x12345678, high.Value())
}

func TestShiftMaskPromiseDeferredResolution(t *testing.T) {
	base := &fakeBasePromise{}
	low := asm.NewShiftMaskPromise(base, 0, 0xffff)
	high := asm.NewShiftMaskPromise(base, 16, 0xffff)

	require.False(t, low.Resolved())
	require.False(t, high.Resolved())

	var fired []int64
	low.Listen(asm.ListenerFunc(func(v int64) { fired = append(fired, v) }))
	high.Listen(asm.ListenerFunc(func(v int64) { fired = append(fired, v) }))

	base.resolve(0x0000BEEF)

	require.True(t, low.Resolved())
	require.True(t, high.Resolved())
	assert.EqualValues(t, 0xBEEF, low.Value())
	assert.EqualValues(t, 0, high.Value())
	assert.Equal(t, []int64{0xBEEF, 0}, fired, "listeners fire in registration order")
}

func TestOffsetListenDoesNotFireOnLaterResolution(t *testing.T) {
	block := asm.NewBlock(0)
	block.Size = 16
	off := asm.NewOffset(block, 4)

	require.False(t, off.Resolved())

	var order []string
	off.Listen(asm.ListenerFunc(func(int64) { order = append(order, "fired") }))
	assert.Empty(t, order, "Offset.Listen on an unresolved block must not fire yet")

	block.Resolve(100, nil)
	require.True(t, off.Resolved())
	assert.EqualValues(t, 104, off.Value())
	assert.Empty(t, order, "Offset.Listen never re-checks after the fact; only Resolved()/Value() observe a later resolution")
}

func TestOffsetListenFiresImmediatelyWhenAlreadyResolved(t *testing.T) {
	block := asm.NewBlock(0)
	block.Size = 16
	block.Resolve(200, nil)
	off := asm.NewOffset(block, 8)

	var got int64 = -1
	off.Listen(asm.ListenerFunc(func(v int64) { got = v }))
	assert.EqualValues(t, 208, got)
}
