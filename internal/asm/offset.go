package asm

// Offset is a Promise that resolves to a Block's assigned start plus a
// recorded intra-block offset, once that Block has been resolved. It is the
// promise kind returned by Assembler.Offset() and consumed by OffsetTask.
type Offset struct {
	block        *Block
	inBlockStart uint32
}

// NewOffset returns a Promise for the position offsetInBlock bytes into
// block, valid once block resolves.
func NewOffset(block *Block, offsetInBlock uint32) *Offset {
	return &Offset{block: block, inBlockStart: offsetInBlock}
}

func (o *Offset) Resolved() bool {
	return o.block.Resolved()
}

func (o *Offset) Value() int64 {
	return int64(o.block.Start + o.inBlockStart)
}

// Listen fires l immediately if the backing block is already resolved;
// otherwise it is never re-checked automatically — callers of Offset only
// need immediate resolution (OffsetTask reads Resolved()/Value() after every
// block in the chain has been resolved, before any listener would matter) or
// construct their own listenablePromise wrapper when they need the
// subscribe-and-wait behavior (see ShiftMaskPromise below, and
// ppc.ImmediateTask which listens on the underlying constant promise rather
// than on an Offset).
func (o *Offset) Listen(l Listener) {
	if o.Resolved() {
		l.Resolved(o.Value())
	}
}

// ShiftMaskPromise resolves to (base.Value() >> Shift) & Mask, once base is
// resolved. It lets a lowering routine depend on one bitfield of a
// not-yet-known value (e.g. the high or low half of a 64-bit immediate)
// without waiting for the whole value.
type ShiftMaskPromise struct {
	listenablePromise
	base  Promise
	Shift uint
	Mask  int64
}

// NewShiftMaskPromise returns a Promise for (base>>shift)&mask. If base is
// already resolved, the result is resolved immediately.
func NewShiftMaskPromise(base Promise, shift uint, mask int64) *ShiftMaskPromise {
	p := &ShiftMaskPromise{base: base, Shift: shift, Mask: mask}
	if base.Resolved() {
		p.resolve(p.compute(base.Value()))
	} else {
		base.Listen(ListenerFunc(func(value int64) {
			p.resolve(p.compute(value))
		}))
	}
	return p
}

func (p *ShiftMaskPromise) compute(value int64) int64 {
	return (value >> p.Shift) & p.Mask
}
