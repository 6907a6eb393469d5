package ppc

import "github.com/gwipplinger/avian/internal/asm"

// Bit-field masks for the two branch-displacement widths this target uses,
// named exactly as spec.md §4.4 names them.
const (
	unconditionalMask = 0x03FFFFFC
	conditionalMask   = 0x0000FFFC
)

// OffsetTask patches a branch displacement field once its target address is
// known. It is appended by every short Jump/JumpIfX/Call lowering (spec.md
// §4.4, §4.5).
type OffsetTask struct {
	target            asm.Promise // the branch target address
	instructionOffset asm.Promise // where the branch instruction itself lives
	conditional       bool
}

// AppendOffsetTask queues an OffsetTask against ctx: target is the promised
// destination address, instructionOffset locates the branch instruction
// that will carry it, and conditional selects the narrower displacement
// field used by the JumpIfX family.
func AppendOffsetTask(ctx *asm.Context, target, instructionOffset asm.Promise, conditional bool) {
	ctx.AppendTask(&OffsetTask{target: target, instructionOffset: instructionOffset, conditional: conditional})
}

func (t *OffsetTask) Run(c *asm.Context) {
	instrOffset := uint32(t.instructionOffset.Value())
	if t.target.Resolved() {
		updateOffset(c.System, c.Result, instrOffset, t.conditional, uint32(t.target.Value()))
		return
	}
	t.target.Listen(asm.ListenerFunc(func(targetValue int64) {
		updateOffset(c.System, c.Result, instrOffset, t.conditional, uint32(targetValue))
	}))
}

// updateOffset computes the signed word-aligned PC-relative displacement
// from the instruction at instrOffset to targetOffset, and overwrites the
// mask bits of the instruction word in place, preserving every other bit
// (spec.md §4.4). Overflow of the displacement field is a hard error: the
// caller was expected to choose the Long form instead.
func updateOffset(system asm.System, dst []byte, instrOffset uint32, conditional bool, targetOffset uint32) {
	diff := int64(targetOffset) - int64(instrOffset)
	asm.Assert(system, diff%4 == 0, "branch displacement %d is not word-aligned", diff)
	wordOffset := diff / 4

	var mask uint32
	narrow := int32(diff)
	if conditional {
		mask = conditionalMask
		asm.Assert(system, int64(narrow) == diff && (narrow<<16)>>16 == narrow,
			"conditional branch displacement %d out of range; use a LongJump/LongCall form", diff)
	} else {
		mask = unconditionalMask
		asm.Assert(system, int64(narrow) == diff && (narrow<<6)>>6 == narrow,
			"unconditional branch displacement %d out of range; use a LongJump/LongCall form", diff)
	}

	field := uint32(wordOffset<<2) & mask
	old := asm.ReadWord(dst, instrOffset)
	asm.WriteWord(dst, instrOffset, (old &^ mask)|field)
}

// immediateSequenceToCallOffset is the distance, in bytes, from the start
// of a materialized two-instruction (lis/ori) sequence to the indirect
// branch that follows it in a LongCall/LongJump (lis, ori, mtctr,
// bctr/bctrl — the branch is the fourth word). Recorded here as a named
// constant rather than carried per-task, since nothing reads it back once
// emission moves on from the sequence that produced it.
const immediateSequenceToCallOffset = 12

// ImmediateTask patches a two-instruction lis/ori materialization once the
// value it loads is known. Appended whenever a Constant operand is not yet
// resolved at emission time (spec.md §4.4, §4.5 Move family).
type ImmediateTask struct {
	value          asm.Promise // the value to materialize
	sequenceOffset asm.Promise // where the lis instruction lives
	dest           asm.Register
}

// AppendImmediateTask queues an ImmediateTask: value is the promised
// constant, sequenceOffset locates the lis instruction that opens the
// two-instruction sequence, and dest is the destination register.
// updateImmediate takes the register from the existing lis word and uses
// dest only when that word encodes r0.
func AppendImmediateTask(ctx *asm.Context, value, sequenceOffset asm.Promise, dest asm.Register) {
	ctx.AppendTask(&ImmediateTask{value: value, sequenceOffset: sequenceOffset, dest: dest})
}

func (t *ImmediateTask) Run(c *asm.Context) {
	seqOffset := uint32(t.sequenceOffset.Value())
	if t.value.Resolved() {
		updateImmediate(c.Result, seqOffset, t.value.Value(), t.dest)
		return
	}
	t.value.Listen(asm.ListenerFunc(func(v int64) {
		updateImmediate(c.Result, seqOffset, v, t.dest)
	}))
}

// updateImmediate overwrites the lis/ori pair at offset with value,
// preserving the destination register already encoded in the existing lis
// word (spec.md §4.4 "reads the destination register index out of the
// first word of the existing sequence to preserve it").
func updateImmediate(dst []byte, offset uint32, value int64, fallbackDest asm.Register) {
	existing := asm.ReadWord(dst, offset)
	rt := asm.Register((existing >> 21) & 0x1f)
	if rt == 0 && fallbackDest != R0 {
		rt = fallbackDest
	}
	hi := int32(uint32(value>>16) & 0xffff)
	lo := int32(uint32(value) & 0xffff)
	asm.WriteWord(dst, offset, ADDIS(rt, R0, hi))
	asm.WriteWord(dst, offset+4, ORI(rt, rt, lo))
}

// getConstant reads the 32-bit value materialized by the lis/ori pair at
// offset (spec.md §4.7).
func getConstant(src []byte, offset uint32) uint32 {
	hi := asm.ReadWord(src, offset) & 0xffff
	lo := asm.ReadWord(src, offset+4) & 0xffff
	return hi<<16 | lo
}

// setConstant live-patches the lis/ori pair at offset to materialize a new
// value, preserving the destination register (spec.md §4.7).
func setConstant(dst []byte, offset uint32, value uint32) {
	updateImmediate(dst, offset, int64(value), R0)
}
