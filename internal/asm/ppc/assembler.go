package ppc

import "github.com/gwipplinger/avian/internal/asm"

// Assembler is the concrete asm.Assembler for this target: a Context (the
// per-compilation state), an Architecture (static register/ABI facts), and
// an ArchitectureContext (the shared dispatch tables). Binary operations
// follow arm.cpp's Move/Compare convention: the last operand is the
// accumulator/destination. Move(a, b) means "b = a"; Compare(a, b) sets CR0
// from comparing a against b and writes nothing. Arithmetic, logical, shift,
// and LongCompare are ternary instead: c is an independent destination,
// never one of the two sources a and b — Add(a, b, c) means "c = a + b";
// And(a, b, c) means "c = a & b".
type Assembler struct {
	ctx  *asm.Context
	arch *Architecture
	actx *ArchitectureContext
}

// NewAssembler builds an Assembler. arch and actx are typically shared
// across many Assemblers; ctx is fresh per compilation.
func NewAssembler(ctx *asm.Context, arch *Architecture, actx *ArchitectureContext) *Assembler {
	return &Assembler{ctx: ctx, arch: arch, actx: actx}
}

func (m *Assembler) SetClient(client asm.Client) { m.ctx.Client = client }
func (m *Assembler) Arch() asm.Architecture      { return m.arch }

func (m *Assembler) ApplyNullary(op asm.Operation) {
	h := m.actx.nullary[op]
	asm.Assert(m.ctx.System, h != nil, "unsupported nullary operation %s", op)
	h(m)
}

func (m *Assembler) ApplyUnary(op asm.Operation, size int, operand asm.Operand) {
	h := m.actx.unary[op][operand.Type]
	asm.Assert(m.ctx.System, h != nil, "unsupported unary operation %s/%s", op, operand.Type)
	h(m, size, operand)
}

func (m *Assembler) ApplyBinary(op asm.Operation, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	h := m.actx.binary[op][a.Type][b.Type]
	asm.Assert(m.ctx.System, h != nil, "unsupported binary operation %s/%s/%s", op, a.Type, b.Type)
	h(m, aSize, a, bSize, b)
}

func (m *Assembler) ApplyTernary(op asm.Operation, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	h := m.actx.ternary[op][a.Type][b.Type]
	asm.Assert(m.ctx.System, h != nil, "unsupported ternary operation %s/%s/%s", op, a.Type, b.Type)
	h(m, aSize, a, bSize, b, cSize, c)
}

func (m *Assembler) SaveFrame(stackOffset int)        { saveFrame(m, stackOffset) }
func (m *Assembler) PushFrame(args []asm.Argument)     { pushFrame(m, args) }
func (m *Assembler) PopFrame()                        { popFrame(m) }
func (m *Assembler) AllocateFrame(footprintWords int) { allocateFrame(m, footprintWords) }

// WriteTo copies the code into dst and runs every queued task. When the
// first block has not been resolved yet, the blocks are first laid out
// sequentially from offset 0 via ResolveBlocks; a layout the caller already
// assigned with Block.Resolve is kept as it is.
func (m *Assembler) WriteTo(dst []byte) {
	if !m.ctx.FirstBlock.Resolved() {
		m.ctx.ResolveBlocks()
	}
	m.ctx.WriteTo(dst)
}

func (m *Assembler) Offset() asm.Promise               { return m.ctx.Offset() }
func (m *Assembler) EndBlock(startNew bool) *asm.Block { return m.ctx.EndBlock(startNew) }
func (m *Assembler) Length() int                       { return int(m.ctx.Code.Length()) }
func (m *Assembler) Dispose()                          { m.ctx.Dispose() }

// emit appends one big-endian instruction word and returns the offset it
// landed at, the basic unit every lower_*.go routine builds on.
func (m *Assembler) emit(word uint32) uint32 { return m.ctx.Code.Append4(word) }

func (m *Assembler) system() asm.System { return m.ctx.System }

func (m *Assembler) acquireTemp() asm.Register {
	asm.Assert(m.ctx.System, m.ctx.Client != nil, "no register-allocation client attached")
	return m.ctx.Client.AcquireTemporary()
}

func (m *Assembler) releaseTemp(r asm.Register) {
	m.ctx.Client.ReleaseTemporary(r)
}
