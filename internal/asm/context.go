package asm

// Context is the per-assembler-instance state: the System handle, the
// arena, the register-allocation Client, the code buffer, the task list,
// the block chain, and — after WriteTo — the final destination slice
// (spec.md §3 DATA MODEL, "Context").
//
// Context owns the code buffer, the block chain, and the task chain (whose
// nodes are accounted to the Zone); Architecture tables are shared and owned
// separately (they outlive any one Context).
type Context struct {
	System System
	Zone   *Zone
	Client Client

	Code *CodeBuffer

	tasks *taskNode

	FirstBlock *Block
	LastBlock  *Block

	// Result is the destination byte slice passed to WriteTo; nil until
	// WriteTo runs.
	Result []byte
}

// NewContext constructs a Context with a single unresolved Block covering
// the whole buffer from offset 0, matching arm.cpp's Context constructor.
func NewContext(system System, zone *Zone, client Client) *Context {
	first := NewBlock(0)
	return &Context{
		System:     system,
		Zone:       zone,
		Client:     client,
		Code:       NewCodeBuffer(1024),
		FirstBlock: first,
		LastBlock:  first,
	}
}

// EndBlock closes the current block (fixing its Size to the bytes emitted
// since its Offset) and, if startNew, opens a new block at the current end
// of the buffer. It returns the block that was just closed.
func (c *Context) EndBlock(startNew bool) *Block {
	closed := c.LastBlock
	closed.Size = c.Code.Length() - closed.Offset
	if startNew {
		next := NewBlock(c.Code.Length())
		closed.Next = next
		c.LastBlock = next
	} else {
		c.LastBlock = nil
	}
	return closed
}

// Offset returns a Promise for the current position in the code being
// emitted: the LastBlock's eventual start, plus how far into it we already
// are.
func (c *Context) Offset() Promise {
	Assert(c.System, c.LastBlock != nil, "offset requested after the last block was closed without starting a new one")
	return NewOffset(c.LastBlock, c.Code.Length()-c.LastBlock.Offset)
}

// ResolveBlocks assigns every block in the chain a final output start,
// beginning at 0 and laying each block out immediately after its
// predecessor — the trivial, non-relocating layout. Architectures or
// front-ends that need to reorder blocks call Block.Resolve directly
// instead.
func (c *Context) ResolveBlocks() {
	next := uint32(0)
	for b := c.FirstBlock; b != nil; b = b.Next {
		var successor *Block
		if b.Next != nil {
			successor = b.Next
		}
		next = b.Resolve(next, successor)
	}
}

// WriteTo copies every resolved block to its final position in dst and runs
// every queued task, patching symbolic references in place. Precondition:
// every block has been resolved.
func (c *Context) WriteTo(dst []byte) {
	for b := c.FirstBlock; b != nil; b = b.Next {
		Assert(c.System, b.Resolved(), "block written before being resolved")
		copy(dst[b.Start:b.Start+b.Size], c.Code.Data()[b.Offset:b.Offset+b.Size])
	}
	c.Result = dst
	c.RunTasks()
}

// Dispose releases the code buffer. Blocks, tasks, and promises are never
// freed individually; they are reclaimed together with the rest of the
// compilation's state (spec.md §9 "Replacing pointer networks with arenas").
func (c *Context) Dispose() {
	c.Code = nil
}
