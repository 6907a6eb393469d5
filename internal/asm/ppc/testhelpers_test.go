package ppc

import "github.com/gwipplinger/avian/internal/asm"

// stackClient hands out temporaries from a fixed pool in LIFO order and
// panics if a test asks for more than the pool holds, catching a leaked
// acquire/release pair the way a real bounded allocator would.
type stackClient struct {
	pool []asm.Register
}

func newStackClient(regs ...asm.Register) *stackClient {
	return &stackClient{pool: regs}
}

func (c *stackClient) AcquireTemporary() asm.Register {
	if len(c.pool) == 0 {
		panic("stackClient: pool exhausted")
	}
	r := c.pool[len(c.pool)-1]
	c.pool = c.pool[:len(c.pool)-1]
	return r
}

func (c *stackClient) ReleaseTemporary(r asm.Register) {
	c.pool = append(c.pool, r)
}

func newTestAssembler(client asm.Client) *Assembler {
	ctx := asm.NewContext(asm.PanicSystem{}, asm.NewZone(), client)
	return NewAssembler(ctx, NewArchitecture(), NewArchitectureContext())
}
