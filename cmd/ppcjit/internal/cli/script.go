package cli

import (
	"fmt"

	"github.com/gwipplinger/avian/internal/asm"
)

// operandSpec is the toml shape of one Operand in an assemble script.
type operandSpec struct {
	Type         string `toml:"type"`
	Register     int    `toml:"register"`
	RegisterHigh int    `toml:"register_high"`
	Value        int64  `toml:"value"`
	Base         int    `toml:"base"`
	Offset       int32  `toml:"offset"`
	Index        int    `toml:"index"`
	Scale        int32  `toml:"scale"`
}

func (s operandSpec) toOperand() (asm.Operand, error) {
	switch s.Type {
	case "", "register":
		high := asm.NoRegister
		if s.RegisterHigh != 0 {
			high = asm.Register(s.RegisterHigh)
		}
		return asm.RegisterPairOperand(asm.Register(s.Register), high), nil
	case "constant":
		return asm.ConstantOperand(asm.Resolved(s.Value)), nil
	case "address":
		return asm.AddressOperand(asm.Resolved(s.Value)), nil
	case "memory":
		idx := asm.NoRegister
		if s.Index != 0 {
			idx = asm.Register(s.Index)
		}
		scale := s.Scale
		if scale == 0 {
			scale = 1
		}
		return asm.MemoryOperand(asm.Register(s.Base), s.Offset, idx, scale), nil
	default:
		return asm.Operand{}, fmt.Errorf("unknown operand type %q", s.Type)
	}
}

// scriptOp is one apply call in an assemble script.
type scriptOp struct {
	Operation string      `toml:"operation"`
	Arity     string      `toml:"arity"`
	Size      int         `toml:"size"`
	ASize     int         `toml:"a_size"`
	BSize     int         `toml:"b_size"`
	CSize     int         `toml:"c_size"`
	A         operandSpec `toml:"a"`
	B         operandSpec `toml:"b"`
	C         operandSpec `toml:"c"`
}

// assembleScript is the top-level toml document `ppcjit assemble` reads.
type assembleScript struct {
	BufferSize int        `toml:"buffer_size"`
	Ops        []scriptOp `toml:"op"`
}

// poolClient hands out temporaries from a fixed pool in round-robin order,
// the simplest Client that satisfies asm.Client for a standalone script —
// real embedders bring their own register allocator.
type poolClient struct {
	pool []asm.Register
	next int
}

func newPoolClient(regs []asm.Register) *poolClient {
	return &poolClient{pool: regs}
}

func (c *poolClient) AcquireTemporary() asm.Register {
	r := c.pool[c.next%len(c.pool)]
	c.next++
	return r
}

func (c *poolClient) ReleaseTemporary(asm.Register) {}

func (op scriptOp) apply(m interface {
	ApplyNullary(asm.Operation)
	ApplyUnary(asm.Operation, int, asm.Operand)
	ApplyBinary(asm.Operation, int, asm.Operand, int, asm.Operand)
	ApplyTernary(asm.Operation, int, asm.Operand, int, asm.Operand, int, asm.Operand)
}) error {
	o, ok := asm.ParseOperation(op.Operation)
	if !ok {
		return fmt.Errorf("unknown operation %q", op.Operation)
	}
	switch op.Arity {
	case "nullary":
		m.ApplyNullary(o)
	case "unary":
		a, err := op.A.toOperand()
		if err != nil {
			return err
		}
		m.ApplyUnary(o, op.Size, a)
	case "binary":
		a, err := op.A.toOperand()
		if err != nil {
			return err
		}
		b, err := op.B.toOperand()
		if err != nil {
			return err
		}
		m.ApplyBinary(o, op.ASize, a, op.BSize, b)
	case "ternary":
		a, err := op.A.toOperand()
		if err != nil {
			return err
		}
		b, err := op.B.toOperand()
		if err != nil {
			return err
		}
		c, err := op.C.toOperand()
		if err != nil {
			return err
		}
		m.ApplyTernary(o, op.ASize, a, op.BSize, b, op.CSize, c)
	default:
		return fmt.Errorf("unknown arity %q", op.Arity)
	}
	return nil
}
