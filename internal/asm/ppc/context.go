package ppc

import "github.com/gwipplinger/avian/internal/asm"

// Handler function shapes for each arity's dispatch table. A handler is
// looked up by (Operation, OperandType...) and receives the owning
// Assembler plus the raw apply arguments, mirroring arm.cpp's
// ArchitectureContext::{Unary,Binary,Ternary}Operations tables.
type nullaryHandler func(m *Assembler)
type unaryHandler func(m *Assembler, size int, operand asm.Operand)
type binaryHandler func(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand)
type ternaryHandler func(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand)

// ArchitectureContext holds the populated dispatch tables shared by every
// Assembler built against this target. Keyed by (Operation, OperandType)
// tuples per arity, exactly as spec.md §3 describes the Context/
// ArchitectureContext split: Architecture and ArchitectureContext are
// immutable and shared; Context is per-compilation state.
type ArchitectureContext struct {
	nullary [asm.OperationCount]nullaryHandler
	unary   [asm.OperationCount][asm.OperandTypeCount]unaryHandler
	binary  [asm.OperationCount][asm.OperandTypeCount][asm.OperandTypeCount]binaryHandler
	ternary [asm.OperationCount][asm.OperandTypeCount][asm.OperandTypeCount]ternaryHandler
}

// Supported reports, for each arity, which OperandType combinations op has
// a registered handler for. Meant for introspection (the ppcjit CLI's plan
// subcommand) rather than anything the assembler itself consults.
func (c *ArchitectureContext) Supported(op asm.Operation) (nullary bool, unary []asm.OperandType, binary, ternary [][2]asm.OperandType) {
	nullary = c.nullary[op] != nil
	for t := 0; t < asm.OperandTypeCount; t++ {
		if c.unary[op][t] != nil {
			unary = append(unary, asm.OperandType(t))
		}
	}
	for at := 0; at < asm.OperandTypeCount; at++ {
		for bt := 0; bt < asm.OperandTypeCount; bt++ {
			if c.binary[op][at][bt] != nil {
				binary = append(binary, [2]asm.OperandType{asm.OperandType(at), asm.OperandType(bt)})
			}
			if c.ternary[op][at][bt] != nil {
				ternary = append(ternary, [2]asm.OperandType{asm.OperandType(at), asm.OperandType(bt)})
			}
		}
	}
	return nullary, unary, binary, ternary
}

// NewArchitectureContext builds and populates the dispatch tables once; the
// result is meant to be shared across every Assembler for this target.
func NewArchitectureContext() *ArchitectureContext {
	c := &ArchitectureContext{}
	c.populateTables()
	return c
}

func (c *ArchitectureContext) populateTables() {
	c.nullary[asm.Return] = lowerReturn
	c.nullary[asm.LoadBarrier] = lowerLoadBarrier
	c.nullary[asm.StoreStoreBarrier] = lowerStoreBarrier
	c.nullary[asm.StoreLoadBarrier] = lowerStoreBarrier

	c.unary[asm.Negate][asm.RegisterOperandType] = lowerNegateR
	c.unary[asm.Jump][asm.ConstantOperandType] = lowerJumpC
	c.unary[asm.Jump][asm.RegisterOperandType] = lowerJumpR
	c.unary[asm.Call][asm.ConstantOperandType] = lowerCallC
	c.unary[asm.Call][asm.RegisterOperandType] = lowerCallR
	c.unary[asm.LongCall][asm.ConstantOperandType] = lowerLongCallC
	c.unary[asm.LongJump][asm.ConstantOperandType] = lowerLongJumpC
	c.unary[asm.JumpIfEqual][asm.ConstantOperandType] = lowerJumpIfEqualC
	c.unary[asm.JumpIfNotEqual][asm.ConstantOperandType] = lowerJumpIfNotEqualC
	c.unary[asm.JumpIfLess][asm.ConstantOperandType] = lowerJumpIfLessC
	c.unary[asm.JumpIfGreater][asm.ConstantOperandType] = lowerJumpIfGreaterC
	c.unary[asm.JumpIfLessOrEqual][asm.ConstantOperandType] = lowerJumpIfLessOrEqualC
	c.unary[asm.JumpIfGreaterOrEqual][asm.ConstantOperandType] = lowerJumpIfGreaterOrEqualC

	c.binary[asm.Move][asm.RegisterOperandType][asm.RegisterOperandType] = lowerMoveRR
	c.binary[asm.Move][asm.ConstantOperandType][asm.RegisterOperandType] = lowerMoveCR
	c.binary[asm.Move][asm.ConstantOperandType][asm.MemoryOperandType] = lowerMoveCM
	c.binary[asm.Move][asm.MemoryOperandType][asm.RegisterOperandType] = lowerMoveMR
	c.binary[asm.Move][asm.RegisterOperandType][asm.MemoryOperandType] = lowerMoveRM
	c.binary[asm.Move][asm.AddressOperandType][asm.RegisterOperandType] = lowerMoveAR

	c.binary[asm.MoveZ][asm.RegisterOperandType][asm.RegisterOperandType] = lowerMoveZRR
	c.binary[asm.MoveZ][asm.MemoryOperandType][asm.RegisterOperandType] = lowerMoveZMR

	c.binary[asm.Compare][asm.RegisterOperandType][asm.RegisterOperandType] = lowerCompareRR
	c.binary[asm.Compare][asm.ConstantOperandType][asm.RegisterOperandType] = lowerCompareCR

	// Add/Subtract/Multiply/Divide/Remainder and the logical/shift family are
	// ternary: c is an independent destination, never one of the two sources
	// a and b, matching arm.cpp's to[] (ternaryOperations) table and the
	// lowerLongCompareRR pattern below.
	c.ternary[asm.Add][asm.RegisterOperandType][asm.RegisterOperandType] = lowerAddRR
	c.ternary[asm.Add][asm.ConstantOperandType][asm.RegisterOperandType] = lowerAddCR
	c.ternary[asm.Subtract][asm.RegisterOperandType][asm.RegisterOperandType] = lowerSubRR
	c.ternary[asm.Subtract][asm.ConstantOperandType][asm.RegisterOperandType] = lowerSubCR
	c.ternary[asm.Multiply][asm.RegisterOperandType][asm.RegisterOperandType] = lowerMulRR
	c.ternary[asm.Divide][asm.RegisterOperandType][asm.RegisterOperandType] = lowerDivRR
	c.ternary[asm.Remainder][asm.RegisterOperandType][asm.RegisterOperandType] = lowerRemRR

	c.ternary[asm.And][asm.RegisterOperandType][asm.RegisterOperandType] = lowerAndRR
	c.ternary[asm.And][asm.ConstantOperandType][asm.RegisterOperandType] = lowerAndCR
	c.ternary[asm.Or][asm.RegisterOperandType][asm.RegisterOperandType] = lowerOrRR
	c.ternary[asm.Or][asm.ConstantOperandType][asm.RegisterOperandType] = lowerOrCR
	c.ternary[asm.Xor][asm.RegisterOperandType][asm.RegisterOperandType] = lowerXorRR
	c.ternary[asm.Xor][asm.ConstantOperandType][asm.RegisterOperandType] = lowerXorCR

	c.ternary[asm.ShiftLeft][asm.RegisterOperandType][asm.RegisterOperandType] = lowerShiftLeftRR
	c.ternary[asm.ShiftLeft][asm.ConstantOperandType][asm.RegisterOperandType] = lowerShiftLeftCR
	c.ternary[asm.ShiftRight][asm.RegisterOperandType][asm.RegisterOperandType] = lowerShiftRightRR
	c.ternary[asm.ShiftRight][asm.ConstantOperandType][asm.RegisterOperandType] = lowerShiftRightCR
	c.ternary[asm.UnsignedShiftRight][asm.RegisterOperandType][asm.RegisterOperandType] = lowerUShiftRightRR
	c.ternary[asm.UnsignedShiftRight][asm.ConstantOperandType][asm.RegisterOperandType] = lowerUShiftRightCR

	c.ternary[asm.LongCompare][asm.RegisterOperandType][asm.RegisterOperandType] = lowerLongCompareRR
}
