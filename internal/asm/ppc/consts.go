// Package ppc implements the spec.md assembler back-end for a 32-bit
// PowerPC-family target: 32-bit fixed-width instructions, a dedicated link
// register, a count register usable as a branch target, a four-bit
// condition register, and an inline rlwinm-style rotate-and-mask family.
package ppc

import "github.com/gwipplinger/avian/internal/asm"

// Register is a local alias for asm.Register, so the instruction-format
// encoders in this package (encode.go) can be written without an asm.
// qualifier on every parameter, matching how tightly the teacher's own
// per-architecture packages couple to their shared Register type.
type Register = asm.Register

// General-purpose registers, r0..r31. Naming follows the teacher's own
// REG_* const-block convention (internal/asm/arm64/consts.go); the block
// starts at iota, so R0 is 0 and each register's value is its number.
const (
	R0 asm.Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	R16
	R17
	R18
	R19
	R20
	R21
	R22
	R23
	R24
	R25
	R26
	R27
	R28
	R29
	R30
	R31

	// RegisterCount is the number of general-purpose registers.
	RegisterCount = int(R31) + 1
)

// RegisterName returns the assembly mnemonic for a general-purpose register,
// e.g. "r3". Panics if r is outside 0..31.
func RegisterName(r asm.Register) string { return registerNames[r] }

var registerNames = [...]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"r16", "r17", "r18", "r19", "r20", "r21", "r22", "r23",
	"r24", "r25", "r26", "r27", "r28", "r29", "r30", "r31",
}

// FrameFooterSize is the number of fixed words at the top of a stack frame
// reserved for the back-chain and saved registers, matching arm.cpp's
// FrameFooterSize constant.
const FrameFooterSize = 6

// StackRegister and ThreadRegister are the two reserved registers beyond
// r0, matching arm.cpp's StackRegister (r1) and ThreadRegister (r13).
const (
	StackRegister  = R1
	ThreadRegister = R13
)

// WordSize is the width in bytes of one general-purpose register on this
// target.
const WordSize = 4

// Condition-register bit positions within CR0, the only condition field
// this assembler ever tests (BI = crf*4 + bit, crf == 0 throughout).
const (
	condLT = 0
	condGT = 1
	condEQ = 2
	condSO = 3
)

// Branch-conditional BO field values: "branch if condition true" and
// "branch if condition false", the only two forms this assembler emits.
const (
	boTrue  = 0x0C // 01100: branch if CR bit set
	boFalse = 0x04 // 00100: branch if CR bit clear
)
