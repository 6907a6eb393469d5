package ppc

// This file carries the second instruction-set table spec.md §1 describes
// as "embedded vestigially in the same file": arm.cpp's own isa:: namespace
// encodes an entirely different (32-bit ARM) instruction set alongside the
// PowerPC one this package actually dispatches through. Nothing in this
// package's ArchitectureContext tables (see context.go) ever references
// armVestigeTable or the functions below it; per REDESIGN FLAGS §9, it is
// kept as dead code rather than deleted, exactly as the original file
// carries it unreachable unless a different build selects it.

type armCond int

const (
	armEQ armCond = iota
	armNE
	armCS
	armCC
	armMI
	armPL
	armVS
	armVC
	armHI
	armLS
	armGE
	armLT
	armGT
	armLE
	armAL
	armNV
)

func armData(cond armCond, opcode, s, rn, rd, shift, sh, rm int) uint32 {
	return uint32(cond)<<28 | uint32(opcode)<<21 | uint32(s)<<20 | uint32(rn)<<16 |
		uint32(rd)<<12 | uint32(shift)<<7 | uint32(sh)<<5 | uint32(rm)
}

func armBranch(cond armCond, l, offset int) uint32 {
	return uint32(cond)<<28 | 5<<25 | uint32(l)<<24 | uint32(offset)
}

func armXfer(cond armCond, p, u, b, w, l, rn, rd, shift, sh, rm int) uint32 {
	return uint32(cond)<<28 | 3<<25 | uint32(p)<<24 | uint32(u)<<23 | uint32(b)<<22 |
		uint32(w)<<21 | uint32(l)<<20 | uint32(rn)<<16 | uint32(rd)<<12 |
		uint32(shift)<<7 | uint32(sh)<<5 | uint32(rm)
}

func armB(offset int) uint32  { return armBranch(armAL, 0, offset) }
func armBL(offset int) uint32 { return armBranch(armAL, 1, offset) }

func armMOV(rd, rm int) uint32 { return armData(armAL, 0xd, 0, 0, rd, 0, 0, rm) }
func armADD(rd, rn, rm int) uint32 {
	return armData(armAL, 0x4, 0, rn, rd, 0, 0, rm)
}
func armLDR(rd, rn, rm int) uint32 {
	return armXfer(armAL, 1, 1, 0, 0, 1, rn, rd, 0, 0, rm)
}
func armSTR(rd, rn, rm int) uint32 {
	return armXfer(armAL, 1, 1, 0, 0, 0, rn, rd, 0, 0, rm)
}

// armVestigeTable is never read anywhere in this package; its only purpose
// is to give armB/armBL/armMOV/armADD/armLDR/armSTR a reachable (from the
// Go compiler's point of view) call site so they are not flagged unused,
// the same way arm.cpp's isa:: functions are unreachable from MyAssembler's
// dispatch tables but still compile as part of the translation unit.
var armVestigeTable = [...]func() uint32{
	func() uint32 { return armB(0) },
	func() uint32 { return armBL(0) },
	func() uint32 { return armMOV(0, 0) },
	func() uint32 { return armADD(0, 0, 0) },
	func() uint32 { return armLDR(0, 0, 0) },
	func() uint32 { return armSTR(0, 0, 0) },
}
