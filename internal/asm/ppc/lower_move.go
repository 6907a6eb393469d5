package ppc

import "github.com/gwipplinger/avian/internal/asm"

// This file lowers the Move/MoveZ operation family. Across every binary
// handler in this package, the last operand is the destination: Move(a, b)
// means "b = a", sign-extended or zero-extended to bSize as the mnemonic
// (Move vs MoveZ) dictates.

func fitsInSimm16(v int64) bool { return v >= -32768 && v <= 32767 }

// loadImmediate materializes value into dest, as either a single li, an
// lis/ori pair, or — if value is not yet resolved — a zeroed lis/ori pair
// plus a deferred ImmediateTask that patches it once value resolves
// (spec.md §4.4, §4.5).
func loadImmediate(m *Assembler, value asm.Promise, dest asm.Register) {
	if value.Resolved() {
		v := value.Value()
		if fitsInSimm16(v) {
			m.emit(LI(dest, int32(v)))
			return
		}
		m.emit(ADDIS(dest, R0, int32((v>>16)&0xffff)))
		m.emit(ORI(dest, dest, int32(v&0xffff)))
		return
	}
	seqOffset := m.Offset()
	m.emit(ADDIS(dest, R0, 0))
	m.emit(ORI(dest, dest, 0))
	AppendImmediateTask(m.ctx, value, seqOffset, dest)
}

func lowerMoveRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	if aSize == 1 || aSize == 2 {
		k := uint32(32 - 8*aSize)
		leftShiftConst(m, b.Register, a.Register, k)
		m.emit(SRAWI(b.Register, b.Register, k))
		if bSize == 8 {
			m.emit(SRAWI(b.RegisterHigh, b.Register, 31))
		}
		return
	}
	if bSize == 8 {
		if aSize == 8 {
			movePair(m, a, b)
			return
		}
		if b.Register == a.Register {
			m.emit(SRAWI(b.RegisterHigh, a.Register, 31))
			return
		}
		m.emit(MR(b.Register, a.Register))
		m.emit(SRAWI(b.RegisterHigh, a.Register, 31))
		return
	}
	if a.Register == b.Register {
		return
	}
	m.emit(MR(b.Register, a.Register))
}

// movePair copies a register-pair operand to another, choosing the order
// that survives source/destination overlap (spec.md §4.2 "register-pair
// swap-safe ordering").
func movePair(m *Assembler, a, b asm.Operand) {
	if b.Register == a.RegisterHigh {
		m.emit(MR(b.RegisterHigh, a.RegisterHigh))
		m.emit(MR(b.Register, a.Register))
		return
	}
	m.emit(MR(b.Register, a.Register))
	m.emit(MR(b.RegisterHigh, a.RegisterHigh))
}

func lowerMoveZRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	if bSize == 8 && aSize == 4 {
		if b.Register != a.Register {
			m.emit(MR(b.Register, a.Register))
		}
		m.emit(LI(b.RegisterHigh, 0))
		return
	}
	switch aSize {
	case 1:
		m.emit(RLWINM(b.Register, a.Register, 0, 24, 31))
	case 2:
		m.emit(RLWINM(b.Register, a.Register, 0, 16, 31))
	default:
		if a.Register != b.Register {
			m.emit(MR(b.Register, a.Register))
		}
	}
	if bSize == 8 && aSize < 4 {
		m.emit(LI(b.RegisterHigh, 0))
	}
}

func lowerMoveCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	if bSize == 8 {
		low := asm.NewShiftMaskPromise(a.Value, 0, 0xffffffff)
		high := asm.NewShiftMaskPromise(a.Value, 32, 0xffffffff)
		loadImmediate(m, low, b.Register)
		loadImmediate(m, high, b.RegisterHigh)
		return
	}
	loadImmediate(m, a.Value, b.Register)
}

func lowerMoveCM(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	tmp := m.acquireTemp()
	defer m.releaseTemp(tmp)
	loadImmediate(m, a.Value, tmp)
	storeToMemory(m, bSize, asm.RegisterOperand(tmp), b)
}

// loadFromMemory lowers one load of the given size from mem into dest.
// signed selects LHA over LHZ for the 2-byte case — the fix for the Move
// (signed) vs MoveZ (zero-extending) half-word load distinction.
func loadFromMemory(m *Assembler, size int, mem asm.Operand, dest asm.Register, signed bool) {
	base := mem.Base
	if mem.HasIndex() {
		idx := normalizeIndex(m, mem)
		switch size {
		case 4:
			m.emit(LWZX(dest, base, idx))
		case 1:
			m.emit(LBZX(dest, base, idx))
		case 2:
			if signed {
				m.emit(LHAX(dest, base, idx))
			} else {
				m.emit(LHZX(dest, base, idx))
			}
		default:
			asm.Abort(m.system(), "unsupported load size %d", size)
		}
		return
	}
	d := mem.Offset
	switch size {
	case 4:
		m.emit(LWZ(dest, base, d))
	case 1:
		m.emit(LBZ(dest, base, d))
	case 2:
		if signed {
			m.emit(LHA(dest, base, d))
		} else {
			m.emit(LHZ(dest, base, d))
		}
	default:
		asm.Abort(m.system(), "unsupported load size %d", size)
	}
}

func storeToMemory(m *Assembler, size int, src asm.Operand, mem asm.Operand) {
	base := mem.Base
	if mem.HasIndex() {
		idx := normalizeIndex(m, mem)
		switch size {
		case 4:
			m.emit(STWX(src.Register, base, idx))
		case 1:
			m.emit(STBX(src.Register, base, idx))
		case 2:
			m.emit(STHX(src.Register, base, idx))
		default:
			asm.Abort(m.system(), "unsupported store size %d", size)
		}
		return
	}
	d := mem.Offset
	switch size {
	case 4:
		m.emit(STW(src.Register, base, d))
	case 1:
		m.emit(STB(src.Register, base, d))
	case 2:
		m.emit(STH(src.Register, base, d))
	default:
		asm.Abort(m.system(), "unsupported store size %d", size)
	}
}

func lowerMoveMR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	loadFromMemory(m, aSize, a, b.Register, true)
	if aSize == 1 {
		// lbz/lbzx zero-extend; there is no sign-extending byte load.
		leftShiftConst(m, b.Register, b.Register, 24)
		m.emit(SRAWI(b.Register, b.Register, 24))
	}
	if bSize == 8 {
		m.emit(SRAWI(b.RegisterHigh, b.Register, 31))
	}
}

func lowerMoveZMR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	loadFromMemory(m, aSize, a, b.Register, false)
	if bSize == 8 {
		m.emit(LI(b.RegisterHigh, 0))
	}
}

func lowerMoveRM(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	storeToMemory(m, bSize, a, b)
}

// lowerMoveAR lowers a Move from an AddressOperandType source: the operand
// carries the promised absolute address of a value, not the value itself,
// so this materializes the address into a scratch register and then issues
// an ordinary load from it (spec.md §4.2 "Address→Register: materialize
// then load from [register]").
func lowerMoveAR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand) {
	tmp := m.acquireTemp()
	defer m.releaseTemp(tmp)
	loadImmediate(m, a.Value, tmp)
	loadFromMemory(m, bSize, asm.MemoryOperand(tmp, 0, asm.NoRegister, 0), b.Register, true)
}
