package ppc

import "github.com/gwipplinger/avian/internal/asm"

// Arithmetic, logical, and shift lowering. Unlike the Move/Compare family,
// these are ternary: c receives the combination of the two sources a and b,
// which are never themselves written — the same independent-destination
// shape lowerLongCompareRR already uses in lower_compare.go. Negate is the
// exception: it is unary and rewrites its one operand in place.

func lowerAddRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 8 {
		m.emit(ADDC(c.Register, a.Register, b.Register))
		if aSize == 8 {
			m.emit(ADDE(c.RegisterHigh, a.RegisterHigh, b.RegisterHigh))
		} else {
			m.emit(ADDE(c.RegisterHigh, R0, b.RegisterHigh))
		}
		return
	}
	m.emit(ADD(c.Register, a.Register, b.Register))
}

func lowerAddCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 8 {
		low := asm.NewShiftMaskPromise(a.Value, 0, 0xffffffff)
		high := asm.NewShiftMaskPromise(a.Value, 32, 0xffffffff)
		tmpLow := m.acquireTemp()
		tmpHigh := m.acquireTemp()
		loadImmediate(m, low, tmpLow)
		loadImmediate(m, high, tmpHigh)
		m.emit(ADDC(c.Register, b.Register, tmpLow))
		m.emit(ADDE(c.RegisterHigh, b.RegisterHigh, tmpHigh))
		m.releaseTemp(tmpHigh)
		m.releaseTemp(tmpLow)
		return
	}
	if a.Value.Resolved() && fitsInSimm16(a.Value.Value()) {
		m.emit(ADDI(c.Register, b.Register, int32(a.Value.Value())))
		return
	}
	tmp := m.acquireTemp()
	loadImmediate(m, a.Value, tmp)
	m.emit(ADD(c.Register, b.Register, tmp))
	m.releaseTemp(tmp)
}

func lowerSubRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 8 {
		m.emit(SUBFC(c.Register, a.Register, b.Register))
		m.emit(SUBFE(c.RegisterHigh, a.RegisterHigh, b.RegisterHigh))
		return
	}
	m.emit(SUBF(c.Register, a.Register, b.Register))
}

func lowerSubCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 8 {
		low := asm.NewShiftMaskPromise(a.Value, 0, 0xffffffff)
		high := asm.NewShiftMaskPromise(a.Value, 32, 0xffffffff)
		tmpLow := m.acquireTemp()
		tmpHigh := m.acquireTemp()
		loadImmediate(m, low, tmpLow)
		loadImmediate(m, high, tmpHigh)
		m.emit(SUBFC(c.Register, tmpLow, b.Register))
		m.emit(SUBFE(c.RegisterHigh, tmpHigh, b.RegisterHigh))
		m.releaseTemp(tmpHigh)
		m.releaseTemp(tmpLow)
		return
	}
	if a.Value.Resolved() && fitsInSimm16(-a.Value.Value()) {
		m.emit(ADDI(c.Register, b.Register, int32(-a.Value.Value())))
		return
	}
	tmp := m.acquireTemp()
	loadImmediate(m, a.Value, tmp)
	m.emit(SUBF(c.Register, tmp, b.Register))
	m.releaseTemp(tmp)
}

// lowerMulRR lowers a 4- or 8-byte multiply. The 8-byte case is the
// classical three-partial-product sequence: only the low 64 bits of a
// 128-bit product are kept, so the cross terms aHi*bLo and aLo*bHi
// contribute only their low words, added into the high word of the result
// alongside the high word of the aLo*bLo partial product. c is independent
// of both sources, so the final words can be written directly with no risk
// of clobbering an input still in use.
func lowerMulRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 4 {
		m.emit(MULLW(c.Register, a.Register, b.Register))
		return
	}
	acc := m.acquireTemp()
	cross := m.acquireTemp()
	m.emit(MULHWU(acc, a.Register, b.Register))
	m.emit(MULLW(cross, a.Register, b.RegisterHigh))
	m.emit(ADD(acc, acc, cross))
	m.emit(MULLW(cross, a.RegisterHigh, b.Register))
	m.emit(ADD(acc, acc, cross))
	m.emit(MULLW(c.Register, a.Register, b.Register))
	m.emit(MR(c.RegisterHigh, acc))
	m.releaseTemp(cross)
	m.releaseTemp(acc)
}

// lowerDivRR and lowerRemRR only ever run at 4-byte size: Architecture.Plan
// routes the 8-byte case to a runtime Thunk, since this target has no
// 64-by-64 divide instruction.
func lowerDivRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	m.emit(DIVW(c.Register, b.Register, a.Register))
}

func lowerRemRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	tmp := m.acquireTemp()
	m.emit(DIVW(tmp, b.Register, a.Register))
	m.emit(MULLW(tmp, tmp, a.Register))
	m.emit(SUBF(c.Register, tmp, b.Register))
	m.releaseTemp(tmp)
}

func lowerNegateR(m *Assembler, size int, operand asm.Operand) {
	if size == 8 {
		m.emit(SUBFIC(operand.Register, operand.Register, 0))
		m.emit(SUBFZE(operand.RegisterHigh, operand.RegisterHigh))
		return
	}
	m.emit(NEG(operand.Register, operand.Register))
}

func lowerAndRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	m.emit(AND(c.Register, b.Register, a.Register))
	if bSize == 8 {
		m.emit(AND(c.RegisterHigh, b.RegisterHigh, a.RegisterHigh))
	}
}

func lowerOrRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	m.emit(OR(c.Register, b.Register, a.Register))
	if bSize == 8 {
		m.emit(OR(c.RegisterHigh, b.RegisterHigh, a.RegisterHigh))
	}
}

func lowerXorRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	m.emit(XOR(c.Register, b.Register, a.Register))
	if bSize == 8 {
		m.emit(XOR(c.RegisterHigh, b.RegisterHigh, a.RegisterHigh))
	}
}

// contiguousMask reports whether the set bits of v form one contiguous
// (non-wrapping) run, and if so returns its PPC mb/me bit positions (bit 0
// is the MSB, per the M-form field convention) for use with a single
// rlwinm. Wrapping masks are a rarer case this target does not special-case;
// they fall through to the andi/andis/materialize path below.
func contiguousMask(v uint32) (mb, me uint32, ok bool) {
	if v == 0 || v == 0xffffffff {
		return 0, 0, false
	}
	first, last := -1, -1
	for i := 0; i < 32; i++ {
		if v&(1<<uint(31-i)) != 0 {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	for i := first; i <= last; i++ {
		if v&(1<<uint(31-i)) == 0 {
			return 0, 0, false
		}
	}
	return uint32(first), uint32(last), true
}

// lowerAndCR favors a single rlwinm when the constant is a contiguous mask,
// falls back to andi/andis when it fits one immediate half, and otherwise
// materializes the constant into a temporary (spec.md §4.3).
func lowerAndCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 8 {
		low := asm.NewShiftMaskPromise(a.Value, 0, 0xffffffff)
		high := asm.NewShiftMaskPromise(a.Value, 32, 0xffffffff)
		tmp := m.acquireTemp()
		loadImmediate(m, low, tmp)
		m.emit(AND(c.Register, b.Register, tmp))
		loadImmediate(m, high, tmp)
		m.emit(AND(c.RegisterHigh, b.RegisterHigh, tmp))
		m.releaseTemp(tmp)
		return
	}
	if a.Value.Resolved() {
		v := uint32(a.Value.Value())
		if mb, me, ok := contiguousMask(v); ok {
			m.emit(RLWINM(c.Register, b.Register, 0, mb, me))
			return
		}
		if v&0xffff0000 == 0 {
			m.emit(ANDI(c.Register, b.Register, int32(v)))
			return
		}
		if v&0xffff == 0 {
			m.emit(ANDIS(c.Register, b.Register, int32(v>>16)))
			return
		}
	}
	tmp := m.acquireTemp()
	loadImmediate(m, a.Value, tmp)
	m.emit(AND(c.Register, b.Register, tmp))
	m.releaseTemp(tmp)
}

// lowerOrCR emits ori for the low half and oris for the high half, copying b
// into c with a plain mr instead of the ori when the low half is zero (c is
// independent of b, so unlike an in-place accumulator the copy can't be
// skipped; any oris then works on c), and falls back to materializing the
// constant when it is not yet resolved.
func lowerOrCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 8 || !a.Value.Resolved() {
		tmp := m.acquireTemp()
		if bSize == 8 {
			low := asm.NewShiftMaskPromise(a.Value, 0, 0xffffffff)
			high := asm.NewShiftMaskPromise(a.Value, 32, 0xffffffff)
			loadImmediate(m, low, tmp)
			m.emit(OR(c.Register, b.Register, tmp))
			loadImmediate(m, high, tmp)
			m.emit(OR(c.RegisterHigh, b.RegisterHigh, tmp))
		} else {
			loadImmediate(m, a.Value, tmp)
			m.emit(OR(c.Register, b.Register, tmp))
		}
		m.releaseTemp(tmp)
		return
	}
	v := uint32(a.Value.Value())
	if v&0xffff != 0 {
		m.emit(ORI(c.Register, b.Register, int32(v&0xffff)))
	} else {
		m.emit(MR(c.Register, b.Register))
	}
	if v>>16 != 0 {
		m.emit(ORIS(c.Register, c.Register, int32(v>>16)))
	}
}

// lowerXorCR mirrors lowerOrCR using xori/xoris.
func lowerXorCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 8 || !a.Value.Resolved() {
		tmp := m.acquireTemp()
		if bSize == 8 {
			low := asm.NewShiftMaskPromise(a.Value, 0, 0xffffffff)
			high := asm.NewShiftMaskPromise(a.Value, 32, 0xffffffff)
			loadImmediate(m, low, tmp)
			m.emit(XOR(c.Register, b.Register, tmp))
			loadImmediate(m, high, tmp)
			m.emit(XOR(c.RegisterHigh, b.RegisterHigh, tmp))
		} else {
			loadImmediate(m, a.Value, tmp)
			m.emit(XOR(c.Register, b.Register, tmp))
		}
		m.releaseTemp(tmp)
		return
	}
	v := uint32(a.Value.Value())
	if v&0xffff != 0 {
		m.emit(XORI(c.Register, b.Register, int32(v&0xffff)))
	} else {
		m.emit(MR(c.Register, b.Register))
	}
	if v>>16 != 0 {
		m.emit(XORIS(c.Register, c.Register, int32(v>>16)))
	}
}

func leftShiftConst(m *Assembler, dst, src Register, k uint32) {
	if k == 0 {
		if dst != src {
			m.emit(MR(dst, src))
		}
		return
	}
	m.emit(RLWINM(dst, src, k, 0, 31-k))
}

func rightShiftConstUnsigned(m *Assembler, dst, src Register, k uint32) {
	if k == 0 {
		if dst != src {
			m.emit(MR(dst, src))
		}
		return
	}
	m.emit(RLWINM(dst, src, 32-k, k, 31))
}

func lowerShiftLeftRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 4 {
		m.emit(SLW(c.Register, b.Register, a.Register))
		return
	}
	shiftPairLeftVariable(m, a.Register, b.Register, b.RegisterHigh, c.Register, c.RegisterHigh)
}

func lowerShiftLeftCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	amt := uint32(a.Value.Value()) & 0x3f
	if bSize == 4 {
		if amt >= 32 {
			m.emit(LI(c.Register, 0))
			return
		}
		leftShiftConst(m, c.Register, b.Register, amt)
		return
	}
	if amt == 0 {
		m.emit(MR(c.Register, b.Register))
		m.emit(MR(c.RegisterHigh, b.RegisterHigh))
		return
	}
	if amt >= 32 {
		leftShiftConst(m, c.RegisterHigh, b.Register, amt-32)
		m.emit(LI(c.Register, 0))
		return
	}
	tmp := m.acquireTemp()
	rightShiftConstUnsigned(m, tmp, b.Register, 32-amt)
	leftShiftConst(m, c.RegisterHigh, b.RegisterHigh, amt)
	m.emit(OR(c.RegisterHigh, c.RegisterHigh, tmp))
	leftShiftConst(m, c.Register, b.Register, amt)
	m.releaseTemp(tmp)
}

// shiftPairLeftVariable implements a 64-bit left shift by a register-held
// count in [0,63] (spec.md §4.3 "double-word-shift idiom for variable
// shift"). It relies on the ISA guarantee that slw/srw produce zero when
// their shift-amount operand is 32 or greater. Every source word is read
// before any destination word is written, so src and dst may safely alias.
func shiftPairLeftVariable(m *Assembler, n, srcLo, srcHi, dstLo, dstHi Register) {
	comp := m.acquireTemp()
	m.emit(SUBFIC(comp, n, 32))
	t1 := m.acquireTemp()
	m.emit(SLW(t1, srcHi, n))
	t2 := m.acquireTemp()
	m.emit(SRW(t2, srcLo, comp))
	m.emit(OR(t1, t1, t2))
	nLow := m.acquireTemp()
	m.emit(ADDI(nLow, n, -32))
	m.emit(SLW(t2, srcLo, nLow))
	m.emit(SLW(dstLo, srcLo, n))
	m.emit(OR(dstHi, t1, t2))
	m.releaseTemp(nLow)
	m.releaseTemp(t2)
	m.releaseTemp(t1)
	m.releaseTemp(comp)
}

// shiftPairRightVariable implements a 64-bit right shift by a register-held
// count, arithmetic (sign-filling) or logical depending on arithmetic. As in
// shiftPairLeftVariable, every source word is read before any destination
// word is written.
func shiftPairRightVariable(m *Assembler, n, srcLo, srcHi, dstLo, dstHi Register, arithmetic bool) {
	comp := m.acquireTemp()
	m.emit(SUBFIC(comp, n, 32))
	t1 := m.acquireTemp()
	m.emit(SRW(t1, srcLo, n))
	t2 := m.acquireTemp()
	m.emit(SLW(t2, srcHi, comp))
	m.emit(OR(t1, t1, t2))
	nLow := m.acquireTemp()
	m.emit(ADDI(nLow, n, -32))
	if arithmetic {
		m.emit(SRAW(t2, srcHi, nLow))
		// For counts below 32, nLow's low six bits are 32 or more and sraw
		// sign-fills t2; clear it then (comp = 0 when n < 32, else -1).
		rightShiftConstUnsigned(m, comp, nLow, 31)
		m.emit(ADDI(comp, comp, -1))
		m.emit(AND(t2, t2, comp))
	} else {
		m.emit(SRW(t2, srcHi, nLow))
	}
	if arithmetic {
		m.emit(SRAW(dstHi, srcHi, n))
	} else {
		m.emit(SRW(dstHi, srcHi, n))
	}
	m.emit(OR(dstLo, t1, t2))
	m.releaseTemp(nLow)
	m.releaseTemp(t2)
	m.releaseTemp(t1)
	m.releaseTemp(comp)
}

func lowerShiftRightRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 4 {
		m.emit(SRAW(c.Register, b.Register, a.Register))
		return
	}
	shiftPairRightVariable(m, a.Register, b.Register, b.RegisterHigh, c.Register, c.RegisterHigh, true)
}

func lowerUShiftRightRR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	if bSize == 4 {
		m.emit(SRW(c.Register, b.Register, a.Register))
		return
	}
	shiftPairRightVariable(m, a.Register, b.Register, b.RegisterHigh, c.Register, c.RegisterHigh, false)
}

func lowerShiftRightCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	amt := uint32(a.Value.Value()) & 0x3f
	if bSize == 4 {
		if amt >= 32 {
			amt = 31
		}
		m.emit(SRAWI(c.Register, b.Register, amt))
		return
	}
	if amt == 0 {
		m.emit(MR(c.Register, b.Register))
		m.emit(MR(c.RegisterHigh, b.RegisterHigh))
		return
	}
	if amt >= 32 {
		m.emit(SRAWI(c.Register, b.RegisterHigh, amt-32))
		m.emit(SRAWI(c.RegisterHigh, b.RegisterHigh, 31))
		return
	}
	tmp := m.acquireTemp()
	leftShiftConst(m, tmp, b.RegisterHigh, 32-amt)
	rightShiftConstUnsigned(m, c.Register, b.Register, amt)
	m.emit(OR(c.Register, c.Register, tmp))
	m.emit(SRAWI(c.RegisterHigh, b.RegisterHigh, amt))
	m.releaseTemp(tmp)
}

func lowerUShiftRightCR(m *Assembler, aSize int, a asm.Operand, bSize int, b asm.Operand, cSize int, c asm.Operand) {
	amt := uint32(a.Value.Value()) & 0x3f
	if bSize == 4 {
		if amt >= 32 {
			m.emit(LI(c.Register, 0))
			return
		}
		rightShiftConstUnsigned(m, c.Register, b.Register, amt)
		return
	}
	if amt == 0 {
		m.emit(MR(c.Register, b.Register))
		m.emit(MR(c.RegisterHigh, b.RegisterHigh))
		return
	}
	if amt >= 32 {
		rightShiftConstUnsigned(m, c.Register, b.RegisterHigh, amt-32)
		m.emit(LI(c.RegisterHigh, 0))
		return
	}
	tmp := m.acquireTemp()
	leftShiftConst(m, tmp, b.RegisterHigh, 32-amt)
	rightShiftConstUnsigned(m, c.Register, b.Register, amt)
	m.emit(OR(c.Register, c.Register, tmp))
	rightShiftConstUnsigned(m, c.RegisterHigh, b.RegisterHigh, amt)
	m.releaseTemp(tmp)
}
