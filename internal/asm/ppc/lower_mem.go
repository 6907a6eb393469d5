package ppc

import "github.com/gwipplinger/avian/internal/asm"

// normalizeIndex reduces a Memory operand's index+scale+offset to a single
// index register suitable for the X-form (register-indexed) load/store
// encoders, which have no scale or immediate-offset field of their own.
// When the operand is already in that shape (scale 1, offset 0) the index
// register is returned unchanged; a scratch register is requested from the
// Client only when folding is actually needed.
func normalizeIndex(m *Assembler, mem asm.Operand) Register {
	if mem.Scale <= 1 && mem.Offset == 0 {
		return mem.Index
	}

	tmp := m.acquireTemp()
	idx := mem.Index
	if mem.Scale > 1 {
		var shift uint32
		switch mem.Scale {
		case 2:
			shift = 1
		case 4:
			shift = 2
		case 8:
			shift = 3
		default:
			asm.Abort(m.system(), "unsupported memory operand scale %d", mem.Scale)
		}
		leftShiftConst(m, tmp, idx, shift)
		idx = tmp
	}
	if mem.Offset != 0 {
		if fitsInSimm16(int64(mem.Offset)) {
			m.emit(ADDI(tmp, idx, mem.Offset))
		} else {
			off := m.acquireTemp()
			loadImmediate(m, asm.Resolved(int64(mem.Offset)), off)
			m.emit(ADD(tmp, idx, off))
			m.releaseTemp(off)
		}
		idx = tmp
	}
	return idx
}
