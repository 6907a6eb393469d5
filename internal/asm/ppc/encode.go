package ppc

// Pure instruction-format encoders: given the semantic fields of one native
// instruction, produce the 32-bit word for it. Each function places
// bit-fields into the canonical positions for that format and nothing else;
// testable in isolation against bit patterns (spec.md §4.1, §8).
//
// Field naming follows the ISA's own reference manual (opcode, RT/RS/RD,
// RA, RB, SIMM/UIMM, SH/MB/ME, BO/BI/BD, LI, AA, LK, XO, Rc), the same
// convention arm.cpp's isa:: namespace uses for its own (different) ISA.

func reg5(r int) uint32 { return uint32(r) & 0x1f }

// dForm packs the D-form layout: opcode(6) rt(5) ra(5) d(16).
func dForm(opcode, rt, ra uint32, d int32) uint32 {
	return opcode<<26 | reg5(int(rt))<<21 | reg5(int(ra))<<16 | uint32(d)&0xffff
}

// xForm packs the X-form layout: opcode(6) rt(5) ra(5) rb(5) xo(10) rc(1).
func xForm(opcode, rt, ra, rb, xo, rc uint32) uint32 {
	return opcode<<26 | reg5(int(rt))<<21 | reg5(int(ra))<<16 | reg5(int(rb))<<11 | xo<<1 | rc
}

// xoForm packs the XO-form layout: opcode(6) rt(5) ra(5) rb(5) oe(1) xo(9) rc(1).
func xoForm(opcode, rt, ra, rb, oe, xo, rc uint32) uint32 {
	return opcode<<26 | reg5(int(rt))<<21 | reg5(int(ra))<<16 | reg5(int(rb))<<11 | oe<<10 | xo<<1 | rc
}

// mForm packs the M-form layout (rlwinm/rlwimi): opcode(6) rs(5) ra(5) sh(5) mb(5) me(5) rc(1).
func mForm(opcode, rs, ra, sh, mb, me, rc uint32) uint32 {
	return opcode<<26 | reg5(int(rs))<<21 | reg5(int(ra))<<16 | reg5(int(sh))<<11 | reg5(int(mb))<<6 | reg5(int(me))<<1 | rc
}

// iForm packs the I-form layout (b/bl): opcode(6) li(24) aa(1) lk(1).
func iForm(opcode, li, aa, lk uint32) uint32 {
	return opcode<<26 | (li&0x00ffffff)<<2 | aa<<1 | lk
}

// bForm packs the B-form layout (bc): opcode(6) bo(5) bi(5) bd(14) aa(1) lk(1).
func bForm(opcode, bo, bi uint32, bd int32, aa, lk uint32) uint32 {
	return opcode<<26 | reg5(int(bo))<<21 | reg5(int(bi))<<16 | (uint32(bd)&0x3fff)<<2 | aa<<1 | lk
}

// xlForm packs the XL-form layout used by bclr/bcctr: opcode(6) bo(5) bi(5) /// (5) xo(10) lk(1).
func xlForm(opcode, bo, bi, xo, lk uint32) uint32 {
	return opcode<<26 | reg5(int(bo))<<21 | reg5(int(bi))<<16 | xo<<1 | lk
}

func regOf(r Register) uint32 { return uint32(r) }

// Arithmetic and logical, register form.
func ADD(rt, ra, rb Register) uint32    { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 266, 0) }
func ADDC(rt, ra, rb Register) uint32   { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 10, 0) }
func ADDE(rt, ra, rb Register) uint32   { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 138, 0) }
func SUBF(rt, ra, rb Register) uint32   { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 40, 0) }
func SUBFC(rt, ra, rb Register) uint32  { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 8, 0) }
func SUBFE(rt, ra, rb Register) uint32  { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 136, 0) }
func SUBFZE(rt, ra Register) uint32     { return xoForm(31, regOf(rt), regOf(ra), 0, 0, 200, 0) }
func NEG(rt, ra Register) uint32        { return xoForm(31, regOf(rt), regOf(ra), 0, 0, 104, 0) }
func MULLW(rt, ra, rb Register) uint32  { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 235, 0) }
func MULHWU(rt, ra, rb Register) uint32 { return xForm(31, regOf(rt), regOf(ra), regOf(rb), 11, 0) }
func DIVW(rt, ra, rb Register) uint32   { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 491, 0) }
func DIVWU(rt, ra, rb Register) uint32  { return xoForm(31, regOf(rt), regOf(ra), regOf(rb), 0, 459, 0) }
func AND(ra, rs, rb Register) uint32    { return xForm(31, regOf(rs), regOf(ra), regOf(rb), 28, 0) }
func OR(ra, rs, rb Register) uint32     { return xForm(31, regOf(rs), regOf(ra), regOf(rb), 444, 0) }
func XOR(ra, rs, rb Register) uint32    { return xForm(31, regOf(rs), regOf(ra), regOf(rb), 316, 0) }
func SLW(ra, rs, rb Register) uint32    { return xForm(31, regOf(rs), regOf(ra), regOf(rb), 24, 0) }
func SRW(ra, rs, rb Register) uint32    { return xForm(31, regOf(rs), regOf(ra), regOf(rb), 536, 0) }
func SRAW(ra, rs, rb Register) uint32   { return xForm(31, regOf(rs), regOf(ra), regOf(rb), 792, 0) }
func SRAWI(ra, rs Register, sh uint32) uint32 {
	return xForm(31, regOf(rs), regOf(ra), sh, 824, 0)
}

// Arithmetic and logical, immediate form. ADDI/ADDIS/SUBFIC place the
// destination in RT and the source in RA, matching the real D-form layout:
// opcode rt ra simm. ORI/ORIS/ANDI/ANDIS/XORI/XORIS instead read the source
// in RS and write the destination in RA (spec.md §9 Open Question #2,
// resolved against the real ISA encoding: "ori RA,RS,UI").
func ADDI(rt, ra Register, simm int32) uint32  { return dForm(14, regOf(rt), regOf(ra), simm) }
func ADDIS(rt, ra Register, simm int32) uint32 { return dForm(15, regOf(rt), regOf(ra), simm) }
func SUBFIC(rt, ra Register, simm int32) uint32 {
	return dForm(8, regOf(rt), regOf(ra), simm)
}
func ORI(ra, rs Register, uimm int32) uint32   { return dForm(24, regOf(rs), regOf(ra), uimm) }
func ORIS(ra, rs Register, uimm int32) uint32  { return dForm(25, regOf(rs), regOf(ra), uimm) }
func XORI(ra, rs Register, uimm int32) uint32  { return dForm(26, regOf(rs), regOf(ra), uimm) }
func XORIS(ra, rs Register, uimm int32) uint32 { return dForm(27, regOf(rs), regOf(ra), uimm) }
func ANDI(ra, rs Register, uimm int32) uint32  { return dForm(28, regOf(rs), regOf(ra), uimm) }
func ANDIS(ra, rs Register, uimm int32) uint32 { return dForm(29, regOf(rs), regOf(ra), uimm) }

// RLWINM: rotate left word immediate then AND with mask(mb,me).
func RLWINM(ra, rs Register, sh, mb, me uint32) uint32 {
	return mForm(21, regOf(rs), regOf(ra), sh, mb, me, 0)
}

// RLWIMI: rotate left word immediate then mask-insert into ra.
func RLWIMI(ra, rs Register, sh, mb, me uint32) uint32 {
	return mForm(20, regOf(rs), regOf(ra), sh, mb, me, 0)
}

// Compares.
func CMPW(ra, rb Register) uint32         { return xForm(31, 0, regOf(ra), regOf(rb), 0, 0) }
func CMPWI(ra Register, simm int32) uint32 { return dForm(11, 0, regOf(ra), simm) }
func CMPLW(ra, rb Register) uint32        { return xForm(31, 0, regOf(ra), regOf(rb), 32, 0) }
func CMPLWI(ra Register, uimm int32) uint32 {
	return dForm(10, 0, regOf(ra), uimm)
}

// Loads/stores, register-offset (indexed) and immediate-offset forms.
func LWZ(rt, ra Register, d int32) uint32  { return dForm(32, regOf(rt), regOf(ra), d) }
func LWZX(rt, ra, rb Register) uint32      { return xForm(31, regOf(rt), regOf(ra), regOf(rb), 23, 0) }
func STW(rt, ra Register, d int32) uint32  { return dForm(36, regOf(rt), regOf(ra), d) }
func STWX(rt, ra, rb Register) uint32      { return xForm(31, regOf(rt), regOf(ra), regOf(rb), 151, 0) }
func LBZ(rt, ra Register, d int32) uint32  { return dForm(34, regOf(rt), regOf(ra), d) }
func LBZX(rt, ra, rb Register) uint32      { return xForm(31, regOf(rt), regOf(ra), regOf(rb), 87, 0) }
func STB(rt, ra Register, d int32) uint32  { return dForm(38, regOf(rt), regOf(ra), d) }
func STBX(rt, ra, rb Register) uint32      { return xForm(31, regOf(rt), regOf(ra), regOf(rb), 215, 0) }
func LHZ(rt, ra Register, d int32) uint32  { return dForm(40, regOf(rt), regOf(ra), d) }
func LHZX(rt, ra, rb Register) uint32      { return xForm(31, regOf(rt), regOf(ra), regOf(rb), 279, 0) }
func LHA(rt, ra Register, d int32) uint32  { return dForm(42, regOf(rt), regOf(ra), d) }
func LHAX(rt, ra, rb Register) uint32      { return xForm(31, regOf(rt), regOf(ra), regOf(rb), 343, 0) }
func STH(rt, ra Register, d int32) uint32  { return dForm(44, regOf(rt), regOf(ra), d) }
func STHX(rt, ra, rb Register) uint32      { return xForm(31, regOf(rt), regOf(ra), regOf(rb), 407, 0) }

// Branches.
func B(li int32) uint32  { return iForm(18, uint32(li), 0, 0) }
func BL(li int32) uint32 { return iForm(18, uint32(li), 0, 1) }
func BC(bo, bi uint32, bd int32) uint32 { return bForm(16, bo, bi, bd, 0, 0) }

// BCTR/BCTRL/BLR are unconditional branches to CTR/LR: BO=20 (always),
// BI=0 (ignored).
func BCTR() uint32  { return xlForm(19, 20, 0, 528, 0) }
func BCTRL() uint32 { return xlForm(19, 20, 0, 528, 1) }
func BLR() uint32   { return xlForm(19, 20, 0, 16, 0) }

// MTCTR/MFCTR/MTLR/MFLR move a GPR to/from the special count/link
// registers via mtspr/mfspr with SPR split across the RA/RB-shaped field
// (spr = sprHi<<5 | sprLo, encoded little-half-first per the ISA's own
// mtspr/mfspr field layout).
const (
	sprLR  = 8
	sprCTR = 9
)

func mtspr(rs Register, spr uint32) uint32 {
	return xForm(31, regOf(rs), spr&0x1f, spr>>5, 467, 0)
}

func mfspr(rt Register, spr uint32) uint32 {
	return xForm(31, regOf(rt), spr&0x1f, spr>>5, 339, 0)
}

func MTLR(rs Register) uint32  { return mtspr(rs, sprLR) }
func MFLR(rt Register) uint32  { return mfspr(rt, sprLR) }
func MTCTR(rs Register) uint32 { return mtspr(rs, sprCTR) }

// SYNC is a full memory barrier (X-form, no operands).
func SYNC() uint32 { return xForm(31, 0, 0, 0, 598, 0) }

// Pseudo-instructions, composed from the above exactly as arm.cpp composes
// NOP/LSLi/LSRi/ASRi/ROR from its own primitives (spec.md §4.1).
func NOP() uint32             { return ORI(R0, R0, 0) }
func MR(rt, rs Register) uint32 { return OR(rt, rs, rs) }
func LI(rt Register, simm int32) uint32  { return ADDI(rt, R0, simm) }
func LIS(rt Register, simm int32) uint32 { return ADDIS(rt, R0, simm) }
