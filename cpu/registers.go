package cpu

import "dmg01/mask"

// Registers holds the architectural state of the LR35902 register file: the
// eight 8-bit registers, viewed in pairs as AF/BC/DE/HL, plus the 16-bit
// stack pointer and program counter.
//
// F is observable only through its high nibble; the low nibble is always
// zero. Z, N, H and C live at bits 7, 6, 5 and 4 respectively, packed via
// mask.I1..I4 (the mask package numbers bit positions 1-indexed from the
// MSB, so I1 is bit 7).
type Registers struct {
	A, B, C, D, E, H, L, F byte
	SP, PC                 uint16
}

// newBootRegisters returns the canonical post-boot-ROM register state.
func newBootRegisters() Registers {
	return Registers{
		A: 0x01,
		F: 0xB0, // Z=1, N=0, H=1, C=1
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

func (r *Registers) AF() uint16 { return mask.Word(r.A, r.F) }
func (r *Registers) BC() uint16 { return mask.Word(r.B, r.C) }
func (r *Registers) DE() uint16 { return mask.Word(r.D, r.E) }
func (r *Registers) HL() uint16 { return mask.Word(r.H, r.L) }

func (r *Registers) SetAF(v uint16) {
	r.A, r.F = mask.SplitWord(v)
	r.F &= 0xF0 // low nibble of F is always zero
}

// SetBC, SetDE and SetHL mask the low byte with 0xFF. An earlier draft of
// this register file (mirroring a bug in the LR35902 reference it is
// modeled on) masked with 0x0F, truncating the low register to 4 bits; the
// correct 8-bit mask is used here.
func (r *Registers) SetBC(v uint16) { r.B, r.C = mask.SplitWord(v) }
func (r *Registers) SetDE(v uint16) { r.D, r.E = mask.SplitWord(v) }
func (r *Registers) SetHL(v uint16) { r.H, r.L = mask.SplitWord(v) }

// Flag getters/setters. Each packs/unpacks a single bit of F via mask, at
// the position the mask package's 1-indexed-from-MSB scheme assigns it.

func (r *Registers) FlagZ() bool { return mask.IsSet(r.F, mask.I1) }
func (r *Registers) FlagN() bool { return mask.IsSet(r.F, mask.I2) }
func (r *Registers) FlagH() bool { return mask.IsSet(r.F, mask.I3) }
func (r *Registers) FlagC() bool { return mask.IsSet(r.F, mask.I4) }

func (r *Registers) setZ(v bool) { r.setBit(mask.I1, v) }
func (r *Registers) setN(v bool) { r.setBit(mask.I2, v) }
func (r *Registers) setH(v bool) { r.setBit(mask.I3, v) }
func (r *Registers) setC(v bool) { r.setBit(mask.I4, v) }

func (r *Registers) setBit(pos mask.ByteIndex, v bool) {
	if v {
		r.F = mask.Set(r.F, pos, 1)
	} else {
		r.F = mask.Unset(r.F, pos, pos)
	}
}

func (r *Registers) clearFlags() { r.F = 0 }

func (r *Registers) setZNHC(z, n, h, c bool) {
	r.setZ(z)
	r.setN(n)
	r.setH(h)
	r.setC(c)
}

// The 3-bit register encoding shared by LD r,r', the ALU A,r block and every
// CB-prefixed opcode: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A.
const regHLIndirect = 6

// reg8 and setReg8 are implemented on CPU (not Registers) since index 6
// reaches through the bus to the byte at (HL).

// The 2-bit register-pair encoding used by LD rr,nn / INC rr / DEC rr /
// ADD HL,rr: 0=BC 1=DE 2=HL 3=SP.
func (r *Registers) pairGet(idx byte) uint16 {
	switch idx {
	case 0:
		return r.BC()
	case 1:
		return r.DE()
	case 2:
		return r.HL()
	default:
		return r.SP
	}
}

func (r *Registers) pairSet(idx byte, v uint16) {
	switch idx {
	case 0:
		r.SetBC(v)
	case 1:
		r.SetDE(v)
	case 2:
		r.SetHL(v)
	default:
		r.SP = v
	}
}

// The 2-bit register-pair encoding used by PUSH/POP, which substitutes AF
// for SP at index 3.
func (r *Registers) stackPairGet(idx byte) uint16 {
	if idx == 3 {
		return r.AF()
	}
	return r.pairGet(idx)
}

func (r *Registers) stackPairSet(idx byte, v uint16) {
	if idx == 3 {
		r.SetAF(v)
		return
	}
	r.pairSet(idx, v)
}
