package cpu

import "dmg01/mask"

// Non-prefixed A-only rotates (RLCA/RRCA/RLA/RRA). Unlike their
// CB-prefixed cousins, these always clear Z regardless of the result.

func (c *CPU) rlca() int {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | cyBit(carry)
	c.setZ(false)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return 1
}

func (c *CPU) rrca() int {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | cyBit(carry)<<7
	c.setZ(false)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return 1
}

func (c *CPU) rla() int {
	old := cyBit(c.FlagC())
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | old
	c.setZ(false)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return 1
}

func (c *CPU) rra() int {
	old := cyBit(c.FlagC())
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | old<<7
	c.setZ(false)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return 1
}

// CB-prefixed rotate/shift/swap transforms: each mutates F in place and
// returns the new byte value. Z reflects the result here, unlike the
// non-prefixed A-only forms above.

func cbRLC(c *CPU, v byte) byte {
	carry := v&0x80 != 0
	r := v<<1 | cyBit(carry)
	c.setZ(r == 0)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return r
}

func cbRRC(c *CPU, v byte) byte {
	carry := v&0x01 != 0
	r := v>>1 | cyBit(carry)<<7
	c.setZ(r == 0)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return r
}

func cbRL(c *CPU, v byte) byte {
	old := cyBit(c.FlagC())
	carry := v&0x80 != 0
	r := v<<1 | old
	c.setZ(r == 0)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return r
}

func cbRR(c *CPU, v byte) byte {
	old := cyBit(c.FlagC())
	carry := v&0x01 != 0
	r := v>>1 | old<<7
	c.setZ(r == 0)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return r
}

func cbSLA(c *CPU, v byte) byte {
	carry := v&0x80 != 0
	r := v << 1
	c.setZ(r == 0)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return r
}

// cbSRA sign-extends bit 7 (an "arithmetic" shift).
func cbSRA(c *CPU, v byte) byte {
	carry := v&0x01 != 0
	r := (v >> 1) | (v & 0x80)
	c.setZ(r == 0)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return r
}

func cbSRL(c *CPU, v byte) byte {
	carry := v&0x01 != 0
	r := v >> 1
	c.setZ(r == 0)
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return r
}

func cbSWAP(c *CPU, v byte) byte {
	r := v<<4 | v>>4
	c.setZ(r == 0)
	c.setN(false)
	c.setH(false)
	c.setC(false)
	return r
}

// cbRotateTable indexes the eight CB rotate/shift/swap families in their
// opcode-table row order: RLC RRC RL RR SLA SRA SWAP SRL.
var cbRotateTable = [8]func(c *CPU, v byte) byte{
	cbRLC, cbRRC, cbRL, cbRR, cbSLA, cbSRA, cbSWAP, cbSRL,
}

// cbBitPos translates a CB bit index n (0 = LSB, per the opcode encoding)
// to the mask package's 1-indexed-from-MSB position.
func cbBitPos(n byte) mask.ByteIndex {
	return mask.ByteIndex(8 - n)
}

// cbRotate runs one of the eight rotate/shift/swap families against
// reg8(idx), writing the result back. The extra bus-op count beyond the
// CB-prefix byte read is 0 for register operands, 2 (one read, one write)
// for (HL).
func (c *CPU) cbRotate(fn func(c *CPU, v byte) byte, idx byte) int {
	v := c.reg8(idx)
	r := fn(c, v)
	c.setReg8(idx, r)
	if idx == regHLIndirect {
		return 2
	}
	return 0
}

func (c *CPU) cbBit(n, idx byte) int {
	v := c.reg8(idx)
	c.setZ(!mask.IsSet(v, cbBitPos(n)))
	c.setN(false)
	c.setH(true)
	if idx == regHLIndirect {
		return 1
	}
	return 0
}

func (c *CPU) cbRes(n, idx byte) int {
	v := c.reg8(idx)
	pos := cbBitPos(n)
	c.setReg8(idx, mask.Unset(v, pos, pos))
	if idx == regHLIndirect {
		return 2
	}
	return 0
}

func (c *CPU) cbSet(n, idx byte) int {
	v := c.reg8(idx)
	c.setReg8(idx, mask.Set(v, cbBitPos(n), 1))
	if idx == regHLIndirect {
		return 2
	}
	return 0
}
