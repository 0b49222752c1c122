package cpu

func (c *CPU) ldRRNN(idx byte) int {
	v := c.fetch16()
	c.pairSet(idx, v)
	return 3
}

func (c *CPU) ldNNSP() int {
	addr := c.fetch16()
	c.Bus.Write(addr, byte(c.SP))
	c.Bus.Write(addr+1, byte(c.SP>>8))
	return 5
}

func (c *CPU) ldSPHL() int {
	c.Bus.TickInternal()
	c.SP = c.HL()
	return 2
}

// ldHLSPe8 implements LD HL,SP+e8's documented anomaly: H and C are
// computed from an *unsigned* 8-bit add of SP's low byte with the operand
// byte, even though the operand is sign-extended for the actual 16-bit
// result.
func (c *CPU) ldHLSPe8() int {
	e := c.fetch8()
	c.Bus.TickInternal()
	lo := byte(c.SP)
	h := halfCarryAdd8(lo, e)
	cy := carryAdd8(lo, e)
	result := uint16(int32(c.SP) + int32(int8(e)))
	c.SetHL(result)
	c.setZ(false)
	c.setN(false)
	c.setH(h)
	c.setC(cy)
	return 3
}
