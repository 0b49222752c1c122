package cpu

func (c *CPU) incRR(idx byte) int {
	c.Bus.TickInternal()
	c.pairSet(idx, c.pairGet(idx)+1)
	return 2
}

func (c *CPU) decRR(idx byte) int {
	c.Bus.TickInternal()
	c.pairSet(idx, c.pairGet(idx)-1)
	return 2
}

// addHLRR leaves Z untouched, unlike every 8-bit ALU op.
func (c *CPU) addHLRR(idx byte) int {
	c.Bus.TickInternal()
	hl := c.HL()
	v := c.pairGet(idx)
	c.setN(false)
	c.setH(halfCarryAdd16(hl, v))
	c.setC(carryAdd16(hl, v))
	c.SetHL(hl + v)
	return 2
}

// addSPs8 shares LD HL,SP+e8's unsigned-low-byte flag rule (see loads16.go).
func (c *CPU) addSPs8() int {
	e := c.fetch8()
	c.Bus.TickInternal()
	c.Bus.TickInternal()
	lo := byte(c.SP)
	h := halfCarryAdd8(lo, e)
	cy := carryAdd8(lo, e)
	c.SP = uint16(int32(c.SP) + int32(int8(e)))
	c.setZ(false)
	c.setN(false)
	c.setH(h)
	c.setC(cy)
	return 4
}
