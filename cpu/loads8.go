package cpu

// ldRR moves reg8(src) into reg8(dst); both already account for their own
// bus op when either operand is (HL). 0x76 (dst=src=6) is HALT, handled
// separately and never reaches this table entry.
func (c *CPU) ldRR(dst, src byte) int {
	v := c.reg8(src)
	c.setReg8(dst, v)
	if dst == regHLIndirect || src == regHLIndirect {
		return 2
	}
	return 1
}

func (c *CPU) ldRN(dst byte) int {
	n := c.fetch8()
	c.setReg8(dst, n)
	if dst == regHLIndirect {
		return 3
	}
	return 2
}

func (c *CPU) ldAFromBC() int {
	c.A = c.Bus.Read(c.BC())
	return 2
}

func (c *CPU) ldAFromDE() int {
	c.A = c.Bus.Read(c.DE())
	return 2
}

func (c *CPU) ldBCFromA() int {
	c.Bus.Write(c.BC(), c.A)
	return 2
}

func (c *CPU) ldDEFromA() int {
	c.Bus.Write(c.DE(), c.A)
	return 2
}

func (c *CPU) ldAFromHLInc() int {
	c.A = c.Bus.Read(c.HL())
	c.SetHL(c.HL() + 1)
	return 2
}

func (c *CPU) ldAFromHLDec() int {
	c.A = c.Bus.Read(c.HL())
	c.SetHL(c.HL() - 1)
	return 2
}

func (c *CPU) ldHLIncFromA() int {
	c.Bus.Write(c.HL(), c.A)
	c.SetHL(c.HL() + 1)
	return 2
}

func (c *CPU) ldHLDecFromA() int {
	c.Bus.Write(c.HL(), c.A)
	c.SetHL(c.HL() - 1)
	return 2
}

func (c *CPU) ldhNA() int {
	n := c.fetch8()
	c.Bus.Write(0xFF00+uint16(n), c.A)
	return 3
}

func (c *CPU) ldhAN() int {
	n := c.fetch8()
	c.A = c.Bus.Read(0xFF00 + uint16(n))
	return 3
}

func (c *CPU) ldCA() int {
	c.Bus.Write(0xFF00+uint16(c.C), c.A)
	return 2
}

func (c *CPU) ldAC() int {
	c.A = c.Bus.Read(0xFF00 + uint16(c.C))
	return 2
}

func (c *CPU) ldNNA() int {
	addr := c.fetch16()
	c.Bus.Write(addr, c.A)
	return 4
}

func (c *CPU) ldANN() int {
	addr := c.fetch16()
	c.A = c.Bus.Read(addr)
	return 4
}
