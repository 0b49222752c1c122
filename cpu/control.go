package cpu

// Condition codes used by JR/JP/CALL/RET: 0=NZ 1=Z 2=NC 3=C.
func (c *CPU) condTrue(cc byte) bool {
	switch cc {
	case 0:
		return !c.FlagZ()
	case 1:
		return c.FlagZ()
	case 2:
		return !c.FlagC()
	default:
		return c.FlagC()
	}
}

func (c *CPU) jr() int {
	e := int8(c.fetch8())
	c.Bus.TickInternal()
	c.PC = uint16(int32(c.PC) + int32(e))
	return 3
}

func (c *CPU) jrCC(cc byte) int {
	e := int8(c.fetch8())
	if !c.condTrue(cc) {
		return 2
	}
	c.Bus.TickInternal()
	c.PC = uint16(int32(c.PC) + int32(e))
	return 3
}

func (c *CPU) jp() int {
	addr := c.fetch16()
	c.Bus.TickInternal()
	c.PC = addr
	return 4
}

func (c *CPU) jpCC(cc byte) int {
	addr := c.fetch16()
	if !c.condTrue(cc) {
		return 3
	}
	c.Bus.TickInternal()
	c.PC = addr
	return 4
}

func (c *CPU) jpHL() int {
	c.PC = c.HL()
	return 1
}

func (c *CPU) call() int {
	addr := c.fetch16()
	c.Bus.TickInternal()
	c.SP--
	c.Bus.Write(c.SP, byte(c.PC>>8))
	c.SP--
	c.Bus.Write(c.SP, byte(c.PC))
	c.PC = addr
	return 6
}

func (c *CPU) callCC(cc byte) int {
	addr := c.fetch16()
	if !c.condTrue(cc) {
		return 3
	}
	c.Bus.TickInternal()
	c.SP--
	c.Bus.Write(c.SP, byte(c.PC>>8))
	c.SP--
	c.Bus.Write(c.SP, byte(c.PC))
	c.PC = addr
	return 6
}

func (c *CPU) ret() int {
	lo := c.Bus.Read(c.SP)
	c.SP++
	hi := c.Bus.Read(c.SP)
	c.SP++
	c.Bus.TickInternal()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 4
}

// retCC charges its flag-check internal tick regardless of outcome, since
// hardware evaluates the condition before it knows whether it will return.
func (c *CPU) retCC(cc byte) int {
	c.Bus.TickInternal()
	if !c.condTrue(cc) {
		return 2
	}
	lo := c.Bus.Read(c.SP)
	c.SP++
	hi := c.Bus.Read(c.SP)
	c.SP++
	c.Bus.TickInternal()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 5
}

// reti is RET plus an immediate (not delayed) IME <- 1.
func (c *CPU) reti() int {
	lo := c.Bus.Read(c.SP)
	c.SP++
	hi := c.Bus.Read(c.SP)
	c.SP++
	c.Bus.TickInternal()
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.IME = true
	c.eiPending = 0
	return 4
}

func (c *CPU) rst(vector uint16) int {
	c.Bus.TickInternal()
	c.SP--
	c.Bus.Write(c.SP, byte(c.PC>>8))
	c.SP--
	c.Bus.Write(c.SP, byte(c.PC))
	c.PC = vector
	return 4
}
