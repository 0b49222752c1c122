package cpu

// NOP, HALT, STOP, DI, EI, DAA, CPL, SCF, CCF: the opcodes that touch at
// most A and F (DAA and CPL write A) or only the CPU's HALT/STOP/IME state.

func opNOP(c *CPU) int {
	return 1
}

// opHALT implements HALT's two outcomes. Normally it parks the CPU until
// an enabled interrupt is pending. But if IME is clear and an interrupt is
// already pending the instant HALT executes, real hardware fails to halt
// at all — the "HALT bug" — and the next opcode fetch must not advance PC,
// causing that next byte to be decoded twice.
func opHALT(c *CPU) int {
	if !c.IME && c.pendingInterrupt() != 0 {
		c.haltBugPending = true
	} else {
		c.halted = true
	}
	return 1
}

// opSTOP reads the conventionally-0x00 second byte of the two-byte STOP
// encoding. Low-power mode, display stop and the STOP-button wake path it
// would otherwise trigger are out of scope.
func opSTOP(c *CPU) int {
	c.fetch8()
	c.stopped = true
	return 2
}

func opDI(c *CPU) int {
	c.IME = false
	c.eiPending = 0
	return 1
}

// opEI schedules IME to go live at the end of the *following* Step, not
// this one — see CPU.commitEI.
func opEI(c *CPU) int {
	c.eiPending = 2
	return 1
}

// opDAA adjusts A to packed BCD after an 8-bit add or subtract, using N to
// tell which direction the prior op went and H/C to tell whether a nibble
// carried.
func opDAA(c *CPU) int {
	a := c.A
	if !c.FlagN() {
		if c.FlagC() || a > 0x99 {
			a += 0x60
			c.setC(true)
		}
		if c.FlagH() || (a&0x0F) > 0x09 {
			a += 0x06
		}
	} else {
		if c.FlagC() {
			a -= 0x60
		}
		if c.FlagH() {
			a -= 0x06
		}
	}
	c.A = a
	c.setZ(c.A == 0)
	c.setH(false)
	return 1
}

func opCPL(c *CPU) int {
	c.A = ^c.A
	c.setN(true)
	c.setH(true)
	return 1
}

func opSCF(c *CPU) int {
	c.setC(true)
	c.setN(false)
	c.setH(false)
	return 1
}

func opCCF(c *CPU) int {
	c.setC(!c.FlagC())
	c.setN(false)
	c.setH(false)
	return 1
}
