package cpu

// The CB-prefixed page is fully regular: eight rows of rotate/shift/swap
// (0x00-0x3F), eight rows of BIT (0x40-0x7F), eight of RES (0x80-0xBF) and
// eight of SET (0xC0-0xFF), each row iterating the same eight register
// operands as the primary page's LD r,r' block.

// cbTable entries return the number of bus ops beyond the CB-prefix byte
// read itself: 0 for register operands, 1 for BIT (HL), 2 for every other
// (HL) form.
var cbTable [256]func(c *CPU) int
var cbNames [256]string

func init() {
	rotateNames := [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

	for row := byte(0); row < 8; row++ {
		fn := cbRotateTable[row]
		for src := byte(0); src < 8; src++ {
			op := row*8 + src
			s := src
			cbTable[op] = func(c *CPU) int { return c.cbRotate(fn, s) }
			cbNames[op] = rotateNames[row] + " " + regNames[src]
		}
	}

	for n := byte(0); n < 8; n++ {
		for src := byte(0); src < 8; src++ {
			bit, s := n, src

			bitOp := 0x40 + n*8 + src
			cbTable[bitOp] = func(c *CPU) int { return c.cbBit(bit, s) }
			cbNames[bitOp] = "BIT " + string(rune('0'+bit)) + "," + regNames[src]

			resOp := 0x80 + n*8 + src
			cbTable[resOp] = func(c *CPU) int { return c.cbRes(bit, s) }
			cbNames[resOp] = "RES " + string(rune('0'+bit)) + "," + regNames[src]

			setOp := 0xC0 + n*8 + src
			cbTable[setOp] = func(c *CPU) int { return c.cbSet(bit, s) }
			cbNames[setOp] = "SET " + string(rune('0'+bit)) + "," + regNames[src]
		}
	}
}

// opCBPrefix reads the secondary opcode byte (the one bus op this
// primary-table entry performs directly) and dispatches within the CB
// page. Total M-cycles is 2 (the CB-byte read plus the trailing prefetch)
// plus whatever extra bus ops the CB handler itself needed.
func (c *CPU) opCBPrefix() int {
	cb := c.fetch8()
	extra := cbTable[cb](c)
	return 2 + extra
}
