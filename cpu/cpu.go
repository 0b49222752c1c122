// Package cpu implements the Sharp LR35902 ("Game Boy CPU"): a small
// 8-bit register file, a table-driven decoder over the primary and
// CB-prefixed opcode pages, and the per-M-cycle bus trace that makes the
// engine's timing match real hardware.
package cpu

import (
	"fmt"

	"dmg01/mem"
)

// Interrupt sources, in priority order (lowest bit = highest priority).
const (
	intVBlank byte = 1 << iota
	intLCDStat
	intTimer
	intSerial
	intJoypad

	intMask = intVBlank | intLCDStat | intTimer | intSerial | intJoypad
)

var intVectors = map[byte]uint16{
	intVBlank:  0x0040,
	intLCDStat: 0x0048,
	intTimer:   0x0050,
	intSerial:  0x0058,
	intJoypad:  0x0060,
}

// Memory-mapped interrupt register addresses.
const (
	addrIF uint16 = 0xFF0F
	addrIE uint16 = 0xFFFF
)

// UndefinedOpcodeError reports that the CPU fetched one of the eleven
// primary opcodes with no defined behavior. Real hardware locks up;
// this engine surfaces the condition as a fatal error instead.
type UndefinedOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UndefinedOpcodeError) Error() string {
	return fmt.Sprintf("undefined opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// CPU is the execution engine: a register file, a bus, a one-byte prefetch
// latch, and the small amount of extra state needed for interrupts, HALT
// and the EI delay. It has no memory of its own beyond the registers; all
// addressable state lives behind Bus.
type CPU struct {
	Registers
	Bus mem.Bus

	prefetch byte

	IME            bool
	eiPending      int // counts down to 0, at which point IME is set; 0 means inactive
	halted         bool
	stopped        bool
	haltBugPending bool
}

// New constructs a CPU wired to bus, with the canonical post-boot-ROM
// register state and an initial prefetch read at PC=0x0100.
func New(bus mem.Bus) *CPU {
	c := &CPU{
		Registers: newBootRegisters(),
		Bus:       bus,
	}
	c.prefetch = c.Bus.Read(c.PC)
	c.PC++
	return c
}

// reg8 and setReg8 implement the 3-bit register encoding (0=B..5=L,
// 6=(HL), 7=A) shared by LD r,r', the ALU A,r block, and every
// CB-prefixed opcode. Index 6 reaches through the bus, contributing one
// read (reg8) or one write (setReg8) to the instruction's bus trace.
func (c *CPU) reg8(idx byte) byte {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case regHLIndirect:
		return c.Bus.Read(c.HL())
	default:
		return c.A
	}
}

func (c *CPU) setReg8(idx byte, v byte) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case regHLIndirect:
		c.Bus.Write(c.HL(), v)
	default:
		c.A = v
	}
}

// fetch8 reads the byte at PC and advances PC; it is the one bus op every
// immediate-operand opcode performs before dispatch-specific work.
func (c *CPU) fetch8() byte {
	v := c.Bus.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one architectural unit of work: an interrupt
// dispatch, one HALT-idle M-cycle, or one decoded instruction. It returns
// the number of M-cycles elapsed.
//
// The entry contract is that c.prefetch already holds the next opcode to
// run, fetched by the previous Step (or by New). Step dispatches on that
// latch, runs the handler, aggregates the M-cycle count via Bus.Tick, and
// finally refills the latch by reading the byte at the new PC — the
// "prefetch overlap" that produces the correct bus trace.
func (c *CPU) Step() (int, error) {
	defer c.commitEI()

	pending := c.pendingInterrupt()

	if c.halted {
		if pending != 0 {
			c.halted = false
		} else {
			c.Bus.TickInternal()
			return 1, nil
		}
	}

	if c.IME && pending != 0 {
		return c.dispatchInterrupt(pending), nil
	}

	op := c.prefetch
	entry := primaryTable[op]
	if !entry.Legal {
		return 0, &UndefinedOpcodeError{Opcode: op, PC: c.PC - 1}
	}

	total := entry.Exec(c)
	c.Bus.Tick(total)

	if c.haltBugPending {
		c.prefetch = c.Bus.Read(c.PC)
		c.haltBugPending = false
	} else {
		c.prefetch = c.Bus.Read(c.PC)
		c.PC++
	}

	return total, nil
}

// commitEI advances the EI delay counter by one Step. EI sets eiPending to
// 2; the first decrement (at the end of the step EI itself ran in) brings
// it to 1, and the second (at the end of the following step) brings it to
// 0 and takes IME live — "the next instruction completes" per EI's
// documented semantics.
func (c *CPU) commitEI() {
	if c.eiPending == 0 {
		return
	}
	c.eiPending--
	if c.eiPending == 0 {
		c.IME = true
	}
}

// pendingInterrupt returns the highest-priority interrupt bit that is both
// enabled and requested, or 0 if there is none.
func (c *CPU) pendingInterrupt() byte {
	ifReg := c.Bus.Read(addrIF)
	ieReg := c.Bus.Read(addrIE)
	return lowestSetBit(ieReg & ifReg & intMask)
}

// dispatchInterrupt runs the synthetic 5-M-cycle interrupt sequence: two
// internal ticks, two stack writes of the return address, and a read of the
// vector's first byte (its own trailing prefetch, done here rather than by
// Step's shared code since Step returns immediately after calling this).
// The return address is PC-1, the address of the opcode sitting unexecuted
// in the prefetch latch, so that RETI resumes with that opcode.
func (c *CPU) dispatchInterrupt(pending byte) int {
	bit := lowestSetBit(pending)

	ifReg := c.Bus.Read(addrIF)
	c.Bus.Write(addrIF, ifReg&^bit)
	c.IME = false

	c.Bus.TickInternal()
	c.Bus.TickInternal()

	ret := c.PC - 1
	c.SP--
	c.Bus.Write(c.SP, byte(ret>>8))
	c.SP--
	c.Bus.Write(c.SP, byte(ret))

	c.PC = intVectors[bit]

	const total = 5
	c.Bus.Tick(total)
	c.prefetch = c.Bus.Read(c.PC)
	c.PC++
	return total
}

func lowestSetBit(b byte) byte {
	return b & (^b + 1)
}

// LoadProgram copies program into the bus starting at addr. It is a thin
// convenience for tests and the debugger entrypoint; it bypasses M-cycle
// accounting entirely since it represents setup, not CPU execution. Each
// byte goes through Bus.Write, so it lands only where the bus stores
// ordinary writes: on Mmu, writes to ROM addresses are MBC register writes
// and do not change the cartridge image.
func (c *CPU) LoadProgram(program []byte, addr uint16) {
	for i, b := range program {
		c.Bus.Write(addr+uint16(i), b)
	}
}

// DoctorLine renders the current architectural state in the canonical
// Gameboy Doctor trace format, used to differentially test this engine
// against a known-good reference.
func (c *CPU) DoctorLine() string {
	// c.prefetch already holds the byte at pc; PC itself has moved one
	// past it as part of the prefetch overlap.
	pc := c.PC - 1
	pcmem := [4]byte{
		c.prefetch,
		c.Bus.Read(pc + 1),
		c.Bus.Read(pc + 2),
		c.Bus.Read(pc + 3),
	}
	return fmt.Sprintf(
		"A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, pc,
		pcmem[0], pcmem[1], pcmem[2], pcmem[3],
	)
}
