package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingInterruptRespectsPriority(t *testing.T) {
	c := newTestCPU()
	c.Bus.Write(addrIE, intVBlank|intTimer)
	c.Bus.Write(addrIF, intTimer|intVBlank)
	assert.Equal(t, intVBlank, c.pendingInterrupt())
}

func TestPendingInterruptMaskedByIE(t *testing.T) {
	c := newTestCPU()
	c.Bus.Write(addrIE, intTimer)
	c.Bus.Write(addrIF, intVBlank)
	assert.Equal(t, byte(0), c.pendingInterrupt())
}

func TestHaltBugWhenIMEClearAndInterruptPending(t *testing.T) {
	c := newTestCPU()
	resetAt(c, []byte{0x76}, 0x0100)
	c.IME = false
	c.Bus.Write(addrIE, intVBlank)
	c.Bus.Write(addrIF, intVBlank)

	m, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, 1, m)
	assert.False(t, c.halted)
	// The bug: the CPU never halts, and the prefetch of the byte after HALT
	// (0x0101) does not advance PC, so that byte is decoded by the next Step
	// and fetched again for the Step after it.
	assert.Equal(t, uint16(0x0101), c.PC)
}

func TestHaltParksCPUUntilInterruptPending(t *testing.T) {
	c := newTestCPU()
	resetAt(c, []byte{0x76, 0x00}, 0x0100)
	c.IME = true
	c.Bus.Write(addrIE, 0)
	c.Bus.Write(addrIF, 0)

	_, err := c.Step()
	assert.NoError(t, err)
	assert.True(t, c.halted)

	m, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, 1, m)
	assert.True(t, c.halted) // still no interrupt pending

	c.Bus.Write(addrIE, intVBlank)
	c.Bus.Write(addrIF, intVBlank)
	m, err = c.Step()
	assert.NoError(t, err)
	assert.Equal(t, 5, m)
	assert.False(t, c.halted)
	assert.Equal(t, uint16(0x0041), c.PC) // PC - 1 is the vector address 0x0040
}

func TestEIDelaysIMEByOneStep(t *testing.T) {
	c := newTestCPU()
	resetAt(c, []byte{0xFB, 0x00, 0x00}, 0x0100) // EI ; NOP ; NOP
	c.IME = false

	_, err := c.Step() // runs EI itself; IME not yet live
	assert.NoError(t, err)
	assert.False(t, c.IME)

	_, err = c.Step() // the instruction after EI; IME goes live at its end
	assert.NoError(t, err)
	assert.True(t, c.IME)
}

func TestDIClearsPendingEI(t *testing.T) {
	c := newTestCPU()
	resetAt(c, []byte{0xFB, 0xF3, 0x00}, 0x0100) // EI ; DI ; NOP
	c.IME = false

	_, err := c.Step() // EI: schedules eiPending
	assert.NoError(t, err)
	_, err = c.Step() // DI: cancels it before it takes effect
	assert.NoError(t, err)
	assert.False(t, c.IME)
	assert.Equal(t, 0, c.eiPending)
}
