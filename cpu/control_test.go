package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJpHLDoesNotChargeInternalTick(t *testing.T) {
	c := newTestCPU()
	c.SetHL(0xC123)
	m := c.jpHL()
	assert.Equal(t, 1, m)
	assert.Equal(t, uint16(0xC123), c.PC)
}

func TestRetCCChargesTickEvenWhenNotTaken(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFFE
	c.setZ(false) // NZ path: condTrue(cc=1 "Z") is false
	m := c.retCC(1)
	assert.Equal(t, 2, m)
}

func TestRetiEnablesIMEImmediately(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xDFF0
	c.Bus.Write(0xDFF0, 0x34)
	c.Bus.Write(0xDFF1, 0x12)
	c.IME = false
	m := c.reti()
	assert.Equal(t, 4, m)
	assert.True(t, c.IME)
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestRstPushesReturnAddress(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xDFF0
	c.PC = 0x0150
	m := c.rst(0x0038)
	assert.Equal(t, 4, m)
	assert.Equal(t, uint16(0x0038), c.PC)
	assert.Equal(t, uint16(0xDFEE), c.SP)
	assert.Equal(t, byte(0x50), c.Bus.Read(0xDFEE))
	assert.Equal(t, byte(0x01), c.Bus.Read(0xDFEF))
}

func TestCallCCNotTakenSkipsStackWrites(t *testing.T) {
	c := newTestCPU()
	sp := c.SP
	resetAt(c, []byte{0x34, 0x12}, 0x0100)
	c.setZ(false)
	m := c.callCC(1) // CC=Z, not taken
	assert.Equal(t, 3, m)
	assert.Equal(t, sp, c.SP)
}
