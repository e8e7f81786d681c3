package cpu

import "github.com/thelolagemann/go-gameboy/internal/types"

// The rotate/shift/bit primitives below are shared by the CB-prefixed
// plane (cb.go) and the four unprefixed accumulator rotates.

func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & types.Bit7
	result := n<<1 | carry>>7
	c.setFlags(result == 0, false, false, carry != 0)
	return result
}

func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & types.Bit0
	result := n>>1 | carry<<7
	c.setFlags(result == 0, false, false, carry != 0)
	return result
}

func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n << 1
	if c.isFlagSet(FlagCarry) {
		result |= types.Bit0
	}
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n >> 1
	if c.isFlagSet(FlagCarry) {
		result |= types.Bit7
	}
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	result := n << 1
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	result := n>>1 | n&types.Bit7
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

func (c *CPU) shiftRightLogical(n uint8) uint8 {
	result := n >> 1
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

func (c *CPU) swap(n uint8) uint8 {
	result := n<<4 | n>>4
	c.setFlags(result == 0, false, false, false)
	return result
}

// testBit sets Z to the complement of bit b of n and H unconditionally;
// C is left untouched.
func (c *CPU) testBit(n uint8, b uint8) {
	c.setFlags(n&(1<<b) == 0, false, true, c.isFlagSet(FlagCarry))
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	DefineInstruction(0x10, "STOP", func(c *CPU) { c.mode = modeStop })
	DefineInstruction(0xF3, "DI", func(c *CPU) { c.irq.IME = false })
	DefineInstruction(0xFB, "EI", func(c *CPU) { c.mode = modeEnableIME })
	DefineInstruction(0x76, "HALT", func(c *CPU) {
		switch {
		case c.irq.IME:
			c.mode = modeHalt
		case c.irq.Pending():
			c.mode = modeHaltBug
		default:
			c.mode = modeHaltDI
		}
	})

	DefineInstruction(0x07, "RLCA", func(c *CPU) { c.A = c.rotateLeftCarry(c.A); c.clearFlag(FlagZero) })
	DefineInstruction(0x0F, "RRCA", func(c *CPU) { c.A = c.rotateRightCarry(c.A); c.clearFlag(FlagZero) })
	DefineInstruction(0x17, "RLA", func(c *CPU) { c.A = c.rotateLeftThroughCarry(c.A); c.clearFlag(FlagZero) })
	DefineInstruction(0x1F, "RRA", func(c *CPU) { c.A = c.rotateRightThroughCarry(c.A); c.clearFlag(FlagZero) })
}
