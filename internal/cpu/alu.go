package cpu

// add adds n (and, if shouldCarry, the current carry flag) to A.
//
//	ADD A, n / ADC A, n
//
// Flags: Z set if result zero; N reset; H set on carry from bit 3;
// C set on carry from bit 7.
func (c *CPU) add(n uint8, shouldCarry bool) {
	carry := uint16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(n) + carry
	sumHalf := (c.A & 0xF) + (n & 0xF) + uint8(carry)
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (and, if shouldCarry, the current carry flag) from A.
//
//	SUB A, n / SBC A, n
//
// Flags: Z set if result zero; N set; H set on borrow from bit 4;
// C set on borrow.
func (c *CPU) sub(n uint8, shouldCarry bool) {
	carry := int16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	diff := int16(c.A) - int16(n) - carry
	diffHalf := int16(c.A&0xF) - int16(n&0xF) - carry
	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	c.A = uint8(diff)
}

// cp compares n against A without storing the result.
func (c *CPU) cp(n uint8) {
	a := c.A
	c.sub(n, false)
	c.A = a
}

func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// inc8 increments n, preserving the carry flag.
func (c *CPU) inc8(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

// dec8 decrements n, preserving the carry flag.
func (c *CPU) dec8(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&0xF == 0x0, c.isFlagSet(FlagCarry))
	return result
}

// incNN increments a 16-bit register pair; flags are unaffected.
func (c *CPU) incNN(rp *RegisterPair) {
	rp.SetUint16(rp.Uint16() + 1)
	c.tickCycle()
}

// decNN decrements a 16-bit register pair; flags are unaffected.
func (c *CPU) decNN(rp *RegisterPair) {
	rp.SetUint16(rp.Uint16() - 1)
	c.tickCycle()
}

// addHLRR adds a 16-bit register pair to HL.
//
// Flags: Z unaffected; N reset; H set on carry from bit 11; C set on
// carry from bit 15.
func (c *CPU) addHLRR(rp *RegisterPair) {
	a, b := c.HL.Uint16(), rp.Uint16()
	sum := uint32(a) + uint32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
	c.tickCycle()
}

// addSPSigned computes SP + a signed 8-bit operand, the shared helper
// for ADD SP,r8 and LD HL,SP+r8.
//
// Flags: Z reset; N reset; H/C set from the unsigned 8-bit addition of
// SP's low byte and the operand, matching real hardware's behavior of
// computing the half/full carry on the low byte regardless of sign.
func (c *CPU) addSPSigned() uint16 {
	operand := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(operand)))
	flags := c.SP ^ uint16(int8(operand)) ^ result
	c.setFlags(false, false, flags&0x10 != 0, flags&0x100 != 0)
	return result
}

func init() {
	for i := uint8(0); i < 8; i++ {
		i := i
		DefineInstruction(0x80+i, "ADD A,r", func(c *CPU) { c.add(c.registerGet(i), false) })
		DefineInstruction(0x88+i, "ADC A,r", func(c *CPU) { c.add(c.registerGet(i), true) })
		DefineInstruction(0x90+i, "SUB r", func(c *CPU) { c.sub(c.registerGet(i), false) })
		DefineInstruction(0x98+i, "SBC A,r", func(c *CPU) { c.sub(c.registerGet(i), true) })
		DefineInstruction(0xA0+i, "AND r", func(c *CPU) { c.and(c.registerGet(i)) })
		DefineInstruction(0xA8+i, "XOR r", func(c *CPU) { c.xor(c.registerGet(i)) })
		DefineInstruction(0xB0+i, "OR r", func(c *CPU) { c.or(c.registerGet(i)) })
		DefineInstruction(0xB8+i, "CP r", func(c *CPU) { c.cp(c.registerGet(i)) })
		DefineInstruction(0x04+i*8, "INC r", func(c *CPU) { c.registerSet(i, c.inc8(c.registerGet(i))) })
		DefineInstruction(0x05+i*8, "DEC r", func(c *CPU) { c.registerSet(i, c.dec8(c.registerGet(i))) })
	}

	DefineInstruction(0xC6, "ADD A,d8", func(c *CPU) { c.add(c.readOperand(), false) })
	DefineInstruction(0xCE, "ADC A,d8", func(c *CPU) { c.add(c.readOperand(), true) })
	DefineInstruction(0xD6, "SUB d8", func(c *CPU) { c.sub(c.readOperand(), false) })
	DefineInstruction(0xDE, "SBC A,d8", func(c *CPU) { c.sub(c.readOperand(), true) })
	DefineInstruction(0xE6, "AND d8", func(c *CPU) { c.and(c.readOperand()) })
	DefineInstruction(0xEE, "XOR d8", func(c *CPU) { c.xor(c.readOperand()) })
	DefineInstruction(0xF6, "OR d8", func(c *CPU) { c.or(c.readOperand()) })
	DefineInstruction(0xFE, "CP d8", func(c *CPU) { c.cp(c.readOperand()) })

	DefineInstruction(0x03, "INC BC", func(c *CPU) { c.incNN(c.BC) })
	DefineInstruction(0x13, "INC DE", func(c *CPU) { c.incNN(c.DE) })
	DefineInstruction(0x23, "INC HL", func(c *CPU) { c.incNN(c.HL) })
	DefineInstruction(0x33, "INC SP", func(c *CPU) { c.SP++; c.tickCycle() })
	DefineInstruction(0x0B, "DEC BC", func(c *CPU) { c.decNN(c.BC) })
	DefineInstruction(0x1B, "DEC DE", func(c *CPU) { c.decNN(c.DE) })
	DefineInstruction(0x2B, "DEC HL", func(c *CPU) { c.decNN(c.HL) })
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) { c.SP--; c.tickCycle() })

	DefineInstruction(0x09, "ADD HL,BC", func(c *CPU) { c.addHLRR(c.BC) })
	DefineInstruction(0x19, "ADD HL,DE", func(c *CPU) { c.addHLRR(c.DE) })
	DefineInstruction(0x29, "ADD HL,HL", func(c *CPU) { c.addHLRR(c.HL) })
	DefineInstruction(0x39, "ADD HL,SP", func(c *CPU) {
		a, b := c.HL.Uint16(), c.SP
		sum := uint32(a) + uint32(b)
		c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
		c.HL.SetUint16(uint16(sum))
		c.tickCycle()
	})

	DefineInstruction(0xE8, "ADD SP,r8", func(c *CPU) {
		c.SP = c.addSPSigned()
		c.tickCycle()
		c.tickCycle()
	})

	DefineInstruction(0x27, "DAA", func(c *CPU) {
		if !c.isFlagSet(FlagSubtract) {
			if c.isFlagSet(FlagCarry) || c.A > 0x99 {
				c.A += 0x60
				c.setFlag(FlagCarry)
			}
			if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
				c.A += 0x06
			}
		} else if c.isFlagSet(FlagCarry) && c.isFlagSet(FlagHalfCarry) {
			c.A += 0x9A
		} else if c.isFlagSet(FlagCarry) {
			c.A += 0xA0
		} else if c.isFlagSet(FlagHalfCarry) {
			c.A += 0xFA
		}
		c.clearFlag(FlagHalfCarry)
		c.shouldZeroFlag(c.A)
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
}
