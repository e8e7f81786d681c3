package cpu

func (c *CPU) jump(addr uint16) { c.PC = addr }

func init() {
	DefineInstruction(0xC3, "JP a16", func(c *CPU) {
		addr := c.readOperand16()
		c.jump(addr)
		c.tickCycle()
	})
	DefineInstruction(0xE9, "JP (HL)", func(c *CPU) { c.jump(c.HL.Uint16()) })

	jpConds := []struct {
		opcode uint8
		cond   func(*CPU) bool
	}{
		{0xC2, func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
		{0xCA, func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
		{0xD2, func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
		{0xDA, func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
	}
	for _, jc := range jpConds {
		jc := jc
		DefineInstruction(jc.opcode, "JP cc,a16", func(c *CPU) {
			addr := c.readOperand16()
			if jc.cond(c) {
				c.jump(addr)
				c.tickCycle()
			}
		})
	}

	DefineInstruction(0x18, "JR r8", func(c *CPU) {
		offset := int8(c.readOperand())
		c.jump(uint16(int32(c.PC) + int32(offset)))
		c.tickCycle()
	})

	jrConds := []struct {
		opcode uint8
		cond   func(*CPU) bool
	}{
		{0x20, func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
		{0x28, func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
		{0x30, func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
		{0x38, func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
	}
	for _, jc := range jrConds {
		jc := jc
		DefineInstruction(jc.opcode, "JR cc,r8", func(c *CPU) {
			offset := int8(c.readOperand())
			if jc.cond(c) {
				c.jump(uint16(int32(c.PC) + int32(offset)))
				c.tickCycle()
			}
		})
	}

	DefineInstruction(0xCD, "CALL a16", func(c *CPU) {
		addr := c.readOperand16()
		c.tickCycle()
		c.push(c.PC)
		c.jump(addr)
	})

	callConds := []struct {
		opcode uint8
		cond   func(*CPU) bool
	}{
		{0xC4, func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
		{0xCC, func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
		{0xD4, func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
		{0xDC, func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
	}
	for _, cc := range callConds {
		cc := cc
		DefineInstruction(cc.opcode, "CALL cc,a16", func(c *CPU) {
			addr := c.readOperand16()
			if cc.cond(c) {
				c.tickCycle()
				c.push(c.PC)
				c.jump(addr)
			}
		})
	}

	DefineInstruction(0xC9, "RET", func(c *CPU) {
		c.jump(c.pop())
		c.tickCycle()
	})
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.jump(c.pop())
		c.tickCycle()
		c.irq.IME = true
	})

	retConds := []struct {
		opcode uint8
		cond   func(*CPU) bool
	}{
		{0xC0, func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
		{0xC8, func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
		{0xD0, func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
		{0xD8, func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
	}
	for _, rc := range retConds {
		rc := rc
		DefineInstruction(rc.opcode, "RET cc", func(c *CPU) {
			c.tickCycle()
			if rc.cond(c) {
				c.jump(c.pop())
				c.tickCycle()
			}
		})
	}

	for i := uint8(0); i < 8; i++ {
		i := i
		DefineInstruction(0xC7+i*8, "RST n", func(c *CPU) {
			c.tickCycle()
			c.push(c.PC)
			c.jump(uint16(i) * 8)
		})
	}
}
