// Package timer implements the Game Boy's DIV/TIMA/TMA/TAC timer, which
// generates the Timer interrupt when TIMA overflows.
package timer

import (
	"github.com/thelolagemann/go-gameboy/internal/interrupts"
	"github.com/thelolagemann/go-gameboy/internal/types"
)

// selectBit maps the two TAC clock-select bits to the bit of the
// internal 16-bit divider that TIMA increments on the falling edge of.
var selectBit = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller is the timer peripheral. div is the free-running internal
// 16-bit divider; the DIV register exposes its upper 8 bits.
type Controller struct {
	div uint16

	tima, tma, tac     uint8
	enabled            bool
	lastBit            bool
	overflow           bool
	ticksSinceOverflow uint8

	irq *interrupts.Service
}

// NewController returns a new Controller with its registers wired onto hw.
func NewController(irq *interrupts.Service, hw *types.HardwareRegisters) *Controller {
	c := &Controller{irq: irq, tac: 0xF8}

	hw.MustRegister(types.DIV,
		func(v uint8) { c.div = 0 },
		func() uint8 { return uint8(c.div >> 8) },
	)
	hw.MustRegister(types.TIMA,
		func(v uint8) {
			// a write on the same T-state as a reload is ignored.
			if c.ticksSinceOverflow != 5 {
				c.tima = v
				c.overflow = false
				c.ticksSinceOverflow = 0
			}
		},
		func() uint8 { return c.tima },
	)
	hw.MustRegister(types.TMA,
		func(v uint8) {
			c.tma = v
			if c.ticksSinceOverflow == 5 {
				c.tima = v
			}
		},
		func() uint8 { return c.tma },
	)
	hw.MustRegister(types.TAC,
		func(v uint8) {
			wasEnabled, oldBit := c.enabled, c.bit()
			c.tac = v
			c.enabled = v&types.Bit2 != 0
			c.reloadGlitch(wasEnabled, oldBit)
		},
		func() uint8 { return c.tac | 0xF8 },
	)
	return c
}

func (c *Controller) bit() uint16 { return selectBit[c.tac&0x03] }

// Tick advances the timer by one T-state.
func (c *Controller) Tick() {
	c.div++

	newBit := c.enabled && c.div&c.bit() != 0
	if !newBit && c.lastBit {
		c.incrementTIMA()
	}
	c.lastBit = newBit

	if c.overflow {
		c.ticksSinceOverflow++
		switch c.ticksSinceOverflow {
		case 4:
			c.irq.Request(interrupts.TimerFlag)
		case 5:
			c.tima = c.tma
		case 6:
			c.overflow = false
			c.ticksSinceOverflow = 0
		}
	}
}

func (c *Controller) incrementTIMA() {
	c.tima++
	if c.tima == 0 {
		c.overflow = true
		c.ticksSinceOverflow = 0
	}
}

// reloadGlitch reproduces the documented quirk where disabling the
// timer (or switching to a slower input clock) while the currently
// selected divider bit is set increments TIMA immediately, as if a
// falling edge had just occurred.
func (c *Controller) reloadGlitch(wasEnabled bool, oldBit uint16) {
	if !wasEnabled || c.div&oldBit == 0 {
		return
	}
	if !c.enabled || c.div&c.bit() == 0 {
		c.incrementTIMA()
		c.lastBit = false
	}
}

var _ types.Peripheral = (*Controller)(nil)
var _ types.Stater = (*Controller)(nil)

func (c *Controller) Load(s *types.State) {
	c.div = s.Read16()
	c.tima = s.Read8()
	c.tma = s.Read8()
	c.tac = s.Read8()
	c.enabled = s.ReadBool()
	c.lastBit = s.ReadBool()
	c.overflow = s.ReadBool()
	c.ticksSinceOverflow = s.Read8()
}

func (c *Controller) Save(s *types.State) {
	s.Write16(c.div)
	s.Write8(c.tima)
	s.Write8(c.tma)
	s.Write8(c.tac)
	s.WriteBool(c.enabled)
	s.WriteBool(c.lastBit)
	s.WriteBool(c.overflow)
	s.Write8(c.ticksSinceOverflow)
}
