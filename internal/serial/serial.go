// Package serial implements the Game Boy's serial port registers
// (SB/SC). No link-cable peer is modeled: an internal-clock transfer
// shifts in 1 bits, as an unconnected cable does on real hardware.
package serial

import (
	"github.com/thelolagemann/go-gameboy/internal/interrupts"
	"github.com/thelolagemann/go-gameboy/internal/types"
)

// ticksPerBit is the number of T-states between successive bit shifts
// when this Game Boy is driving the clock (8192 Hz at 4.194304 MHz).
const ticksPerBit = 512

// Controller is the serial peripheral.
type Controller struct {
	data uint8 // SB
	ctrl uint8 // SC, as last written (bits 1-6 always read 1)

	transferring  bool
	internalClock bool
	bitsLeft      uint8
	ticksToNext   uint16

	irq *interrupts.Service
}

// NewController returns a new Controller with SB/SC wired onto hw.
func NewController(irq *interrupts.Service, hw *types.HardwareRegisters) *Controller {
	c := &Controller{irq: irq}

	hw.MustRegister(types.SB,
		func(v uint8) { c.data = v },
		func() uint8 { return c.data },
	)
	hw.MustRegister(types.SC,
		func(v uint8) {
			c.ctrl = v
			c.internalClock = v&types.Bit0 != 0
			if v&types.Bit7 != 0 && c.internalClock {
				c.transferring = true
				c.bitsLeft = 8
				c.ticksToNext = ticksPerBit
			}
		},
		func() uint8 { return c.ctrl | 0x7E },
	)
	return c
}

// Tick advances the serial port by one T-state.
func (c *Controller) Tick() {
	if !c.transferring {
		return
	}
	c.ticksToNext--
	if c.ticksToNext != 0 {
		return
	}
	// shift out the top bit, shift in a 1 (unconnected line).
	c.data = c.data<<1 | 1
	c.bitsLeft--
	if c.bitsLeft == 0 {
		c.transferring = false
		c.ctrl &^= types.Bit7
		c.irq.Request(interrupts.SerialFlag)
		return
	}
	c.ticksToNext = ticksPerBit
}

var _ types.Peripheral = (*Controller)(nil)
var _ types.Stater = (*Controller)(nil)

func (c *Controller) Load(s *types.State) {
	c.data = s.Read8()
	c.ctrl = s.Read8()
	c.transferring = s.ReadBool()
	c.internalClock = s.ReadBool()
	c.bitsLeft = s.Read8()
	c.ticksToNext = s.Read16()
}

func (c *Controller) Save(s *types.State) {
	s.Write8(c.data)
	s.Write8(c.ctrl)
	s.WriteBool(c.transferring)
	s.WriteBool(c.internalClock)
	s.Write8(c.bitsLeft)
	s.Write16(c.ticksToNext)
}
