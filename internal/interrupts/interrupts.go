// Package interrupts implements the Game Boy's interrupt enable/flag
// registers and the master enable latch that gates whether any of them
// can preempt the instruction stream.
package interrupts

import (
	"github.com/thelolagemann/go-gameboy/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0), which is
	// requested every time the PPU enters V-Blank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), requested by the STAT
	// register when one of its enabled conditions is met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested when
	// TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3), requested when a
	// serial transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4), requested when
	// any selected input line goes high-to-low.
	JoypadFlag = types.Bit4
)

// vectors holds the interrupt service vector for each flag bit, in
// priority order; bit 0 (V-Blank) is highest priority.
var vectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// Service is the interrupt unit: it holds IE (FFFF), IF (FF0F), and the
// IME latch. All three are mutated together during dispatch and by
// DI/EI/RETI, so keeping them in one component avoids threading three
// separate pieces of interrupt state through the CPU.
type Service struct {
	Flag   uint8 // IF - low 5 bits meaningful, read back with upper 3 set
	Enable uint8 // IE
	IME    bool  // interrupt master enable latch
}

// NewService returns a new Service with IF and IE registered on hw.
func NewService(hw *types.HardwareRegisters) *Service {
	s := &Service{}
	hw.MustRegister(types.IF,
		func(v uint8) { s.Flag = v & 0x1F },
		func() uint8 { return s.Flag | 0xE0 },
	)
	hw.MustRegister(types.IE,
		func(v uint8) { s.Enable = v },
		func() uint8 { return s.Enable },
	)
	return s
}

// Request sets the given interrupt's flag bit in IF.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Pending reports whether any enabled interrupt is currently flagged,
// independent of IME - used to wake the CPU from HALT/STOP.
func (s *Service) Pending() bool {
	return s.Enable&s.Flag != 0
}

// Lowest returns the bit and service vector of the highest-priority
// pending interrupt. ok is false if none is pending. The flag bit is
// not cleared; call Clear once dispatch has actually committed to it.
func (s *Service) Lowest() (bit uint8, vector uint16, ok bool) {
	pending := s.Enable & s.Flag
	if pending == 0 {
		return 0, 0, false
	}
	lowest := pending & (-pending)
	for i := 0; i < 5; i++ {
		if lowest == 1<<uint(i) {
			return lowest, vectors[i], true
		}
	}
	return 0, 0, false
}

// Clear clears the given interrupt's flag bit in IF.
func (s *Service) Clear(bit uint8) {
	s.Flag &^= bit
}

var _ types.Stater = (*Service)(nil)

// Load implements types.Stater. Values are read in the order Flag,
// Enable, IME.
func (s *Service) Load(st *types.State) {
	s.Flag = st.Read8()
	s.Enable = st.Read8()
	s.IME = st.ReadBool()
}

// Save implements types.Stater. Values are written in the order Flag,
// Enable, IME.
func (s *Service) Save(st *types.State) {
	st.Write8(s.Flag)
	st.Write8(s.Enable)
	st.WriteBool(s.IME)
}
