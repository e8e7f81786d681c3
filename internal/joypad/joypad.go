// Package joypad implements the Game Boy's joypad register (P1/FF00).
package joypad

import (
	"github.com/thelolagemann/go-gameboy/internal/interrupts"
	"github.com/thelolagemann/go-gameboy/internal/types"
)

// Button identifies one of the eight physical inputs.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// State is the joypad peripheral.
//
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - Down or Start    (0=Pressed, read only)
//	Bit 2 - Up or Select     (0=Pressed, read only)
//	Bit 1 - Left or Button B (0=Pressed, read only)
//	Bit 0 - Right or Button A (0=Pressed, read only)
type State struct {
	// keys holds one bit per button, 1 = pressed. Bits 0-3 are the
	// direction keys (Right,Left,Up,Down), bits 4-7 the action keys
	// (A,B,Select,Start).
	keys   uint8
	selectBits uint8 // the two select bits as last written (bits 4-5)

	irq *interrupts.Service
}

// New returns a new joypad State with P1 wired onto hw.
func New(irq *interrupts.Service, hw *types.HardwareRegisters) *State {
	s := &State{irq: irq, selectBits: 0x30}
	hw.MustRegister(types.P1,
		func(v uint8) { s.selectBits = v & 0x30 },
		func() uint8 { return 0xC0 | s.selectBits | s.lines() },
	)
	return s
}

// lines computes the read-only bits 0-3 for whichever key group is
// currently selected (low = pressed); unselected groups read high.
func (s *State) lines() uint8 {
	lines := uint8(0x0F)
	if s.selectBits&types.Bit4 == 0 { // direction keys selected
		lines &^= s.keys & 0x0F
	}
	if s.selectBits&types.Bit5 == 0 { // action keys selected
		lines &^= (s.keys >> 4) & 0x0F
	}
	return lines
}

// Press marks button as held and requests the Joypad interrupt, as a
// real controller's high-to-low transition would.
func (s *State) Press(button Button) {
	was := s.lines()
	s.keys |= 1 << uint(button)
	if s.lines() != was {
		s.irq.Request(interrupts.JoypadFlag)
	}
}

// Release marks button as no longer held.
func (s *State) Release(button Button) {
	s.keys &^= 1 << uint(button)
}

// Tick implements types.Peripheral. The joypad has no per-T-state work;
// it only reacts to Press/Release and register reads.
func (s *State) Tick() {}

var _ types.Peripheral = (*State)(nil)
var _ types.Stater = (*State)(nil)

func (s *State) Load(st *types.State) {
	s.keys = st.Read8()
	s.selectBits = st.Read8()
}

func (s *State) Save(st *types.State) {
	st.Write8(s.keys)
	st.Write8(s.selectBits)
}
