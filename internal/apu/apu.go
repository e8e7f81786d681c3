// Package apu implements the Game Boy's sound register surface: NR10
// through NR52 and the FF30-FF3F wave pattern RAM. No audio is
// synthesized; registers are stored and returned with the masking that
// real hardware applies to write-only and unused bits, including the
// behavior of the NR52 master power switch.
package apu

import "github.com/thelolagemann/go-gameboy/internal/types"

// readMask ORs in the bits each register always reads as 1 for,
// reproducing write-only and unused fields without modeling synthesis.
var readMask = map[types.HardwareAddress]uint8{
	types.NR10: 0x80,
	types.NR11: 0x3F,
	types.NR13: 0xFF,
	types.NR14: 0xBF,
	types.NR21: 0x3F,
	types.NR23: 0xFF,
	types.NR24: 0xBF,
	types.NR30: 0x7F,
	types.NR31: 0xFF,
	types.NR32: 0x9F,
	types.NR33: 0xFF,
	types.NR34: 0xBF,
	types.NR41: 0xFF,
	types.NR44: 0xBF,
	types.NR52: 0x70,
}

// powerGated lists the registers that ignore writes while NR52's power
// bit is clear, as on real hardware.
var powerGated = map[types.HardwareAddress]bool{
	types.NR10: true, types.NR11: true, types.NR12: true, types.NR13: true, types.NR14: true,
	types.NR21: true, types.NR22: true, types.NR23: true, types.NR24: true,
	types.NR30: true, types.NR32: true, types.NR33: true, types.NR34: true,
	types.NR41: true, types.NR42: true, types.NR43: true, types.NR44: true,
	types.NR50: true, types.NR51: true,
}

// APU is the sound register and wave RAM surface.
type APU struct {
	regs    map[types.HardwareAddress]uint8
	wave    [16]uint8
	powered bool
}

// New returns a new APU with NR10-NR52 and wave RAM wired onto hw.
func New(hw *types.HardwareRegisters) *APU {
	a := &APU{regs: make(map[types.HardwareAddress]uint8)}

	for _, addr := range []types.HardwareAddress{
		types.NR10, types.NR11, types.NR12, types.NR13, types.NR14,
		types.NR21, types.NR22, types.NR23, types.NR24,
		types.NR30, types.NR31, types.NR32, types.NR33, types.NR34,
		types.NR41, types.NR42, types.NR43, types.NR44,
		types.NR50, types.NR51,
	} {
		addr := addr
		hw.MustRegister(addr,
			func(v uint8) { a.writeRegister(addr, v) },
			func() uint8 { return a.regs[addr] | readMask[addr] },
		)
	}

	hw.MustRegister(types.NR52,
		func(v uint8) {
			a.powered = v&types.Bit7 != 0
			if !a.powered {
				for addr := range powerGated {
					a.regs[addr] = 0
				}
			}
		},
		func() uint8 {
			var v uint8
			if a.powered {
				v |= types.Bit7
			}
			return v | readMask[types.NR52]
		},
	)

	for i := uint16(0); i < 16; i++ {
		i := i
		hw.MustRegister(0xFF30+i,
			func(v uint8) { a.wave[i] = v },
			func() uint8 { return a.wave[i] },
		)
	}

	return a
}

func (a *APU) writeRegister(addr types.HardwareAddress, v uint8) {
	if powerGated[addr] && !a.powered {
		return
	}
	a.regs[addr] = v
}

// Tick implements types.Peripheral. No sample synthesis occurs; the
// register surface has no per-T-state behavior of its own.
func (a *APU) Tick() {}

var _ types.Peripheral = (*APU)(nil)
var _ types.Stater = (*APU)(nil)

var statefulRegisters = []types.HardwareAddress{
	types.NR10, types.NR11, types.NR12, types.NR13, types.NR14,
	types.NR21, types.NR22, types.NR23, types.NR24,
	types.NR30, types.NR31, types.NR32, types.NR33, types.NR34,
	types.NR41, types.NR42, types.NR43, types.NR44,
	types.NR50, types.NR51,
}

func (a *APU) Load(s *types.State) {
	for _, addr := range statefulRegisters {
		a.regs[addr] = s.Read8()
	}
	s.ReadData(a.wave[:])
	a.powered = s.ReadBool()
}

func (a *APU) Save(s *types.State) {
	for _, addr := range statefulRegisters {
		s.Write8(a.regs[addr])
	}
	s.WriteData(a.wave[:])
	s.WriteBool(a.powered)
}
