// Package mmu implements the Game Boy's 64kB address space, routing
// each access to the cartridge, the PPU's VRAM/OAM storage, work RAM,
// the shared hardware register table, the APU's wave RAM, or high RAM.
package mmu

import (
	"github.com/thelolagemann/go-gameboy/internal/boot"
	"github.com/thelolagemann/go-gameboy/internal/cartridge"
	"github.com/thelolagemann/go-gameboy/internal/ram"
	"github.com/thelolagemann/go-gameboy/internal/types"
)

// videoBus is the subset of the PPU the MMU addresses directly for
// block storage outside the shared hardware register table.
type videoBus interface {
	ReadVRAM(addr uint16) uint8
	WriteVRAM(addr uint16, v uint8)
	ReadOAM(addr uint16) uint8
	WriteOAM(addr uint16, v uint8)
	OAMDMAActive() bool
	StepOAMDMA(source func(addr uint16) uint8)
}

// MMU is the Game Boy's memory management unit.
type MMU struct {
	cart cartridge.Cartridge
	ppu  videoBus
	hw   *types.HardwareRegisters

	wram *ram.WRAM
	hram *ram.HRAM

	bootROM     *boot.ROM
	bootROMDone bool
}

// New returns a new MMU. hw must already have every peripheral's
// registers wired onto it.
func New(cart cartridge.Cartridge, ppu videoBus, hw *types.HardwareRegisters) *MMU {
	m := &MMU{
		cart: cart,
		ppu:  ppu,
		hw:   hw,
		wram: ram.NewWRAM(),
		hram: ram.NewHRAM(),
	}
	hw.MustRegister(types.BDIS,
		func(v uint8) { m.bootROMDone = true },
		nil,
	)
	return m
}

// SetBootROM installs a boot ROM to overlay 0x0000-0x00FF until the
// boot process disables it. Passing nil leaves the cartridge mapped
// from power-on, skipping the boot sequence entirely.
func (m *MMU) SetBootROM(rom *boot.ROM) {
	m.bootROM = rom
	m.bootROMDone = rom == nil
}

// Read returns the byte at address, routing through whichever
// component owns that region of the address space.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		if m.bootROM != nil && !m.bootROMDone && address < 0x100 {
			return m.bootROM.Read(address)
		}
		return m.cart.Read(address)
	case address < 0xA000:
		return m.ppu.ReadVRAM(address)
	case address < 0xC000:
		return m.cart.Read(address)
	case address < 0xFE00:
		return m.wram.Read(address)
	case address < 0xFEA0:
		return m.ppu.ReadOAM(address)
	case address < 0xFF00:
		return 0x00 // unusable region
	case address < 0xFF80:
		return m.hw.Read(address)
	case address < 0xFFFF:
		return m.hram.Read(address)
	default:
		return m.hw.Read(address) // 0xFFFF - interrupt enable
	}
}

// Write stores value at address, or discards it if address falls in
// the unusable region. Writes below 0x8000 always reach the cartridge,
// even while the boot ROM overlay is enabled.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		m.cart.Write(address, value)
	case address < 0xA000:
		m.ppu.WriteVRAM(address, value)
	case address < 0xC000:
		m.cart.Write(address, value)
	case address < 0xFE00:
		m.wram.Write(address, value)
	case address < 0xFEA0:
		m.ppu.WriteOAM(address, value)
	case address < 0xFF00:
		// unusable region, writes discarded
	case address < 0xFF80:
		m.hw.Write(address, value)
	case address < 0xFFFF:
		m.hram.Write(address, value)
	default:
		m.hw.Write(address, value)
	}
}

// Tick drives an in-flight OAM DMA transfer by one T-state. The Tick
// Bus calls this alongside the other peripherals; DMA source bytes are
// read back through Read itself, since the source page is always ROM,
// external RAM, or work RAM, never OAM.
func (m *MMU) Tick() {
	if m.ppu.OAMDMAActive() {
		m.ppu.StepOAMDMA(m.Read)
	}
}

var _ types.Peripheral = (*MMU)(nil)
var _ types.Stater = (*MMU)(nil)

func (m *MMU) Load(s *types.State) {
	m.wram.Load(s)
	m.hram.Load(s)
	m.bootROMDone = s.ReadBool()

	if n := s.Read32(); n > 0 {
		buf := make([]byte, n)
		s.ReadData(buf)
		m.cart.LoadRAM(buf)
	}
}

func (m *MMU) Save(s *types.State) {
	m.wram.Save(s)
	m.hram.Save(s)
	s.WriteBool(m.bootROMDone)

	ram := m.cart.RAM()
	s.Write32(uint32(len(ram)))
	s.WriteData(ram)
}
