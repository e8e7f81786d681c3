// Package ppu implements the Game Boy's LCD register surface, VRAM and
// OAM storage, and the mode/scanline timing needed to raise V-Blank and
// LCD STAT interrupts on schedule. Pixel compositing and output are out
// of scope; nothing here produces a framebuffer.
package ppu

import (
	"github.com/thelolagemann/go-gameboy/internal/interrupts"
	"github.com/thelolagemann/go-gameboy/internal/types"
)

// Mode is one of the four PPU modes reported in STAT bits 0-1.
type Mode = uint8

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAM    Mode = 2
	ModeDraw   Mode = 3
)

const (
	oamTicks       = 80
	drawTicks      = 172
	hblankTicks    = 456 - oamTicks - drawTicks
	scanlineTicks  = 456
	visibleLines   = 144
	totalLines     = 154
)

// PPU is the register/VRAM/OAM surface of the display peripheral.
type PPU struct {
	vram [0x2000]uint8
	oam  [0xA0]uint8

	lcdc, stat, scy, scx, ly, lyc, bgp, obp0, obp1, wy, wx uint8
	dma                                                    uint8

	Mode    Mode
	dot     uint16
	lastCoincidence bool

	irq *interrupts.Service

	// oamDMA, when armed, drives a 160-cycle OAM transfer from ROM/RAM;
	// the MMU supplies the source byte via StepOAMDMA.
	oamDMAActive bool
	oamDMAIndex  uint8
}

// New returns a new PPU with its register surface wired onto hw.
func New(irq *interrupts.Service, hw *types.HardwareRegisters) *PPU {
	p := &PPU{irq: irq}

	hw.MustRegister(types.LCDC, func(v uint8) { p.lcdc = v }, func() uint8 { return p.lcdc })
	hw.MustRegister(types.STAT,
		func(v uint8) { p.stat = (v & 0x78) | (p.stat & 0x07) },
		func() uint8 { return p.stat | 0x80 },
	)
	hw.MustRegister(types.SCY, func(v uint8) { p.scy = v }, func() uint8 { return p.scy })
	hw.MustRegister(types.SCX, func(v uint8) { p.scx = v }, func() uint8 { return p.scx })
	hw.MustRegister(types.LY, func(v uint8) {}, func() uint8 { return p.ly })
	hw.MustRegister(types.LYC, func(v uint8) { p.lyc = v; p.updateCoincidence() }, func() uint8 { return p.lyc })
	hw.MustRegister(types.DMA, func(v uint8) { p.dma = v; p.startOAMDMA() }, func() uint8 { return p.dma })
	hw.MustRegister(types.BGP, func(v uint8) { p.bgp = v }, func() uint8 { return p.bgp })
	hw.MustRegister(types.OBP0, func(v uint8) { p.obp0 = v }, func() uint8 { return p.obp0 })
	hw.MustRegister(types.OBP1, func(v uint8) { p.obp1 = v }, func() uint8 { return p.obp1 })
	hw.MustRegister(types.WY, func(v uint8) { p.wy = v }, func() uint8 { return p.wy })
	hw.MustRegister(types.WX, func(v uint8) { p.wx = v }, func() uint8 { return p.wx })

	p.setMode(ModeOAM)
	return p
}

func (p *PPU) startOAMDMA() {
	p.oamDMAActive = true
	p.oamDMAIndex = 0
}

// ReadVRAM and WriteVRAM serve the 0x8000-0x9FFF window; ReadOAM and
// WriteOAM serve 0xFE00-0xFE9F. The MMU calls these directly, as VRAM
// and OAM are block storage rather than single registers.
func (p *PPU) ReadVRAM(addr uint16) uint8      { return p.vram[addr&0x1FFF] }
func (p *PPU) WriteVRAM(addr uint16, v uint8)  { p.vram[addr&0x1FFF] = v }
func (p *PPU) ReadOAM(addr uint16) uint8       { return p.oam[addr&0xFF] }
func (p *PPU) WriteOAM(addr uint16, v uint8)   { p.oam[addr&0xFF] = v }

// StepOAMDMA, called once per T-state by the MMU while a DMA transfer
// is active, copies one byte from source*0x100+index into OAM.
func (p *PPU) StepOAMDMA(source func(addr uint16) uint8) {
	if !p.oamDMAActive {
		return
	}
	p.oam[p.oamDMAIndex] = source(uint16(p.dma)<<8 | uint16(p.oamDMAIndex))
	p.oamDMAIndex++
	if p.oamDMAIndex == 0xA0 {
		p.oamDMAActive = false
	}
}

// OAMDMAActive reports whether a DMA transfer is currently in flight.
func (p *PPU) OAMDMAActive() bool { return p.oamDMAActive }

// Tick advances the scanline/mode state machine by one T-state and
// requests V-Blank / LCD STAT interrupts at the documented transitions.
func (p *PPU) Tick() {
	p.dot++
	switch p.Mode {
	case ModeOAM:
		if p.dot == oamTicks {
			p.dot = 0
			p.setMode(ModeDraw)
		}
	case ModeDraw:
		if p.dot == drawTicks {
			p.dot = 0
			p.setMode(ModeHBlank)
		}
	case ModeHBlank:
		if p.dot == hblankTicks {
			p.dot = 0
			p.advanceLine()
		}
	case ModeVBlank:
		if p.dot == scanlineTicks {
			p.dot = 0
			p.advanceLine()
		}
	}
}

func (p *PPU) advanceLine() {
	p.ly++
	if p.ly == visibleLines {
		p.setMode(ModeVBlank)
		p.irq.Request(interrupts.VBlankFlag)
	} else if p.ly == totalLines {
		p.ly = 0
		p.setMode(ModeOAM)
	} else if p.Mode != ModeVBlank {
		p.setMode(ModeOAM)
	}
	p.updateCoincidence()
}

func (p *PPU) setMode(m Mode) {
	p.Mode = m
	p.stat = (p.stat &^ 0x03) | m
	statIRQ := false
	switch m {
	case ModeHBlank:
		statIRQ = p.stat&types.Bit3 != 0
	case ModeVBlank:
		statIRQ = p.stat&types.Bit4 != 0
	case ModeOAM:
		statIRQ = p.stat&types.Bit5 != 0
	}
	if statIRQ {
		p.irq.Request(interrupts.LCDFlag)
	}
}

func (p *PPU) updateCoincidence() {
	match := p.ly == p.lyc
	if match {
		p.stat |= types.Bit2
	} else {
		p.stat &^= types.Bit2
	}
	if match && !p.lastCoincidence && p.stat&types.Bit6 != 0 {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.lastCoincidence = match
}

var _ types.Peripheral = (*PPU)(nil)
var _ types.Stater = (*PPU)(nil)

func (p *PPU) Load(s *types.State) {
	s.ReadData(p.vram[:])
	s.ReadData(p.oam[:])
	p.lcdc = s.Read8()
	p.stat = s.Read8()
	p.scy = s.Read8()
	p.scx = s.Read8()
	p.ly = s.Read8()
	p.lyc = s.Read8()
	p.bgp = s.Read8()
	p.obp0 = s.Read8()
	p.obp1 = s.Read8()
	p.wy = s.Read8()
	p.wx = s.Read8()
	p.dma = s.Read8()
	p.Mode = s.Read8()
	p.dot = s.Read16()
}

func (p *PPU) Save(s *types.State) {
	s.WriteData(p.vram[:])
	s.WriteData(p.oam[:])
	s.Write8(p.lcdc)
	s.Write8(p.stat)
	s.Write8(p.scy)
	s.Write8(p.scx)
	s.Write8(p.ly)
	s.Write8(p.lyc)
	s.Write8(p.bgp)
	s.Write8(p.obp0)
	s.Write8(p.obp1)
	s.Write8(p.wy)
	s.Write8(p.wx)
	s.Write8(p.dma)
	s.Write8(p.Mode)
	s.Write16(p.dot)
}
