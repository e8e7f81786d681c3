// Package cpu implements the Sharp LR35902 instruction set: the
// primary and CB-prefixed dispatch tables, flag computation, halt and
// stop handling, the halt bug, and the delayed-EI interrupt
// enable/dispatch sequence.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/go-gameboy/internal/apu"
	"github.com/thelolagemann/go-gameboy/internal/interrupts"
	"github.com/thelolagemann/go-gameboy/internal/mmu"
	"github.com/thelolagemann/go-gameboy/internal/ppu"
	"github.com/thelolagemann/go-gameboy/internal/serial"
	"github.com/thelolagemann/go-gameboy/internal/timer"
	"github.com/thelolagemann/go-gameboy/internal/types"
)

// ClockSpeed is the DMG's master clock rate in Hz.
const ClockSpeed = 4194304

type mode = uint8

const (
	modeNormal mode = iota
	modeHalt
	modeStop
	modeHaltBug
	modeHaltDI
	modeEnableIME
	modeDisallowed
)

// CPU executes the Sharp LR35902 instruction set against an MMU and
// drives the rest of the Tick Bus once per M-cycle.
type CPU struct {
	PC uint16
	SP uint16
	Registers

	mmu *mmu.MMU
	irq *interrupts.Service

	timer  *timer.Controller
	ppu    *ppu.PPU
	apu    *apu.APU
	serial *serial.Controller

	mode        mode
	currentTick uint8
}

// New returns a new CPU. m's hardware register table must already have
// every peripheral's registers wired onto it.
func New(m *mmu.MMU, irq *interrupts.Service, t *timer.Controller, p *ppu.PPU, a *apu.APU, s *serial.Controller) *CPU {
	c := &CPU{mmu: m, irq: irq, timer: t, ppu: p, apu: a, serial: s}
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}
	c.AF = &RegisterPair{&c.A, &c.F}
	return c
}

// PowerOn sets the post-boot-ROM register state, for running a
// cartridge without stepping through the boot sequence.
func (c *CPU) PowerOn() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// registerGet and registerSet address one of the instruction set's
// eight 3-bit register-field targets: B,C,D,E,H,L,(HL),A.
func (c *CPU) registerGet(index uint8) uint8 {
	switch index {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.HL.Uint16())
	case 7:
		return c.A
	}
	panic(fmt.Sprintf("cpu: invalid register index %d", index))
}

func (c *CPU) registerSet(index uint8, value uint8) {
	switch index {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.writeByte(c.HL.Uint16(), value)
	case 7:
		c.A = value
	default:
		panic(fmt.Sprintf("cpu: invalid register index %d", index))
	}
}

// Step executes one instruction (or one halt/stop tick, or one
// halt-bug-affected instruction) and services a pending interrupt
// afterward if one is both requested and enabled. It returns the
// number of T-states elapsed.
func (c *CPU) Step() uint8 {
	c.currentTick = 0

	var requestInterrupt bool
	switch c.mode {
	case modeNormal:
		c.runInstruction(c.readInstruction())
		requestInterrupt = c.irq.IME && c.irq.Pending()
	case modeHalt, modeStop:
		c.tickCycle()
		requestInterrupt = c.irq.Pending()
	case modeHaltDI:
		c.tickCycle()
		if c.irq.Pending() {
			c.mode = modeNormal
		}
	case modeEnableIME:
		c.irq.IME = true
		c.mode = modeNormal
		c.runInstruction(c.readInstruction())
		requestInterrupt = c.irq.IME && c.irq.Pending()
	case modeHaltBug:
		instr := c.readInstruction()
		c.PC--
		c.runInstruction(instr)
		c.mode = modeNormal
		requestInterrupt = c.irq.IME && c.irq.Pending()
	case modeDisallowed:
		// A disallowed opcode locks the CPU up: real hardware never
		// fetches another instruction or services an interrupt again.
		c.tickCycle()
	}

	if requestInterrupt {
		c.serviceInterrupt()
	}
	return c.currentTick
}

func (c *CPU) readInstruction() uint8 {
	c.tickCycle()
	v := c.mmu.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) readOperand() uint8 { return c.readInstruction() }

func (c *CPU) readByte(addr uint16) uint8 {
	c.tickCycle()
	return c.mmu.Read(addr)
}

func (c *CPU) writeByte(addr uint16, value uint8) {
	c.tickCycle()
	c.mmu.Write(addr, value)
}

func (c *CPU) runInstruction(opcode uint8) {
	var instruction Instruction
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.readOperand()]
	} else {
		instruction = InstructionSet[opcode]
	}
	instruction.fn(c)
}

// serviceInterrupt dispatches the highest-priority pending interrupt
// by pushing PC and jumping to its vector. If IME is clear (possible
// only when woken from halt/stop by a now-unmasked-but-not-enabled
// request) it only exits halt/stop without servicing anything.
func (c *CPU) serviceInterrupt() {
	if c.irq.IME {
		bit, vector, ok := c.irq.Lowest()
		if ok {
			c.SP--
			c.writeByte(c.SP, uint8(c.PC>>8))
			c.SP--
			c.writeByte(c.SP, uint8(c.PC&0xFF))

			c.irq.Clear(bit)
			c.PC = vector
			c.irq.IME = false

			c.tickCycle()
			c.tickCycle()
			c.tickCycle()
		}
	}
	c.mode = modeNormal
}

// tick advances the timer, PPU, APU, serial port and MMU (for OAM DMA)
// by one T-state, in that order. The joypad is not ticked: the CPU holds
// no reference to it.
func (c *CPU) tick() {
	c.timer.Tick()
	c.ppu.Tick()
	c.apu.Tick()
	c.serial.Tick()
	c.mmu.Tick()
	c.currentTick++
}

// tickCycle advances one M-cycle (4 T-states).
func (c *CPU) tickCycle() {
	c.tick()
	c.tick()
	c.tick()
	c.tick()
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8()
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.mode = s.Read8()
}

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.Write8(c.mode)
}
