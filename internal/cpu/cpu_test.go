package cpu

import (
	"testing"

	"github.com/thelolagemann/go-gameboy/internal/apu"
	"github.com/thelolagemann/go-gameboy/internal/cartridge"
	"github.com/thelolagemann/go-gameboy/internal/interrupts"
	"github.com/thelolagemann/go-gameboy/internal/mmu"
	"github.com/thelolagemann/go-gameboy/internal/ppu"
	"github.com/thelolagemann/go-gameboy/internal/serial"
	"github.com/thelolagemann/go-gameboy/internal/timer"
	"github.com/thelolagemann/go-gameboy/internal/types"
)

// testRig bundles a CPU with the real peripherals it drives, wired
// against a blank 32kB ROM-only cartridge so instruction tests can
// read/write memory through the same paths real execution uses.
type testRig struct {
	cpu *CPU
	irq *interrupts.Service
	mmu *mmu.MMU
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00 // ROM only
	rom[0x148] = 0x00 // 32kB

	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}

	hw := types.NewHardwareRegisters()
	irq := interrupts.NewService(hw)
	p := ppu.New(irq, hw)
	a := apu.New(hw)
	tm := timer.NewController(irq, hw)
	sr := serial.NewController(irq, hw)
	m := mmu.New(cart, p, hw)
	c := New(m, irq, tm, p, a, sr)

	return &testRig{cpu: c, irq: irq, mmu: m}
}

// run writes opcodes into work RAM starting at 0xC000, points PC at
// them, and executes a single Step (one instruction, operands included).
func (r *testRig) run(opcodes ...uint8) {
	base := uint16(0xC000)
	for i, b := range opcodes {
		r.mmu.Write(base+uint16(i), b)
	}
	r.cpu.PC = base
	r.cpu.Step()
}

func TestPowerOn(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.PowerOn()

	if got := rig.cpu.AF.Uint16(); got != 0x01B0 {
		t.Errorf("AF = %#04x, want 0x01B0", got)
	}
	if got := rig.cpu.BC.Uint16(); got != 0x0013 {
		t.Errorf("BC = %#04x, want 0x0013", got)
	}
	if got := rig.cpu.DE.Uint16(); got != 0x00D8 {
		t.Errorf("DE = %#04x, want 0x00D8", got)
	}
	if got := rig.cpu.HL.Uint16(); got != 0x014D {
		t.Errorf("HL = %#04x, want 0x014D", got)
	}
	if rig.cpu.SP != 0xFFFE {
		t.Errorf("SP = %#04x, want 0xFFFE", rig.cpu.SP)
	}
	if rig.cpu.PC != 0x0100 {
		t.Errorf("PC = %#04x, want 0x0100", rig.cpu.PC)
	}
}

func TestStep_NOP(t *testing.T) {
	rig := newTestRig(t)
	elapsed := func() uint8 {
		rig.cpu.PC = 0xC000
		rig.mmu.Write(0xC000, 0x00)
		return rig.cpu.Step()
	}()
	if elapsed != 4 {
		t.Errorf("NOP took %d T-states, want 4", elapsed)
	}
}

func TestInterruptDispatch(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.SP = 0xFFFE
	rig.cpu.PC = 0xC000
	rig.mmu.Write(0xC000, 0x00) // NOP

	rig.irq.IME = true
	rig.irq.Enable = interrupts.VBlankFlag
	rig.irq.Flag = interrupts.VBlankFlag

	elapsed := rig.cpu.Step()

	if rig.cpu.PC != 0x40 {
		t.Errorf("PC after dispatch = %#04x, want 0x0040", rig.cpu.PC)
	}
	if rig.irq.IME {
		t.Errorf("IME should be cleared by dispatch")
	}
	if rig.irq.Flag&interrupts.VBlankFlag != 0 {
		t.Errorf("VBlank flag should be cleared by dispatch")
	}
	// NOP (4T) + 5 M-cycle dispatch (20T) = 24T
	if elapsed != 24 {
		t.Errorf("elapsed = %d T-states, want 24", elapsed)
	}

	stack := uint16(rig.mmu.Read(0xFFFD))<<8 | uint16(rig.mmu.Read(0xFFFC))
	if stack != 0xC001 {
		t.Errorf("return address on stack = %#04x, want 0xC001", stack)
	}
}

func TestHaltWakesOnPendingInterrupt(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.PC = 0xC000
	rig.mmu.Write(0xC000, 0x76) // HALT

	rig.irq.IME = true
	rig.cpu.Step() // executes HALT, enters modeHalt

	if rig.cpu.mode != modeHalt {
		t.Fatalf("mode = %v, want modeHalt", rig.cpu.mode)
	}

	rig.irq.Enable = interrupts.TimerFlag
	rig.irq.Flag = interrupts.TimerFlag
	rig.cpu.Step() // should service the interrupt and leave halt

	if rig.cpu.mode != modeNormal {
		t.Errorf("mode = %v, want modeNormal after servicing", rig.cpu.mode)
	}
	if rig.cpu.PC != 0x50 {
		t.Errorf("PC = %#04x, want 0x0050 (timer vector)", rig.cpu.PC)
	}
}

func TestHaltBug(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.PC = 0xC000
	rig.mmu.Write(0xC000, 0x76) // HALT
	rig.mmu.Write(0xC001, 0x3C) // INC A

	rig.irq.IME = false
	rig.irq.Enable = interrupts.VBlankFlag
	rig.irq.Flag = interrupts.VBlankFlag // already pending with IME clear

	rig.cpu.Step() // HALT sees a pending-but-masked interrupt: halt bug
	if rig.cpu.mode != modeHaltBug {
		t.Fatalf("mode = %v, want modeHaltBug", rig.cpu.mode)
	}

	rig.cpu.A = 0x00
	rig.cpu.Step() // should execute INC A at 0xC001 without advancing past it
	if rig.cpu.A != 0x01 {
		t.Errorf("A = %#02x after first post-halt step, want 0x01", rig.cpu.A)
	}
	if rig.cpu.PC != 0xC001 {
		t.Errorf("PC = %#04x, want 0xC001 (re-reads the same byte)", rig.cpu.PC)
	}

	rig.cpu.Step() // now executes INC A again, for real this time
	if rig.cpu.A != 0x02 {
		t.Errorf("A = %#02x after second step, want 0x02 (byte executed twice)", rig.cpu.A)
	}
	if rig.cpu.PC != 0xC002 {
		t.Errorf("PC = %#04x, want 0xC002", rig.cpu.PC)
	}
}

func TestEIDelaysInterruptByOneInstruction(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.PC = 0xC000
	rig.mmu.Write(0xC000, 0xFB) // EI
	rig.mmu.Write(0xC001, 0x00) // NOP
	rig.mmu.Write(0xC002, 0x00) // NOP

	rig.irq.IME = false
	rig.irq.Enable = interrupts.VBlankFlag
	rig.irq.Flag = interrupts.VBlankFlag

	rig.cpu.Step() // EI: IME not yet live
	if rig.irq.IME {
		t.Fatalf("IME should still be false immediately after EI")
	}
	if rig.cpu.PC != 0xC001 {
		t.Fatalf("PC = %#04x, want 0xC001", rig.cpu.PC)
	}

	rig.cpu.Step() // IME goes live, then NOP executes, THEN interrupt services
	if rig.cpu.PC != 0x40 {
		t.Errorf("PC = %#04x, want 0x0040 (interrupt serviced after the one delayed instruction)", rig.cpu.PC)
	}
}

func TestDisallowedOpcodeLocksUpQuiescently(t *testing.T) {
	rig := newTestRig(t)
	rig.run(0xD3) // disallowed

	if rig.cpu.mode != modeDisallowed {
		t.Fatalf("mode = %v, want modeDisallowed", rig.cpu.mode)
	}

	pc := rig.cpu.PC
	rig.irq.IME = true
	rig.irq.Enable = interrupts.VBlankFlag
	rig.irq.Request(interrupts.VBlankFlag)
	rig.cpu.Step()

	if rig.cpu.PC != pc {
		t.Errorf("PC = %#04x, want %#04x (locked up, no further fetch)", rig.cpu.PC, pc)
	}
	if rig.cpu.mode != modeDisallowed {
		t.Errorf("mode = %v, want modeDisallowed (interrupt must not be serviced)", rig.cpu.mode)
	}
}
