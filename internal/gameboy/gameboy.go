// Package gameboy assembles the CPU, MMU, and the five peripherals into
// a single embeddable Game Boy instance, and exposes the
// Step/RunFrame/Save/Load surface a host program drives.
package gameboy

import (
	"github.com/thelolagemann/go-gameboy/internal/apu"
	"github.com/thelolagemann/go-gameboy/internal/boot"
	"github.com/thelolagemann/go-gameboy/internal/cartridge"
	"github.com/thelolagemann/go-gameboy/internal/cpu"
	"github.com/thelolagemann/go-gameboy/internal/interrupts"
	"github.com/thelolagemann/go-gameboy/internal/joypad"
	"github.com/thelolagemann/go-gameboy/internal/mmu"
	"github.com/thelolagemann/go-gameboy/internal/ppu"
	"github.com/thelolagemann/go-gameboy/internal/serial"
	"github.com/thelolagemann/go-gameboy/internal/timer"
	"github.com/thelolagemann/go-gameboy/internal/types"
	"github.com/thelolagemann/go-gameboy/pkg/log"
)

// CyclesPerFrame is the number of T-states in one 59.7Hz DMG frame:
// 154 scanlines of 456 T-states each.
const CyclesPerFrame = 70224

// GameBoy wires a cartridge to the CPU and its Tick Bus collaborators.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	PPU        *ppu.PPU
	APU        *apu.APU
	Joypad     *joypad.State
	Serial     *serial.Controller
	Timer      *timer.Controller
	Interrupts *interrupts.Service

	hw *types.HardwareRegisters

	Log log.Logger
}

// New builds a GameBoy for the given ROM image. opts run after every
// component is constructed and wired, and before the cartridge starts
// executing.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}

	hw := types.NewHardwareRegisters()
	irq := interrupts.NewService(hw)

	g := &GameBoy{
		PPU:        ppu.New(irq, hw),
		APU:        apu.New(hw),
		Joypad:     joypad.New(irq, hw),
		Serial:     serial.NewController(irq, hw),
		Timer:      timer.NewController(irq, hw),
		Interrupts: irq,
		hw:         hw,
		Log:        log.New(),
	}
	g.MMU = mmu.New(cart, g.PPU, hw)
	g.CPU = cpu.New(g.MMU, irq, g.Timer, g.PPU, g.APU, g.Serial)
	g.CPU.PowerOn()

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WithBootROM overlays rom at 0x0000-0x00FF and resets the CPU to the
// Game Boy's actual power-on register state, so the boot sequence runs
// rather than jumping straight to the cartridge's entry point.
func WithBootROM(rom []byte) Opt {
	return func(g *GameBoy) error {
		g.MMU.SetBootROM(boot.Load(rom))
		g.CPU.PC = 0x0000
		g.CPU.SP = 0x0000
		g.CPU.AF.SetUint16(0)
		g.CPU.BC.SetUint16(0)
		g.CPU.DE.SetUint16(0)
		g.CPU.HL.SetUint16(0)
		return nil
	}
}

// WithLogger overrides the default logger.
func WithLogger(l log.Logger) Opt {
	return func(g *GameBoy) error {
		g.Log = l
		return nil
	}
}

// Step executes a single CPU instruction (ticking every peripheral
// alongside it) and returns the number of T-states elapsed.
func (g *GameBoy) Step() uint8 { return g.CPU.Step() }

// RunFrame steps the emulation for approximately one frame's worth of
// T-states (CyclesPerFrame), stopping at the first instruction
// boundary at or after that budget is spent.
func (g *GameBoy) RunFrame() {
	var elapsed int
	for elapsed < CyclesPerFrame {
		elapsed += int(g.Step())
	}
}

var _ types.Stater = (*GameBoy)(nil)

func (g *GameBoy) Load(s *types.State) {
	g.CPU.Load(s)
	g.Interrupts.Load(s)
	g.Timer.Load(s)
	g.Serial.Load(s)
	g.Joypad.Load(s)
	g.PPU.Load(s)
	g.APU.Load(s)
	g.MMU.Load(s)
}

func (g *GameBoy) Save(s *types.State) {
	g.CPU.Save(s)
	g.Interrupts.Save(s)
	g.Timer.Save(s)
	g.Serial.Save(s)
	g.Joypad.Save(s)
	g.PPU.Save(s)
	g.APU.Save(s)
	g.MMU.Save(s)
}
