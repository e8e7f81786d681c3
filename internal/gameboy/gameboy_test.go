package gameboy

import (
	"testing"

	"github.com/thelolagemann/go-gameboy/internal/types"
)

func blankROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00 // ROM only
	rom[0x148] = 0x00 // 32kB
	return rom
}

func TestNew(t *testing.T) {
	gb, err := New(blankROM())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if gb.CPU.PC != 0x0100 {
		t.Errorf("PC = %#04x, want 0x0100 after PowerOn with no boot rom", gb.CPU.PC)
	}
}

func TestWithBootROM_StartsAtZero(t *testing.T) {
	boot := make([]byte, 256)
	gb, err := New(blankROM(), WithBootROM(boot))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if gb.CPU.PC != 0x0000 {
		t.Errorf("PC = %#04x, want 0x0000 with a boot rom installed", gb.CPU.PC)
	}
}

func TestRunFrame_AdvancesFullFrameWorthOfCycles(t *testing.T) {
	gb, err := New(blankROM())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// A blank ROM disassembles entirely as NOP (0x00), so a frame runs
	// to completion without ever branching or halting.
	gb.RunFrame()
}

func TestSaveLoad_RoundTripsCPUState(t *testing.T) {
	gb, err := New(blankROM())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	gb.CPU.A = 0x42
	gb.CPU.PC = 0x1234
	gb.CPU.SP = 0xBEEF

	s := types.NewState()
	gb.Save(s)

	restored, err := New(blankROM())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	restored.Load(types.StateFromBytes(s.Bytes()))

	if restored.CPU.A != 0x42 {
		t.Errorf("A = %#02x, want 0x42", restored.CPU.A)
	}
	if restored.CPU.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", restored.CPU.PC)
	}
	if restored.CPU.SP != 0xBEEF {
		t.Errorf("SP = %#04x, want 0xBEEF", restored.CPU.SP)
	}
}

func TestWithState_LoadsIntoNewInstance(t *testing.T) {
	gb, err := New(blankROM())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	gb.CPU.PC = 0x5555

	s := types.NewState()
	gb.Save(s)

	loaded, err := New(blankROM(), WithState(s.Bytes()))
	if err != nil {
		t.Fatalf("New with state: %v", err)
	}
	if loaded.CPU.PC != 0x5555 {
		t.Errorf("PC = %#04x, want 0x5555", loaded.CPU.PC)
	}
}

func TestWithState_TruncatedBufferReturnsError(t *testing.T) {
	if _, err := New(blankROM(), WithState([]byte{0x01, 0x02})); err != types.ErrShortState {
		t.Errorf("got err %v, want ErrShortState", err)
	}
}

func TestSilent_SuppressesLogging(t *testing.T) {
	gb, err := New(blankROM(), Silent())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	gb.Log.Infof("this should not panic or print")
}
