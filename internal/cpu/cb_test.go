package cpu

import "testing"

func TestCB_RLC_B(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.B = 0x85
	rig.run(0xCB, 0x00) // RLC B
	if rig.cpu.B != 0x0B {
		t.Errorf("B = %#02x, want 0x0B", rig.cpu.B)
	}
	if !rig.cpu.isFlagSet(FlagCarry) {
		t.Errorf("expected carry set")
	}
}

func TestCB_SWAP_HL_Indirect(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.HL.SetUint16(0xC100)
	rig.mmu.Write(0xC100, 0xAB)
	rig.run(0xCB, 0x36) // SWAP (HL)
	if got := rig.mmu.Read(0xC100); got != 0xBA {
		t.Errorf("(HL) = %#02x, want 0xBA", got)
	}
}

func TestCB_BIT_SetsZeroOnClearBit(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.A = 0x00
	rig.run(0xCB, 0x7F) // BIT 7,A
	if !rig.cpu.isFlagSet(FlagZero) {
		t.Errorf("expected zero flag set for BIT 7 on 0x00")
	}
}

func TestCB_RES_ClearsBit(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.A = 0xFF
	rig.run(0xCB, 0xBF) // RES 7,A
	if rig.cpu.A != 0x7F {
		t.Errorf("A = %#02x, want 0x7F", rig.cpu.A)
	}
}

func TestCB_SET_SetsBit(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.A = 0x00
	rig.run(0xCB, 0xFF) // SET 7,A
	if rig.cpu.A != 0x80 {
		t.Errorf("A = %#02x, want 0x80", rig.cpu.A)
	}
}

func TestCB_RES_SET_HLIndirect(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.HL.SetUint16(0xC100)
	rig.mmu.Write(0xC100, 0xFF)

	rig.run(0xCB, 0x86) // RES 0,(HL)
	if got := rig.mmu.Read(0xC100); got != 0xFE {
		t.Errorf("(HL) = %#02x, want 0xFE", got)
	}

	rig.run(0xCB, 0xC6) // SET 0,(HL)
	if got := rig.mmu.Read(0xC100); got != 0xFF {
		t.Errorf("(HL) = %#02x, want 0xFF", got)
	}
}
