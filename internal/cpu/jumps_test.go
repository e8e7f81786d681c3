package cpu

import "testing"

func TestJP_a16(t *testing.T) {
	rig := newTestRig(t)
	rig.run(0xC3, 0x34, 0x12) // JP 0x1234
	if rig.cpu.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", rig.cpu.PC)
	}
}

func TestJR_NegativeOffset(t *testing.T) {
	rig := newTestRig(t)
	rig.mmu.Write(0xC000, 0x18) // JR -2
	rig.mmu.Write(0xC001, 0xFE)
	rig.cpu.PC = 0xC000
	rig.cpu.Step()
	// PC after reading both bytes is 0xC002; -2 lands back at 0xC000.
	if rig.cpu.PC != 0xC000 {
		t.Errorf("PC = %#04x, want 0xC000", rig.cpu.PC)
	}
}

func TestJP_cc_NotTaken(t *testing.T) {
	rig := newTestRig(t)
	rig.cpu.setFlag(FlagZero)
	rig.run(0xC2, 0x00, 0xD0) // JP NZ,0xD000 - Z is set, so not taken
	if rig.cpu.PC != 0xC003 {
		t.Errorf("PC = %#04x, want 0xC003 (fallthrough)", rig.cpu.PC)
	}
}

func TestCallAndRet(t *testing.T) {
	rig := newTestRig(t)
	c := rig.cpu
	c.SP = 0xFFFE
	rig.run(0xCD, 0x00, 0xD0) // CALL 0xD000
	if c.PC != 0xD000 {
		t.Fatalf("PC = %#04x after CALL, want 0xD000", c.PC)
	}
	if c.SP != 0xFFFC {
		t.Fatalf("SP = %#04x after CALL, want 0xFFFC", c.SP)
	}

	rig.mmu.Write(0xD000, 0xC9) // RET
	c.Step()
	if c.PC != 0xC003 {
		t.Errorf("PC = %#04x after RET, want 0xC003 (return address)", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("SP = %#04x after RET, want 0xFFFE", c.SP)
	}
}

func TestRETI_ReEnablesIME(t *testing.T) {
	rig := newTestRig(t)
	c := rig.cpu
	c.SP = 0xFFFE
	c.push(0xC050)
	rig.mmu.Write(0xC000, 0xD9) // RETI
	c.PC = 0xC000
	rig.irq.IME = false

	c.Step()

	if !rig.irq.IME {
		t.Errorf("expected IME set after RETI")
	}
	if c.PC != 0xC050 {
		t.Errorf("PC = %#04x, want 0xC050", c.PC)
	}
}

func TestRST(t *testing.T) {
	rig := newTestRig(t)
	c := rig.cpu
	c.SP = 0xFFFE
	rig.run(0xEF) // RST 0x28
	if c.PC != 0x0028 {
		t.Errorf("PC = %#04x, want 0x0028", c.PC)
	}
}
