package cpu

// Instruction is one entry of the primary or CB-prefixed dispatch
// table: a mnemonic for diagnostics and the closure that executes it.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// InstructionSet holds the 256 primary-plane instructions, indexed by
// opcode. This file and its siblings (alu.go, loads.go, jumps.go,
// rotate.go) populate it from init().
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 CB-prefixed instructions. cb.go
// builds it programmatically from the five bit-operation families.
var InstructionSetCB [256]Instruction

// DefineInstruction registers fn as the primary-plane handler for opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

// DefineInstructionCB registers fn as the CB-plane handler for opcode.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// disallowedOpcodes never appear in a valid program; the primary plane
// has eleven gaps the original hardware decode logic never assigned.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	for _, opcode := range disallowedOpcodes {
		DefineInstruction(opcode, "disallowed", func(c *CPU) {
			c.mode = modeDisallowed
		})
	}
}
