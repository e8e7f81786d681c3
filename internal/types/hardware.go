package types

import "fmt"

// HardwareRegisters is a table of the Game Boy's memory-mapped I/O
// registers (0xFF00-0xFF7F, plus the interrupt enable register at
// 0xFFFF), each backed by a read and/or write closure supplied by
// whichever component owns that address. The MMU routes the I/O range
// and 0xFFFF through a single HardwareRegisters instance without
// needing to know anything about the owners' concrete types.
type HardwareRegisters struct {
	slots [0x80]*hardwareRegister
	ie    *hardwareRegister
}

// NewHardwareRegisters returns an empty register table. Every address
// reads 0xFF and ignores writes until a component calls Register for it.
func NewHardwareRegisters() *HardwareRegisters {
	return &HardwareRegisters{}
}

type hardwareRegister struct {
	address HardwareAddress
	write   func(v uint8)
	read    func() uint8
}

// Register wires a hardware register at the given address to the given
// read and write functions. Either may be nil, in which case the
// register reads as 0xFF or ignores writes respectively.
func (h *HardwareRegisters) Register(address HardwareAddress, write func(v uint8), read func() uint8) {
	r := &hardwareRegister{address: address, write: write, read: read}
	if address == IE {
		h.ie = r
		return
	}
	h.slots[address&0x7F] = r
}

// Read returns the value of the register at address, or 0xFF if no
// component has registered that address.
func (h *HardwareRegisters) Read(address uint16) uint8 {
	r := h.slotFor(address)
	if r == nil || r.read == nil {
		return 0xFF
	}
	return r.read()
}

// Write writes value to the register at address. A write to an address
// with no registered write function is silently ignored.
func (h *HardwareRegisters) Write(address uint16, value uint8) {
	r := h.slotFor(address)
	if r == nil || r.write == nil {
		return
	}
	r.write(value)
}

func (h *HardwareRegisters) slotFor(address uint16) *hardwareRegister {
	if address == IE {
		return h.ie
	}
	return h.slots[address&0x7F]
}

// MustRegister is like Register but panics if the address has already
// been claimed, catching accidental double-registration of an I/O
// address during component construction.
func (h *HardwareRegisters) MustRegister(address HardwareAddress, write func(v uint8), read func() uint8) {
	if h.slotFor(address) != nil {
		panic(fmt.Sprintf("types: hardware register 0x%04X already registered", address))
	}
	h.Register(address, write, read)
}
