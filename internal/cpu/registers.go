package cpu

// Register holds an 8-bit value. The CPU has eight: A, B, C, D, E, H,
// L, and F, where F holds the four condition flags in its top nibble.
type Register = uint8

// RegisterPair views two Registers as a single 16-bit value, as the
// instruction set does for BC, DE, HL, and AF.
type RegisterPair struct {
	High *Register
	Low  *Register
}

func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers holds the CPU's eight 8-bit registers and the four
// RegisterPair views over them.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}
