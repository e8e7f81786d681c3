package types

// Address represents a memory address in the Game Boy's memory space,
// dispatched to a read and write function. It is used to abstract away
// the actual routing of a memory access to whichever component owns the
// address.
type Address struct {
	Read  func(address uint16) uint8
	Write func(address uint16, value uint8)
}

// HardwareAddress represents the address of a hardware register of the
// Game Boy. The hardware registers are mapped to memory addresses
// 0xFF00-0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 (joypad) hardware register. Used to
	// select the input keys to be read by the CPU, and to read the
	// state of the joypad.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register, used to transfer
	// data between the CPU and the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register, used to control
	// the serial port.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. DIV is
	// incremented at a rate of 16384Hz. Internally it is a 16-bit
	// register, but only the upper 8 bits may be read.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. TIMA is
	// incremented at a rate specified by TAC. When TIMA overflows, it
	// is reset to the value of TMA, and a timer interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register, loaded into
	// TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register, used to control
	// the timer's enable bit and input clock select.
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register, used to request
	// interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h)
	//  Bit 2: Timer Interrupt Request (INT 50h)
	//  Bit 3: Serial Interrupt Request (INT 58h)
	//  Bit 4: Joypad Interrupt Request (INT 60h)
	IF HardwareAddress = 0xFF0F

	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR13 HardwareAddress = 0xFF13
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26

	// LCDC is the address of the LCDC hardware register, used to
	// control the LCD.
	//
	//  Bit 7: LCD Enable             (0=Off, 1=On)
	//  Bit 6: Window Tile Map Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable  (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data  (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ Size               (0=8x8, 1=8x16)
	//  Bit 1: OBJ Display Enable     (0=Off, 1=On)
	//  Bit 0: BG Display             (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register, reporting the
	// current PPU mode and requesting LCD interrupts.
	//
	//  Bit 6: LYC=LY Interrupt Enable
	//  Bit 5: Mode 2 (OAM) Interrupt Enable
	//  Bit 4: Mode 1 (V-Blank) Interrupt Enable
	//  Bit 3: Mode 0 (H-Blank) Interrupt Enable
	//  Bit 2: Coincidence Flag (read only)
	//  Bit 1-0: Mode Flag (read only)
	STAT HardwareAddress = 0xFF41
	SCY  HardwareAddress = 0xFF42
	SCX  HardwareAddress = 0xFF43
	// LY is the current scanline being processed, 0-153. It is read-only;
	// writes are ignored.
	LY  HardwareAddress = 0xFF44
	LYC HardwareAddress = 0xFF45
	// DMA triggers a 160-byte OAM transfer from the written high byte's
	// page when written.
	DMA  HardwareAddress = 0xFF46
	BGP  HardwareAddress = 0xFF47
	OBP0 HardwareAddress = 0xFF48
	OBP1 HardwareAddress = 0xFF49
	WY   HardwareAddress = 0xFF4A
	WX   HardwareAddress = 0xFF4B
	// BDIS is written once by the boot ROM to permanently disable its
	// overlay of 0000-00FF.
	BDIS HardwareAddress = 0xFF50
	// IE is the interrupt Enable register.
	IE HardwareAddress = 0xFFFF
)
