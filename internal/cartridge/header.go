package cartridge

import "fmt"

// Type identifies the memory bank controller (or lack of one) a
// cartridge declares at header offset 0x147. Only ROM-only and MBC1
// are actually emulated; the rest are recognized so Header.String and
// New's error message can name the cartridge precisely.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	MBC6              Type = 0x20
	MBC7              Type = 0x22
	POCKETCAMERA      Type = 0xFC
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02X)", uint8(t))
}

var typeNames = map[Type]string{
	ROM: "ROM", MBC1: "MBC1", MBC1RAM: "MBC1+RAM", MBC1RAMBATT: "MBC1+RAM+BATTERY",
	MBC2: "MBC2", MBC2BATT: "MBC2+BATTERY", ROMRAM: "ROM+RAM", ROMRAMBATT: "ROM+RAM+BATTERY",
	MMM01: "MMM01", MMM01RAM: "MMM01+RAM", MMM01RAMBATT: "MMM01+RAM+BATTERY",
	MBC3TIMERBATT: "MBC3+TIMER+BATTERY", MBC3TIMERRAMBATT: "MBC3+TIMER+RAM+BATTERY",
	MBC3: "MBC3", MBC3RAM: "MBC3+RAM", MBC3RAMBATT: "MBC3+RAM+BATTERY",
	MBC5: "MBC5", MBC5RAM: "MBC5+RAM", MBC5RAMBATT: "MBC5+RAM+BATTERY",
	MBC5RUMBLE: "MBC5+RUMBLE", MBC5RUMBLERAM: "MBC5+RUMBLE+RAM", MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	MBC6: "MBC6", MBC7: "MBC7", POCKETCAMERA: "POCKET CAMERA",
	BANDAITAMA5: "BANDAI TAMA5", HUDSONHUC3: "HuC3", HUDSONHUC1: "HuC1",
}

// ramSizeCodes maps header offset 0x149 to the cartridge RAM size.
var ramSizeCodes = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the parsed content of cartridge offsets 0x100-0x14F.
type Header struct {
	Title           string
	CartridgeType   Type
	ROMSize         uint
	RAMSize         uint
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16
}

// ParseHeader parses the 0x50-byte header beginning at ROM offset
// 0x100. It panics if header is not exactly that length; callers are
// expected to have already validated the ROM's overall size.
func ParseHeader(header []byte) Header {
	if len(header) != 0x50 {
		panic(fmt.Sprintf("cartridge: invalid header length: %d", len(header)))
	}

	var h Header
	h.Title = string(header[0x34:0x44])
	h.CartridgeType = Type(header[0x47])
	h.ROMSize = (32 * 1024) * (1 << header[0x48])
	h.RAMSize = ramSizeCodes[header[0x49]]
	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E]) | uint16(header[0x4F])<<8
	return h
}

// Checksum computes the header checksum over 0x134-0x14C the same way
// the boot ROM does, for comparison against HeaderChecksum.
func Checksum(rom []byte) uint8 {
	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	return sum
}

func (h Header) String() string {
	return fmt.Sprintf("%s (%s) ROM: %dkB RAM: %dkB", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
