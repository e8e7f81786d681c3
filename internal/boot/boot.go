// Package boot implements the 256-byte DMG boot ROM overlay: the code
// mapped at 0x0000-0x00FF until it writes to types.BDIS, which scrolls
// the Nintendo logo, verifies the header checksum, and jumps to 0x0100.
// No boot ROM image is embedded; callers supply one (or none) at
// construction time.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// ROM is a loaded boot ROM image and its identified model.
type ROM struct {
	raw      [256]byte
	checksum string
}

// Load validates b's length and MD5-fingerprints it against the known
// DMG-compatible boot ROM dumps. It panics if b is not exactly 256
// bytes; CGB boot ROMs (2304 bytes) are out of scope.
func Load(b []byte) *ROM {
	if len(b) != 256 {
		panic(fmt.Sprintf("boot: invalid boot rom length: %d", len(b)))
	}
	r := &ROM{}
	copy(r.raw[:], b)
	sum := md5.Sum(b)
	r.checksum = hex.EncodeToString(sum[:])
	return r
}

// Read returns the byte at addr, which must be less than 256.
func (r *ROM) Read(addr uint16) uint8 { return r.raw[addr] }

// Checksum returns the boot ROM's MD5 checksum, or "" for a nil ROM.
func (r *ROM) Checksum() string {
	if r == nil {
		return ""
	}
	return r.checksum
}

// Model identifies which known boot ROM dump this is, or "unknown" if
// the checksum doesn't match one of the catalogued DMG-family ROMs.
func (r *ROM) Model() string {
	if r == nil {
		return "none"
	}
	if model, ok := knownChecksums[r.checksum]; ok {
		return model
	}
	return "unknown"
}

var knownChecksums = map[string]string{
	DMG0:        "Game Boy (DMG-0)",
	DMG:         "Game Boy (DMG-01)",
	MGB:         "Game Boy Pocket",
	SGB:         "Super Game Boy",
	SGB2:        "Super Game Boy 2",
	FORTUNE:     "Fortune/Bitman 3000B",
	GameFighter: "Game Fighter",
	MaxStation:  "Max Station",
}

const (
	// DMG0 is the early Japan-only DMG boot ROM; on header checksum
	// failure it flashes the screen rather than hanging.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot ROM found in most original DMG-01 units.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte: it loads 0xFF into A
	// rather than 0x01, letting cartridges detect Game Boy Pocket.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB forwards the cartridge header to the SNES side over the
	// link cable instead of animating the logo itself.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB the same way MGB differs from DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// FORTUNE is the boot ROM found in the "Fortune/Bitman 3000B" clone.
	FORTUNE = "92ed4eca17d61fcd53f8a64c3ce84743"
	// GameFighter is the boot ROM found in the "Game Fighter" clone.
	GameFighter = "6a7b8ee12a793f66a969c6a2b8926cc9"
	// MaxStation is the boot ROM found in the "Maxstation" clone.
	MaxStation = "77a7021db824010a678791f6d062943d"
)
