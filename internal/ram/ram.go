// Package ram implements the DMG's flat 8kB work RAM (with its
// E000-FDFF echo) and 127-byte high RAM.
package ram

import "github.com/thelolagemann/go-gameboy/internal/types"

// WRAM is the 8kB work RAM window at 0xC000-0xDFFF. Indexing by
// addr&0x1FFF also correctly serves the 0xE000-0xFDFF echo region,
// since 0xFDFF&0x1FFF equals 0xDDFF-0xC000: the echo mirrors exactly
// the 0xC000-0xDDFF portion of work RAM, which is what real DMG
// hardware's address decoding does by simply not using line A13.
type WRAM struct {
	raw [0x2000]uint8
}

func NewWRAM() *WRAM { return &WRAM{} }

func (w *WRAM) Read(addr uint16) uint8     { return w.raw[addr&0x1FFF] }
func (w *WRAM) Write(addr uint16, v uint8) { w.raw[addr&0x1FFF] = v }

var _ types.Stater = (*WRAM)(nil)

func (w *WRAM) Load(s *types.State) { s.ReadData(w.raw[:]) }
func (w *WRAM) Save(s *types.State) { s.WriteData(w.raw[:]) }

// HRAM is the 127-byte high RAM window at 0xFF80-0xFFFE.
type HRAM struct {
	raw [0x7F]uint8
}

func NewHRAM() *HRAM { return &HRAM{} }

func (h *HRAM) Read(addr uint16) uint8     { return h.raw[addr&0x7F] }
func (h *HRAM) Write(addr uint16, v uint8) { h.raw[addr&0x7F] = v }

var _ types.Stater = (*HRAM)(nil)

func (h *HRAM) Load(s *types.State) { s.ReadData(h.raw[:]) }
func (h *HRAM) Save(s *types.State) { s.WriteData(h.raw[:]) }
