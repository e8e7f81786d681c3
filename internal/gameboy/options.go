package gameboy

import (
	"github.com/thelolagemann/go-gameboy/internal/types"
	"github.com/thelolagemann/go-gameboy/pkg/log"
)

// Opt configures a GameBoy at construction time, after every component
// has been built and wired but before New returns.
type Opt func(gb *GameBoy) error

// WithState restores a previously saved GameBoy from its serialized
// state rather than powering on cold. The state buffer is read in full
// regardless of whether it runs short; the truncation itself is
// reported only once, at this boundary, rather than checked after
// every individual field a component's Load reads.
func WithState(raw []byte) Opt {
	return func(gb *GameBoy) error {
		s := types.StateFromBytes(raw)
		gb.Load(s)
		return s.Err()
	}
}

// Silent replaces the default logger with one that discards output.
func Silent() Opt {
	return func(gb *GameBoy) error {
		gb.Log = log.NewNullLogger()
		return nil
	}
}
