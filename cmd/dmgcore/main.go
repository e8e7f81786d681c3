// Command dmgcore runs a Game Boy ROM headlessly: no video output, just
// the CPU core stepping through frames, with optional save-state output
// and a debug register stream for external tooling to attach to.
package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/go-gameboy/internal/gameboy"
	"github.com/thelolagemann/go-gameboy/internal/types"
	"github.com/thelolagemann/go-gameboy/pkg/log"
	"github.com/thelolagemann/go-gameboy/pkg/snapshot"
	"github.com/thelolagemann/go-gameboy/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "ROM file to load (.gb, .gbc, .gz, .7z)")
	bootFile := flag.String("boot", "", "optional boot ROM dump to run before the cartridge entry point")
	frames := flag.Uint("frames", 0, "number of frames to run before exiting; 0 runs until interrupted")
	saveState := flag.String("save-state", "", "path to write a snapshot-encoded save state to on exit")
	loadState := flag.String("load-state", "", "path to a snapshot-encoded save state to resume from")
	debugAddr := flag.String("debug-addr", "", "if set, serve a websocket register stream at this address (e.g. localhost:8090)")
	flag.Parse()

	logger := log.New()
	if *romFile == "" {
		logger.Errorf("missing -rom")
		os.Exit(2)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		os.Exit(1)
	}

	var opts []gameboy.Opt
	if *bootFile != "" {
		boot, err := utils.LoadFile(*bootFile)
		if err != nil {
			logger.Errorf("loading boot rom: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *loadState != "" {
		raw, err := snapshot.ReadFile(*loadState)
		if err != nil {
			logger.Errorf("loading save state: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithState(raw))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		logger.Errorf("starting cartridge: %v", err)
		os.Exit(1)
	}

	if *debugAddr != "" {
		go serveDebugStream(gb, *debugAddr, logger)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var ran uint
	for *frames == 0 || ran < *frames {
		select {
		case <-interrupt:
			goto done
		default:
			gb.RunFrame()
			ran++
		}
	}

done:
	logger.Infof("ran %d frames", ran)

	if *saveState != "" {
		if err := writeSaveState(gb, *saveState); err != nil {
			logger.Errorf("writing save state: %v", err)
			os.Exit(1)
		}
	}
}

var upgrader = websocket.Upgrader{}

// serveDebugStream exposes the CPU's register file over a websocket,
// one JSON-free 12-byte frame every 1/60 s of wall-clock time, for an external
// debugger to attach to without needing direct process access.
func serveDebugStream(gb *gameboy.GameBoy, addr string, logger log.Logger) {
	http.HandleFunc("/registers", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Errorf("debug stream upgrade: %v", err)
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()
		for range ticker.C {
			frame := []byte{
				gb.CPU.A, gb.CPU.F, gb.CPU.B, gb.CPU.C,
				gb.CPU.D, gb.CPU.E, gb.CPU.H, gb.CPU.L,
				byte(gb.CPU.PC >> 8), byte(gb.CPU.PC),
				byte(gb.CPU.SP >> 8), byte(gb.CPU.SP),
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		}
	})
	logger.Infof("debug register stream listening on %s/registers", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Errorf("debug stream server: %v", err)
	}
}

// writeSaveState serializes gb's full state and writes it through
// snapshot's brotli+xxhash framing.
func writeSaveState(gb *gameboy.GameBoy, path string) error {
	state := types.NewState()
	gb.Save(state)
	return snapshot.WriteFile(path, state.Bytes())
}
