// Package utils collects small host-side helpers shared by command-line
// entry points: presently, compressed ROM/boot-ROM loading.
package utils

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile reads filename and transparently decompresses it if its
// extension names a supported archive format (.gz, .7z). Anything else,
// including plain .gb/.gbc ROMs and raw boot ROM dumps, is returned
// as-is.
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch filepath.Ext(filename) {
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".7z":
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		archive, err := sevenzip.NewReader(f, info.Size())
		if err != nil {
			return nil, err
		}
		if len(archive.File) == 0 {
			return nil, os.ErrNotExist
		}
		rc, err := archive.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	default:
		return io.ReadAll(f)
	}
}
