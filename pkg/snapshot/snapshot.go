// Package snapshot compresses and checksums save-state blobs for
// on-disk storage, mirroring the brotli+xxhash framing the project's
// frame-streaming code uses for wire payloads. The checksum covers the
// compressed bytes, so a corrupted file is rejected before any
// decompression work is attempted.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
)

// ErrChecksumMismatch is returned by Decode when the stored xxhash
// digest does not match the stored compressed payload.
var ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")

// quality is the brotli compression level used for saved states.
// States are written far less often than they're read, so this favors
// a smaller file over encode speed.
const quality = 9

// Encode compresses raw and prefixes it with an 8-byte little-endian
// xxhash64 digest of the *compressed* bytes, so Decode can verify the
// file is intact before spending any work decompressing it.
func Encode(raw []byte) ([]byte, error) {
	compressed, err := cbrotli.Encode(raw, cbrotli.WriterOptions{Quality: quality})
	if err != nil {
		return nil, err
	}

	out := make([]byte, 8+len(compressed))
	binary.LittleEndian.PutUint64(out[:8], xxhash.Sum64(compressed))
	copy(out[8:], compressed)
	return out, nil
}

// Decode reverses Encode, verifying the checksum before decompressing.
func Decode(data []byte) ([]byte, error) {
	if len(data) < 8 {
		return nil, ErrChecksumMismatch
	}
	want := binary.LittleEndian.Uint64(data[:8])
	compressed := data[8:]

	if xxhash.Sum64(compressed) != want {
		return nil, ErrChecksumMismatch
	}
	return cbrotli.Decode(compressed)
}

// WriteFile encodes raw and writes it to filename.
func WriteFile(filename string, raw []byte) error {
	encoded, err := Encode(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, encoded, 0o644)
}

// ReadFile reads and decodes a snapshot previously written by WriteFile.
func ReadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, f); err != nil {
		return nil, err
	}
	return Decode(buf.Bytes())
}
