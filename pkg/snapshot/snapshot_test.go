package snapshot

import (
	"bytes"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 256)

	encoded, err := Encode(raw)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(decoded), len(raw))
	}
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	raw := []byte("a small save state")
	encoded, err := Encode(raw)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// flip a bit in the stored checksum
	encoded[0] ^= 0xFF

	if _, err := Decode(encoded); err != ErrChecksumMismatch {
		t.Errorf("got err %v, want ErrChecksumMismatch", err)
	}
}

func TestDecode_Truncated(t *testing.T) {
	if _, err := Decode([]byte{0x01, 0x02}); err != ErrChecksumMismatch {
		t.Errorf("got err %v, want ErrChecksumMismatch", err)
	}
}

func TestDecode_CorruptedCompressedPayload(t *testing.T) {
	raw := bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 256)
	encoded, err := Encode(raw)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// flip a bit inside the compressed region, well past the checksum
	// prefix, so the checksum itself is untouched.
	encoded[len(encoded)-1] ^= 0xFF

	if _, err := Decode(encoded); err != ErrChecksumMismatch {
		t.Errorf("got err %v, want ErrChecksumMismatch", err)
	}
}
