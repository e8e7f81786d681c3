package types

import "testing"

func TestState_RoundTrip(t *testing.T) {
	s := NewState()
	s.Write8(0x42)
	s.Write16(0xBEEF)
	s.Write32(0xDEADBEEF)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	s2 := StateFromBytes(s.Bytes())
	if got := s2.Read8(); got != 0x42 {
		t.Errorf("Read8 = %#02x, want 0x42", got)
	}
	if got := s2.Read16(); got != 0xBEEF {
		t.Errorf("Read16 = %#04x, want 0xBEEF", got)
	}
	if got := s2.Read32(); got != 0xDEADBEEF {
		t.Errorf("Read32 = %#08x, want 0xDEADBEEF", got)
	}
	if got := s2.ReadBool(); !got {
		t.Errorf("ReadBool = false, want true")
	}
	buf := make([]byte, 3)
	s2.ReadData(buf)
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 {
		t.Errorf("ReadData = %v, want [1 2 3]", buf)
	}
	if err := s2.Err(); err != nil {
		t.Errorf("unexpected Err: %v", err)
	}
}

func TestState_ShortBufferRecordsErrInsteadOfPanicking(t *testing.T) {
	s := StateFromBytes([]byte{0x01})

	if got := s.Read16(); got != 0 {
		t.Errorf("Read16 on short buffer = %#04x, want 0", got)
	}
	if s.Err() != ErrShortState {
		t.Fatalf("Err = %v, want ErrShortState", s.Err())
	}

	// once short, later reads keep returning zero rather than reading
	// further into whatever bytes happen to be available.
	if got := s.Read8(); got != 0 {
		t.Errorf("Read8 after short read = %#02x, want 0", got)
	}
}
