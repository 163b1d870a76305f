package nes

import (
	"bytes"
	"testing"
)

func buildINES(prgBanks, chrBanks int, rc1 byte) []byte {
	var buf bytes.Buffer
	buf.Write(inesMagic[:])
	buf.WriteByte(byte(prgBanks))
	buf.WriteByte(byte(chrBanks))
	buf.WriteByte(rc1)
	buf.WriteByte(0)
	buf.Write(make([]byte, 8)) // PRGRAMSize + 7 reserved bytes
	buf.Write(make([]byte, prgBanks*prgBankSize))
	buf.Write(make([]byte, chrBanks*chrBankSize))
	return buf.Bytes()
}

func TestReadINESRoundTrip(t *testing.T) {
	raw := buildINES(2, 1, 0x10) // mapper 1, horizontal mirroring
	img, err := ReadINES(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadINES: %v", err)
	}
	if len(img.PRG) != 2*prgBankSize {
		t.Errorf("PRG length = %d, want %d", len(img.PRG), 2*prgBankSize)
	}
	if len(img.CHR) != chrBankSize {
		t.Errorf("CHR length = %d, want %d", len(img.CHR), chrBankSize)
	}
	if img.Mapper != 1 {
		t.Errorf("Mapper = %d, want 1", img.Mapper)
	}

	var out bytes.Buffer
	if _, err := img.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	img2, err := ReadINES(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("ReadINES (round trip): %v", err)
	}
	if !bytes.Equal(img.PRG, img2.PRG) {
		t.Error("PRG did not round-trip")
	}
	if img2.Mapper != img.Mapper {
		t.Errorf("Mapper did not round-trip: got %d want %d", img2.Mapper, img.Mapper)
	}
}

func TestReadINESBadMagic(t *testing.T) {
	raw := buildINES(1, 1, 0)
	raw[0] = 'X'
	if _, err := ReadINES(bytes.NewReader(raw)); err != ErrInvalidHeader {
		t.Errorf("ReadINES with bad magic = %v, want ErrInvalidHeader", err)
	}
}

func TestReadINESTruncated(t *testing.T) {
	raw := buildINES(2, 0, 0)
	raw = raw[:len(raw)-10] // chop off the tail of PRG data
	if _, err := ReadINES(bytes.NewReader(raw)); err == nil {
		t.Error("ReadINES with truncated PRG data should fail")
	}
}

func TestMirroringDecode(t *testing.T) {
	cases := []struct {
		rc1  byte
		want Mirroring
	}{
		{0x00, MirrorHorizontal},
		{0x01, MirrorVertical},
		{0x08, MirrorFourScreen},
		{0x09, MirrorFourScreen}, // four-screen bit wins over vertical bit
	}
	for _, c := range cases {
		raw := buildINES(1, 1, c.rc1)
		img, err := ReadINES(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("ReadINES: %v", err)
		}
		if img.Mirroring != c.want {
			t.Errorf("rc1=0x%02X: Mirroring = %v, want %v", c.rc1, img.Mirroring, c.want)
		}
	}
}
