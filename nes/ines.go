package nes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/glog"
)

const (
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
	headerSize  = 16
)

var inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

// Mirroring is the nametable mirroring mode recorded in the iNES header.
// The bus does not consult it; nametable mirroring is left to the caller.
type Mirroring byte

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

// header mirrors the 16-byte iNES file header, decoded with
// encoding/binary like the teacher's cartridge loader.
type header struct {
	Magic       [4]byte
	PRGBanks    byte
	CHRBanks    byte
	ROMControl1 byte
	ROMControl2 byte
	PRGRAMSize  byte
	_           [7]byte
}

const (
	rc1MirrorVertical = 1 << 0
	rc1Battery        = 1 << 1
	rc1Trainer        = 1 << 2
	rc1FourScreen     = 1 << 3
)

// Image is a decoded iNES ROM: PRG/CHR bank data plus the header metadata
// the bus and loader need. It has no behaviour of its own — Bus and CPU
// read it as plain data.
type Image struct {
	PRG       []byte
	CHR       []byte
	Mapper    byte
	Mirroring Mirroring
	Battery   bool
}

// ErrInvalidHeader is returned when the first four bytes are not the
// "NES\x1A" magic.
var ErrInvalidHeader = fmt.Errorf("nes: missing iNES magic bytes")

// ErrFileLength is returned when the file is shorter than its header
// promises.
var ErrFileLength = fmt.Errorf("nes: file too short for declared bank counts")

// ReadINES parses a complete iNES image from r.
func ReadINES(r io.Reader) (*Image, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("nes: reading ines header: %w", err)
	}
	if h.Magic != inesMagic {
		return nil, ErrInvalidHeader
	}

	if h.ROMControl1&rc1Trainer != 0 {
		trainer := make([]byte, 512)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, fmt.Errorf("nes: reading trainer: %w", err)
		}
		glog.Infof("nes: ignoring 512-byte trainer block")
	}

	prg := make([]byte, int(h.PRGBanks)*prgBankSize)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileLength, err)
	}

	chr := make([]byte, int(h.CHRBanks)*chrBankSize)
	if h.CHRBanks > 0 {
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFileLength, err)
		}
	}

	mirroring := MirrorHorizontal
	if h.ROMControl1&rc1FourScreen != 0 {
		mirroring = MirrorFourScreen
	} else if h.ROMControl1&rc1MirrorVertical != 0 {
		mirroring = MirrorVertical
	}

	return &Image{
		PRG:       prg,
		CHR:       chr,
		Mapper:    h.ROMControl1 >> 4,
		Mirroring: mirroring,
		Battery:   h.ROMControl1&rc1Battery != 0,
	}, nil
}

// WriteTo encodes the image back to iNES form, rebuilding the header from
// the stored metadata. Used by the assembler's CLI front end.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	prgBanks := len(img.PRG) / prgBankSize
	if prgBanks == 0 {
		prgBanks = 1
	}
	chrBanks := len(img.CHR) / chrBankSize

	h := header{
		Magic:    inesMagic,
		PRGBanks: byte(prgBanks),
		CHRBanks: byte(chrBanks),
	}
	h.ROMControl1 = img.Mapper << 4
	switch img.Mirroring {
	case MirrorVertical:
		h.ROMControl1 |= rc1MirrorVertical
	case MirrorFourScreen:
		h.ROMControl1 |= rc1FourScreen
	}
	if img.Battery {
		h.ROMControl1 |= rc1Battery
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
		return 0, err
	}

	prg := img.PRG
	if len(prg) < prgBanks*prgBankSize {
		padded := make([]byte, prgBanks*prgBankSize)
		copy(padded, prg)
		prg = padded
	}
	buf.Write(prg)
	buf.Write(img.CHR)

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
