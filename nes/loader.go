package nes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupportedExtension is returned by Load for any file whose extension
// is neither .nes nor .asm.
var ErrUnsupportedExtension = fmt.Errorf("nes: unsupported file extension")

// Assembler is the subset of package asm's public surface the loader needs.
// Defined here, not in package asm, so that nes does not import asm (asm
// already imports nes for the ISA table and iNES image type) — package asm
// implements this interface implicitly.
type Assembler interface {
	Assemble(source []byte) (*Image, SymbolTable, error)
}

// SymbolTable maps assembler label names to their resolved addresses. It is
// produced by package asm and consumed by the loader, nesasm's -labels
// flag and nesrun's -break flag (breakpoints given by label name).
type SymbolTable map[string]uint16

// Load reads path, producing an Image and — when assembled from source — its
// resolved label table. A raw .nes file has an empty SymbolTable.
func Load(path string, asm Assembler) (*Image, SymbolTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("nes: reading %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".nes":
		img, err := ReadINES(bytes.NewReader(data))
		return img, SymbolTable{}, err
	case ".asm":
		if asm == nil {
			return nil, nil, fmt.Errorf("nes: %s requires an assembler, none provided", path)
		}
		return asm.Assemble(data)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
	}
}
