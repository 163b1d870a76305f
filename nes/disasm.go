package nes

import "fmt"

// addressingFormats renders the operand half of a disassembled line, keyed
// by addressing mode, mirroring the teacher's own per-mode format table.
var addressingFormats = map[AddressingMode]string{
	Immediate:           "#$%02X",
	ZeroPage:            "$%02X",
	ZeroPageIndexedX:    "$%02X,X",
	ZeroPageIndexedY:    "$%02X,Y",
	Absolute:            "$%04X",
	IndexedX:            "$%04X,X",
	IndexedY:            "$%04X,Y",
	Indirect:            "($%04X)",
	PreIndexedIndirect:  "($%02X,X)",
	PostIndexedIndirect: "($%02X),Y",
	Relative:            "$%04X",
}

// Disassemble decodes one instruction at pc and returns its mnemonic text
// (without the address/byte columns a hex-dump front end would add) plus
// its encoded size in bytes.
func Disassemble(bus *Bus, pc uint16) (text string, size byte) {
	cp := Lookup(bus.Peek(pc))
	size = cp.Size()

	mnemonic := cp.Name
	if cp.Illegal {
		mnemonic = "*" + mnemonic
	}

	switch cp.Mode {
	case Implied, Accumulator:
		return mnemonic, size
	case Relative:
		off := int8(bus.Peek(pc + 1))
		target := uint16(int32(pc+2) + int32(off))
		return fmt.Sprintf("%s $%04X", mnemonic, target), size
	}

	format, ok := addressingFormats[cp.Mode]
	if !ok {
		return mnemonic, size
	}

	var operandVal uint32
	switch size {
	case 2:
		operandVal = uint32(bus.Peek(pc + 1))
	case 3:
		operandVal = uint32(bus.PeekWord(pc + 1))
	}
	return fmt.Sprintf("%s "+format, mnemonic, operandVal), size
}

// DisassembleRange decodes count consecutive instructions starting at pc,
// returning one line per instruction prefixed with its address.
func DisassembleRange(bus *Bus, pc uint16, count int) []string {
	lines := make([]string, 0, count)
	addr := pc
	for i := 0; i < count; i++ {
		text, size := Disassemble(bus, addr)
		lines = append(lines, fmt.Sprintf("%04X  %s", addr, text))
		if size == 0 {
			size = 1
		}
		addr += uint16(size)
	}
	return lines
}
