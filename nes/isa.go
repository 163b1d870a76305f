package nes

// AddressingMode is the closed set of 6502 operand-addressing schemes.
//
// The following content is adapted from
// http://www.thealmightyguru.com/Games/Hacking/Wiki/index.php/Addressing_Modes
// and is here only for ease of use.
type AddressingMode byte

const (
	// Immediate addressing: the operand's 1-byte value is given in the
	// instruction itself, e.g. LDA #$07.
	Immediate AddressingMode = iota

	// ZeroPage addressing: a 1-byte operand addresses $0000-$00FF.
	ZeroPage

	// Absolute addressing: a full 2-byte address, e.g. LDA $0123.
	Absolute

	// Relative addressing: a signed 1-byte operand added to PC, used by
	// the branch instructions.
	Relative

	// Implied addressing: no operand.
	Implied

	// Accumulator addressing: the instruction operates on A directly.
	Accumulator

	// Indirect addressing: a 2-byte pointer whose target is itself a
	// 2-byte address, used only by JMP ($NNNN).
	Indirect

	// IndexedX addressing: Absolute plus the X register.
	IndexedX

	// IndexedY addressing: Absolute plus the Y register.
	IndexedY

	// ZeroPageIndexedX addressing: ZeroPage plus the X register, wrapping
	// within page 0.
	ZeroPageIndexedX

	// ZeroPageIndexedY addressing: ZeroPage plus the Y register, wrapping
	// within page 0.
	ZeroPageIndexedY

	// PreIndexedIndirect addressing ($NN,X): a zero-page base plus X
	// (wrapped) holds a little-endian pointer to the effective address.
	PreIndexedIndirect

	// PostIndexedIndirect addressing ($NN),Y: a zero-page cell holds a
	// little-endian base address, to which Y is added.
	PostIndexedIndirect
)

// Len returns the addressing mode's fixed encoded length in bytes, as
// spec.md §4.1: implied/accumulator = 1, immediate/relative/zero-page/
// indirect-X/indirect-Y = 2, absolute/absolute-X/absolute-Y/indirect = 3.
func (m AddressingMode) Len() byte {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, Indirect, IndexedX, IndexedY:
		return 3
	default:
		return 2
	}
}

// String names the addressing mode for disassembly and diagnostics.
func (m AddressingMode) String() string {
	switch m {
	case Immediate:
		return "immediate"
	case ZeroPage:
		return "zeropage"
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Indirect:
		return "indirect"
	case IndexedX:
		return "absolute,x"
	case IndexedY:
		return "absolute,y"
	case ZeroPageIndexedX:
		return "zeropage,x"
	case ZeroPageIndexedY:
		return "zeropage,y"
	case PreIndexedIndirect:
		return "(zeropage,x)"
	case PostIndexedIndirect:
		return "(zeropage),y"
	default:
		return "unknown"
	}
}

// InstructionKind distinguishes how an opcode touches its operand. It is
// recorded per codepoint only; the addressing-mode decoder does not consult
// it and makes no dummy/extra bus accesses on indexed modes.
type InstructionKind byte

const (
	_ InstructionKind = iota
	Read
	Write
	ReadModWrite
)

// Codepoint is the (mnemonic, addressing mode) pair that names one of the
// 256 opcode bytes, plus the encoding/cycle metadata the assembler,
// disassembler and interpreter all key off of.
type Codepoint struct {
	OpCode     byte
	Name       string
	Mode       AddressingMode
	Kind       InstructionKind
	Cycles     byte
	PageCycles byte // extra cycle if indexed addressing crosses a page
	Illegal    bool // documented "illegal"/undocumented opcode
	Jam        bool // KIL/JAM: CPU.Step halts the CPU, as real hardware does
}

// Size is the codepoint's encoded length in bytes (opcode byte + operand).
func (c Codepoint) Size() byte { return c.Mode.Len() }

// isa is the constant 256-entry table indexed by opcode byte. It is the
// single source of truth for encoding (package asm), decoding (Disassemble)
// and execution (CPU.Step).
var isa = [256]Codepoint{
	{OpCode: 0x00, Name: "BRK", Mode: Implied, Cycles: 7},
	{OpCode: 0x01, Name: "ORA", Mode: PreIndexedIndirect, Kind: Read, Cycles: 6},
	{OpCode: 0x02, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x03, Name: "SLO", Mode: PreIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0x04, Name: "NOP", Mode: ZeroPage, Kind: Read, Cycles: 3, Illegal: true},
	{OpCode: 0x05, Name: "ORA", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0x06, Name: "ASL", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5},
	{OpCode: 0x07, Name: "SLO", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5, Illegal: true},
	{OpCode: 0x08, Name: "PHP", Mode: Implied, Cycles: 3},
	{OpCode: 0x09, Name: "ORA", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0x0A, Name: "ASL", Mode: Accumulator, Kind: ReadModWrite, Cycles: 2},
	{OpCode: 0x0B, Name: "ANC", Mode: Immediate, Cycles: 2, Illegal: true},
	{OpCode: 0x0C, Name: "NOP", Mode: Absolute, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0x0D, Name: "ORA", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0x0E, Name: "ASL", Mode: Absolute, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0x0F, Name: "SLO", Mode: Absolute, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0x10, Name: "BPL", Mode: Relative, Cycles: 2, PageCycles: 1},
	{OpCode: 0x11, Name: "ORA", Mode: PostIndexedIndirect, Kind: Read, Cycles: 5, PageCycles: 1},
	{OpCode: 0x12, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x13, Name: "SLO", Mode: PostIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0x14, Name: "NOP", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0x15, Name: "ORA", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4},
	{OpCode: 0x16, Name: "ASL", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0x17, Name: "SLO", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0x18, Name: "CLC", Mode: Implied, Cycles: 2},
	{OpCode: 0x19, Name: "ORA", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0x1A, Name: "NOP", Mode: Implied, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0x1B, Name: "SLO", Mode: IndexedY, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0x1C, Name: "NOP", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1, Illegal: true},
	{OpCode: 0x1D, Name: "ORA", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0x1E, Name: "ASL", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7},
	{OpCode: 0x1F, Name: "SLO", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0x20, Name: "JSR", Mode: Absolute, Cycles: 6},
	{OpCode: 0x21, Name: "AND", Mode: PreIndexedIndirect, Kind: Read, Cycles: 6},
	{OpCode: 0x22, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x23, Name: "RLA", Mode: PreIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0x24, Name: "BIT", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0x25, Name: "AND", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0x26, Name: "ROL", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5},
	{OpCode: 0x27, Name: "RLA", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5, Illegal: true},
	{OpCode: 0x28, Name: "PLP", Mode: Implied, Cycles: 4},
	{OpCode: 0x29, Name: "AND", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0x2A, Name: "ROL", Mode: Accumulator, Kind: ReadModWrite, Cycles: 2},
	{OpCode: 0x2B, Name: "ANC", Mode: Immediate, Cycles: 2, Illegal: true},
	{OpCode: 0x2C, Name: "BIT", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0x2D, Name: "AND", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0x2E, Name: "ROL", Mode: Absolute, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0x2F, Name: "RLA", Mode: Absolute, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0x30, Name: "BMI", Mode: Relative, Cycles: 2, PageCycles: 1},
	{OpCode: 0x31, Name: "AND", Mode: PostIndexedIndirect, Kind: Read, Cycles: 5, PageCycles: 1},
	{OpCode: 0x32, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x33, Name: "RLA", Mode: PostIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0x34, Name: "NOP", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0x35, Name: "AND", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4},
	{OpCode: 0x36, Name: "ROL", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0x37, Name: "RLA", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0x38, Name: "SEC", Mode: Implied, Cycles: 2},
	{OpCode: 0x39, Name: "AND", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0x3A, Name: "NOP", Mode: Implied, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0x3B, Name: "RLA", Mode: IndexedY, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0x3C, Name: "NOP", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1, Illegal: true},
	{OpCode: 0x3D, Name: "AND", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0x3E, Name: "ROL", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7},
	{OpCode: 0x3F, Name: "RLA", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0x40, Name: "RTI", Mode: Implied, Cycles: 6},
	{OpCode: 0x41, Name: "EOR", Mode: PreIndexedIndirect, Kind: Read, Cycles: 6},
	{OpCode: 0x42, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x43, Name: "SRE", Mode: PreIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0x44, Name: "NOP", Mode: ZeroPage, Kind: Read, Cycles: 3, Illegal: true},
	{OpCode: 0x45, Name: "EOR", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0x46, Name: "LSR", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5},
	{OpCode: 0x47, Name: "SRE", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5, Illegal: true},
	{OpCode: 0x48, Name: "PHA", Mode: Implied, Cycles: 3},
	{OpCode: 0x49, Name: "EOR", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0x4A, Name: "LSR", Mode: Accumulator, Kind: ReadModWrite, Cycles: 2},
	{OpCode: 0x4B, Name: "ALR", Mode: Immediate, Cycles: 2, Illegal: true},
	{OpCode: 0x4C, Name: "JMP", Mode: Absolute, Cycles: 3},
	{OpCode: 0x4D, Name: "EOR", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0x4E, Name: "LSR", Mode: Absolute, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0x4F, Name: "SRE", Mode: Absolute, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0x50, Name: "BVC", Mode: Relative, Cycles: 2, PageCycles: 1},
	{OpCode: 0x51, Name: "EOR", Mode: PostIndexedIndirect, Kind: Read, Cycles: 5, PageCycles: 1},
	{OpCode: 0x52, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x53, Name: "SRE", Mode: PostIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0x54, Name: "NOP", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0x55, Name: "EOR", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4},
	{OpCode: 0x56, Name: "LSR", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0x57, Name: "SRE", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0x58, Name: "CLI", Mode: Implied, Cycles: 2},
	{OpCode: 0x59, Name: "EOR", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0x5A, Name: "NOP", Mode: Implied, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0x5B, Name: "SRE", Mode: IndexedY, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0x5C, Name: "NOP", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1, Illegal: true},
	{OpCode: 0x5D, Name: "EOR", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0x5E, Name: "LSR", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7},
	{OpCode: 0x5F, Name: "SRE", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0x60, Name: "RTS", Mode: Implied, Cycles: 6},
	{OpCode: 0x61, Name: "ADC", Mode: PreIndexedIndirect, Kind: Read, Cycles: 6},
	{OpCode: 0x62, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x63, Name: "RRA", Mode: PreIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0x64, Name: "NOP", Mode: ZeroPage, Kind: Read, Cycles: 3, Illegal: true},
	{OpCode: 0x65, Name: "ADC", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0x66, Name: "ROR", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5},
	{OpCode: 0x67, Name: "RRA", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5, Illegal: true},
	{OpCode: 0x68, Name: "PLA", Mode: Implied, Cycles: 4},
	{OpCode: 0x69, Name: "ADC", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0x6A, Name: "ROR", Mode: Accumulator, Kind: ReadModWrite, Cycles: 2},
	{OpCode: 0x6B, Name: "ARR", Mode: Immediate, Cycles: 2, Illegal: true},
	{OpCode: 0x6C, Name: "JMP", Mode: Indirect, Cycles: 5},
	{OpCode: 0x6D, Name: "ADC", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0x6E, Name: "ROR", Mode: Absolute, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0x6F, Name: "RRA", Mode: Absolute, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0x70, Name: "BVS", Mode: Relative, Cycles: 2, PageCycles: 1},
	{OpCode: 0x71, Name: "ADC", Mode: PostIndexedIndirect, Kind: Read, Cycles: 5, PageCycles: 1},
	{OpCode: 0x72, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x73, Name: "RRA", Mode: PostIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0x74, Name: "NOP", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0x75, Name: "ADC", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4},
	{OpCode: 0x76, Name: "ROR", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0x77, Name: "RRA", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0x78, Name: "SEI", Mode: Implied, Cycles: 2},
	{OpCode: 0x79, Name: "ADC", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0x7A, Name: "NOP", Mode: Implied, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0x7B, Name: "RRA", Mode: IndexedY, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0x7C, Name: "NOP", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1, Illegal: true},
	{OpCode: 0x7D, Name: "ADC", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0x7E, Name: "ROR", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7},
	{OpCode: 0x7F, Name: "RRA", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0x80, Name: "NOP", Mode: Immediate, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0x81, Name: "STA", Mode: PreIndexedIndirect, Kind: Write, Cycles: 6},
	{OpCode: 0x82, Name: "NOP", Mode: Immediate, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0x83, Name: "SAX", Mode: PreIndexedIndirect, Kind: Write, Cycles: 6, Illegal: true},
	{OpCode: 0x84, Name: "STY", Mode: ZeroPage, Kind: Write, Cycles: 3},
	{OpCode: 0x85, Name: "STA", Mode: ZeroPage, Kind: Write, Cycles: 3},
	{OpCode: 0x86, Name: "STX", Mode: ZeroPage, Kind: Write, Cycles: 3},
	{OpCode: 0x87, Name: "SAX", Mode: ZeroPage, Kind: Write, Cycles: 3, Illegal: true},
	{OpCode: 0x88, Name: "DEY", Mode: Implied, Cycles: 2},
	{OpCode: 0x89, Name: "NOP", Mode: Immediate, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0x8A, Name: "TXA", Mode: Implied, Cycles: 2},
	{OpCode: 0x8B, Name: "XAA", Mode: Immediate, Cycles: 2, Illegal: true},
	{OpCode: 0x8C, Name: "STY", Mode: Absolute, Kind: Write, Cycles: 4},
	{OpCode: 0x8D, Name: "STA", Mode: Absolute, Kind: Write, Cycles: 4},
	{OpCode: 0x8E, Name: "STX", Mode: Absolute, Kind: Write, Cycles: 4},
	{OpCode: 0x8F, Name: "SAX", Mode: Absolute, Kind: Write, Cycles: 4, Illegal: true},
	{OpCode: 0x90, Name: "BCC", Mode: Relative, Cycles: 2, PageCycles: 1},
	{OpCode: 0x91, Name: "STA", Mode: PostIndexedIndirect, Kind: Write, Cycles: 6},
	{OpCode: 0x92, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0x93, Name: "AHX", Mode: PostIndexedIndirect, Cycles: 6, Illegal: true},
	{OpCode: 0x94, Name: "STY", Mode: ZeroPageIndexedX, Kind: Write, Cycles: 4},
	{OpCode: 0x95, Name: "STA", Mode: ZeroPageIndexedX, Kind: Write, Cycles: 4},
	{OpCode: 0x96, Name: "STX", Mode: ZeroPageIndexedY, Kind: Write, Cycles: 4},
	{OpCode: 0x97, Name: "SAX", Mode: ZeroPageIndexedY, Kind: Write, Cycles: 4, Illegal: true},
	{OpCode: 0x98, Name: "TYA", Mode: Implied, Cycles: 2},
	{OpCode: 0x99, Name: "STA", Mode: IndexedY, Kind: Write, Cycles: 5},
	{OpCode: 0x9A, Name: "TXS", Mode: Implied, Cycles: 2},
	{OpCode: 0x9B, Name: "TAS", Mode: IndexedY, Cycles: 5, Illegal: true},
	{OpCode: 0x9C, Name: "SHY", Mode: IndexedX, Kind: Write, Cycles: 5, Illegal: true},
	{OpCode: 0x9D, Name: "STA", Mode: IndexedX, Kind: Write, Cycles: 5},
	{OpCode: 0x9E, Name: "SHX", Mode: IndexedY, Kind: Write, Cycles: 5, Illegal: true},
	{OpCode: 0x9F, Name: "AHX", Mode: IndexedY, Cycles: 5, Illegal: true},
	{OpCode: 0xA0, Name: "LDY", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0xA1, Name: "LDA", Mode: PreIndexedIndirect, Kind: Read, Cycles: 6},
	{OpCode: 0xA2, Name: "LDX", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0xA3, Name: "LAX", Mode: PreIndexedIndirect, Kind: Read, Cycles: 6, Illegal: true},
	{OpCode: 0xA4, Name: "LDY", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0xA5, Name: "LDA", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0xA6, Name: "LDX", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0xA7, Name: "LAX", Mode: ZeroPage, Kind: Read, Cycles: 3, Illegal: true},
	{OpCode: 0xA8, Name: "TAY", Mode: Implied, Cycles: 2},
	{OpCode: 0xA9, Name: "LDA", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0xAA, Name: "TAX", Mode: Implied, Cycles: 2},
	{OpCode: 0xAB, Name: "LAX", Mode: Immediate, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0xAC, Name: "LDY", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0xAD, Name: "LDA", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0xAE, Name: "LDX", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0xAF, Name: "LAX", Mode: Absolute, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0xB0, Name: "BCS", Mode: Relative, Cycles: 2, PageCycles: 1},
	{OpCode: 0xB1, Name: "LDA", Mode: PostIndexedIndirect, Kind: Read, Cycles: 5, PageCycles: 1},
	{OpCode: 0xB2, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0xB3, Name: "LAX", Mode: PostIndexedIndirect, Kind: Read, Cycles: 5, PageCycles: 1, Illegal: true},
	{OpCode: 0xB4, Name: "LDY", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4},
	{OpCode: 0xB5, Name: "LDA", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4},
	{OpCode: 0xB6, Name: "LDX", Mode: ZeroPageIndexedY, Kind: Read, Cycles: 4},
	{OpCode: 0xB7, Name: "LAX", Mode: ZeroPageIndexedY, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0xB8, Name: "CLV", Mode: Implied, Cycles: 2},
	{OpCode: 0xB9, Name: "LDA", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0xBA, Name: "TSX", Mode: Implied, Cycles: 2},
	{OpCode: 0xBB, Name: "LAS", Mode: IndexedY, Cycles: 4, PageCycles: 1, Illegal: true},
	{OpCode: 0xBC, Name: "LDY", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0xBD, Name: "LDA", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0xBE, Name: "LDX", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0xBF, Name: "LAX", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1, Illegal: true},
	{OpCode: 0xC0, Name: "CPY", Mode: Immediate, Cycles: 2},
	{OpCode: 0xC1, Name: "CMP", Mode: PreIndexedIndirect, Kind: Read, Cycles: 6},
	{OpCode: 0xC2, Name: "NOP", Mode: Immediate, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0xC3, Name: "DCP", Mode: PreIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0xC4, Name: "CPY", Mode: ZeroPage, Cycles: 3},
	{OpCode: 0xC5, Name: "CMP", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0xC6, Name: "DEC", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5},
	{OpCode: 0xC7, Name: "DCP", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5, Illegal: true},
	{OpCode: 0xC8, Name: "INY", Mode: Implied, Cycles: 2},
	{OpCode: 0xC9, Name: "CMP", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0xCA, Name: "DEX", Mode: Implied, Cycles: 2},
	{OpCode: 0xCB, Name: "AXS", Mode: Immediate, Cycles: 2, Illegal: true},
	{OpCode: 0xCC, Name: "CPY", Mode: Absolute, Cycles: 4},
	{OpCode: 0xCD, Name: "CMP", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0xCE, Name: "DEC", Mode: Absolute, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0xCF, Name: "DCP", Mode: Absolute, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0xD0, Name: "BNE", Mode: Relative, Cycles: 2, PageCycles: 1},
	{OpCode: 0xD1, Name: "CMP", Mode: PostIndexedIndirect, Kind: Read, Cycles: 5, PageCycles: 1},
	{OpCode: 0xD2, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0xD3, Name: "DCP", Mode: PostIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0xD4, Name: "NOP", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0xD5, Name: "CMP", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4},
	{OpCode: 0xD6, Name: "DEC", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0xD7, Name: "DCP", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0xD8, Name: "CLD", Mode: Implied, Cycles: 2},
	{OpCode: 0xD9, Name: "CMP", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0xDA, Name: "NOP", Mode: Implied, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0xDB, Name: "DCP", Mode: IndexedY, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0xDC, Name: "NOP", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1, Illegal: true},
	{OpCode: 0xDD, Name: "CMP", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0xDE, Name: "DEC", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7},
	{OpCode: 0xDF, Name: "DCP", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0xE0, Name: "CPX", Mode: Immediate, Cycles: 2},
	{OpCode: 0xE1, Name: "SBC", Mode: PreIndexedIndirect, Kind: Read, Cycles: 6},
	{OpCode: 0xE2, Name: "NOP", Mode: Immediate, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0xE3, Name: "ISB", Mode: PreIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0xE4, Name: "CPX", Mode: ZeroPage, Cycles: 3},
	{OpCode: 0xE5, Name: "SBC", Mode: ZeroPage, Kind: Read, Cycles: 3},
	{OpCode: 0xE6, Name: "INC", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5},
	{OpCode: 0xE7, Name: "ISB", Mode: ZeroPage, Kind: ReadModWrite, Cycles: 5, Illegal: true},
	{OpCode: 0xE8, Name: "INX", Mode: Implied, Cycles: 2},
	{OpCode: 0xE9, Name: "SBC", Mode: Immediate, Kind: Read, Cycles: 2},
	{OpCode: 0xEA, Name: "NOP", Mode: Implied, Kind: Read, Cycles: 2},
	{OpCode: 0xEB, Name: "SBC", Mode: Immediate, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0xEC, Name: "CPX", Mode: Absolute, Cycles: 4},
	{OpCode: 0xED, Name: "SBC", Mode: Absolute, Kind: Read, Cycles: 4},
	{OpCode: 0xEE, Name: "INC", Mode: Absolute, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0xEF, Name: "ISB", Mode: Absolute, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0xF0, Name: "BEQ", Mode: Relative, Cycles: 2, PageCycles: 1},
	{OpCode: 0xF1, Name: "SBC", Mode: PostIndexedIndirect, Kind: Read, Cycles: 5, PageCycles: 1},
	{OpCode: 0xF2, Name: "KIL", Mode: Implied, Cycles: 2, Illegal: true, Jam: true},
	{OpCode: 0xF3, Name: "ISB", Mode: PostIndexedIndirect, Kind: ReadModWrite, Cycles: 8, Illegal: true},
	{OpCode: 0xF4, Name: "NOP", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4, Illegal: true},
	{OpCode: 0xF5, Name: "SBC", Mode: ZeroPageIndexedX, Kind: Read, Cycles: 4},
	{OpCode: 0xF6, Name: "INC", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6},
	{OpCode: 0xF7, Name: "ISB", Mode: ZeroPageIndexedX, Kind: ReadModWrite, Cycles: 6, Illegal: true},
	{OpCode: 0xF8, Name: "SED", Mode: Implied, Cycles: 2},
	{OpCode: 0xF9, Name: "SBC", Mode: IndexedY, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0xFA, Name: "NOP", Mode: Implied, Kind: Read, Cycles: 2, Illegal: true},
	{OpCode: 0xFB, Name: "ISB", Mode: IndexedY, Kind: ReadModWrite, Cycles: 7, Illegal: true},
	{OpCode: 0xFC, Name: "NOP", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1, Illegal: true},
	{OpCode: 0xFD, Name: "SBC", Mode: IndexedX, Kind: Read, Cycles: 4, PageCycles: 1},
	{OpCode: 0xFE, Name: "INC", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7},
	{OpCode: 0xFF, Name: "ISB", Mode: IndexedX, Kind: ReadModWrite, Cycles: 7, Illegal: true},
}

func init() {
	for i, c := range isa {
		if c.Name == "" {
			panic("nes: isa table has a hole at opcode index")
		}
		isa[i].OpCode = byte(i)
	}
}

// Lookup returns the codepoint for an opcode byte. The table is exhaustive
// so this never fails.
func Lookup(opcode byte) Codepoint {
	return isa[opcode]
}

// Encode returns the opcode byte for a (mnemonic, mode) pair. Used by the
// assembler; a linear scan is fine over 256 entries.
func Encode(mnemonic string, mode AddressingMode) (byte, bool) {
	for _, c := range isa {
		if c.Name == mnemonic && c.Mode == mode && !c.Illegal {
			return c.OpCode, true
		}
	}
	// fall back to illegal/undocumented encodings so a caller that asks
	// for e.g. (LAX, ZeroPage) still resolves.
	for _, c := range isa {
		if c.Name == mnemonic && c.Mode == mode {
			return c.OpCode, true
		}
	}
	return 0, false
}

// ModesFor enumerates every addressing mode the table implements for a
// mnemonic, official encodings preferred over illegal duplicates.
func ModesFor(mnemonic string) []AddressingMode {
	seen := map[AddressingMode]bool{}
	var modes []AddressingMode
	for _, c := range isa {
		if c.Name != mnemonic || seen[c.Mode] {
			continue
		}
		seen[c.Mode] = true
		modes = append(modes, c.Mode)
	}
	return modes
}
