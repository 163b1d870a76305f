package nes

import "testing"

// newTestCPU builds a CPU over a bus with a blank 16KiB PRG bank; tests
// poke opcodes directly into the zero page / low RAM.
func newTestCPU() *CPU {
	b := &Bus{PRG: make([]byte, prgBankSize)}
	c := &CPU{Bus: b}
	c.SP = 0xFD
	c.P = flagUnused
	c.PC = 0x0000
	return c
}

func (c *CPU) load_(addr uint16, bytes ...byte) {
	for i, b := range bytes {
		c.Bus.Write(addr+uint16(i), b)
	}
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	c := newTestCPU()
	c.load_(0, 0xA9, 0x00) // LDA #$00
	c.Step()
	if !c.flag(flagZero) {
		t.Error("Z flag should be set after loading 0")
	}
	if c.flag(flagNegative) {
		t.Error("N flag should be clear after loading 0")
	}

	c = newTestCPU()
	c.load_(0, 0xA9, 0x80) // LDA #$80
	c.Step()
	if c.A != 0x80 {
		t.Errorf("A = $%02X, want $80", c.A)
	}
	if !c.flag(flagNegative) {
		t.Error("N flag should be set after loading $80")
	}
}

func TestADCCarryAndOverflow(t *testing.T) {
	c := newTestCPU()
	c.A = 0x50
	c.load_(0, 0x69, 0x50) // ADC #$50 -> overflows into negative
	c.Step()
	if c.A != 0xA0 {
		t.Errorf("A = $%02X, want $A0", c.A)
	}
	if !c.flag(flagOverflow) {
		t.Error("V flag should be set: 0x50+0x50 overflows signed range")
	}
	if c.flag(flagCarry) {
		t.Error("C flag should be clear: unsigned sum fits in a byte")
	}
}

func TestSBCBorrow(t *testing.T) {
	c := newTestCPU()
	c.A = 0x10
	c.setFlag(flagCarry, true) // carry set means "no borrow" going in
	c.load_(0, 0xE9, 0x20)     // SBC #$20
	c.Step()
	if c.flag(flagCarry) {
		t.Error("C flag should clear: 0x10 - 0x20 borrows")
	}
	if c.A != 0xF0 {
		t.Errorf("A = $%02X, want $F0", c.A)
	}
}

func TestPHPPLPRoundTripsRawByte(t *testing.T) {
	c := newTestCPU()
	c.P = flagCarry | flagDecimal | flagNegative | flagUnused
	before := c.P
	c.load_(0, 0x08) // PHP
	c.Step()
	c.load_(1, 0x28) // PLP
	c.Step()
	// PHP forces break+unused on push; PLP clears break back out, so the
	// only bit that can legitimately differ is flagBreak, which PLP always
	// clears regardless of what was pushed.
	want := before &^ flagBreak | flagUnused
	if c.P != want {
		t.Errorf("P after PHP/PLP = %08b, want %08b", c.P, want)
	}
}

func TestBranchTakenAddsCycle(t *testing.T) {
	c := newTestCPU()
	c.setFlag(flagZero, true)
	c.load_(0, 0xF0, 0x02) // BEQ +2 (taken)
	cycles := c.Step()
	if cycles != 3 {
		t.Errorf("taken BEQ cost %d cycles, want 3 (2 base + 1 taken)", cycles)
	}
	if c.PC != 0x0004 {
		t.Errorf("PC after taken branch = $%04X, want $0004", c.PC)
	}
}

func TestBranchNotTaken(t *testing.T) {
	c := newTestCPU()
	c.setFlag(flagZero, false)
	c.load_(0, 0xF0, 0x02) // BEQ +2, not taken
	cycles := c.Step()
	if cycles != 2 {
		t.Errorf("not-taken BEQ cost %d cycles, want 2", cycles)
	}
	if c.PC != 0x0002 {
		t.Errorf("PC after not-taken branch = $%04X, want $0002", c.PC)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.load_(0x0000, 0x20, 0x10, 0x00) // JSR $0010
	c.load_(0x0010, 0x60)             // RTS
	c.Step()                          // JSR
	if c.PC != 0x0010 {
		t.Fatalf("PC after JSR = $%04X, want $0010", c.PC)
	}
	c.Step() // RTS
	if c.PC != 0x0003 {
		t.Errorf("PC after RTS = $%04X, want $0003 (instruction after JSR)", c.PC)
	}
}

func TestIndexedXPageCrossAddsCycle(t *testing.T) {
	c := newTestCPU()
	c.X = 0xFF
	c.load_(0x0000, 0xBD, 0x01, 0x00) // LDA $0001,X -> crosses into $0100
	cycles := c.Step()
	if cycles != 5 { // base 4 + 1 page-cross
		t.Errorf("page-crossing LDA abs,X cost %d cycles, want 5", cycles)
	}
}

func TestZeroPageIndexedXWraps(t *testing.T) {
	c := newTestCPU()
	c.X = 0xFF
	c.Bus.Write(0x007F, 0x42)
	c.load_(0x0000, 0xB5, 0x80) // LDA $80,X ; 0x80+0xFF wraps to 0x7F
	c.Step()
	if c.A != 0x42 {
		t.Errorf("A = $%02X, want $42 (zero-page X-indexed wrap)", c.A)
	}
}

func TestJAMHaltsCPU(t *testing.T) {
	c := newTestCPU()
	c.load_(0x0000, 0x02) // KIL
	c.Step()
	if !c.Halted() {
		t.Fatal("CPU should be halted after a JAM/KIL opcode")
	}
	cycles := c.Step()
	if cycles != 0 {
		t.Error("Step on a halted CPU should consume no cycles")
	}
}

func TestIndirectJMPNoPageWrapBug(t *testing.T) {
	c := newTestCPU()
	// pointer at $00FF: real hardware bug would read the high byte from
	// $0000 instead of $0100. This interpreter does not emulate that bug.
	c.Bus.Write(0x00FF, 0x00)
	c.Bus.Write(0x0100, 0x12) // if the bug were emulated, this would be ignored
	c.Bus.Write(0x0000, 0x34) // and this would be (wrongly) used instead
	c.load_(0x0200, 0x6C, 0xFF, 0x00) // JMP ($00FF)
	c.PC = 0x0200
	c.Step()
	if c.PC != 0x1200 {
		t.Errorf("PC after JMP indirect = $%04X, want $1200 (bug not emulated)", c.PC)
	}
}

func TestPPUAddressLatchWritesThroughToVRAM(t *testing.T) {
	c := newTestCPU()
	c.load_(0x0000,
		0xA9, 0x20, 0x8D, 0x06, 0x20, // LDA #$20 / STA $2006 (high byte)
		0xA9, 0x05, 0x8D, 0x06, 0x20, // LDA #$05 / STA $2006 (low byte)
		0xA9, 0xAA, 0x8D, 0x07, 0x20, // LDA #$AA / STA $2007
	)
	for i := 0; i < 6; i++ {
		c.Step()
	}
	if got := c.Bus.PPU.VRAM[0x0005]; got != 0xAA {
		t.Errorf("VRAM[$2005] = $%02X, want $AA", got)
	}
	if c.Bus.PPU.latch {
		t.Fatal("latch should be back at the high-byte write after a complete $2006 pair")
	}
	c.Bus.Write(0x2006, 0x3F) // a lone high-byte write arms the latch
	c.Bus.PPU.status |= ppuStatusVblank
	if c.Bus.Read(0x2002, false)&ppuStatusVblank == 0 {
		t.Fatal("status read should report vblank before clearing it")
	}
	if c.Bus.PPU.latch {
		t.Error("reading PPUSTATUS should clear the address latch")
	}
}

func TestPeekDoesNotMutatePPUState(t *testing.T) {
	c := newTestCPU()
	c.Bus.PPU.status |= ppuStatusVblank
	c.Bus.PPU.latch = true
	c.Bus.PPU.readBuf = 0x42

	if v := c.Bus.Peek(0x2002); v&ppuStatusVblank == 0 {
		t.Fatal("Peek should still report vblank")
	}
	if !c.Bus.PPU.latch {
		t.Error("Peek of PPUSTATUS must not clear the address latch")
	}
	if c.Bus.PPU.status&ppuStatusVblank == 0 {
		t.Error("Peek of PPUSTATUS must not clear vblank")
	}

	c.Bus.PPU.addr = 0x0010
	if got := c.Bus.Peek(0x2007); got != 0x42 {
		t.Errorf("Peek of PPUDATA = $%02X, want buffered $42", got)
	}
	if c.Bus.PPU.readBuf != 0x42 {
		t.Error("Peek of PPUDATA must not advance the read buffer")
	}
}

func TestCPUPPUReadWriteBypassesRegisterWindow(t *testing.T) {
	c := newTestCPU()
	c.PPUWrite(0x2005, 0xAA)
	if got := c.PPURead(0x2005, true); got != 0xAA {
		t.Errorf("PPURead($2005) = $%02X, want $AA", got)
	}
}
