package asm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nesforge/nes65/nes"
)

const header = ".inesprg 1\n.ineschr 1\n.inesmap 0\n.inesmir 0\n.bank 0\n.org $8000\n"

func TestAssembleSimpleProgram(t *testing.T) {
	src := header + "LDA #$01\nSTA $00\nNOP\n"
	img, labels, err := Assemble([]byte(src))
	require.NoError(t, err)
	require.Len(t, labels, 0)
	require.Len(t, img.PRG, 16*1024)
	require.Len(t, img.CHR, 8*1024)

	// .org $8000 places code at the start of the first bank-0 chunk.
	require.EqualValues(t, 0xA9, img.PRG[0]) // LDA #
	require.EqualValues(t, 0x01, img.PRG[1])
	require.EqualValues(t, 0x85, img.PRG[2]) // STA zp
	require.EqualValues(t, 0x00, img.PRG[3])
	require.EqualValues(t, 0xEA, img.PRG[4]) // NOP
}

func TestAssembleLabelResolutionForwardReference(t *testing.T) {
	src := header + "JMP done\nNOP\ndone:\nNOP\n"
	img, labels, err := Assemble([]byte(src))
	require.NoError(t, err)
	require.Contains(t, labels, "done")
	// JMP abs (3 bytes at $8000-$8002) + NOP ($8003) puts done at $8004.
	require.EqualValues(t, 0x8004, labels["done"])
	require.EqualValues(t, 0x4C, img.PRG[0]) // JMP absolute
	require.EqualValues(t, 0x04, img.PRG[1])
	require.EqualValues(t, 0x80, img.PRG[2])
}

func TestAssembleBranchToLabel(t *testing.T) {
	src := header + "loop:\nNOP\nBEQ loop\n"
	img, _, err := Assemble([]byte(src))
	require.NoError(t, err)
	require.EqualValues(t, 0xF0, img.PRG[1]) // BEQ opcode at $8001
	// target $8000, operand byte at $8002, next instruction at $8003:
	// offset = 0x8000 - 0x8003 = -3
	require.EqualValues(t, byte(int8(-3)), img.PRG[2])
}

func TestAssembleUndefinedLabelFails(t *testing.T) {
	src := header + "JMP nowhere\n"
	_, _, err := Assemble([]byte(src))
	require.Error(t, err)
}

func TestAssembleLabelRedefinitionFails(t *testing.T) {
	src := header + "here:\nhere:\n"
	_, _, err := Assemble([]byte(src))
	require.Error(t, err)
}

func TestAssembleMissingHeaderFails(t *testing.T) {
	_, _, err := Assemble([]byte("NOP\n"))
	require.Error(t, err)
}

func TestAssembleBranchOutOfRangeFails(t *testing.T) {
	var src string
	src += header
	src += "start:\nBEQ far\n"
	for i := 0; i < 200; i++ {
		src += "NOP\n"
	}
	src += "far:\nNOP\n"
	_, _, err := Assemble([]byte(src))
	require.Error(t, err)
}

func TestAssembleDSReservesWithoutEmitting(t *testing.T) {
	src := header + ".ds 4\nNOP\n"
	img, _, err := Assemble([]byte(src))
	require.NoError(t, err)
	require.EqualValues(t, 0, img.PRG[0])
	require.EqualValues(t, 0xEA, img.PRG[4])
}

func TestAssembleRoundTripsThroughDisassembler(t *testing.T) {
	src := header + "LDA #$7F\nSTA $10\nADC $10\nNOP\n"
	img, _, err := Assemble([]byte(src))
	require.NoError(t, err)

	bus := nes.NewBus(img)
	text, size := nes.Disassemble(bus, 0x8000)
	require.Equal(t, byte(2), size)
	require.Equal(t, "LDA #$7F", text)
}

func TestZeroPagePreferenceAssemblesShorterEncoding(t *testing.T) {
	src := header + "LDA $10\nLDA $1234\n"
	img, _, err := Assemble([]byte(src))
	require.NoError(t, err)
	require.EqualValues(t, 0xA5, img.PRG[0]) // zero-page LDA
	require.EqualValues(t, 0xAD, img.PRG[2]) // absolute LDA
}
