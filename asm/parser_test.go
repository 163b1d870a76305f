package asm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nesforge/nes65/nes"
)

func mustLex(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Lex(src)
	require.NoError(t, err)
	return toks
}

func TestParseLabelDefinition(t *testing.T) {
	stmts, err := Parse(mustLex(t, "loop:\n"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	require.Equal(t, StmtLabel, stmts[0].Kind)
	require.Equal(t, "loop", stmts[0].Label)
}

func TestParseImmediate(t *testing.T) {
	stmts, err := Parse(mustLex(t, "LDA #$10\n"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	require.Equal(t, nes.Immediate, stmts[0].Mode)
	require.Equal(t, OperandU8, stmts[0].Operand.Kind)
	require.EqualValues(t, 0x10, stmts[0].Operand.Value)
}

func TestParseZeroPagePreference(t *testing.T) {
	stmts, err := Parse(mustLex(t, "LDA $10\n"))
	require.NoError(t, err)
	require.Equal(t, nes.ZeroPage, stmts[0].Mode)
}

func TestParseAbsoluteWhenTooWideForZeroPage(t *testing.T) {
	stmts, err := Parse(mustLex(t, "LDA $1234\n"))
	require.NoError(t, err)
	require.Equal(t, nes.Absolute, stmts[0].Mode)
}

func TestParseIndexedModes(t *testing.T) {
	stmts, err := Parse(mustLex(t, "LDA $10,X\nLDA $1234,Y\n"))
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	require.Equal(t, nes.ZeroPageIndexedX, stmts[0].Mode)
	require.Equal(t, nes.IndexedY, stmts[1].Mode)
}

func TestParseIndirectModes(t *testing.T) {
	stmts, err := Parse(mustLex(t, "JMP ($1234)\nLDA ($10,X)\nLDA ($10),Y\n"))
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	require.Equal(t, nes.Indirect, stmts[0].Mode)
	require.Equal(t, nes.PreIndexedIndirect, stmts[1].Mode)
	require.Equal(t, nes.PostIndexedIndirect, stmts[2].Mode)
}

func TestParseAccumulatorMode(t *testing.T) {
	stmts, err := Parse(mustLex(t, "ASL A\n"))
	require.NoError(t, err)
	require.Equal(t, nes.Accumulator, stmts[0].Mode)
}

func TestParseImpliedMode(t *testing.T) {
	stmts, err := Parse(mustLex(t, "NOP\n"))
	require.NoError(t, err)
	require.Equal(t, nes.Implied, stmts[0].Mode)
}

func TestParseRelativePreference(t *testing.T) {
	stmts, err := Parse(mustLex(t, "BEQ $05\n"))
	require.NoError(t, err)
	require.Equal(t, nes.Relative, stmts[0].Mode)
}

func TestParseLabelOperandDeferred(t *testing.T) {
	stmts, err := Parse(mustLex(t, "JMP done\n"))
	require.NoError(t, err)
	require.Equal(t, nes.Absolute, stmts[0].Mode)
	require.Equal(t, OperandLabel, stmts[0].Operand.Kind)
	require.Equal(t, "done", stmts[0].Operand.Label)
}

func TestParseDirectiveWithArgument(t *testing.T) {
	stmts, err := Parse(mustLex(t, ".inesprg 1\n.ineschr 1\n.inesmap 0\n.inesmir 0\n"))
	require.NoError(t, err)
	require.Len(t, stmts, 4)
	require.Equal(t, DirInesPRG, stmts[0].Directive.Kind)
	require.EqualValues(t, 1, stmts[0].Directive.Arg)
}

func TestParseUnknownDirectiveFails(t *testing.T) {
	_, err := Parse(mustLex(t, ".bogus 1\n"))
	require.Error(t, err)
}
