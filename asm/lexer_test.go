package asm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexBasicTokens(t *testing.T) {
	toks, err := Lex("LDA #$42\n")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	require.Equal(t, KindIdent, toks[0].Kind)
	require.Equal(t, "LDA", toks[0].Text)
	require.Equal(t, KindHash, toks[1].Kind)
	require.Equal(t, KindNumber, toks[2].Kind)
	require.EqualValues(t, 0x42, toks[2].Num)
	require.Equal(t, KindNewline, toks[3].Kind)
}

func TestLexRadixPrefixes(t *testing.T) {
	toks, err := Lex("$FF %1010 10\n")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	require.EqualValues(t, 0xFF, toks[0].Num)
	require.EqualValues(t, 0b1010, toks[1].Num)
	require.EqualValues(t, 10, toks[2].Num)
}

func TestLexReservedRegisters(t *testing.T) {
	toks, err := Lex("A X Y foo\n")
	require.NoError(t, err)
	require.Equal(t, KindRegisterA, toks[0].Kind)
	require.Equal(t, KindRegisterX, toks[1].Kind)
	require.Equal(t, KindRegisterY, toks[2].Kind)
	require.Equal(t, KindIdent, toks[3].Kind)
}

func TestLexCommentToEndOfLine(t *testing.T) {
	toks, err := Lex("LDA #1 ; load one\nNOP\n")
	require.NoError(t, err)
	var kinds []Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	require.Equal(t, []Kind{KindIdent, KindHash, KindNumber, KindNewline, KindIdent, KindNewline}, kinds)
}

func TestLexDirective(t *testing.T) {
	toks, err := Lex(".org $8000\n")
	require.NoError(t, err)
	require.Equal(t, KindDirective, toks[0].Kind)
	require.Equal(t, "org", toks[0].Text)
	require.EqualValues(t, 0x8000, toks[1].Num)
}

func TestLexLineNumbersIncrease(t *testing.T) {
	toks, err := Lex("NOP\nNOP\nNOP\n")
	require.NoError(t, err)
	var lines []int
	for _, tk := range toks {
		if tk.Kind == KindIdent {
			lines = append(lines, tk.Line)
		}
	}
	require.Equal(t, []int{1, 2, 3}, lines)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	_, err := Lex("LDA @\n")
	require.Error(t, err)
}
