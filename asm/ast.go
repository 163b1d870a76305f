package asm

import "github.com/nesforge/nes65/nes"

// OperandKind distinguishes how an instruction's operand was written, so
// the assembler knows whether it still needs pass-2 resolution.
type OperandKind byte

const (
	OperandNone OperandKind = iota
	OperandU8
	OperandU16
	OperandLabel
)

// Operand is an instruction's argument as the parser saw it: either a
// resolved numeric literal or a label name awaiting pass-2 resolution.
type Operand struct {
	Kind  OperandKind
	Value uint16
	Label string
}

// DirectiveKind enumerates the recognized directive names (spec.md §3).
type DirectiveKind byte

const (
	DirOrg DirectiveKind = iota
	DirBank
	DirInesPRG
	DirInesCHR
	DirInesMapper
	DirInesMirror
	DirDB
	DirDS
)

// Directive is a parsed `.name N` statement.
type Directive struct {
	Kind DirectiveKind
	Arg  uint16
}

// StatementKind tags which variant a Statement holds.
type StatementKind byte

const (
	StmtInstruction StatementKind = iota
	StmtLabel
	StmtDirective
)

// Statement is one parsed line: an instruction, a label definition, or a
// directive. Every statement carries the source line it came from.
type Statement struct {
	Kind StatementKind
	Line int

	// StmtInstruction
	Mnemonic string
	Mode     nes.AddressingMode
	Operand  Operand

	// StmtLabel
	Label string

	// StmtDirective
	Directive Directive
}
