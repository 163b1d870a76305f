package asm

import (
	"errors"

	"github.com/nesforge/nes65/internal/errs"
	"github.com/nesforge/nes65/nes"
)

var errUnexpectedEOL = errors.New("unexpected end of line")

var directiveNames = map[string]DirectiveKind{
	"org":     DirOrg,
	"bank":    DirBank,
	"inesprg": DirInesPRG,
	"ineschr": DirInesCHR,
	"inesmap": DirInesMapper,
	"inesmir": DirInesMirror,
	"db":      DirDB,
	"ds":      DirDS,
}

// cursor is a one-token-lookahead reader over a token slice.
type cursor struct {
	toks []Token
	pos  int
}

func (c *cursor) peek() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) next() (Token, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

func (c *cursor) expectNewlineOrEOF(line int) error {
	t, ok := c.peek()
	if !ok {
		return nil
	}
	if t.Kind != KindNewline {
		return errs.Atf(line, "asm/parser.go:expectNewlineOrEOF", "expected newline, got %s", t)
	}
	c.pos++
	return nil
}

// Parse turns a token stream into a statement stream. The parser is
// deliberately permissive about mnemonic/addressing-mode validity — a bad
// combination is only caught later, when the assembler fails to find it in
// the ISA table.
func Parse(toks []Token) ([]Statement, error) {
	c := &cursor{toks: toks}
	var out []Statement

	for {
		tok, ok := c.next()
		if !ok {
			return out, nil
		}
		switch tok.Kind {
		case KindNewline:
			continue
		case KindDirective:
			stmt, err := parseDirective(c, tok)
			if err != nil {
				return nil, err
			}
			out = append(out, stmt)
		case KindIdent:
			stmts, err := parseIdentLine(c, tok)
			if err != nil {
				return nil, err
			}
			out = append(out, stmts...)
		default:
			return nil, errs.Atf(tok.Line, "asm/parser.go:Parse", "expected an instruction, directive or label, got %s", tok)
		}
	}
}

func parseDirective(c *cursor, tok Token) (Statement, error) {
	kind, ok := directiveNames[tok.Text]
	if !ok {
		return Statement{}, errs.Atf(tok.Line, "asm/parser.go:parseDirective", "no such directive: %q", tok.Text)
	}
	arg, err := parseOperandNumber(c, tok.Line)
	if err != nil {
		return Statement{}, err
	}
	if kind == DirDB && arg > 0xFF {
		return Statement{}, errs.Atf(tok.Line, "asm/parser.go:parseDirective", ".db argument %d does not fit in a byte", arg)
	}
	if err := c.expectNewlineOrEOF(tok.Line); err != nil {
		return Statement{}, err
	}
	return Statement{
		Kind:      StmtDirective,
		Line:      tok.Line,
		Directive: Directive{Kind: kind, Arg: arg},
	}, nil
}

// parseOperandNumber reads a directive's single numeric argument. Unlike
// instruction operands, directive arguments are never label references.
func parseOperandNumber(c *cursor, line int) (uint16, error) {
	t, ok := c.next()
	if !ok {
		return 0, errs.At(line, "asm/parser.go:parseOperandNumber", errUnexpectedEOL)
	}
	if t.Kind != KindNumber {
		return 0, errs.Atf(line, "asm/parser.go:parseOperandNumber", "expected a number, got %s", t)
	}
	return t.Num, nil
}

func parseIdentLine(c *cursor, mnemonicTok Token) ([]Statement, error) {
	mnemonic := mnemonicTok.Text
	line := mnemonicTok.Line

	next, ok := c.peek()
	if !ok {
		return []Statement{instrStmt(mnemonic, nes.Implied, Operand{}, line)}, nil
	}

	switch next.Kind {
	case KindColon:
		c.pos++
		return []Statement{{Kind: StmtLabel, Line: line, Label: mnemonic}}, nil

	case KindHash:
		c.pos++
		op, err := parseNumericOperand(c, line)
		if err != nil {
			return nil, err
		}
		if op.Kind == OperandU16 {
			return nil, errs.Atf(line, "asm/parser.go:parseIdentLine", "immediate operand does not fit in a byte")
		}
		if err := c.expectNewlineOrEOF(line); err != nil {
			return nil, err
		}
		return []Statement{instrStmt(mnemonic, nes.Immediate, op, line)}, nil

	case KindNumber, KindIdent:
		return parseNumericAddressing(c, mnemonic, line)

	case KindParenOpen:
		c.pos++
		return parseIndirectAddressing(c, mnemonic, line)

	case KindRegisterA:
		c.pos++
		if err := c.expectNewlineOrEOF(line); err != nil {
			return nil, err
		}
		return []Statement{instrStmt(mnemonic, nes.Accumulator, Operand{}, line)}, nil

	case KindNewline:
		c.pos++
		return []Statement{instrStmt(mnemonic, nes.Implied, Operand{}, line)}, nil

	default:
		return nil, errs.Atf(line, "asm/parser.go:parseIdentLine", "unexpected token after mnemonic: %s", next)
	}
}

// parseNumericOperand reads either a numeric literal or a label reference
// in operand position — the latter is a supplement over the grammar's
// numeric-literal-only original, so branch/jump/store targets can name a
// label directly instead of a pre-computed address.
func parseNumericOperand(c *cursor, line int) (Operand, error) {
	t, ok := c.next()
	if !ok {
		return Operand{}, errs.At(line, "asm/parser.go:parseNumericOperand", errUnexpectedEOL)
	}
	switch t.Kind {
	case KindNumber:
		if t.Num > 0xFF {
			return Operand{Kind: OperandU16, Value: t.Num}, nil
		}
		return Operand{Kind: OperandU8, Value: t.Num}, nil
	case KindIdent:
		return Operand{Kind: OperandLabel, Label: t.Text}, nil
	default:
		return Operand{}, errs.Atf(line, "asm/parser.go:parseNumericOperand", "expected a number or label, got %s", t)
	}
}

// parseNumericAddressing handles the absolute/zero-page/relative family:
// an identifier followed directly by a number or label.
func parseNumericAddressing(c *cursor, mnemonic string, line int) ([]Statement, error) {
	op, err := parseNumericOperand(c, line)
	if err != nil {
		return nil, err
	}

	modes := nes.ModesFor(mnemonic)
	if hasMode(modes, nes.Relative) {
		// Relative preference: branch mnemonics have no other mode that
		// takes a memory operand, so always emit relative here.
		if op.Kind == OperandU16 {
			return nil, errs.Atf(line, "asm/parser.go:parseNumericAddressing", "branch operand does not fit in a signed byte")
		}
		if err := c.expectNewlineOrEOF(line); err != nil {
			return nil, err
		}
		return []Statement{instrStmt(mnemonic, nes.Relative, op, line)}, nil
	}

	zpgEligible := op.Kind == OperandU8 && (hasMode(modes, nes.ZeroPage) || hasMode(modes, nes.ZeroPageIndexedX) || hasMode(modes, nes.ZeroPageIndexedY))

	next, ok := c.peek()
	if !ok {
		return []Statement{instrStmt(mnemonic, pickMode(zpgEligible, nes.ZeroPage, nes.Absolute), op, line)}, nil
	}

	switch next.Kind {
	case KindNewline:
		c.pos++
		return []Statement{instrStmt(mnemonic, pickMode(zpgEligible, nes.ZeroPage, nes.Absolute), op, line)}, nil

	case KindComma:
		c.pos++
		idx, ok := c.next()
		if !ok {
			return nil, errs.At(line, "asm/parser.go:parseNumericAddressing", errUnexpectedEOL)
		}
		var mode nes.AddressingMode
		switch idx.Kind {
		case KindRegisterX:
			mode = pickMode(zpgEligible, nes.ZeroPageIndexedX, nes.IndexedX)
		case KindRegisterY:
			mode = pickMode(zpgEligible, nes.ZeroPageIndexedY, nes.IndexedY)
		default:
			return nil, errs.Atf(line, "asm/parser.go:parseNumericAddressing", "expected X or Y after comma, got %s", idx)
		}
		if err := c.expectNewlineOrEOF(line); err != nil {
			return nil, err
		}
		return []Statement{instrStmt(mnemonic, mode, op, line)}, nil

	default:
		return nil, errs.Atf(line, "asm/parser.go:parseNumericAddressing", "expected comma or newline, got %s", next)
	}
}

func parseIndirectAddressing(c *cursor, mnemonic string, line int) ([]Statement, error) {
	op, err := parseNumericOperand(c, line)
	if err != nil {
		return nil, err
	}

	t, ok := c.next()
	if !ok {
		return nil, errs.At(line, "asm/parser.go:parseIndirectAddressing", errUnexpectedEOL)
	}

	switch t.Kind {
	case KindParenClose:
		next, ok := c.peek()
		if ok && next.Kind == KindComma {
			c.pos++
			y, ok := c.next()
			if !ok || y.Kind != KindRegisterY {
				return nil, errs.Atf(line, "asm/parser.go:parseIndirectAddressing", "expected Y after comma")
			}
			if err := c.expectNewlineOrEOF(line); err != nil {
				return nil, err
			}
			return []Statement{instrStmt(mnemonic, nes.PostIndexedIndirect, op, line)}, nil
		}
		if err := c.expectNewlineOrEOF(line); err != nil {
			return nil, err
		}
		return []Statement{instrStmt(mnemonic, nes.Indirect, op, line)}, nil

	case KindComma:
		x, ok := c.next()
		if !ok || x.Kind != KindRegisterX {
			return nil, errs.Atf(line, "asm/parser.go:parseIndirectAddressing", "expected X after comma")
		}
		closeParen, ok := c.next()
		if !ok || closeParen.Kind != KindParenClose {
			return nil, errs.Atf(line, "asm/parser.go:parseIndirectAddressing", "expected ')'")
		}
		if err := c.expectNewlineOrEOF(line); err != nil {
			return nil, err
		}
		return []Statement{instrStmt(mnemonic, nes.PreIndexedIndirect, op, line)}, nil

	default:
		return nil, errs.Atf(line, "asm/parser.go:parseIndirectAddressing", "unexpected token in indirect operand: %s", t)
	}
}

func instrStmt(mnemonic string, mode nes.AddressingMode, op Operand, line int) Statement {
	return Statement{
		Kind:     StmtInstruction,
		Line:     line,
		Mnemonic: mnemonic,
		Mode:     mode,
		Operand:  op,
	}
}

func hasMode(modes []nes.AddressingMode, m nes.AddressingMode) bool {
	for _, x := range modes {
		if x == m {
			return true
		}
	}
	return false
}

func pickMode(zpg bool, zpgMode, wideMode nes.AddressingMode) nes.AddressingMode {
	if zpg {
		return zpgMode
	}
	return wideMode
}
