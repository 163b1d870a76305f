package asm

import (
	"strconv"
	"unicode"

	"github.com/nesforge/nes65/internal/errs"
)

// lexState is the lexer's small state machine, named after the states
// spec.md §4.3 enumerates: awaiting, reading identifier, reading decimal,
// reading hex, reading binary, reading directive, reading comment.
type lexState byte

const (
	stateAwaiting lexState = iota
	stateIdent
	stateDecimal
	stateHex
	stateBinary
	stateDirective
	stateComment
)

// Lex tokenizes source into a flat token stream, one pass over the
// characters with no backtracking.
func Lex(source string) ([]Token, error) {
	var (
		out   []Token
		state = stateAwaiting
		acc   []rune
		line  = 1
	)

	flush := func() error {
		if state == stateComment || state == stateAwaiting {
			acc = acc[:0]
			return nil
		}
		switch state {
		case stateIdent:
			out = append(out, identToken(string(acc), line))
		case stateDecimal, stateHex, stateBinary:
			n, err := strconv.ParseUint(string(acc), radix(state), 16)
			if err != nil {
				return errs.Atf(line, "asm/lexer.go:flush", "malformed number %q: %v", string(acc), err)
			}
			out = append(out, Token{Kind: KindNumber, Num: uint16(n), Line: line})
		case stateDirective:
			out = append(out, Token{Kind: KindDirective, Text: string(acc), Line: line})
		}
		state = stateAwaiting
		acc = acc[:0]
		return nil
	}

	push := func(k Kind) error {
		if state == stateComment {
			return nil
		}
		if err := flush(); err != nil {
			return err
		}
		out = append(out, Token{Kind: k, Line: line})
		return nil
	}

	runes := []rune(source)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '\n':
			if state == stateComment {
				state = stateAwaiting // a comment ends at the newline, which is still emitted
			}
			if err := push(KindNewline); err != nil {
				return nil, err
			}
			line++
			state = stateAwaiting
		case '.':
			if err := flush(); err != nil {
				return nil, err
			}
			if state != stateComment {
				state = stateDirective
			}
		case '(':
			if err := push(KindParenOpen); err != nil {
				return nil, err
			}
		case ')':
			if err := push(KindParenClose); err != nil {
				return nil, err
			}
		case ',':
			if err := push(KindComma); err != nil {
				return nil, err
			}
		case '#':
			if err := push(KindHash); err != nil {
				return nil, err
			}
		case ':':
			if err := push(KindColon); err != nil {
				return nil, err
			}
		case ' ', '\t', '\r':
			if err := flush(); err != nil {
				return nil, err
			}
		case ';':
			if state != stateComment {
				if err := flush(); err != nil {
					return nil, err
				}
				state = stateComment
			}
		case '$':
			if state != stateComment {
				if err := flush(); err != nil {
					return nil, err
				}
				state = stateHex
			}
		case '%':
			if state != stateComment {
				if err := flush(); err != nil {
					return nil, err
				}
				state = stateBinary
			}
		default:
			switch state {
			case stateAwaiting:
				switch {
				case unicode.IsDigit(c):
					acc = append(acc, c)
					state = stateDecimal
				case unicode.IsLetter(c) || c == '_':
					acc = append(acc, c)
					state = stateIdent
				default:
					return nil, errs.Atf(line, "asm/lexer.go:default", "unexpected character %q", c)
				}
			case stateComment:
				// discarded until newline
			default:
				acc = append(acc, c)
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func radix(s lexState) int {
	switch s {
	case stateHex:
		return 16
	case stateBinary:
		return 2
	default:
		return 10
	}
}

// identToken resolves the reserved register names A/X/Y to their dedicated
// kinds, giving them precedence over a generic identifier the way spec.md
// §4.3 requires.
func identToken(text string, line int) Token {
	switch text {
	case "A":
		return Token{Kind: KindRegisterA, Text: text, Line: line}
	case "X":
		return Token{Kind: KindRegisterX, Text: text, Line: line}
	case "Y":
		return Token{Kind: KindRegisterY, Text: text, Line: line}
	default:
		return Token{Kind: KindIdent, Text: text, Line: line}
	}
}
