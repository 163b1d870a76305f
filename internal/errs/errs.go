// Package errs provides the line-tagged error value shared by the lexer,
// parser and assembler.
package errs

import "fmt"

// Located is an error that originated at a known source line, or at -1 when
// no source line applies (e.g. file I/O errors).
type Located struct {
	LineNo int
	Where  string // internal file/function tag, e.g. "asm/lexer.go:flush"
	Cause  error
}

func (e *Located) Error() string {
	if e.LineNo < 0 {
		return fmt.Sprintf("%s (%s)", e.Cause, e.Where)
	}
	return fmt.Sprintf("error on line %d: %s (%s)", e.LineNo, e.Cause, e.Where)
}

func (e *Located) Unwrap() error { return e.Cause }

// Line reports the source line this error was detected on, or -1 if none
// applies.
func (e *Located) Line() int { return e.LineNo }

// At tags cause with the source line it was detected on and an internal
// location string identifying the reporting call site.
func At(line int, where string, cause error) error {
	return &Located{LineNo: line, Where: where, Cause: cause}
}

// Atf is At with a formatted cause.
func Atf(line int, where, format string, args ...interface{}) error {
	return At(line, where, fmt.Errorf(format, args...))
}
