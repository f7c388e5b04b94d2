package reader

import "fmt"

// Error is implemented by every error Read and ReadAll return.
type Error interface {
	error
	readError()
}

// ParseError is returned when text does not match the grammar.  Pos is a
// byte offset into the text stripped of surrounding whitespace: the offset
// of the first offending token, of the end of the text when an expression is
// incomplete, or of the unexpected text following a complete expression.
type ParseError struct {
	Pos int
	Msg string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", err.Pos, err.Msg)
}

// NumberFormatError is returned when an integer literal cannot be represented
// as a 64-bit integer.
type NumberFormatError struct {
	Text string
	Err  error
}

func (err *NumberFormatError) Error() string {
	return fmt.Sprintf("bad integer literal %s: %v", err.Text, err.Err)
}

func (err *NumberFormatError) Unwrap() error {
	return err.Err
}

func (*ParseError) readError()        {}
func (*NumberFormatError) readError() {}
