package lisp

import "fmt"

// EvalError is implemented by every error evaluation reports for bad user
// input.  Use errors.As to recover the concrete type.
type EvalError interface {
	error
	evalError()
}

// UnboundError is returned when a symbol has no binding.
type UnboundError struct {
	Name LVal
}

func (err *UnboundError) Error() string {
	return fmt.Sprintf("unbound symbol: %v", err.Name)
}

// ImproperListError is returned when a proper list was required.  Form is
// the whole list, not just its offending tail.
type ImproperListError struct {
	Form LVal
}

func (err *ImproperListError) Error() string {
	return fmt.Sprintf("improper list: %v", err.Form)
}

// NotEnoughArgsError is returned when an argument list ends before every
// parameter was bound.  Params and Args are the full lists of the call.
type NotEnoughArgsError struct {
	Params LVal
	Args   LVal
}

func (err *NotEnoughArgsError) Error() string {
	return fmt.Sprintf("not enough arguments: %v given %v", err.Params, err.Args)
}

// TooManyArgsError is returned when arguments remain after every parameter
// was bound.
type TooManyArgsError struct {
	Params LVal
	Args   LVal
}

func (err *TooManyArgsError) Error() string {
	return fmt.Sprintf("too many arguments: %v given %v", err.Params, err.Args)
}

// DottedArgsError is returned when an argument list ends in an atom other
// than the empty list.
type DottedArgsError struct {
	Params LVal
	Args   LVal
}

func (err *DottedArgsError) Error() string {
	return fmt.Sprintf("dotted argument list: %v given %v", err.Params, err.Args)
}

// NotCombinerError is returned when the value in operator position cannot be
// combined.
type NotCombinerError struct {
	Value LVal
}

func (err *NotCombinerError) Error() string {
	return fmt.Sprintf("not a combiner: %v", err.Value)
}

// NotAPairError is returned when a pair was required.
type NotAPairError struct {
	Value LVal
}

func (err *NotAPairError) Error() string {
	return fmt.Sprintf("not a pair: %v", err.Value)
}

// NotBooleanError is returned when a condition does not evaluate to a
// boolean.
type NotBooleanError struct {
	Value LVal
}

func (err *NotBooleanError) Error() string {
	return fmt.Sprintf("not a boolean: %v", err.Value)
}

func (*UnboundError) evalError()       {}
func (*ImproperListError) evalError()  {}
func (*NotEnoughArgsError) evalError() {}
func (*TooManyArgsError) evalError()   {}
func (*DottedArgsError) evalError()    {}
func (*NotCombinerError) evalError()   {}
func (*NotAPairError) evalError()      {}
func (*NotBooleanError) evalError()    {}

// InvariantError describes a broken internal invariant, such as a malformed
// environment.  Invariantf panics with it; eval.EvalProtected recovers it
// and returns it as an error.
type InvariantError struct {
	Msg string
}

func (err *InvariantError) Error() string {
	return "internal error: " + err.Msg
}

// Invariantf panics with an *InvariantError.
func Invariantf(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
