package lisp

// ApplicativeFunc implements an applicative primitive.  It receives the
// primitive's parameter list and the list of evaluated arguments.
type ApplicativeFunc func(params, args LVal) (LVal, error)

// OperativeFunc implements an operative primitive.  It receives the
// primitive's parameter list, the unevaluated operand list and the
// environment of the call.
type OperativeFunc func(params, operands, env LVal) (LVal, error)

// ApplicativeData backs LApplicative values.
type ApplicativeData struct {
	// Name is the name the primitive was defined under.  It is informational
	// only.
	Name string
	// Params describes the expected arguments, e.g. (car cdr).  It is used in
	// arity errors.
	Params LVal
	Fn     ApplicativeFunc
}

// OperativeData backs LOperative values.
type OperativeData struct {
	Name   string
	Params LVal
	Fn     OperativeFunc
}

// ClosureData backs LClosure values.
type ClosureData struct {
	Body   LVal
	Params LVal
	Env    LVal
}

// Applicative returns a new applicative primitive.
func Applicative(name string, params LVal, fn ApplicativeFunc) LVal {
	return LVal{
		typ: LApplicative,
		Native: &ApplicativeData{
			Name:   name,
			Params: params,
			Fn:     fn,
		},
	}
}

// GetApplicative returns the data backing v.
// GetApplicative returns false if v is not LApplicative.
func GetApplicative(v LVal) (*ApplicativeData, bool) {
	if v.typ != LApplicative {
		return nil, false
	}
	return v.Native.(*ApplicativeData), true
}

// Operative returns a new operative primitive.
func Operative(name string, params LVal, fn OperativeFunc) LVal {
	return LVal{
		typ: LOperative,
		Native: &OperativeData{
			Name:   name,
			Params: params,
			Fn:     fn,
		},
	}
}

// GetOperative returns the data backing v.
// GetOperative returns false if v is not LOperative.
func GetOperative(v LVal) (*OperativeData, bool) {
	if v.typ != LOperative {
		return nil, false
	}
	return v.Native.(*OperativeData), true
}

// Closure returns a combiner that evaluates body in env extended by binding
// params to its arguments.  The shape of params is not checked here; it is
// checked when the closure is called.
func Closure(body, params, env LVal) LVal {
	return LVal{
		typ: LClosure,
		Native: &ClosureData{
			Body:   body,
			Params: params,
			Env:    env,
		},
	}
}

// GetClosure returns the data backing v.
// GetClosure returns false if v is not LClosure.
func GetClosure(v LVal) (*ClosureData, bool) {
	if v.typ != LClosure {
		return nil, false
	}
	return v.Native.(*ClosureData), true
}
