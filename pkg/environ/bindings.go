package environ

import (
	"github.com/Bike/scheme/pkg/lisp"
)

// Bind returns env extended by binding the parameter list params to the
// argument list args, walking both in lockstep.
//
// A symbol in params binds the head of args.  A bare symbol in tail position
// binds the entire remaining argument list, which is how variadic parameter
// lists are written:
//
//	(x y)      x and y bound to the two arguments
//	(x . rest) x bound to the first argument, rest to the others
//	args       args bound to the list of all arguments
//
// Bind returns *lisp.NotEnoughArgsError or *lisp.TooManyArgsError when the
// lists don't match; the errors reference the complete params and args.  A
// params value that is neither a symbol, a pair, nor the empty list (or a
// pair holding a non-symbol in binding position) cannot be produced by a
// well-formed lambda, and Bind panics with a *lisp.InvariantError.
func Bind(env, params, args lisp.LVal) (lisp.LVal, error) {
	ps, vs := params, args
	for {
		switch ps.Type() {
		case lisp.LEmpty:
			if !lisp.IsEmpty(vs) {
				return lisp.Empty(), &lisp.TooManyArgsError{Params: params, Args: args}
			}
			return env, nil
		case lisp.LSymbol:
			return Extend(env, ps, vs), nil
		case lisp.LCons:
			p, _ := lisp.GetConsData(ps)
			if p.CAR.Type() != lisp.LSymbol {
				lisp.Invariantf("bad lambda list %v", params)
			}
			v, ok := lisp.GetConsData(vs)
			if !ok {
				return lisp.Empty(), &lisp.NotEnoughArgsError{Params: params, Args: args}
			}
			env = Extend(env, p.CAR, v.CAR)
			ps, vs = p.CDR, v.CDR
		default:
			lisp.Invariantf("bad lambda list %v", params)
		}
	}
}
