// Package eval implements the evaluator.
//
// A form is evaluated against an environment (see package environ).  A pair
// is a combination: its first element is evaluated to obtain a combiner and
// the combiner is then combined with the rest of the pair, the operands.
// Symbols evaluate to their bindings and every other value evaluates to
// itself.
//
// There are three kinds of combiner.  An applicative is a native function
// whose operands are evaluated, left to right, before it is called.  An
// operative is a native function that receives its operands unevaluated
// together with the environment of the combination; the special forms if,
// quote and lambda are operatives.  A closure is created by lambda; its
// operands are evaluated and its body is evaluated in its captured
// environment extended with the parameter bindings.
package eval

import (
	"github.com/Bike/scheme/pkg/environ"
	"github.com/Bike/scheme/pkg/lisp"
)

// Eval evaluates form in env.
func Eval(form, env lisp.LVal) (lisp.LVal, error) {
	switch form.Type() {
	case lisp.LCons:
		data, _ := lisp.GetConsData(form)
		combiner, err := Eval(data.CAR, env)
		if err != nil {
			return lisp.Empty(), err
		}
		return Combine(combiner, data.CDR, env)
	case lisp.LSymbol:
		v, ok := environ.Lookup(env, form)
		if !ok {
			return lisp.Empty(), &lisp.UnboundError{Name: form}
		}
		return v, nil
	default:
		return form, nil
	}
}

// Combine applies combiner to the operand list operands in env.
func Combine(combiner, operands, env lisp.LVal) (lisp.LVal, error) {
	switch combiner.Type() {
	case lisp.LApplicative:
		app, _ := lisp.GetApplicative(combiner)
		args, err := Evlis(operands, env)
		if err != nil {
			return lisp.Empty(), err
		}
		return app.Fn(app.Params, args)
	case lisp.LOperative:
		op, _ := lisp.GetOperative(combiner)
		return op.Fn(op.Params, operands, env)
	case lisp.LClosure:
		clo, _ := lisp.GetClosure(combiner)
		args, err := Evlis(operands, env)
		if err != nil {
			return lisp.Empty(), err
		}
		local, err := environ.Bind(clo.Env, clo.Params, args)
		if err != nil {
			return lisp.Empty(), err
		}
		return Eval(clo.Body, local)
	default:
		return lisp.Empty(), &lisp.NotCombinerError{Value: combiner}
	}
}

// Evlis evaluates each element of the list forms, left to right, and returns
// a new list of the results.  Evaluation stops at the first error.  If forms
// is not a proper list Evlis returns a *lisp.ImproperListError.
func Evlis(forms, env lisp.LVal) (lisp.LVal, error) {
	b := lisp.NewListBuilder()
	it := lisp.NewListIterator(forms)
	for it.Next() {
		v, err := Eval(it.Value(), env)
		if err != nil {
			return lisp.Empty(), err
		}
		b.Append(v)
	}
	if err := it.Err(); err != nil {
		return lisp.Empty(), err
	}
	return b.List(), nil
}

// EvalProtected is like Eval but an internal invariant fault raised during
// evaluation is recovered and returned as a *lisp.InvariantError.  Any other
// panic is propagated.
func EvalProtected(form, env lisp.LVal) (v lisp.LVal, err error) {
	defer func() {
		if r := recover(); r != nil {
			ierr, ok := r.(*lisp.InvariantError)
			if !ok {
				panic(r)
			}
			v, err = lisp.Empty(), ierr
		}
	}()
	return Eval(form, env)
}
