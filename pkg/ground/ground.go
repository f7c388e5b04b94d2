// Package ground defines the primitive combiners and the ground environment
// holding them.
package ground

import (
	"github.com/Bike/scheme/pkg/environ"
	"github.com/Bike/scheme/pkg/eval"
	"github.com/Bike/scheme/pkg/internal/lisputil"
	"github.com/Bike/scheme/pkg/lisp"
)

type primitive struct {
	name   string
	params []string
	app    lisp.ApplicativeFunc
	op     lisp.OperativeFunc
}

func applicative(name string, params []string, fn lisp.ApplicativeFunc) primitive {
	return primitive{name: name, params: params, app: fn}
}

func operative(name string, params []string, fn lisp.OperativeFunc) primitive {
	return primitive{name: name, params: params, op: fn}
}

var primitives = []primitive{
	applicative("cons", []string{"car", "cdr"}, builtinCons),
	applicative("car", []string{"cons"}, builtinCAR),
	applicative("cdr", []string{"cons"}, builtinCDR),
	applicative("eq?", []string{"o1", "o2"}, builtinEq),
	operative("if", []string{"condition", "then", "else"}, opIf),
	operative("quote", []string{"thing"}, opQuote),
	operative("lambda", []string{"lambda-list", "body"}, opLambda),
}

// Ground returns a new environment binding each primitive combiner to its
// name.
func Ground() lisp.LVal {
	env := environ.Empty()
	for _, p := range primitives {
		env = environ.Extend(env, lisp.Symbol(p.name), p.combiner())
	}
	return env
}

func (p primitive) combiner() lisp.LVal {
	params := make([]lisp.LVal, len(p.params))
	for i := range p.params {
		params[i] = lisp.Symbol(p.params[i])
	}
	if p.op != nil {
		return lisp.Operative(p.name, lisp.List(params...), p.op)
	}
	return lisp.Applicative(p.name, lisp.List(params...), p.app)
}

func builtinCons(params, args lisp.LVal) (lisp.LVal, error) {
	xs, err := lisputil.Args(params, args, 2)
	if err != nil {
		return lisp.Empty(), err
	}
	return lisp.Cons(xs[0], xs[1]), nil
}

func builtinCAR(params, args lisp.LVal) (lisp.LVal, error) {
	xs, err := lisputil.Args(params, args, 1)
	if err != nil {
		return lisp.Empty(), err
	}
	car, ok := lisp.GetCAR(xs[0])
	if !ok {
		return lisp.Empty(), &lisp.NotAPairError{Value: xs[0]}
	}
	return car, nil
}

func builtinCDR(params, args lisp.LVal) (lisp.LVal, error) {
	xs, err := lisputil.Args(params, args, 1)
	if err != nil {
		return lisp.Empty(), err
	}
	cdr, ok := lisp.GetCDR(xs[0])
	if !ok {
		return lisp.Empty(), &lisp.NotAPairError{Value: xs[0]}
	}
	return cdr, nil
}

func builtinEq(params, args lisp.LVal) (lisp.LVal, error) {
	xs, err := lisputil.Args(params, args, 2)
	if err != nil {
		return lisp.Empty(), err
	}
	return lisp.Bool(lisp.Equal(xs[0], xs[1])), nil
}

func opIf(params, operands, env lisp.LVal) (lisp.LVal, error) {
	xs, err := lisputil.Args(params, operands, 3)
	if err != nil {
		return lisp.Empty(), err
	}
	cond, err := eval.Eval(xs[0], env)
	if err != nil {
		return lisp.Empty(), err
	}
	truth, ok := lisp.GetBool(cond)
	if !ok {
		return lisp.Empty(), &lisp.NotBooleanError{Value: cond}
	}
	if truth {
		return eval.Eval(xs[1], env)
	}
	return eval.Eval(xs[2], env)
}

func opQuote(params, operands, env lisp.LVal) (lisp.LVal, error) {
	xs, err := lisputil.Args(params, operands, 1)
	if err != nil {
		return lisp.Empty(), err
	}
	return xs[0], nil
}

func opLambda(params, operands, env lisp.LVal) (lisp.LVal, error) {
	xs, err := lisputil.Args(params, operands, 2)
	if err != nil {
		return lisp.Empty(), err
	}
	return lisp.Closure(xs[1], xs[0], env), nil
}
