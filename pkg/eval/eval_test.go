package eval

import (
	"errors"
	"testing"

	"github.com/Bike/scheme/pkg/environ"
	"github.com/Bike/scheme/pkg/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is an applicative that appends its arguments to calls.
type recorder struct {
	calls []lisp.LVal
}

func (r *recorder) combiner() lisp.LVal {
	return lisp.Applicative("record", lisp.Symbol("args"), func(params, args lisp.LVal) (lisp.LVal, error) {
		r.calls = append(r.calls, args)
		return args, nil
	})
}

func failing(msg string) lisp.LVal {
	return lisp.Applicative("fail", lisp.Empty(), func(params, args lisp.LVal) (lisp.LVal, error) {
		return lisp.Empty(), errors.New(msg)
	})
}

func testEnv(bindings ...lisp.LVal) lisp.LVal {
	env := environ.Empty()
	for i := 0; i+1 < len(bindings); i += 2 {
		env = environ.Extend(env, bindings[i], bindings[i+1])
	}
	return env
}

func TestEval_selfEvaluating(t *testing.T) {
	env := testEnv(lisp.Symbol("x"), lisp.Int(1))
	for _, v := range []lisp.LVal{
		lisp.Int(0),
		lisp.Int(-7),
		lisp.True(),
		lisp.False(),
		lisp.Empty(),
		lisp.Closure(lisp.Empty(), lisp.Empty(), lisp.Empty()),
	} {
		result, err := Eval(v, env)
		if assert.NoError(t, err, "input: %v", v) {
			assert.True(t, lisp.Equal(v, result), "input: %v", v)
		}
	}
}

func TestEval_symbol(t *testing.T) {
	x := lisp.Symbol("x")
	env := testEnv(x, lisp.Int(1), x, lisp.Int(2))
	v, err := Eval(x, env)
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())

	_, err = Eval(lisp.Symbol("zzz"), env)
	var uerr *lisp.UnboundError
	if assert.True(t, errors.As(err, &uerr)) {
		assert.Equal(t, "zzz", uerr.Name.String())
	}
	var eerr lisp.EvalError
	assert.True(t, errors.As(err, &eerr))
}

func TestEval_applicative(t *testing.T) {
	r := &recorder{}
	env := testEnv(
		lisp.Symbol("record"), r.combiner(),
		lisp.Symbol("x"), lisp.Int(1),
		lisp.Symbol("y"), lisp.Int(2),
	)
	form := lisp.List(lisp.Symbol("record"), lisp.Symbol("y"), lisp.Symbol("x"), lisp.Int(3))
	v, err := Eval(form, env)
	require.NoError(t, err)
	assert.Equal(t, "(2 1 3)", v.String())
	require.Len(t, r.calls, 1)

	v, err = Eval(lisp.List(lisp.Symbol("record")), env)
	require.NoError(t, err)
	assert.Equal(t, "()", v.String())
}

func TestEval_operative(t *testing.T) {
	var gotEnv lisp.LVal
	op := lisp.Operative("capture", lisp.Symbol("operands"), func(params, operands, env lisp.LVal) (lisp.LVal, error) {
		gotEnv = env
		return operands, nil
	})
	env := testEnv(lisp.Symbol("capture"), op)
	form := lisp.List(lisp.Symbol("capture"), lisp.Symbol("unbound"), lisp.List(lisp.Int(1), lisp.Int(2)))
	v, err := Eval(form, env)
	require.NoError(t, err)
	assert.Equal(t, "(unbound (1 2))", v.String())
	assert.True(t, lisp.Equal(env, gotEnv))

	// An operative may be passed an improper operand list.
	v, err = Eval(lisp.Cons(lisp.Symbol("capture"), lisp.Int(5)), env)
	require.NoError(t, err)
	assert.Equal(t, "5", v.String())
}

func TestEval_closure(t *testing.T) {
	x := lisp.Symbol("x")
	y := lisp.Symbol("y")
	pair := lisp.Applicative("pair", lisp.List(lisp.Symbol("a"), lisp.Symbol("b")), func(params, args lisp.LVal) (lisp.LVal, error) {
		car, _ := lisp.GetCAR(args)
		cdr, _ := lisp.GetCDR(args)
		cadr, _ := lisp.GetCAR(cdr)
		return lisp.Cons(car, cadr), nil
	})
	captured := testEnv(x, lisp.Int(10), lisp.Symbol("pair"), pair)
	clo := lisp.Closure(lisp.List(lisp.Symbol("pair"), x, y), lisp.List(y), captured)

	// x in the caller's environment does not leak into the closure.
	env := testEnv(lisp.Symbol("f"), clo, x, lisp.Int(99))
	v, err := Eval(lisp.List(lisp.Symbol("f"), x), env)
	require.NoError(t, err)
	assert.Equal(t, "(10 . 99)", v.String())

	_, err = Eval(lisp.List(lisp.Symbol("f")), env)
	var aerr *lisp.NotEnoughArgsError
	assert.True(t, errors.As(err, &aerr))
}

func TestEval_notCombiner(t *testing.T) {
	for _, form := range []lisp.LVal{
		lisp.List(lisp.Int(1), lisp.Int(2)),
		lisp.List(lisp.True()),
		lisp.List(lisp.Empty()),
	} {
		_, err := Eval(form, environ.Empty())
		var cerr *lisp.NotCombinerError
		assert.True(t, errors.As(err, &cerr), "form: %v", form)
	}
}

func TestEvlis(t *testing.T) {
	env := testEnv(lisp.Symbol("x"), lisp.Int(1))
	v, err := Evlis(lisp.Empty(), env)
	require.NoError(t, err)
	assert.True(t, lisp.IsEmpty(v))

	v, err = Evlis(lisp.List(lisp.Symbol("x"), lisp.Int(2), lisp.Symbol("x")), env)
	require.NoError(t, err)
	assert.Equal(t, "(1 2 1)", v.String())

	forms := lisp.Cons(lisp.Symbol("x"), lisp.Cons(lisp.Int(2), lisp.Int(3)))
	_, err = Evlis(forms, env)
	var lerr *lisp.ImproperListError
	if assert.True(t, errors.As(err, &lerr)) {
		assert.True(t, lisp.Equal(forms, lerr.Form))
		assert.EqualError(t, err, "improper list: (x 2 . 3)")
	}
}

func TestEvlis_shortCircuit(t *testing.T) {
	r := &recorder{}
	env := testEnv(
		lisp.Symbol("record"), r.combiner(),
		lisp.Symbol("fail"), failing("boom"),
	)
	record := lisp.List(lisp.Symbol("record"), lisp.Int(1))
	fail := lisp.List(lisp.Symbol("fail"))
	_, err := Evlis(lisp.List(record, fail, record), env)
	assert.EqualError(t, err, "boom")
	assert.Len(t, r.calls, 1)
}

func TestEvalProtected(t *testing.T) {
	x := lisp.Symbol("x")
	bad := lisp.Cons(lisp.Int(1), lisp.Empty())
	_, err := EvalProtected(x, bad)
	var ierr *lisp.InvariantError
	assert.True(t, errors.As(err, &ierr))
	assert.Panics(t, func() { Eval(x, bad) })

	v, err := EvalProtected(x, testEnv(x, lisp.True()))
	require.NoError(t, err)
	assert.Equal(t, "#t", v.String())

	boom := lisp.Applicative("boom", lisp.Empty(), func(params, args lisp.LVal) (lisp.LVal, error) {
		panic("boom")
	})
	env := testEnv(lisp.Symbol("boom"), boom)
	assert.PanicsWithValue(t, "boom", func() {
		EvalProtected(lisp.List(lisp.Symbol("boom")), env)
	})
}
