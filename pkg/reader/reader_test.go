package reader

import (
	"errors"
	"strconv"
	"testing"

	"github.com/Bike/scheme/pkg/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		source string
		result string
	}{
		{"3", "3"},
		{"-17", "-17"},
		{"+5", "5"},
		{"0", "0"},
		{"#t", "#t"},
		{"#f", "#f"},
		{"foo", "foo"},
		{"eq?", "eq?"},
		{"+", "+"},
		{"-", "-"},
		{"12abc", "12abc"},
		{"#tx", "#tx"},
		{"()", "()"},
		{"( )", "()"},
		{"(1 2 3)", "(1 2 3)"},
		{"(1 (2 3) ())", "(1 (2 3) ())"},
		{"(a . b)", "(a . b)"},
		{"(a b . c)", "(a b . c)"},
		{"(a . (b c))", "(a b c)"},
		{"(a . ())", "(a)"},
		{"  (cons\n 1\t2)  \n", "(cons 1 2)"},
		{"'x", "(quote x)"},
		{"'(1 2 3)", "(quote (1 2 3))"},
		{"''x", "(quote (quote x))"},
		{"(car '(a . b))", "(car (quote (a . b)))"},
		{"((lambda (x) (lambda (y) x)) 1)", "((lambda (x) (lambda (y) x)) 1)"},
	}
	for _, test := range tests {
		v, err := Read(test.source)
		if assert.NoError(t, err, "source: %q", test.source) {
			assert.Equal(t, test.result, v.String(), "source: %q", test.source)
		}
	}
}

func TestRead_types(t *testing.T) {
	v, err := Read("42")
	require.NoError(t, err)
	x, ok := lisp.GetInt(v)
	assert.True(t, ok)
	assert.Equal(t, int64(42), x)

	v, err = Read("#f")
	require.NoError(t, err)
	truth, ok := lisp.GetBool(v)
	assert.True(t, ok)
	assert.False(t, truth)

	v, err = Read("x")
	require.NoError(t, err)
	assert.True(t, lisp.Equal(lisp.Symbol("x"), v))

	v, err = Read("(a b . c)")
	require.NoError(t, err)
	expect := lisp.Cons(lisp.Symbol("a"), lisp.Cons(lisp.Symbol("b"), lisp.Symbol("c")))
	assert.True(t, lisp.Equal(expect, v))
}

func TestRead_quote(t *testing.T) {
	v, err := Read("'(1 2 3)")
	require.NoError(t, err)
	expect := lisp.List(lisp.Symbol("quote"), lisp.List(lisp.Int(1), lisp.Int(2), lisp.Int(3)))
	assert.True(t, lisp.Equal(expect, v))
}

func TestRead_parseError(t *testing.T) {
	for _, source := range []string{
		"",
		"   ",
		"(",
		"(1 2",
		")",
		"(1))",
		"1 2",
		".",
		"( . a)",
		"(a . )",
		"(a . b c)",
		"(a . b . c)",
		"'",
		"(')",
		"\xff",
		"(a \xfe\xff)",
	} {
		_, err := Read(source)
		var perr *ParseError
		if assert.True(t, errors.As(err, &perr), "source: %q: %v", source, err) {
			var rerr Error
			assert.True(t, errors.As(err, &rerr), "source: %q", source)
		}
	}
}

func TestRead_parseErrorPosition(t *testing.T) {
	tests := []struct {
		source string
		pos    int
		msg    string
	}{
		{"(a b) c", 6, "unexpected text after expression"},
		{"(a . b c)", 7, "expected ')' after dotted tail"},
		{"(. a)", 1, "unexpected '.'"},
		{"( . a)", 2, "unexpected '.'"},
		{"(a . )", 5, "unexpected ')'"},
		{"(a . b . c)", 7, "expected ')' after dotted tail"},
		{"((a b) (c . d . e))", 14, "expected ')' after dotted tail"},
		{"(1 2", 4, "unexpected end of input"},
		{"(quote (a ')", 11, "unexpected ')'"},
		{")", 0, "unexpected ')'"},
		{".", 0, "unexpected '.'"},
		{"(a \xff)", 3, "invalid UTF-8 in atom"},
		{"\xffabc", 0, "invalid UTF-8 in atom"},
	}
	for _, test := range tests {
		_, err := Read(test.source)
		var perr *ParseError
		if assert.True(t, errors.As(err, &perr), "source: %q: %v", test.source, err) {
			assert.Equal(t, test.pos, perr.Pos, "source: %q", test.source)
			assert.Equal(t, test.msg, perr.Msg, "source: %q", test.source)
		}
	}
}

func TestRead_utf8(t *testing.T) {
	v, err := Read("(λ café)")
	require.NoError(t, err)
	assert.Equal(t, "(λ café)", v.String())
}

func TestRead_numberFormatError(t *testing.T) {
	for _, source := range []string{
		"9223372036854775808",
		"-9223372036854775809",
		"(1 99999999999999999999999)",
		"'100000000000000000000",
	} {
		_, err := Read(source)
		var nerr *NumberFormatError
		if assert.True(t, errors.As(err, &nerr), "source: %q: %v", source, err) {
			assert.True(t, errors.Is(err, strconv.ErrRange), "source: %q", source)
		}
	}
	v, err := Read("-9223372036854775808")
	if assert.NoError(t, err) {
		assert.Equal(t, "-9223372036854775808", v.String())
	}
}

func TestRead_roundTrip(t *testing.T) {
	for i, v := range []lisp.LVal{
		lisp.Empty(),
		lisp.Int(0),
		lisp.Int(-99),
		lisp.True(),
		lisp.False(),
		lisp.Symbol("lambda"),
		lisp.List(lisp.Int(1), lisp.Int(2), lisp.Int(3)),
		lisp.Cons(lisp.Int(1), lisp.Int(2)),
		lisp.Cons(lisp.Symbol("a"), lisp.Cons(lisp.Empty(), lisp.True())),
		lisp.List(lisp.List(lisp.Empty()), lisp.Cons(lisp.False(), lisp.Symbol("z"))),
		lisp.List(lisp.Symbol("quote"), lisp.Symbol("x")),
	} {
		w, err := Read(v.String())
		if assert.NoError(t, err, "test %d: %v", i, v) {
			assert.True(t, lisp.Equal(v, w), "test %d: %v != %v", i, v, w)
		}
	}
}

func TestReadAll(t *testing.T) {
	vals, err := ReadAll("(cons 1 2)\n'x\n\n  #t ")
	require.NoError(t, err)
	if assert.Len(t, vals, 3) {
		assert.Equal(t, "(cons 1 2)", vals[0].String())
		assert.Equal(t, "(quote x)", vals[1].String())
		assert.Equal(t, "#t", vals[2].String())
	}

	vals, err = ReadAll("   ")
	assert.NoError(t, err)
	assert.Len(t, vals, 0)

	_, err = ReadAll("(a) (b")
	var perr *ParseError
	if assert.True(t, errors.As(err, &perr)) {
		assert.Equal(t, 6, perr.Pos)
	}

	_, err = ReadAll("(a)\n(b . c d)\n(e)")
	if assert.True(t, errors.As(err, &perr)) {
		assert.Equal(t, 11, perr.Pos)
	}
}
