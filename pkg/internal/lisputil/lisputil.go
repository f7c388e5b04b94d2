// Package lisputil contains utility functions that aren't essential enough to
// be included in package lisp.
package lisputil

import "github.com/Bike/scheme/pkg/lisp"

// Args destructures args, which must be a proper list of exactly n elements.
// The three ways a list can fail to match are reported as distinct errors:
// a list that ends early is *lisp.NotEnoughArgsError, a list with pairs left
// over is *lisp.TooManyArgsError, and a list ending in an atom other than the
// empty list is *lisp.DottedArgsError.  Errors reference params and the whole
// of args.
func Args(params, args lisp.LVal, n int) ([]lisp.LVal, error) {
	vals := make([]lisp.LVal, 0, n)
	it := lisp.NewListIterator(args)
	for it.Next() {
		if len(vals) == n {
			return nil, &lisp.TooManyArgsError{Params: params, Args: args}
		}
		vals = append(vals, it.Value())
	}
	if it.Err() != nil {
		return nil, &lisp.DottedArgsError{Params: params, Args: args}
	}
	if len(vals) < n {
		return nil, &lisp.NotEnoughArgsError{Params: params, Args: args}
	}
	return vals, nil
}
