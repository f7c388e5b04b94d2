// Package environ implements environments as association lists.  An
// environment is a chain of pairs whose elements are (symbol . value) pairs,
// terminated by the empty list.  Environments are never modified: Extend and
// Bind return a new environment that shares the old one as its tail, so a
// closure holding an environment keeps seeing exactly the bindings it
// captured.
package environ

import (
	"github.com/Bike/scheme/pkg/lisp"
)

// Empty returns an environment with no bindings.
func Empty() lisp.LVal {
	return lisp.Empty()
}

// Extend returns env with name bound to v.  The new binding shadows any
// earlier binding of name.
func Extend(env, name, v lisp.LVal) lisp.LVal {
	return lisp.Cons(lisp.Cons(name, v), env)
}

// Lookup returns the value most recently bound to name in env.  Lookup
// returns false if name is unbound.  Lookup panics with a
// *lisp.InvariantError if env is not a well-formed environment.
func Lookup(env, name lisp.LVal) (lisp.LVal, bool) {
	for rest := env; !lisp.IsEmpty(rest); {
		data, ok := lisp.GetConsData(rest)
		if !ok {
			lisp.Invariantf("environment %v is ill-formed", env)
		}
		binding, ok := lisp.GetConsData(data.CAR)
		if !ok || binding.CAR.Type() != lisp.LSymbol {
			lisp.Invariantf("environment %v is ill-formed", env)
		}
		if lisp.Equal(name, binding.CAR) {
			return binding.CDR, true
		}
		rest = data.CDR
	}
	return lisp.Empty(), false
}

// Names returns the names bound in env, most recent first, without
// duplicates.  Names panics like Lookup on a malformed env.
func Names(env lisp.LVal) []string {
	var names []string
	seen := make(map[string]bool)
	for rest := env; !lisp.IsEmpty(rest); {
		data, ok := lisp.GetConsData(rest)
		if !ok {
			lisp.Invariantf("environment %v is ill-formed", env)
		}
		binding, ok := lisp.GetConsData(data.CAR)
		if !ok {
			lisp.Invariantf("environment %v is ill-formed", env)
		}
		name, ok := lisp.SymbolName(binding.CAR)
		if !ok {
			lisp.Invariantf("environment %v is ill-formed", env)
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = data.CDR
	}
	return names
}
