// Package kerneltest runs tables of expressions against fresh environments
// and compares their rendered results.
package kerneltest

import (
	"testing"

	"github.com/Bike/scheme/pkg/eval"
	"github.com/Bike/scheme/pkg/ground"
	"github.com/Bike/scheme/pkg/lisp"
	"github.com/Bike/scheme/pkg/reader"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// in one environment.
type TestSequence []struct {
	Expr   string // an expression
	Result string // the rendered result, or the error message
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated ground
// environments.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env := ground.Ground()
		for j, expr := range test.TestSequence {
			v, err := reader.Read(expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			result := render(eval.EvalProtected(v, env))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// render returns the rendering of v, or the message of err when err is not
// nil.
func render(v lisp.LVal, err error) string {
	if err != nil {
		return err.Error()
	}
	return v.String()
}
