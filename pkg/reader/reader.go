/*
Package reader parses S-expression source text into lisp values.

	expr    := <list> | <quoted> | <atom>
	list    := '(' <expr>* ')' | '(' <expr>+ '.' <expr> ')'
	quoted  := '\'' <expr>
	atom    := /[^[:space:]().']+/
	integer := /[+-]?[0-9]+/
	boolean := '#t' | '#f'

An atom is an integer if it matches the integer pattern in full, a boolean if
it is exactly #t or #f, and a symbol otherwise.  Atoms must be valid UTF-8.  A quoted expression 'x is
read as the two element list (quote x).
*/
package reader

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Bike/scheme/pkg/lisp"
	parsec "github.com/prataprc/goparsec"
)

const (
	nodeInvalid nodeType = iota
	nodeAtom
	nodeList
	nodeTail
	nodeQuote
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeAtom:    "ATOM",
	nodeList:    "LIST",
	nodeTail:    "TAIL",
	nodeQuote:   "QUOTE",
}

var quoteSymbol = lisp.Symbol("quote")

// Read parses exactly one expression from text.  Leading and trailing
// whitespace is ignored; any other text surrounding the expression is a
// *ParseError.
func Read(text string) (lisp.LVal, error) {
	src := strings.TrimSpace(text)
	if src == "" {
		return lisp.Empty(), &ParseError{Msg: "no expression"}
	}
	s := parsec.NewScanner([]byte(src))
	v, s, err := readOne(newParsecParser(), src, s)
	if err != nil {
		return lisp.Empty(), err
	}
	if !s.Endof() {
		return lisp.Empty(), &ParseError{Pos: skipSpace(src, s.GetCursor()), Msg: "unexpected text after expression"}
	}
	return v, nil
}

// ReadAll parses a whitespace separated sequence of expressions from text.
func ReadAll(text string) ([]lisp.LVal, error) {
	src := strings.TrimSpace(text)
	s := parsec.NewScanner([]byte(src))
	parser := newParsecParser()
	var vals []lisp.LVal
	for !s.Endof() {
		var v lisp.LVal
		var err error
		v, s, err = readOne(parser, src, s)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func readOne(parser parsec.Parser, src string, s parsec.Scanner) (lisp.LVal, parsec.Scanner, error) {
	start := s.GetCursor()
	root, news := parser(s)
	if root == nil {
		pos, msg, ok := locateError(src, start)
		if !ok {
			pos, msg = start, "syntax error"
		}
		return lisp.Empty(), s, &ParseError{Pos: pos, Msg: msg}
	}
	v, err := getLVal(root)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Pos = start
			if pos, msg, ok := locateError(src, start); ok {
				perr.Pos, perr.Msg = pos, msg
			}
		}
		return lisp.Empty(), s, err
	}
	return v, news, nil
}

// locateError scans the expression beginning at offset start of src and
// returns the offset of the first token that cannot appear where it does,
// with a description.  locateError returns false if the expression is well
// formed.
func locateError(src string, start int) (pos int, msg string, ok bool) {
	type frame struct {
		quote bool // a quote waiting for its expression
		n     int  // elements read before any dot
		dot   bool
		tail  bool // the expression following the dot has been read
	}
	var stack []frame
	i := start
	for {
		i = skipSpace(src, i)
		if i >= len(src) {
			return i, "unexpected end of input", true
		}
		if n := len(stack); n > 0 && stack[n-1].tail && src[i] != ')' {
			return i, "expected ')' after dotted tail", true
		}
		done := false
		switch src[i] {
		case '(':
			stack = append(stack, frame{})
			i++
		case '\'':
			stack = append(stack, frame{quote: true})
			i++
		case ')':
			n := len(stack)
			if n == 0 || stack[n-1].quote || (stack[n-1].dot && !stack[n-1].tail) {
				return i, "unexpected ')'", true
			}
			stack = stack[:n-1]
			i++
			done = true
		case '.':
			n := len(stack)
			if n == 0 || stack[n-1].quote || stack[n-1].dot || stack[n-1].n == 0 {
				return i, "unexpected '.'", true
			}
			stack[n-1].dot = true
			i++
		default:
			j := i
			for j < len(src) && !isDelimiter(src[j]) {
				j++
			}
			if !utf8.ValidString(src[i:j]) {
				return i, "invalid UTF-8 in atom", true
			}
			i = j
			done = true
		}
		for done {
			n := len(stack)
			switch {
			case n == 0:
				return 0, "", false
			case stack[n-1].quote:
				stack = stack[:n-1]
			case stack[n-1].dot:
				stack[n-1].tail = true
				done = false
			default:
				stack[n-1].n++
				done = false
			}
		}
	}
}

func skipSpace(src string, i int) int {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '.', '\'':
		return true
	}
	return isSpace(c)
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	dot := parsec.Atom(".", "DOT")
	q := parsec.Atom("'", "QUOTE")
	atom := parsec.Token(`[^\s().']+`, "ATOM")

	var expr parsec.Parser // forward declaration allows for recursive parsing
	term := parsec.OrdChoice(astNode(nodeAtom), atom)
	// The grammar allows any number of dotted tails so that a misplaced dot
	// is reported by newAST rather than as an unmatched paren.
	tail := parsec.And(astNode(nodeTail), dot, &expr)
	list := parsec.And(astNode(nodeList),
		openP,
		parsec.Kleene(nil, &expr),
		parsec.Kleene(nil, tail),
		closeP,
	)
	quoted := parsec.And(astNode(nodeQuote), q, &expr)
	expr = parsec.OrdChoice(nil, term, list, quoted)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

// dottedTail is the node built for the '.' <expr> suffix of a list.
type dottedTail struct {
	v lisp.LVal
}

// newAST builds the node for a successful match.  Nodes are lisp.LVal
// values, dottedTail values or errors.  An error node is carried up to the
// root unchanged so the first error found is the one reported.
func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	for _, n := range nodes {
		if err, ok := n.(error); ok {
			return err
		}
	}
	switch typ {
	case nodeAtom:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return &ParseError{Msg: "invalid atom"}
		}
		return atomLVal(term.Value)
	case nodeList:
		var elems []lisp.LVal
		var tails []lisp.LVal
		for _, c := range nodes {
			switch c := c.(type) {
			case lisp.LVal:
				elems = append(elems, c)
			case dottedTail:
				tails = append(tails, c.v)
			}
		}
		switch {
		case len(tails) == 0:
			return lisp.List(elems...)
		case len(tails) > 1:
			return &ParseError{Msg: "more than one dot in list"}
		case len(elems) == 0:
			return &ParseError{Msg: "dot without preceding expression"}
		}
		v := tails[0]
		for i := len(elems) - 1; i >= 0; i-- {
			v = lisp.Cons(elems[i], v)
		}
		return v
	case nodeTail:
		for _, c := range nodes {
			if v, ok := c.(lisp.LVal); ok {
				return dottedTail{v}
			}
		}
		return &ParseError{Msg: "dot without following expression"}
	case nodeQuote:
		for _, c := range nodes {
			if v, ok := c.(lisp.LVal); ok {
				return lisp.List(quoteSymbol, v)
			}
		}
		return &ParseError{Msg: "quote without expression"}
	default:
		return &ParseError{Msg: "unknown node type " + typ.String()}
	}
}

// atomLVal classifies the text of an atom.
func atomLVal(text string) parsec.ParsecNode {
	switch {
	case !utf8.ValidString(text):
		return &ParseError{Msg: "invalid UTF-8 in atom"}
	case text == "#t":
		return lisp.True()
	case text == "#f":
		return lisp.False()
	case isInteger(text):
		x, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return &NumberFormatError{Text: text, Err: err}
		}
		return lisp.Int(x)
	default:
		return lisp.Symbol(text)
	}
}

func isInteger(text string) bool {
	if strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for _, c := range text {
		if c < '0' || '9' < c {
			return false
		}
	}
	return true
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func getLVal(root parsec.ParsecNode) (lisp.LVal, error) {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		return lisp.Empty(), &ParseError{Msg: "no expression"}
	}
	switch node := nodes[0].(type) {
	case lisp.LVal:
		return node, nil
	case error:
		return lisp.Empty(), node
	default:
		return lisp.Empty(), &ParseError{Msg: "no expression"}
	}
}
