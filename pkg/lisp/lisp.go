// Package lisp defines the object model shared by the reader, the evaluator
// and the primitives: a small tagged value type, LVal, from which every datum
// and every combiner is built.
//
// LVal values are immutable once they have been handed out.  Compound values
// reference their parts through pointers so structure is shared, never
// copied, and its lifetime is managed by the Go garbage collector.
package lisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Bike/scheme/pkg/internal/lfmt"
	"github.com/Bike/scheme/pkg/symbol"
)

// LType is the variant tag of an LVal.
type LType uint8

const (
	// LEmpty is the empty list.  It terminates every proper list and every
	// environment.
	LEmpty LType = iota
	// LSymbol is a symbolic name.
	// Schema:
	// 	Data: symbol.ID value
	LSymbol
	// LInt is a signed 64-bit integer.
	// Schema:
	// 	Data: int64 bits
	LInt
	// LBool is a boolean.
	// Schema:
	// 	Data: 0x0 if false and 0x1 otherwise
	LBool
	// LCons is a pair.  Chains of pairs form lists.
	// Schema:
	// 	Native: *ConsData
	LCons
	// LApplicative is a native combiner whose operands are evaluated before
	// it is invoked.
	// Schema:
	// 	Native: *ApplicativeData
	LApplicative
	// LOperative is a native combiner that receives its operands unevaluated
	// along with the calling environment.
	// Schema:
	// 	Native: *OperativeData
	LOperative
	// LClosure is a combiner created by lambda.
	// Schema:
	// 	Native: *ClosureData
	LClosure
)

var ltypeStrings = []string{
	LEmpty:       "empty",
	LSymbol:      "symbol",
	LInt:         "integer",
	LBool:        "boolean",
	LCons:        "pair",
	LApplicative: "applicative",
	LOperative:   "operative",
	LClosure:     "closure",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return fmt.Sprintf("LType(%d)", uint8(t))
	}
	return ltypeStrings[t]
}

// LVal is a lisp value.  The zero LVal is a valid LEmpty value.
type LVal struct {
	typ    LType
	Data   uint64
	Native interface{}
}

// Type returns the variant of v.
func (v LVal) Type() LType {
	return v.typ
}

// String returns the canonical rendering of v.
func (v LVal) String() string {
	var b strings.Builder
	Format(&b, v, symbol.DefaultGlobalTable)
	return b.String()
}

// Empty returns the empty list.
func Empty() LVal {
	return LVal{typ: LEmpty}
}

// IsEmpty returns true if v is LEmpty.
func IsEmpty(v LVal) bool {
	return v.typ == LEmpty
}

// Int returns an LInt value.
func Int(x int64) LVal {
	return LVal{
		typ:  LInt,
		Data: uint64(x),
	}
}

// GetInt returns the integer value of v.
// GetInt returns false if v is not LInt.
func GetInt(v LVal) (int64, bool) {
	if v.typ != LInt {
		return 0, false
	}
	return int64(v.Data), true
}

// Bool returns an LBool with the truth value of ok.
func Bool(ok bool) LVal {
	if ok {
		return True()
	}
	return False()
}

// True returns #t.
func True() LVal {
	return LVal{
		typ:  LBool,
		Data: 1,
	}
}

// False returns #f.
func False() LVal {
	return LVal{typ: LBool}
}

// GetBool returns the truth value of v.
// GetBool returns false as its second value if v is not LBool.
func GetBool(v LVal) (truth bool, ok bool) {
	if v.typ != LBool {
		return false, false
	}
	return v.Data != 0, true
}

// Symbol interns name in symbol.DefaultGlobalTable and returns the
// corresponding LSymbol.
func Symbol(name string) LVal {
	return SymbolID(symbol.Intern(name))
}

// SymbolID returns an LSymbol for an already interned id.
func SymbolID(id symbol.ID) LVal {
	return LVal{
		typ:  LSymbol,
		Data: uint64(id),
	}
}

// GetSymbol extracts the symbol.ID from v.
// GetSymbol returns false if v is not LSymbol.
func GetSymbol(v LVal) (symbol.ID, bool) {
	if v.typ != LSymbol {
		return 0, false
	}
	return symbol.ID(v.Data), true
}

// SymbolName returns the name of symbol v.
// SymbolName returns false if v is not LSymbol.
func SymbolName(v LVal) (string, bool) {
	id, ok := GetSymbol(v)
	if !ok {
		return "", false
	}
	return symbol.String(id, symbol.DefaultGlobalTable), true
}

// Equal reports whether v1 and v2 are structurally equal.  Pairs are compared
// element by element, atoms by content.  Combiners are equal only to
// themselves: two combiners are equal when they share the same underlying
// data.
func Equal(v1 LVal, v2 LVal) bool {
	for {
		if v1.typ != v2.typ {
			return false
		}
		switch v1.typ {
		case LEmpty:
			return true
		case LSymbol, LInt, LBool:
			return v1.Data == v2.Data
		case LCons:
			c1, c2 := v1.Native.(*ConsData), v2.Native.(*ConsData)
			if c1 == c2 {
				return true
			}
			if !Equal(c1.CAR, c2.CAR) {
				return false
			}
			// iterate down the spine so long lists don't grow the stack
			v1, v2 = c1.CDR, c2.CDR
		case LApplicative, LOperative, LClosure:
			return v1.Native == v2.Native
		default:
			Invariantf("unrecognized type: %v", v1.typ)
		}
	}
}

// Format writes the canonical rendering of v to w, translating symbols using
// table.
func Format(w io.Writer, v LVal, table symbol.Table) (int, error) {
	lw := lfmt.NewWriter(w)
	format(lw, v, symbol.ResolveUnknown("", table))
	return lw.N(), lw.Err()
}

func format(w *lfmt.Writer, v LVal, table symbol.Table) {
	switch v.typ {
	case LEmpty:
		w.WriteString("()")
	case LSymbol:
		id, _ := GetSymbol(v)
		sym, _ := table.Symbol(id)
		w.WriteString(sym)
	case LInt:
		x, _ := GetInt(v)
		w.WriteString(strconv.FormatInt(x, 10))
	case LBool:
		if v.Data != 0 {
			w.WriteString("#t")
		} else {
			w.WriteString("#f")
		}
	case LCons:
		formatCons(w, v, table)
	case LApplicative:
		w.WriteString("#<APPLICATIVE>")
	case LOperative:
		w.WriteString("#<OPERATIVE>")
	case LClosure:
		w.WriteString("#<CLOSURE>")
	default:
		fmt.Fprintf(w, "#<INVALID %d>", uint8(v.typ))
	}
}
