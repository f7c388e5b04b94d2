package lisp

import (
	"github.com/Bike/scheme/pkg/internal/lfmt"
	"github.com/Bike/scheme/pkg/symbol"
)

// ConsData is the container that backs LCons values.
type ConsData struct {
	CAR LVal
	CDR LVal
}

func makeCons(data *ConsData) LVal {
	return LVal{
		typ:    LCons,
		Native: data,
	}
}

// Cons returns a new pair from head and tail.  If tail is a list then Cons
// returns a list as well.
// 	(cons head tail)
func Cons(head, tail LVal) LVal {
	return makeCons(&ConsData{
		CAR: head,
		CDR: tail,
	})
}

// GetConsData returns ConsData from v.
// GetConsData returns false if v is not LCons.
func GetConsData(v LVal) (*ConsData, bool) {
	if v.typ != LCons {
		return nil, false
	}
	return v.Native.(*ConsData), true
}

// GetCAR returns the first field of pair v.
// GetCAR returns false if v is not LCons.
func GetCAR(v LVal) (LVal, bool) {
	data, ok := GetConsData(v)
	if !ok {
		return Empty(), false
	}
	return data.CAR, true
}

// GetCDR returns the second field of pair v.
// GetCDR returns false if v is not LCons.
func GetCDR(v LVal) (LVal, bool) {
	data, ok := GetConsData(v)
	if !ok {
		return Empty(), false
	}
	return data.CDR, true
}

// List returns a proper list of the elements of v.
func List(v ...LVal) LVal {
	lis := Empty()
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

func formatCons(w *lfmt.Writer, v LVal, table symbol.Table) {
	w.WriteString("(")
	data := v.Native.(*ConsData)
	for {
		format(w, data.CAR, table)
		switch data.CDR.typ {
		case LEmpty:
			w.WriteString(")")
			return
		case LCons:
			w.WriteString(" ")
			data = data.CDR.Native.(*ConsData)
		default:
			w.WriteString(" . ")
			format(w, data.CDR, table)
			w.WriteString(")")
			return
		}
	}
}

// ListBuilder constructs a list front to back.  The cells a ListBuilder
// allocates are only modified before List is called for the last time, so a
// built list must not be shared until construction is complete.
type ListBuilder struct {
	front LVal
	back  *ConsData
}

// NewListBuilder returns an empty ListBuilder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{}
}

// List returns the list of elements appended so far.
func (b *ListBuilder) List() LVal {
	return b.front
}

// Append adds elements to the end of the list.
func (b *ListBuilder) Append(v ...LVal) {
	for i := range v {
		data := &ConsData{v[i], Empty()}
		if b.back == nil {
			b.front = makeCons(data)
		} else {
			b.back.CDR = makeCons(data)
		}
		b.back = data
	}
}

// ListIterator iterates through cons lists
type ListIterator struct {
	list LVal
	v    LVal
	rest LVal
	err  error
}

// NewListIterator returns a ListIterator that will iterate through list v.
func NewListIterator(v LVal) *ListIterator {
	return &ListIterator{
		list: v,
		rest: v,
	}
}

// Value returns the iteration's current value.  Value will return LEmpty if
// Next has not been called.
func (it *ListIterator) Value() LVal {
	return it.v
}

// Next advances the iterator to the next list element.  Next returns false if
// iteration terminated, either because the list had no more elements or
// because a non-list tail was encountered.
func (it *ListIterator) Next() bool {
	if IsEmpty(it.rest) || it.err != nil {
		return false
	}
	data, ok := GetConsData(it.rest)
	if !ok {
		it.err = &ImproperListError{Form: it.list}
		return false
	}
	it.v = data.CAR
	it.rest = data.CDR
	return true
}

// Err returns a *ImproperListError holding the whole list if the iteration
// encountered a non-list value terminating the cons chain.
func (it *ListIterator) Err() error {
	return it.err
}
