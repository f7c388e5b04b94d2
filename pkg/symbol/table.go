package symbol

import (
	"fmt"
	"sync"
)

// DefaultGlobalTable is the table used by the object model.  Every symbol
// read from source or created by a primitive is interned here.
var DefaultGlobalTable Table = NewTable()

// Intern uses DefaultGlobalTable to intern s and returns its ID.
func Intern(s string) ID {
	return DefaultGlobalTable.Intern(s)
}

// Table maps symbol IDs to names and back.  Implementations are safe for
// concurrent use.
type Table interface {
	// Intern inserts the given name into the table if it is not present and
	// returns its ID.
	Intern(name string) ID
	// Symbol returns the name associated with id.
	Symbol(id ID) (string, bool)
}

// ResolveUnknown returns a Table whose Symbol method never fails: ids unknown
// to t are described using format.  All other methods proxy t.
func ResolveUnknown(format string, t Table) Table {
	if format == "" {
		format = defaultUnknownResolverFormat
	}
	return &unknownResolver{format, t}
}

const defaultUnknownResolverFormat = "#<SYMBOL %#x>"

type unknownResolver struct {
	format string
	Table
}

// Symbol always returns true.
func (t *unknownResolver) Symbol(id ID) (string, bool) {
	s, ok := t.Table.Symbol(id)
	if ok {
		return s, true
	}
	return fmt.Sprintf(t.format, uint64(id)), true
}

// NewTable returns an empty Table.
func NewTable() Table {
	return &table{
		g:     NewIDGen(0),
		names: make(map[ID]string),
		ids:   make(map[string]ID),
	}
}

type table struct {
	mu    sync.RWMutex
	g     IDGen
	names map[ID]string
	ids   map[string]ID
}

var _ Table = (*table)(nil)

// Intern implements the Table interface
func (t *table) Intern(s string) ID {
	t.mu.RLock()
	id, ok := t.ids[s]
	t.mu.RUnlock()
	if ok {
		return id
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[s]; ok {
		return id
	}
	id = t.g.NewID()
	t.ids[s] = id
	t.names[id] = s
	return id
}

// Symbol implements the Table interface
func (t *table) Symbol(id ID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.names[id]
	return s, ok
}
