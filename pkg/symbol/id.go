package symbol

import "sync/atomic"

// An ID identifies an interned symbol name within a Table.  The zero ID is
// never assigned to a name.
type ID uint64

// MaxID is the largest ID a Table will hand out.
const MaxID = 0x00000000FFFFFFFF

// IDGen is a function that generates unique IDs.
type IDGen interface {
	// NewID returns an ID that has not been returned before.
	NewID() ID
}

// NewIDGen returns an IDGen producing sequential ids greater than min.
func NewIDGen(min ID) IDGen {
	if min > MaxID {
		panic("invalid min ID")
	}
	return &gen{lastid: uint64(min)}
}

type gen struct {
	lastid uint64
}

var _ IDGen = (*gen)(nil)

func (g *gen) NewID() ID {
	id := atomic.AddUint64(&g.lastid, 1)
	if id > MaxID {
		panic("too many ids generated")
	}
	return ID(id)
}

// String is equivalent to calling String(id, DefaultGlobalTable).
func (id ID) String() string {
	return String(id, DefaultGlobalTable)
}
