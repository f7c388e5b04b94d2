// Package symbol interns symbol names.  Interning lets the object model store
// a symbol as a small integer and compare symbols by name in constant time.
// Once a name has been interned its ID never changes, so symbol values may be
// shared freely between goroutines.
package symbol

// String returns the name interned as id in table.  If table does not know id
// a diagnostic placeholder is returned instead.
func String(id ID, table Table) string {
	s, _ := ResolveUnknown(defaultUnknownResolverFormat, table).Symbol(id)
	return s
}
