// Package lfmt contains helpers for rendering values to an io.Writer.
package lfmt

import "io"

// Writer wraps an io.Writer, counting bytes written and remembering the first
// write error.  After an error every further write is a no-op, which lets a
// recursive renderer write freely and check the error once at the end.
type Writer struct {
	w   io.Writer
	n   int
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// N returns the total number of bytes written.
func (w *Writer) N() int {
	return w.n
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Write implements io.Writer.
func (w *Writer) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	w.n += n
	w.err = err
	return n, err
}

// WriteString implements io.StringWriter.  The underlying writer's
// WriteString method is used when it has one.
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	var n int
	var err error
	if sw, ok := w.w.(io.StringWriter); ok {
		n, err = sw.WriteString(s)
	} else {
		n, err = w.w.Write([]byte(s))
	}
	w.n += n
	w.err = err
	return n, err
}
