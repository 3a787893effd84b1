// Package blkfile decodes the raw blk-file format written by Bitcoin nodes
// and locates a single block by its position in the stream.
package blkfile

import (
	"errors"
	"fmt"
)

// ErrInsufficientData reports that the stream ran out of bytes before a
// fixed-width field could be filled.
var ErrInsufficientData = errors.New("insufficient data")

// Cursor is a forward-only reader over an in-memory byte buffer. A read
// either yields exactly the requested number of bytes in stream order or
// fails; consumed bytes are never re-exposed.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps buf. Returned slices alias buf, so the caller must not
// mutate it while decoded values are in use.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Take consumes the next n bytes. It returns ErrInsufficientData if fewer
// than n bytes remain; no partial read is returned.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read size %d", n)
	}
	if remaining := c.Remaining(); remaining < n {
		return nil, fmt.Errorf("need %d bytes, %d remaining: %w", n, remaining, ErrInsufficientData)
	}
	out := c.buf[c.off : c.off+n]
	c.off += n
	return out, nil
}

// Remaining reports how many bytes are left to consume.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Empty reports whether the whole buffer has been consumed.
func (c *Cursor) Empty() bool {
	return c.Remaining() == 0
}
