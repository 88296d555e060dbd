// Package arena provides fixed-capacity allocators for code that must run
// without a general heap, e.g. before the allocator is set up or from
// contexts where allocation is forbidden.
package arena

import "errors"

// ErrExhausted is reported when an allocation would exceed the remaining
// capacity of an Arena or Vec. Exceeding capacity is a configuration bug in
// the platform's bring-up code, not a condition to retry.
var ErrExhausted = errors.New("arena: capacity exhausted")

// An Arena carves byte slices out of a single fixed region. Allocations only
// bump a cursor; memory is never returned individually, only all at once via
// Reset at process start.
type Arena struct {
	buf []byte
	off int
}

// New returns an Arena backed by buf. The caller must not access buf
// afterwards.
func New(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// Alloc carves size bytes aligned to align, which must be a power of two.
// Fails with ErrExhausted if the remaining region is too small.
func (a *Arena) Alloc(size, align int) ([]byte, error) {
	off := (a.off + align - 1) &^ (align - 1)
	if size < 0 || off+size > len(a.buf) {
		return nil, ErrExhausted
	}
	a.off = off + size
	return a.buf[off : off+size : off+size], nil
}

// Reset discards all allocations. Previously returned slices must not be
// used afterwards.
func (a *Arena) Reset() { a.off = 0 }

// Remaining returns the number of unallocated bytes, ignoring alignment.
func (a *Arena) Remaining() int { return len(a.buf) - a.off }

// Cap returns the total capacity of the region.
func (a *Arena) Cap() int { return len(a.buf) }
