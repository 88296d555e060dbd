// Package drivers builds upon the sys package to provide peripheral
// contracts and common backend implementations for the redirection layer.
// See the subdirectories for concrete backends and peripheral interfaces.
package drivers

import "io"

// A SystemWriter is the low-level write callback shape expected by the
// runtime.
//
// FIXME SystemWriter needs go:nosplit pragma
type SystemWriter func(fd int, p []byte) int

// NewSystemWriter returns a SystemWriter that forwards to w. The result can
// be registered as a write handler or installed as the runtime's system
// writer; w must not allocate on the write path if used from a syscall
// context.
func NewSystemWriter(w io.Writer) SystemWriter {
	return func(fd int, p []byte) int {
		n, _ := w.Write(p)
		return n
	}
}
