// Package sys implements the redirection layer between the runtime's
// low-level I/O entry points and platform-provided backends. A Manager holds
// exactly one active Registry of write and read handlers; writes fan out to
// all registered writers, reads are served by the first reader that has
// data. A null registry is installed by default, so every operation is
// well-defined before platform bring-up runs.
package sys

import (
	"io"

	"github.com/embeddedkit/hal/arena"
)

// Standard stream descriptors used by the runtime hooks.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// A Manager is the single dispatch point between runtime hooks and the
// active Registry. The zero value is ready to use and dispatches to the
// null registry.
//
// All operations are synchronous and run to completion on the calling
// context. The Manager does no locking; Set and registration are expected
// to happen during platform bring-up, before concurrent access begins.
type Manager struct {
	reg    Registry
	allocs arena.Vec[SbrkFunc]
	heap   *arena.Arena
}

// Default is the process-wide Manager used by the runtime hook set. It
// exists only because the runtime's entry points cannot take a parameter;
// everything above the hook layer should thread a *Manager explicitly.
var Default = &Manager{}

// NewManager returns a Manager with the null registry installed.
func NewManager() *Manager { return &Manager{} }

// Set installs the platform's registry. The Manager does not take ownership
// of reg's lifetime. Passing nil restores the null registry.
func (m *Manager) Set(reg Registry) { m.reg = reg }

// Get returns the active registry, never nil.
func (m *Manager) Get() Registry {
	if m.reg == nil {
		return nullRegistry{}
	}
	return m.reg
}

// Installed reports whether a platform registry has been set.
func (m *Manager) Installed() bool {
	if m.reg == nil {
		return false
	}
	_, null := m.reg.(nullRegistry)
	return !null
}

// Write invokes every registered write handler in registration order with
// the full contents of p. Handlers are treated as infallible; Write always
// reports len(p), matching the libc contract that write returns a byte
// count, not a per-backend status.
func (m *Manager) Write(fd int, p []byte) int {
	for _, w := range m.Get().Writers() {
		w(fd, p)
	}
	return len(p)
}

// Read tries the registered read handlers in registration order and returns
// the count of the first one that reports data. Returns 0 when no handler
// has data, which is a normal outcome, not an error. The order implements a
// priority list of input sources, e.g. a primary console falling through to
// a secondary debug link.
func (m *Manager) Read(fd int, p []byte) int {
	for _, r := range m.Get().Readers() {
		if n := r(fd, p); n > 0 {
			return n
		}
	}
	return 0
}

// Writer returns an io.Writer view of stream fd, for handing the facade to
// code that expects a writer, e.g. a mounted console filesystem.
func (m *Manager) Writer(fd int) io.Writer { return managerWriter{m, fd} }

type managerWriter struct {
	m  *Manager
	fd int
}

func (w managerWriter) Write(p []byte) (int, error) {
	return w.m.Write(w.fd, p), nil
}
