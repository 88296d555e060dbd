// Package machine is the boundary between the language runtime and the
// redirection layer. It provides the hooks the runtime expects for character
// I/O, heap extension and process exit, all forwarding to the sys dispatch
// facade, plus the standard stream table bound to a single buffered stream.
package machine

import (
	"github.com/embeddedkit/hal/arena"
	"github.com/embeddedkit/hal/sys"
)

// Static storage for the shim. Sized for the stdio line buffer; handler
// storage lives in the registry the platform installs.
var (
	shimBuf   [sys.BufSiz]byte
	shimArena = arena.New(shimBuf[:])
	stdio     = sys.NewStream(sys.Default, sys.Stdout, alloc(shimArena, sys.BufSiz))
)

// Stdio is the 3-entry standard stream table. All entries are bound to the
// same underlying stream, like a console that serves stdin, stdout and
// stderr at once. The shared stream carries the Stdout descriptor; Getchar
// tags its reads with Stdin instead of going through the table.
var Stdio = [3]*sys.Stream{stdio, stdio, stdio}

func alloc(a *arena.Arena, size int) []byte {
	p, err := a.Alloc(size, 1)
	if err != nil {
		panic(err)
	}
	return p
}

// Setup installs the platform's registry and an optional fallback heap
// region on the default manager. It is meant to run once during platform
// bring-up, before any concurrent access to the facade begins.
func Setup(reg sys.Registry, heap []byte) {
	sys.Default.Set(reg)
	if heap != nil {
		sys.Default.SetHeap(arena.New(heap))
	}
}
