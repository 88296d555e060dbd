//go:build noos

package machine

import (
	_ "unsafe"

	"github.com/embeddedkit/hal/sys"
)

// DefaultWrite is installed as the runtime's system writer. It forwards to
// the dispatch facade, whose null registry keeps it safe to call in very
// early boot, before any platform setup ran. Write handlers invoked through
// it must not allocate.
//
//go:nowritebarrierrec
//go:nosplit
//go:linkname DefaultWrite runtime.defaultWrite
func DefaultWrite(fd int, p []byte) int {
	return sys.Default.Write(fd, p)
}
