//go:build !noos

package machine

import "github.com/embeddedkit/hal/sys"

// DefaultWrite forwards to the dispatch facade. Host builds have no runtime
// system writer to hook into, so this variant is an ordinary function.
func DefaultWrite(fd int, p []byte) int {
	return sys.Default.Write(fd, p)
}
