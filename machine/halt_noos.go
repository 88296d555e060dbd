//go:build noos

package machine

// halt parks the processor permanently. On bare metal there is nothing to
// return to.
func halt(code int) {
	for {
	}
}
