//go:build !noos

package machine

import "os"

// halt ends the process. Host builds map abnormal termination to exit
// status 1, since the OS cannot represent negative codes.
func halt(code int) {
	if code < 0 {
		code = 1
	}
	os.Exit(code)
}
