package machine

import "github.com/embeddedkit/hal/sys"

var (
	exitOK   = []byte("\n\x1b[1;37;42mexit code ")
	exitFail = []byte("\n\x1b[1;37;41mexit code ")
	exitEnd  = []byte("\x1b[0m\n")
)

// fault pending for Exit to surface. There is at most one; firmware does
// not resume after the first fault.
var fault any

// SetFault records v as the pending uncaught fault, reported by Exit.
func SetFault(v any) { fault = v }

// Recover is meant to be deferred at the top of main. It records a
// panicking value as the pending fault and exits with a failure code.
func Recover() {
	if v := recover(); v != nil {
		fault = v
		Exit(-1)
	}
}

// Exit flushes the stdio stream, reports code (non-negative framed as
// normal termination, negative as abnormal), surfaces the pending uncaught
// fault and halts. It never returns; no code runs after Exit.
func Exit(code int) {
	stdio.Flush()
	banner := exitOK
	if code < 0 {
		banner = exitFail
	}
	var buf [20]byte
	sys.Default.Write(sys.Stderr, banner)
	sys.Default.Write(sys.Stderr, itoa(buf[:], code))
	sys.Default.Write(sys.Stderr, exitEnd)
	sys.Default.HandleFault(fault)
	halt(code)
}

// itoa formats num in decimal into buf, which must be large enough.
func itoa(buf []byte, num int) []byte {
	n := uint64(num)
	if num < 0 {
		n = uint64(-num)
	}
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	if num < 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}
