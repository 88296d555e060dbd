package machine

import "github.com/embeddedkit/hal/sys"

// Write forwards to the dispatch facade, which fans out to every registered
// write handler. It is the _write entry of the hook set.
func Write(fd int, p []byte) int { return sys.Default.Write(fd, p) }

// Read forwards to the dispatch facade, which returns the first registered
// reader's data. It is the _read entry of the hook set.
func Read(fd int, p []byte) int { return sys.Default.Read(fd, p) }

// Sbrk extends the heap by increment bytes. Returns nil when no installed
// allocator, registry-backed or arena-backed, can satisfy the request,
// signaling out-of-memory to the caller. It is the _sbrk entry of the hook
// set.
func Sbrk(increment int) []byte { return sys.Default.Sbrk(increment) }

// Putchar appends c to the buffered stdio stream and returns it.
func Putchar(c byte) int {
	Stdio[sys.Stdout].PutChar(c)
	return int(c)
}

// Getchar returns the next input byte, or 0 when no data is ready. Reads
// always carry the Stdin descriptor, even though the shared stdio stream is
// bound to Stdout for output. The zero return is ambiguous with a received
// NUL byte; callers that need the distinction should read through
// sys.Stream.GetChar on a Stdin-bound stream.
func Getchar() int {
	var b [1]byte
	if sys.Default.Read(sys.Stdin, b[:]) == 0 {
		return 0
	}
	return int(b[0])
}

// Puts writes s and a trailing newline through the buffered stream and
// returns the number of bytes written.
func Puts(s string) int {
	out := Stdio[sys.Stdout]
	for i := 0; i < len(s); i++ {
		out.PutChar(s[i])
	}
	out.PutChar('\n')
	return len(s) + 1
}

// Fwrite writes p to stream fd, bypassing the line buffer, and returns the
// number of bytes written.
func Fwrite(p []byte, fd int) int { return sys.Default.Write(fd, p) }
