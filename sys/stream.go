package sys

import "github.com/embeddedkit/hal/debug"

// BufSiz is the default capacity of a Stream's line buffer.
const BufSiz = 512

// A Stream adds line-buffered character I/O on top of a Manager. Output
// becomes visible at every newline or when the fixed buffer fills, whichever
// comes first, bounding worst-case latency for interactive consoles while
// batching throughput for bulk prints.
type Stream struct {
	m   *Manager
	fd  int
	buf []byte
	n   int
}

// NewStream returns a Stream bound to stream fd of m, buffering into
// storage. The storage's length is the flush threshold and must not be zero.
func NewStream(m *Manager, fd int, storage []byte) *Stream {
	if len(storage) == 0 {
		panic("sys: empty stream buffer")
	}
	debug.AssertInRange(fd, Stdin, Stderr, "stream fd out of range")
	return &Stream{m: m, fd: fd, buf: storage}
}

// PutChar appends c to the buffer, flushing first if the buffer is at
// capacity and flushing after if c is a newline.
func (s *Stream) PutChar(c byte) {
	debug.Assert(s.n <= len(s.buf), "stream buffer overflow")
	if s.n == len(s.buf) {
		s.Flush()
	}
	s.buf[s.n] = c
	s.n++
	if c == '\n' {
		s.Flush()
	}
}

// GetChar reads a single byte through the Manager. ok is false when no
// backend had data. Note that this differs from the libc getchar contract,
// which overloads the zero byte as both NUL and "no data"; the hook layer
// restores that collapse where the ABI requires it.
func (s *Stream) GetChar() (c byte, ok bool) {
	var b [1]byte
	if s.m.Read(s.fd, b[:]) == 0 {
		return 0, false
	}
	return b[0], true
}

// Flush writes the buffered bytes in a single Write call and resets the
// buffer unconditionally, relying on the convention that write handlers
// report success. Flushing an empty buffer issues no Write.
func (s *Stream) Flush() {
	if s.n == 0 {
		return
	}
	s.m.Write(s.fd, s.buf[:s.n])
	s.n = 0
}

// Buffered returns the number of bytes waiting to be flushed.
func (s *Stream) Buffered() int { return s.n }

// Write feeds every byte of p through PutChar and implements io.Writer.
func (s *Stream) Write(p []byte) (int, error) {
	for _, c := range p {
		s.PutChar(c)
	}
	return len(p), nil
}
