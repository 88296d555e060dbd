package uart

import "io"

const loopbackSize = 256

// Loopback is an in-memory Uart whose transmitted bytes become available
// for reading, like a port with TX wired to RX. It backs host tests and
// serves as a template for hardware implementations.
type Loopback struct {
	cfg  Config
	buf  [loopbackSize]byte
	r, w int
	n    int
}

func (v *Loopback) Configure(cfg Config) error {
	v.cfg = cfg
	return nil
}

// Write queues p for reading. Returns io.ErrShortWrite when the internal
// ring fills before all of p is queued.
func (v *Loopback) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if v.n == loopbackSize {
			return n, io.ErrShortWrite
		}
		v.buf[v.w] = c
		v.w = (v.w + 1) % loopbackSize
		v.n++
		n++
	}
	return n, nil
}

// Read drains previously written bytes. Returns 0, nil when the ring is
// empty.
func (v *Loopback) Read(p []byte) (n int, err error) {
	for n < len(p) && v.n > 0 {
		p[n] = v.buf[v.r]
		v.r = (v.r + 1) % loopbackSize
		v.n--
		n++
	}
	return n, nil
}

// HasData reports whether a Read would return at least one byte.
func (v *Loopback) HasData() bool { return v.n > 0 }
