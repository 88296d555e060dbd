package sys

// A Fault is a structured domain fault, carrying a numeric code alongside
// its message. It is distinguished from plain errors when reported by
// HandleFault.
type Fault struct {
	Code uint64
	Msg  string
}

func (f *Fault) Error() string { return f.Msg }

var (
	faultBanner  = []byte("\x1b[41mUncaught fault: ")
	faultPrefix  = []byte("fault 0x")
	faultSep     = []byte(": ")
	faultUnknown = []byte("unknown")
	colorReset   = []byte("\x1b[0m\n")
)

// HandleFault centralizes abnormal-termination reporting. It distinguishes
// a structured *Fault, a plain error, and an opaque value, and reports each
// with the available diagnostic text on Stderr. A nil v reports nothing.
// The caller is expected to halt afterwards; there is no recovery from a
// fault that escaped normal control flow.
//
// HandleFault must not allocate, since it may run after the heap is
// exhausted or during shutdown. Messages are streamed through a small stack
// buffer.
func (m *Manager) HandleFault(v any) {
	if v == nil {
		return
	}
	m.Write(Stderr, faultBanner)
	switch f := v.(type) {
	case *Fault:
		var buf [16]byte
		m.Write(Stderr, faultPrefix)
		m.Write(Stderr, hexa(buf[:], f.Code))
		m.Write(Stderr, faultSep)
		m.writeString(Stderr, f.Msg)
	case error:
		// Error is assumed to return a preformatted message. An
		// implementation that formats lazily may allocate here; our own
		// error values do not.
		m.writeString(Stderr, f.Error())
	case string:
		m.writeString(Stderr, f)
	default:
		m.Write(Stderr, faultUnknown)
	}
	m.Write(Stderr, colorReset)
}

// writeString streams s through a fixed stack buffer to avoid a heap
// allocated string-to-bytes conversion.
func (m *Manager) writeString(fd int, s string) {
	var buf [64]byte
	for len(s) > 0 {
		n := copy(buf[:], s)
		m.Write(fd, buf[:n])
		s = s[n:]
	}
}

// hexa formats num as 16 hex digits into buf.
func hexa(buf []byte, num uint64) []byte {
	for i := 0; i < 16; i++ {
		char := byte(num>>(60-(4*i))) & 0xf
		if char > 9 {
			char += 'a' - 10
		} else {
			char += '0'
		}
		buf[i] = char
	}
	return buf[:16]
}
