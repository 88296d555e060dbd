// Package dbglink implements a framed debug link protocol for shipping
// console output over a raw serial or USB peripheral to a host-side
// monitor.
//
// Frame layout: the magic bytes 'D' 'B' 'G', a type byte, a 3-byte
// big-endian payload length, the payload and a CRC-8 of the payload.
package dbglink

import (
	"errors"
	"io"

	"github.com/sigurn/crc8"
)

// Frame types.
const (
	TypeText      byte = 0x01
	TypeHeartbeat byte = 0x05
)

const (
	protocolVersion = 1
	maxPayload      = 1<<24 - 1
	headerSize      = 7
)

var crcTable = crc8.MakeTable(crc8.Params{Poly: 0x31, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00, Check: 0xa1, Name: "CRC-8 dbglink"})

// Writer encapsulates each write in a single text frame. It tolerates
// peripherals that accept writes in chunks, like a small USB FIFO.
type Writer struct {
	w io.Writer
}

// NewWriter sends a heartbeat frame so the host side knows which protocol
// version it is speaking, then returns the framed writer.
func NewWriter(w io.Writer) *Writer {
	v := &Writer{w: w}
	v.writeFrame(TypeHeartbeat, []byte{protocolVersion})
	return v
}

func (v *Writer) Write(p []byte) (n int, err error) {
	if len(p) > maxPayload {
		p = p[:maxPayload]
	}
	if err = v.writeFrame(TypeText, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (v *Writer) writeFrame(typ byte, p []byte) error {
	s := len(p)
	hdr := [headerSize]byte{'D', 'B', 'G', typ, byte(s >> 16), byte(s >> 8), byte(s)}
	if err := v.writeAll(hdr[:]); err != nil {
		return err
	}
	if err := v.writeAll(p); err != nil {
		return err
	}
	csum := crc8.Init(crcTable)
	csum = crc8.Update(csum, p, crcTable)
	trailer := [1]byte{crc8.Complete(csum, crcTable)}
	return v.writeAll(trailer[:])
}

// writeAll retries short writes, which peripherals with small transfer
// buffers report routinely.
func (v *Writer) writeAll(p []byte) error {
	for len(p) > 0 {
		n, err := v.w.Write(p)
		if err != nil && err != io.ErrShortWrite {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}

var (
	// ErrFraming is reported when the magic bytes are missing; the stream
	// is out of sync or not a debug link at all.
	ErrFraming = errors.New("dbglink: bad frame header")

	// ErrChecksum is reported when a frame's payload does not match its
	// CRC. The payload is still returned for diagnostics.
	ErrChecksum = errors.New("dbglink: checksum mismatch")
)

// Decoder reads frames from the host side of a debug link.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// Next returns the next frame's type and payload. Returns io.EOF at a clean
// frame boundary and io.ErrUnexpectedEOF inside a frame.
func (d *Decoder) Next() (typ byte, payload []byte, err error) {
	var hdr [headerSize]byte
	if _, err = io.ReadFull(d.r, hdr[:]); err != nil {
		return 0, nil, err
	}
	if hdr[0] != 'D' || hdr[1] != 'B' || hdr[2] != 'G' {
		return 0, nil, ErrFraming
	}
	typ = hdr[3]

	n := int(hdr[4])<<16 | int(hdr[5])<<8 | int(hdr[6])
	payload = make([]byte, n)
	if _, err = io.ReadFull(d.r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, nil, err
	}

	var trailer [1]byte
	if _, err = io.ReadFull(d.r, trailer[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, nil, err
	}
	csum := crc8.Init(crcTable)
	csum = crc8.Update(csum, payload, crcTable)
	if trailer[0] != crc8.Complete(csum, crcTable) {
		return typ, payload, ErrChecksum
	}
	return typ, payload, nil
}
