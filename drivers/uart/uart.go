// Package uart defines the abstract serial port contract consumed by the
// redirection layer and platform bring-up code.
package uart

// Parity configures the parity bit of a serial frame.
type Parity uint8

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// Config holds the serial frame settings of a port.
type Config struct {
	BaudRate uint32
	DataBits uint8 // 5..9, typically 8
	StopBits uint8 // 1 or 2
	Parity   Parity
}

// A Uart is a serial port usable as a redirection backend. All operations
// are synchronous; Read returns whatever is immediately available and
// partial reads are a normal outcome. HasData lets a read handler avoid
// blocking on an empty line.
type Uart interface {
	Configure(Config) error
	Write(p []byte) (int, error)
	Read(p []byte) (int, error)
	HasData() bool
}
