// Package gpio defines the abstract contract for general purpose I/O pins.
package gpio

// Direction of a pin.
type Direction uint8

const (
	Input Direction = iota
	Output
)

// Level of a pin, as depicted in the port register. Whether the active level
// is high or low is the caller's concern.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Edge selects the events that trigger a pin interrupt.
type Edge uint8

const (
	Rising Edge = iota
	Falling
	Both
)

// Resistor selects the internal resistor pull of a pin. A floating input
// pin left unconnected has an undefined level.
type Resistor uint8

const (
	Floating Resistor = iota
	PullDown
	PullUp
)

// PinSettings configures the electrical behavior of a pin. Function codes
// are chip specific; consult the target's manual.
type PinSettings struct {
	Function  uint8
	Resistor  Resistor
	OpenDrain bool
	Analog    bool
}

// A Pin is a single general purpose I/O pin. Configure acts as the pin's
// initialization and must be called before any other method.
type Pin interface {
	Configure(PinSettings) error

	SetDirection(Direction)

	// Set drives an output pin to the given level.
	Set(Level)

	// Toggle inverts the current output level.
	Toggle()

	// Read returns the pin level as depicted in memory, regardless of the
	// configured direction.
	Read() Level

	// AttachInterrupt calls handler on the selected edge events. The
	// handler runs in interrupt context and must not block or allocate.
	AttachInterrupt(Edge, func())
	DetachInterrupt()
}
