package sys

import "github.com/embeddedkit/hal/arena"

// A WriteHandler outputs p on behalf of stream fd and returns the number of
// bytes written. Handlers must not retain p.
type WriteHandler func(fd int, p []byte) int

// A ReadHandler fills p with available input for stream fd and returns the
// number of bytes read, 0 if no data is available. Partial reads are normal.
type ReadHandler func(fd int, p []byte) int

// A Registry holds ordered sequences of write and read handlers. Insertion
// order is preserved and is call order. Handlers are never removed; a
// handler may capture a peripheral without owning it, provided the platform
// initializes the peripheral before registration and keeps it alive for the
// process lifetime.
type Registry interface {
	// Writers returns the registered write handlers in registration
	// order. The returned slice must not be modified.
	Writers() []WriteHandler

	// Readers returns the registered read handlers in registration
	// order. The returned slice must not be modified.
	Readers() []ReadHandler

	// AddWriter appends a write handler. Fails with arena.ErrExhausted
	// when the registry is at capacity, leaving existing registrations
	// unchanged.
	AddWriter(WriteHandler) error

	// AddReader appends a read handler. Fails with arena.ErrExhausted
	// when the registry is at capacity, leaving existing registrations
	// unchanged.
	AddReader(ReadHandler) error
}

// StaticRegistry is a Registry with storage for a fixed number of handlers,
// sized at construction from the number of handlers the platform will
// register. Registering beyond that number is a configuration error and
// fails with arena.ErrExhausted instead of corrupting adjacent state.
type StaticRegistry struct {
	writers arena.Vec[WriteHandler]
	readers arena.Vec[ReadHandler]
}

// NewStatic returns a StaticRegistry with room for callbacks write handlers
// and callbacks read handlers.
func NewStatic(callbacks int) *StaticRegistry {
	return &StaticRegistry{
		writers: arena.MakeVec[WriteHandler](callbacks),
		readers: arena.MakeVec[ReadHandler](callbacks),
	}
}

func (r *StaticRegistry) Writers() []WriteHandler { return r.writers.Slice() }
func (r *StaticRegistry) Readers() []ReadHandler  { return r.readers.Slice() }

func (r *StaticRegistry) AddWriter(w WriteHandler) error { return r.writers.Push(w) }
func (r *StaticRegistry) AddReader(h ReadHandler) error  { return r.readers.Push(h) }

// nullRegistry is dispatched to while no platform registry is installed. Its
// writer discards data and reports full-length success, its reader reports
// no data. This keeps the hook set callable during early boot and in tests
// before platform init.
type nullRegistry struct{}

var (
	nullWriters = []WriteHandler{func(fd int, p []byte) int { return len(p) }}
	nullReaders = []ReadHandler{func(fd int, p []byte) int { return 0 }}
)

func (nullRegistry) Writers() []WriteHandler { return nullWriters }
func (nullRegistry) Readers() []ReadHandler  { return nullReaders }

func (nullRegistry) AddWriter(WriteHandler) error { return arena.ErrExhausted }
func (nullRegistry) AddReader(ReadHandler) error  { return arena.ErrExhausted }
