package arena

// Vec is a fixed-capacity, append-only sequence with the same discipline as
// Arena: the backing array is allocated once at construction, elements are
// never removed and the capacity never grows. Unlike a raw byte region it
// may hold pointer-carrying types like function values, which must stay
// visible to the garbage collector.
type Vec[T any] struct {
	buf []T
	n   int
}

// MakeVec returns a Vec with room for capacity elements.
func MakeVec[T any](capacity int) Vec[T] {
	return Vec[T]{buf: make([]T, capacity)}
}

// Push appends x. Fails with ErrExhausted when the Vec is at capacity,
// leaving the existing elements unchanged.
func (v *Vec[T]) Push(x T) error {
	if v.n == len(v.buf) {
		return ErrExhausted
	}
	v.buf[v.n] = x
	v.n++
	return nil
}

// Slice returns a view of the pushed elements in insertion order. The caller
// must not append to it.
func (v *Vec[T]) Slice() []T { return v.buf[:v.n:v.n] }

// Len returns the number of pushed elements.
func (v *Vec[T]) Len() int { return v.n }

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int { return len(v.buf) }
