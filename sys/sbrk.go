package sys

import "github.com/embeddedkit/hal/arena"

// An SbrkFunc extends the heap by increment bytes and returns the new
// region, or nil if it cannot satisfy the request.
type SbrkFunc func(increment int) []byte

// Heap allocators beyond this count indicate a misconfigured platform.
const maxAllocators = 4

// AddAllocator appends f to the chain of heap allocators tried by Sbrk.
// Fails with arena.ErrExhausted when the chain is full.
func (m *Manager) AddAllocator(f SbrkFunc) error {
	if m.allocs.Cap() == 0 {
		m.allocs = arena.MakeVec[SbrkFunc](maxAllocators)
	}
	return m.allocs.Push(f)
}

// SetHeap installs the fallback heap region consulted after all registered
// allocators failed. Platforms typically pass the linker-provided gap
// between bss and the stack.
func (m *Manager) SetHeap(heap *arena.Arena) { m.heap = heap }

// Sbrk extends the heap by increment bytes, trying the registered
// allocators in registration order and falling back to the heap region.
// Returns nil when no allocator can satisfy the request, signaling
// out-of-memory to the caller.
func (m *Manager) Sbrk(increment int) []byte {
	for _, f := range m.allocs.Slice() {
		if p := f(increment); p != nil {
			return p
		}
	}
	if m.heap != nil {
		if p, err := m.heap.Alloc(increment, 8); err == nil {
			return p
		}
	}
	return nil
}
