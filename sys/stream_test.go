package sys

import (
	"bytes"
	"testing"
)

type flushSink struct {
	flushes [][]byte
}

func (s *flushSink) handler(fd int, p []byte) int {
	s.flushes = append(s.flushes, bytes.Clone(p))
	return len(p)
}

func newStreamPair(t *testing.T, capacity int) (*Manager, *Stream, *flushSink) {
	t.Helper()
	m := NewManager()
	reg := NewStatic(2)
	m.Set(reg)
	sink := &flushSink{}
	if err := reg.AddWriter(sink.handler); err != nil {
		t.Fatal(err)
	}
	return m, NewStream(m, Stdout, make([]byte, capacity)), sink
}

func TestPutCharLine(t *testing.T) {
	_, s, sink := newStreamPair(t, 16)

	s.PutChar('h')
	s.PutChar('i')
	if len(sink.flushes) != 0 {
		t.Fatal("flushed before newline")
	}
	s.PutChar('\n')
	if len(sink.flushes) != 1 {
		t.Fatal("flush count:", len(sink.flushes))
	}
	if !bytes.Equal(sink.flushes[0], []byte("hi\n")) {
		t.Errorf("flushed %q", sink.flushes[0])
	}
	if s.Buffered() != 0 {
		t.Error("buffered after flush:", s.Buffered())
	}
}

func TestPutCharCapacity(t *testing.T) {
	const capacity = 8
	_, s, sink := newStreamPair(t, capacity)

	for i := 0; i < capacity; i++ {
		s.PutChar(byte('a' + i))
	}
	// The boundary byte fits exactly; the flush happens on the next put.
	if len(sink.flushes) != 0 {
		t.Fatal("flushed before capacity exceeded")
	}
	s.PutChar('z')
	if len(sink.flushes) != 1 {
		t.Fatal("flush count:", len(sink.flushes))
	}
	if !bytes.Equal(sink.flushes[0], []byte("abcdefgh")) {
		t.Errorf("flushed %q", sink.flushes[0])
	}
	if s.Buffered() != 1 {
		t.Error("buffered:", s.Buffered())
	}
}

func TestFlushIdempotent(t *testing.T) {
	_, s, sink := newStreamPair(t, 16)

	s.PutChar('x')
	s.Flush()
	if len(sink.flushes) != 1 {
		t.Fatal("flush count:", len(sink.flushes))
	}
	s.Flush()
	if len(sink.flushes) != 1 {
		t.Error("second flush of empty buffer issued a write")
	}
}

func TestGetChar(t *testing.T) {
	m, s, _ := newStreamPair(t, 16)

	if c, ok := s.GetChar(); ok || c != 0 {
		t.Error("no reader installed, got", c, ok)
	}

	input := []byte("A")
	m.Get().AddReader(func(fd int, p []byte) int {
		if len(input) == 0 {
			return 0
		}
		n := copy(p, input)
		input = input[n:]
		return n
	})

	if c, ok := s.GetChar(); !ok || c != 'A' {
		t.Error("got", c, ok)
	}
	if _, ok := s.GetChar(); ok {
		t.Error("ok after input drained")
	}
}

func TestStreamWrite(t *testing.T) {
	_, s, sink := newStreamPair(t, BufSiz)

	n, err := s.Write([]byte("two\nlines\n"))
	if n != 10 || err != nil {
		t.Fatal(n, err)
	}
	if len(sink.flushes) != 2 {
		t.Fatal("flush count:", len(sink.flushes))
	}
	if !bytes.Equal(sink.flushes[0], []byte("two\n")) {
		t.Errorf("first flush %q", sink.flushes[0])
	}
	if !bytes.Equal(sink.flushes[1], []byte("lines\n")) {
		t.Errorf("second flush %q", sink.flushes[1])
	}
}
