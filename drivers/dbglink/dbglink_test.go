package dbglink

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundtrip(t *testing.T) {
	var link bytes.Buffer
	w := NewWriter(&link)

	msgs := []string{"hello\n", "a longer line of console output\n", ""}
	for _, msg := range msgs {
		n, err := w.Write([]byte(msg))
		require.NoError(t, err)
		require.Equal(t, len(msg), n)
	}

	d := NewDecoder(&link)

	typ, payload, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, TypeHeartbeat, typ)
	assert.Equal(t, []byte{protocolVersion}, payload)

	for _, msg := range msgs {
		typ, payload, err = d.Next()
		require.NoError(t, err)
		assert.Equal(t, TypeText, typ)
		assert.Equal(t, msg, string(payload))
	}

	_, _, err = d.Next()
	assert.Equal(t, io.EOF, err)
}

// chunkWriter accepts at most chunk bytes per call, like a small USB FIFO.
type chunkWriter struct {
	buf   bytes.Buffer
	chunk int
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	if len(p) > w.chunk {
		n, _ := w.buf.Write(p[:w.chunk])
		return n, io.ErrShortWrite
	}
	return w.buf.Write(p)
}

func TestChunkedPeripheral(t *testing.T) {
	link := &chunkWriter{chunk: 3}
	w := NewWriter(link)

	_, err := w.Write([]byte("chunked transport"))
	require.NoError(t, err)

	d := NewDecoder(&link.buf)
	typ, _, err := d.Next()
	require.NoError(t, err)
	require.Equal(t, TypeHeartbeat, typ)

	typ, payload, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, TypeText, typ)
	assert.Equal(t, "chunked transport", string(payload))
}

func TestChecksumMismatch(t *testing.T) {
	var link bytes.Buffer
	w := &Writer{w: &link}
	_, err := w.Write([]byte("payload"))
	require.NoError(t, err)

	// Flip a payload bit.
	link.Bytes()[headerSize] ^= 0x80

	typ, payload, err := NewDecoder(&link).Next()
	assert.Equal(t, ErrChecksum, err)
	assert.Equal(t, TypeText, typ)
	assert.Len(t, payload, len("payload"))
}

func TestBadMagic(t *testing.T) {
	link := bytes.NewBufferString("XXXjunk")
	_, _, err := NewDecoder(link).Next()
	assert.Equal(t, ErrFraming, err)
}

func TestTruncatedFrame(t *testing.T) {
	var link bytes.Buffer
	w := &Writer{w: &link}
	_, err := w.Write([]byte("payload"))
	require.NoError(t, err)
	link.Truncate(link.Len() - 3)

	_, _, err = NewDecoder(&link).Next()
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}
