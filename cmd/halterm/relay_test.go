package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embeddedkit/hal/drivers/dbglink"
)

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func TestClassify(t *testing.T) {
	assert.Equal(t, 0, classify("PASS"))
	assert.Equal(t, 1, classify("FAIL"))
	assert.Equal(t, 1, classify("panic: runtime error: index out of range"))
	assert.Equal(t, 1, classify("fatal error: all goroutines are asleep"))
	assert.Equal(t, -1, classify("ok  	sys	0.01s"))
	assert.Equal(t, -1, classify("--- FAIL: TestFoo"))
}

func TestRelayLines(t *testing.T) {
	out := strings.NewReader("=== RUN TestFoo\nPASS\nFAIL\n")
	assert.Equal(t, 0, relayLines(out, discard()), "first marker wins")

	out = strings.NewReader("panic: boom\ngoroutine 1 [running]:\n")
	assert.Equal(t, 1, relayLines(out, discard()))

	out = strings.NewReader("no markers at all\n")
	assert.Equal(t, 0, relayLines(out, discard()))
}

func TestRelayFrames(t *testing.T) {
	var link bytes.Buffer
	w := dbglink.NewWriter(&link)

	// Lines split across frame boundaries must reassemble.
	_, err := w.Write([]byte("=== RUN Te"))
	require.NoError(t, err)
	_, err = w.Write([]byte("stFoo\nPA"))
	require.NoError(t, err)
	_, err = w.Write([]byte("SS\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, relayFrames(&link, discard()))
}

func TestRelayFramesCrash(t *testing.T) {
	var link bytes.Buffer
	w := dbglink.NewWriter(&link)
	w.Write([]byte("panic: boom\n"))
	assert.Equal(t, 1, relayFrames(&link, discard()))
}
