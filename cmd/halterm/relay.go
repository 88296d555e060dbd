package main

import (
	"bufio"
	"bytes"
	"io"
	"log"
	"strings"

	"github.com/embeddedkit/hal/drivers/dbglink"
)

// classify returns the exit code implied by a console line, or -1 when the
// line doesn't decide anything.
func classify(line string) int {
	switch {
	case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
		return 1
	case line == "FAIL":
		return 1
	case line == "PASS":
		return 0
	}
	return -1
}

// relayLines copies console lines to out and returns the exit code decided
// by the first PASS/FAIL/crash marker, defaulting to 0.
func relayLines(r io.Reader, out *log.Logger) int {
	scanner := bufio.NewScanner(r)
	decided := false
	code := 0
	for scanner.Scan() {
		line := scanner.Text()
		out.Println(line)
		if decided {
			continue
		}
		if c := classify(line); c >= 0 {
			decided = true
			code = c
		}
	}
	return code
}

// relayFrames decodes debug link frames, reassembles text payloads into
// lines and classifies them like relayLines. Corrupt frames are dropped
// with a note, since a glitchy serial line shouldn't kill the session.
func relayFrames(r io.Reader, out *log.Logger) int {
	dec := dbglink.NewDecoder(r)
	var pending bytes.Buffer
	decided := false
	code := 0
	for {
		typ, payload, err := dec.Next()
		switch err {
		case nil:
		case dbglink.ErrChecksum:
			out.Println("halterm: dropped corrupt frame")
			continue
		case io.EOF:
			return code
		default:
			out.Println("halterm: ", err)
			return code
		}
		if typ != dbglink.TypeText {
			continue
		}

		pending.Write(payload)
		for {
			idx := bytes.IndexByte(pending.Bytes(), '\n')
			if idx < 0 {
				break
			}
			line := strings.TrimRight(string(pending.Next(idx+1)), "\r\n")
			out.Println(line)
			if !decided {
				if c := classify(line); c >= 0 {
					decided = true
					code = c
				}
			}
		}
	}
}
