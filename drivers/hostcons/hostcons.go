//go:build !noos

// Package hostcons binds the redirection layer to the host process's
// standard streams. It is the console backend for tests and host builds of
// target applications.
package hostcons

import (
	"os"
	"time"

	"github.com/embeddedkit/hal/sys"
)

// Install registers a writer backed by os.Stdout/os.Stderr and a reader
// backed by os.Stdin on reg.
func Install(reg sys.Registry) error {
	err := reg.AddWriter(func(fd int, p []byte) int {
		f := os.Stdout
		if fd == sys.Stderr {
			f = os.Stderr
		}
		n, _ := f.Write(p)
		return n
	})
	if err != nil {
		return err
	}
	return reg.AddReader(readStdin)
}

// readStdin polls stdin without blocking indefinitely. The deadline only
// takes effect on pollable descriptors (pipes, terminals); on a regular
// file the read returns immediately anyway.
func readStdin(fd int, p []byte) int {
	os.Stdin.SetReadDeadline(time.Now().Add(time.Millisecond))
	defer os.Stdin.SetReadDeadline(time.Time{})
	n, _ := os.Stdin.Read(p)
	return n
}
