//go:build noos

// Package testing provides utilities for writing target-side tests.
package testing

import (
	"embedded/rtos"
	"os"
	"syscall"
	"testing"

	"github.com/embeddedkit/hal/sys"

	"github.com/embeddedgo/fs/termfs"
)

// TestMain should be used as TestMain for target-side tests. It mounts a
// terminal filesystem over the dispatch facade and redirects stdout and
// stderr to it, so test output reaches whatever backends the platform
// registered during bring-up.
func TestMain(m *testing.M) {
	if !sys.Default.Installed() {
		// The null registry will absorb all output. Still runnable, but
		// results won't be seen anywhere.
		print("\nWARN: no platform registry installed, test output is discarded\n\n")
	}

	console := termfs.NewLight("termfs", nil, sys.Default.Writer(sys.Stdout))
	rtos.Mount(console, "/dev/console")

	var err error
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout

	os.Args = append(os.Args, "-test.v")

	os.Exit(m.Run())
}
