// halterm attaches to a target's console. It runs a command, typically an
// emulator or a flashcart loader, under a pseudo terminal, relays its
// output and scans it for test results and runtime crashes to derive an
// exit code. With -framed it decodes debug link frames from the output
// stream instead of raw lines.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
)

const usageString = `halterm attaches to a target's console.

Usage:

	%s [flags] <command> [arguments]

The command is run under a pseudo terminal. Output is relayed to stdout;
the exit code is 0 when a PASS marker is seen, 1 on FAIL, panic or fatal
error.
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	framed := flag.Bool("framed", false, "decode debug link frames from the output")
	timeout := flag.Duration("timeout", 0, "give up after this duration")
	flag.Usage = usage
	flag.Parse()

	args, err := shellwords.Split(strings.Join(flag.Args(), " "))
	if err != nil {
		log.Fatal("parse command: ", err)
	}
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	ptm, err := pty.New()
	if err != nil {
		log.Fatal("open pty: ", err)
	}
	defer ptm.Close()

	c := ptm.Command(args[0], args[1:]...)
	if err := c.Start(); err != nil {
		log.Fatal("start command: ", err)
	}

	go io.Copy(ptm, os.Stdin)
	if *timeout > 0 {
		time.AfterFunc(*timeout, func() { ptm.Close() })
	}

	var code int
	if *framed {
		code = relayFrames(ptm, log.Default())
	} else {
		code = relayLines(ptm, log.Default())
	}
	c.Wait()
	os.Exit(code)
}
