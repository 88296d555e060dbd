//go:build !debug

// Package debug provides assertions that can be enabled with the debug
// build tag or will otherwise compile to no-ops. Useful for invariants of
// the redirection layer that are too expensive to check in release
// firmware.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertInRange panics if v is outside [lo, hi].
func AssertInRange(v, lo, hi int, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
