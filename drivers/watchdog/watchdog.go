// Package watchdog defines the abstract contract for hardware watchdog
// timer peripherals, used to restart a system that locked up.
package watchdog

import "time"

// A Watchdog restarts the system when it is not fed within the configured
// interval.
type Watchdog interface {
	// Initialize arms the watchdog with the given trigger interval.
	Initialize(interval time.Duration) error

	// Feed restarts the countdown sequence.
	Feed()

	// CausedReset reports whether the last system reset was triggered by
	// the watchdog, allowing bring-up code to distinguish a lockup
	// recovery from a cold boot.
	CausedReset() bool
}
