// Package timeouts defines timeout and delay constants for window operations.
package timeouts

import "time"

const (
	// Watch Mode

	// WatchPollInterval is the default interval between enumeration polls
	// while waiting for a matching window to appear.
	WatchPollInterval = 500 * time.Millisecond

	// Wrap Mode

	// WrapWindowTimeout is the default maximum time to wait for a wrapped
	// executable to show a matching window. Game launchers can sit on a
	// splash screen for a while before the real window exists.
	WrapWindowTimeout = 3 * time.Minute

	// WrapSettleDelay allows a freshly created window to finish its own
	// startup sizing before the borderless transition overwrites it. Some
	// engines re-apply their configured window mode once during init.
	WrapSettleDelay = 2 * time.Second
)
