package wm

import "errors"

var (
	// ErrEnumeration indicates the platform window enumeration itself broke
	// down. Zero matches is not an enumeration error.
	ErrEnumeration = errors.New("window enumeration failed")

	// ErrWindowNotFound indicates a handle went stale between enumeration
	// and transition.
	ErrWindowNotFound = errors.New("window not found")

	// ErrMonitorResolution indicates the window reports no associated
	// display device.
	ErrMonitorResolution = errors.New("monitor resolution failed")

	// ErrMutationRejected indicates the window manager refused a style or
	// geometry mutation, e.g. the window belongs to a more privileged
	// process.
	ErrMutationRejected = errors.New("window mutation rejected")
)
