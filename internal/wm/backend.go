package wm

// Backend abstracts the primitive window-system operations the engine
// sequences. Implementations live in internal/windows (Win32) and
// internal/x11 (EWMH/RandR).
type Backend interface {
	// EnumWindows visits every visible top-level window in window-manager
	// enumeration order. The visit callback returns false to stop early.
	// EnumWindows returns an error only when the enumeration facility
	// itself fails, never for "no windows".
	EnumWindows(visit func(Window) bool) error

	// IsWindowValid reports whether the handle still refers to a live
	// window.
	IsWindowValid(handle Handle) bool

	// MonitorForWindow resolves the monitor whose bounds contain, or are
	// nearest to, the window's current position.
	MonitorForWindow(handle Handle) (Monitor, error)

	// ApplyBorderlessStyle overwrites the window's style with the fixed
	// borderless configuration, discarding whatever was there before.
	ApplyBorderlessStyle(handle Handle) error

	// SetFullscreenBounds moves and resizes the window to exactly the given
	// rectangle and signals the window manager to repaint the frame and
	// show the window, so the new style takes visual effect immediately.
	SetFullscreenBounds(handle Handle, bounds Rect) error

	// RemoveMenu strips the window's menu. A window without a menu is a
	// no-op, not an error.
	RemoveMenu(handle Handle) error
}
