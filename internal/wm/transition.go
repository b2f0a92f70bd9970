package wm

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/wwb/internal/logger"
)

// Transitioner forces windows into borderless-fullscreen mode. The original
// style is never captured, so a transition is one-way for the rest of the
// window's session.
type Transitioner struct {
	backend Backend
	log     logger.LoggerInterface
}

// NewTransitioner creates a Transitioner on the given backend.
func NewTransitioner(backend Backend, log logger.LoggerInterface) *Transitioner {
	return &Transitioner{backend: backend, log: log}
}

// Transition makes the window fill the monitor it currently occupies, in
// order: optional menu strip, monitor resolution, style overwrite, then
// move/resize to the monitor bounds. The monitor must be resolved before any
// mutation, because mutation can change which monitor the window reports.
//
// A failure partway through leaves the completed steps applied; there is no
// rollback. Both style and geometry are absolute overwrites, so repeating a
// transition under the same monitor configuration is idempotent.
func (t *Transitioner) Transition(handle Handle, removeDecorations bool) error {
	if !t.backend.IsWindowValid(handle) {
		return fmt.Errorf("%w: hwnd 0x%x", ErrWindowNotFound, uintptr(handle))
	}

	if removeDecorations {
		if err := t.backend.RemoveMenu(handle); err != nil {
			return t.mutationError(handle, "remove menu", err)
		}
	}

	monitor, err := t.backend.MonitorForWindow(handle)
	if err != nil {
		return fmt.Errorf("%w: hwnd 0x%x: %v", ErrMonitorResolution, uintptr(handle), err)
	}

	t.log.Debug("Resolved monitor",
		slog.Uint64("hwnd", uint64(handle)),
		slog.String("device", monitor.Device),
		slog.Int("width", monitor.Bounds.Width),
		slog.Int("height", monitor.Bounds.Height),
	)

	if err := t.backend.ApplyBorderlessStyle(handle); err != nil {
		return t.mutationError(handle, "apply style", err)
	}

	if err := t.backend.SetFullscreenBounds(handle, monitor.Bounds); err != nil {
		return t.mutationError(handle, "set bounds", err)
	}

	t.log.Info("Window transitioned to borderless fullscreen",
		slog.Uint64("hwnd", uint64(handle)),
		slog.String("monitor", monitor.Device),
	)

	return nil
}

// mutationError distinguishes a window destroyed mid-transition from a
// mutation the window manager actually refused.
func (t *Transitioner) mutationError(handle Handle, op string, err error) error {
	if !t.backend.IsWindowValid(handle) {
		return fmt.Errorf("%w: hwnd 0x%x", ErrWindowNotFound, uintptr(handle))
	}

	return fmt.Errorf("%w: %s on hwnd 0x%x: %v", ErrMutationRejected, op, uintptr(handle), err)
}
