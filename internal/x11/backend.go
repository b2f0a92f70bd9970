//go:build linux

package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/wm"
)

// Backend implements wm.Backend on an X11 connection.
type Backend struct {
	conn *Connection
	log  logger.LoggerInterface
}

var _ wm.Backend = (*Backend)(nil)

// NewBackend creates an X11 backend by opening a fresh connection.
func NewBackend(log logger.LoggerInterface) (*Backend, error) {
	conn, err := NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	return &Backend{conn: conn, log: log}, nil
}

// Close disconnects from the X11 server.
func (b *Backend) Close() {
	b.conn.Close()
}

// EnumWindows walks the EWMH client list in the window manager's order,
// visiting only windows that are currently viewable and not hidden.
func (b *Backend) EnumWindows(visit func(wm.Window) bool) error {
	clients, err := ewmh.ClientListGet(b.conn.XUtil)
	if err != nil {
		return fmt.Errorf("failed to get client list: %w", err)
	}

	for _, win := range clients {
		if !b.isViewable(win) {
			continue
		}

		pid := uint32(0)
		if p, err := ewmh.WmPidGet(b.conn.XUtil, win); err == nil {
			pid = uint32(p)
		}

		w := wm.Window{
			Handle: wm.Handle(win),
			Title:  b.windowTitle(win),
			PID:    pid,
		}

		if !visit(w) {
			break
		}
	}

	return nil
}

// IsWindowValid reports whether the window ID still refers to a live window.
func (b *Backend) IsWindowValid(handle wm.Handle) bool {
	_, err := xproto.GetWindowAttributes(b.conn.XUtil.Conn(), xproto.Window(handle)).Reply()
	return err == nil
}

// MonitorForWindow resolves the monitor containing the window's center, or
// the nearest monitor for windows dragged off every display.
func (b *Backend) MonitorForWindow(handle wm.Handle) (wm.Monitor, error) {
	monitors, err := b.conn.Monitors()
	if err != nil {
		return wm.Monitor{}, err
	}

	x, y, err := b.conn.windowCenter(xproto.Window(handle))
	if err != nil {
		return wm.Monitor{}, fmt.Errorf("failed to get window geometry: %w", err)
	}

	return monitorFor(monitors, x, y)
}

// ApplyBorderlessStyle turns off all window decorations via Motif WM hints
// and drops any maximized/fullscreen state so the window manager will honor
// the explicit geometry that follows.
func (b *Backend) ApplyBorderlessStyle(handle wm.Handle) error {
	win := xproto.Window(handle)

	hints := &motif.Hints{
		Flags:      motif.HintDecorations,
		Decoration: 0, // no decorations at all
	}
	if err := motif.WmHintsSet(b.conn.XUtil, win, hints); err != nil {
		return fmt.Errorf("failed to set motif hints: %w", err)
	}

	// Managed maximized/fullscreen windows ignore configure requests.
	if states, err := ewmh.WmStateGet(b.conn.XUtil, win); err == nil {
		for _, state := range states {
			switch state {
			case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_FULLSCREEN":
				if err := ewmh.WmStateReq(b.conn.XUtil, win, 0, state); err != nil {
					return fmt.Errorf("failed to clear %s: %w", state, err)
				}
			}
		}
	}

	return nil
}

// SetFullscreenBounds moves and resizes the window to exactly the given
// rectangle, then raises and maps it so the change takes effect immediately.
func (b *Backend) SetFullscreenBounds(handle wm.Handle, bounds wm.Rect) error {
	win := xproto.Window(handle)

	// EWMH moveresize goes through the window manager; fall back to a
	// direct configure when the WM does not support it.
	err := ewmh.MoveresizeWindow(b.conn.XUtil, win, bounds.X, bounds.Y, bounds.Width, bounds.Height)
	if err != nil {
		xwindow.New(b.conn.XUtil, win).MoveResize(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	}

	xwin := xwindow.New(b.conn.XUtil, win)
	xwin.Stack(xproto.StackModeAbove)
	xwin.Map()

	return nil
}

// RemoveMenu is a no-op on X11: menu bars are client-drawn widgets, not a
// window-manager object that can be detached.
func (b *Backend) RemoveMenu(handle wm.Handle) error {
	return nil
}

func (b *Backend) isViewable(win xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(b.conn.XUtil.Conn(), win).Reply()
	if err != nil || attrs.MapState != xproto.MapStateViewable {
		return false
	}

	if states, err := ewmh.WmStateGet(b.conn.XUtil, win); err == nil {
		for _, state := range states {
			if state == "_NET_WM_STATE_HIDDEN" {
				return false
			}
		}
	}

	return true
}

func (b *Backend) windowTitle(win xproto.Window) string {
	title, err := ewmh.WmNameGet(b.conn.XUtil, win)
	if err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(b.conn.XUtil, win)
	if err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}

	return ""
}
