//go:build windows

package windows

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/wm"
)

// Backend implements wm.Backend on the Win32 API.
//
// The EnumWindows callback is registered with syscall.NewCallback exactly
// once per Backend, since callback registrations are never released by the
// runtime. The mutex serializes enumerations so the visit function the
// callback dispatches to is unambiguous; each call still folds into its own
// fresh result via that function, so no enumeration state outlives a call.
type Backend struct {
	log logger.LoggerInterface

	mu           sync.Mutex
	enumCallback uintptr
	visit        func(wm.Window) bool
	stopped      bool
}

var _ wm.Backend = (*Backend)(nil)

// NewBackend creates a Win32 backend.
func NewBackend(log logger.LoggerInterface) *Backend {
	b := &Backend{log: log}
	b.enumCallback = syscall.NewCallback(b.onEnumWindow)

	return b
}

// onEnumWindow is the EnumWindows callback. Invisible windows are filtered
// here unconditionally. Returning 0 stops the walk.
func (b *Backend) onEnumWindow(hwnd, lparam uintptr) uintptr {
	if !IsWindowVisible(hwnd) {
		return 1
	}

	win := wm.Window{
		Handle: wm.Handle(hwnd),
		Title:  GetWindowText(hwnd),
		PID:    GetWindowPid(hwnd),
	}

	if !b.visit(win) {
		b.stopped = true
		return 0
	}

	return 1
}

// EnumWindows walks the visible top-level windows in Z order.
func (b *Backend) EnumWindows(visit func(wm.Window) bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.visit = visit
	b.stopped = false

	ret, _, err := procEnumWindows.Call(b.enumCallback, 0)
	b.visit = nil

	// EnumWindows reports failure when the callback stops the walk early;
	// that is our early exit, not an error.
	if ret == 0 && !b.stopped {
		return fmt.Errorf("EnumWindows: %v", err)
	}

	return nil
}

// IsWindowValid reports whether the handle still refers to a live window.
func (b *Backend) IsWindowValid(handle wm.Handle) bool {
	return IsWindow(uintptr(handle))
}

// MonitorForWindow resolves the monitor nearest to the window.
func (b *Backend) MonitorForWindow(handle wm.Handle) (wm.Monitor, error) {
	hmon, _, err := procMonitorFromWindow.Call(uintptr(handle), MONITOR_DEFAULTTONEAREST)
	if hmon == 0 {
		return wm.Monitor{}, fmt.Errorf("MonitorFromWindow: %v", err)
	}

	mi := MONITORINFOEXW{}
	mi.CbSize = uint32(unsafe.Sizeof(mi))

	ret, _, err := procGetMonitorInfoW.Call(hmon, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return wm.Monitor{}, fmt.Errorf("GetMonitorInfo: %v", err)
	}

	return wm.Monitor{
		Device: syscall.UTF16ToString(mi.SzDevice[:]),
		Bounds: wm.Rect{
			X:      int(mi.RcMonitor.Left),
			Y:      int(mi.RcMonitor.Top),
			Width:  int(mi.RcMonitor.Right - mi.RcMonitor.Left),
			Height: int(mi.RcMonitor.Bottom - mi.RcMonitor.Top),
		},
	}, nil
}

// ApplyBorderlessStyle overwrites the window style with the borderless mask.
func (b *Backend) ApplyBorderlessStyle(handle wm.Handle) error {
	ret, _, err := setWindowLongPtrProc().Call(uintptr(handle), GWL_STYLE, BorderlessStyle)
	if ret == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return fmt.Errorf("SetWindowLongPtr(GWL_STYLE): %v", err)
		}
		// A zero return with no error just means the previous style was 0.
	}

	return nil
}

// SetFullscreenBounds moves and resizes the window to the given rectangle.
// SWP_FRAMECHANGED forces the window manager to recompute the frame for the
// rewritten style; without it the style change may not take visual effect.
func (b *Backend) SetFullscreenBounds(handle wm.Handle, bounds wm.Rect) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(handle),
		HWND_TOP,
		uintptr(bounds.X),
		uintptr(bounds.Y),
		uintptr(bounds.Width),
		uintptr(bounds.Height),
		SWP_FRAMECHANGED|SWP_SHOWWINDOW,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %v", err)
	}

	return nil
}

// RemoveMenu detaches the window's menu bar. Windows without a menu are left
// untouched.
func (b *Backend) RemoveMenu(handle wm.Handle) error {
	hmenu, _, _ := procGetMenu.Call(uintptr(handle))
	if hmenu == 0 {
		return nil
	}

	ret, _, err := procSetMenu.Call(uintptr(handle), 0)
	if ret == 0 {
		return fmt.Errorf("SetMenu: %v", err)
	}

	return nil
}
