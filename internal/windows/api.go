//go:build windows

// Package windows implements the window-manager backend on the Win32 API.
package windows

import (
	"syscall"
	"unsafe"
)

var (
	user32                       = syscall.NewLazyDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procSetWindowLongPtrW        = user32.NewProc("SetWindowLongPtrW")
	procSetWindowLongW           = user32.NewProc("SetWindowLongW")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procGetMenu                  = user32.NewProc("GetMenu")
	procSetMenu                  = user32.NewProc("SetMenu")
	procMonitorFromWindow        = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW          = user32.NewProc("GetMonitorInfoW")
)

const (
	// GWL_STYLE is the SetWindowLongPtr index for the window style
	// (-16 as a sign-extended uintptr).
	GWL_STYLE = ^uintptr(15)

	WS_VISIBLE      = 0x10000000
	WS_POPUP        = 0x80000000
	WS_CLIPCHILDREN = 0x02000000

	SWP_FRAMECHANGED = 0x0020
	SWP_SHOWWINDOW   = 0x0040

	HWND_TOP = 0

	MONITOR_DEFAULTTONEAREST = 0x00000002
)

// BorderlessStyle is the fixed style mask applied to every transitioned
// window. WS_POPUP is the operative bit that removes the frame.
const BorderlessStyle = WS_VISIBLE | WS_POPUP | WS_CLIPCHILDREN

// RECT mirrors the Win32 RECT structure.
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// MONITORINFOEXW mirrors the Win32 MONITORINFOEXW structure. SzDevice holds
// the display device name, e.g. `\\.\DISPLAY1`.
type MONITORINFOEXW struct {
	CbSize    uint32
	RcMonitor RECT
	RcWork    RECT
	DwFlags   uint32
	SzDevice  [32]uint16
}

// setWindowLongPtrProc resolves the proc for writing window longs. 32-bit
// user32 does not export SetWindowLongPtrW; SetWindowLongW is the equivalent
// call there, since longs and pointers are both 32 bits wide.
func setWindowLongPtrProc() *syscall.LazyProc {
	if procSetWindowLongPtrW.Find() == nil {
		return procSetWindowLongPtrW
	}

	return procSetWindowLongW
}

// GetWindowText retrieves the title text of a window
func GetWindowText(hwnd uintptr) string {
	buf := make([]uint16, 256)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return syscall.UTF16ToString(buf)
}

// GetWindowPid retrieves the process ID of a window
func GetWindowPid(hwnd uintptr) uint32 {
	var pid uint32

	ret, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if ret == 0 {
		return 0
	}

	return pid
}

// IsWindow checks if a window handle is valid
func IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// IsWindowVisible checks if a window is visible
func IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}
