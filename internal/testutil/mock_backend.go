package testutil

import (
	"fmt"
	"sync"

	"github.com/Norgate-AV/wwb/internal/wm"
)

// SetBoundsCall records a single SetFullscreenBounds invocation.
type SetBoundsCall struct {
	Handle wm.Handle
	Bounds wm.Rect
}

// MockBackend implements wm.Backend for tests. It records all mutation calls
// for verification and lets tests inject failures per operation or per
// handle. The mutex allows watch-mode tests to swap the window list while a
// watcher polls concurrently.
type MockBackend struct {
	mu sync.Mutex

	Windows []wm.Window
	EnumErr error

	Invalid     map[wm.Handle]bool
	Monitors    map[wm.Handle]wm.Monitor
	MenuPresent map[wm.Handle]bool

	DefaultMonitor wm.Monitor
	MonitorErr     error
	StyleErr       error
	BoundsErr      error
	MenuErr        error

	// InvalidateOnMutationErr marks the handle invalid whenever a mutation
	// fails, simulating a window destroyed mid-operation.
	InvalidateOnMutationErr bool

	EnumCalls       int
	StyleCalls      []wm.Handle
	BoundsCalls     []SetBoundsCall
	RemoveMenuCalls []wm.Handle

	// Ops records every backend operation in call order, tagged with the
	// handle, e.g. "monitor:7", "style:7", "bounds:7".
	Ops []string
}

var _ wm.Backend = (*MockBackend)(nil)

func NewMockBackend() *MockBackend {
	return &MockBackend{
		Invalid:     make(map[wm.Handle]bool),
		Monitors:    make(map[wm.Handle]wm.Monitor),
		MenuPresent: make(map[wm.Handle]bool),
		DefaultMonitor: wm.Monitor{
			Device: `\\.\DISPLAY1`,
			Bounds: wm.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		},
	}
}

// Fluent helpers for test setup

func (m *MockBackend) WithWindow(handle wm.Handle, title string, pid uint32) *MockBackend {
	m.Windows = append(m.Windows, wm.Window{Handle: handle, Title: title, PID: pid})
	return m
}

func (m *MockBackend) WithMonitor(handle wm.Handle, monitor wm.Monitor) *MockBackend {
	m.Monitors[handle] = monitor
	return m
}

func (m *MockBackend) WithMenu(handle wm.Handle) *MockBackend {
	m.MenuPresent[handle] = true
	return m
}

func (m *MockBackend) WithInvalid(handle wm.Handle) *MockBackend {
	m.Invalid[handle] = true
	return m
}

// SetWindows replaces the enumerable window list. Safe to call while a
// watcher is polling.
func (m *MockBackend) SetWindows(windows []wm.Window) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Windows = windows
}

// SetInvalid flips a handle's validity. Safe to call while a watcher is
// polling.
func (m *MockBackend) SetInvalid(handle wm.Handle, invalid bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Invalid[handle] = invalid
}

func (m *MockBackend) EnumWindows(visit func(wm.Window) bool) error {
	m.mu.Lock()
	m.EnumCalls++

	if m.EnumErr != nil {
		err := m.EnumErr
		m.mu.Unlock()

		return err
	}

	windows := make([]wm.Window, len(m.Windows))
	copy(windows, m.Windows)
	m.mu.Unlock()

	for _, w := range windows {
		if !visit(w) {
			break
		}
	}

	return nil
}

func (m *MockBackend) IsWindowValid(handle wm.Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return !m.Invalid[handle]
}

func (m *MockBackend) MonitorForWindow(handle wm.Handle) (wm.Monitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Ops = append(m.Ops, opTag("monitor", handle))

	if m.MonitorErr != nil {
		return wm.Monitor{}, m.MonitorErr
	}

	if mon, ok := m.Monitors[handle]; ok {
		return mon, nil
	}

	return m.DefaultMonitor, nil
}

func (m *MockBackend) ApplyBorderlessStyle(handle wm.Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Ops = append(m.Ops, opTag("style", handle))

	if m.StyleErr != nil {
		if m.InvalidateOnMutationErr {
			m.Invalid[handle] = true
		}

		return m.StyleErr
	}

	m.StyleCalls = append(m.StyleCalls, handle)

	return nil
}

func (m *MockBackend) SetFullscreenBounds(handle wm.Handle, bounds wm.Rect) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Ops = append(m.Ops, opTag("bounds", handle))

	if m.BoundsErr != nil {
		if m.InvalidateOnMutationErr {
			m.Invalid[handle] = true
		}

		return m.BoundsErr
	}

	m.BoundsCalls = append(m.BoundsCalls, SetBoundsCall{Handle: handle, Bounds: bounds})

	return nil
}

func (m *MockBackend) RemoveMenu(handle wm.Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Ops = append(m.Ops, opTag("menu", handle))

	if m.MenuErr != nil {
		return m.MenuErr
	}

	if m.MenuPresent[handle] {
		m.RemoveMenuCalls = append(m.RemoveMenuCalls, handle)
		m.MenuPresent[handle] = false
	}

	return nil
}

func opTag(op string, handle wm.Handle) string {
	return fmt.Sprintf("%s:%d", op, handle)
}
