//go:build windows

package cmd

import (
	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/windows"
	"github.com/Norgate-AV/wwb/internal/wm"
)

// newBackend creates the Win32 backend. The returned cleanup is a no-op;
// there is no connection to tear down.
func newBackend(log logger.LoggerInterface) (wm.Backend, func(), error) {
	return windows.NewBackend(log), func() {}, nil
}
