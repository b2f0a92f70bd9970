//go:build !windows && !linux

package cmd

import (
	"fmt"
	"runtime"

	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/wm"
)

func newBackend(log logger.LoggerInterface) (wm.Backend, func(), error) {
	return nil, nil, fmt.Errorf("no window-manager backend for %s", runtime.GOOS)
}
