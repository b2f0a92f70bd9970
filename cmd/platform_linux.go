//go:build linux

package cmd

import (
	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/wm"
	"github.com/Norgate-AV/wwb/internal/x11"
)

// newBackend creates the X11 backend. The returned cleanup closes the X
// connection.
func newBackend(log logger.LoggerInterface) (wm.Backend, func(), error) {
	backend, err := x11.NewBackend(log)
	if err != nil {
		return nil, nil, err
	}

	return backend, backend.Close, nil
}
