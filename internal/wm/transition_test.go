package wm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/testutil"
	"github.com/Norgate-AV/wwb/internal/wm"
)

func TestTransition_AppliesStyleThenBounds(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend().
		WithMonitor(7, wm.Monitor{
			Device: `\\.\DISPLAY2`,
			Bounds: wm.Rect{X: 1920, Y: 0, Width: 2560, Height: 1440},
		})

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	require.NoError(t, trans.Transition(7, false))

	// Monitor is resolved before any mutation, then style before geometry.
	assert.Equal(t, []string{"monitor:7", "style:7", "bounds:7"}, backend.Ops)

	require.Len(t, backend.BoundsCalls, 1)
	assert.Equal(t, wm.Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}, backend.BoundsCalls[0].Bounds)
}

func TestTransition_WindowFillsItsMonitor(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend().
		WithMonitor(5, wm.Monitor{
			Device: `\\.\DISPLAY1`,
			Bounds: wm.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		})

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	// A 640x480 window at (100,100) ends up exactly covering the monitor.
	require.NoError(t, trans.Transition(5, false))

	require.Len(t, backend.BoundsCalls, 1)
	assert.Equal(t, wm.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, backend.BoundsCalls[0].Bounds)
	assert.Equal(t, []wm.Handle{5}, backend.StyleCalls)
}

func TestTransition_RemoveDecorationsStripsMenuFirst(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend().WithMenu(9)

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	require.NoError(t, trans.Transition(9, true))

	assert.Equal(t, []string{"menu:9", "monitor:9", "style:9", "bounds:9"}, backend.Ops)
	assert.Equal(t, []wm.Handle{9}, backend.RemoveMenuCalls)
}

func TestTransition_NoMenuIsNoOp(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend()

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	require.NoError(t, trans.Transition(9, true))
	assert.Empty(t, backend.RemoveMenuCalls)
}

func TestTransition_Idempotent(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend()

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	require.NoError(t, trans.Transition(3, false))
	require.NoError(t, trans.Transition(3, false))

	require.Len(t, backend.BoundsCalls, 2)
	assert.Equal(t, backend.BoundsCalls[0].Bounds, backend.BoundsCalls[1].Bounds)
}

func TestTransition_StaleHandle(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend().WithInvalid(4)

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	err := trans.Transition(4, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, wm.ErrWindowNotFound)

	// Nothing was mutated.
	assert.Empty(t, backend.Ops)
}

func TestTransition_MonitorResolutionFailure(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend()
	backend.MonitorErr = errors.New("no monitors")

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	err := trans.Transition(6, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, wm.ErrMonitorResolution)

	// Failure before mutation leaves the window untouched.
	assert.Empty(t, backend.StyleCalls)
	assert.Empty(t, backend.BoundsCalls)
}

func TestTransition_MutationRejected(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend()
	backend.BoundsErr = errors.New("access denied")

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	err := trans.Transition(8, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, wm.ErrMutationRejected)

	// The style overwrite before the failing step stays applied.
	assert.Equal(t, []wm.Handle{8}, backend.StyleCalls)
}

func TestTransition_WindowDestroyedMidTransition(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockBackend()
	backend.BoundsErr = errors.New("invalid window handle")
	backend.InvalidateOnMutationErr = true

	trans := wm.NewTransitioner(backend, logger.NewNoOpLogger())

	// A mutation failure on a window that has since been destroyed reports
	// the window as gone, not the mutation as rejected.
	err := trans.Transition(8, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, wm.ErrWindowNotFound)
	assert.NotErrorIs(t, err, wm.ErrMutationRejected)
}
