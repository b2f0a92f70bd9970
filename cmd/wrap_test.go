package cmd

import (
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildExitError_PropagatesStatus(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("test relies on sh")
	}

	child := exec.Command("sh", "-c", "exit 3")
	require.NoError(t, child.Start())

	waitErr := child.Wait()
	require.Error(t, waitErr)

	err := childExitError("sh", waitErr)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "Wait failure should carry the child's exit status")
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, err.Error(), "exited with status 3")
}

func TestChildExitError_NonExitFailure(t *testing.T) {
	t.Parallel()

	waitErr := errors.New("waitid: no child processes")

	err := childExitError("game", waitErr)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr), "a failure without an exit status stays a plain error")
	assert.ErrorIs(t, err, waitErr)
	assert.Contains(t, err.Error(), "game")
}

func TestExitError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	err := &ExitError{Code: 7, Err: inner}

	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, inner)
}
