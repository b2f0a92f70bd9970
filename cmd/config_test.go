package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/wwb/internal/config"
)

func TestNewOptionsFromFlags_FileDefaultsApply(t *testing.T) {
	t.Parallel()

	cmd := newTestCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	fileCfg := config.Default()
	fileCfg.AllMatches = true
	fileCfg.CaseInsensitive = true

	opts, err := NewOptionsFromFlags(cmd, fileCfg)
	require.NoError(t, err)

	assert.True(t, opts.AllMatches)
	assert.True(t, opts.CaseInsensitive)
	assert.False(t, opts.RemoveDecorations)
	assert.Equal(t, 500*time.Millisecond, opts.WatchInterval)
	assert.Equal(t, time.Duration(0), opts.WatchTimeout)
}

func TestNewOptionsFromFlags_ExplicitFlagBeatsFile(t *testing.T) {
	t.Parallel()

	cmd := newTestCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	// The user explicitly turned the flag off; the file says on.
	require.NoError(t, cmd.Flags().Set("all-matches", "false"))

	fileCfg := config.Default()
	fileCfg.AllMatches = true

	opts, err := NewOptionsFromFlags(cmd, fileCfg)
	require.NoError(t, err)

	assert.False(t, opts.AllMatches)
}

func TestNewOptionsFromFlags_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	cmd := newTestCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-d", "--watch-interval", "50ms", "--watch-timeout", "10s"}))

	fileCfg := config.Default()
	fileCfg.Watch.Interval = "2s"

	opts, err := NewOptionsFromFlags(cmd, fileCfg)
	require.NoError(t, err)

	assert.True(t, opts.RemoveDecorations)
	assert.Equal(t, 50*time.Millisecond, opts.WatchInterval)
	assert.Equal(t, 10*time.Second, opts.WatchTimeout)
}

func TestNewOptionsFromFlags_MonitorReserved(t *testing.T) {
	t.Parallel()

	cmd := newTestCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	opts, err := NewOptionsFromFlags(cmd, config.Default())
	require.NoError(t, err)
	assert.False(t, opts.MonitorSet)

	cmd = newTestCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-m", "2"}))

	opts, err = NewOptionsFromFlags(cmd, config.Default())
	require.NoError(t, err)
	assert.True(t, opts.MonitorSet)
	assert.Equal(t, 2, opts.Monitor)
}

func TestMatchPolicy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first", matchPolicy(&Options{}).String())
	assert.Equal(t, "all", matchPolicy(&Options{AllMatches: true}).String())
}
