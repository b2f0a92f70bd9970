package logger_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/wwb/internal/logger"
)

func TestGetLogPath_Default(t *testing.T) {
	t.Parallel()

	logPath := logger.GetLogPath(logger.LoggerOptions{})
	assert.True(t, filepath.IsAbs(logPath), "Log path should be absolute")
	assert.Equal(t, "wwb.log", filepath.Base(logPath))
	assert.Equal(t, "wwb", filepath.Base(filepath.Dir(logPath)))
}

func TestGetLogPath_CustomDir(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	logPath := logger.GetLogPath(logger.LoggerOptions{LogDir: tmpDir})
	assert.Equal(t, filepath.Join(tmpDir, "wwb.log"), logPath)
}

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	logDir := filepath.Join(tmpDir, "nested", "logs")

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: logDir})
	require.NoError(t, err)
	defer log.Close()

	assert.DirExists(t, logDir)
	assert.Equal(t, filepath.Join(logDir, "wwb.log"), log.GetLogPath())
}

func TestLogger_WritesToFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir})
	require.NoError(t, err)

	log.Info("hello from test", "key", "value")
	log.Trace("trace only entry")
	log.Close()

	data, err := os.ReadFile(filepath.Join(tmpDir, "wwb.log"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "hello from test")
	assert.Contains(t, content, "key=value")
	assert.Contains(t, content, "TRACE")
	assert.Contains(t, content, "trace only entry")
}

func TestPrintLogFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir})
	require.NoError(t, err)
	log.Info("printable entry")
	log.Close()

	var buf testWriter
	err = logger.PrintLogFile(&buf, logger.LoggerOptions{LogDir: tmpDir})
	require.NoError(t, err)
	assert.Contains(t, string(buf), "printable entry")
}

func TestPrintLogFile_MissingFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	err := logger.PrintLogFile(nil, logger.LoggerOptions{LogDir: filepath.Join(tmpDir, "empty")})
	assert.Error(t, err)

	// The wrapped error still reports file-not-found through errors.Is, so
	// callers can distinguish a missing log from an unreadable one.
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	log := logger.NewNoOpLogger()
	log.Info("ignored")
	log.Close()
	assert.Empty(t, log.GetLogPath())
}

// testWriter collects writes into a byte slice.
type testWriter []byte

func (w *testWriter) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}
