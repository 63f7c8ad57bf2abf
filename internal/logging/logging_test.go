package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "jasktodo.log")
	logger, closeFn, err := New(Options{Path: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("task added", "id", "t1")
	logger.Info("started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, "DEBU")
	require.Contains(t, out, "task added")
	require.Contains(t, out, "id=t1")
	require.Contains(t, out, "jasktodo")
}

func TestNewWithoutPathDiscards(t *testing.T) {
	t.Parallel()

	logger, closeFn, err := New(Options{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.Equal(t, log.InfoLevel, logger.GetLevel())
	logger.Info("dropped")
	require.NoError(t, closeFn())
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, log.WarnLevel)
	logger.Info("quiet")
	logger.Warn("loud")

	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), "loud")
}
