package runlog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"antlauncher/internal/runlog"
)

func TestWritesLinesAndSummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := runlog.New(dir, nil)
	require.NoError(t, err)

	l.WriteLine("iteration 1")
	l.WriteLine("iteration 2")
	require.NoError(t, l.Finish("exit: success"))

	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)

	content := string(data)
	assert.Equal(t, "iteration 1\niteration 2\n--- exit: success\n", content)
}

func TestCreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	l, err := runlog.New(dir, nil)
	require.NoError(t, err)
	require.NoError(t, l.Finish(""))

	assert.True(t, strings.HasPrefix(l.Path(), dir))
	_, err = os.Stat(l.Path())
	assert.NoError(t, err)
}

func TestFinishWithoutLines(t *testing.T) {
	l, err := runlog.New(t.TempDir(), nil)
	require.NoError(t, err)
	require.NoError(t, l.Finish("exit: failure"))

	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Equal(t, "--- exit: failure\n", string(data))
}
