package results_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"antlauncher/internal/results"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWellFormed(t *testing.T) {
	path := writeCSV(t, "a,b,c\n1,2,3\n4,5,6\n")

	table, err := results.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[0])
	assert.Equal(t, []string{"4", "5", "6"}, table.Rows[1])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := results.Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, results.ErrFileMissing)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := results.Load(path)
	var parseErr *results.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadPadsShortRows(t *testing.T) {
	path := writeCSV(t, "a,b,c\n1,2\n")

	table, err := results.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", ""}, table.Rows[0])
}

func TestLoadRejectsWideRows(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2,3\n")

	_, err := results.Load(path)
	var parseErr *results.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Row)
}

func TestLoadRejectsBrokenQuoting(t *testing.T) {
	path := writeCSV(t, "a,b\n\"unterminated,2\n")

	_, err := results.Load(path)
	var parseErr *results.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestColumnIndex(t *testing.T) {
	path := writeCSV(t, "threshold,density\n0,0.5\n")

	table, err := results.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, table.ColumnIndex("density"))
	assert.Equal(t, -1, table.ColumnIndex("missing"))
}

func TestSummarize(t *testing.T) {
	path := writeCSV(t, "threshold,density,label\n0,0.1,low\n5,0.25,mid\n10,0.4,high\n")

	table, err := results.Load(path)
	require.NoError(t, err)

	summary, ok := table.Summarize("density")
	require.True(t, ok)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 0, summary.NonNumeric)
	assert.Equal(t, "0.1", summary.Min.String())
	assert.Equal(t, "0.4", summary.Max.String())
	assert.Equal(t, "0.25", summary.Mean.String())
}

func TestSummarizeSkipsNonNumeric(t *testing.T) {
	path := writeCSV(t, "v\n1\nn/a\n3\n")

	table, err := results.Load(path)
	require.NoError(t, err)

	summary, ok := table.Summarize("v")
	require.True(t, ok)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 1, summary.NonNumeric)
	assert.Equal(t, "2", summary.Mean.String())
}

func TestSummarizeNoNumericColumn(t *testing.T) {
	path := writeCSV(t, "label\nfoo\nbar\n")

	table, err := results.Load(path)
	require.NoError(t, err)

	_, ok := table.Summarize("label")
	assert.False(t, ok)

	_, ok = table.Summarize("missing")
	assert.False(t, ok)
}
