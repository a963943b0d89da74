package cheatsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/output"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerate(t *testing.T) {
	rosterPath := writeRoster(t, intercessorRoster)
	out := filepath.Join(t.TempDir(), DefaultOutput)

	opts := DefaultOptions()
	opts.Output = out

	report, err := Generate(rosterPath, opts)
	require.NoError(t, err)
	assert.Equal(t, out, report.Output)
	require.Len(t, report.Rows, 1)

	rows, err := output.ReadRows(out, DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, report.Rows, rows)
}

func TestGenerateStrictWritesNothing(t *testing.T) {
	rosterPath := writeRoster(t, malformedRoster)
	dir := t.TempDir()

	opts := DefaultOptions()
	opts.Output = filepath.Join(dir, "out.xlsx")
	opts.Strict = true

	_, err := Generate(rosterPath, opts)
	require.ErrorIs(t, err, ErrMalformedProfile)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateInputErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.Output = filepath.Join(t.TempDir(), "out.xlsx")

	_, err := Generate(filepath.Join(t.TempDir(), "nope.json"), opts)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = Generate(writeRoster(t, `{"roster": {}}`), opts)
	assert.ErrorIs(t, err, ErrInvalidRoster)

	_, statErr := os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(statErr))
}
