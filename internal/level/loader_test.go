package level

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLevel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadValidLevel(t *testing.T) {
	path := writeLevel(t, "BBB\nBBB\n")

	grid, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"BBB", "BBB"}, grid.Rows)
	assert.Equal(t, 3, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.Equal(t, path, grid.Source)
}

func TestLoadIsDeterministic(t *testing.T) {
	path := writeLevel(t, "R.R.R\n.G.G.\n\nYYYYY\n")

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := writeLevel(t, "\n   \nAB\n\t\nCD\n\n")

	grid, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "CD"}, grid.Rows)
}

func TestLoadPreservesCharacters(t *testing.T) {
	// Leading spaces inside a non-blank row are cells, not padding.
	path := writeLevel(t, " B \nB.B\r\n")

	grid, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{" B ", "B.B"}, grid.Rows)
}

func TestLoadUnequalWidths(t *testing.T) {
	path := writeLevel(t, "BBB\n\nBB\n")

	_, err := Load(path)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
	assert.Equal(t, 3, verr.Line)
	assert.Equal(t, 3, verr.Want)
	assert.Equal(t, 2, verr.Got)
	assert.Contains(t, verr.Error(), "row width 2, expected 3")
}

func TestLoadCountsCharactersNotBytes(t *testing.T) {
	path := writeLevel(t, "ñB\nBB\n")

	grid, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Width())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadDirectoryIsNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadEmptyLevel(t *testing.T) {
	path := writeLevel(t, "\n  \n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDemo(t *testing.T) {
	grid, err := Demo()
	require.NoError(t, err)
	assert.Equal(t, DemoName, grid.Source)
	assert.Equal(t, 6, grid.Height())
	assert.Equal(t, 11, grid.Width())
}

func TestLoadOrDemo(t *testing.T) {
	grid, err := LoadOrDemo("")
	require.NoError(t, err)
	assert.Equal(t, DemoName, grid.Source)

	path := writeLevel(t, "RR\nGG\n")
	grid, err = LoadOrDemo(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"RR", "GG"}, grid.Rows)

	_, err = LoadOrDemo(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}
