package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.csv", "a.CSV", "notes.txt", "ignore.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	files := DataFiles(dir, []string{".csv", ".txt"})

	assert.Equal(t, []string{
		filepath.Join(dir, "a.CSV"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "notes.txt"),
	}, files)
}

func TestDataFiles_UnreadableDir(t *testing.T) {
	files := DataFiles(filepath.Join(t.TempDir(), "missing"), []string{".csv"})
	assert.Empty(t, files)
}
