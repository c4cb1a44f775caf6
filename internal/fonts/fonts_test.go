package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte{0}, 0644))
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "RobotoMono", "RobotoMono-Bold.ttf"))
	touch(t, filepath.Join(dir, "RobotoMono", "RobotoMono-Regular.ttf"))
	touch(t, filepath.Join(dir, "notes.txt"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"RobotoMono/RobotoMono-Bold.ttf", "RobotoMono/RobotoMono-Regular.ttf"}, list)

	got, err := Find(dir, "Roboto Mono")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "RobotoMono", "RobotoMono-Regular.ttf"), got)
}

func TestFindExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.otf")
	touch(t, path)
	got, err := Find("unused", path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "none"), "Inter")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = Find(t.TempDir(), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
