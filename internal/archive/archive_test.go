package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, body := range files {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestUnzipAndFindObj(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"deer/readme.txt": "cc-by",
		"deer/Deer.OBJ":   "v 0 0 0\n",
		"deer/deer.mtl":   "newmtl a\n",
	})
	dest := filepath.Join(t.TempDir(), "out")

	files, err := Unzip(zipPath, dest)
	require.NoError(t, err)
	assert.Len(t, files, 3)

	obj, err := FindFirst(dest, ".obj")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "deer", "Deer.OBJ"), obj)
}

func TestFindFirstNone(t *testing.T) {
	_, err := FindFirst(t.TempDir(), ".obj")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnzipBadArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))
	_, err := Unzip(path, t.TempDir())
	assert.Error(t, err)
}
