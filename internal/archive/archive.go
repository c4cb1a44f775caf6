package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned by FindFirst when no file has the wanted extension.
var ErrNotFound = errors.New("archive: no matching file")

// Unzip extracts zipPath into destDir, preserving directory structure. Entries that would
// escape destDir are skipped. Returns the extracted file paths.
func Unzip(zipPath, destDir string) (extracted []string, err error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	defer r.Close()
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	for _, f := range r.File {
		dest := filepath.Clean(filepath.Join(destDir, f.Name))
		absDest, err := filepath.Abs(dest)
		if err != nil {
			return nil, fmt.Errorf("unzip: %w", err)
		}
		if !strings.HasPrefix(absDest, absDir+string(os.PathSeparator)) {
			continue
		}
		if f.FileInfo().IsDir() {
			_ = os.MkdirAll(dest, 0755)
			continue
		}
		if err := extract(f, dest); err != nil {
			return nil, fmt.Errorf("unzip: %w", err)
		}
		extracted = append(extracted, dest)
	}
	return extracted, nil
}

func extract(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		out.Close()
		return err
	}
	_, err = io.Copy(out, rc)
	rc.Close()
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// FindFirst returns the first file under dir (lexical walk order) whose extension matches
// ext case-insensitively, e.g. ".obj".
func FindFirst(dir, ext string) (string, error) {
	ext = strings.ToLower(ext)
	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.ToLower(filepath.Ext(path)) == ext {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("archive: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s in %s", ErrNotFound, ext, dir)
	}
	sort.Strings(matches)
	return matches[0], nil
}
