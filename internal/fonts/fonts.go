package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BaseDir holds optional TTF/OTF files for the overlay text.
const BaseDir = "assets/fonts"

var exts = []string{".ttf", ".otf"}

// ScanDir returns slash-separated paths, relative to dir, of every font file under dir.
// A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range exts {
			if ext == e {
				rel, err := filepath.Rel(dir, path)
				if err != nil {
					return err
				}
				out = append(out, filepath.ToSlash(rel))
				return nil
			}
		}
		return nil
	})
	sort.Strings(out)
	return out, err
}

// normalize lowercases and drops spaces, dashes and underscores for fuzzy matching.
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Find returns the full path of the font under dir whose relative path contains search
// (fuzzy: "Roboto Mono" matches "RobotoMono/RobotoMono-Regular.ttf"). When several
// match, a "Regular" face wins. search may also be an existing file path.
func Find(dir, search string) (string, error) {
	if search == "" {
		return "", os.ErrNotExist
	}
	if info, err := os.Stat(search); err == nil && !info.IsDir() {
		return search, nil
	}
	norm := normalize(strings.TrimSuffix(strings.TrimSuffix(search, ".ttf"), ".otf"))
	list, err := ScanDir(dir)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, rel := range list {
		if strings.Contains(normalize(rel), norm) {
			matches = append(matches, rel)
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	pick := matches[0]
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m), "regular") {
			pick = m
			break
		}
	}
	return filepath.Join(dir, filepath.FromSlash(pick)), nil
}
