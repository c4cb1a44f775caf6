package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const userAgent = "grain-scenes/1.0"

// DefaultClient is used when Fetch is given a nil client.
var DefaultClient = &http.Client{Timeout: 60 * time.Second}

// Fetch downloads rawURL into destDir. The filename comes from Content-Disposition or the
// URL path; the extension from the URL or Content-Type. Returns the saved path. destDir is
// created if needed and a partial file is removed on failure.
func Fetch(ctx context.Context, client *http.Client, rawURL, destDir string) (savedPath string, err error) {
	if client == nil {
		client = DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: HTTP %d", resp.StatusCode)
	}

	name := filenameFromContentDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = filenameFromURL(rawURL)
	}
	ext := extensionOf(name)
	if ext == "" {
		ext = extensionFromURL(rawURL)
	}
	if ext == "" {
		ext = extensionFromContentType(resp.Header.Get("Content-Type"))
	}
	if ext == "" {
		ext = ".bin"
	}
	name = sanitizeFilename(strings.TrimSuffix(name, filepath.Ext(name)))
	savedPath = filepath.Join(destDir, name+ext)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	out, err := os.Create(savedPath)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	_, err = io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(savedPath)
		return "", fmt.Errorf("download: %w", err)
	}
	return savedPath, nil
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func filenameFromContentDisposition(cd string) string {
	cd = strings.TrimSpace(cd)
	if i := strings.Index(cd, "filename*=UTF-8''"); i >= 0 {
		s := cd[i+len("filename*=UTF-8''"):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\"")
	}
	if i := strings.Index(cd, "filename="); i >= 0 {
		s := cd[i+len("filename="):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\" ")
	}
	return ""
}

var knownExt = map[string]bool{
	".obj": true, ".mtl": true, ".zip": true, ".glb": true, ".gltf": true,
	".png": true, ".jpg": true, ".jpeg": true,
}

func extensionOf(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if knownExt[ext] {
		return ext
	}
	return ""
}

func extensionFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	switch {
	case strings.Contains(ct, "zip"):
		return ".zip"
	case strings.Contains(ct, "model/obj"), strings.Contains(ct, "wavefront"):
		return ".obj"
	case strings.Contains(ct, "gltf-binary"):
		return ".glb"
	case strings.Contains(ct, "png"):
		return ".png"
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		return ".jpg"
	}
	return ""
}

func extensionFromURL(rawURL string) string {
	return extensionOf(stripQuery(rawURL))
}

func filenameFromURL(rawURL string) string {
	base := path.Base(stripQuery(rawURL))
	if base == "." || base == "/" {
		return ""
	}
	return base
}

func stripQuery(rawURL string) string {
	if idx := strings.IndexAny(rawURL, "?#"); idx >= 0 {
		return rawURL[:idx]
	}
	return rawURL
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = safeNameRe.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		return "download"
	}
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
