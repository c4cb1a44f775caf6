// Package asset resolves model sources (local paths, http(s) URLs, zip archives) to a
// local file in the background. The caller polls for results on the frame thread and
// does the GPU upload there.
package asset

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"grain-scenes/internal/archive"
	"grain-scenes/internal/download"
	"grain-scenes/internal/logger"
)

// DefaultCacheDir receives downloaded and extracted models.
const DefaultCacheDir = "assets/models/downloaded"

// Result is one finished request. Path is set on success, Err otherwise.
type Result struct {
	ID     uuid.UUID
	Source string
	Path   string
	Err    error
}

// Loader runs one goroutine per request and hands results back through Poll.
type Loader struct {
	CacheDir string
	Client   *http.Client
	Ext      string // wanted file extension inside archives, ".obj" by default

	log     logger.Leveled
	results chan Result
	wg      sync.WaitGroup
}

// NewLoader returns a loader caching into cacheDir (DefaultCacheDir when empty).
func NewLoader(cacheDir string, log logger.Leveled) *Loader {
	if cacheDir == "" {
		cacheDir = DefaultCacheDir
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		CacheDir: cacheDir,
		Ext:      ".obj",
		log:      log,
		results:  make(chan Result, 8),
	}
}

// Request starts resolving source and returns its ID immediately.
func (l *Loader) Request(ctx context.Context, source string) uuid.UUID {
	id := uuid.New()
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		path, err := l.resolve(ctx, id, source)
		if err != nil {
			l.log.Warnf("asset %s: %s: %v", id, source, err)
		} else {
			l.log.Debugf("asset %s: %s ready at %s", id, source, path)
		}
		select {
		case l.results <- Result{ID: id, Source: source, Path: path, Err: err}:
		case <-ctx.Done():
		}
	}()
	return id
}

// Poll returns every result completed since the last call without blocking.
func (l *Loader) Poll() []Result {
	var out []Result
	for {
		select {
		case r := <-l.results:
			out = append(out, r)
		default:
			return out
		}
	}
}

// Wait blocks until every started request has delivered or been cancelled.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) resolve(ctx context.Context, id uuid.UUID, source string) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", fmt.Errorf("asset: empty source")
	}
	path := source
	if download.IsRemote(source) {
		p, err := download.Fetch(ctx, l.Client, source, l.CacheDir)
		if err != nil {
			return "", err
		}
		path = p
	} else if _, err := os.Stat(source); err != nil {
		return "", fmt.Errorf("asset: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return path, nil
	}
	dest := filepath.Join(l.CacheDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+"-"+id.String()[:8])
	if _, err := archive.Unzip(path, dest); err != nil {
		return "", err
	}
	return archive.FindFirst(dest, l.Ext)
}
