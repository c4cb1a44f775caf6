package asset

import (
	"archive/zip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grain-scenes/internal/logger"
)

func waitOne(t *testing.T, l *Loader) Result {
	t.Helper()
	l.Wait()
	res := l.Poll()
	require.Len(t, res, 1)
	return res[0]
}

func TestLocalFile(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "deer.obj")
	require.NoError(t, os.WriteFile(obj, []byte("v 0 0 0\n"), 0644))

	l := NewLoader(filepath.Join(dir, "cache"), logger.Nop())
	id := l.Request(context.Background(), obj)
	r := waitOne(t, l)
	assert.Equal(t, id, r.ID)
	assert.NoError(t, r.Err)
	assert.Equal(t, obj, r.Path)
}

func TestMissingLocalFile(t *testing.T) {
	l := NewLoader(t.TempDir(), nil)
	l.Request(context.Background(), filepath.Join(t.TempDir(), "nope.obj"))
	r := waitOne(t, l)
	assert.ErrorIs(t, r.Err, os.ErrNotExist)
	assert.Empty(t, r.Path)
}

func TestRemoteZip(t *testing.T) {
	var buf strings.Builder
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("deer/deer.obj")
	require.NoError(t, err)
	_, _ = w.Write([]byte("v 1 2 3\n"))
	require.NoError(t, zw.Close())
	body := buf.String()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	cache := t.TempDir()
	l := NewLoader(cache, nil)
	l.Client = srv.Client()
	l.Request(context.Background(), srv.URL+"/deer.zip")
	r := waitOne(t, l)
	require.NoError(t, r.Err)
	assert.True(t, strings.HasPrefix(r.Path, cache))
	assert.Equal(t, "deer.obj", filepath.Base(r.Path))
}

func TestPollDoesNotBlock(t *testing.T) {
	l := NewLoader(t.TempDir(), nil)
	done := make(chan struct{})
	go func() {
		assert.Empty(t, l.Poll())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Poll blocked")
	}
}

func TestEmptySource(t *testing.T) {
	l := NewLoader(t.TempDir(), nil)
	l.Request(context.Background(), "  ")
	assert.Error(t, waitOne(t, l).Err)
}
