package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsReachFileAndWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "grain.txt")
	var echo bytes.Buffer
	l := NewAt(path, &echo, false)

	l.Infof("variant %s", "grain")
	l.Debugf("hidden")
	l.SetDebug(true)
	l.Debugf("shown %d", 2)
	l.Errorf("model: %v", os.ErrNotExist)

	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "INFO: variant grain"))
	assert.True(t, strings.HasSuffix(lines[1], "DEBUG: shown 2"))
	assert.Contains(t, lines[2], "ERROR: model:")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
	assert.Equal(t, string(data), echo.String())
}

func TestHistoryIsBounded(t *testing.T) {
	l := NewAt("", nil, false)
	for i := 0; i < maxLines+20; i++ {
		l.Log(fmt.Sprintf("line %d", i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 20"))
}

func TestLinesIsACopy(t *testing.T) {
	l := NewAt("", nil, false)
	l.Log("a")
	got := l.Lines()
	got[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestNop(t *testing.T) {
	var lv Leveled = Nop()
	lv.Infof("nothing %d", 1)
}
