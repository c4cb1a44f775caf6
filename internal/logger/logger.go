package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the session log, relative to the working directory.
const LogFilePath = "logs/grain.txt"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Leveled is the logging surface the scene and loaders depend on.
type Leveled interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Logger keeps recent lines in memory for the console and appends every line to a file
// and to an optional writer (stderr by default).
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	out   io.Writer
	debug bool
}

// New returns a logger writing to LogFilePath and stderr. The logs directory is created if needed.
func New(debug bool) *Logger {
	return NewAt(LogFilePath, os.Stderr, debug)
}

// NewAt returns a logger appending to path (empty disables the file) and echoing to out (nil disables echo).
func NewAt(path string, out io.Writer, debug bool) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{lines: make([]string, 0), path: path, out: out, debug: debug}
}

// SetDebug toggles Debugf output.
func (l *Logger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

// Log appends a plain line. Each entry is prefixed with [timestamp].
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0:0], l.lines[len(l.lines)-maxLines:]...)
	}
	out := l.out
	l.mu.Unlock()

	if out != nil {
		_, _ = io.WriteString(out, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

func (l *Logger) logf(level, format string, args ...any) {
	l.Log(level + ": " + fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) {
	l.mu.Lock()
	dbg := l.debug
	l.mu.Unlock()
	if dbg {
		l.logf("DEBUG", format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }

// Lines returns a copy of the stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

type nop struct{}

// Nop discards everything.
func Nop() Leveled { return nop{} }

func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}
