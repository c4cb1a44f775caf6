package env

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Prefix is the namespace for the demo's environment keys.
const Prefix = "GRAIN_"

const (
	KeyVariant = Prefix + "VARIANT"
	KeyModel   = Prefix + "MODEL"
	KeyDebug   = Prefix + "DEBUG"
	KeyFont    = Prefix + "FONT"
)

// Load reads the given file (e.g. ".env") and exports every GRAIN_ key it sets that is
// not already present in the process environment. A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	values, err := Parse(f)
	if err != nil {
		return err
	}
	for k, v := range values {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		_ = os.Setenv(k, v)
	}
	return nil
}

// Parse reads KEY=VALUE lines, keeping only GRAIN_ keys. Empty lines and # comments are
// skipped, an optional "export " prefix is accepted and surrounding quotes are removed.
func Parse(r io.Reader) (map[string]string, error) {
	out := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, Prefix) {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		out[key] = value
	}
	return out, scanner.Err()
}

// Get returns the trimmed value of key, or "" when unset.
func Get(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Bool reports whether key holds a truthy value (1, true, yes, on).
func Bool(key string) bool {
	switch strings.ToLower(Get(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
