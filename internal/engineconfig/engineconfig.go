package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the preferences file, relative to the process working directory.
const PrefsPath = "config/grain.json"

// Prefs holds viewer-only preferences persisted across runs. Scene settings live in the
// variant documents, not here.
type Prefs struct {
	ShowFPS      bool   `json:"show_fps"`
	PanelOpen    bool   `json:"panel_open"`
	LastVariant  string `json:"last_variant,omitempty"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
}

// Default returns default preferences (panel shown, 1280x720 window).
func Default() Prefs {
	return Prefs{
		ShowFPS:      false,
		PanelOpen:    true,
		WindowWidth:  1280,
		WindowHeight: 720,
	}
}

// Load reads preferences from PrefsPath.
func Load() (Prefs, error) {
	return LoadFrom(PrefsPath)
}

// LoadFrom reads preferences from path. A missing file yields Default() and no error; a
// malformed file yields Default() and the decode error. Non-positive window sizes fall back
// to the defaults.
func LoadFrom(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), err
	}
	d := Default()
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	return p, nil
}

// Save writes preferences to PrefsPath.
func Save(p Prefs) error {
	return SaveTo(PrefsPath, p)
}

// SaveTo writes preferences to path, creating the directory if needed.
func SaveTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Pick returns the first non-empty value, so callers can list sources in precedence order
// (flag, environment, saved preference, built-in default).
func Pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
