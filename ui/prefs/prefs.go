// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

const (
	appDir    = "shapeedit"
	prefsFile = "preferences.json"

	// ToleranceEnv overrides the stored guide tolerance when set.
	ToleranceEnv = "SHAPEEDIT_TOLERANCE"
)

// Preference keys.
const (
	KeyStrokeWidth    = "strokeWidth"
	KeyGuideTolerance = "guideTolerance"
	KeyLastTool       = "lastTool"
	KeyWindowWidth    = "windowWidth"
	KeyWindowHeight   = "windowHeight"
)

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// DefaultPath returns ~/.config/shapeedit/preferences.json, or the platform
// equivalent.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, prefsFile)
}

// Load reads preferences from DefaultPath. The returned Prefs is always
// usable; an unreadable or corrupt file is reported alongside defaults.
func Load() (*Prefs, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads preferences from path. A missing file is not an error; a
// file that exists but does not parse is reported alongside empty defaults.
func LoadFrom(path string) (*Prefs, error) {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		p.values = make(map[string]interface{})
		return p, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return p, nil
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return os.WriteFile(p.path, data, 0o644)
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Settings is the typed view of the preferences the editor reads.
type Settings struct {
	StrokeWidth    float64
	GuideTolerance float64
	LastTool       string
	WindowWidth    float32
	WindowHeight   float32
}

// DefaultSettings are used for anything not stored.
var DefaultSettings = Settings{
	StrokeWidth:    2,
	GuideTolerance: 5,
	WindowWidth:    1024,
	WindowHeight:   768,
}

// Settings resolves the stored values against the defaults. A valid
// SHAPEEDIT_TOLERANCE environment variable takes precedence over the stored
// guide tolerance.
func (p *Prefs) Settings() Settings {
	s := Settings{
		StrokeWidth:    p.FloatWithFallback(KeyStrokeWidth, DefaultSettings.StrokeWidth),
		GuideTolerance: p.FloatWithFallback(KeyGuideTolerance, DefaultSettings.GuideTolerance),
		LastTool:       p.String(KeyLastTool),
		WindowWidth:    float32(p.FloatWithFallback(KeyWindowWidth, float64(DefaultSettings.WindowWidth))),
		WindowHeight:   float32(p.FloatWithFallback(KeyWindowHeight, float64(DefaultSettings.WindowHeight))),
	}
	if env := os.Getenv(ToleranceEnv); env != "" {
		if tol, err := strconv.ParseFloat(env, 64); err == nil && tol > 0 {
			s.GuideTolerance = tol
		}
	}
	if s.StrokeWidth <= 0 {
		s.StrokeWidth = DefaultSettings.StrokeWidth
	}
	if s.GuideTolerance <= 0 {
		s.GuideTolerance = DefaultSettings.GuideTolerance
	}
	return s
}

// SetWindowSize stores the window size for the next launch.
func (p *Prefs) SetWindowSize(w, h float32) {
	p.SetFloat(KeyWindowWidth, float64(w))
	p.SetFloat(KeyWindowHeight, float64(h))
}
