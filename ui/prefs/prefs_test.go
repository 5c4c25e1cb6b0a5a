package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	t.Setenv(ToleranceEnv, "")
	assert.Equal(t, DefaultSettings, p.Settings())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(ToleranceEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "preferences.json")
	p, err := LoadFrom(path)
	require.NoError(t, err)

	p.SetFloat(KeyStrokeWidth, 3.5)
	p.SetString(KeyLastTool, "star")
	p.SetWindowSize(640, 480)
	require.NoError(t, p.Save())

	p2, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		StrokeWidth:    3.5,
		GuideTolerance: 5,
		LastTool:       "star",
		WindowWidth:    640,
		WindowHeight:   480,
	}, p2.Settings())
	assert.Equal(t, path, p2.Path())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
	require.NotNil(t, p)
	assert.Equal(t, "", p.String(KeyLastTool))
}

func TestToleranceOverride(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)
	p.SetFloat(KeyGuideTolerance, 8)

	t.Setenv(ToleranceEnv, "12.5")
	assert.Equal(t, 12.5, p.Settings().GuideTolerance)

	t.Setenv(ToleranceEnv, "bogus")
	assert.Equal(t, 8.0, p.Settings().GuideTolerance)

	t.Setenv(ToleranceEnv, "-3")
	assert.Equal(t, 8.0, p.Settings().GuideTolerance)
}

func TestNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv(ToleranceEnv, "")
	p, err := LoadFrom(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)
	p.SetFloat(KeyStrokeWidth, 0)
	p.SetFloat(KeyGuideTolerance, -1)

	s := p.Settings()
	assert.Equal(t, DefaultSettings.StrokeWidth, s.StrokeWidth)
	assert.Equal(t, DefaultSettings.GuideTolerance, s.GuideTolerance)
}

func TestLoadReportsCorruptDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	path := DefaultPath()
	require.True(t, strings.HasPrefix(path, home), path)
	require.True(t, strings.HasSuffix(path, filepath.Join("shapeedit", "preferences.json")), path)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"strokeWidth": `), 0o644))

	p, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
	require.NotNil(t, p)
	assert.Equal(t, path, p.Path())
	assert.Equal(t, DefaultSettings.StrokeWidth, p.Settings().StrokeWidth)

	require.NoError(t, os.Remove(path))
	p, err = Load()
	require.NoError(t, err)
	assert.Equal(t, path, p.Path())
}
