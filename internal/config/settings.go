package config

import (
	"fmt"
	"path/filepath"

	"github.com/dshills/shortcuts/internal/config/loader"
)

// SettingsFileName is the name of the application settings file.
const SettingsFileName = "settings.toml"

// EnvPrefix is the prefix of environment variables overriding settings.
const EnvPrefix = "SHORTCUTS_"

// Settings are the application settings.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
	// ConfigDir holds the custom shortcuts file.
	ConfigDir string
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// CustomPath returns the path of the custom shortcuts file.
func (s Settings) CustomPath() string {
	return filepath.Join(s.ConfigDir, CustomFileName)
}

// LoadSettings layers the settings file and then the environment over the
// built-in settings. Either source may be nil.
func LoadSettings(file loader.Loader, env loader.Loader) (Settings, error) {
	merged := map[string]any{}
	for _, src := range []loader.Loader{file, env} {
		if src == nil {
			continue
		}
		m, err := src.Load()
		if err != nil {
			return Settings{}, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	s := DefaultSettings()
	for name, dst := range map[string]*string{
		"log_level":  &s.LogLevel,
		"log_format": &s.LogFormat,
		"config_dir": &s.ConfigDir,
	} {
		v, ok := merged[name]
		if !ok {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return Settings{}, fmt.Errorf("setting %s: expected string, got %T", name, v)
		}
		*dst = str
	}
	return s, nil
}
