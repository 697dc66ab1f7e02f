package loader

import (
	"testing"
)

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoader("SHORTCUTS_")
	l.environ = func() []string {
		return []string{
			"SHORTCUTS_LOG_LEVEL=debug",
			"SHORTCUTS_CONFIG_DIR=/tmp/shortcuts",
			"SHORTCUTS_EMPTY=",
			"HOME=/root",
			"XDG_CONFIG_HOME=/root/.config",
		}
	}
	l.AddMapping("XDG_CONFIG_HOME", "paths.xdg")

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config["log_level"] != "debug" {
		t.Errorf("log_level = %v, want debug", config["log_level"])
	}
	if config["config_dir"] != "/tmp/shortcuts" {
		t.Errorf("config_dir = %v", config["config_dir"])
	}
	if _, ok := config["empty"]; ok {
		t.Error("empty values should be skipped")
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variables should be skipped")
	}

	paths, ok := config["paths"].(map[string]any)
	if !ok || paths["xdg"] != "/root/.config" {
		t.Errorf("paths = %#v", config["paths"])
	}
}

func TestEnvLoader_RealEnvironment(t *testing.T) {
	t.Setenv("SHORTCUTSTEST_LOG_FORMAT", "json")

	config, err := NewEnvLoader("SHORTCUTSTEST_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config["log_format"] != "json" {
		t.Errorf("log_format = %v, want json", config["log_format"])
	}
}
