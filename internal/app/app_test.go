package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/shortcut"
)

func TestNewApplication(t *testing.T) {
	dir := t.TempDir()

	app, err := New(Options{ConfigDir: dir, LogOutput: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	if app.File() == nil {
		t.Error("expected config to be initialized")
	}
	if app.Store() == nil {
		t.Error("expected store to be initialized")
	}
	if app.Page() == nil {
		t.Error("expected page to be initialized")
	}
	if got := app.File().Path(); got != filepath.Join(dir, config.CustomFileName) {
		t.Errorf("custom path = %q", got)
	}
	if got := app.Settings().LogLevel; got != "warn" {
		t.Errorf("LogLevel = %q, expected default warn", got)
	}
}

func TestSettingsFileAndOptions(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "elsewhere")
	settings := "log_level = \"debug\"\nlog_format = \"json\"\nconfig_dir = \"" + filepath.ToSlash(custom) + "\"\n"
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFileName), []byte(settings), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	app, err := New(Options{ConfigDir: dir, LogLevel: "info", LogOutput: &logs})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	s := app.Settings()
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, flag should win", s.LogLevel)
	}
	if s.LogFormat != "json" {
		t.Errorf("LogFormat = %q", s.LogFormat)
	}
	if s.ConfigDir != dir {
		t.Errorf("ConfigDir = %q, flag should win", s.ConfigDir)
	}

	b := shortcut.MustParseBinding("Super+L")
	if err := app.Store().Add(shortcut.Spawn("loginctl lock-session"), b); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if !strings.Contains(logs.String(), `"msg":"shortcut added"`) {
		t.Errorf("expected a JSON record for the commit, got %q", logs.String())
	}
}

func TestInvalidCustomFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.CustomFileName), []byte("[[shortcut]]\nkeys = \"Super+\"\ncommand = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(Options{ConfigDir: dir, LogOutput: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("expected an error")
	}
	var ierr *InitError
	if !errors.As(err, &ierr) || ierr.Component != "config" {
		t.Errorf("expected config InitError, got %v", err)
	}
	if !errors.Is(err, config.ErrInvalidEntry) {
		t.Errorf("expected ErrInvalidEntry in chain, got %v", err)
	}
}

func TestWatchCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new")

	app, err := New(Options{ConfigDir: dir, Watch: true, LogOutput: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected config dir to exist: %v", err)
	}

	if err := app.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
