package app

import (
	"os"
	"path/filepath"

	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/config/loader"
	"github.com/dshills/shortcuts/internal/config/watcher"
	"github.com/dshills/shortcuts/internal/logging"
	"github.com/dshills/shortcuts/internal/settings/custom"
	"github.com/dshills/shortcuts/internal/shortcut"
)

// bootstrapper handles component initialization with cleanup on failure.
type bootstrapper struct {
	app       *Application
	opts      Options
	initOrder []string
}

func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{
		app:       app,
		opts:      opts,
		initOrder: make([]string, 0, 4),
	}
}

// bootstrap initializes all components in dependency order.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initSettings,
		b.initLogger,
		b.initConfig,
		b.initPage,
		b.initWatcher,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return err
		}
	}
	return nil
}

// initSettings layers settings.toml, the environment and the options.
func (b *bootstrapper) initSettings() error {
	dir := b.opts.ConfigDir
	if dir == "" {
		if env := os.Getenv(config.EnvPrefix + "CONFIG_DIR"); env != "" {
			dir = env
		} else {
			def, err := config.DefaultDir()
			if err != nil {
				return &InitError{Component: "settings", Err: err}
			}
			dir = def
		}
	}

	settingsPath := filepath.Join(dir, config.SettingsFileName)
	s, err := config.LoadSettings(
		loader.NewTOMLLoader(settingsPath),
		loader.NewEnvLoader(config.EnvPrefix),
	)
	if err != nil {
		return &InitError{Component: "settings", Path: settingsPath, Err: err}
	}

	if s.ConfigDir == "" || b.opts.ConfigDir != "" {
		s.ConfigDir = dir
	}
	if b.opts.LogLevel != "" {
		s.LogLevel = b.opts.LogLevel
	}
	if b.opts.LogFormat != "" {
		s.LogFormat = b.opts.LogFormat
	}

	b.app.settings = s
	return nil
}

func (b *bootstrapper) initLogger() error {
	s := b.app.settings
	b.app.log = logging.New(logging.Config{
		Level:  logging.ParseLevel(s.LogLevel),
		Format: logging.ParseFormat(s.LogFormat),
		Output: b.opts.LogOutput,
	})
	b.app.log.Debug("settings loaded", "config_dir", s.ConfigDir, "log_level", s.LogLevel)
	return nil
}

func (b *bootstrapper) initConfig() error {
	path := b.app.settings.CustomPath()
	f, err := config.Open(path, config.WithLogger(b.app.log))
	if err != nil {
		return &InitError{Component: "config", Path: path, Err: err}
	}
	b.app.file = f
	b.initOrder = append(b.initOrder, "config")
	return nil
}

func (b *bootstrapper) initPage() error {
	b.app.store = shortcut.NewStore(b.app.file, b.app.log)
	if err := b.app.store.Rebuild(); err != nil {
		return &InitError{Component: "store", Err: err}
	}
	b.app.page = custom.New(b.app.store, b.app.log)
	b.initOrder = append(b.initOrder, "page")
	return nil
}

// initWatcher watches custom.toml. The directory is created so the file
// can be watched before its first save.
func (b *bootstrapper) initWatcher() error {
	if !b.opts.Watch {
		return nil
	}

	path := b.app.file.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &InitError{Component: "watcher", Path: path, Err: err}
	}

	w, err := watcher.New()
	if err != nil {
		return &InitError{Component: "watcher", Path: path, Err: err}
	}
	if err := w.Watch(path); err != nil {
		_ = w.Close()
		return &InitError{Component: "watcher", Path: path, Err: err}
	}
	b.app.watcher = w
	b.initOrder = append(b.initOrder, "watcher")
	return nil
}

// cleanup releases initialized components in reverse order.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		switch b.initOrder[i] {
		case "watcher":
			if b.app.watcher != nil {
				_ = b.app.watcher.Close()
				b.app.watcher = nil
			}
		case "page":
			b.app.page = nil
			b.app.store = nil
		case "config":
			b.app.file = nil
		}
	}
	b.initOrder = b.initOrder[:0]
}
