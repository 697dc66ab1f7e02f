// Package app wires the shortcut configuration, the model store and the
// custom shortcuts page into one application.
package app

import (
	"context"
	"errors"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/config/watcher"
	"github.com/dshills/shortcuts/internal/logging"
	"github.com/dshills/shortcuts/internal/settings/custom"
	"github.com/dshills/shortcuts/internal/shortcut"
	"github.com/dshills/shortcuts/internal/tui"
)

// Options configures the application. Empty fields fall back to the
// settings file and the environment.
type Options struct {
	// ConfigDir is the directory holding settings.toml and custom.toml.
	ConfigDir string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogFormat is text or json.
	LogFormat string

	// LogOutput receives log records. Defaults to os.Stderr.
	LogOutput io.Writer

	// Watch reloads the configuration when custom.toml changes on disk.
	Watch bool
}

// Application holds the initialized components.
type Application struct {
	opts Options

	settings config.Settings
	log      *logging.Logger
	file     *config.File
	store    *shortcut.Store
	page     *custom.Page
	watcher  *watcher.Watcher

	closeOnce sync.Once
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Settings returns the effective settings.
func (a *Application) Settings() config.Settings {
	return a.settings
}

// Logger returns the application logger.
func (a *Application) Logger() *logging.Logger {
	return a.log
}

// File returns the shortcut configuration.
func (a *Application) File() *config.File {
	return a.file
}

// Store returns the custom shortcut models.
func (a *Application) Store() *shortcut.Store {
	return a.store
}

// Page returns the custom shortcuts page.
func (a *Application) Page() *custom.Page {
	return a.page
}

// Run shows the page in the terminal until the user quits or ctx is done.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	opts := []tui.Option{tui.WithLogger(a.log)}
	if a.watcher != nil {
		opts = append(opts, tui.WithWatcher(a.watcher.Events(), a.file.Reload))
		go a.drainWatchErrors(ctx)
	}

	model, err := tui.New(a.page, opts...)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	a.page.OnLeave()
	return nil
}

func (a *Application) drainWatchErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-a.watcher.Errors():
			if !ok {
				return
			}
			a.log.Warn("watching config failed", "error", err)
		}
	}
}

// Close releases the application resources. It is safe to call more than
// once.
func (a *Application) Close() error {
	var err error
	a.closeOnce.Do(func() {
		if a.watcher != nil {
			err = a.watcher.Close()
			a.watcher = nil
		}
	})
	return err
}
