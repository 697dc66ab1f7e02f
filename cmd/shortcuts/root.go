package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/app"
	"github.com/dshills/shortcuts/internal/shortcut"
)

// rootOptions holds the global flags.
type rootOptions struct {
	configDir string
	logLevel  string
	logFormat string
}

// open initializes the application for one command.
func (o *rootOptions) open(cmd *cobra.Command, watch bool, logs io.Writer) (*app.Application, error) {
	if logs == nil {
		logs = cmd.ErrOrStderr()
	}
	return app.New(app.Options{
		ConfigDir: o.configDir,
		LogLevel:  o.logLevel,
		LogFormat: o.logFormat,
		LogOutput: logs,
		Watch:     watch,
	})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "shortcuts",
		Short:        "Manage custom keyboard shortcuts",
		Long:         `shortcuts binds key combinations to commands and keeps them free of conflicts with the built-in desktop shortcuts.`,
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory holding custom.toml and settings.toml")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (text or json)")

	root.AddCommand(
		newTUICmd(opts),
		newListCmd(opts),
		newAddCmd(opts),
		newRemoveCmd(opts),
		newEnableCmd(opts),
		newCheckCmd(opts),
		newSearchCmd(opts),
	)
	return root
}

// parseKeys parses a key combination argument, reporting the reason of a
// failure.
func parseKeys(text string) (shortcut.Binding, error) {
	b, err := shortcut.ParseBinding(text)
	if err != nil {
		return shortcut.Binding{}, fmt.Errorf("invalid keys %q: %w", text, err)
	}
	return b, nil
}
