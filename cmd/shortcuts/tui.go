package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/config"
)

// logFileName receives the logs of the interactive page, which owns the
// terminal.
const logFileName = "shortcuts.log"

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit custom shortcuts interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, closeLogs := openLogFile(opts.configDir)
			defer closeLogs()

			a, err := opts.open(cmd, true, logs)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// openLogFile appends to the log file in dir (the default config
// directory when empty), or discards logs when it cannot be opened.
func openLogFile(dir string) (io.Writer, func()) {
	if dir == "" {
		def, err := config.DefaultDir()
		if err != nil {
			return io.Discard, func() {}
		}
		dir = def
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}
