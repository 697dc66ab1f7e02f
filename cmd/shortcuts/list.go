package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/shortcut"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd, false, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if all {
				fmt.Fprintln(out, entriesTable(a.File().All()))
				return nil
			}

			models := a.Page().Models()
			if len(models) == 0 {
				fmt.Fprintln(out, "No custom shortcuts")
				return nil
			}
			fmt.Fprintln(out, modelsTable(models))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include the built-in shortcuts")
	return cmd
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...)
}

func modelsTable(models []shortcut.Model) string {
	t := newTable("NAME", "KEYS", "COMMAND")
	for _, m := range models {
		keys := make([]string, len(m.Bindings))
		for i, b := range m.Bindings {
			keys[i] = b.String()
		}
		t.Row(m.Description, strings.Join(keys, ", "), m.Action.Value)
	}
	return t.String()
}

func entriesTable(entries []shortcut.Entry) string {
	t := newTable("KEYS", "ACTION", "KIND")
	for _, e := range entries {
		label := e.Binding.Description
		if label == "" {
			label = shortcut.Label(e.Action)
		}
		t.Row(e.Binding.String(), label, e.Action.Kind.String())
	}
	return t.String()
}
