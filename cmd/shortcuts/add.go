package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/shortcut"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var (
		name    string
		command string
		keys    []string
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom shortcut",
		Long: `Add binds one or more key combinations to a command.

Keys already used by another shortcut are kept by their owner unless
--replace is given.`,
		Example: `  shortcuts add --name Lock --command "loginctl lock-session" --keys Super+L`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range keys {
				if _, err := parseKeys(k); err != nil {
					return err
				}
			}

			a, err := opts.open(cmd, false, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			p := a.Page()
			p.OpenDrawer()
			d := p.Draft()
			d.SetName(name)
			d.SetCommand(command)
			d.SetRowText(d.Rows()[0].ID, keys[0])
			for _, k := range keys[1:] {
				d.SetRowText(d.AddRow().Row, k)
			}

			if !p.Submit() {
				return errors.New("a name, a command and at least one key are required")
			}

			out := cmd.OutOrStdout()
			for p.PendingCount() > 0 {
				c, _ := p.Pending()
				if replace {
					p.Apply()
					fmt.Fprintf(out, "%s: replaced %s\n", c.Binding, c.OwnerLabel)
				} else {
					p.Cancel()
					fmt.Fprintf(out, "%s: kept for %s\n", c.Binding, c.OwnerLabel)
				}
				if err := p.LastError(); err != nil {
					return err
				}
			}
			if err := p.LastError(); err != nil {
				return err
			}

			if m, ok := p.Model(shortcut.Spawn(strings.TrimSpace(command))); ok {
				fmt.Fprintln(out, modelsTable([]shortcut.Model{m}))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "shortcut name")
	cmd.Flags().StringVar(&command, "command", "", "command to run")
	cmd.Flags().StringArrayVar(&keys, "keys", nil, "key combination, repeatable")
	cmd.Flags().BoolVar(&replace, "replace", false, "take keys away from their current owner")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("command")
	_ = cmd.MarkFlagRequired("keys")
	return cmd
}
