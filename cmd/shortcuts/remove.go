package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/shortcut"
)

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove KEYS",
		Short: "Remove a shortcut by its keys",
		Long: `Remove deletes the custom shortcut bound to KEYS. Removing a built-in
shortcut disables it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseKeys(args[0])
			if err != nil {
				return err
			}

			a, err := opts.open(cmd, false, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Page().Remove(b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", b)
			return nil
		},
	}
}

func newEnableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enable KEYS",
		Short: "Restore a removed built-in shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseKeys(args[0])
			if err != nil {
				return err
			}

			a, err := opts.open(cmd, false, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.File().Enable(b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "enabled %s\n", b)
			return nil
		},
	}
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check KEYS",
		Short: "Show whether a key combination is free",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseKeys(args[0])
			if err != nil {
				return err
			}

			a, err := opts.open(cmd, false, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			owner, ok := a.Store().Contains(b)
			if !ok {
				fmt.Fprintf(out, "%s is free\n", b)
				return nil
			}
			fmt.Fprintf(out, "%s is used by %s (%s)\n", b, shortcut.Label(owner), owner.Kind)
			return nil
		},
	}
}
