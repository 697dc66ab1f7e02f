package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/settings/page"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var useRegexp bool

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the settings pages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			a, err := opts.open(cmd, false, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			r := page.NewRegistry()
			if _, err := page.Register(r, a.Page()); err != nil {
				return err
			}

			var matches []page.Match
			if useRegexp {
				re, err := regexp.Compile(query)
				if err != nil {
					return fmt.Errorf("invalid pattern: %w", err)
				}
				matches = r.SearchRegexp(re)
			} else {
				matches = r.Search(query)
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "no matches")
				return nil
			}
			for _, m := range matches {
				p, _ := r.Get(m.Entity)
				fmt.Fprintf(out, "%s > %s\n", p.Info().Title, m.Section.Title)
				for _, d := range m.Section.Descriptions {
					fmt.Fprintf(out, "  %s\n", d)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&useRegexp, "regexp", "e", false, "treat QUERY as a regular expression")
	return cmd
}
