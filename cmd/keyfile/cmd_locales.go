package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shcv/keyfile"
)

func newLocalesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locales [locale]",
		Short: "Print the fallback variants of a locale, most specific first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := opts.locale
			if len(args) == 1 {
				text = args[0]
			}
			if text == "" {
				return fmt.Errorf("no locale given and none configured")
			}
			l, err := keyfile.ParseLocale(text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range l.Variants() {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}
