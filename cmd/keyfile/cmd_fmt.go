package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shcv/keyfile"
)

func newFmtCmd(opts *options) *cobra.Command {
	var fmtOverwrite bool
	var translations string

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Normalize a key file, preserving comments",
		Long: `Parse a key file and write it back in normalized form.

Duplicate groups are merged, duplicate keys keep their last value, and
whitespace around '=' is removed. Use -w to overwrite the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if fmtOverwrite && filename == "-" {
				return fmt.Errorf("-w requires a file argument")
			}
			filter, err := translationFilter(translations)
			if err != nil {
				return err
			}
			doc, err := opts.load(cmd, filename, keyfile.WithLocaleFilter(filter))
			if err != nil {
				return err
			}
			return output(cmd, doc, filename, fmtOverwrite)
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().StringVar(&translations, "translations", "all", "translations to keep (all, none, or a locale)")

	return cmd
}

// output writes doc to filename when overwrite is set, else to stdout.
func output(cmd *cobra.Command, doc *keyfile.Document, filename string, overwrite bool) error {
	text := keyfile.Render(doc)
	if overwrite {
		log.Infof("writing %s", filename)
		return os.WriteFile(filename, []byte(text), 0644)
	}
	_, err := io.WriteString(cmd.OutOrStdout(), text)
	return err
}
