package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shcv/keyfile"
)

func newParseCmd(opts *options) *cobra.Command {
	var outputFormat string
	var translations string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a key file and dump its entries as JSON or YAML",
		Long: `Parse a key file and dump group -> entry -> raw value.

Translated entries appear as Key[locale]. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := translationFilter(translations)
			if err != nil {
				return err
			}
			doc, err := opts.load(cmd, args[0], keyfile.WithLocaleFilter(filter))
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), outputFormat, doc.Map())
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "json", "output format (json, yaml)")
	cmd.Flags().StringVar(&translations, "translations", "all", "translations to keep (all, none, or a locale)")

	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format: %s", format)
}
