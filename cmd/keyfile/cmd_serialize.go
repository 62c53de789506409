package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shcv/keyfile"
)

func newSerializeCmd(opts *options) *cobra.Command {
	var inputFormat string

	cmd := &cobra.Command{
		Use:   "serialize [file]",
		Short: "Convert JSON or YAML (as produced by parse) to a key file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			var input map[string]map[string]string
			switch inputFormat {
			case "json":
				err = json.Unmarshal(data, &input)
			case "yaml":
				err = yaml.Unmarshal(data, &input)
			default:
				return fmt.Errorf("unknown format: %s", inputFormat)
			}
			if err != nil {
				return fmt.Errorf("decode %s: %w", inputFormat, err)
			}

			doc, err := keyfile.FromMap(input)
			if err != nil {
				return err
			}
			if err := doc.SetListSeparator(opts.separator); err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), keyfile.Render(doc))
			return err
		},
	}

	cmd.Flags().StringVarP(&inputFormat, "input", "i", "json", "input format (json, yaml)")

	return cmd
}
