package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shcv/keyfile"
)

func newSetCmd(opts *options) *cobra.Command {
	var valueType string
	var translation string
	var comment string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "set <file> <group> <key> <value>...",
		Short: "Set a value and print (or write) the updated file",
		Long: `Set the value of a key, creating the group if needed.

Types: raw (stored as given), string (escaped), list (each argument is
an item), bool, int, float. Use --translation to set a localized value.`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, group, key, values := args[0], args[1], args[2], args[3:]
			if overwrite && filename == "-" {
				return fmt.Errorf("-w requires a file argument")
			}
			doc, err := opts.load(cmd, filename)
			if err != nil {
				return err
			}

			loc := keyfile.NoLocale
			if translation != "" {
				l, err := doc.Locale(translation)
				if err != nil {
					return err
				}
				loc = keyfile.ForLocale(l)
			}

			if err := store(doc, group, key, values, loc, valueType); err != nil {
				return err
			}
			if cmd.Flags().Changed("comment") {
				if err := doc.SetKeyComment(group, key, comment, loc); err != nil {
					return err
				}
			}
			return output(cmd, doc, filename, overwrite)
		},
	}

	cmd.Flags().StringVarP(&valueType, "type", "t", "string", "value type (raw, string, list, bool, int, float)")
	cmd.Flags().StringVar(&translation, "translation", "", "locale of the translation to set")
	cmd.Flags().StringVar(&comment, "comment", "", "comment to attach to the entry")
	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}

func store(doc *keyfile.Document, group, key string, values []string, loc keyfile.LocaleSpec, valueType string) error {
	if valueType == "list" {
		return doc.SetStringList(group, key, values, loc)
	}
	if len(values) != 1 {
		return fmt.Errorf("type %s takes exactly one value, got %d", valueType, len(values))
	}
	value := values[0]
	switch valueType {
	case "raw":
		return doc.SetValue(group, key, value, loc)
	case "string":
		return doc.SetString(group, key, value, loc)
	case "bool":
		v, err := keyfile.ParseBool(value)
		if err != nil {
			return err
		}
		return doc.SetBool(group, key, v)
	case "int":
		v, err := keyfile.ParseInt(value)
		if err != nil {
			return err
		}
		return doc.SetInt(group, key, v)
	case "float":
		v, err := keyfile.ParseFloat(value)
		if err != nil {
			return err
		}
		return doc.SetFloat(group, key, v)
	}
	return fmt.Errorf("unknown type: %s", valueType)
}
