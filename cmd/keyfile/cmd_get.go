package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shcv/keyfile"
)

func newGetCmd(opts *options) *cobra.Command {
	var valueType string

	cmd := &cobra.Command{
		Use:   "get <file> <group> <key>",
		Short: "Print a value, resolving translations for the configured locale",
		Long: `Print the value of a key.

With --locale (or a locale from the environment) the best matching
translation is printed, falling back to the untranslated value.

Types: raw (as stored), string (escapes decoded), list (one item per
line), bool, int, float.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, key := args[1], args[2]
			doc, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}
			loc, err := opts.lookupLocale()
			if err != nil {
				return err
			}
			if l, ok := loc.Locale(); ok {
				if tag, ok := doc.ResolveLocaleForKey(group, key, l); ok {
					log.Debugf("%s/%s: using translation %s for %s", group, key, tag, l)
				} else {
					log.Debugf("%s/%s: no translation for %s", group, key, l)
				}
			}

			value, ok, err := lookup(doc, group, key, loc, valueType)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s/%s", keyfile.ErrKeyNotFound, group, key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&valueType, "type", "t", "string", "value type (raw, string, list, bool, int, float)")

	return cmd
}

func lookup(doc *keyfile.Document, group, key string, loc keyfile.LocaleSpec, valueType string) (string, bool, error) {
	switch valueType {
	case "raw":
		v, ok := doc.Value(group, key, loc)
		return v, ok, nil
	case "string":
		v, ok := doc.String(group, key, loc)
		return v, ok, nil
	case "list":
		v, ok := doc.StringList(group, key, loc)
		return strings.Join(v, "\n"), ok, nil
	case "bool":
		v, ok, err := doc.Bool(group, key)
		return keyfile.FormatBool(v), ok, err
	case "int":
		v, ok, err := doc.Int(group, key)
		return keyfile.FormatInt(v), ok, err
	case "float":
		v, ok, err := doc.Float(group, key)
		return keyfile.FormatFloat(v), ok, err
	}
	return "", false, fmt.Errorf("unknown type: %s", valueType)
}
