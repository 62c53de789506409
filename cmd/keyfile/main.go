package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("keyfile")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "keyfile",
		Short:        "Inspect and edit grouped key/value files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			commonlog.Configure(opts.verbosity, nil)
			log.Debugf("options: locale=%q separator=%q comments=%t", opts.locale, opts.separator, opts.keepComments)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity")
	flags.StringVarP(&opts.locale, "locale", "l", "", "locale used for lookups (default from KEYFILE_LOCALE, LC_ALL, LC_MESSAGES or LANG)")
	flags.StringVarP(&opts.separator, "separator", "s", ";", "list separator")
	flags.BoolVar(&opts.keepComments, "comments", true, "keep comments when parsing")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newFmtCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newSetCmd(opts))
	rootCmd.AddCommand(newMergeCmd(opts))
	rootCmd.AddCommand(newLocalesCmd(opts))
	rootCmd.AddCommand(newSerializeCmd(opts))

	return rootCmd
}
