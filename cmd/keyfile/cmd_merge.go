package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/shcv/keyfile"
)

func newMergeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <file> <file>...",
		Short: "Merge key files; later files override earlier ones",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged := keyfile.New()
			if err := merged.SetListSeparator(opts.separator); err != nil {
				return err
			}

			// Files are parsed concurrently but folded in argument order.
			docs := make([]*keyfile.Document, len(args))
			var g errgroup.Group
			for i, path := range args {
				g.Go(func() error {
					doc, err := opts.load(cmd, path)
					docs[i] = doc
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, doc := range docs {
				keyfile.Merge(merged, doc)
			}
			return output(cmd, merged, "", false)
		},
	}
}
