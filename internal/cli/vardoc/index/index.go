// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package index

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"vardoc.sh/catalog"
	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/iostreams"
	"vardoc.sh/store"
)

type IndexOptions struct{}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&IndexOptions{}, cobra.Command{
		Short: "Build the on-disk index for a corpus",
		Use:   "index [DIR]",
		Args:  cmdfactory.MaxDirArgs(1),
		Long: heredoc.Doc(`
			Parse the corpus and write every entry to the on-disk index
			so that subsequent lookups skip re-parsing.  The previous
			index is replaced.`),
		Example: heredoc.Doc(`
			# Index the corpus in the current directory
			$ vardoc index

			# Index another corpus
			$ vardoc index path/to/corpus
		`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *IndexOptions) Run(ctx context.Context, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	result, err := catalog.Load(ctx, dir,
		catalog.WithPatterns(config.G(ctx).Corpus.Patterns...),
	)
	if err != nil {
		return err
	}

	s, err := store.New(config.G(ctx).Paths.Index)
	if err != nil {
		return err
	}

	if err := s.Index(ctx, result); err != nil {
		return err
	}

	cs := iostreams.G(ctx).ColorScheme()
	fmt.Fprintf(iostreams.G(ctx).Out, "%s indexed %d entries\n", cs.SuccessIcon(), result.Catalog.Len())

	return nil
}
