// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package dump

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"vardoc.sh/catalog"
	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/iostreams"
)

type DumpOptions struct{}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&DumpOptions{}, cobra.Command{
		Short: "Dump the parsed corpus model",
		Use:   "dump [DIR]",
		Args:  cmdfactory.MaxDirArgs(1),
		Long:  "Dump the parsed in-memory representation of a corpus, for debugging.",
		Example: heredoc.Doc(`
			# Dump the parsed model of the current directory
			$ vardoc dump
		`),
		Annotations: map[string]string{
			cmdfactory.AnnotationHelpHidden: "true",
		},
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *DumpOptions) Run(ctx context.Context, args []string) error {
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

	dumper := litter.Options{
		HidePrivateFields: true,
		Separator:         " ",
	}

	fmt.Fprint(iostreams.G(ctx).Out, dumper.Sdump(result.Catalog.All()))

	return nil
}
