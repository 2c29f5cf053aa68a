// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package fmtcmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"vardoc.sh/catalog"
	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/iostreams"
	"vardoc.sh/log"
)

type FmtOptions struct {
	Check bool `long:"check" short:"c" usage:"Report files that would change without rewriting them"`
}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&FmtOptions{}, cobra.Command{
		Short: "Rewrite corpus files to canonical form",
		Use:   "fmt [FLAGS] [DIR]",
		Args:  cmdfactory.MaxDirArgs(1),
		Long: heredoc.Doc(`
			Rewrite corpus files to canonical form: trailing whitespace
			removed, runs of blank lines collapsed and exactly one final
			newline.  Entry markup is never re-rendered, so formatting a
			canonical corpus is a no-op.`),
		Example: heredoc.Doc(`
			# Format the corpus in the current directory
			$ vardoc fmt

			# Check whether a corpus is canonically formatted
			$ vardoc fmt --check path/to/corpus
		`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *FmtOptions) Run(ctx context.Context, args []string) error {
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

	out := iostreams.G(ctx).Out
	var changed int

	for _, file := range result.Files {
		doc := result.Documents[file]

		formatted := doc.Format()
		if bytes.Equal(formatted, doc.Serialize()) {
			continue
		}

		changed++

		if opts.Check {
			fmt.Fprintln(out, file)
			continue
		}

		info, err := os.Stat(file)
		if err != nil {
			return err
		}

		if err := os.WriteFile(file, formatted, info.Mode().Perm()); err != nil {
			return fmt.Errorf("could not rewrite %s: %w", file, err)
		}

		log.G(ctx).WithField("file", file).Debug("rewrote")
	}

	if opts.Check && changed > 0 {
		return fmt.Errorf("%d file(s) are not canonically formatted", changed)
	}

	return nil
}
