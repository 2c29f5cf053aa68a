// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package show

import (
	"context"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"vardoc.sh/catalog"
	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/cvar"
	"vardoc.sh/internal/text"
	"vardoc.sh/iostreams"
	"vardoc.sh/log"
	"vardoc.sh/store"
)

type ShowOptions struct {
	Raw     bool `long:"raw" short:"r" usage:"Print the raw markup block instead of rendered prose"`
	NoIndex bool `long:"no-index" usage:"Always re-parse the corpus instead of consulting the index"`
}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&ShowOptions{}, cobra.Command{
		Short: "Show the documentation of one variable",
		Use:   "show [FLAGS] NAME [DIR]",
		Args:  cobra.RangeArgs(1, 2),
		Long:  "Show the documentation of a single variable by exact name.",
		Example: heredoc.Doc(`
			# Show the documentation for LIBPREFIX
			$ vardoc show LIBPREFIX

			# Show the raw markup for LIBPREFIX
			$ vardoc show --raw LIBPREFIX path/to/corpus
		`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *ShowOptions) Run(ctx context.Context, args []string) error {
	name := args[0]
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}

	patterns := config.G(ctx).Corpus.Patterns

	if !opts.NoIndex {
		entry, err := opts.fromIndex(ctx, name, dir, patterns)
		if err == nil {
			return opts.print(ctx, entry)
		}

		log.G(ctx).Debugf("could not use index: %v", err)
	}

	result, err := catalog.Load(ctx, dir, catalog.WithPatterns(patterns...))
	if err != nil {
		return err
	}

	entry, err := result.Catalog.Get(name)
	if err != nil {
		return err
	}

	return opts.print(ctx, entry)
}

// fromIndex resolves the entry from the on-disk index, but only when the
// index fingerprint still matches the corpus files on disk.
func (opts *ShowOptions) fromIndex(ctx context.Context, name, dir string, patterns []string) (*cvar.Entry, error) {
	files, err := catalog.Files(ctx, dir, catalog.WithPatterns(patterns...))
	if err != nil {
		return nil, err
	}

	fingerprint, err := store.FingerprintFiles(files...)
	if err != nil {
		return nil, err
	}

	s, err := store.New(config.G(ctx).Paths.Index)
	if err != nil {
		return nil, err
	}

	record, err := s.Lookup(ctx, name, fingerprint)
	if err != nil {
		return nil, err
	}

	doc, err := cvar.ParseData(record.Raw, record.File)
	if err != nil {
		return nil, err
	}

	if len(doc.Entries) != 1 {
		return nil, fmt.Errorf("index record for %s does not round-trip to a single entry", name)
	}

	entry := doc.Entries[0]
	entry.Line = record.Line

	return entry, nil
}

func (opts *ShowOptions) print(ctx context.Context, entry *cvar.Entry) error {
	out := iostreams.G(ctx).Out

	if opts.Raw {
		_, err := out.Write(entry.Raw)
		return err
	}

	cs := iostreams.G(ctx).ColorScheme()

	fmt.Fprintln(out, cs.Bold(entry.Name))
	fmt.Fprintln(out, cs.Gray(fmt.Sprintf("%s:%d", entry.File, entry.Line)))
	fmt.Fprintln(out)

	for _, block := range entry.Summary {
		switch block.Kind {
		case cvar.BlockPara:
			fmt.Fprintln(out, block.Text)
		case cvar.BlockExampleCmds, cvar.BlockExampleOutput:
			fmt.Fprintln(out, text.Indent(strings.TrimRight(block.Text, "\n"), "    "))
		default:
			fmt.Fprintln(out, block.Text)
		}

		fmt.Fprintln(out)
	}

	if refs := entry.Refs(); len(refs) > 0 {
		fmt.Fprintf(out, "%s %s\n", cs.Bold("See also:"), strings.Join(refs, ", "))
	}

	return nil
}
