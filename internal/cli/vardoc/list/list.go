// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package list

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"vardoc.sh/catalog"
	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/internal/tableprinter"
	"vardoc.sh/iostreams"
)

type ListOptions struct {
	Long bool `long:"long" short:"l" usage:"Show more information"`

	Output string `noattribute:"true"`
}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&ListOptions{}, cobra.Command{
		Short: "List all documented variables",
		Use:   "list [FLAGS] [DIR]",
		Args:  cmdfactory.MaxDirArgs(1),
		Long:  "List all documented variables in a corpus directory.",
		Example: heredoc.Doc(`
			# List all variables documented in the current directory
			$ vardoc list

			# List all variables of a corpus with their source positions
			$ vardoc list --long path/to/corpus
		`),
	})
	if err != nil {
		panic(err)
	}

	cmd.Flags().AddFlag(
		cmdfactory.VarPF(
			cmdfactory.NewEnumFlag(
				[]tableprinter.TableOutputFormat{
					tableprinter.OutputFormatTable,
					tableprinter.OutputFormatJSON,
					tableprinter.OutputFormatYAML,
					tableprinter.OutputFormatList,
				},
				tableprinter.OutputFormatTable,
			),
			"output",
			"o",
			"Set output format",
		),
	)

	return cmd
}

func (opts *ListOptions) Pre(cmd *cobra.Command, _ []string) error {
	opts.Output = cmd.Flag("output").Value.String()
	return nil
}

func (opts *ListOptions) Run(ctx context.Context, args []string) error {
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

	cs := iostreams.G(ctx).ColorScheme()

	table, err := tableprinter.NewTablePrinter(ctx,
		tableprinter.WithMaxWidth(iostreams.G(ctx).TerminalWidth()),
		tableprinter.WithOutputFormatFromString(opts.Output),
	)
	if err != nil {
		return err
	}

	table.AddField("NAME", cs.Bold)
	if opts.Long {
		table.AddField("POSITION", cs.Bold)
	}
	table.AddField("REFS", cs.Bold)
	table.AddField("SUMMARY", cs.Bold)
	table.EndRow()

	for _, entry := range result.Catalog.All() {
		table.AddField(entry.Name, nil)
		if opts.Long {
			table.AddField(fmt.Sprintf("%s:%d", entry.File, entry.Line), nil)
		}
		table.AddField(strconv.Itoa(len(entry.Refs())), nil)
		table.AddField(firstSentence(entry.Text()), nil)
		table.EndRow()
	}

	return table.Render(iostreams.G(ctx).Out)
}

// firstSentence trims prose down to its first sentence.
func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}

	return s
}
