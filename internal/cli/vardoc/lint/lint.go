// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package lint

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"vardoc.sh/catalog"
	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/iostreams"
	"vardoc.sh/log"
)

type LintOptions struct{}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&LintOptions{}, cobra.Command{
		Short: "Check a corpus for dangling cross-references",
		Use:   "lint [DIR]",
		Args:  cmdfactory.MaxDirArgs(1),
		Long: heredoc.Doc(`
			Check every cross-reference of a corpus against the set of
			documented variables and the glossary terms declared in the
			corpus manifest.  Findings are advisory and do not fail the
			command.`),
		Example: heredoc.Doc(`
			# Lint the corpus in the current directory
			$ vardoc lint

			# Lint another corpus
			$ vardoc lint path/to/corpus
		`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *LintOptions) Run(ctx context.Context, args []string) error {
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

	var lopts []catalog.LintOption
	if result.Manifest != nil {
		lopts = append(lopts, catalog.WithKnownTerms(result.Manifest.Terms...))
	}

	report := catalog.Lint(ctx, result.Catalog, lopts...)

	for _, finding := range report.Findings {
		log.G(ctx).Warn(finding.String())
	}

	cs := iostreams.G(ctx).ColorScheme()
	out := iostreams.G(ctx).Out

	if report.OK() {
		fmt.Fprintf(out, "%s checked %d entries, no findings\n", cs.SuccessIcon(), result.Catalog.Len())
	} else {
		fmt.Fprintf(out, "%s checked %d entries, %d findings\n", cs.WarningIcon(), result.Catalog.Len(), len(report.Findings))
	}

	return nil
}
