// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package refs

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"vardoc.sh/catalog"
	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/cvar"
	"vardoc.sh/iostreams"
)

type RefsOptions struct {
	Depth int `long:"depth" short:"d" usage:"Maximum depth of the reference tree" default:"3"`
}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&RefsOptions{}, cobra.Command{
		Short: "Show the cross-reference tree of a variable",
		Use:   "refs [FLAGS] NAME [DIR]",
		Args:  cobra.RangeArgs(1, 2),
		Long: heredoc.Doc(`
			Show which variables a variable's documentation links to,
			recursively, as a tree.  References that resolve to no entry
			are marked unknown and reference cycles are cut.`),
		Example: heredoc.Doc(`
			# Show what LIBSUFFIX links to
			$ vardoc refs LIBSUFFIX

			# Follow links five levels deep
			$ vardoc refs --depth 5 LIBSUFFIX path/to/corpus
		`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *RefsOptions) Run(ctx context.Context, args []string) error {
	name := args[0]
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}

	result, err := catalog.Load(ctx, dir,
		catalog.WithPatterns(config.G(ctx).Corpus.Patterns...),
	)
	if err != nil {
		return err
	}

	entry, err := result.Catalog.Get(name)
	if err != nil {
		return err
	}

	tree := treeprint.NewWithRoot(entry.Name)
	opts.grow(tree, result.Catalog, entry, map[string]bool{entry.Name: true}, opts.Depth)

	fmt.Fprint(iostreams.G(ctx).Out, tree.String())

	return nil
}

// grow adds the references of an entry as branches, following resolvable
// references until the depth budget is spent.  Names already on the path
// from the root are cycles and become leaves.
func (opts *RefsOptions) grow(branch treeprint.Tree, c *catalog.Catalog, entry *cvar.Entry, path map[string]bool, depth int) {
	if depth <= 0 {
		return
	}

	for _, ref := range entry.Refs() {
		target, err := c.Get(ref)
		if err != nil {
			branch.AddNode(ref + " (unknown)")
			continue
		}

		if path[ref] {
			branch.AddNode(ref + " (cycle)")
			continue
		}

		child := branch.AddBranch(ref)
		path[ref] = true
		opts.grow(child, c, target, path, depth-1)
		delete(path, ref)
	}

	for _, term := range entry.TermRefs() {
		branch.AddNode(term + " (term)")
	}
}
