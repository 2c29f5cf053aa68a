// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package version

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"vardoc.sh/cmdfactory"
	"vardoc.sh/internal/version"
	"vardoc.sh/iostreams"
)

type VersionOptions struct{}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&VersionOptions{}, cobra.Command{
		Short:   "Show vardoc version information",
		Use:     "version",
		Aliases: []string{"v"},
		Args:    cobra.NoArgs,
		Long:    "Show vardoc version information.",
		Example: heredoc.Doc(`
			# Show vardoc version information
			$ vardoc version
		`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *VersionOptions) Run(ctx context.Context, _ []string) error {
	fmt.Fprintf(iostreams.G(ctx).Out, "vardoc %s", version.String())
	return nil
}
