// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

package vardoc

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/internal/cli"
	"vardoc.sh/internal/version"
	"vardoc.sh/iostreams"
	"vardoc.sh/log"

	"vardoc.sh/internal/cli/vardoc/dump"
	"vardoc.sh/internal/cli/vardoc/fmtcmd"
	"vardoc.sh/internal/cli/vardoc/index"
	"vardoc.sh/internal/cli/vardoc/lint"
	"vardoc.sh/internal/cli/vardoc/list"
	"vardoc.sh/internal/cli/vardoc/refs"
	"vardoc.sh/internal/cli/vardoc/show"
	versioncmd "vardoc.sh/internal/cli/vardoc/version"
)

type VardocOptions struct{}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&VardocOptions{}, cobra.Command{
		Short: "Browse, lint and format construction variable documentation",
		Use:   "vardoc [FLAGS] SUBCOMMAND",
		Long: heredoc.Docf(`
			Browse, lint and format corpora of construction variable
			reference documentation.

			Version:  %s`, version.Version()),
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	})
	if err != nil {
		panic(err)
	}

	cmd.AddCommand(dump.NewCmd())
	cmd.AddCommand(fmtcmd.NewCmd())
	cmd.AddCommand(index.NewCmd())
	cmd.AddCommand(lint.NewCmd())
	cmd.AddCommand(list.NewCmd())
	cmd.AddCommand(refs.NewCmd())
	cmd.AddCommand(show.NewCmd())
	cmd.AddCommand(versioncmd.NewCmd())

	return cmd
}

func (opts *VardocOptions) Run(_ context.Context, args []string) error {
	return pflag.ErrHelp
}

func Main(args []string) int {
	cmd := NewCmd()
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	copts := &cli.CliOptions{}

	for _, o := range []cli.CliOption{
		cli.WithDefaultConfigManager(cmd),
		cli.WithDefaultIOStreams(),
		cli.WithDefaultLogger(),
	} {
		if err := o(copts); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	// Set up the config manager in the context if it is available
	if copts.ConfigManager != nil {
		ctx = config.WithConfigManager(ctx, copts.ConfigManager)
	}

	// Set up the logger in the context if it is available
	if copts.Logger != nil {
		ctx = log.WithLogger(ctx, copts.Logger)
	}

	// Set up the iostreams in the context if it is available
	if copts.IOStreams != nil {
		ctx = iostreams.WithIOStreams(ctx, copts.IOStreams)
	}

	log.G(ctx).Debugf("vardoc %s", version.Version())

	return cmdfactory.Main(ctx, cmd)
}
