// SPDX-License-Identifier: MIT
// Copyright (c) 2019 GitHub Inc.
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the MIT License (the "License").
// You may not use this file except in compliance with the License.
package cmdfactory

import (
	"os"

	"github.com/spf13/cobra"
)

func MinimumArgs(n int, msg string) cobra.PositionalArgs {
	if msg == "" {
		return cobra.MinimumNArgs(1)
	}

	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return FlagErrorf("%s", msg)
		}
		return nil
	}
}

func ExactArgs(n int, msg string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return FlagErrorf("too many arguments")
		}

		if len(args) < n {
			return FlagErrorf("%s", msg)
		}

		return nil
	}
}

func MaxDirArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return FlagErrorf("expected no more than %d paths received %d", n, len(args))

			// Treat no path as current working directory
		} else if len(args) == 0 {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			args = []string{cwd}
		}

		for _, path := range args {
			f, err := os.Stat(path)
			if err != nil || !f.IsDir() {
				return FlagErrorf("path is not a valid directory: %s", path)
			}
		}

		return nil
	}
}
