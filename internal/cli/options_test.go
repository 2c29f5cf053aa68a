// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package cli_test

import (
	"testing"

	"github.com/spf13/cobra"

	"vardoc.sh/internal/cli"
)

func TestNoColorOverridesForcedColor(t *testing.T) {
	t.Setenv("VARDOC_CONFIG_DIR", t.TempDir())
	t.Setenv("CLICOLOR_FORCE", "1")
	t.Setenv("VARDOC_NO_COLOR", "true")

	cmd := &cobra.Command{Use: "vardoc"}
	copts := &cli.CliOptions{}

	for _, o := range []cli.CliOption{
		cli.WithDefaultConfigManager(cmd),
		cli.WithDefaultIOStreams(),
	} {
		if err := o(copts); err != nil {
			t.Fatal(err)
		}
	}

	if !copts.ConfigManager.Config.NoColor {
		t.Fatal("Expected NoColor set from the environment")
	}
	if copts.IOStreams.ColorEnabled() {
		t.Error("Expected color output disabled")
	}
}
