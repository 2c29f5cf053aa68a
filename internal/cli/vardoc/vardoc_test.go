// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package vardoc_test

import (
	"testing"

	"vardoc.sh/internal/cli"
	"vardoc.sh/internal/cli/vardoc"
)

func TestConfigFlagsAttributed(t *testing.T) {
	t.Setenv("VARDOC_CONFIG_DIR", t.TempDir())

	cmd := vardoc.NewCmd()
	copts := &cli.CliOptions{}
	if err := cli.WithDefaultConfigManager(cmd)(copts); err != nil {
		t.Fatal("WithDefaultConfigManager:", err)
	}

	for _, name := range []string{
		"no-color",
		"log-level",
		"log-timestamps",
		"log-type",
		"config-dir",
		"index-dir",
		"with-pattern",
	} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected a --%s flag", name)
		}
	}

	if got := copts.ConfigManager.Config.Log.Level; got != "info" {
		t.Errorf("Expected default log level info, got %q", got)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("VARDOC_CONFIG_DIR", t.TempDir())
	t.Setenv("VARDOC_LOG_LEVEL", "trace")
	t.Setenv("VARDOC_LOG_TYPE", "json")

	cmd := vardoc.NewCmd()
	copts := &cli.CliOptions{}
	if err := cli.WithDefaultConfigManager(cmd)(copts); err != nil {
		t.Fatal("WithDefaultConfigManager:", err)
	}

	cfg := copts.ConfigManager.Config
	if cfg.Log.Level != "trace" {
		t.Errorf("Expected log level trace from the environment, got %q", cfg.Log.Level)
	}
	if cfg.Log.Type != "json" {
		t.Errorf("Expected log type json from the environment, got %q", cfg.Log.Type)
	}
}
