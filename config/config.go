// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

// Package config provides the vardoc configuration functions
package config

// Config holds the tool configuration. Values are sourced, in order of
// precedence, from command-line flags, environment variables and the
// configuration file.
type Config struct {
	NoColor bool `yaml:"no_color" env:"VARDOC_NO_COLOR" long:"no-color" usage:"Do not use ANSI colors in any output" default:"false"`

	Log struct {
		Level      string `yaml:"level" env:"VARDOC_LOG_LEVEL" long:"log-level" usage:"Log level verbosity" default:"info"`
		Timestamps bool   `yaml:"timestamps" env:"VARDOC_LOG_TIMESTAMPS" long:"log-timestamps" usage:"Enable log timestamps"`
		Type       string `yaml:"type" env:"VARDOC_LOG_TYPE" long:"log-type" usage:"Log type" default:"basic"`
	} `yaml:"log"`

	Paths struct {
		Config string `yaml:"config,omitempty" env:"VARDOC_PATHS_CONFIG" long:"config-dir" usage:"Path to vardoc config directory"`
		Index  string `yaml:"index,omitempty" env:"VARDOC_PATHS_INDEX" long:"index-dir" usage:"Path to the corpus index cache"`
	} `yaml:"paths,omitempty"`

	Corpus struct {
		Patterns []string `yaml:"patterns" env:"VARDOC_CORPUS_PATTERNS" long:"with-pattern" usage:"Glob patterns selecting corpus files"`
	} `yaml:"corpus"`
}
