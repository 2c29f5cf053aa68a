// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vardoc.sh/cmdfactory"
	"vardoc.sh/config"
	"vardoc.sh/iostreams"
	"vardoc.sh/log"
)

type CliOptions struct {
	ConfigManager *config.ConfigManager
	IOStreams     *iostreams.IOStreams
	Logger        *logrus.Logger
}

type CliOption func(*CliOptions) error

// WithDefaultConfigManager instantiates a configuration manager based on
// default options and attributes its values as flags of the given command.
func WithDefaultConfigManager(cmd *cobra.Command) CliOption {
	return func(copts *CliOptions) error {
		if copts.ConfigManager != nil {
			return nil
		}

		cfgm, err := config.NewConfigManager(
			config.WithDefaultConfigFile(),
		)
		if err != nil {
			return err
		}

		// Attribute all configuration flags and command-line argument values
		if err := cmdfactory.AttributeFlags(cmd, cfgm.Config, os.Args...); err != nil {
			return err
		}

		copts.ConfigManager = cfgm

		return nil
	}
}

// WithDefaultIOStreams instantiates new IO streams using environmental
// variables and host-provided configuration.
func WithDefaultIOStreams() CliOption {
	return func(copts *CliOptions) error {
		if copts.IOStreams != nil {
			return nil
		}

		copts.IOStreams = iostreams.System()

		if copts.ConfigManager != nil && copts.ConfigManager.Config.NoColor {
			copts.IOStreams.SetColorEnabled(false)
		}

		return nil
	}
}

// WithDefaultLogger sets up the built in logger based on provided config
// found from the ConfigManager.
func WithDefaultLogger() CliOption {
	return func(copts *CliOptions) error {
		if copts.Logger != nil {
			return nil
		}

		if copts.ConfigManager == nil {
			copts.Logger = log.L
			return nil
		}

		logger := logrus.New()
		cfg := copts.ConfigManager.Config

		switch log.LoggerTypeFromString(cfg.Log.Type) {
		case log.QUIET:
			formatter := new(logrus.TextFormatter)
			logger.Formatter = formatter

		case log.JSON:
			formatter := new(logrus.JSONFormatter)
			formatter.DisableTimestamp = true

			if cfg.Log.Timestamps {
				formatter.DisableTimestamp = false
			}

			logger.Formatter = formatter

		default:
			formatter := new(log.TextFormatter)
			formatter.FullTimestamp = true
			formatter.DisableTimestamp = true

			if cfg.Log.Timestamps {
				formatter.DisableTimestamp = false
			} else {
				formatter.TimestampFormat = ">"
			}

			logger.Formatter = formatter
		}

		level, ok := log.Levels()[cfg.Log.Level]
		if !ok {
			logger.Level = logrus.InfoLevel
		} else {
			logger.Level = level
		}

		if copts.IOStreams != nil {
			logger.SetOutput(copts.IOStreams.ErrOut)
		}

		copts.Logger = logger

		return nil
	}
}
