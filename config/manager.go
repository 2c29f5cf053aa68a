// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Feeder provides configuration data from some source, e.g. a YAML file.
type Feeder interface {
	// Feed binds values from the source onto the given structure.
	Feed(structure interface{}) error

	// Write persists the given structure back to the source, merging with
	// existing values when merge is set.
	Write(structure interface{}, merge bool) error
}

// ConfigManager uses the package facilities, there should be at least one
// instance of it. It holds the configuration feeders and structs.
type ConfigManager struct {
	Config     *Config
	ConfigFile string
	Feeders    []Feeder
}

type ConfigManagerOption func(cm *ConfigManager) error

func WithFeeder(feeder Feeder) ConfigManagerOption {
	return func(cm *ConfigManager) error {
		cm.AddFeeder(feeder)
		return nil
	}
}

func WithFile(file string, forceCreate bool) ConfigManagerOption {
	return func(cm *ConfigManager) error {
		ext := strings.Split(file, ".")
		if len(ext) == 1 {
			return fmt.Errorf("unknown file extension for config file: %s", file)
		}

		_, err := os.Stat(file)

		switch ext[len(ext)-1] {
		case "yaml", "yml":
			yml := YamlFeeder{
				File: file,
			}
			if os.IsNotExist(err) {
				if !forceCreate {
					return nil
				}
				if err := yml.Write(cm.Config, false); err != nil {
					return fmt.Errorf("could not write initial config: %v", err)
				}
			}
			cm.ConfigFile = file
			return WithFeeder(yml)(cm)
		default:
			return fmt.Errorf("unsupported file extension: %s", file)
		}
	}
}

func WithDefaultConfigFile() ConfigManagerOption {
	return func(cm *ConfigManager) error {
		return WithFile(DefaultConfigFile(), false)(cm)
	}
}

func NewConfigManager(opts ...ConfigManagerOption) (*ConfigManager, error) {
	cm := &ConfigManager{}

	c, err := NewDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("could not seed default values for config: %s", err)
	}

	cm.Config = c

	for _, o := range opts {
		if err := o(cm); err != nil {
			return nil, fmt.Errorf("could not apply config manager option: %v", err)
		}
	}

	// Feed the config, pass the manager anyway if this fails, we still have
	// defaults
	if err := cm.Feed(); err != nil {
		return cm, fmt.Errorf("could not feed config: %v", err)
	}

	return cm, nil
}

// AddFeeder adds a feeder that provides configuration data.
func (cm *ConfigManager) AddFeeder(f Feeder) *ConfigManager {
	cm.Feeders = append(cm.Feeders, f)
	return cm
}

// Feed binds configuration data from added feeders to the config struct.
func (cm *ConfigManager) Feed() error {
	for _, f := range cm.Feeders {
		if err := f.Feed(cm.Config); err != nil {
			return fmt.Errorf("failed to feed config: %v", err)
		}
	}

	return nil
}

func (cm *ConfigManager) Write(merge bool) error {
	for _, f := range cm.Feeders {
		if err := f.Write(cm.Config, merge); err != nil {
			return err
		}
	}

	return nil
}
