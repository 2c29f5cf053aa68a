// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"gopkg.in/yaml.v3"
)

// YamlFeeder feeds using a YAML file.
type YamlFeeder struct {
	File string
}

func (f YamlFeeder) Feed(structure interface{}) error {
	file, err := os.Open(filepath.Clean(f.File))
	if err != nil {
		return fmt.Errorf("cannot open yaml file: %v", err)
	}

	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}

	// File is empty, ignore
	if stat.Size() == 0 {
		return nil
	}

	if err = yaml.NewDecoder(file).Decode(structure); err != nil {
		return fmt.Errorf("cannot feed config file: %v", err)
	}

	return nil
}

func (yf YamlFeeder) Write(structure interface{}, merge bool) error {
	if len(yf.File) == 0 {
		return fmt.Errorf("filename for YAML cannot be empty")
	}

	// Create parent directories if not present
	err := os.MkdirAll(filepath.Dir(yf.File), 0o771)
	if err != nil {
		return pathError(err)
	}

	// Open the file (create if not present)
	f, err := os.OpenFile(yf.File, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("could not open file: %v", err)
	}

	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("could not read file: %v", err)
	}

	from := yaml.Node{}
	if err := yaml.Unmarshal(data, &from); err != nil {
		return fmt.Errorf("could not unmarshal YAML: %s", err)
	}

	yml, err := yaml.Marshal(structure)
	if err != nil {
		return err
	}

	into := yaml.Node{}
	if err := yaml.Unmarshal(yml, &into); err != nil {
		return err
	}

	// When kind is 0, it is an uninitialized YAML structure (aka empty file)
	if from.Kind != 0 && merge {
		if err := recursiveMerge(&from, &into); err != nil {
			return fmt.Errorf("could not update config: %v", err)
		}
	}

	if err := f.Truncate(0); err != nil {
		return err
	}

	if _, err := f.Seek(0, 0); err != nil {
		return err
	}

	if err := yaml.NewEncoder(f).Encode(&into); err != nil {
		return err
	}

	return nil
}

func recursiveMerge(from, into *yaml.Node) error {
	if from.Kind != into.Kind {
		return fmt.Errorf("cannot merge nodes of different kinds")
	}

	switch from.Kind {
	case yaml.MappingNode:
		for i := 0; i < len(from.Content); i += 2 {
			found := false
			for j := 0; j < len(into.Content); j += 2 {
				if nodesEqual(from.Content[i], into.Content[j]) {
					found = true
					if err := recursiveMerge(from.Content[i+1], into.Content[j+1]); err != nil {
						return fmt.Errorf("at key %s: %v", from.Content[i].Value, err)
					}
					break
				}
			}
			if !found {
				into.Content = append(into.Content, from.Content[i:i+2]...)
			}
		}
	case yaml.ScalarNode:
		into.Value = from.Value
	case yaml.SequenceNode:
		for _, fromItem := range from.Content {
			foundFrom := false
			for _, intoItem := range into.Content {
				if fromItem.Value == intoItem.Value {
					foundFrom = true
				}
			}
			if !foundFrom {
				into.Content = append(into.Content, fromItem)
			}
		}
	case yaml.DocumentNode:
		return recursiveMerge(from.Content[0], into.Content[0])
	default:
		return fmt.Errorf("can only merge mapping, sequence and scalar nodes")
	}

	return nil
}

func nodesEqual(l, r *yaml.Node) bool {
	if l.Kind == yaml.ScalarNode && r.Kind == yaml.ScalarNode {
		return l.Value == r.Value
	}

	return false
}

func pathError(err error) error {
	var perr *os.PathError
	if errors.As(err, &perr) && errors.Is(perr.Err, syscall.ENOTDIR) {
		if p := findRegularFile(perr.Path); p != "" {
			return fmt.Errorf("remove or rename regular file `%s` (must be a directory)", p)
		}
	}
	return err
}

func findRegularFile(p string) string {
	for {
		if s, err := os.Stat(p); err == nil && s.Mode().IsRegular() {
			return p
		}
		newPath := filepath.Dir(p)
		if newPath == p || newPath == string(filepath.Separator) || newPath == "." {
			break
		}
		p = newPath
	}
	return ""
}
