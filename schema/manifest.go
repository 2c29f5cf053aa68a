// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

package schema

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the well-known manifest file within a corpus
// directory.
const ManifestFileName = "Vardoc.yaml"

// Manifest describes a corpus: which files belong to it and which
// external glossary terms its entries may reference.
type Manifest struct {
	// Spec is the manifest specification version.
	Spec string `yaml:"spec"`

	// Name of the corpus.
	Name string `yaml:"name,omitempty"`

	// Patterns are glob patterns selecting corpus files, relative to the
	// corpus directory.
	Patterns []string `yaml:"patterns,omitempty"`

	// Terms lists known external glossary terms.
	Terms []string `yaml:"terms,omitempty"`
}

// LoadManifest reads and validates the manifest of the given corpus
// directory. A missing manifest is not an error and yields nil.
func LoadManifest(ctx context.Context, dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open manifest %s: %w", path, err)
	}

	// Validation works on the generic decoding so that unknown attributes
	// are caught instead of silently dropped.
	var generic map[string]interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("could not decode manifest %s: %w", path, err)
	}

	if err := Validate(ctx, generic); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("could not decode manifest %s: %w", path, err)
	}

	return manifest, nil
}
