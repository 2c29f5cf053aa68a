// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package schema_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vardoc.sh/schema"
)

func writeManifest(t *testing.T, data string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, schema.ManifestFileName), []byte(data), 0o644); err != nil {
		t.Fatal("WriteFile:", err)
	}

	return dir
}

func TestLoadManifest(t *testing.T) {
	dir := writeManifest(t, `spec: "0.1"
name: scons construction variables
patterns:
  - "*.xml"
terms:
  - TOOL_LINK
  - TOOL_AR
`)

	manifest, err := schema.LoadManifest(context.Background(), dir)
	if err != nil {
		t.Fatal("LoadManifest:", err)
	}

	if manifest.Spec != "0.1" {
		t.Errorf("Expected spec 0.1, got %q", manifest.Spec)
	}
	if manifest.Name != "scons construction variables" {
		t.Errorf("Unexpected name %q", manifest.Name)
	}
	if len(manifest.Patterns) != 1 || manifest.Patterns[0] != "*.xml" {
		t.Errorf("Unexpected patterns %v", manifest.Patterns)
	}
	if len(manifest.Terms) != 2 {
		t.Errorf("Expected 2 terms, got %v", manifest.Terms)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	manifest, err := schema.LoadManifest(context.Background(), t.TempDir())
	if err != nil {
		t.Fatal("LoadManifest:", err)
	}
	if manifest != nil {
		t.Errorf("Expected nil manifest for missing file, got %+v", manifest)
	}
}

func TestLoadManifestMissingSpec(t *testing.T) {
	dir := writeManifest(t, `name: no version here
`)

	if _, err := schema.LoadManifest(context.Background(), dir); err == nil {
		t.Fatal("Expected an error for a manifest without a spec version")
	}
}

func TestLoadManifestUnknownAttribute(t *testing.T) {
	dir := writeManifest(t, `spec: "0.1"
nam: typo
`)

	_, err := schema.LoadManifest(context.Background(), dir)
	if err == nil {
		t.Fatal("Expected an error for an unknown attribute")
	}
	if !strings.Contains(err.Error(), "invalid manifest") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadManifestBadTerm(t *testing.T) {
	dir := writeManifest(t, `spec: "0.1"
terms:
  - "8-ball"
`)

	if _, err := schema.LoadManifest(context.Background(), dir); err == nil {
		t.Fatal("Expected an error for a malformed glossary term")
	}
}

func TestLoadManifestNewerSpec(t *testing.T) {
	dir := writeManifest(t, `spec: "99.0"
`)

	_, err := schema.LoadManifest(context.Background(), dir)
	if err == nil {
		t.Fatal("Expected an error for a newer spec version")
	}
	if !strings.Contains(err.Error(), "unsupported manifest spec version") {
		t.Errorf("Unexpected error: %v", err)
	}
}
