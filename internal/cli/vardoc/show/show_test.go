// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package show_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vardoc.sh/catalog"
	"vardoc.sh/config"
	"vardoc.sh/internal/cli/vardoc/show"
	"vardoc.sh/iostreams"
	"vardoc.sh/store"
)

func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	cfgm, err := config.NewConfigManager()
	if err != nil {
		t.Fatal("NewConfigManager:", err)
	}

	cfgm.Config.Paths.Index = filepath.Join(t.TempDir(), "index")

	ctx := config.WithConfigManager(context.Background(), cfgm)

	ios, _, out, _ := iostreams.Test()
	ctx = iostreams.WithIOStreams(ctx, ios)

	return ctx, out
}

func writeCorpus(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	data := `<cvar name="CXX">
<summary>
<para>
The C++ compiler. See also &cv-link-CC;.
</para>
</summary>
</cvar>
`

	if err := os.WriteFile(filepath.Join(dir, "cxx.xml"), []byte(data), 0o644); err != nil {
		t.Fatal("WriteFile:", err)
	}

	return dir
}

func buildIndex(t *testing.T, ctx context.Context, dir string) {
	t.Helper()

	result, err := catalog.Load(ctx, dir)
	if err != nil {
		t.Fatal("Load:", err)
	}

	s, err := store.New(config.G(ctx).Paths.Index)
	if err != nil {
		t.Fatal("New:", err)
	}

	if err := s.Index(ctx, result); err != nil {
		t.Fatal("Index:", err)
	}
}

func TestShowWithoutIndex(t *testing.T) {
	ctx, out := testContext(t)
	dir := writeCorpus(t)

	opts := &show.ShowOptions{NoIndex: true}
	if err := opts.Run(ctx, []string{"CXX", dir}); err != nil {
		t.Fatal("Run:", err)
	}

	output := out.String()
	if !strings.Contains(output, "CXX") {
		t.Errorf("Expected the entry name, got %q", output)
	}
	if !strings.Contains(output, "The C++ compiler.") {
		t.Errorf("Expected the summary prose, got %q", output)
	}
	if !strings.Contains(output, "See also: CC") {
		t.Errorf("Expected the cross-reference line, got %q", output)
	}
}

func TestShowFromIndex(t *testing.T) {
	ctx, out := testContext(t)
	dir := writeCorpus(t)
	buildIndex(t, ctx, dir)

	opts := &show.ShowOptions{}
	if err := opts.Run(ctx, []string{"CXX", dir}); err != nil {
		t.Fatal("Run:", err)
	}

	output := out.String()
	if !strings.Contains(output, "The C++ compiler.") {
		t.Errorf("Expected the summary prose, got %q", output)
	}
	if !strings.Contains(output, "cxx.xml:1") {
		t.Errorf("Expected the corpus position, got %q", output)
	}
}

func TestShowStaleIndexFallsBack(t *testing.T) {
	ctx, out := testContext(t)
	dir := writeCorpus(t)
	buildIndex(t, ctx, dir)

	// Rewrite the corpus after indexing. The index is now stale; show must
	// serve the current file content, not the indexed record.
	if err := os.WriteFile(filepath.Join(dir, "cxx.xml"), []byte(`<cvar name="CXX">
<summary>
<para>
The C++ compiler, freshly reworded.
</para>
</summary>
</cvar>
`), 0o644); err != nil {
		t.Fatal("WriteFile:", err)
	}

	opts := &show.ShowOptions{}
	if err := opts.Run(ctx, []string{"CXX", dir}); err != nil {
		t.Fatal("Run:", err)
	}

	output := out.String()
	if !strings.Contains(output, "freshly reworded") {
		t.Errorf("Expected the current prose, got %q", output)
	}
	if strings.Contains(output, "See also") {
		t.Errorf("Expected no stale cross-reference line, got %q", output)
	}
}

func TestShowRaw(t *testing.T) {
	ctx, out := testContext(t)
	dir := writeCorpus(t)

	opts := &show.ShowOptions{Raw: true, NoIndex: true}
	if err := opts.Run(ctx, []string{"CXX", dir}); err != nil {
		t.Fatal("Run:", err)
	}

	output := out.String()
	if !strings.Contains(output, `<cvar name="CXX">`) || !strings.Contains(output, "</cvar>") {
		t.Errorf("Expected the raw markup block, got %q", output)
	}
}

func TestShowUnknownName(t *testing.T) {
	ctx, _ := testContext(t)
	dir := writeCorpus(t)

	opts := &show.ShowOptions{NoIndex: true}
	if err := opts.Run(ctx, []string{"NOPE", dir}); err == nil {
		t.Fatal("Expected an error for an unknown name")
	}
}
