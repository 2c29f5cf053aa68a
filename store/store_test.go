// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vardoc.sh/catalog"
	"vardoc.sh/store"
)

func writeCorpus(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"compilers.xml": `<cvar name="CC">
<summary>
<para>
The C compiler.
</para>
</summary>
</cvar>

<cvar name="CXX">
<summary>
<para>
The C++ compiler. See also &cv-link-CC; and &t-link-TOOL_GCC;.
</para>
</summary>
</cvar>
`,
		"linker.xml": `<cvar name="LINK">
<summary>
<para>
The linker.
</para>
</summary>
</cvar>
`,
	}

	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal("WriteFile:", err)
		}
	}

	return dir
}

func loadCorpus(t *testing.T, dir string) *catalog.Result {
	t.Helper()

	result, err := catalog.Load(context.Background(), dir, catalog.WithPatterns("*.xml"))
	if err != nil {
		t.Fatal("Load:", err)
	}

	return result
}

func TestIndexAndLookup(t *testing.T) {
	ctx := context.Background()
	corpus := writeCorpus(t)
	result := loadCorpus(t, corpus)

	s, err := store.New(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatal("New:", err)
	}

	if err := s.Index(ctx, result); err != nil {
		t.Fatal("Index:", err)
	}

	fingerprint := store.Fingerprint(result)

	record, err := s.Lookup(ctx, "CXX", fingerprint)
	if err != nil {
		t.Fatal("Lookup:", err)
	}

	if record.Name != "CXX" {
		t.Errorf("Expected CXX, got %q", record.Name)
	}
	if filepath.Base(record.File) != "compilers.xml" {
		t.Errorf("Unexpected file %q", record.File)
	}
	if len(record.Refs) != 1 || record.Refs[0] != "CC" {
		t.Errorf("Unexpected refs %v", record.Refs)
	}
	if len(record.TermRefs) != 1 || record.TermRefs[0] != "TOOL_GCC" {
		t.Errorf("Unexpected term refs %v", record.TermRefs)
	}
	if len(record.Raw) == 0 {
		t.Error("Expected the raw segment to be preserved")
	}

	entry, err := result.Catalog.Get("CXX")
	if err != nil {
		t.Fatal("Get:", err)
	}
	if string(record.Raw) != string(entry.Raw) {
		t.Error("Indexed raw segment differs from the parsed entry")
	}
}

func TestLookupNotIndexed(t *testing.T) {
	ctx := context.Background()
	result := loadCorpus(t, writeCorpus(t))

	s, err := store.New(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatal("New:", err)
	}

	if err := s.Index(ctx, result); err != nil {
		t.Fatal("Index:", err)
	}

	if _, err := s.Lookup(ctx, "NOPE", ""); !errors.Is(err, store.ErrNotIndexed) {
		t.Fatalf("Expected ErrNotIndexed, got %v", err)
	}
}

func TestLookupStale(t *testing.T) {
	ctx := context.Background()
	corpus := writeCorpus(t)
	result := loadCorpus(t, corpus)

	s, err := store.New(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatal("New:", err)
	}

	if err := s.Index(ctx, result); err != nil {
		t.Fatal("Index:", err)
	}

	if err := os.WriteFile(filepath.Join(corpus, "linker.xml"), []byte(`<cvar name="LINK">
<summary>
<para>
The linker, now different.
</para>
</summary>
</cvar>
`), 0o644); err != nil {
		t.Fatal("WriteFile:", err)
	}

	files, err := catalog.Files(ctx, corpus, catalog.WithPatterns("*.xml"))
	if err != nil {
		t.Fatal("Files:", err)
	}

	fingerprint, err := store.FingerprintFiles(files...)
	if err != nil {
		t.Fatal("FingerprintFiles:", err)
	}

	if _, err := s.Lookup(ctx, "LINK", fingerprint); !errors.Is(err, store.ErrStale) {
		t.Fatalf("Expected ErrStale, got %v", err)
	}
}

func TestLookupEmptyIndex(t *testing.T) {
	s, err := store.New(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatal("New:", err)
	}

	if _, err := s.Lookup(context.Background(), "CC", ""); !errors.Is(err, store.ErrStale) {
		t.Fatalf("Expected ErrStale for an empty index, got %v", err)
	}
}

func TestNames(t *testing.T) {
	ctx := context.Background()
	result := loadCorpus(t, writeCorpus(t))

	s, err := store.New(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatal("New:", err)
	}

	if err := s.Index(ctx, result); err != nil {
		t.Fatal("Index:", err)
	}

	names, err := s.Names(ctx, "")
	if err != nil {
		t.Fatal("Names:", err)
	}

	want := []string{"CC", "CXX", "LINK"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, names)
		}
	}
}

func TestFingerprintFilesMatchesLoad(t *testing.T) {
	ctx := context.Background()
	corpus := writeCorpus(t)
	result := loadCorpus(t, corpus)

	files, err := catalog.Files(ctx, corpus, catalog.WithPatterns("*.xml"))
	if err != nil {
		t.Fatal("Files:", err)
	}

	fingerprint, err := store.FingerprintFiles(files...)
	if err != nil {
		t.Fatal("FingerprintFiles:", err)
	}

	if got := store.Fingerprint(result); got != fingerprint {
		t.Errorf("Raw fingerprint %s does not match parsed fingerprint %s", fingerprint, got)
	}
}

func TestNewEmptyPath(t *testing.T) {
	if _, err := store.New(""); err == nil {
		t.Fatal("Expected an error for an empty path")
	}
}
