// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"vardoc.sh/cvar"
	"vardoc.sh/log"
	"vardoc.sh/schema"
)

// DefaultPattern selects corpus files when neither the manifest nor the
// caller say otherwise.
const DefaultPattern = "*.xml"

// LoaderOptions supported by Load.
type LoaderOptions struct {
	// Patterns are glob patterns selecting corpus files. They override
	// patterns from the manifest.
	Patterns []string

	// Manifest to use instead of reading one from the corpus directory.
	Manifest *schema.Manifest

	// Parallelism bounds concurrent file parses. Zero means unbounded.
	Parallelism int
}

type LoaderOption func(*LoaderOptions) error

// WithPatterns overrides the glob patterns used to select corpus files.
func WithPatterns(patterns ...string) LoaderOption {
	return func(lopts *LoaderOptions) error {
		for _, pattern := range patterns {
			if _, err := glob.Compile(pattern); err != nil {
				return fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
		}

		lopts.Patterns = patterns
		return nil
	}
}

// WithManifest supplies an already-loaded corpus manifest.
func WithManifest(manifest *schema.Manifest) LoaderOption {
	return func(lopts *LoaderOptions) error {
		lopts.Manifest = manifest
		return nil
	}
}

// WithParallelism bounds the number of files parsed concurrently.
func WithParallelism(n int) LoaderOption {
	return func(lopts *LoaderOptions) error {
		lopts.Parallelism = n
		return nil
	}
}

// Result of loading a corpus directory.
type Result struct {
	// Catalog of all loaded entries.
	Catalog *Catalog

	// Manifest of the corpus, nil when the directory has none.
	Manifest *schema.Manifest

	// Files that contributed entries, in load order.
	Files []string

	// Documents by file path, for consumers that rewrite files.
	Documents map[string]*cvar.Document
}

// Files returns the corpus files a load of the directory would parse,
// honouring the manifest and any pattern overrides, without parsing them.
func Files(ctx context.Context, dir string, opts ...LoaderOption) ([]string, error) {
	lopts := &LoaderOptions{}
	for _, opt := range opts {
		if err := opt(lopts); err != nil {
			return nil, err
		}
	}

	_, files, err := resolveFiles(ctx, dir, lopts)
	return files, err
}

// resolveFiles reads the manifest (unless one was supplied) and selects the
// corpus files for a directory.
func resolveFiles(ctx context.Context, dir string, lopts *LoaderOptions) (*schema.Manifest, []string, error) {
	manifest := lopts.Manifest
	if manifest == nil {
		var err error
		if manifest, err = schema.LoadManifest(ctx, dir); err != nil {
			return nil, nil, err
		}
	}

	patterns := lopts.Patterns
	if len(patterns) == 0 && manifest != nil {
		patterns = manifest.Patterns
	}
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	files, err := matchFiles(dir, patterns)
	if err != nil {
		return nil, nil, err
	}

	return manifest, files, nil
}

// Load reads all corpus files in a directory into a catalog. Files are
// parsed concurrently and merged in sorted path order so that entry order
// is deterministic.
func Load(ctx context.Context, dir string, opts ...LoaderOption) (*Result, error) {
	lopts := &LoaderOptions{}
	for _, opt := range opts {
		if err := opt(lopts); err != nil {
			return nil, err
		}
	}

	manifest, files, err := resolveFiles(ctx, dir, lopts)
	if err != nil {
		return nil, err
	}

	log.G(ctx).WithField("dir", dir).Debugf("loading %d corpus files", len(files))

	docs := make([]*cvar.Document, len(files))

	eg, _ := errgroup.WithContext(ctx)
	if lopts.Parallelism > 0 {
		eg.SetLimit(lopts.Parallelism)
	}

	for i, file := range files {
		eg.Go(func() error {
			doc, err := cvar.Parse(file)
			if err != nil {
				return err
			}

			docs[i] = doc
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Catalog:   New(),
		Manifest:  manifest,
		Files:     files,
		Documents: make(map[string]*cvar.Document, len(files)),
	}

	for _, doc := range docs {
		result.Documents[doc.File] = doc

		for _, entry := range doc.Entries {
			if err := result.Catalog.Add(entry); err != nil {
				return nil, err
			}
		}
	}

	log.G(ctx).WithField("dir", dir).Debugf("loaded %d entries", result.Catalog.Len())

	return result, nil
}

// matchFiles returns the sorted corpus files matching any of the given
// glob patterns. The manifest itself is never a corpus file.
func matchFiles(dir string, patterns []string) ([]string, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read corpus directory %s: %w", dir, err)
	}

	var files []string
	for _, dirent := range dirents {
		if dirent.IsDir() || dirent.Name() == schema.ManifestFileName {
			continue
		}

		for _, g := range globs {
			if g.Match(dirent.Name()) {
				files = append(files, filepath.Join(dir, dirent.Name()))
				break
			}
		}
	}

	sort.Strings(files)

	return files, nil
}
