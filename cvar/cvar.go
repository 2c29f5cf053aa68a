// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

// Package cvar implements parsing of construction-variable reference
// documentation. A corpus file is a sequence of <cvar> elements, each
// describing one construction variable: a summary of prose paragraphs,
// optional literal example blocks, and inline entity-style tokens which
// cross-reference other entries (&cv-link-NAME;) or external glossary
// terms (&t-link-NAME;).
package cvar

import (
	"regexp"
	"strings"
	"sync"
)

// BlockKind discriminates the block types a summary can hold.
type BlockKind string

const (
	BlockPara          = BlockKind("para")
	BlockExampleCmds   = BlockKind("example_commands")
	BlockExampleOutput = BlockKind("example_output")
	BlockOpaque        = BlockKind("opaque")
)

// Block is one structural element of an entry summary. Para blocks carry
// prose, example blocks carry literal text reproduced verbatim in rendered
// documentation. Opaque blocks are elements this package does not
// interpret; their raw text is retained so nothing is lost.
type Block struct {
	Kind BlockKind `json:"kind,omitempty"`

	// Text is the block content with surrounding markup stripped. For
	// opaque blocks it is the raw element text including markup.
	Text string `json:"text,omitempty"`
}

// Entry is a single variable reference entry.
type Entry struct {
	// Name of the construction variable, unique within a corpus.
	Name string `json:"name,omitempty"`

	// File the entry was parsed from.
	File string `json:"file,omitempty"`

	// Line of the opening tag within File (1-based).
	Line int `json:"line,omitempty"`

	// Summary blocks in authoring order.
	Summary []Block `json:"summary,omitempty"`

	// Raw is the exact source text of the element, opening tag through
	// closing tag, including the trailing newline when present.
	Raw []byte `json:"-"`

	refs     []string
	termRefs []string
	refsOnce sync.Once
}

var (
	reEntryRef = regexp.MustCompile(`&cv-link-([A-Za-z_][A-Za-z0-9_]*);`)
	reTermRef  = regexp.MustCompile(`&t-link-([A-Za-z_][A-Za-z0-9_-]*);`)
)

// Text returns the concatenated prose of all paragraph blocks.
func (e *Entry) Text() string {
	var paras []string
	for _, b := range e.Summary {
		if b.Kind == BlockPara {
			paras = append(paras, b.Text)
		}
	}

	return strings.Join(paras, "\n\n")
}

// Refs returns the names of entries this entry cross-references, in order
// of first appearance.
func (e *Entry) Refs() []string {
	e.scanRefs()
	return e.refs
}

// TermRefs returns the external glossary terms this entry references, in
// order of first appearance.
func (e *Entry) TermRefs() []string {
	e.scanRefs()
	return e.termRefs
}

func (e *Entry) scanRefs() {
	e.refsOnce.Do(func() {
		e.refs = collectRefs(reEntryRef, e.Raw)
		e.termRefs = collectRefs(reTermRef, e.Raw)
	})
}

func collectRefs(re *regexp.Regexp, raw []byte) []string {
	var refs []string
	seen := make(map[string]bool)

	for _, m := range re.FindAllSubmatch(raw, -1) {
		name := string(m[1])
		if seen[name] {
			continue
		}
		seen[name] = true
		refs = append(refs, name)
	}

	return refs
}
