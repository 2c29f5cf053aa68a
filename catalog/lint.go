// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

package catalog

import (
	"context"
	"fmt"

	"vardoc.sh/internal/set"
	"vardoc.sh/log"
)

type Severity string

const (
	SeverityWarning = Severity("warning")
)

// Finding is one linter result. Cross-reference problems are advisory:
// documentation links are hints to the reader, not runtime dependencies.
type Finding struct {
	Severity Severity `json:"severity"`

	// Entry is the name of the entry the finding was raised on.
	Entry string `json:"entry"`

	// Ref is the unresolved reference, when the finding concerns one.
	Ref string `json:"ref,omitempty"`

	// File and Line locate the entry in the corpus.
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`

	Message string `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: %s: %s", f.File, f.Line, f.Severity, f.Message)
}

// Report aggregates linter findings in catalog order.
type Report struct {
	Findings []Finding `json:"findings,omitempty"`
}

// OK reports whether the corpus is free of findings.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// Warnings returns all warning-severity findings.
func (r *Report) Warnings() []Finding {
	var warnings []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			warnings = append(warnings, f)
		}
	}

	return warnings
}

// LintOptions supported by Lint.
type LintOptions struct {
	// Terms are the known external glossary terms. When empty, glossary
	// references are not checked.
	Terms []string
}

type LintOption func(*LintOptions)

// WithKnownTerms supplies the glossary terms that &t-link-...; tokens may
// reference.
func WithKnownTerms(terms ...string) LintOption {
	return func(lopts *LintOptions) {
		lopts.Terms = append(lopts.Terms, terms...)
	}
}

// Lint checks every cross-reference in the catalog. Dangling references
// are reported as warnings; they never fail a load.
func Lint(ctx context.Context, c *Catalog, opts ...LintOption) *Report {
	lopts := &LintOptions{}
	for _, opt := range opts {
		opt(lopts)
	}

	terms := set.NewStringSet(lopts.Terms...)
	report := &Report{}

	for _, entry := range c.All() {
		for _, ref := range entry.Refs() {
			if c.Has(ref) {
				continue
			}

			report.Findings = append(report.Findings, Finding{
				Severity: SeverityWarning,
				Entry:    entry.Name,
				Ref:      ref,
				File:     entry.File,
				Line:     entry.Line,
				Message:  fmt.Sprintf("%s references unknown entry %q", entry.Name, ref),
			})
		}

		if terms.Len() == 0 {
			continue
		}

		for _, term := range entry.TermRefs() {
			if terms.Contains(term) {
				continue
			}

			report.Findings = append(report.Findings, Finding{
				Severity: SeverityWarning,
				Entry:    entry.Name,
				Ref:      term,
				File:     entry.File,
				Line:     entry.Line,
				Message:  fmt.Sprintf("%s references unknown glossary term %q", entry.Name, term),
			})
		}
	}

	log.G(ctx).Debugf("linted %d entries, %d findings", c.Len(), len(report.Findings))

	return report
}
