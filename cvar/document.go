// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

package cvar

import (
	"fmt"
	"os"
	"strings"
)

// segment is either an entry or the verbatim text between entries. Keeping
// both in document order is what makes Serialize byte-exact.
type segment struct {
	raw   []byte
	entry *Entry
}

// Document represents one parsed corpus file.
type Document struct {
	// File is the path the document was parsed from.
	File string `json:"file,omitempty"`

	// Entries in authoring order.
	Entries []*Entry `json:"entries,omitempty"`

	segments []segment
}

// Parse reads and parses a single corpus file.
func Parse(file string) (*Document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open corpus file %s: %w", file, err)
	}

	return ParseData(data, file)
}

// ParseData parses corpus markup. The file argument is used for error
// positions and entry provenance only.
func ParseData(data []byte, file string) (*Document, error) {
	dp := &docParser{
		parser: newParser(data, file),
		doc:    &Document{File: file},
	}

	dp.parseFile()
	if dp.err != nil {
		return nil, dp.err
	}

	return dp.doc, nil
}

type docParser struct {
	*parser
	doc        *Document
	chunkStart int
}

func (dp *docParser) parseFile() {
	for dp.nextLine() {
		if isEntryOpen(dp.trimmed()) {
			dp.flushChunk(dp.offset)
			dp.parseEntry()
		}
	}

	dp.flushChunk(len(dp.data))
}

// flushChunk records the verbatim bytes between the previous segment and
// the given offset.
func (dp *docParser) flushChunk(end int) {
	if end > dp.chunkStart {
		dp.doc.segments = append(dp.doc.segments, segment{
			raw: dp.data[dp.chunkStart:end],
		})
	}

	dp.chunkStart = end
}

// isEntryOpen reports whether a trimmed line begins an entry element.
func isEntryOpen(line string) bool {
	if !strings.HasPrefix(line, "<cvar") {
		return false
	}

	rest := line[len("<cvar"):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '>' || rest[0] == '/'
}

func (dp *docParser) parseEntry() {
	start := dp.offset
	openLine := dp.line

	entry := &Entry{
		File: dp.file,
		Line: openLine,
	}

	dp.col = strings.Index(dp.current, "<cvar") + len("<cvar")
	dp.skipSpaces()

	selfClosing := dp.parseOpenTag(entry)
	if dp.err != nil {
		return
	}

	if !selfClosing {
		dp.parseSummary(entry)
		if dp.err != nil {
			return
		}
	}

	entry.Raw = dp.data[start:dp.next]
	dp.chunkStart = dp.next
	dp.doc.Entries = append(dp.doc.Entries, entry)
	dp.doc.segments = append(dp.doc.segments, segment{entry: entry})
}

// parseOpenTag consumes the attributes and closing bracket of the opening
// tag, populating the entry name. It reports whether the element was
// self-closing.
func (dp *docParser) parseOpenTag(entry *Entry) bool {
	for {
		switch {
		case dp.TryConsume("/>"):
			if entry.Name == "" {
				dp.failf("entry is missing a name attribute")
			}
			if !dp.eol() && strings.TrimSpace(dp.current[dp.col:]) != "" {
				dp.failf("unexpected content after opening tag")
			}
			return true

		case dp.TryConsume(">"):
			if entry.Name == "" {
				dp.failf("entry is missing a name attribute")
			}
			if !dp.eol() && strings.TrimSpace(dp.current[dp.col:]) != "" {
				dp.failf("unexpected content after opening tag")
			}
			return false

		case dp.eol():
			dp.failf("unterminated opening tag")
			return false

		default:
			attr := dp.Ident()
			dp.skipSpaces()
			dp.MustConsume("=")
			dp.skipSpaces()
			value := dp.QuotedString()
			dp.skipSpaces()

			if dp.err != nil {
				return false
			}

			if attr != "name" {
				dp.failf("unknown attribute %q", attr)
				return false
			}

			if entry.Name != "" {
				dp.failf("duplicate name attribute")
				return false
			}

			if !validName(value) {
				dp.failf("invalid entry name %q", value)
				return false
			}

			entry.Name = value
		}
	}
}

// parseSummary consumes lines up to and including the closing tag of the
// entry, collecting summary blocks along the way.
func (dp *docParser) parseSummary(entry *Entry) {
	var opaque []string

	flushOpaque := func() {
		if len(opaque) > 0 {
			entry.Summary = append(entry.Summary, Block{
				Kind: BlockOpaque,
				Text: strings.Join(opaque, "\n"),
			})
			opaque = nil
		}
	}

	for dp.nextLine() {
		line := dp.trimmed()

		switch {
		case line == "</cvar>":
			flushOpaque()
			return

		case isEntryOpen(line):
			dp.failf("nested entry element")
			return

		case line == "<summary>" || line == "</summary>" || line == "":
			flushOpaque()

		case line == "<para>":
			flushOpaque()
			entry.Summary = append(entry.Summary, Block{
				Kind: BlockPara,
				Text: dp.blockText("</para>", true),
			})

		case strings.HasPrefix(line, "<para>") && strings.HasSuffix(line, "</para>"):
			flushOpaque()
			entry.Summary = append(entry.Summary, Block{
				Kind: BlockPara,
				Text: strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "<para>"), "</para>")),
			})

		case line == "<example_commands>":
			flushOpaque()
			entry.Summary = append(entry.Summary, Block{
				Kind: BlockExampleCmds,
				Text: dp.blockText("</example_commands>", false),
			})

		case line == "<example_output>":
			flushOpaque()
			entry.Summary = append(entry.Summary, Block{
				Kind: BlockExampleOutput,
				Text: dp.blockText("</example_output>", false),
			})

		default:
			opaque = append(opaque, dp.current)
		}

		if dp.err != nil {
			return
		}
	}

	dp.failf("unterminated entry %q", entry.Name)
}

// blockText collects lines until the given closing tag. Prose blocks are
// whitespace-joined; literal blocks keep their lines untouched.
func (dp *docParser) blockText(closing string, prose bool) string {
	var lines []string

	for dp.nextLine() {
		if dp.trimmed() == closing {
			if prose {
				return strings.Join(lines, " ")
			}
			return strings.Join(lines, "\n")
		}

		if prose {
			lines = append(lines, dp.trimmed())
		} else {
			lines = append(lines, dp.current)
		}
	}

	dp.failf("unterminated %s block", strings.Trim(closing, "</>"))
	return ""
}

func validName(name string) bool {
	if len(name) == 0 {
		return false
	}

	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
