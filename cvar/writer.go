// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

package cvar

import (
	"bytes"
	"strings"
)

// Serialize reproduces the document source. The output is byte-identical
// to the input the document was parsed from.
func (doc *Document) Serialize() []byte {
	buf := new(bytes.Buffer)

	for _, seg := range doc.segments {
		if seg.entry != nil {
			buf.Write(seg.entry.Raw)
		} else {
			buf.Write(seg.raw)
		}
	}

	return buf.Bytes()
}

// Format renders the document in canonical form: trailing whitespace
// stripped, runs of blank lines collapsed to one, and exactly one newline
// at the end of the file. Formatting is idempotent and the result parses
// to the same entries.
func (doc *Document) Format() []byte {
	lines := strings.Split(string(doc.Serialize()), "\n")

	buf := new(bytes.Buffer)
	blank := 0

	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")

		if line == "" {
			blank++
			continue
		}

		if blank > 0 && buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		blank = 0

		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
