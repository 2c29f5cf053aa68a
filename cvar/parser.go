// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

package cvar

import (
	"bytes"
	"fmt"
	"strings"
)

// parser is a helper for line-oriented scanning of corpus markup. It keeps
// byte offsets alongside line positions so entry spans can be cut out of
// the original input verbatim.
type parser struct {
	data    []byte
	file    string
	current string
	offset  int // byte offset of the current line
	next    int // byte offset of the line after current
	line    int
	col     int
	err     error
}

func newParser(data []byte, file string) *parser {
	return &parser{
		data: data,
		file: file,
	}
}

// nextLine advances the parser to the next line. The line terminator is
// not part of current but is covered by the [offset, next) span.
func (p *parser) nextLine() bool {
	if p.err != nil || p.next >= len(p.data) {
		return false
	}

	p.offset = p.next
	p.col = 0
	p.line++

	nl := bytes.IndexByte(p.data[p.offset:], '\n')
	if nl == -1 {
		p.current = string(p.data[p.offset:])
		p.next = len(p.data)
	} else {
		p.current = string(p.data[p.offset : p.offset+nl])
		p.next = p.offset + nl + 1
	}

	// Tolerate CRLF input; the raw spans still carry the original bytes.
	p.current = strings.TrimSuffix(p.current, "\r")

	return true
}

func (p *parser) failf(msg string, args ...interface{}) {
	if p.err == nil {
		p.err = fmt.Errorf("%v:%v:%v: %v\n%v", p.file, p.line, p.col+1, fmt.Sprintf(msg, args...), p.current)
	}
}

func (p *parser) eol() bool {
	return p.col >= len(p.current)
}

func (p *parser) skipSpaces() {
	for !p.eol() && (p.current[p.col] == ' ' || p.current[p.col] == '\t') {
		p.col++
	}
}

func (p *parser) peek() byte {
	if p.err != nil || p.eol() {
		return 0
	}

	return p.current[p.col]
}

func (p *parser) char() byte {
	if p.err != nil {
		return 0
	}

	if p.eol() {
		p.failf("unexpected end of line")
		return 0
	}

	v := p.current[p.col]
	p.col++
	return v
}

// TryConsume consumes the given token when it prefixes the rest of the
// current line.
func (p *parser) TryConsume(what string) bool {
	if !strings.HasPrefix(p.current[p.col:], what) {
		return false
	}

	p.col += len(what)
	return true
}

func (p *parser) MustConsume(what string) {
	if !p.TryConsume(what) {
		p.failf("expected %q", what)
	}
}

// Ident consumes a variable identifier.
func (p *parser) Ident() string {
	var str []byte
	for !p.eol() {
		ch := p.peek()
		if ch >= 'a' && ch <= 'z' ||
			ch >= 'A' && ch <= 'Z' ||
			ch >= '0' && ch <= '9' ||
			ch == '_' {
			str = append(str, ch)
			p.col++
			continue
		}
		break
	}

	if len(str) == 0 {
		p.failf("expected an identifier")
	}

	return string(str)
}

// QuotedString consumes a double-quoted attribute value.
func (p *parser) QuotedString() string {
	var str []byte

	if quote := p.char(); quote != '"' {
		p.failf("expected quoted string")
		return ""
	}

	for ch := p.char(); ch != '"'; ch = p.char() {
		if ch == 0 {
			p.failf("unterminated quoted string")
			break
		}

		str = append(str, ch)
	}

	return string(str)
}

// trimmed returns the current line with surrounding whitespace removed.
func (p *parser) trimmed() string {
	return strings.TrimSpace(p.current)
}
