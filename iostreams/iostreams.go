// SPDX-License-Identifier: MIT
// Copyright (c) 2019 GitHub Inc.
// Copyright (c) 2023 The Vardoc Authors.
// Licensed under the MIT License (the "License").
// You may not use this file except in compliance with the License.
package iostreams

import (
	"bytes"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IOStreams bundles the three process streams together with terminal
// capability detection so commands never probe os.Stdout directly.
type IOStreams struct {
	In     io.ReadCloser
	Out    io.Writer
	ErrOut io.Writer

	colorEnabled bool

	stdinTTYOverride  bool
	stdinIsTTY        bool
	stdoutTTYOverride bool
	stdoutIsTTY       bool
	stderrTTYOverride bool
	stderrIsTTY       bool
}

// ColorEnabled reports whether output should carry ANSI color.
func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

// SetColorEnabled overrides the detected color capability.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = enabled
}

// ColorScheme returns a color scheme matching the stream capabilities.
func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.ColorEnabled(), Is256ColorSupported())
}

func (s *IOStreams) SetStdinTTY(isTTY bool) {
	s.stdinTTYOverride = true
	s.stdinIsTTY = isTTY
}

func (s *IOStreams) IsStdinTTY() bool {
	if s.stdinTTYOverride {
		return s.stdinIsTTY
	}

	if stdin, ok := s.In.(*os.File); ok {
		return isTerminal(stdin)
	}

	return false
}

func (s *IOStreams) SetStdoutTTY(isTTY bool) {
	s.stdoutTTYOverride = true
	s.stdoutIsTTY = isTTY
}

func (s *IOStreams) IsStdoutTTY() bool {
	if s.stdoutTTYOverride {
		return s.stdoutIsTTY
	}

	if stdout, ok := s.Out.(*os.File); ok {
		return isTerminal(stdout)
	}

	return false
}

func (s *IOStreams) SetStderrTTY(isTTY bool) {
	s.stderrTTYOverride = true
	s.stderrIsTTY = isTTY
}

func (s *IOStreams) IsStderrTTY() bool {
	if s.stderrTTYOverride {
		return s.stderrIsTTY
	}

	if stderr, ok := s.ErrOut.(*os.File); ok {
		return isTerminal(stderr)
	}

	return false
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const defaultWidth = 80

// TerminalWidth returns the rendered width of the output stream, falling
// back to a conservative default when it is not a terminal.
func (s *IOStreams) TerminalWidth() int {
	if stdout, ok := s.Out.(*os.File); ok {
		w, _, err := term.GetSize(int(stdout.Fd()))
		if err == nil && w > 0 {
			return w
		}
	}

	return defaultWidth
}

// System returns streams bound to the process stdio.
func System() *IOStreams {
	stdoutIsTTY := isTerminal(os.Stdout)
	stderrIsTTY := isTerminal(os.Stderr)

	streams := &IOStreams{
		In:           os.Stdin,
		colorEnabled: EnvColorForced() || (!EnvColorDisabled() && stdoutIsTTY),
	}

	if stdoutIsTTY {
		streams.Out = colorable.NewColorable(os.Stdout)
	} else {
		streams.Out = os.Stdout
	}

	if stderrIsTTY {
		streams.ErrOut = colorable.NewColorable(os.Stderr)
	} else {
		streams.ErrOut = os.Stderr
	}

	streams.SetStdoutTTY(stdoutIsTTY)
	streams.SetStderrTTY(stderrIsTTY)

	return streams
}

// Test returns streams backed by buffers, for use in command tests.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &IOStreams{
		In:     io.NopCloser(in),
		Out:    out,
		ErrOut: errOut,
	}, in, out, errOut
}
