// SPDX-License-Identifier: MIT
// Copyright (c) 2019 GitHub Inc.
// Copyright (c) 2023 The Vardoc Authors.
// Licensed under the MIT License (the "License").
// You may not use this file except in compliance with the License.
package iostreams

import (
	"fmt"
	"os"
	"strings"

	"github.com/mgutz/ansi"
)

var (
	Magenta = ansi.ColorFunc("magenta")
	Cyan    = ansi.ColorFunc("cyan")
	Red     = ansi.ColorFunc("red")
	Yellow  = ansi.ColorFunc("yellow")
	Blue    = ansi.ColorFunc("blue")
	Green   = ansi.ColorFunc("green")
	Gray    = ansi.ColorFunc("black+h")
	Bold    = ansi.ColorFunc("default+b")

	Gray256 = func(t string) string {
		return fmt.Sprintf("\x1b[%d;5;%dm%s\x1b[m", 38, 242, t)
	}
)

func EnvColorDisabled() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("CLICOLOR") == "0"
}

func EnvColorForced() bool {
	return os.Getenv("CLICOLOR_FORCE") != "" && os.Getenv("CLICOLOR_FORCE") != "0"
}

func Is256ColorSupported() bool {
	return strings.Contains(os.Getenv("TERM"), "256") ||
		strings.Contains(os.Getenv("COLORTERM"), "256") ||
		strings.Contains(os.Getenv("COLORTERM"), "truecolor")
}

func NewColorScheme(enabled, is256enabled bool) *ColorScheme {
	return &ColorScheme{
		enabled:      enabled,
		is256enabled: is256enabled,
	}
}

type ColorScheme struct {
	enabled      bool
	is256enabled bool
}

func (c *ColorScheme) Bold(t string) string {
	if !c.enabled {
		return t
	}

	return Bold(t)
}

func (c *ColorScheme) Red(t string) string {
	if !c.enabled {
		return t
	}

	return Red(t)
}

func (c *ColorScheme) Yellow(t string) string {
	if !c.enabled {
		return t
	}

	return Yellow(t)
}

func (c *ColorScheme) Green(t string) string {
	if !c.enabled {
		return t
	}

	return Green(t)
}

func (c *ColorScheme) Cyan(t string) string {
	if !c.enabled {
		return t
	}

	return Cyan(t)
}

func (c *ColorScheme) Blue(t string) string {
	if !c.enabled {
		return t
	}

	return Blue(t)
}

func (c *ColorScheme) Magenta(t string) string {
	if !c.enabled {
		return t
	}

	return Magenta(t)
}

func (c *ColorScheme) Gray(t string) string {
	if !c.enabled {
		return t
	}

	if c.is256enabled {
		return Gray256(t)
	}

	return Gray(t)
}

func (c *ColorScheme) SuccessIcon() string {
	return c.Green("✓")
}

func (c *ColorScheme) WarningIcon() string {
	return c.Yellow("!")
}

func (c *ColorScheme) FailureIcon() string {
	return c.Red("✗")
}
