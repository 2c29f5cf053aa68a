// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const defaultTimestampFormat = time.RFC3339

type renderFunc func(...string) string

// ColorScheme assigns a render style to each log level.
type ColorScheme struct {
	InfoLevel  renderFunc
	WarnLevel  renderFunc
	ErrorLevel renderFunc
	FatalLevel renderFunc
	PanicLevel renderFunc
	DebugLevel renderFunc
	TraceLevel renderFunc
	Timestamp  renderFunc
}

var defaultColorScheme = &ColorScheme{
	InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render,
	WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render,
	ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render,
	FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render,
	PanicLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render,
	DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render,
	TraceLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render,
	Timestamp:  lipgloss.NewStyle().Faint(true).Render,
}

var noColorsColorScheme = &ColorScheme{
	InfoLevel:  lipgloss.NewStyle().Render,
	WarnLevel:  lipgloss.NewStyle().Render,
	ErrorLevel: lipgloss.NewStyle().Render,
	FatalLevel: lipgloss.NewStyle().Render,
	PanicLevel: lipgloss.NewStyle().Render,
	DebugLevel: lipgloss.NewStyle().Render,
	TraceLevel: lipgloss.NewStyle().Render,
	Timestamp:  lipgloss.NewStyle().Render,
}

// TextFormatter renders log entries as single lines with a level tag and
// sorted key=value fields.
type TextFormatter struct {
	// Set to true to bypass checking for a TTY before outputting colors.
	ForceColors bool

	// Force disabling colors. For a TTY colors are enabled by default.
	DisableColors bool

	// Disable timestamp logging. Useful when the output is redirected to a
	// logging system that already adds timestamps.
	DisableTimestamp bool

	// Enable logging the full timestamp instead of the elapsed time.
	FullTimestamp bool

	// Timestamp format to use for display when a full timestamp is printed.
	TimestampFormat string

	// The fields are sorted by default for a consistent output.
	DisableSorting bool

	sync.Once
	isTerminal bool
	scheme     *ColorScheme
}

func (f *TextFormatter) init(entry *logrus.Entry) {
	if entry.Logger != nil {
		if out, ok := entry.Logger.Out.(*os.File); ok {
			f.isTerminal = term.IsTerminal(int(out.Fd()))
		}
	}

	switch {
	case f.ForceColors:
		f.scheme = defaultColorScheme
	case f.DisableColors, !f.isTerminal:
		f.scheme = noColorsColorScheme
	default:
		f.scheme = defaultColorScheme
	}
}

func (f *TextFormatter) levelRender(level logrus.Level) renderFunc {
	switch level {
	case logrus.InfoLevel:
		return f.scheme.InfoLevel
	case logrus.WarnLevel:
		return f.scheme.WarnLevel
	case logrus.ErrorLevel:
		return f.scheme.ErrorLevel
	case logrus.FatalLevel:
		return f.scheme.FatalLevel
	case logrus.PanicLevel:
		return f.scheme.PanicLevel
	case logrus.TraceLevel:
		return f.scheme.TraceLevel
	default:
		return f.scheme.DebugLevel
	}
}

var baseTimestamp = time.Now()

// Format implements logrus.Formatter
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	f.Do(func() { f.init(entry) })

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	if !f.DisableSorting {
		sort.Strings(keys)
	}

	b := new(bytes.Buffer)

	levelText := strings.ToUpper(entry.Level.String())[0:4]
	fmt.Fprintf(b, "%s", f.levelRender(entry.Level)(levelText))

	if !f.DisableTimestamp {
		format := f.TimestampFormat
		if format == "" {
			format = defaultTimestampFormat
		}

		if f.FullTimestamp {
			fmt.Fprintf(b, " %s", f.scheme.Timestamp(entry.Time.Format(format)))
		} else {
			fmt.Fprintf(b, " %s", f.scheme.Timestamp(fmt.Sprintf("[%04d]", int(entry.Time.Sub(baseTimestamp)/time.Second))))
		}
	}

	fmt.Fprintf(b, " %s", entry.Message)

	for _, k := range keys {
		f.appendKeyValue(b, k, entry.Data[k])
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

func (f *TextFormatter) appendKeyValue(w io.Writer, key string, value interface{}) {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, " \t") {
			fmt.Fprintf(w, " %s=%q", key, v)
		} else {
			fmt.Fprintf(w, " %s=%s", key, v)
		}
	case error:
		fmt.Fprintf(w, " %s=%q", key, v.Error())
	default:
		fmt.Fprintf(w, " %s=%v", key, v)
	}
}
