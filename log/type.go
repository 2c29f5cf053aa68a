// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package log

import "strings"

// LoggerType controls how log statements are output
type LoggerType uint

// Logger types
const (
	QUIET LoggerType = iota
	BASIC
	JSON
)

func LoggerTypeFromString(name string) LoggerType {
	switch strings.ToLower(name) {
	case "quiet":
		return QUIET
	case "basic":
		return BASIC
	case "json":
		return JSON
	default:
		return BASIC
	}
}

func LoggerTypeToString(t LoggerType) string {
	switch t {
	case QUIET:
		return "quiet"
	case JSON:
		return "json"
	default:
		return "basic"
	}
}
