// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package iostreams

import (
	"context"
)

var (
	// G is an alias for FromContext.
	G = FromContext

	// IO is the system IO stream.
	IO = System()
)

// contextKey is used to retrieve the iostreams from the context.
type contextKey struct{}

// WithIOStreams returns a new context with the provided iostreams.
func WithIOStreams(ctx context.Context, iostreams *IOStreams) context.Context {
	return context.WithValue(ctx, contextKey{}, iostreams)
}

// FromContext returns the iostreams set on the context, or the system
// streams when none was set.
func FromContext(ctx context.Context) *IOStreams {
	if ctx == nil {
		return IO
	}

	l := ctx.Value(contextKey{})
	if l == nil {
		return IO
	}

	return l.(*IOStreams)
}
