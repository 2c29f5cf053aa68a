// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

// Package catalog holds a corpus of variable reference entries keyed by
// unique name and provides loading and linting on top of the cvar parser.
package catalog

import (
	"errors"
	"fmt"

	"vardoc.sh/cvar"
)

var (
	// ErrNotFound is returned when a requested entry does not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrDuplicateName is returned when an entry name is already taken.
	ErrDuplicateName = errors.New("duplicate entry name")
)

// Catalog is an ordered collection of entries. Entries keep their
// authoring order (load order of files, document order within a file) and
// names are unique. A catalog is written during load and read-only
// afterwards.
type Catalog struct {
	// Entries in authoring order.
	Entries []*cvar.Entry

	byName map[string]*cvar.Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		byName: make(map[string]*cvar.Entry),
	}
}

// Add inserts an entry, rejecting names that are already present.
func (c *Catalog) Add(entry *cvar.Entry) error {
	if prev, ok := c.byName[entry.Name]; ok {
		return fmt.Errorf("%w %q: defined at %s:%d and %s:%d",
			ErrDuplicateName, entry.Name,
			prev.File, prev.Line,
			entry.File, entry.Line,
		)
	}

	c.byName[entry.Name] = entry
	c.Entries = append(c.Entries, entry)

	return nil
}

// Get retrieves an entry by exact name.
func (c *Catalog) Get(name string) (*cvar.Entry, error) {
	entry, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return entry, nil
}

// Has reports whether an entry with the given name exists.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// All returns the entries in authoring order.
func (c *Catalog) All() []*cvar.Entry {
	return c.Entries
}

// Names returns all entry names in authoring order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Entries))
	for _, entry := range c.Entries {
		names = append(names, entry.Name)
	}

	return names
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.Entries)
}
