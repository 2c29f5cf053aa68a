// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package catalog_test

import (
	"errors"
	"testing"

	"vardoc.sh/catalog"
	"vardoc.sh/cvar"
)

func parseEntries(t *testing.T, data string) []*cvar.Entry {
	t.Helper()

	doc, err := cvar.ParseData([]byte(data), "test.xml")
	if err != nil {
		t.Fatal("ParseData:", err)
	}

	return doc.Entries
}

func TestAddAndGet(t *testing.T) {
	entries := parseEntries(t, `<cvar name="CC">
<summary>
<para>
The C compiler.
</para>
</summary>
</cvar>

<cvar name="CXX">
<summary>
<para>
The C++ compiler.
</para>
</summary>
</cvar>
`)

	c := catalog.New()
	for _, entry := range entries {
		if err := c.Add(entry); err != nil {
			t.Fatal("Add:", err)
		}
	}

	if got := c.Len(); got != 2 {
		t.Fatalf("Expected 2 entries, got %d", got)
	}

	entry, err := c.Get("CXX")
	if err != nil {
		t.Fatal("Get:", err)
	}
	if entry.Name != "CXX" {
		t.Errorf("Expected CXX, got %q", entry.Name)
	}

	if _, err := c.Get("LD"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if !c.Has("CC") || c.Has("LD") {
		t.Error("Has reported wrong membership")
	}

	names := c.Names()
	if len(names) != 2 || names[0] != "CC" || names[1] != "CXX" {
		t.Errorf("Expected names in authoring order, got %q", names)
	}
}

func TestAddDuplicate(t *testing.T) {
	entries := parseEntries(t, `<cvar name="CC">
<summary>
<para>
The C compiler.
</para>
</summary>
</cvar>
`)

	c := catalog.New()
	if err := c.Add(entries[0]); err != nil {
		t.Fatal("Add:", err)
	}

	err := c.Add(entries[0])
	if !errors.Is(err, catalog.ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}
}
