// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package list_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vardoc.sh/config"
	"vardoc.sh/internal/cli/vardoc/list"
	"vardoc.sh/iostreams"
)

func writeCorpus(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	data := `<cvar name="CC">
<summary>
<para>
The C compiler. Defaults to the first compiler found on the path.
</para>
</summary>
</cvar>

<cvar name="CCFLAGS">
<summary>
<para>
Options passed to &cv-link-CC;.
</para>
</summary>
</cvar>
`

	if err := os.WriteFile(filepath.Join(dir, "cc.xml"), []byte(data), 0o644); err != nil {
		t.Fatal("WriteFile:", err)
	}

	return dir
}

func TestList(t *testing.T) {
	cfgm, err := config.NewConfigManager()
	if err != nil {
		t.Fatal("NewConfigManager:", err)
	}

	ctx := config.WithConfigManager(context.Background(), cfgm)

	ios, _, out, _ := iostreams.Test()
	ctx = iostreams.WithIOStreams(ctx, ios)

	opts := &list.ListOptions{Output: "table"}
	if err := opts.Run(ctx, []string{writeCorpus(t)}); err != nil {
		t.Fatal("Run:", err)
	}

	output := out.String()
	if !strings.Contains(output, "NAME") {
		t.Errorf("Expected a header row, got %q", output)
	}
	if !strings.Contains(output, "CC") || !strings.Contains(output, "CCFLAGS") {
		t.Errorf("Expected both entries listed, got %q", output)
	}
	if !strings.Contains(output, "The C compiler.") {
		t.Errorf("Expected the first sentence of the summary, got %q", output)
	}
	if strings.Contains(output, "Defaults to") {
		t.Errorf("Expected the summary truncated to one sentence, got %q", output)
	}
}

func TestListJSON(t *testing.T) {
	cfgm, err := config.NewConfigManager()
	if err != nil {
		t.Fatal("NewConfigManager:", err)
	}

	ctx := config.WithConfigManager(context.Background(), cfgm)

	ios, _, out, _ := iostreams.Test()
	ctx = iostreams.WithIOStreams(ctx, ios)

	opts := &list.ListOptions{Output: "json"}
	if err := opts.Run(ctx, []string{writeCorpus(t)}); err != nil {
		t.Fatal("Run:", err)
	}

	output := out.String()
	if !strings.Contains(output, `"name"`) && !strings.Contains(output, "CCFLAGS") {
		t.Errorf("Expected JSON records, got %q", output)
	}
}
