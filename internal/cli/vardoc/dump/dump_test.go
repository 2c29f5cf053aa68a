// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package dump_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vardoc.sh/config"
	"vardoc.sh/internal/cli/vardoc/dump"
	"vardoc.sh/iostreams"
)

func TestDump(t *testing.T) {
	cfgm, err := config.NewConfigManager()
	if err != nil {
		t.Fatal("NewConfigManager:", err)
	}

	ctx := config.WithConfigManager(context.Background(), cfgm)

	ios, _, out, _ := iostreams.Test()
	ctx = iostreams.WithIOStreams(ctx, ios)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cc.xml"), []byte(`<cvar name="CC">
<summary>
<para>
The C compiler.
</para>
</summary>
</cvar>
`), 0o644); err != nil {
		t.Fatal("WriteFile:", err)
	}

	opts := &dump.DumpOptions{}
	if err := opts.Run(ctx, []string{dir}); err != nil {
		t.Fatal("Run:", err)
	}

	output := out.String()
	if !strings.Contains(output, "cvar.Entry") {
		t.Errorf("Expected the entry model dumped, got %q", output)
	}
	if !strings.Contains(output, `"CC"`) {
		t.Errorf("Expected the entry name, got %q", output)
	}
}
