// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Acorn Labs, Inc; All rights reserved.
// Copyright 2023 The Vardoc Authors; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
package cmdfactory

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
)

type testOptions struct {
	Output  string   `long:"output" short:"o" usage:"output format" default:"table"`
	Long    bool     `long:"long" short:"l" usage:"do not truncate"`
	Depth   int      `long:"depth" usage:"recursion depth" default:"3"`
	Tags    []string `long:"tag" usage:"filter by tag"`
	Token   string   `long:"token" usage:"api token" env:"VARDOC_TEST_TOKEN"`
	Secret  string   `long:"secret" usage:"hidden knob" hidden:"true"`
	Skipped string   `noattribute:"true"`
}

func (opts *testOptions) Run(_ context.Context, _ []string) error {
	return nil
}

func TestAttributeFlags(t *testing.T) {
	t.Setenv("VARDOC_TEST_TOKEN", "from-env")

	opts := &testOptions{}
	cmd, err := New(opts, cobra.Command{Use: "test"})
	if err != nil {
		t.Fatal("New:", err)
	}

	flags := cmd.PersistentFlags()

	if f := flags.Lookup("output"); f == nil {
		t.Fatal("Expected an --output flag")
	} else if f.Shorthand != "o" {
		t.Errorf("Expected shorthand o, got %q", f.Shorthand)
	}

	if f := flags.Lookup("depth"); f == nil {
		t.Fatal("Expected a --depth flag")
	} else if f.DefValue != "3" {
		t.Errorf("Expected default 3, got %q", f.DefValue)
	}

	if f := flags.Lookup("secret"); f == nil {
		t.Fatal("Expected a --secret flag")
	} else if !f.Hidden {
		t.Error("Expected --secret to be hidden")
	}

	if f := flags.Lookup("skipped"); f != nil {
		t.Error("Expected noattribute field to be skipped")
	}

	if opts.Output != "table" {
		t.Errorf("Expected default output table, got %q", opts.Output)
	}
	if opts.Token != "from-env" {
		t.Errorf("Expected token from the environment, got %q", opts.Token)
	}
}

func TestAttributeFlagsParse(t *testing.T) {
	opts := &testOptions{}
	cmd, err := New(opts, cobra.Command{Use: "test"})
	if err != nil {
		t.Fatal("New:", err)
	}

	cmd.SetArgs([]string{"--output", "json", "-l", "--tag", "a", "--tag", "b"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal("ExecuteContext:", err)
	}

	if opts.Output != "json" {
		t.Errorf("Expected output json, got %q", opts.Output)
	}
	if !opts.Long {
		t.Error("Expected long to be set")
	}
	if len(opts.Tags) != 2 || opts.Tags[0] != "a" || opts.Tags[1] != "b" {
		t.Errorf("Unexpected tags %v", opts.Tags)
	}
}

func TestFlagName(t *testing.T) {
	testCases := []struct {
		field  string
		long   string
		short  string
		expect string
	}{
		{field: "Output", expect: "output"},
		{field: "NoIndex", expect: "no-index"},
		{field: "Output", long: "format", expect: "format"},
	}

	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			got, _ := name(tc.field, tc.long, tc.short)
			if got != tc.expect {
				t.Errorf("Expected %q, got %q", tc.expect, got)
			}
		})
	}
}

type showCommand struct{}

func (*showCommand) Run(_ context.Context, _ []string) error { return nil }

func TestCommandName(t *testing.T) {
	if got := Name(&showCommand{}); got != "show" {
		t.Errorf("Expected show, got %q", got)
	}
}

func TestFlagError(t *testing.T) {
	err := FlagErrorf("unknown flag %q", "--bogus")

	var fe *FlagError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected a FlagError, got %T", err)
	}
	if fe.Error() != `unknown flag "--bogus"` {
		t.Errorf("Unexpected message %q", fe.Error())
	}
}

func TestMutuallyExclusive(t *testing.T) {
	if err := MutuallyExclusive("specify only one of --raw or --no-index", true, false); err != nil {
		t.Errorf("Expected no error for a single condition, got %v", err)
	}

	if err := MutuallyExclusive("specify only one of --raw or --no-index", true, true); err == nil {
		t.Error("Expected an error for two conditions")
	}
}
