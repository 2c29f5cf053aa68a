// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

// Package schema validates corpus manifests against the manifest
// specification in JSON schema.
package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	// Enable support for embedded static resources
	_ "embed"

	"github.com/Masterminds/semver/v3"
	"github.com/xeipuuv/gojsonschema"

	"vardoc.sh/log"
)

// SchemaVersionLatest is the most recent manifest specification version.
const SchemaVersionLatest = "0.1"

//go:embed v0.1.json
var schemaV01 string

// Validate checks a decoded manifest against the embedded JSON schema.
func Validate(ctx context.Context, manifest map[string]interface{}) error {
	spec, ok := manifest["spec"].(string)
	if !ok {
		return fmt.Errorf("missing 'spec' version attribute")
	}

	specVer, err := semver.NewVersion(spec)
	if err != nil {
		return fmt.Errorf("could not parse manifest spec version: %w", err)
	}

	if specVer.LessThan(semver.MustParse(SchemaVersionLatest)) {
		log.G(ctx).Warnf("manifest spec version (v%s) is not latest (v%s)", spec, SchemaVersionLatest)
	} else if specVer.GreaterThan(semver.MustParse(SchemaVersionLatest)) {
		return fmt.Errorf("unsupported manifest spec version v%s (latest is v%s)", spec, SchemaVersionLatest)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaV01),
		gojsonschema.NewGoLoader(manifest),
	)
	if err != nil {
		return err
	}

	if !result.Valid() {
		return toError(result)
	}

	return nil
}

// toError flattens schema violations into one readable, path-qualified
// error message.
func toError(result *gojsonschema.Result) error {
	var msgs []string
	for _, err := range result.Errors() {
		field := err.Field()
		if field == "(root)" {
			msgs = append(msgs, err.Description())
			continue
		}

		msgs = append(msgs, fmt.Sprintf("%s %s", field, err.Description()))
	}

	sort.Strings(msgs)

	return fmt.Errorf("invalid manifest: %s", strings.Join(msgs, "; "))
}
