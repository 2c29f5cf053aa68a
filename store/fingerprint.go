// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"vardoc.sh/catalog"
)

// Fingerprint derives a stable content hash for a loaded corpus.  Two loads
// of byte-identical files under the same paths produce the same fingerprint.
func Fingerprint(result *catalog.Result) string {
	h := sha256.New()

	for _, file := range result.Files {
		h.Write([]byte(file))
		h.Write([]byte{0})

		if doc, ok := result.Documents[file]; ok {
			h.Write(doc.Serialize())
		}

		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// FingerprintFiles derives the corpus fingerprint from raw file contents
// without parsing.  Serialization is byte-exact, so this matches the
// fingerprint of a full load of the same files.
func FingerprintFiles(files ...string) (string, error) {
	h := sha256.New()

	for _, file := range files {
		h.Write([]byte(file))
		h.Write([]byte{0})

		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}

		h.Write(data)
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
