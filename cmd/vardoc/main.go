// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package main

import (
	"os"

	"vardoc.sh/internal/cli/vardoc"
)

func main() {
	os.Exit(vardoc.Main(os.Args[1:]))
}
