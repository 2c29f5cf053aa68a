// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package tableprinter

import (
	"io"

	"gopkg.in/yaml.v3"
)

func (printer *TablePrinter) renderYAML(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(printer.recordRows())
}
