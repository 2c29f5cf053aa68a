// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.
package tableprinter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func (printer *TablePrinter) renderJSON(w io.Writer) error {
	rows := printer.recordRows()

	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprint(w, string(b)); err != nil {
		return err
	}

	return nil
}

// recordRows converts all rows after the header into maps keyed by the
// lower-cased header names.
func (printer *TablePrinter) recordRows() []map[string]string {
	header := printer.rows[0]
	var rows []map[string]string

	for i, row := range printer.rows {
		if i == 0 {
			continue
		}
		m := make(map[string]string)

		for j, column := range row {
			m[strings.ReplaceAll(strings.ToLower(header[j].text), " ", "_")] = column.text
		}

		if len(m) > 0 {
			rows = append(rows, m)
		}
	}

	return rows
}
