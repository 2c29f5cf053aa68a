package tableprinter

import "fmt"

// TablePrinterOption is a type of func(*TablePrinter).
type TablePrinterOption func(*TablePrinter) error

// WithOutputFormat sets the rendering format of the table.
func WithOutputFormat(format TableOutputFormat) TablePrinterOption {
	return func(opts *TablePrinter) error {
		opts.format = format
		return nil
	}
}

// WithOutputFormatFromString sets the rendering format of the table from a
// string representation.
func WithOutputFormatFromString(format string) TablePrinterOption {
	return func(opts *TablePrinter) error {
		if format == "" {
			return fmt.Errorf("unsupported table printer format: %s", format)
		}
		opts.format = TableOutputFormat(format)
		return nil
	}
}

// WithTableDelimeter sets the delimeter printed between columns.
func WithTableDelimeter(delim string) TablePrinterOption {
	return func(opts *TablePrinter) error {
		opts.delimeter = delim
		return nil
	}
}

// WithMaxWidth sets the maximum rendered width of the table.
func WithMaxWidth(maxWidth int) TablePrinterOption {
	return func(opts *TablePrinter) error {
		opts.maxWidth = maxWidth
		return nil
	}
}
