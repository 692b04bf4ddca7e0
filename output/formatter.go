// Package output provides formatters for rendering decoded column data.
//
// Currently supported formats:
//   - JSON Lines: one JSON object per row
//   - CSV: comma-separated values with a header row
//   - Schema table: aligned text listing of the columns
//
// Example usage:
//
//	formatter := output.NewJSONLFormatter(os.Stdout)
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/vegasq/colcat/reader"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a decoded table in the
// target format and SetOutput to change the output destination.
type Formatter interface {
	// Format renders the table in the formatter's specific format
	Format(table *reader.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
