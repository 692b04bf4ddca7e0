package output

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/vegasq/colcat/printer"
	"github.com/vegasq/colcat/reader"
)

// JSONLFormatter outputs a table as JSON Lines, one object per row.
type JSONLFormatter struct {
	writer io.Writer
}

// NewJSONLFormatter creates a new JSON Lines formatter
func NewJSONLFormatter(w io.Writer) *JSONLFormatter {
	return &JSONLFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONLFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format renders every row of the table as one JSON line.
func (j *JSONLFormatter) Format(table *reader.Table) error {
	var buf bytes.Buffer
	p, err := printer.New(&buf, table.Schema)
	if err != nil {
		return fmt.Errorf("failed to build printer: %w", err)
	}
	if err := p.Reset(table.Batch); err != nil {
		return fmt.Errorf("failed to bind batch: %w", err)
	}

	out := bufio.NewWriter(j.writer)
	for row := 0; row < table.Rows; row++ {
		buf.Reset()
		p.PrintRow(row)
		if _, err := out.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return out.Flush()
}
