package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/colcat/printer"
	"github.com/vegasq/colcat/reader"
	"github.com/vegasq/colcat/vector"
)

// CSVFormatter outputs a table as CSV with one header row of field
// names. Scalar cells carry their plain value; nested cells carry their
// JSON rendering.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the table as CSV
func (c *CSVFormatter) Format(table *reader.Table) error {
	root, ok := table.Batch.(*vector.StructBatch)
	if !ok {
		return fmt.Errorf("csv output needs a struct root, got %T", table.Batch)
	}

	csvWriter := csv.NewWriter(c.writer)
	if err := csvWriter.Write(table.Schema.FieldNames); err != nil {
		return err
	}

	// One printer per top-level field, all sharing a cell buffer.
	var buf bytes.Buffer
	printers := make([]printer.Printer, len(table.Schema.Children))
	for i, child := range table.Schema.Children {
		p, err := printer.New(&buf, child)
		if err != nil {
			return fmt.Errorf("failed to build printer for %s: %w", table.Schema.FieldNames[i], err)
		}
		if err := p.Reset(root.Fields[i]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", table.Schema.FieldNames[i], err)
		}
		printers[i] = p
	}

	record := make([]string, len(printers))
	for row := 0; row < table.Rows; row++ {
		for i, p := range printers {
			buf.Reset()
			p.PrintRow(row)
			record[i] = cellValue(buf.Bytes())
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// cellValue converts one rendered JSON value to its CSV cell. Nulls
// become empty cells and quoted strings shed their quoting; everything
// else keeps its JSON text.
func cellValue(rendered []byte) string {
	if bytes.Equal(rendered, []byte("null")) {
		return ""
	}
	if len(rendered) > 0 && rendered[0] == '"' {
		var s string
		if err := json.Unmarshal(rendered, &s); err == nil {
			return s
		}
	}
	return string(rendered)
}
