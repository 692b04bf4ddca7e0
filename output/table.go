package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/colcat/reader"
)

// SchemaFormatter outputs the table's schema as an aligned text table,
// one row per leaf column.
type SchemaFormatter struct {
	writer io.Writer
}

// NewSchemaFormatter creates a new schema formatter
func NewSchemaFormatter(w io.Writer) *SchemaFormatter {
	return &SchemaFormatter{writer: w}
}

// SetOutput sets the output writer
func (s *SchemaFormatter) SetOutput(w io.Writer) {
	s.writer = w
}

// Format renders the schema of the table, ignoring its rows.
func (s *SchemaFormatter) Format(table *reader.Table) error {
	infos := reader.ExtractSchemaInfo(table.Schema)

	tw := tablewriter.NewWriter(s.writer)
	tw.SetHeader([]string{"NAME", "TYPE", "KIND", "REPEATED"})
	for _, info := range infos {
		tw.Append([]string{
			info.Name,
			info.Type,
			info.Kind,
			strconv.FormatBool(info.Repeated),
		})
	}
	tw.Render()
	return nil
}
