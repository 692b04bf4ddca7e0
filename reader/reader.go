package reader

import (
	"fmt"
	"io"
	"os"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/colcat/schema"
	"github.com/vegasq/colcat/vector"
)

// Table is one fully decoded fixture: a schema tree and a matching
// batch tree covering Rows rows.
type Table struct {
	Schema *schema.Type
	Rows   int
	Batch  vector.Batch
}

// document is the raw fixture shape before type-directed decoding.
type document struct {
	Schema  string          `json:"schema"`
	Columns [][]interface{} `json:"columns"`
}

// Reader reads fixture files.
//
// It holds the underlying OS file so resources can be released with
// Close once the table has been read.
type Reader struct {
	file *os.File
}

// NewReader opens the fixture at path.
//
// Example:
//
//	r, err := reader.NewReader("data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{file: file}, nil
}

// Read decodes the whole fixture into memory.
func (r *Reader) Read() (*Table, error) {
	return ReadFrom(r.file)
}

// Close releases the underlying file. It is safe to call Close more
// than once.
func (r *Reader) Close() error {
	if r.file != nil {
		file := r.file
		r.file = nil
		return file.Close()
	}
	return nil
}

// ReadFile reads the fixture at path in one call.
func ReadFile(path string) (*Table, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	table, readErr := r.Read()
	closeErr := r.Close()
	if readErr != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, readErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	return table, nil
}

// ReadFrom decodes one fixture document from r.
//
// The fixture's root type must be a struct, and every column array must
// have the same length; that length becomes the table's row count.
func ReadFrom(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	if doc.Schema == "" {
		return nil, fmt.Errorf("fixture has no schema")
	}

	typ, err := schema.Parse(doc.Schema)
	if err != nil {
		return nil, err
	}
	if typ.Kind != schema.Struct {
		return nil, fmt.Errorf("fixture root type must be a struct, got %s", typ.Kind)
	}
	if len(doc.Columns) != len(typ.Children) {
		return nil, fmt.Errorf("fixture has %d columns, schema has %d fields",
			len(doc.Columns), len(typ.Children))
	}

	rows := 0
	if len(doc.Columns) > 0 {
		rows = len(doc.Columns[0])
	}

	fields := make([]vector.Batch, len(doc.Columns))
	for i, col := range doc.Columns {
		if len(col) != rows {
			return nil, fmt.Errorf("column %s has %d rows, expected %d",
				typ.FieldNames[i], len(col), rows)
		}
		batch, err := buildBatch(typ.Children[i], typ.FieldNames[i], col)
		if err != nil {
			return nil, err
		}
		fields[i] = batch
	}

	return &Table{
		Schema: typ,
		Rows:   rows,
		Batch: &vector.StructBatch{
			Header: vector.Header{Rows: rows},
			Fields: fields,
		},
	}, nil
}
