// Package printer renders decoded columnar batches as JSON text, one row
// at a time.
//
// A Printer is the serializer for one schema node. New builds a tree of
// printers that mirrors a schema.Type tree; the tree is built once and
// reused for every batch of the column. All printers in one tree append
// to the same shared bytes.Buffer.
//
// The call protocol is: build the tree once, then for every incoming
// batch call Reset on the root, then PrintRow for each row index in
// [0, batch.Len()). Reset rebinds the printers to the batch's arrays
// without copying, so a printer tree must not be used concurrently and
// the bound batch must stay alive until the next Reset. Independent
// printer trees are fully isolated and may run on separate goroutines.
//
//	var buf bytes.Buffer
//	root, err := printer.New(&buf, typ)
//	if err != nil {
//	    return err
//	}
//	for _, batch := range batches {
//	    if err := root.Reset(batch); err != nil {
//	        return err
//	    }
//	    for row := 0; row < batch.Len(); row++ {
//	        root.PrintRow(row)
//	        out.Write(buf.Bytes())
//	        out.Write([]byte{'\n'})
//	        buf.Reset()
//	    }
//	}
//
// PrintRow appends exactly one JSON value and nothing else; framing
// between rows (newlines, array brackets) is the caller's business.
package printer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vegasq/colcat/schema"
	"github.com/vegasq/colcat/vector"
)

// ErrUnsupportedType is returned by New for a schema kind it cannot
// serialize. This is a configuration error, never a data error.
var ErrUnsupportedType = errors.New("unsupported type")

// ErrTypeMismatch is returned by Reset when the batch's concrete type
// does not match the printer's kind. This is a caller contract
// violation, not row-level data.
var ErrTypeMismatch = errors.New("batch type mismatch")

// Printer renders one column, one row at a time.
type Printer interface {
	// Reset rebinds the printer (and its children) to a new batch.
	// References into the previous batch are dropped.
	Reset(batch vector.Batch) error

	// PrintRow appends row's value as JSON to the shared buffer. Rows
	// marked null render as the literal "null". The row index must be
	// within the bound batch; out-of-range indices are the caller's
	// bug.
	PrintRow(row int)
}

// New builds a printer tree for the given type, writing into buf. A nil
// type produces a printer that renders every row as null. Decimal types
// with precision 0 or above 18 digits get the 128-bit variant.
func New(buf *bytes.Buffer, t *schema.Type) (Printer, error) {
	if t == nil {
		return &voidPrinter{base: base{buf: buf}}, nil
	}
	switch t.Kind {
	case schema.Boolean:
		return &booleanPrinter{base: base{buf: buf}}, nil
	case schema.Byte, schema.Short, schema.Int, schema.Long:
		return &longPrinter{base: base{buf: buf}}, nil
	case schema.Float, schema.Double:
		return &doublePrinter{base: base{buf: buf}, isFloat: t.Kind == schema.Float}, nil
	case schema.String, schema.Varchar, schema.Char:
		return &stringPrinter{base: base{buf: buf}}, nil
	case schema.Binary:
		return &binaryPrinter{base: base{buf: buf}}, nil
	case schema.Timestamp:
		return &timestampPrinter{base: base{buf: buf}}, nil
	case schema.Date:
		return &datePrinter{base: base{buf: buf}}, nil
	case schema.Decimal:
		if t.Precision == 0 || t.Precision > 18 {
			return &decimal128Printer{base: base{buf: buf}}, nil
		}
		return &decimal64Printer{base: base{buf: buf}}, nil
	case schema.List:
		element, err := New(buf, t.Children[0])
		if err != nil {
			return nil, err
		}
		return &listPrinter{base: base{buf: buf}, element: element}, nil
	case schema.Map:
		key, err := New(buf, t.Children[0])
		if err != nil {
			return nil, err
		}
		value, err := New(buf, t.Children[1])
		if err != nil {
			return nil, err
		}
		return &mapPrinter{base: base{buf: buf}, key: key, value: value}, nil
	case schema.Struct:
		p := &structPrinter{base: base{buf: buf}, names: t.FieldNames}
		for _, child := range t.Children {
			field, err := New(buf, child)
			if err != nil {
				return nil, err
			}
			p.fields = append(p.fields, field)
		}
		return p, nil
	case schema.Union:
		p := &unionPrinter{base: base{buf: buf}}
		for _, child := range t.Children {
			alt, err := New(buf, child)
			if err != nil {
				return nil, err
			}
			p.children = append(p.children, alt)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t.Kind)
	}
}

// base holds the buffer reference and null-indicator state shared by all
// printers. The null slice is rebound on every Reset.
type base struct {
	buf      *bytes.Buffer
	hasNulls bool
	notNull  []bool
}

func (b *base) resetNulls(h *vector.Header) {
	b.hasNulls = h.HasNulls
	if b.hasNulls {
		b.notNull = h.NotNull
	} else {
		b.notNull = nil
	}
}

// isNull reports whether the row is marked not-present at this node.
func (b *base) isNull(row int) bool {
	return b.hasNulls && !b.notNull[row]
}

func (b *base) writeNull() {
	b.buf.WriteString("null")
}

func mismatch(p string, batch vector.Batch) error {
	return fmt.Errorf("%s printer: %w: got %T", p, ErrTypeMismatch, batch)
}
