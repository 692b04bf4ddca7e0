// Package vector holds decoded columnar batches.
//
// A Batch is one decoded slice of a single column: parallel arrays
// addressed by row index, plus a null indicator. Batches form a tree
// whose shape mirrors the schema.Type tree of the column. Each concrete
// batch type is a plain struct so producers can fill the arrays directly;
// consumers bind to a batch with a checked type assertion rather than an
// unchecked cast.
//
// Batches are owned by whoever decoded them. Consumers keep references
// into the arrays only until the next batch is bound; they never copy.
package vector

import (
	"github.com/apache/arrow-go/v18/arrow/decimal128"

	"github.com/vegasq/colcat/schema"
)

// Header carries the state shared by every batch: the row count and the
// null indicator. When HasNulls is false, NotNull is ignored and every
// row is treated as present.
type Header struct {
	Rows     int
	HasNulls bool
	NotNull  []bool
}

// Len returns the number of rows in the batch.
func (h *Header) Len() int { return h.Rows }

// Batch is one decoded column slice. The concrete type determines which
// arrays are available; Kind reports the representative schema kind of
// the representation for error messages.
type Batch interface {
	Kind() schema.Kind
	Len() int
}

// LongBatch holds boolean, integer and date columns as 64-bit values.
type LongBatch struct {
	Header
	Values []int64
}

func (*LongBatch) Kind() schema.Kind { return schema.Long }

// DoubleBatch holds float and double columns.
type DoubleBatch struct {
	Header
	Values []float64
}

func (*DoubleBatch) Kind() schema.Kind { return schema.Double }

// BytesBatch holds string, char, varchar and binary columns as one byte
// slice per row.
type BytesBatch struct {
	Header
	Values [][]byte
}

func (*BytesBatch) Kind() schema.Kind { return schema.String }

// Decimal64Batch holds decimal columns whose unscaled values fit in 64
// bits. Scale applies to every value in the batch.
type Decimal64Batch struct {
	Header
	Values []int64
	Scale  int
}

func (*Decimal64Batch) Kind() schema.Kind { return schema.Decimal }

// Decimal128Batch holds decimal columns with 128-bit unscaled values.
type Decimal128Batch struct {
	Header
	Values []decimal128.Num
	Scale  int
}

func (*Decimal128Batch) Kind() schema.Kind { return schema.Decimal }

// TimestampBatch holds timestamps split into UTC epoch seconds and
// nanoseconds of second.
type TimestampBatch struct {
	Header
	Seconds []int64
	Nanos   []int64
}

func (*TimestampBatch) Kind() schema.Kind { return schema.Timestamp }

// ListBatch holds list columns. Row r spans the half-open element range
// [Offsets[r], Offsets[r+1]) of the Elements batch, so Offsets has one
// more entry than there are rows.
type ListBatch struct {
	Header
	Offsets  []int64
	Elements Batch
}

func (*ListBatch) Kind() schema.Kind { return schema.List }

// MapBatch holds map columns. Row r spans [Offsets[r], Offsets[r+1]) of
// both the Keys and Values batches.
type MapBatch struct {
	Header
	Offsets []int64
	Keys    Batch
	Values  Batch
}

func (*MapBatch) Kind() schema.Kind { return schema.Map }

// UnionBatch holds union columns. Tags selects the active child per row
// and Offsets gives the row index within that child's batch.
type UnionBatch struct {
	Header
	Tags     []uint8
	Offsets  []uint64
	Children []Batch
}

func (*UnionBatch) Kind() schema.Kind { return schema.Union }

// StructBatch holds struct columns, one child batch per field in schema
// order. Field batches share the struct's row indices.
type StructBatch struct {
	Header
	Fields []Batch
}

func (*StructBatch) Kind() schema.Kind { return schema.Struct }
