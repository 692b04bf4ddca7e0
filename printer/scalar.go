package printer

import (
	"math"
	"strconv"

	"github.com/vegasq/colcat/vector"
)

// voidPrinter renders every row as null. It stands in for columns with
// no type and accepts any batch.
type voidPrinter struct {
	base
}

func (p *voidPrinter) Reset(vector.Batch) error { return nil }

func (p *voidPrinter) PrintRow(int) { p.writeNull() }

type booleanPrinter struct {
	base
	data []int64
}

func (p *booleanPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.LongBatch)
	if !ok {
		return mismatch("boolean", batch)
	}
	p.resetNulls(&b.Header)
	p.data = b.Values
	return nil
}

func (p *booleanPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
	} else if p.data[row] != 0 {
		p.buf.WriteString("true")
	} else {
		p.buf.WriteString("false")
	}
}

// longPrinter covers all integer widths; the batch representation is
// 64-bit regardless of the declared width.
type longPrinter struct {
	base
	data []int64
}

func (p *longPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.LongBatch)
	if !ok {
		return mismatch("long", batch)
	}
	p.resetNulls(&b.Header)
	p.data = b.Values
	return nil
}

func (p *longPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	var scratch [20]byte
	p.buf.Write(strconv.AppendInt(scratch[:0], p.data[row], 10))
}

type doublePrinter struct {
	base
	data    []float64
	isFloat bool
}

func (p *doublePrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.DoubleBatch)
	if !ok {
		return mismatch("double", batch)
	}
	p.resetNulls(&b.Header)
	p.data = b.Values
	return nil
}

func (p *doublePrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	v := p.data[row]
	switch {
	case math.IsNaN(v):
		p.buf.WriteString(`"NaN"`)
	case math.IsInf(v, 0):
		// The sign of the infinity is not distinguished.
		p.buf.WriteString(`"Infinity"`)
	default:
		digits := 14
		if p.isFloat {
			digits = 7
		}
		var scratch [32]byte
		p.buf.Write(strconv.AppendFloat(scratch[:0], v, 'g', digits, 64))
	}
}
