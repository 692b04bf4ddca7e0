package printer

import (
	"strconv"

	"github.com/vegasq/colcat/vector"
)

type listPrinter struct {
	base
	offsets []int64
	element Printer
}

func (p *listPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.ListBatch)
	if !ok {
		return mismatch("list", batch)
	}
	p.resetNulls(&b.Header)
	p.offsets = b.Offsets
	return p.element.Reset(b.Elements)
}

func (p *listPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	p.buf.WriteByte('[')
	for i := p.offsets[row]; i < p.offsets[row+1]; i++ {
		if i != p.offsets[row] {
			p.buf.WriteByte(',')
		}
		p.element.PrintRow(int(i))
	}
	p.buf.WriteByte(']')
}

// mapPrinter renders map entries with keys going through the same
// generic printing protocol as values, so a non-string key type
// produces unquoted object keys (for example {1:"x"}). Downstream
// consumers rely on this shape; do not force keys to JSON strings.
type mapPrinter struct {
	base
	offsets []int64
	key     Printer
	value   Printer
}

func (p *mapPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.MapBatch)
	if !ok {
		return mismatch("map", batch)
	}
	p.resetNulls(&b.Header)
	p.offsets = b.Offsets
	if err := p.key.Reset(b.Keys); err != nil {
		return err
	}
	return p.value.Reset(b.Values)
}

func (p *mapPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	p.buf.WriteByte('{')
	for i := p.offsets[row]; i < p.offsets[row+1]; i++ {
		if i != p.offsets[row] {
			p.buf.WriteByte(',')
		}
		p.key.PrintRow(int(i))
		p.buf.WriteByte(':')
		p.value.PrintRow(int(i))
	}
	p.buf.WriteByte('}')
}

type unionPrinter struct {
	base
	tags     []uint8
	offsets  []uint64
	children []Printer
}

func (p *unionPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.UnionBatch)
	if !ok {
		return mismatch("union", batch)
	}
	if len(b.Children) != len(p.children) {
		return mismatch("union", batch)
	}
	p.resetNulls(&b.Header)
	p.tags = b.Tags
	p.offsets = b.Offsets
	for i, child := range p.children {
		if err := child.Reset(b.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *unionPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	tag := p.tags[row]
	p.buf.WriteString(`{"tag":`)
	var scratch [3]byte
	p.buf.Write(strconv.AppendUint(scratch[:0], uint64(tag), 10))
	p.buf.WriteString(`,"value":`)
	p.children[tag].PrintRow(int(p.offsets[row]))
	p.buf.WriteByte('}')
}

type structPrinter struct {
	base
	names  []string
	fields []Printer
}

func (p *structPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.StructBatch)
	if !ok {
		return mismatch("struct", batch)
	}
	if len(b.Fields) != len(p.fields) {
		return mismatch("struct", batch)
	}
	p.resetNulls(&b.Header)
	for i, field := range p.fields {
		if err := field.Reset(b.Fields[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *structPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	p.buf.WriteByte('{')
	for i, field := range p.fields {
		if i != 0 {
			p.buf.WriteByte(',')
		}
		p.buf.WriteByte('"')
		p.buf.WriteString(p.names[i])
		p.buf.WriteString(`":`)
		field.PrintRow(row)
	}
	p.buf.WriteByte('}')
}
