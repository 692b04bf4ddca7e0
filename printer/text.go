package printer

import (
	"bytes"
	"strconv"

	"github.com/vegasq/colcat/vector"
)

const hexDigits = "0123456789abcdef"

// writeEscapedByte appends one byte treated as a standalone character,
// applying the JSON escape rules: the six dedicated escapes plus \",
// \u00XX for the remaining control characters, everything else verbatim.
func writeEscapedByte(buf *bytes.Buffer, b byte) {
	switch b {
	case '\\':
		buf.WriteString(`\\`)
	case '\b':
		buf.WriteString(`\b`)
	case '\f':
		buf.WriteString(`\f`)
	case '\n':
		buf.WriteString(`\n`)
	case '\r':
		buf.WriteString(`\r`)
	case '\t':
		buf.WriteString(`\t`)
	case '"':
		buf.WriteString(`\"`)
	default:
		if b < 0x20 || b == 0x7f {
			buf.WriteString(`\u00`)
			buf.WriteByte(hexDigits[b>>4])
			buf.WriteByte(hexDigits[b&0xf])
		} else {
			buf.WriteByte(b)
		}
	}
}

// writeQuoted appends s as a double-quoted JSON string. Well-formed
// UTF-8 keeps its multi-byte sequences verbatim, with single-byte
// characters going through the escape rules; anything that fails the
// classifier is escaped byte by byte instead.
func writeQuoted(buf *bytes.Buffer, s []byte) {
	buf.WriteByte('"')
	if !IsUTF8(s) {
		for _, b := range s {
			writeEscapedByte(buf, b)
		}
	} else {
		for i := 0; i < len(s); i++ {
			b := s[i]
			switch {
			case b&0xe0 == 0xc0: // 2-byte sequence
				buf.Write(s[i : i+2])
				i++
			case b&0xf0 == 0xe0: // 3-byte sequence
				buf.Write(s[i : i+3])
				i += 2
			case b&0xf8 == 0xf0: // 4-byte sequence
				buf.Write(s[i : i+4])
				i += 3
			default:
				writeEscapedByte(buf, b)
			}
		}
	}
	buf.WriteByte('"')
}

type stringPrinter struct {
	base
	data [][]byte
}

func (p *stringPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.BytesBatch)
	if !ok {
		return mismatch("string", batch)
	}
	p.resetNulls(&b.Header)
	p.data = b.Values
	return nil
}

func (p *stringPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	writeQuoted(p.buf, p.data[row])
}

// binaryPrinter renders binary columns as a JSON array of unsigned byte
// values.
type binaryPrinter struct {
	base
	data [][]byte
}

func (p *binaryPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.BytesBatch)
	if !ok {
		return mismatch("binary", batch)
	}
	p.resetNulls(&b.Header)
	p.data = b.Values
	return nil
}

func (p *binaryPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	p.buf.WriteByte('[')
	var scratch [3]byte
	for i, b := range p.data[row] {
		if i != 0 {
			p.buf.WriteByte(',')
		}
		p.buf.Write(strconv.AppendUint(scratch[:0], uint64(b), 10))
	}
	p.buf.WriteByte(']')
}
