package printer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/decimal128"

	"github.com/vegasq/colcat/vector"
)

// ToDecimalString renders an unscaled 64-bit decimal value with the
// decimal point placed scale digits from the right. A zero scale renders
// a plain integer; magnitudes shorter than the scale are zero-padded
// after "0.". The sign goes before the leading digit.
func ToDecimalString(value int64, scale int) string {
	if scale == 0 {
		return strconv.FormatInt(value, 10)
	}
	digits := strconv.FormatInt(value, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	return placeDecimalPoint(sign, digits, scale)
}

// Decimal128String is ToDecimalString for 128-bit unscaled values.
func Decimal128String(value decimal128.Num, scale int) string {
	v := value.BigInt()
	if scale == 0 {
		return v.String()
	}
	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}
	return placeDecimalPoint(sign, new(big.Int).Abs(v).String(), scale)
}

// placeDecimalPoint inserts the point scale digits from the right of an
// unsigned digit string. scale must be positive.
func placeDecimalPoint(sign, digits string, scale int) string {
	switch {
	case len(digits) > scale:
		return sign + digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	case len(digits) == scale:
		return sign + "0." + digits
	default:
		return sign + "0." + strings.Repeat("0", scale-len(digits)) + digits
	}
}

// decimal64Printer renders decimals whose unscaled values fit in 64
// bits. The scale comes from the batch, as produced by the decoder.
type decimal64Printer struct {
	base
	data  []int64
	scale int
}

func (p *decimal64Printer) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.Decimal64Batch)
	if !ok {
		return mismatch("decimal64", batch)
	}
	p.resetNulls(&b.Header)
	p.data = b.Values
	p.scale = b.Scale
	return nil
}

func (p *decimal64Printer) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	p.buf.WriteString(ToDecimalString(p.data[row], p.scale))
}

type decimal128Printer struct {
	base
	data  []decimal128.Num
	scale int
}

func (p *decimal128Printer) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.Decimal128Batch)
	if !ok {
		return mismatch("decimal128", batch)
	}
	p.resetNulls(&b.Header)
	p.data = b.Values
	p.scale = b.Scale
	return nil
}

func (p *decimal128Printer) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	p.buf.WriteString(Decimal128String(p.data[row], p.scale))
}
