package printer

import (
	"strconv"
	"time"

	"github.com/vegasq/colcat/vector"
)

// Epoch-second bounds of the renderable calendar window, years 0000
// through 9999 at UTC. Values outside this window cannot be formatted
// with a four-digit year and render as the sentinel instead.
const (
	minEpochSeconds = -62167219200 // 0000-01-01 00:00:00
	maxEpochSeconds = 253402300799 // 9999-12-31 23:59:59
)

const secondsPerDay = 24 * 60 * 60

// datePrinter renders day-counts-since-epoch as quoted YYYY-MM-DD.
type datePrinter struct {
	base
	data []int64
}

func (p *datePrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.LongBatch)
	if !ok {
		return mismatch("date", batch)
	}
	p.resetNulls(&b.Header)
	p.data = b.Values
	return nil
}

func (p *datePrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	days := p.data[row]
	p.buf.WriteByte('"')
	if days < minEpochSeconds/secondsPerDay || days > maxEpochSeconds/secondsPerDay {
		p.buf.WriteString("0000-00-00")
	} else {
		t := time.Unix(days*secondsPerDay, 0).UTC()
		p.buf.WriteString(t.Format("2006-01-02"))
	}
	p.buf.WriteByte('"')
}

// timestampPrinter renders epoch seconds plus nanoseconds-of-second as
// quoted "YYYY-MM-DD HH:MM:SS.fraction" with trailing zeros stripped
// from the fraction.
type timestampPrinter struct {
	base
	seconds []int64
	nanos   []int64
}

func (p *timestampPrinter) Reset(batch vector.Batch) error {
	b, ok := batch.(*vector.TimestampBatch)
	if !ok {
		return mismatch("timestamp", batch)
	}
	p.resetNulls(&b.Header)
	p.seconds = b.Seconds
	p.nanos = b.Nanos
	return nil
}

func (p *timestampPrinter) PrintRow(row int) {
	if p.isNull(row) {
		p.writeNull()
		return
	}
	secs := p.seconds[row]
	p.buf.WriteByte('"')
	if secs < minEpochSeconds || secs > maxEpochSeconds {
		// No fractional part on the sentinel.
		p.buf.WriteString("0000-00-00 00:00:00")
		p.buf.WriteByte('"')
		return
	}
	t := time.Unix(secs, 0).UTC()
	p.buf.WriteString(t.Format("2006-01-02 15:04:05"))
	p.buf.WriteByte('.')

	// Strip trailing zero digits off the nanosecond field; an all-zero
	// fraction renders as a single 0. Leading zeros of the nine-digit
	// field survive the trim.
	nanos := p.nanos[row]
	const nanoDigits = 9
	zeros := 0
	if nanos == 0 {
		zeros = nanoDigits - 1
	} else {
		for nanos%10 == 0 {
			nanos /= 10
			zeros++
		}
	}
	digits := strconv.FormatInt(nanos, 10)
	for pad := nanoDigits - zeros - len(digits); pad > 0; pad-- {
		p.buf.WriteByte('0')
	}
	p.buf.WriteString(digits)
	p.buf.WriteByte('"')
}
