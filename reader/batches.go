package reader

import (
	"encoding/base64"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/segmentio/encoding/json"

	"github.com/vegasq/colcat/schema"
	"github.com/vegasq/colcat/vector"
)

// buildBatch decodes one column of fixture values into the batch shape
// matching t. The path names the column in error messages, extended
// with a suffix per nesting level.
func buildBatch(t *schema.Type, path string, values []interface{}) (vector.Batch, error) {
	header := makeHeader(values)

	switch t.Kind {
	case schema.Boolean:
		return buildBooleans(header, path, values)
	case schema.Byte, schema.Short, schema.Int, schema.Long, schema.Date:
		return buildLongs(header, path, values)
	case schema.Float, schema.Double:
		return buildDoubles(header, path, values)
	case schema.String, schema.Varchar, schema.Char:
		return buildStrings(header, path, values)
	case schema.Binary:
		return buildBinary(header, path, values)
	case schema.Decimal:
		return buildDecimals(header, path, values, t)
	case schema.Timestamp:
		return buildTimestamps(header, path, values)
	case schema.List:
		return buildList(header, path, values, t)
	case schema.Map:
		return buildMap(header, path, values, t)
	case schema.Union:
		return buildUnion(header, path, values, t)
	case schema.Struct:
		return buildStruct(header, path, values, t)
	default:
		return nil, fmt.Errorf("column %s: unsupported type %s", path, t.Kind)
	}
}

// makeHeader derives the null mask from the JSON null entries.
func makeHeader(values []interface{}) vector.Header {
	header := vector.Header{Rows: len(values)}
	for _, v := range values {
		if v == nil {
			header.HasNulls = true
			break
		}
	}
	if header.HasNulls {
		header.NotNull = make([]bool, len(values))
		for i, v := range values {
			header.NotNull[i] = v != nil
		}
	}
	return header
}

func buildBooleans(header vector.Header, path string, values []interface{}) (vector.Batch, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("column %s row %d: expected bool, got %T", path, i, v)
		}
		if b {
			out[i] = 1
		}
	}
	return &vector.LongBatch{Header: header, Values: out}, nil
}

func buildLongs(header vector.Header, path string, values []interface{}) (vector.Batch, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		num, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("column %s row %d: expected number, got %T", path, i, v)
		}
		n, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", path, i, err)
		}
		out[i] = n
	}
	return &vector.LongBatch{Header: header, Values: out}, nil
}

func buildDoubles(header vector.Header, path string, values []interface{}) (vector.Batch, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		f, err := floatValue(v)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", path, i, err)
		}
		out[i] = f
	}
	return &vector.DoubleBatch{Header: header, Values: out}, nil
}

// floatValue accepts JSON numbers plus the spelled-out specials JSON
// itself cannot carry.
func floatValue(v interface{}) (float64, error) {
	switch x := v.(type) {
	case json.Number:
		return x.Float64()
	case string:
		switch x {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("unrecognized float string %q", x)
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}

func buildStrings(header vector.Header, path string, values []interface{}) (vector.Batch, error) {
	out := make([][]byte, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("column %s row %d: expected string, got %T", path, i, v)
		}
		out[i] = []byte(s)
	}
	return &vector.BytesBatch{Header: header, Values: out}, nil
}

func buildBinary(header vector.Header, path string, values []interface{}) (vector.Batch, error) {
	out := make([][]byte, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("column %s row %d: expected base64 string, got %T", path, i, v)
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", path, i, err)
		}
		out[i] = raw
	}
	return &vector.BytesBatch{Header: header, Values: out}, nil
}

func buildDecimals(header vector.Header, path string, values []interface{}, t *schema.Type) (vector.Batch, error) {
	unscaled := make([]*big.Int, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("column %s row %d: expected decimal string, got %T", path, i, v)
		}
		n, err := parseDecimal(s, t.Scale)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", path, i, err)
		}
		unscaled[i] = n
	}

	if t.Precision >= 1 && t.Precision <= 18 {
		out := make([]int64, len(values))
		for i, n := range unscaled {
			if n == nil {
				continue
			}
			if !n.IsInt64() {
				return nil, fmt.Errorf("column %s row %d: value exceeds 64 bits", path, i)
			}
			out[i] = n.Int64()
		}
		return &vector.Decimal64Batch{Header: header, Values: out, Scale: t.Scale}, nil
	}

	out := make([]decimal128.Num, len(values))
	for i, n := range unscaled {
		if n == nil {
			continue
		}
		out[i] = decimal128.FromBigInt(n)
	}
	return &vector.Decimal128Batch{Header: header, Values: out, Scale: t.Scale}, nil
}

// parseDecimal turns "12.34" into the unscaled integer 1234 for scale 2,
// padding shorter fractions with zeros.
func parseDecimal(s string, scale int) (*big.Int, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	whole, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		whole, frac = s[:dot], s[dot+1:]
	}
	if len(frac) > scale {
		return nil, fmt.Errorf("decimal %q has more than %d fractional digits", s, scale)
	}
	digits := whole + frac + strings.Repeat("0", scale-len(frac))
	if digits == "" {
		return nil, fmt.Errorf("empty decimal %q", s)
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("malformed decimal %q", s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

func buildTimestamps(header vector.Header, path string, values []interface{}) (vector.Batch, error) {
	seconds := make([]int64, len(values))
	nanos := make([]int64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		pair, ok := v.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("column %s row %d: expected [seconds, nanos] pair, got %T", path, i, v)
		}
		sec, err := intValue(pair[0])
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", path, i, err)
		}
		nano, err := intValue(pair[1])
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", path, i, err)
		}
		seconds[i] = sec
		nanos[i] = nano
	}
	return &vector.TimestampBatch{Header: header, Seconds: seconds, Nanos: nanos}, nil
}

func intValue(v interface{}) (int64, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	return num.Int64()
}

func buildList(header vector.Header, path string, values []interface{}, t *schema.Type) (vector.Batch, error) {
	offsets := make([]int64, len(values)+1)
	var flat []interface{}
	for i, v := range values {
		offsets[i] = int64(len(flat))
		if v == nil {
			continue
		}
		items, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("column %s row %d: expected array, got %T", path, i, v)
		}
		flat = append(flat, items...)
	}
	offsets[len(values)] = int64(len(flat))

	elements, err := buildBatch(t.Children[0], path+".element", flat)
	if err != nil {
		return nil, err
	}
	return &vector.ListBatch{Header: header, Offsets: offsets, Elements: elements}, nil
}

func buildMap(header vector.Header, path string, values []interface{}, t *schema.Type) (vector.Batch, error) {
	offsets := make([]int64, len(values)+1)
	var flatKeys, flatValues []interface{}
	for i, v := range values {
		offsets[i] = int64(len(flatKeys))
		if v == nil {
			continue
		}
		entries, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("column %s row %d: expected array of pairs, got %T", path, i, v)
		}
		for _, e := range entries {
			pair, ok := e.([]interface{})
			if !ok || len(pair) != 2 {
				return nil, fmt.Errorf("column %s row %d: expected [key, value] pair, got %T", path, i, e)
			}
			flatKeys = append(flatKeys, pair[0])
			flatValues = append(flatValues, pair[1])
		}
	}
	offsets[len(values)] = int64(len(flatKeys))

	keys, err := buildBatch(t.Children[0], path+".key", flatKeys)
	if err != nil {
		return nil, err
	}
	vals, err := buildBatch(t.Children[1], path+".value", flatValues)
	if err != nil {
		return nil, err
	}
	return &vector.MapBatch{Header: header, Offsets: offsets, Keys: keys, Values: vals}, nil
}

func buildUnion(header vector.Header, path string, values []interface{}, t *schema.Type) (vector.Batch, error) {
	tags := make([]uint8, len(values))
	offsets := make([]uint64, len(values))
	perChild := make([][]interface{}, len(t.Children))
	for i, v := range values {
		if v == nil {
			continue
		}
		pair, ok := v.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("column %s row %d: expected [tag, value] pair, got %T", path, i, v)
		}
		tag, err := intValue(pair[0])
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", path, i, err)
		}
		if tag < 0 || int(tag) >= len(t.Children) {
			return nil, fmt.Errorf("column %s row %d: union tag %d out of range", path, i, tag)
		}
		tags[i] = uint8(tag)
		offsets[i] = uint64(len(perChild[tag]))
		perChild[tag] = append(perChild[tag], pair[1])
	}

	children := make([]vector.Batch, len(t.Children))
	for c, childValues := range perChild {
		batch, err := buildBatch(t.Children[c], fmt.Sprintf("%s.%d", path, c), childValues)
		if err != nil {
			return nil, err
		}
		children[c] = batch
	}
	return &vector.UnionBatch{Header: header, Tags: tags, Offsets: offsets, Children: children}, nil
}

func buildStruct(header vector.Header, path string, values []interface{}, t *schema.Type) (vector.Batch, error) {
	perField := make([][]interface{}, len(t.Children))
	for f := range perField {
		perField[f] = make([]interface{}, len(values))
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		obj, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("column %s row %d: expected object, got %T", path, i, v)
		}
		for f, name := range t.FieldNames {
			perField[f][i] = obj[name]
		}
	}

	fields := make([]vector.Batch, len(t.Children))
	for f := range fields {
		batch, err := buildBatch(t.Children[f], path+"."+t.FieldNames[f], perField[f])
		if err != nil {
			return nil, err
		}
		fields[f] = batch
	}
	return &vector.StructBatch{Header: header, Fields: fields}, nil
}
