package printer

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/colcat/schema"
	"github.com/vegasq/colcat/vector"
)

// render builds a printer for the parsed type, binds the batch and
// returns one string per row.
func render(t *testing.T, typeStr string, batch vector.Batch) []string {
	t.Helper()
	typ, err := schema.Parse(typeStr)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", typeStr, err)
	}
	var buf bytes.Buffer
	p, err := New(&buf, typ)
	if err != nil {
		t.Fatalf("New(%q) error = %v", typeStr, err)
	}
	if err := p.Reset(batch); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	out := make([]string, batch.Len())
	for i := range out {
		p.PrintRow(i)
		out[i] = buf.String()
		buf.Reset()
	}
	return out
}

func bytesBatch(rows ...string) *vector.BytesBatch {
	b := &vector.BytesBatch{Header: vector.Header{Rows: len(rows)}}
	for _, r := range rows {
		b.Values = append(b.Values, []byte(r))
	}
	return b
}

func TestNew_UnsupportedKind(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(&buf, &schema.Type{Kind: schema.Kind(42)}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("New(bad kind) error = %v, want ErrUnsupportedType", err)
	}
}

func TestNew_NilTypeIsVoid(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if err := p.Reset(&vector.LongBatch{}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	p.PrintRow(0)
	if buf.String() != "null" {
		t.Errorf("void row = %q, want null", buf.String())
	}
}

func TestNew_DecimalVariantSelection(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		precision int
		want128   bool
	}{
		{0, true},
		{1, false},
		{18, false},
		{19, true},
		{38, true},
	}
	for _, tt := range tests {
		p, err := New(&buf, schema.NewDecimal(tt.precision, 2))
		if err != nil {
			t.Fatalf("New(decimal(%d,2)) error = %v", tt.precision, err)
		}
		_, is128 := p.(*decimal128Printer)
		if is128 != tt.want128 {
			t.Errorf("decimal(%d,2) printer = %T, want 128-bit=%v", tt.precision, p, tt.want128)
		}
	}
}

func TestReset_TypeMismatch(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, schema.NewPrimitive(schema.Int))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	err = p.Reset(&vector.DoubleBatch{})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Reset(wrong batch) error = %v, want ErrTypeMismatch", err)
	}
}

func TestReset_NestedMismatch(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, schema.NewList(schema.NewPrimitive(schema.Int)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// The list batch matches but its element batch does not.
	err = p.Reset(&vector.ListBatch{
		Offsets:  []int64{0},
		Elements: &vector.BytesBatch{},
	})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Reset(bad element batch) error = %v, want ErrTypeMismatch", err)
	}
}

func TestReset_StructFieldCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	typ := schema.NewStruct(
		schema.Field{Name: "a", Type: schema.NewPrimitive(schema.Int)},
		schema.Field{Name: "b", Type: schema.NewPrimitive(schema.Int)},
	)
	p, err := New(&buf, typ)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	err = p.Reset(&vector.StructBatch{Fields: []vector.Batch{&vector.LongBatch{}}})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Reset(short struct batch) error = %v, want ErrTypeMismatch", err)
	}
}

func TestBooleanPrinter(t *testing.T) {
	got := render(t, "boolean", &vector.LongBatch{
		Header: vector.Header{Rows: 3, HasNulls: true, NotNull: []bool{true, true, false}},
		Values: []int64{1, 0, 0},
	})
	want := []string{"true", "false", "null"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("boolean row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLongPrinter(t *testing.T) {
	got := render(t, "bigint", &vector.LongBatch{
		Header: vector.Header{Rows: 5},
		Values: []int64{0, 42, -7, math.MaxInt64, math.MinInt64},
	})
	want := []string{"0", "42", "-7", "9223372036854775807", "-9223372036854775808"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("long row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDoublePrinter(t *testing.T) {
	got := render(t, "double", &vector.DoubleBatch{
		Header: vector.Header{Rows: 6},
		Values: []float64{0, 1.5, -2.25, math.NaN(), math.Inf(1), math.Inf(-1)},
	})
	want := []string{"0", "1.5", "-2.25", `"NaN"`, `"Infinity"`, `"Infinity"`}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("double row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFloatPrinter_SevenSignificantDigits(t *testing.T) {
	got := render(t, "float", &vector.DoubleBatch{
		Header: vector.Header{Rows: 2},
		Values: []float64{float64(float32(1.0 / 3.0)), 1234567.0},
	})
	want := []string{"0.3333333", "1234567"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestStringPrinter(t *testing.T) {
	got := render(t, "string", bytesBatch("hello", "", "x\"y"))
	want := []string{`"hello"`, `""`, `"x\"y"`}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("string row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBinaryPrinter(t *testing.T) {
	b := &vector.BytesBatch{
		Header: vector.Header{Rows: 3, HasNulls: true, NotNull: []bool{true, true, false}},
		Values: [][]byte{{0, 127, 128, 255}, {}, nil},
	}
	got := render(t, "binary", b)
	want := []string{"[0,127,128,255]", "[]", "null"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("binary row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestListPrinter(t *testing.T) {
	batch := &vector.ListBatch{
		Header:  vector.Header{Rows: 3, HasNulls: true, NotNull: []bool{true, true, false}},
		Offsets: []int64{0, 3, 3, 3},
		Elements: &vector.LongBatch{
			Header: vector.Header{Rows: 3},
			Values: []int64{1, 2, 3},
		},
	}
	got := render(t, "list<int>", batch)
	want := []string{"[1,2,3]", "[]", "null"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("list row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestStructPrinter(t *testing.T) {
	batch := &vector.StructBatch{
		Header: vector.Header{Rows: 2, HasNulls: true, NotNull: []bool{true, false}},
		Fields: []vector.Batch{
			&vector.LongBatch{Header: vector.Header{Rows: 2}, Values: []int64{5, 0}},
			bytesBatch("x\"y", ""),
		},
	}
	got := render(t, "struct<a:int,b:string>", batch)
	if got[0] != `{"a":5,"b":"x\"y"}` {
		t.Errorf("struct row 0 = %s, want {\"a\":5,\"b\":\"x\\\"y\"}", got[0])
	}
	// A null struct renders as null with no descent into the fields.
	if got[1] != "null" {
		t.Errorf("struct row 1 = %s, want null", got[1])
	}
}

// Map keys go through the generic protocol, so non-string keys produce
// bare (non-standard) object keys.
func TestMapPrinter_IntKeys(t *testing.T) {
	batch := &vector.MapBatch{
		Header:  vector.Header{Rows: 2},
		Offsets: []int64{0, 2, 2},
		Keys: &vector.LongBatch{
			Header: vector.Header{Rows: 2},
			Values: []int64{1, 2},
		},
		Values: bytesBatch("one", "two"),
	}
	got := render(t, "map<int,string>", batch)
	want := []string{`{1:"one",2:"two"}`, "{}"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("map row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMapPrinter_StringKeys(t *testing.T) {
	batch := &vector.MapBatch{
		Header:  vector.Header{Rows: 1},
		Offsets: []int64{0, 1},
		Keys:    bytesBatch("k"),
		Values: &vector.LongBatch{
			Header: vector.Header{Rows: 1},
			Values: []int64{9},
		},
	}
	got := render(t, "map<string,int>", batch)
	if got[0] != `{"k":9}` {
		t.Errorf("map row = %s, want {\"k\":9}", got[0])
	}
}

func TestUnionPrinter(t *testing.T) {
	batch := &vector.UnionBatch{
		Header:  vector.Header{Rows: 3, HasNulls: true, NotNull: []bool{true, true, false}},
		Tags:    []uint8{1, 0, 0},
		Offsets: []uint64{0, 0, 0},
		Children: []vector.Batch{
			&vector.LongBatch{Header: vector.Header{Rows: 1}, Values: []int64{7}},
			bytesBatch("hi"),
		},
	}
	got := render(t, "union<int,string>", batch)
	want := []string{`{"tag":1,"value":"hi"}`, `{"tag":0,"value":7}`, "null"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("union row %d = %s, want %s", i, got[i], want[i])
		}
	}
}

// A null composite suppresses descent: the child printer must not be
// consulted at all for that row.
func TestNullComposite_NoChildInvocation(t *testing.T) {
	batch := &vector.ListBatch{
		Header:  vector.Header{Rows: 1, HasNulls: true, NotNull: []bool{false}},
		Offsets: []int64{0, 5}, // would index past the element batch
		Elements: &vector.LongBatch{
			Header: vector.Header{Rows: 0},
			Values: nil,
		},
	}
	got := render(t, "list<int>", batch)
	if got[0] != "null" {
		t.Errorf("null list row = %s, want null", got[0])
	}
}

func TestDeepNesting(t *testing.T) {
	// list<struct<n:int,tags:list<string>>>
	inner := &vector.StructBatch{
		Header: vector.Header{Rows: 2},
		Fields: []vector.Batch{
			&vector.LongBatch{Header: vector.Header{Rows: 2}, Values: []int64{1, 2}},
			&vector.ListBatch{
				Header:   vector.Header{Rows: 2},
				Offsets:  []int64{0, 2, 2},
				Elements: bytesBatch("a", "b"),
			},
		},
	}
	batch := &vector.ListBatch{
		Header:   vector.Header{Rows: 1},
		Offsets:  []int64{0, 2},
		Elements: inner,
	}
	got := render(t, "list<struct<n:int,tags:list<string>>>", batch)
	want := `[{"n":1,"tags":["a","b"]},{"n":2,"tags":[]}]`
	if got[0] != want {
		t.Errorf("nested row = %s, want %s", got[0], want)
	}
}

// Rebinding to a fresh batch must drop all references to the previous
// generation.
func TestReset_Rebinds(t *testing.T) {
	typ, err := schema.Parse("int")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var buf bytes.Buffer
	p, err := New(&buf, typ)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first := &vector.LongBatch{Header: vector.Header{Rows: 1}, Values: []int64{1}}
	second := &vector.LongBatch{
		Header: vector.Header{Rows: 2, HasNulls: true, NotNull: []bool{true, false}},
		Values: []int64{2, 3},
	}

	if err := p.Reset(first); err != nil {
		t.Fatalf("Reset(first) error = %v", err)
	}
	p.PrintRow(0)
	if buf.String() != "1" {
		t.Errorf("first generation row = %q, want 1", buf.String())
	}
	buf.Reset()

	if err := p.Reset(second); err != nil {
		t.Fatalf("Reset(second) error = %v", err)
	}
	p.PrintRow(0)
	p.PrintRow(1)
	if buf.String() != "2null" {
		t.Errorf("second generation rows = %q, want 2null", buf.String())
	}
}

// Every row of a schema without the map-key quirk must be valid JSON.
func TestPrintRow_EmitsValidJSON(t *testing.T) {
	batch := &vector.StructBatch{
		Header: vector.Header{Rows: 2},
		Fields: []vector.Batch{
			&vector.LongBatch{Header: vector.Header{Rows: 2}, Values: []int64{10, -3}},
			bytesBatch("plain", "esc\"aped"),
			&vector.ListBatch{
				Header:  vector.Header{Rows: 2},
				Offsets: []int64{0, 1, 3},
				Elements: &vector.DoubleBatch{
					Header: vector.Header{Rows: 3},
					Values: []float64{1.5, 2.5, -0.25},
				},
			},
		},
	}
	rows := render(t, "struct<id:bigint,name:string,vals:list<double>>", batch)
	for i, row := range rows {
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(row), &decoded); err != nil {
			t.Errorf("row %d = %s does not parse: %v", i, row, err)
		}
	}
}
