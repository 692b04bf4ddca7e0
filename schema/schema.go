package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the logical type of a schema node.
type Kind int

const (
	Boolean Kind = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	String
	Varchar
	Char
	Binary
	Timestamp
	Date
	Decimal
	List
	Map
	Struct
	Union

	kindCount
)

var kindNames = [kindCount]string{
	Boolean:   "boolean",
	Byte:      "tinyint",
	Short:     "smallint",
	Int:       "int",
	Long:      "bigint",
	Float:     "float",
	Double:    "double",
	String:    "string",
	Varchar:   "varchar",
	Char:      "char",
	Binary:    "binary",
	Timestamp: "timestamp",
	Date:      "date",
	Decimal:   "decimal",
	List:      "list",
	Map:       "map",
	Struct:    "struct",
	Union:     "union",
}

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Type describes one node of a schema tree.
//
// A Type is built once per dataset schema and never modified afterward.
// Composite kinds (List, Map, Struct, Union) carry their child types in
// Children; Struct additionally carries one field name per child.
type Type struct {
	Kind       Kind
	Children   []*Type
	FieldNames []string

	// Precision and Scale are meaningful for Decimal only.
	Precision int
	Scale     int

	// Length is the declared maximum length for Char and Varchar,
	// zero when unspecified.
	Length int
}

// Field pairs a struct field name with its type.
type Field struct {
	Name string
	Type *Type
}

// NewPrimitive returns a leaf type of the given kind.
func NewPrimitive(k Kind) *Type {
	return &Type{Kind: k}
}

// NewDecimal returns a decimal type with the given precision and scale.
func NewDecimal(precision, scale int) *Type {
	return &Type{Kind: Decimal, Precision: precision, Scale: scale}
}

// NewVarchar returns a varchar type with the given maximum length.
func NewVarchar(length int) *Type {
	return &Type{Kind: Varchar, Length: length}
}

// NewChar returns a char type with the given length.
func NewChar(length int) *Type {
	return &Type{Kind: Char, Length: length}
}

// NewList returns a list type with the given element type.
func NewList(element *Type) *Type {
	return &Type{Kind: List, Children: []*Type{element}}
}

// NewMap returns a map type with the given key and value types.
func NewMap(key, value *Type) *Type {
	return &Type{Kind: Map, Children: []*Type{key, value}}
}

// NewStruct returns a struct type with the given fields, in order.
func NewStruct(fields ...Field) *Type {
	t := &Type{Kind: Struct}
	for _, f := range fields {
		t.FieldNames = append(t.FieldNames, f.Name)
		t.Children = append(t.Children, f.Type)
	}
	return t
}

// NewUnion returns a union type over the given alternatives, in tag order.
func NewUnion(alternatives ...*Type) *Type {
	return &Type{Kind: Union, Children: alternatives}
}

// String renders the type in the same syntax accepted by Parse.
func (t *Type) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Type) write(sb *strings.Builder) {
	sb.WriteString(t.Kind.String())
	switch t.Kind {
	case Char, Varchar:
		if t.Length > 0 {
			sb.WriteByte('(')
			sb.WriteString(strconv.Itoa(t.Length))
			sb.WriteByte(')')
		}
	case Decimal:
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(t.Precision))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(t.Scale))
		sb.WriteByte(')')
	case List, Map, Union:
		sb.WriteByte('<')
		for i, c := range t.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			c.write(sb)
		}
		sb.WriteByte('>')
	case Struct:
		sb.WriteByte('<')
		for i, c := range t.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(t.FieldNames[i])
			sb.WriteByte(':')
			c.write(sb)
		}
		sb.WriteByte('>')
	}
}
