package schema

import (
	"fmt"
	"strconv"
)

// Parse builds a Type tree from a compact type description.
//
// The syntax follows the usual columnar type notation:
//
//	boolean, tinyint, smallint, int, bigint, float, double,
//	string, binary, timestamp, date,
//	char(N), varchar(N), decimal(P,S),
//	list<T>, map<K,V>, struct<name:T,...>, union<T,...>
//
// The aliases byte, short and long are accepted for the integer kinds,
// and uniontype for union. Whitespace is not significant.
//
// Example:
//
//	t, err := schema.Parse("struct<id:bigint,tags:list<string>>")
func Parse(s string) (*Type, error) {
	p := &typeParser{input: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, p.errorf("unexpected trailing input %q", p.input[p.pos:])
	}
	return t, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("schema: %s at offset %d in %q",
		fmt.Sprintf(format, args...), p.pos, p.input)
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// expect consumes one literal character, which must be next.
func (p *typeParser) expect(ch byte) error {
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != ch {
		return p.errorf("expected %q", string(ch))
	}
	p.pos++
	return nil
}

func (p *typeParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}

func (p *typeParser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected a name")
	}
	return p.input[start:p.pos], nil
}

func (p *typeParser) number() (int, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected a number")
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, p.errorf("bad number %q", p.input[start:p.pos])
	}
	return n, nil
}

func (p *typeParser) parseType() (*Type, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	switch name {
	case "boolean":
		return NewPrimitive(Boolean), nil
	case "tinyint", "byte":
		return NewPrimitive(Byte), nil
	case "smallint", "short":
		return NewPrimitive(Short), nil
	case "int":
		return NewPrimitive(Int), nil
	case "bigint", "long":
		return NewPrimitive(Long), nil
	case "float":
		return NewPrimitive(Float), nil
	case "double":
		return NewPrimitive(Double), nil
	case "string":
		return NewPrimitive(String), nil
	case "binary":
		return NewPrimitive(Binary), nil
	case "timestamp":
		return NewPrimitive(Timestamp), nil
	case "date":
		return NewPrimitive(Date), nil
	case "char", "varchar":
		kind := Char
		if name == "varchar" {
			kind = Varchar
		}
		t := &Type{Kind: kind}
		if p.peek() == '(' {
			p.pos++
			n, err := p.number()
			if err != nil {
				return nil, err
			}
			if err := p.expect(')'); err != nil {
				return nil, err
			}
			t.Length = n
		}
		return t, nil
	case "decimal":
		t := &Type{Kind: Decimal}
		if p.peek() == '(' {
			p.pos++
			prec, err := p.number()
			if err != nil {
				return nil, err
			}
			if err := p.expect(','); err != nil {
				return nil, err
			}
			scale, err := p.number()
			if err != nil {
				return nil, err
			}
			if err := p.expect(')'); err != nil {
				return nil, err
			}
			t.Precision, t.Scale = prec, scale
		}
		return t, nil
	case "list":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return NewList(elem), nil
	case "map":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		value, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return NewMap(key, value), nil
	case "struct":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		t := &Type{Kind: Struct}
		for p.peek() != '>' {
			if len(t.Children) > 0 {
				if err := p.expect(','); err != nil {
					return nil, err
				}
			}
			fieldName, err := p.ident()
			if err != nil {
				return nil, err
			}
			if err := p.expect(':'); err != nil {
				return nil, err
			}
			fieldType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			t.FieldNames = append(t.FieldNames, fieldName)
			t.Children = append(t.Children, fieldType)
		}
		p.pos++ // '>'
		return t, nil
	case "union", "uniontype":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		t := &Type{Kind: Union}
		for p.peek() != '>' {
			if len(t.Children) > 0 {
				if err := p.expect(','); err != nil {
					return nil, err
				}
			}
			alt, err := p.parseType()
			if err != nil {
				return nil, err
			}
			t.Children = append(t.Children, alt)
		}
		p.pos++ // '>'
		return t, nil
	default:
		return nil, p.errorf("unknown type name %q", name)
	}
}
