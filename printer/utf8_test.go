package printer

import "testing"

func TestIsUTF8_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", []byte{}},
		{"nil", nil},
		{"ascii", []byte("hello world")},
		{"controls", []byte("line1\nline2\ttab\x00")},
		{"two byte", []byte("caf\xc3\xa9")},
		{"three byte", []byte("\xe6\x97\xa5\xe6\x9c\xac")},
		{"four byte", []byte("\xf0\x9f\x98\x80")},
		{"mixed", []byte("a\xc3\xa9b\xe2\x82\xacc\xf0\x90\x8d\x88d")},
		{"boundary U+07FF", []byte("\xdf\xbf")},
		{"boundary U+FFFD", []byte("\xef\xbf\xbd")},
		{"boundary U+10FFFF", []byte("\xf4\x8f\xbf\xbf")},
	}

	for _, tt := range tests {
		if !IsUTF8(tt.input) {
			t.Errorf("IsUTF8(%s %q) = false, want true", tt.name, tt.input)
		}
	}
}

func TestIsUTF8_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"lone continuation", []byte{0x80}},
		{"continuation after ascii", []byte{'a', 0xbf}},
		{"truncated two byte", []byte{0xc3}},
		{"truncated three byte", []byte{0xe2, 0x82}},
		{"truncated four byte at end", []byte{'o', 'k', 0xf0, 0x9f, 0x98}},
		{"overlong two byte", []byte{0xc0, 0xaf}},
		{"overlong three byte", []byte{0xe0, 0x80, 0xaf}},
		{"surrogate half", []byte{0xed, 0xa0, 0x80}},
		{"beyond U+10FFFF", []byte{0xf4, 0x90, 0x80, 0x80}},
		{"0xfe", []byte{0xfe}},
		{"0xff", []byte{0xff}},
		{"missing continuation", []byte{0xc3, 'a'}},
	}

	for _, tt := range tests {
		if IsUTF8(tt.input) {
			t.Errorf("IsUTF8(%s %q) = true, want false", tt.name, tt.input)
		}
	}
}
