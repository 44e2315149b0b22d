package calculator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Key is a calculator key. Digit keys are the runes '0' through '9'.
type Key rune

const (
	KeyDot       Key = '.'
	KeyAdd       Key = '+'
	KeySub       Key = '-'
	KeyMul       Key = Times
	KeyDiv       Key = Divide
	KeySign      Key = '±'
	KeyPercent   Key = '%'
	KeyClear     Key = 'C'
	KeyBackspace Key = '⌫'
	KeyEquals    Key = '='
)

func (k Key) String() string {
	return string(k)
}

// IsDigit reports whether k is a digit key.
func (k Key) IsDigit() bool {
	return '0' <= k && k <= '9'
}

// IsOperator reports whether k is one of + - × ÷.
func (k Key) IsOperator() bool {
	switch k {
	case KeyAdd, KeySub, KeyMul, KeyDiv:
		return true
	}
	return false
}

// Valid reports whether k is a key on the calculator.
func (k Key) Valid() bool {
	switch k {
	case KeyDot, KeySign, KeyPercent, KeyClear, KeyBackspace, KeyEquals:
		return true
	}
	return k.IsDigit() || k.IsOperator()
}

// keyAliases are names for keys which are easier to type than the key itself.
var keyAliases = map[string]Key{
	"*":         KeyMul,
	"x":         KeyMul,
	"/":         KeyDiv,
	"c":         KeyClear,
	"esc":       KeyClear,
	"n":         KeySign,
	"~":         KeySign,
	"+/-":       KeySign,
	"<":         KeyBackspace,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"enter":     KeyEquals,
}

// ParseKey parses a single key, either its own rune or an alias such as "*"
// for × or "bs" for backspace.
func ParseKey(s string) (Key, error) {
	if k, ok := keyAliases[strings.ToLower(s)]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if k := Key(r); k.Valid() {
			return k, nil
		}
	}
	return 0, &KeyError{Key: s}
}

// ParseKeys parses a sequence of keys. Whitespace separates fields. A field
// which is a key or an alias is that key; otherwise each rune of the field is
// a key, so "12+3=" and "1 2 + 3 enter" are the same sequence.
func ParseKeys(s string) ([]Key, error) {
	var keys []Key
	for _, f := range strings.Fields(s) {
		if k, err := ParseKey(f); err == nil {
			keys = append(keys, k)
			continue
		}
		for _, r := range f {
			k, err := ParseKey(string(r))
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// KeyError is an error from parsing a key that is not on the calculator.
type KeyError struct {
	// Key is the text that was not understood.
	Key string
}

func (err *KeyError) Error() string {
	return "unknown key " + strconv.Quote(err.Key)
}
