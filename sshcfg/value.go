package sshcfg

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the variants of a field [Value].
type Kind int

const (
	// KindText is an uninterpreted string value.
	KindText Kind = iota

	// KindNumber is an integer value, produced when a field's text is
	// entirely 1-5 decimal digits.
	KindNumber
)

// Value is the tagged value of one record field: either the literal trailing
// text of a line, or the integer a digit-only value was coerced to.
// Consumers switch on [Value.Kind] rather than type-asserting.
type Value struct {
	text   string
	number int
	kind   Kind
}

// Text creates a string-valued Value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number creates an integer-valued Value.
func Number(n int) Value { return Value{kind: KindNumber, number: n} }

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string content of a KindText value, or "" otherwise.
func (v Value) Text() string { return v.text }

// Number returns the integer content of a KindNumber value, or 0 otherwise.
func (v Value) Number() int { return v.number }

// Native returns the value as its native Go type: string for KindText,
// int for KindNumber.
func (v Value) Native() any {
	if v.kind == KindNumber {
		return v.number
	}

	return v.text
}

// String returns the value formatted as it appeared in the source text.
func (v Value) String() string {
	if v.kind == KindNumber {
		return strconv.Itoa(v.number)
	}

	return v.text
}

// MarshalJSON implements json.Marshaler, encoding KindNumber as a JSON
// number and KindText as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}
