package lang

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindArray
	KindMap
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "mapping"
	default:
		return "invalid"
	}
}

// Value is the tagged union over every kind the dialect can produce:
// integer, float, boolean, string, array of scalars, and ordered mapping.
// The zero Value has KindInvalid and never results from a successful build.
type Value struct {
	kind Kind
	num  int64
	flt  float64
	str  string
	arr  []Value
	mp   *Mapping
	bol  bool
}

// IntValue returns an integer Value.
func IntValue(i int64) Value { return Value{kind: KindInt, num: i} }

// FloatValue returns a float Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, bol: b} }

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ArrayValue returns an array Value holding the given elements.
func ArrayValue(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// MapValue returns a mapping Value.
func MapValue(m *Mapping) Value { return Value{kind: KindMap, mp: m} }

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload. Valid only for KindInt.
func (v Value) Int() int64 { return v.num }

// Float returns the float payload. Valid only for KindFloat.
func (v Value) Float() float64 { return v.flt }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.bol }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.str }

// Array returns the element slice. Valid only for KindArray.
func (v Value) Array() []Value { return v.arr }

// Map returns the mapping payload. Valid only for KindMap.
func (v Value) Map() *Mapping { return v.mp }

// isNumeric reports whether the value participates in arithmetic.
// Booleans are deliberately not numeric.
func (v Value) isNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// asFloat widens a numeric value to float64.
func (v Value) asFloat() float64 {
	if v.kind == KindInt {
		return float64(v.num)
	}

	return v.flt
}

// Text returns the textual form of the value, as used when a non-string
// operand is concatenated with a string. Scalars render in their Go forms;
// containers render in canonical dialect syntax.
func (v Value) Text() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.bol)
	case KindString:
		return v.str
	case KindArray, KindMap:
		return v.literal()
	default:
		return ""
	}
}

// literal renders the value as dialect source text, quoting strings.
func (v Value) literal() string {
	switch v.kind {
	case KindString:
		return "'" + v.str + "'"

	case KindArray:
		var sb strings.Builder

		sb.WriteString("(list")

		for _, e := range v.arr {
			sb.WriteByte(' ')
			sb.WriteString(e.literal())
		}

		sb.WriteByte(')')

		return sb.String()

	case KindMap:
		var sb strings.Builder

		sb.WriteByte('[')

		first := true
		for key, val := range v.mp.Entries() {
			if !first {
				sb.WriteString(", ")
			}

			first = false

			sb.WriteString(key)
			sb.WriteString(" => ")
			sb.WriteString(val.literal())
		}

		sb.WriteByte(']')

		return sb.String()

	default:
		return v.Text()
	}
}

// Native converts the value to its generic Go representation. Mappings
// convert to map[string]any, which loses insertion order; use the marshal
// methods when order matters.
func (v Value) Native() any {
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.bol
	case KindString:
		return v.str
	case KindArray:
		elems := make([]any, len(v.arr))
		for i, e := range v.arr {
			elems[i] = e.Native()
		}

		return elems
	case KindMap:
		return v.mp.Native()
	default:
		return nil
	}
}

// Equal reports whether two values hold the same kind and payload.
// Mappings compare entries in order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return v.flt == o.flt
	case KindBool:
		return v.bol == o.bol
	case KindString:
		return v.str == o.str
	case KindArray:
		return slices.EqualFunc(v.arr, o.arr, Value.Equal)
	case KindMap:
		return v.mp.Equal(o.mp)
	default:
		return true
	}
}

// yamlValue converts the value for the YAML encoder, preserving mapping
// order via yaml.MapSlice.
func (v Value) yamlValue() any {
	switch v.kind {
	case KindArray:
		elems := make([]any, len(v.arr))
		for i, e := range v.arr {
			elems[i] = e.yamlValue()
		}

		return elems
	case KindMap:
		return v.mp.mapSlice()
	default:
		return v.Native()
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindMap {
		return v.mp.MarshalJSON()
	}

	return json.Marshal(v.Native())
}

// Mapping is an insertion-ordered dictionary of string keys to Values.
// The document produced by a conversion is the top-level Mapping.
//
// Setting an existing key replaces its value but keeps the key's original
// position: duplicate keys resolve last-write-wins without reordering.
type Mapping struct {
	items map[string]Value
	keys  []string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{items: make(map[string]Value)}
}

// Set stores the value under key, overwriting any earlier occurrence.
func (m *Mapping) Set(key string, v Value) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.items[key] = v
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.items[key]

	return v, ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return slices.Clone(m.keys)
}

// Entries returns an iterator over entries in insertion order.
func (m *Mapping) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range m.keys {
			if !yield(key, m.items[key]) {
				return
			}
		}
	}
}

// Merge folds every entry of o into m, last write wins.
func (m *Mapping) Merge(o *Mapping) {
	for key, val := range o.Entries() {
		m.Set(key, val)
	}
}

// Equal reports whether two mappings hold the same entries in the same
// order.
func (m *Mapping) Equal(o *Mapping) bool {
	if m.Len() != o.Len() {
		return false
	}

	for i, key := range m.keys {
		if o.keys[i] != key {
			return false
		}

		if !m.items[key].Equal(o.items[key]) {
			return false
		}
	}

	return true
}

// Native converts the mapping to map[string]any, losing insertion order.
func (m *Mapping) Native() map[string]any {
	out := make(map[string]any, len(m.keys))
	for key, val := range m.Entries() {
		out[key] = val.Native()
	}

	return out
}

// mapSlice converts the mapping for the YAML encoder.
func (m *Mapping) mapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(m.keys))
	for key, val := range m.Entries() {
		out = append(out, yaml.MapItem{Key: key, Value: val.yamlValue()})
	}

	return out
}

// MarshalYAML implements yaml.InterfaceMarshaler, emitting entries in
// insertion order.
func (m *Mapping) MarshalYAML() (any, error) {
	return m.mapSlice(), nil
}

// MarshalJSON implements json.Marshaler, emitting entries in insertion
// order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')

		v, err := m.items[key].MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
