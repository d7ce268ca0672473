// Package document defines the in-memory tree produced by parsing a
// configuration document. A tree is made of tables (ordered string-keyed
// mappings), arrays, and scalar leaves. Values are built once by a loader
// and are read-only afterwards; queries return references into the same
// tree, so sharing a document across concurrent read-only queries is safe.
package document

import (
	"fmt"
	"time"
)

// Kind identifies the variant a Value holds. The set is closed: every
// node in a document is exactly one of these.
type Kind int

const (
	KindTable Kind = iota
	KindArray
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindDatetime
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindTable:    "table",
		KindArray:    "array",
		KindString:   "string",
		KindInteger:  "integer",
		KindFloat:    "float",
		KindBoolean:  "boolean",
		KindDatetime: "datetime",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// IsScalar reports whether k is a leaf kind. Scalars are opaque to
// navigation: they are never decomposed further.
func (k Kind) IsScalar() bool {
	switch k {
	case KindTable, KindArray:
		return false
	default:
		return true
	}
}

// Value is one node of a document tree. Tables keep their keys in
// insertion order; Set preserves the original position when a key is
// written twice. The zero Value is an empty table; use the constructors
// for everything else.
type Value struct {
	kind Kind

	// Table keys, parallel to elems. Arrays leave keys nil and use
	// elems alone.
	keys  []string
	elems []*Value

	s  string
	i  int64
	f  float64
	b  bool
	dt any
}

// NewTable returns an empty table value.
func NewTable() *Value {
	return &Value{kind: KindTable}
}

// NewArray returns an empty array value.
func NewArray() *Value {
	return &Value{kind: KindArray}
}

// String returns a string scalar.
func String(s string) *Value {
	return &Value{kind: KindString, s: s}
}

// Integer returns an integer scalar.
func Integer(i int64) *Value {
	return &Value{kind: KindInteger, i: i}
}

// Float returns a float scalar.
func Float(f float64) *Value {
	return &Value{kind: KindFloat, f: f}
}

// Boolean returns a boolean scalar.
func Boolean(b bool) *Value {
	return &Value{kind: KindBoolean, b: b}
}

// Datetime returns a datetime scalar. The dynamic type of v is preserved
// so that local dates and times survive a round trip through a TOML
// encoder; loaders pass time.Time or one of the go-toml local variants.
func Datetime(v any) *Value {
	return &Value{kind: KindDatetime, dt: v}
}

// Kind returns the variant this value holds.
func (v *Value) Kind() Kind { return v.kind }

// Len returns the number of entries in a table or elements in an array,
// and 0 for scalars.
func (v *Value) Len() int { return len(v.elems) }

// Keys returns the table keys in insertion order. The result is a copy;
// mutating it does not affect the value.
func (v *Value) Keys() []string {
	if len(v.keys) == 0 {
		return nil
	}
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Get looks up a table entry by key.
func (v *Value) Get(key string) (*Value, bool) {
	for i, k := range v.keys {
		if k == key {
			return v.elems[i], true
		}
	}
	return nil, false
}

// Set writes a table entry. A new key is appended; an existing key is
// replaced in place, keeping its original position.
func (v *Value) Set(key string, entry *Value) {
	for i, k := range v.keys {
		if k == key {
			v.elems[i] = entry
			return
		}
	}
	v.keys = append(v.keys, key)
	v.elems = append(v.elems, entry)
}

// At returns the i-th array element. The caller bounds-checks against Len.
func (v *Value) At(i int) *Value { return v.elems[i] }

// Append adds an element to the end of an array.
func (v *Value) Append(elem *Value) {
	v.elems = append(v.elems, elem)
}

// AsString returns the string payload of a string scalar.
func (v *Value) AsString() string { return v.s }

// AsInteger returns the payload of an integer scalar.
func (v *Value) AsInteger() int64 { return v.i }

// AsFloat returns the payload of a float scalar.
func (v *Value) AsFloat() float64 { return v.f }

// AsBoolean returns the payload of a boolean scalar.
func (v *Value) AsBoolean() bool { return v.b }

// AsDatetime returns the raw payload of a datetime scalar, typically a
// time.Time or a go-toml local date/time.
func (v *Value) AsDatetime() any { return v.dt }

// FormatDatetime renders a datetime payload in its canonical text form:
// RFC 3339 for absolute instants, the value's own notation for local
// dates and times.
func FormatDatetime(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Interface converts the tree rooted at v into plain Go values: tables
// become map[string]any, arrays []any, scalars their payloads. Table
// ordering is lost; callers that need ordering keep the Value form.
func (v *Value) Interface() any {
	switch v.kind {
	case KindTable:
		m := make(map[string]any, len(v.keys))
		for i, k := range v.keys {
			m[k] = v.elems[i].Interface()
		}
		return m
	case KindArray:
		items := make([]any, len(v.elems))
		for i, e := range v.elems {
			items[i] = e.Interface()
		}
		return items
	case KindString:
		return v.s
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindBoolean:
		return v.b
	case KindDatetime:
		return v.dt
	default:
		return nil
	}
}
