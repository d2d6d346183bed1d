package document

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/cargolock/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Kind identifies which member of the Value union a value is.
type Kind int

const (
	KindTable Kind = iota
	KindArray
	KindString
	KindPrimitive
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindPrimitive:
		return "primitive"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a node of the document tree.
// String renders the value in TOML syntax.
type Value interface {
	Kind() Kind
	String() string
}

// String is a text value.
type String string

// Kind implements Value.
func (s String) Kind() Kind { return KindString }

// String renders s as a TOML basic string.
func (s String) String() string { return quoteBasic(string(s)) }

// Primitive is any scalar that is not a string: integers, floats, booleans
// and date-times.
type Primitive struct {
	V interface{}
}

// Kind implements Value.
func (p Primitive) Kind() Kind { return KindPrimitive }

// String renders the primitive with go-toml's own formatting.
func (p Primitive) String() string {
	out, err := toml.Marshal(map[string]interface{}{"v": p.V})
	if err != nil {
		return fmt.Sprint(p.V)
	}
	text := strings.TrimSuffix(string(out), "\n")
	return strings.TrimPrefix(text, "v = ")
}

// Array is an ordered sequence of values.
type Array []Value

// Kind implements Value.
func (a Array) Kind() Kind { return KindArray }

// String renders the array inline.
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Table is an ordered mapping of unique string keys to values.
type Table struct {
	keys   []string
	values map[string]Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]Value)}
}

// Kind implements Value.
func (t *Table) Kind() Kind { return KindTable }

// Set stores v under key. Replacing an existing key keeps its position.
func (t *Table) Set(key string, v Value) *Table {
	if t.values == nil {
		t.values = make(map[string]Value)
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
	return t
}

// Get returns the value under key.
func (t *Table) Get(key string) (Value, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// String renders the table as an inline TOML table.
func (t *Table) String() string {
	parts := make([]string, 0, t.Len())
	for _, k := range t.Keys() {
		parts = append(parts, quoteKey(k)+" = "+t.values[k].String())
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// ToMap converts the table into plain Go maps, slices and scalars.
func (t *Table) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, t.Len())
	for _, k := range t.Keys() {
		out[k] = toPlain(t.values[k])
	}
	return out
}

func toPlain(v Value) interface{} {
	switch val := v.(type) {
	case *Table:
		return val.ToMap()
	case Array:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			out[i] = toPlain(elem)
		}
		return out
	case String:
		return string(val)
	case Primitive:
		return val.V
	default:
		return nil
	}
}

// FromMap builds a table from plain Go values as produced by a generic
// decoder. Keys are inserted in sorted order.
func FromMap(m map[string]interface{}) (*Table, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := NewTable()
	for _, k := range keys {
		v, err := FromPlain(m[k])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "key %q", k)
		}
		t.Set(k, v)
	}
	return t, nil
}

// FromPlain converts one plain Go value into a document value.
func FromPlain(v interface{}) (Value, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		return FromMap(val)
	case []interface{}:
		arr := make(Array, len(val))
		for i, elem := range val {
			converted, err := FromPlain(elem)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidInput, "index %d", i)
			}
			arr[i] = converted
		}
		return arr, nil
	case []string:
		arr := make(Array, len(val))
		for i, elem := range val {
			arr[i] = String(elem)
		}
		return arr, nil
	case string:
		return String(val), nil
	case int64, int, int32, uint64, uint32, float64, float32, bool, time.Time,
		toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return Primitive{V: val}, nil
	case nil:
		return nil, errors.New(errors.ErrInvalidInput, "nil values are not representable")
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported value of type %T", v)
	}
}
