package choices

import (
	"fmt"
	"reflect"
)

// Tuple is a raw choice definition: constant, value, display, and an optional
// trailing map[string]any of extra attributes.
type Tuple []any

// Reserved attribute names. Extra attributes may not shadow the three core
// fields.
const (
	fieldConstant = "constant"
	fieldValue    = "value"
	fieldDisplay  = "display"
)

// Entry is one enumeration member. Entries are immutable after construction
// and may be shared between a container and its subsets.
type Entry struct {
	constant string
	value    any
	display  any
	attrs    map[string]any
}

// NewEntry builds an Entry from a raw 3- or 4-field tuple. The fourth field,
// if present, must be a map[string]any whose keys become extra attributes.
func NewEntry(def Tuple) (*Entry, error) {
	if len(def) < 3 || len(def) > 4 {
		return nil, fmt.Errorf("%v: %w", def, ErrTupleSize)
	}

	constant, ok := def[0].(string)
	if !ok {
		return nil, fmt.Errorf("%v: %w", def, ErrBadConstant)
	}

	var attrs map[string]any
	if len(def) == 4 && def[3] != nil {
		attrs, ok = def[3].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%v: %w", def, ErrBadAttributes)
		}
	}

	return newEntry(constant, def[1], def[2], attrs)
}

func newEntry(constant string, value, display any, attrs map[string]any) (*Entry, error) {
	if value == nil {
		return nil, fmt.Errorf("constant %q: %w", constant, ErrNilValue)
	}
	if display == nil {
		return nil, fmt.Errorf("constant %q: %w", constant, ErrNilDisplay)
	}
	// Values and displays are index keys, so they must be usable as map keys.
	if !isComparable(value) {
		return nil, fmt.Errorf("constant %q value %v: %w", constant, value, ErrNotComparable)
	}
	if !isComparable(display) {
		return nil, fmt.Errorf("constant %q display %v: %w", constant, display, ErrNotComparable)
	}

	var copied map[string]any
	if len(attrs) > 0 {
		copied = make(map[string]any, len(attrs))
		for key, val := range attrs {
			if key == fieldConstant || key == fieldValue || key == fieldDisplay {
				return nil, fmt.Errorf("constant %q attribute %q: %w", constant, key, ErrReservedAttribute)
			}
			copied[key] = val
		}
	}

	return &Entry{constant: constant, value: value, display: display, attrs: copied}, nil
}

// Constant returns the constant projection of the entry.
func (e *Entry) Constant() Field {
	return Field{entry: e, raw: e.constant}
}

// Value returns the stored-value projection of the entry.
func (e *Entry) Value() Field {
	return Field{entry: e, raw: e.value}
}

// Display returns the display-label projection of the entry.
func (e *Entry) Display() Field {
	return Field{entry: e, raw: e.display}
}

// Attr returns the extra attribute with the given name.
func (e *Entry) Attr(name string) (any, bool) {
	val, ok := e.attrs[name]
	return val, ok
}

// Attrs returns a copy of the entry's extra attributes.
func (e *Entry) Attrs() map[string]any {
	if len(e.attrs) == 0 {
		return nil
	}
	copied := make(map[string]any, len(e.attrs))
	for key, val := range e.attrs {
		copied[key] = val
	}
	return copied
}

// Tuple returns the (constant, value, display) triple. Extra attributes are
// not part of the tuple shape.
func (e *Entry) Tuple() Tuple {
	return Tuple{e.constant, e.value, e.display}
}

// Choice returns the (value, display) pair expected by choices-field
// consumers.
func (e *Entry) Choice() Pair {
	return Pair{Value: e.value, Display: e.display}
}

// Equal reports whether both entries hold the same (constant, value, display)
// triple. Extra attributes are excluded from equality.
func (e *Entry) Equal(other *Entry) bool {
	if other == nil {
		return e == nil
	}
	return e.constant == other.constant &&
		reflect.DeepEqual(e.value, other.value) &&
		reflect.DeepEqual(e.display, other.display)
}

// EqualTuple reports whether the entry matches a plain tuple literal: either
// the full (constant, value, display) triple or the (value, display) pair.
func (e *Entry) EqualTuple(t Tuple) bool {
	switch len(t) {
	case 3:
		return reflect.DeepEqual(e.constant, t[0]) &&
			reflect.DeepEqual(e.value, t[1]) &&
			reflect.DeepEqual(e.display, t[2])
	case 2:
		return reflect.DeepEqual(e.value, t[0]) && reflect.DeepEqual(e.display, t[1])
	default:
		return false
	}
}

// String renders the entry as its definition triple.
func (e *Entry) String() string {
	return fmt.Sprintf("(%q, %v, %v)", e.constant, e.value, e.display)
}

// Projection is the uniform chained-access contract shared by Entry and
// Field: each of the three accessors returns a Field on the same entry, so a
// further accessor can always be applied.
type Projection interface {
	Constant() Field
	Value() Field
	Display() Field
}

var (
	_ Projection = (*Entry)(nil)
	_ Projection = Field{}
)

// Field is one projection of an Entry. It carries the projected scalar (Raw)
// while still giving access to the owning entry's other fields, so accesses
// chain: entry.Constant().Value().Display() == entry.Display().
type Field struct {
	entry *Entry
	raw   any
}

// Constant returns the constant projection of the owning entry.
func (f Field) Constant() Field { return f.entry.Constant() }

// Value returns the stored-value projection of the owning entry.
func (f Field) Value() Field { return f.entry.Value() }

// Display returns the display-label projection of the owning entry.
func (f Field) Display() Field { return f.entry.Display() }

// Entry returns the owning entry.
func (f Field) Entry() *Entry { return f.entry }

// Attr returns an extra attribute of the owning entry.
func (f Field) Attr(name string) (any, bool) { return f.entry.Attr(name) }

// Raw returns the projected scalar.
func (f Field) Raw() any { return f.raw }

// String renders the projected scalar.
func (f Field) String() string { return fmt.Sprint(f.raw) }

// isComparable reports whether v can be used as a map key.
func isComparable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Comparable()
}
