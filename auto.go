package choices

import (
	"fmt"
	"strings"
	"unicode"
)

// Transform derives a field from a constant name during auto-derivation.
type Transform func(constant string) any

// autoMode selects how definition tuples are completed before validation.
type autoMode int

const (
	// autoNone requires full (constant, value, display) tuples.
	autoNone autoMode = iota
	// autoDisplay derives the display from the constant; value is required.
	autoDisplay
	// autoFull derives both value and display from the constant.
	autoFull
)

// defaultValueTransform lowercases the constant.
func defaultValueTransform(constant string) any {
	return strings.ToLower(constant)
}

// defaultDisplayTransform lowercases the constant, turns underscores into
// spaces and uppercases the first rune.
func defaultDisplayTransform(constant string) any {
	display := strings.ReplaceAll(strings.ToLower(constant), "_", " ")
	runes := []rune(display)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// ValueTransform overrides the value derivation used by NewAuto.
func ValueTransform(t Transform) Option {
	return func(c *Choices) {
		if t != nil {
			c.valueTransform = t
		}
	}
}

// DisplayTransform overrides the display derivation used by NewAuto and
// NewAutoDisplay.
func DisplayTransform(t Transform) Option {
	return func(c *Choices) {
		if t != nil {
			c.displayTransform = t
		}
	}
}

// NewAuto builds a container from bare constant names or partial tuples of 1
// to 4 fields: (constant[, value[, display[, attrs]]]). A missing or nil
// value or display is derived from the constant via the configured
// transforms. The derived mode sticks to the instance, so later Add and
// AddToSubset calls keep deriving.
func NewAuto(items []any, opts ...Option) (*Choices, error) {
	defs, err := itemsToTuples(items)
	if err != nil {
		return nil, err
	}
	c := newContainer(autoFull, opts)
	if err := c.populate(defs); err != nil {
		return nil, err
	}
	return c, nil
}

// NewAutoDisplay builds a container from tuples of 2 to 4 fields:
// (constant, value[, display[, attrs]]). Only the display is derived; the
// value must always be supplied and nil is rejected.
func NewAutoDisplay(defs []Tuple, opts ...Option) (*Choices, error) {
	c := newContainer(autoDisplay, opts)
	if err := c.populate(defs); err != nil {
		return nil, err
	}
	return c, nil
}

// AddAuto appends bare constant names or partial tuples, completing them the
// way the container's constructor did.
func (c *Choices) AddAuto(items ...any) error {
	defs, err := itemsToTuples(items)
	if err != nil {
		return err
	}
	return c.Add(defs...)
}

// itemsToTuples normalizes the mixed NewAuto input shape.
func itemsToTuples(items []any) ([]Tuple, error) {
	defs := make([]Tuple, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			defs = append(defs, Tuple{v})
		case Tuple:
			defs = append(defs, v)
		case []any:
			defs = append(defs, Tuple(v))
		default:
			return nil, fmt.Errorf("%v (%T): %w", item, item, ErrBadDefinition)
		}
	}
	return defs, nil
}

// convertTuples turns raw definitions into entries, completing missing fields
// according to the container's auto mode. No indexing or uniqueness checks
// happen here; that is addBatch's job.
func (c *Choices) convertTuples(defs []Tuple) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(defs))
	for _, def := range defs {
		e, err := c.convertTuple(def)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (c *Choices) convertTuple(def Tuple) (*Entry, error) {
	switch c.mode {
	case autoDisplay:
		return c.completeTuple(def, 2)
	case autoFull:
		return c.completeTuple(def, 1)
	default:
		return NewEntry(def)
	}
}

// completeTuple fills the derivable fields of a partial tuple. minFields is the
// smallest number of explicit fields the mode accepts (1 when the value is
// derivable, 2 when it is required).
func (c *Choices) completeTuple(def Tuple, minFields int) (*Entry, error) {
	if len(def) < minFields || len(def) > 4 {
		return nil, fmt.Errorf("%v: %w", def, ErrTupleSize)
	}

	fields, attrs, err := splitAttrs(def, minFields)
	if err != nil {
		return nil, err
	}

	constant, ok := fields[0].(string)
	if !ok {
		return nil, fmt.Errorf("%v: %w", def, ErrBadConstant)
	}

	var value any
	if len(fields) > 1 {
		value = fields[1]
	}
	if value == nil {
		if minFields > 1 {
			// Value is never derived in display-only mode.
			return nil, fmt.Errorf("constant %q: %w", constant, ErrNilValue)
		}
		value = c.valueTransform(constant)
	}

	var display any
	if len(fields) > 2 {
		display = fields[2]
	}
	if display == nil {
		display = c.displayTransform(constant)
	}

	return newEntry(constant, value, display, attrs)
}

// splitAttrs pops a trailing attribute map off a partial tuple. A map in the
// last position counts as attributes whenever more than min fields are given;
// a 4-field tuple must end with a map (or nil).
func splitAttrs(def Tuple, minFields int) (Tuple, map[string]any, error) {
	last := len(def) - 1
	if len(def) == 4 {
		if def[last] == nil {
			return def[:last], nil, nil
		}
		attrs, ok := def[last].(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("%v: %w", def, ErrBadAttributes)
		}
		return def[:last], attrs, nil
	}
	if len(def) > minFields {
		if attrs, ok := def[last].(map[string]any); ok {
			return def[:last], attrs, nil
		}
	}
	return def, nil, nil
}
