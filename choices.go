package choices

import (
	"fmt"
	"iter"
)

// Pair is one (value, display) element of the iteration contract.
type Pair struct {
	Value   any
	Display any
}

// Choices is the enumeration container. It owns an ordered entry list, three
// lookup indices derived from it, and any named subsets registered on it.
//
// Population is append-only and batch-atomic: a failed Add leaves the
// container exactly as it was, including subset registrations.
type Choices struct {
	name    string
	entries []*Entry

	constants Map
	values    Map
	displays  Map

	subsets     map[string]*Choices
	subsetNames []string

	newMap           MapFactory
	uniqueDisplays   bool
	mode             autoMode
	valueTransform   Transform
	displayTransform Transform

	// Consumed by the constructors to wrap the initial batch in a subset.
	initialSubset string
}

// Option configures a container at construction time.
type Option func(*Choices)

// SubsetName wraps the constructor's initial definitions in an owned subset
// with the given name.
func SubsetName(name string) Option {
	return func(c *Choices) { c.initialSubset = name }
}

// IndexMap sets the mapping strategy backing the three lookup indices. The
// default is the insertion-ordered NewOrderedMap.
func IndexMap(factory MapFactory) Option {
	return func(c *Choices) { c.newMap = factory }
}

// UniqueDisplays makes a display collision a population error instead of the
// default last-write-wins behavior in the display index.
func UniqueDisplays() Option {
	return func(c *Choices) { c.uniqueDisplays = true }
}

// New builds a container from an initial sequence of definition tuples. The
// initial sequence goes through the same population path as a later Add call.
func New(defs []Tuple, opts ...Option) (*Choices, error) {
	c := newContainer(autoNone, opts)
	if err := c.populate(defs); err != nil {
		return nil, err
	}
	return c, nil
}

func newContainer(mode autoMode, opts []Option) *Choices {
	c := &Choices{
		newMap:           NewOrderedMap,
		mode:             mode,
		valueTransform:   defaultValueTransform,
		displayTransform: defaultDisplayTransform,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.constants = c.newMap()
	c.values = c.newMap()
	c.displays = c.newMap()
	return c
}

// populate runs the constructor's initial batch, honoring SubsetName.
func (c *Choices) populate(defs []Tuple) error {
	entries, err := c.convertTuples(defs)
	if err != nil {
		return err
	}
	subset := c.initialSubset
	c.initialSubset = ""
	return c.addBatch(entries, subset)
}

// spawn creates an empty container sharing this one's configuration. Used for
// subset derivation.
func (c *Choices) spawn(name string) *Choices {
	sub := &Choices{
		name:             name,
		newMap:           c.newMap,
		uniqueDisplays:   c.uniqueDisplays,
		mode:             c.mode,
		valueTransform:   c.valueTransform,
		displayTransform: c.displayTransform,
	}
	sub.constants = sub.newMap()
	sub.values = sub.newMap()
	sub.displays = sub.newMap()
	return sub
}

// Add appends a batch of definition tuples. The whole batch is validated
// before anything is inserted; on error the container is unchanged.
func (c *Choices) Add(defs ...Tuple) error {
	entries, err := c.convertTuples(defs)
	if err != nil {
		return err
	}
	return c.addBatch(entries, "")
}

// AddEntries appends pre-built entries, with the same batch semantics as Add.
func (c *Choices) AddEntries(entries ...*Entry) error {
	for _, e := range entries {
		if e == nil {
			return fmt.Errorf("nil entry: %w", ErrBadDefinition)
		}
	}
	return c.addBatch(entries, "")
}

// AddToSubset appends a batch and collects exactly that batch into the owned
// subset with the given name, creating it on first use. Repeated calls with
// the same name extend the subset, unlike AddSubset which overwrites.
func (c *Choices) AddToSubset(name string, defs ...Tuple) error {
	if name == "" {
		return fmt.Errorf("empty subset name: %w", ErrBadDefinition)
	}
	entries, err := c.convertTuples(defs)
	if err != nil {
		return err
	}
	return c.addBatch(entries, name)
}

func (c *Choices) addBatch(entries []*Entry, subsetName string) error {
	if err := c.validateBatch(entries); err != nil {
		return err
	}
	// An existing target subset may have taken additions of its own, so the
	// batch must pass its indices too before anything lands anywhere.
	if sub, ok := c.subsets[subsetName]; ok {
		if err := sub.validateBatch(entries); err != nil {
			return err
		}
	}
	c.commit(entries)
	if subsetName != "" {
		c.extendSubset(subsetName, entries)
	}
	return nil
}

// validateBatch checks the batch against itself and against the already
// present entries. Nothing is inserted until every entry passes.
func (c *Choices) validateBatch(entries []*Entry) error {
	seenConstants := make(map[string]struct{}, len(entries))
	seenValues := make(map[any]struct{}, len(entries))
	var seenDisplays map[any]struct{}
	if c.uniqueDisplays {
		seenDisplays = make(map[any]struct{}, len(entries))
	}

	for _, e := range entries {
		if _, dup := seenConstants[e.constant]; dup {
			return fmt.Errorf("constant %q: %w", e.constant, ErrDuplicateConstant)
		}
		if _, dup := c.constants.Get(e.constant); dup {
			return fmt.Errorf("constant %q: %w", e.constant, ErrDuplicateConstant)
		}
		seenConstants[e.constant] = struct{}{}

		if _, dup := seenValues[e.value]; dup {
			return fmt.Errorf("value %v: %w", e.value, ErrDuplicateValue)
		}
		if _, dup := c.values.Get(e.value); dup {
			return fmt.Errorf("value %v: %w", e.value, ErrDuplicateValue)
		}
		seenValues[e.value] = struct{}{}

		if c.uniqueDisplays {
			if _, dup := seenDisplays[e.display]; dup {
				return fmt.Errorf("display %v: %w", e.display, ErrDuplicateDisplay)
			}
			if _, dup := c.displays.Get(e.display); dup {
				return fmt.Errorf("display %v: %w", e.display, ErrDuplicateDisplay)
			}
			seenDisplays[e.display] = struct{}{}
		}
	}
	return nil
}

func (c *Choices) commit(entries []*Entry) {
	for _, e := range entries {
		c.entries = append(c.entries, e)
		c.constants.Set(e.constant, e)
		c.values.Set(e.value, e)
		c.displays.Set(e.display, e)
	}
}

// extendSubset grows (or creates) an owned subset with entries that were just
// committed to this container. addBatch has already validated the batch
// against the subset's indices, so the commit cannot collide.
func (c *Choices) extendSubset(name string, entries []*Entry) {
	if sub, ok := c.subsets[name]; ok {
		sub.commit(entries)
		return
	}
	sub := c.spawn(name)
	sub.commit(entries)
	c.registerSubset(name, sub)
}

func (c *Choices) registerSubset(name string, sub *Choices) {
	if c.subsets == nil {
		c.subsets = make(map[string]*Choices)
	}
	if _, exists := c.subsets[name]; !exists {
		c.subsetNames = append(c.subsetNames, name)
	}
	c.subsets[name] = sub
}

// Name returns the container's name. Empty unless the container is a
// registered subset or was named at construction.
func (c *Choices) Name() string {
	return c.name
}

// Len returns the number of entries.
func (c *Choices) Len() int {
	return len(c.entries)
}

// Entries returns the ordered entry list. The slice is the container's own
// and is read-only by convention.
func (c *Choices) Entries() []*Entry {
	return c.entries
}

// Constants returns the constant index view.
func (c *Choices) Constants() Map {
	return c.constants
}

// Values returns the value index view. Its keys are the legal stored values.
func (c *Choices) Values() Map {
	return c.values
}

// Displays returns the display index view. With the default permissive
// display policy, a colliding display maps to the last entry added with it.
func (c *Choices) Displays() Map {
	return c.displays
}

// ConstantNames returns the constants in entry insertion order.
func (c *Choices) ConstantNames() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.constant
	}
	return names
}

// ForConstant returns the entry with the given constant.
func (c *Choices) ForConstant(constant string) (*Entry, error) {
	if e, ok := c.constants.Get(constant); ok {
		return e, nil
	}
	return nil, fmt.Errorf("constant %q: %w%s", constant, ErrNotFound, c.suggestion(constant))
}

// ForValue returns the entry with the given stored value.
func (c *Choices) ForValue(value any) (*Entry, error) {
	if isComparable(value) {
		if e, ok := c.values.Get(value); ok {
			return e, nil
		}
	}
	return nil, fmt.Errorf("value %v: %w", value, ErrNotFound)
}

// ForDisplay returns the entry with the given display label.
func (c *Choices) ForDisplay(display any) (*Entry, error) {
	if isComparable(display) {
		if e, ok := c.displays.Get(display); ok {
			return e, nil
		}
	}
	return nil, fmt.Errorf("display %v: %w", display, ErrNotFound)
}

// HasConstant reports whether the constant is present.
func (c *Choices) HasConstant(constant string) bool {
	_, ok := c.constants.Get(constant)
	return ok
}

// HasValue reports whether the stored value is present.
func (c *Choices) HasValue(value any) bool {
	if !isComparable(value) {
		return false
	}
	_, ok := c.values.Get(value)
	return ok
}

// HasDisplay reports whether the display label is present.
func (c *Choices) HasDisplay(display any) bool {
	if !isComparable(display) {
		return false
	}
	_, ok := c.displays.Get(display)
	return ok
}

// Contains reports whether value is a legal stored value. It mirrors the
// membership test choices-field consumers perform.
func (c *Choices) Contains(value any) bool {
	return c.HasValue(value)
}

// Pairs returns a lazy, restartable sequence of (value, display) pairs in
// entry insertion order. This is the exact shape choices-field consumers
// expect.
func (c *Choices) Pairs() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, e := range c.entries {
			if !yield(e.value, e.display) {
				return
			}
		}
	}
}

// Choices returns the materialized (value, display) pairs in entry insertion
// order.
func (c *Choices) Choices() []Pair {
	pairs := make([]Pair, len(c.entries))
	for i, e := range c.entries {
		pairs[i] = e.Choice()
	}
	return pairs
}

// String renders the container as its entry triples.
func (c *Choices) String() string {
	return fmt.Sprint(c.entries)
}
