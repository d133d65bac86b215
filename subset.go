package choices

import "fmt"

// ExtractSubset builds a standalone container holding exactly the entries for
// the given constants, in the given order. The entries are shared with the
// source; the result is not registered anywhere, and it is a full *Choices
// instance that can derive further subsets of its own.
//
// A subset is a snapshot: entries added to the source afterwards do not
// appear in it.
func (c *Choices) ExtractSubset(constants ...string) (*Choices, error) {
	entries, err := c.entriesFor(constants)
	if err != nil {
		return nil, err
	}
	sub := c.spawn("")
	if err := sub.addBatch(entries, ""); err != nil {
		return nil, err
	}
	return sub, nil
}

// AddSubset builds a subset like ExtractSubset and registers it on this
// container under the given name. Re-registering an existing name replaces
// the previous subset (last call wins); use AddToSubset for additive growth.
func (c *Choices) AddSubset(name string, constants []string) (*Choices, error) {
	if name == "" {
		return nil, fmt.Errorf("empty subset name: %w", ErrBadDefinition)
	}
	sub, err := c.ExtractSubset(constants...)
	if err != nil {
		return nil, err
	}
	sub.name = name
	c.registerSubset(name, sub)
	return sub, nil
}

// Subset returns the owned subset registered under name.
func (c *Choices) Subset(name string) (*Choices, bool) {
	sub, ok := c.subsets[name]
	return sub, ok
}

// SubsetNames returns the names of the owned subsets in registration order.
func (c *Choices) SubsetNames() []string {
	names := make([]string, len(c.subsetNames))
	copy(names, c.subsetNames)
	return names
}

// entriesFor resolves constants to their shared entries, in request order.
func (c *Choices) entriesFor(constants []string) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(constants))
	for _, constant := range constants {
		e, ok := c.constants.Get(constant)
		if !ok {
			return nil, fmt.Errorf("constant %q: %w%s", constant, ErrUnknownConstant, c.suggestion(constant))
		}
		entries = append(entries, e)
	}
	return entries, nil
}
