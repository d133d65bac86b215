package choices

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Map is the mapping strategy backing the three lookup indices. Indices are
// append-only, so the contract has no deletion. Keys returns the keys in the
// backing's own iteration order, which defines the order of the index views.
type Map interface {
	Get(key any) (*Entry, bool)
	Set(key any, entry *Entry)
	Len() int
	Keys() []any
}

// MapFactory creates an empty index Map. The factory is resolved once at
// construction time and inherited by derived subsets.
type MapFactory func() Map

// NewOrderedMap is the default MapFactory: an insertion-ordered map.
func NewOrderedMap() Map {
	return &orderedIndex{inner: orderedmap.New[any, *Entry]()}
}

type orderedIndex struct {
	inner *orderedmap.OrderedMap[any, *Entry]
}

func (i *orderedIndex) Get(key any) (*Entry, bool) {
	return i.inner.Get(key)
}

func (i *orderedIndex) Set(key any, entry *Entry) {
	i.inner.Set(key, entry)
}

func (i *orderedIndex) Len() int {
	return i.inner.Len()
}

func (i *orderedIndex) Keys() []any {
	keys := make([]any, 0, i.inner.Len())
	for pair := i.inner.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
