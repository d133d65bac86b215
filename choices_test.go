package choices

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mkStates builds the container used across most tests.
func mkStates(t *testing.T, opts ...Option) *Choices {
	t.Helper()
	states, err := New([]Tuple{
		{"ONLINE", 1, "Online"},
		{"DRAFT", 2, "Draft"},
		{"OFFLINE", 3, "Offline"},
	}, opts...)
	require.NoError(t, err)
	return states
}

// collectPairs drains a Pairs sequence.
func collectPairs(c *Choices) []Pair {
	var pairs []Pair
	for value, display := range c.Pairs() {
		pairs = append(pairs, Pair{Value: value, Display: display})
	}
	return pairs
}

func TestNew(t *testing.T) {
	states := mkStates(t)

	require.Equal(t, 3, states.Len())
	require.Empty(t, states.Name())
	require.Empty(t, states.SubsetNames())
}

func TestNew_Empty(t *testing.T) {
	empty, err := New(nil)

	require.NoError(t, err)
	require.Zero(t, empty.Len())
	require.Empty(t, collectPairs(empty))
}

func TestNew_SubsetName(t *testing.T) {
	states, err := New([]Tuple{
		{"ONLINE", 1, "Online"},
		{"DRAFT", 2, "Draft"},
	}, SubsetName("ALL"))
	require.NoError(t, err)

	all, ok := states.Subset("ALL")
	require.True(t, ok)
	require.Equal(t, []string{"ONLINE", "DRAFT"}, all.ConstantNames())
}

func TestChoices_Pairs(t *testing.T) {
	states := mkStates(t)

	want := []Pair{{1, "Online"}, {2, "Draft"}, {3, "Offline"}}
	require.Equal(t, want, collectPairs(states))
	// Restartable: a second pass yields the same sequence.
	require.Equal(t, want, collectPairs(states))
	require.Equal(t, want, states.Choices())
}

func TestChoices_PairsEarlyStop(t *testing.T) {
	states := mkStates(t)

	var first Pair
	for value, display := range states.Pairs() {
		first = Pair{Value: value, Display: display}
		break
	}
	require.Equal(t, Pair{Value: 1, Display: "Online"}, first)
}

func TestChoices_Contains(t *testing.T) {
	states := mkStates(t)

	require.True(t, states.Contains(1))
	require.False(t, states.Contains(42))
	require.False(t, states.Contains("Online"))
	require.False(t, states.Contains(nil))
}

func TestChoices_Lookups(t *testing.T) {
	states := mkStates(t)

	byConstant, err := states.ForConstant("DRAFT")
	require.NoError(t, err)
	byValue, err := states.ForValue(2)
	require.NoError(t, err)
	byDisplay, err := states.ForDisplay("Draft")
	require.NoError(t, err)

	require.Same(t, byConstant, byValue)
	require.Same(t, byConstant, byDisplay)
	require.Equal(t, 2, byConstant.Value().Raw())
}

func TestChoices_LookupMisses(t *testing.T) {
	states := mkStates(t)

	_, err := states.ForConstant("GONE")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = states.ForValue(42)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = states.ForDisplay("Gone")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = states.ForValue([]int{1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestChoices_Has(t *testing.T) {
	states := mkStates(t)

	require.True(t, states.HasConstant("ONLINE"))
	require.False(t, states.HasConstant("GONE"))
	require.True(t, states.HasValue(3))
	require.False(t, states.HasValue(42))
	require.True(t, states.HasDisplay("Offline"))
	require.False(t, states.HasDisplay("Gone"))
	require.False(t, states.HasValue([]int{1}))
}

func TestChoices_IndexViews(t *testing.T) {
	states := mkStates(t)

	require.Equal(t, []any{"ONLINE", "DRAFT", "OFFLINE"}, states.Constants().Keys())
	require.Equal(t, []any{1, 2, 3}, states.Values().Keys())
	require.Equal(t, []any{"Online", "Draft", "Offline"}, states.Displays().Keys())
	require.Equal(t, []string{"ONLINE", "DRAFT", "OFFLINE"}, states.ConstantNames())

	entry, ok := states.Values().Get(2)
	require.True(t, ok)
	require.Equal(t, "DRAFT", entry.Constant().Raw())
}

func TestAdd_Incremental(t *testing.T) {
	states := mkStates(t)

	err := states.Add(Tuple{"ARCHIVED", 4, "Archived"})
	require.NoError(t, err)

	require.Equal(t, 4, states.Len())
	require.True(t, states.Contains(4))
	require.Equal(t, []any{1, 2, 3, 4}, states.Values().Keys())
}

func TestAdd_DuplicateConstant(t *testing.T) {
	states := mkStates(t)

	err := states.Add(Tuple{"ONLINE", 9, "Other"})

	require.ErrorIs(t, err, ErrDuplicateConstant)
	require.Equal(t, 3, states.Len())
	// The container stays usable after a rejected batch.
	require.NoError(t, states.Add(Tuple{"ARCHIVED", 4, "Archived"}))
}

func TestAdd_DuplicateValue(t *testing.T) {
	states := mkStates(t)

	err := states.Add(Tuple{"OTHER", 1, "Other"})

	require.ErrorIs(t, err, ErrDuplicateValue)
	require.Equal(t, 3, states.Len())
}

func TestAdd_BatchAtomic(t *testing.T) {
	states := mkStates(t)

	// The first tuple is valid but the second collides; nothing lands.
	err := states.Add(
		Tuple{"ARCHIVED", 4, "Archived"},
		Tuple{"DRAFT", 5, "Other"},
	)

	require.ErrorIs(t, err, ErrDuplicateConstant)
	require.Equal(t, 3, states.Len())
	require.False(t, states.HasConstant("ARCHIVED"))
	require.False(t, states.Contains(4))
}

func TestAdd_IntraBatchDuplicates(t *testing.T) {
	states, err := New(nil)
	require.NoError(t, err)

	err = states.Add(Tuple{"A", 1, "a"}, Tuple{"A", 2, "b"})
	require.ErrorIs(t, err, ErrDuplicateConstant)

	err = states.Add(Tuple{"A", 1, "a"}, Tuple{"B", 1, "b"})
	require.ErrorIs(t, err, ErrDuplicateValue)

	require.Zero(t, states.Len())
}

func TestAdd_MalformedBatchAtomic(t *testing.T) {
	states := mkStates(t)

	err := states.Add(Tuple{"ARCHIVED", 4, "Archived"}, Tuple{"SHORT"})

	require.ErrorIs(t, err, ErrTupleSize)
	require.False(t, states.HasConstant("ARCHIVED"))
}

func TestChoices_DisplayCollisions(t *testing.T) {
	t.Run("permissive by default, last write wins", func(t *testing.T) {
		pair, err := New([]Tuple{
			{"FIRST", 1, "Same"},
			{"SECOND", 2, "Same"},
		})
		require.NoError(t, err)

		entry, lookupErr := pair.ForDisplay("Same")
		require.NoError(t, lookupErr)
		require.Equal(t, "SECOND", entry.Constant().Raw())
	})

	t.Run("unique displays option", func(t *testing.T) {
		_, err := New([]Tuple{
			{"FIRST", 1, "Same"},
			{"SECOND", 2, "Same"},
		}, UniqueDisplays())
		require.ErrorIs(t, err, ErrDuplicateDisplay)
	})

	t.Run("unique displays across batches", func(t *testing.T) {
		states := mkStates(t, UniqueDisplays())
		err := states.Add(Tuple{"OTHER", 4, "Online"})
		require.ErrorIs(t, err, ErrDuplicateDisplay)
		require.Equal(t, 3, states.Len())
	})
}

func TestAddEntries(t *testing.T) {
	states := mkStates(t)

	entry, err := NewEntry(Tuple{"ARCHIVED", 4, "Archived"})
	require.NoError(t, err)
	require.NoError(t, states.AddEntries(entry))

	got, err := states.ForConstant("ARCHIVED")
	require.NoError(t, err)
	require.Same(t, entry, got)
}

func TestAddEntries_Nil(t *testing.T) {
	states := mkStates(t)

	err := states.AddEntries(nil)

	require.ErrorIs(t, err, ErrBadDefinition)
	require.Equal(t, 3, states.Len())
}

func TestChoices_IndexMapOption(t *testing.T) {
	created := 0
	factory := func() Map {
		created++
		return NewOrderedMap()
	}

	states := mkStates(t, IndexMap(factory))
	require.Equal(t, 3, created)

	// Subsets inherit the injected strategy.
	_, err := states.AddSubset("SOME", []string{"DRAFT"})
	require.NoError(t, err)
	require.Equal(t, 6, created)
}

func TestChoices_MixedValueTypes(t *testing.T) {
	mixed, err := New([]Tuple{
		{"NUMBER", 1, "One"},
		{"TEXT", "one", "Uno"},
	})
	require.NoError(t, err)

	require.True(t, mixed.Contains(1))
	require.True(t, mixed.Contains("one"))

	entry, err := mixed.ForValue("one")
	require.NoError(t, err)
	require.Equal(t, "TEXT", entry.Constant().Raw())
}
