// Package choices implements an enumeration container that keeps three
// mutually-lookupable identities per member: a symbolic constant name, a
// stored value (e.g. a database code), and a human-facing display label,
// plus arbitrary extra named attributes.
//
// # Core Types
//
// Entry represents one member. Its Constant/Value/Display accessors return a
// Field, a projection of the owning entry that exposes the same three
// accessors again, so lookups chain indefinitely:
//
//	states.ForValue(1) -> entry
//	entry.Constant().Display().Raw() -> "Online"
//
// Choices is the container. It owns an ordered entry list and three lookup
// indices (by constant, by value, by display), supports incremental batch
// population via Add, and membership/iteration in the shape expected by
// choices-field consumers: Pairs yields (value, display) in insertion order.
//
// # Subsets
//
// AddSubset registers a named subset on the parent; ExtractSubset returns a
// standalone one. A subset is a full *Choices instance sharing its entries
// with the parent, and can itself derive further subsets.
//
// # Auto-Derivation
//
// NewAuto builds a container from bare constant names, deriving value and
// display from the constant; NewAutoDisplay derives only the display. Both
// delegate to the normal population path, so every uniqueness invariant still
// applies to the derived fields. A nil value or display in a definition means
// "derive this field"; outside the auto constructors nil is rejected.
//
// # Concurrency
//
// Containers are meant to be built once at init time and published read-only.
// There is no internal locking; callers mutating a shared instance after
// publishing it must synchronize externally.
package choices
