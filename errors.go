package choices

import "errors"

// Population errors, returned by New and the Add family. A failed batch is
// rejected whole: the container keeps its prior state.
var (
	ErrDuplicateConstant = errors.New("duplicate constant")
	ErrDuplicateValue    = errors.New("duplicate value")
	ErrDuplicateDisplay  = errors.New("duplicate display")
)

// Definition errors, returned when a raw tuple cannot become an Entry.
var (
	ErrTupleSize         = errors.New("wrong number of fields in choice tuple")
	ErrBadConstant       = errors.New("choice constant must be a string")
	ErrBadAttributes     = errors.New("extra attributes must be a map[string]any")
	ErrReservedAttribute = errors.New("extra attribute name is reserved")
	ErrBadDefinition     = errors.New("unsupported choice definition")
	ErrNotComparable     = errors.New("field is not comparable")
)

// Nil sentinel errors. nil means "derive this field" inside the auto
// constructors and is illegal everywhere else.
var (
	ErrNilValue   = errors.New("nil value is reserved for auto-derivation")
	ErrNilDisplay = errors.New("nil display is reserved for auto-derivation")
)

// Lookup errors.
var (
	// ErrNotFound is returned by ForConstant/ForValue/ForDisplay on a miss.
	ErrNotFound = errors.New("no matching choice entry")
	// ErrUnknownConstant is returned by subset derivation when a requested
	// constant is absent from the source container.
	ErrUnknownConstant = errors.New("constant not present in choices")
)
