// Package join types: join kinds, functional options, sentinel errors.
package join

import (
	"errors"
	"fmt"
)

// Sentinel errors. ErrValidation and ErrUnknownVertex are the two error
// classes; the specific sentinels wrap ErrValidation so callers can
// classify with errors.Is at either granularity.
var (
	// ErrValidation is the class of all caller-input errors. Any error
	// wrapping it was raised before the graph was mutated.
	ErrValidation = errors.New("join: invalid input")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = fmt.Errorf("%w: graph is nil", ErrValidation)

	// ErrTableNil is returned for a nil caller table.
	ErrTableNil = fmt.Errorf("%w: table is nil", ErrValidation)

	// ErrMissingKeyColumn is returned when the caller table lacks the
	// identity column(s) of the active context.
	ErrMissingKeyColumn = fmt.Errorf("%w: missing identity column", ErrValidation)

	// ErrReservedColumn is returned when the caller table carries a
	// column name reserved for internal bookkeeping.
	ErrReservedColumn = fmt.Errorf("%w: reserved column name", ErrValidation)

	// ErrUnknownKind is returned for an unrecognized join kind.
	ErrUnknownKind = fmt.Errorf("%w: unknown join kind", ErrValidation)

	// ErrBadOn is returned when the "on" specification does not name the
	// identity key(s) of the active context.
	ErrBadOn = fmt.Errorf("%w: unsupported on specification", ErrValidation)

	// ErrBadSuffix is returned when the suffix pair cannot disambiguate
	// colliding columns.
	ErrBadSuffix = fmt.Errorf("%w: suffixes must be distinct", ErrValidation)

	// ErrUnknownVertex is returned when a right or outer edge join names
	// a vertex that is not present in the graph. Raised before mutation.
	ErrUnknownVertex = errors.New("join: vertex not present in graph")
)

// Kind selects the relational join semantics.
type Kind int

const (
	// Inner keeps matched rows only; unmatched existing entities are
	// deleted.
	Inner Kind = iota

	// Left keeps every existing entity; nothing is added or removed.
	Left

	// Right makes the result follow the caller table's cardinality and
	// order, deleting existing entities absent from it.
	Right

	// Outer keeps the union: existing entities are retained, caller-only
	// rows are appended as new entities.
	Outer
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Inner:
		return "inner"
	case Left:
		return "left"
	case Right:
		return "right"
	case Outer:
		return "outer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a kind name ("inner", "left", "right", "outer") onto a
// Kind. Unrecognized names yield ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "inner":
		return Inner, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "outer":
		return Outer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Default suffixes for colliding attribute names.
const (
	DefaultLSuffix = ".x"
	DefaultRSuffix = ".y"
)

// Option configures a Join call via functional arguments.
type Option func(*Options)

// Options holds the parameters of one Join call.
type Options struct {
	// Kind is the join semantics; defaults to Left.
	Kind Kind

	// On optionally names the join key column(s). Node joins must
	// include "name" and may add caller attribute columns; edge joins
	// accept only the "from"/"to" pair. When empty, node joins key on
	// every column both sides share.
	On []string

	// LSuffix and RSuffix disambiguate colliding attribute names coming
	// from the graph side and the caller side respectively.
	LSuffix string
	RSuffix string

	// err records an invalid option, surfaced when Join is invoked.
	err error
}

// DefaultOptions returns Options with Left semantics and ".x"/".y"
// suffixes.
func DefaultOptions() Options {
	return Options{
		Kind:    Left,
		LSuffix: DefaultLSuffix,
		RSuffix: DefaultRSuffix,
	}
}

// WithKind selects the join semantics.
func WithKind(k Kind) Option {
	return func(o *Options) {
		if k < Inner || k > Outer {
			o.err = fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
			return
		}
		o.Kind = k
	}
}

// WithOn names the join key column(s) explicitly. Node joins must list
// "name" (plus, optionally, shared attribute columns); edge joins only
// accept the "from"/"to" pair. Invalid specifications are rejected when
// Join runs.
func WithOn(cols ...string) Option {
	return func(o *Options) { o.On = cols }
}

// WithSuffixes sets the collision suffix pair. The two suffixes must
// differ, otherwise colliding columns would merge back into one name.
func WithSuffixes(lsuffix, rsuffix string) Option {
	return func(o *Options) {
		if lsuffix == rsuffix {
			o.err = fmt.Errorf("%w: %q", ErrBadSuffix, lsuffix)
			return
		}
		o.LSuffix = lsuffix
		o.RSuffix = rsuffix
	}
}
