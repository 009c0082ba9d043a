package expected

import (
	"time"

	"github.com/google/uuid"
)

// Expected is a two-variant container holding exactly one of a success value
// of type T or a fault value of type E. The populated variant is tracked by
// an explicit tag, so T may be a zero value or a nil-able type without
// making the outcome ambiguous.
//
// Values are immutable once constructed and safe to share across goroutines.
type Expected[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	fault     E
	hasValue  bool
}

// Success constructs a success-variant outcome holding v.
// It fails with ErrInvalidVariantPair when T and E are related types
// (see CheckPair).
func Success[T, E any](v T) (Expected[T, E], error) {
	if err := CheckPair[T, E](); err != nil {
		return Expected[T, E]{}, err
	}
	return Expected[T, E]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}, nil
}

// Failure constructs a fault-variant outcome holding e.
// It fails with ErrInvalidVariantPair when T and E are related types,
// and with ErrNilFault when e is absent (nil interface or nil pointer).
func Failure[T, E any](e E) (Expected[T, E], error) {
	if err := CheckPair[T, E](); err != nil {
		return Expected[T, E]{}, err
	}
	if IsNil(e) {
		return Expected[T, E]{}, ErrNilFault
	}
	return Expected[T, E]{
		fault:     e,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}, nil
}

// MustSuccess is the panic-on-error variant of Success, for variant pairs
// that are statically known to be unrelated.
func MustSuccess[T, E any](v T) Expected[T, E] {
	x, err := Success[T, E](v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustFailure is the panic-on-error variant of Failure.
func MustFailure[T, E any](e E) Expected[T, E] {
	x, err := Failure[T, E](e)
	if err != nil {
		panic(err)
	}
	return x
}

// HasValue reports whether the success variant is populated.
func (x Expected[T, E]) HasValue() bool {
	return x.hasValue
}

// Value returns the success payload. It fails with ErrWrongVariantAccess
// when the fault variant is populated.
func (x Expected[T, E]) Value() (T, error) {
	if !x.hasValue {
		var zero T
		return zero, ErrWrongVariantAccess
	}
	return x.value, nil
}

// Err returns the fault payload. It fails with ErrWrongVariantAccess
// when the success variant is populated.
func (x Expected[T, E]) Err() (E, error) {
	if x.hasValue {
		var zero E
		return zero, ErrWrongVariantAccess
	}
	return x.fault, nil
}

// ValueOr returns the success payload when present, def otherwise.
func (x Expected[T, E]) ValueOr(def T) T {
	if x.hasValue {
		return x.value
	}
	return def
}

// CreatedAt returns the outcome creation time (UTC).
func (x Expected[T, E]) CreatedAt() time.Time {
	return x.createdAt
}

// ID returns the unique identity assigned at construction.
func (x Expected[T, E]) ID() uuid.UUID {
	return x.id
}
