package expected

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful payload, or ErrWrongVariantAccess
	Value() (T, error)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFault defines an interface for outcomes that can hold a fault of type E
type WithFault[T, E any] interface {
	ValueProvider[T]
	// Err returns the fault payload, or ErrWrongVariantAccess
	Err() (E, error)
	// HasValue returns true if the success variant is populated
	HasValue() bool
}
