package expected

import "errors"

var (
	// ErrInvalidVariantPair is returned when the success and fault types of
	// an outcome are related (identical, or one assignable to the other),
	// which would make variant discrimination by type ambiguous.
	ErrInvalidVariantPair = errors.New("expected: success and fault types are related")

	// ErrWrongVariantAccess is returned when an accessor is used for the
	// variant the outcome does not hold.
	ErrWrongVariantAccess = errors.New("expected: access to unpopulated variant")

	// ErrNilFault is returned when a fault-variant outcome is constructed
	// with an absent fault value.
	ErrNilFault = errors.New("expected: nil fault value")
)
