package expected

import "reflect"

// CheckPair verifies that T and E are unrelated types, so that a value held
// by an outcome can never be interpreted as the other variant. The pair is
// refused when the two types are identical, or when a value of either type
// is assignable to the other (the interface/implementation case).
//
// The check depends only on the type parameters, never on values, so a pair
// accepted once is accepted always. Note that the empty interface is
// assignable from everything and therefore is never a valid variant type.
func CheckPair[T, E any]() error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	e := reflect.TypeOf((*E)(nil)).Elem()

	if t == e {
		return ErrInvalidVariantPair
	}
	if t.AssignableTo(e) || e.AssignableTo(t) {
		return ErrInvalidVariantPair
	}
	return nil
}
