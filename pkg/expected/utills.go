package expected

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is absent: a nil interface value or a typed nil
// pointer. Used by Failure to reject empty fault values.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// GetErrors unwraps a joined error into its parts, or wraps a single error
// into a one-element slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or an
// exceeded deadline.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
