package result

import (
	"fmt"

	"github.com/outcome-kit/expected/pkg/expected"
)

// Category is the coarse classification of a Fault, used by transport
// adapters to pick a wire-level status. It says nothing about the cause
// itself, which stays opaque.
type Category string

const (
	// CategoryGeneral is the fallback for unclassified application faults.
	CategoryGeneral Category = "general"

	// CategoryNotFound marks lookups whose target does not exist.
	CategoryNotFound Category = "not_found"

	// CategoryUnauthorized marks callers without established identity.
	CategoryUnauthorized Category = "unauthorized"

	// CategoryForbidden marks authenticated callers lacking permission.
	CategoryForbidden Category = "forbidden"

	// CategoryCanceled marks work stopped by caller cancellation.
	CategoryCanceled Category = "canceled"

	// CategoryTimeout marks work that exceeded its time budget.
	CategoryTimeout Category = "timeout"

	// CategoryInternal marks unclassified server-side failures.
	CategoryInternal Category = "internal"
)

// Fault is the diagnostic error payload carried by every Result. It holds a
// coarse Category for transport classification, a human-readable Message,
// and an optional wrapped Cause for errors.Is / errors.As chains.
//
// Mutation helpers return a shallow copy; Fault values can be shared freely.
type Fault struct {
	Category Category
	Message  string
	Cause    error
}

// NewFault constructs a Fault with the given category and message.
func NewFault(cat Category, msg string) *Fault {
	return &Fault{Category: cat, Message: msg}
}

// Faultf constructs a Fault with a formatted message.
func Faultf(cat Category, format string, args ...any) *Fault {
	return &Fault{Category: cat, Message: fmt.Sprintf(format, args...)}
}

// FromError wraps an arbitrary error into a Fault. Context cancellation and
// deadline errors classify as CategoryCanceled; everything else is general.
// A *Fault passes through unchanged.
func FromError(err error) *Fault {
	if err == nil {
		return nil
	}
	if f, ok := err.(*Fault); ok {
		return f
	}
	cat := CategoryGeneral
	if expected.IsCancellation(err) {
		cat = CategoryCanceled
	}
	return &Fault{Category: cat, Message: err.Error(), Cause: err}
}

// Error implements the built-in error interface as "<category>: <message>".
func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", f.Category, f.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (f *Fault) Unwrap() error { return f.Cause }

// WithCause returns a shallow copy of f with the given cause attached.
// A nil err returns f unchanged.
func (f *Fault) WithCause(err error) *Fault {
	if err == nil {
		return f
	}
	cp := *f
	cp.Cause = err
	return &cp
}

// WithMessage returns a shallow copy of f with a replaced message.
func (f *Fault) WithMessage(msg string) *Fault {
	cp := *f
	cp.Message = msg
	return &cp
}
