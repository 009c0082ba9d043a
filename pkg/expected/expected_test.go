package expected

import (
	"errors"
	"testing"
)

func TestSuccess_HoldsValue(t *testing.T) {
	t.Parallel()

	x, err := Success[int, error](42)
	if err != nil {
		t.Fatalf("expected construction to pass, got: %v", err)
	}
	if !x.HasValue() {
		t.Fatalf("expected success variant")
	}
	v, err := x.Value()
	if err != nil {
		t.Fatalf("expected value access to pass, got: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}

func TestFailure_HoldsFault(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	x, err := Failure[int, error](boom)
	if err != nil {
		t.Fatalf("expected construction to pass, got: %v", err)
	}
	if x.HasValue() {
		t.Fatalf("expected fault variant")
	}
	e, err := x.Err()
	if err != nil {
		t.Fatalf("expected fault access to pass, got: %v", err)
	}
	if !errors.Is(e, boom) {
		t.Fatalf("expected %v, got %v", boom, e)
	}
}

func TestFailure_NilFaultRefused(t *testing.T) {
	t.Parallel()

	if _, err := Failure[int, error](nil); !errors.Is(err, ErrNilFault) {
		t.Fatalf("expected ErrNilFault, got: %v", err)
	}

	var typedNil *testFault
	if _, err := Failure[int, *testFault](typedNil); !errors.Is(err, ErrNilFault) {
		t.Fatalf("expected ErrNilFault for typed nil, got: %v", err)
	}
}

func TestValue_WrongVariantAccess(t *testing.T) {
	t.Parallel()

	x := MustFailure[int, error](errors.New("boom"))
	if _, err := x.Value(); !errors.Is(err, ErrWrongVariantAccess) {
		t.Fatalf("expected ErrWrongVariantAccess, got: %v", err)
	}
}

func TestErr_WrongVariantAccess(t *testing.T) {
	t.Parallel()

	x := MustSuccess[int, error](1)
	if _, err := x.Err(); !errors.Is(err, ErrWrongVariantAccess) {
		t.Fatalf("expected ErrWrongVariantAccess, got: %v", err)
	}
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	if got := MustSuccess[int, error](7).ValueOr(-1); got != 7 {
		t.Fatalf("expected held value 7, got %d", got)
	}
	if got := MustFailure[int, error](errors.New("x")).ValueOr(-1); got != -1 {
		t.Fatalf("expected default -1, got %d", got)
	}
}

func TestIdentity_AssignedOnConstruction(t *testing.T) {
	t.Parallel()

	a := MustSuccess[int, error](1)
	b := MustSuccess[int, error](1)
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct ids")
	}
	if a.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

type testFault struct{ msg string }

func (f *testFault) Error() string { return f.msg }
