// Package expected provides Expected[T, E], an immutable two-variant
// container holding exactly one of a success value or a fault value,
// discriminated by an explicit tag.
//
// Construction refuses variant pairs whose types are related (CheckPair),
// so a held value can never be read back as the wrong variant. Accessors
// for the unpopulated variant fail with ErrWrongVariantAccess instead of
// returning a zero value silently.
//
// Key operations:
// - Success/Failure: construct an outcome (MustSuccess/MustFailure panic forms)
// - HasValue/Value/Err: inspect the held variant
// - ValueOr: extract with a default, never fails
package expected
