// Package estatus defines the status taxonomy every public operation in
// this module reports through, in place of ad-hoc error strings. Wrap with
// fmt.Errorf("%w: ...") for operation-specific context; callers that only
// care about the category can still errors.Is against these sentinels.
package estatus

import "errors"

var (
	// Success is never itself returned as an error; operations that
	// succeed return a nil error. It exists so call sites can name the
	// status explicitly in comments and tests.
	Success = error(nil)

	// VerificationFailure is a legitimate protocol outcome (a forged or
	// stale proof), not a programming error.
	ErrVerificationFailure = errors.New("verification failure")

	// ErrInvalidEncoding covers wrong compression flags or set reserved
	// bits in a serialized point.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrCoordinateOutOfRange covers a coordinate >= the field modulus.
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")

	ErrPointNotOnCurve = errors.New("point not on curve")

	ErrPointNotInSubgroup = errors.New("point not in prime-order subgroup")

	// ErrScalarOutOfRange covers a scalar >= the group order.
	ErrScalarOutOfRange = errors.New("scalar out of range")

	ErrInputsLengthMismatch = errors.New("input slice lengths do not match")

	ErrZeroSecretKey = errors.New("secret key is zero")
)
