package interval

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidBounds is returned when an Interval is constructed with a lower bound that is greater than its upper
	// bound.
	ErrInvalidBounds = errors.New("lower bound is greater than upper bound")

	// ErrInvalidStep is returned when an Interval is constructed with a step that is not a positive increment.
	ErrInvalidStep = errors.New("step is not a positive increment")

	// ErrAmbiguousScalar is returned when a non-degenerate Interval is coerced into a single value.
	ErrAmbiguousScalar = errors.New("interval does not represent a single value")

	// ErrUnsupportedOperation is returned when an operation is requested that is not defined for the Interval's
	// domain (i.e. the length of a character interval).
	ErrUnsupportedOperation = errors.New("operation is not defined for this domain")

	// ErrIncompatibleType is returned when an operand can not be coerced into an Interval's domain without loss.
	ErrIncompatibleType = errors.New("operand can not be coerced into the interval's domain")

	// ErrIncomparable is returned when a strict or non-strict ordering is requested between two Intervals that are
	// neither ordered nor equal (i.e. overlapping or nested Intervals).
	ErrIncomparable = errors.New("intervals are not ordered")

	// ErrDisjointUnion is returned when the union of two Intervals that neither overlap nor touch is requested, as
	// the result would not be a single Interval.
	ErrDisjointUnion = errors.New("union of disjoint intervals is not a single interval")

	// ErrIndeterminateType is returned when the type of an Interval can not be inferred because both bounds are
	// unbounded.
	ErrIndeterminateType = errors.New("interval type can not be inferred from unbounded endpoints")

	// ErrIncompatibleBounds is returned when the two bound values that an Interval is inferred from belong to
	// incompatible domains.
	ErrIncompatibleBounds = errors.New("bound values belong to incompatible domains")

	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = errors.New("failed to parse bytes")
)
