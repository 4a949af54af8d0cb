package interval

import "github.com/cockroachdb/errors"

// Canonicalize rewrites a discrete Interval into an equivalent representation with the requested BoundTypes, moving
// bound values by whole steps so that the covered points never change: [1,4] over the integers becomes [1,5) when an
// open upper bound is requested and (0,7] is the open-lower form of [1,7]. It fails for continuous Intervals, whose
// bounds can not move without changing coverage. Empty Intervals are returned unchanged.
func (i *Interval) Canonicalize(lowerBoundType, upperBoundType BoundType) (result *Interval, err error) {
	if i.step == nil {
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s intervals without a step can not be canonicalized", i.intervalType)
	}
	if i.Empty() {
		return i, nil
	}

	lower, upper := i.normalizedEndPoints()

	if !lower.Unbounded() && !lowerBoundType.Inclusive() {
		lower = NewEndPoint(i.step.mustDecrement(lower.Value()), BoundTypeOpen)
	}
	if !upper.Unbounded() && !upperBoundType.Inclusive() {
		upper = NewEndPoint(i.step.mustIncrement(upper.Value()), BoundTypeOpen)
	}

	return &Interval{
		intervalType: i.intervalType,
		lower:        lower,
		upper:        upper,
		step:         i.step,
	}, nil
}

// Canonical returns the half-open canonical form [a, b) of a discrete Interval.
func (i *Interval) Canonical() (result *Interval, err error) {
	return i.Canonicalize(BoundTypeClosed, BoundTypeOpen)
}
