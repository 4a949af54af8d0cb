package interval

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// EndPoint contains information about where Intervals start and end. It combines a bound value with a BoundType. A nil
// *EndPoint represents an unbounded side, which is always treated as non-inclusive (inclusivity is meaningless at
// infinity).
type EndPoint struct {
	value     Value
	boundType BoundType
}

// NewEndPoint creates a new EndPoint from the given details.
func NewEndPoint(value Value, boundType BoundType) *EndPoint {
	return &EndPoint{
		value:     value,
		boundType: boundType,
	}
}

// EndPointFromBytes unmarshals an EndPoint from a sequence of bytes.
func EndPointFromBytes(endPointBytes []byte) (endPoint *EndPoint, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(endPointBytes)
	if endPoint, err = EndPointFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse EndPoint from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// EndPointFromMarshalUtil unmarshals an EndPoint using a MarshalUtil (for easier unmarshalling).
func EndPointFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (endPoint *EndPoint, err error) {
	endPoint = &EndPoint{}
	if endPoint.value, err = ValueFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse Value from MarshalUtil")

		return
	}
	if endPoint.boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse BoundType from MarshalUtil")

		return
	}

	return
}

// Unbounded returns true if the EndPoint does not exist (the Interval extends indefinitely on this side).
func (e *EndPoint) Unbounded() bool {
	return e == nil || e.value == nil
}

// Inclusive returns true if the EndPoint value itself belongs to the Interval. Unbounded EndPoints are never
// inclusive.
func (e *EndPoint) Inclusive() bool {
	if e.Unbounded() {
		return false
	}

	return e.boundType.Inclusive()
}

// Value returns the Value of the EndPoint. It panics for unbounded EndPoints - check Unbounded() before calling this
// method.
func (e *EndPoint) Value() Value {
	if e.Unbounded() {
		panic("EndPoint is unbounded - check Unbounded() before calling this method")
	}

	return e.value
}

// BoundType returns the BoundType of the EndPoint. It panics for unbounded EndPoints - check Unbounded() before
// calling this method.
func (e *EndPoint) BoundType() BoundType {
	if e.Unbounded() {
		panic("EndPoint is unbounded - check Unbounded() before calling this method")
	}

	return e.boundType
}

// Bytes returns a marshaled version of the EndPoint.
func (e *EndPoint) Bytes() []byte {
	return marshalutil.New().
		Write(e.value).
		Write(e.boundType).
		Bytes()
}

// String returns a human-readable version of the EndPoint.
func (e *EndPoint) String() string {
	if e.Unbounded() {
		return "EndPoint(unbounded)"
	}

	return stringify.Struct("EndPoint",
		stringify.NewStructField("value", e.value),
		stringify.NewStructField("boundType", e.boundType),
	)
}

// compareLowerEndPoints orders two lower EndPoints. An unbounded side sorts first and ties between equal values are
// broken toward the inclusive (more permissive) bound.
func compareLowerEndPoints(a, b *EndPoint) int {
	if a.Unbounded() || b.Unbounded() {
		switch {
		case a.Unbounded() && b.Unbounded():
			return 0
		case a.Unbounded():
			return -1
		default:
			return 1
		}
	}

	if cmp := a.value.Compare(b.value); cmp != 0 {
		return cmp
	}

	switch {
	case a.Inclusive() == b.Inclusive():
		return 0
	case a.Inclusive():
		return -1
	default:
		return 1
	}
}

// compareUpperEndPoints orders two upper EndPoints. An unbounded side sorts last and ties between equal values are
// broken toward the inclusive (more permissive) bound.
func compareUpperEndPoints(a, b *EndPoint) int {
	if a.Unbounded() || b.Unbounded() {
		switch {
		case a.Unbounded() && b.Unbounded():
			return 0
		case a.Unbounded():
			return 1
		default:
			return -1
		}
	}

	if cmp := a.value.Compare(b.value); cmp != 0 {
		return cmp
	}

	switch {
	case a.Inclusive() == b.Inclusive():
		return 0
	case a.Inclusive():
		return 1
	default:
		return -1
	}
}

// endPointsEqual returns true if the two EndPoints of the same side agree on value and inclusivity.
func endPointsEqual(a, b *EndPoint) bool {
	if a.Unbounded() || b.Unbounded() {
		return a.Unbounded() && b.Unbounded()
	}

	return a.value.Compare(b.value) == 0 && a.Inclusive() == b.Inclusive()
}

// entirelyBefore reports whether an upper EndPoint lies strictly before a lower EndPoint, so that the two sides share
// no point.
func entirelyBefore(upper, lower *EndPoint) bool {
	if upper.Unbounded() || lower.Unbounded() {
		return false
	}

	if cmp := upper.value.Compare(lower.value); cmp != 0 {
		return cmp < 0
	}

	return !(upper.Inclusive() && lower.Inclusive())
}

// beforeOrTouching reports whether an upper EndPoint lies before a lower EndPoint, admitting a shared endpoint value.
func beforeOrTouching(upper, lower *EndPoint) bool {
	if upper.Unbounded() || lower.Unbounded() {
		return false
	}

	return upper.value.Compare(lower.value) <= 0
}
