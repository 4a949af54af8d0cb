package interval

import (
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// region Interval /////////////////////////////////////////////////////////////////////////////////////////////////////

// Interval defines the boundaries around a contiguous span of Values (i.e. "integers from 1 to 100 inclusive").
//
// Each side may be bounded or unbounded. If bounded, there is an associated EndPoint value and the Interval is
// considered to be either open (does not include the EndPoint) or closed (includes the EndPoint) on that side.
//
// With three possibilities on each side, this yields nine basic kinds of Intervals, enumerated below:
//
// Notation      Definition          Factory method
// (a, b)        {x | a < x < b}     Open
// [a, b]        {x | a <= x <= b}   Closed
// (a, b]        {x | a < x <= b}    OpenClosed
// [a, b)        {x | a <= x < b}    ClosedOpen
// (a, )         {x | x > a}         GreaterThan
// [a, )         {x | x >= a}        AtLeast
// (, b)         {x | x < b}         LessThan
// (, b]         {x | x <= b}        AtMost
// (, )          {x}                 All
//
// The upper EndPoint may not be less than the lower one. Intervals over a discrete domain are normalized at
// construction: open bounds are folded onto the nearest covered grid point and become closed, so [2,4] and (1,5)
// over the integers are the same Interval.
//
// Intervals are immutable - every operation returns a new instance - and are therefore safe to share between
// goroutines without synchronization.
type Interval struct {
	intervalType Type
	lower        *EndPoint
	upper        *EndPoint
	step         *Step
}

// newInterval validates and normalizes the given bounds into an Interval. A raw lower bound greater than the raw
// upper bound fails; a discrete Interval whose bounds round past each other (no grid point is covered, i.e. "(1,1]")
// collapses into a canonical empty Interval instead.
func newInterval(intervalType Type, lower, upper *EndPoint, step *Step) (result *Interval, err error) {
	if step == nil {
		step = defaultStep(intervalType)
	}

	if !lower.Unbounded() && !upper.Unbounded() && lower.Value().Compare(upper.Value()) > 0 {
		return nil, errors.Wrapf(ErrInvalidBounds, "%s > %s", lower.Value(), upper.Value())
	}

	if step != nil {
		discretizedLower, discretizedUpper := lower, upper
		if !lower.Unbounded() {
			discretizedLower = step.discretizeLower(lower)
		}
		if !upper.Unbounded() {
			discretizedUpper = step.discretizeUpper(upper)
		}

		if !discretizedLower.Unbounded() && !discretizedUpper.Unbounded() &&
			discretizedLower.Value().Compare(discretizedUpper.Value()) > 0 {
			return newCanonicalEmpty(intervalType, lower.Value(), step), nil
		}

		lower, upper = discretizedLower, discretizedUpper
	}

	return &Interval{
		intervalType: intervalType,
		lower:        lower,
		upper:        upper,
		step:         step,
	}, nil
}

// newCanonicalEmpty builds the canonical representation of an Interval that covers no point: both EndPoints open at
// the same value.
func newCanonicalEmpty(intervalType Type, at Value, step *Step) *Interval {
	return &Interval{
		intervalType: intervalType,
		lower:        NewEndPoint(at, BoundTypeOpen),
		upper:        NewEndPoint(at, BoundTypeOpen),
		step:         step,
	}
}

// FromBytes unmarshals an Interval from a sequence of bytes.
func FromBytes(intervalBytes []byte) (result *Interval, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(intervalBytes)
	if result, err = FromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse Interval from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals an Interval using a MarshalUtil (for easier unmarshalling).
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (result *Interval, err error) {
	result = &Interval{}
	if result.intervalType, err = TypeFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse Type from MarshalUtil")

		return
	}

	hasStep, err := marshalUtil.ReadBool()
	if err != nil {
		err = errors.Wrapf(ErrParseBytesFailed, "failed to read step flag: %s", err)

		return
	}
	if hasStep {
		if result.step, err = StepFromMarshalUtil(marshalUtil); err != nil {
			err = errors.Wrap(err, "failed to parse Step from MarshalUtil")

			return
		}
	}

	if result.lower, err = optionalEndPointFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse lower EndPoint from MarshalUtil")

		return
	}
	if result.upper, err = optionalEndPointFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse upper EndPoint from MarshalUtil")

		return
	}

	if !result.lower.Unbounded() && !result.upper.Unbounded() &&
		result.lower.Value().Compare(result.upper.Value()) > 0 {
		return nil, errors.Wrapf(ErrParseBytesFailed, "lower bound %s is greater than upper bound %s", result.lower.Value(), result.upper.Value())
	}

	return
}

// optionalEndPointFromMarshalUtil unmarshals an EndPoint that is preceded by an existence flag.
func optionalEndPointFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (endPoint *EndPoint, err error) {
	exists, err := marshalUtil.ReadBool()
	if err != nil {
		return nil, errors.Wrapf(ErrParseBytesFailed, "failed to read EndPoint flag: %s", err)
	}
	if !exists {
		return nil, nil
	}

	return EndPointFromMarshalUtil(marshalUtil)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region accessors and properties /////////////////////////////////////////////////////////////////////////////////////

// Type returns the value domain of the Interval.
func (i *Interval) Type() Type {
	return i.intervalType
}

// Step returns the discretization grid of the Interval or nil for continuous domains.
func (i *Interval) Step() *Step {
	return i.step
}

// HasLowerBound returns true if the Interval has a lower EndPoint.
func (i *Interval) HasLowerBound() bool {
	return !i.lower.Unbounded()
}

// HasUpperBound returns true if the Interval has an upper EndPoint.
func (i *Interval) HasUpperBound() bool {
	return !i.upper.Unbounded()
}

// LowerEndPoint returns the lower EndPoint of the Interval or nil if it is unbounded.
func (i *Interval) LowerEndPoint() *EndPoint {
	return i.lower
}

// UpperEndPoint returns the upper EndPoint of the Interval or nil if it is unbounded.
func (i *Interval) UpperEndPoint() *EndPoint {
	return i.upper
}

// LowerBoundType returns the BoundType of the Interval's lower EndPoint. It panics if the Interval is unbounded on
// that side - check HasLowerBound() before calling this method.
func (i *Interval) LowerBoundType() BoundType {
	return i.lower.BoundType()
}

// UpperBoundType returns the BoundType of the Interval's upper EndPoint. It panics if the Interval is unbounded on
// that side - check HasUpperBound() before calling this method.
func (i *Interval) UpperBoundType() BoundType {
	return i.upper.BoundType()
}

// Empty returns true if the Interval covers no point at all (a single-point span with at least one open side).
// Emptiness is a coverage property, not a size property: a single-point closed Interval is not empty.
func (i *Interval) Empty() bool {
	if i.lower.Unbounded() || i.upper.Unbounded() {
		return false
	}

	return i.lower.Value().Compare(i.upper.Value()) == 0 && !(i.lower.Inclusive() && i.upper.Inclusive())
}

// Degenerate returns true if the Interval covers exactly one point (both EndPoints closed at the same value).
func (i *Interval) Degenerate() bool {
	lower, upper := i.normalizedEndPoints()
	if lower.Unbounded() || upper.Unbounded() {
		return false
	}

	return lower.Value().Compare(upper.Value()) == 0 && lower.Inclusive() && upper.Inclusive()
}

// Open returns true if neither EndPoint belongs to the Interval.
func (i *Interval) Open() bool {
	return !i.lower.Inclusive() && !i.upper.Inclusive()
}

// Closed returns true if both EndPoints belong to the Interval.
func (i *Interval) Closed() bool {
	return i.lower.Inclusive() && i.upper.Inclusive()
}

// Length returns the difference between the two bound values in the domain's own arithmetic (a day count for date
// Intervals, a second count for datetime Intervals). It fails for unbounded Intervals and for domains without
// subtraction.
func (i *Interval) Length() (length Value, err error) {
	lower, upper := i.normalizedEndPoints()
	if lower.Unbounded() || upper.Unbounded() {
		return nil, errors.Wrap(ErrUnsupportedOperation, "unbounded intervals have no length")
	}

	switch typeCastedUpper := upper.Value().(type) {
	case DateValue:
		return IntValue(dayNumber(typeCastedUpper) - dayNumber(lower.Value().(DateValue))), nil
	case DateTimeValue:
		return FloatValue(typeCastedUpper.time.Sub(lower.Value().(DateTimeValue).time).Seconds()), nil
	default:
		return subValues(upper.Value(), lower.Value())
	}
}

// Radius returns half the Length of the Interval as a float64.
func (i *Interval) Radius() (radius float64, err error) {
	length, err := i.Length()
	if err != nil {
		return 0, err
	}

	lengthAsFloat, err := valueAsFloat(length)
	if err != nil {
		return 0, err
	}

	return lengthAsFloat / 2, nil
}

// Centre returns the midpoint of the Interval: a FloatValue for integer and float Intervals, a DecimalValue for
// decimal ones and the middle instant for calendar ones.
func (i *Interval) Centre() (centre Value, err error) {
	lower, upper := i.normalizedEndPoints()
	if lower.Unbounded() || upper.Unbounded() {
		return nil, errors.Wrap(ErrUnsupportedOperation, "unbounded intervals have no centre")
	}

	switch typeCastedLower := lower.Value().(type) {
	case IntValue:
		return FloatValue((float64(typeCastedLower) + float64(upper.Value().(IntValue))) / 2), nil
	case FloatValue:
		return FloatValue((float64(typeCastedLower) + float64(upper.Value().(FloatValue))) / 2), nil
	case DecimalValue:
		sum := typeCastedLower.Decimal.Add(upper.Value().(DecimalValue).Decimal)

		return NewDecimalValue(sum.DivRound(two, decimalCentrePrecision)), nil
	case DateValue:
		return midpointInstant(typeCastedLower.time, upper.Value().(DateValue).time), nil
	case DateTimeValue:
		return midpointInstant(typeCastedLower.time, upper.Value().(DateTimeValue).time), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s intervals have no centre", i.intervalType)
	}
}

// SingleValue coerces the Interval into the single point it covers. It fails with ErrAmbiguousScalar unless the
// Interval is degenerate.
func (i *Interval) SingleValue() (value Value, err error) {
	if !i.Degenerate() {
		return nil, errors.Wrapf(ErrAmbiguousScalar, "%s covers more or less than one point", i)
	}

	lower, _ := i.normalizedEndPoints()

	return lower.Value(), nil
}

// normalizedEndPoints returns the EndPoints folded onto the discretization grid. Intervals are normalized at
// construction, so this only does work for representations produced by Canonicalize.
func (i *Interval) normalizedEndPoints() (lower, upper *EndPoint) {
	lower, upper = i.lower, i.upper
	if i.step == nil || i.Empty() {
		return
	}

	if !lower.Unbounded() {
		lower = i.step.discretizeLower(lower)
	}
	if !upper.Unbounded() {
		upper = i.step.discretizeUpper(upper)
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region comparisons and containment //////////////////////////////////////////////////////////////////////////////////

// Equal returns true if the other operand covers exactly the same points in the same domain. Intervals of different
// Types are never equal, even with numerically identical bounds. The operand is coerced like any other right-hand
// operand; operands that can not be coerced are simply unequal.
func (i *Interval) Equal(operand any) (equal bool) {
	other, err := i.Coerce(operand)
	if err != nil {
		return false
	}
	if i.intervalType != other.intervalType {
		return false
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	return endPointsEqual(lower, otherLower) && endPointsEqual(upper, otherUpper)
}

// Less returns true if the Interval lies entirely left of the operand. Intervals that are neither ordered nor equal
// (overlapping or nested ones) fail with ErrIncomparable.
func (i *Interval) Less(operand any) (isLess bool, err error) {
	other, err := i.comparableOperand(operand)
	if err != nil {
		return false, err
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	switch {
	case entirelyBefore(upper, otherLower):
		return true, nil
	case entirelyBefore(otherUpper, lower):
		return false, nil
	case i.Equal(other):
		return false, nil
	case beforeOrTouching(upper, otherLower) || beforeOrTouching(otherUpper, lower):
		return false, nil
	default:
		return false, errors.Wrapf(ErrIncomparable, "%s and %s overlap", i, other)
	}
}

// LessOrEqual returns true if the Interval lies left of the operand or equals it, admitting a shared endpoint value.
// Intervals that are neither ordered nor equal fail with ErrIncomparable.
func (i *Interval) LessOrEqual(operand any) (isLessOrEqual bool, err error) {
	other, err := i.comparableOperand(operand)
	if err != nil {
		return false, err
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	switch {
	case i.Equal(other):
		return true, nil
	case beforeOrTouching(upper, otherLower):
		return true, nil
	case beforeOrTouching(otherUpper, lower):
		return false, nil
	default:
		return false, errors.Wrapf(ErrIncomparable, "%s and %s overlap", i, other)
	}
}

// Greater returns true if the Interval lies entirely right of the operand. Intervals that are neither ordered nor
// equal fail with ErrIncomparable.
func (i *Interval) Greater(operand any) (isGreater bool, err error) {
	other, err := i.comparableOperand(operand)
	if err != nil {
		return false, err
	}

	return other.Less(i)
}

// GreaterOrEqual returns true if the Interval lies right of the operand or equals it, admitting a shared endpoint
// value. Intervals that are neither ordered nor equal fail with ErrIncomparable.
func (i *Interval) GreaterOrEqual(operand any) (isGreaterOrEqual bool, err error) {
	other, err := i.comparableOperand(operand)
	if err != nil {
		return false, err
	}

	return other.LessOrEqual(i)
}

// Contains returns true if the operand lies fully within the Interval's bounds: the Interval's bound must be at
// least as permissive as the operand's on both sides, so (2,3) is contained in [2,3] but [2,3] is not contained
// in (2,3).
func (i *Interval) Contains(operand any) (contains bool, err error) {
	other, err := i.comparableOperand(operand)
	if err != nil {
		return false, err
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	return compareLowerEndPoints(lower, otherLower) <= 0 && compareUpperEndPoints(otherUpper, upper) <= 0, nil
}

// comparableOperand coerces the operand and ensures that it lives in the same domain as the Interval.
func (i *Interval) comparableOperand(operand any) (other *Interval, err error) {
	if other, err = i.Coerce(operand); err != nil {
		return nil, err
	}
	if i.intervalType != other.intervalType {
		return nil, errors.Wrapf(ErrIncompatibleType, "can not relate %s and %s intervals", i.intervalType, other.intervalType)
	}

	return other, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region arithmetic and set operations ////////////////////////////////////////////////////////////////////////////////

// Add returns the boundwise sum of the Interval and the operand (the Minkowski sum): lower+lower, upper+upper, each
// side closed only if both contributing bounds are. Mixed numeric domains promote to the wider one; non-numeric
// domains fail with ErrUnsupportedOperation.
func (i *Interval) Add(operand any) (result *Interval, err error) {
	other, promoted, err := i.arithmeticOperand(operand)
	if err != nil {
		return nil, err
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	resultLower, err := combineEndPoints(lower, otherLower, promoted, addValues)
	if err != nil {
		return nil, err
	}
	resultUpper, err := combineEndPoints(upper, otherUpper, promoted, addValues)
	if err != nil {
		return nil, err
	}

	return newInterval(promoted, resultLower, resultUpper, i.carriedStep(promoted))
}

// Sub returns the boundwise difference of the Interval and the operand (the Minkowski difference): the operand's
// upper bound is subtracted from the lower bound and vice versa.
func (i *Interval) Sub(operand any) (result *Interval, err error) {
	other, promoted, err := i.arithmeticOperand(operand)
	if err != nil {
		return nil, err
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	resultLower, err := combineEndPoints(lower, otherUpper, promoted, subValues)
	if err != nil {
		return nil, err
	}
	resultUpper, err := combineEndPoints(upper, otherLower, promoted, subValues)
	if err != nil {
		return nil, err
	}

	return newInterval(promoted, resultLower, resultUpper, i.carriedStep(promoted))
}

// Intersect returns the Interval covering the points that both operands cover. Disjoint operands yield an empty
// Interval rather than an error - "no overlap" is itself a legitimate interval state.
func (i *Interval) Intersect(operand any) (result *Interval, err error) {
	other, err := i.comparableOperand(operand)
	if err != nil {
		return nil, err
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	if compareLowerEndPoints(otherLower, lower) > 0 {
		lower = otherLower
	}
	if compareUpperEndPoints(otherUpper, upper) < 0 {
		upper = otherUpper
	}

	if !lower.Unbounded() && !upper.Unbounded() && lower.Value().Compare(upper.Value()) > 0 {
		return newCanonicalEmpty(i.intervalType, lower.Value(), i.step), nil
	}

	return newInterval(i.intervalType, lower, upper, i.step)
}

// Union returns the single Interval covering the points of both operands. It is only defined when the operands
// overlap or touch with complementary bounds (over a discrete domain also when their grids are adjacent); anything
// else fails with ErrDisjointUnion.
func (i *Interval) Union(operand any) (result *Interval, err error) {
	other, err := i.comparableOperand(operand)
	if err != nil {
		return nil, err
	}

	if i.Empty() {
		return other, nil
	}
	if other.Empty() {
		return i, nil
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	if entirelyBefore(upper, otherLower) && !connectableEndPoints(upper, otherLower, i.step) {
		return nil, errors.Wrapf(ErrDisjointUnion, "%s and %s neither overlap nor touch", i, other)
	}
	if entirelyBefore(otherUpper, lower) && !connectableEndPoints(otherUpper, lower, i.step) {
		return nil, errors.Wrapf(ErrDisjointUnion, "%s and %s neither overlap nor touch", i, other)
	}

	return newInterval(i.intervalType, minLowerEndPoint(lower, otherLower), maxUpperEndPoint(upper, otherUpper), i.step)
}

// Inf returns the greatest lower bound of the two operands: the tightest common portion, which is the intersection
// (and therefore empty when the operands are disjoint).
func (i *Interval) Inf(operand any) (result *Interval, err error) {
	return i.Intersect(operand)
}

// Sup returns the least upper bound of the two operands: the smallest Interval containing both. Unlike Union it is
// always defined, since the convex hull of two disjoint Intervals is still a single Interval.
func (i *Interval) Sup(operand any) (result *Interval, err error) {
	other, err := i.comparableOperand(operand)
	if err != nil {
		return nil, err
	}

	lower, upper := i.normalizedEndPoints()
	otherLower, otherUpper := other.normalizedEndPoints()

	return newInterval(i.intervalType, minLowerEndPoint(lower, otherLower), maxUpperEndPoint(upper, otherUpper), i.step)
}

// arithmeticOperand coerces the operand and determines the promoted domain of a boundwise arithmetic operation.
func (i *Interval) arithmeticOperand(operand any) (other *Interval, promoted Type, err error) {
	if other, err = i.Coerce(operand); err != nil {
		return nil, 0, err
	}
	if !i.intervalType.Numeric() || !other.intervalType.Numeric() {
		return nil, 0, errors.Wrapf(ErrUnsupportedOperation, "arithmetic is not defined between %s and %s intervals", i.intervalType, other.intervalType)
	}
	if promoted, err = promoteTypes(i.intervalType, other.intervalType); err != nil {
		return nil, 0, err
	}

	return other, promoted, nil
}

// carriedStep returns the Interval's step for results that stay in its domain; results promoted into another domain
// start without one.
func (i *Interval) carriedStep(promoted Type) *Step {
	if promoted == i.intervalType {
		return i.step
	}

	return nil
}

// combineEndPoints applies a value operation to two EndPoints of the same side. An unbounded side stays unbounded
// and the result is closed only if both contributing EndPoints are.
func combineEndPoints(a, b *EndPoint, promoted Type, operation func(Value, Value) (Value, error)) (result *EndPoint, err error) {
	if a.Unbounded() || b.Unbounded() {
		return nil, nil
	}

	aValue, err := convertValue(a.Value(), promoted)
	if err != nil {
		return nil, err
	}
	bValue, err := convertValue(b.Value(), promoted)
	if err != nil {
		return nil, err
	}

	combined, err := operation(aValue, bValue)
	if err != nil {
		return nil, err
	}

	boundType := BoundTypeOpen
	if a.Inclusive() && b.Inclusive() {
		boundType = BoundTypeClosed
	}

	return NewEndPoint(combined, boundType), nil
}

// connectableEndPoints reports whether an upper and a lower EndPoint touch closely enough for their Intervals to
// merge into one: a shared value with complementary inclusivity, or adjacent grid points of a discrete domain.
func connectableEndPoints(upper, lower *EndPoint, step *Step) bool {
	if upper.Unbounded() || lower.Unbounded() {
		return false
	}

	if upper.Value().Compare(lower.Value()) == 0 {
		return upper.Inclusive() != lower.Inclusive()
	}

	if step == nil || !upper.Inclusive() || !lower.Inclusive() {
		return false
	}

	return step.mustIncrement(upper.Value()).Compare(lower.Value()) == 0
}

// minLowerEndPoint returns the more permissive of two lower EndPoints.
func minLowerEndPoint(a, b *EndPoint) *EndPoint {
	if compareLowerEndPoints(b, a) < 0 {
		return b
	}

	return a
}

// maxUpperEndPoint returns the more permissive of two upper EndPoints.
func maxUpperEndPoint(a, b *EndPoint) *EndPoint {
	if compareUpperEndPoints(b, a) > 0 {
		return b
	}

	return a
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region hashing and representation ///////////////////////////////////////////////////////////////////////////////////

// Hash returns a digest of the normalized tuple (type, lower value, lower inclusivity, upper value, upper
// inclusivity). Equal Intervals hash identically; Intervals of different Types hash apart even with numerically
// equal bounds.
func (i *Interval) Hash() uint64 {
	lower, upper := i.normalizedEndPoints()

	marshalUtil := marshalutil.New().WriteByte(byte(i.intervalType))
	writeHashedEndPoint(marshalUtil, lower)
	writeHashedEndPoint(marshalUtil, upper)

	return xxhash.Sum64(marshalUtil.Bytes())
}

// writeHashedEndPoint feeds the hash-relevant parts of an EndPoint into the digest input.
func writeHashedEndPoint(marshalUtil *marshalutil.MarshalUtil, endPoint *EndPoint) {
	if endPoint.Unbounded() {
		marshalUtil.WriteBool(false)

		return
	}

	marshalUtil.WriteBool(true).
		WriteBytes(endPoint.Value().Bytes()).
		WriteBool(endPoint.Inclusive())
}

// Bytes returns a marshaled version of the Interval.
func (i *Interval) Bytes() []byte {
	marshalUtil := marshalutil.New().
		WriteByte(byte(i.intervalType)).
		WriteBool(i.step != nil)
	if i.step != nil {
		marshalUtil.WriteBytes(i.step.Bytes())
	}

	marshalUtil.WriteBool(!i.lower.Unbounded())
	if !i.lower.Unbounded() {
		marshalUtil.WriteBytes(i.lower.Bytes())
	}
	marshalUtil.WriteBool(!i.upper.Unbounded())
	if !i.upper.Unbounded() {
		marshalUtil.WriteBytes(i.upper.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns the literal notation of the Interval: "[" / "]" for closed bounds, "(" / ")" for open ones and an
// omitted value for unbounded sides (i.e. "[1, 5)" or "(, 100]").
func (i *Interval) String() string {
	lowerBracket, lowerText := "(", ""
	if !i.lower.Unbounded() {
		lowerText = i.lower.Value().String()
		if i.lower.Inclusive() {
			lowerBracket = "["
		}
	}

	upperBracket, upperText := ")", ""
	if !i.upper.Unbounded() {
		upperText = i.upper.Value().String()
		if i.upper.Inclusive() {
			upperBracket = "]"
		}
	}

	return lowerBracket + lowerText + ", " + upperText + upperBracket
}

// Details returns a verbose human-readable version of the Interval for debugging.
func (i *Interval) Details() string {
	fields := []*stringify.StructField{
		stringify.NewStructField("type", i.intervalType),
		stringify.NewStructField("lower", i.lower),
		stringify.NewStructField("upper", i.upper),
	}
	if i.step != nil {
		fields = append(fields, stringify.NewStructField("step", i.step))
	}

	return stringify.Struct("Interval", fields...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
