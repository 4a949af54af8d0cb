package interval

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats/scalar"
)

// floatStepTolerance bounds the rounding error that is still considered "on the grid" when float values are snapped
// to a step.
const floatStepTolerance = 1e-9

// epochDay anchors the default day grid of date Intervals.
var epochDay = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Step describes the discretization grid of an Interval: a scalar increment anchored at an origin. Bound values of a
// stepped Interval are always exact multiples of the increment relative to the origin.
type Step struct {
	amount Value
	origin Value
}

// NewStep creates a Step with the given increment, anchored at the domain's zero value.
func NewStep(amount Value) (step *Step, err error) {
	var origin Value
	switch amount.(type) {
	case IntValue:
		origin = IntValue(0)
	case FloatValue:
		origin = FloatValue(0)
	case DecimalValue:
		origin = NewDecimalValue(decimal.Zero)
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s values can not be used as a step", amount.Type())
	}

	return NewStepWithOrigin(amount, origin)
}

// NewStepWithOrigin creates a Step with the given increment, anchored at the given origin.
func NewStepWithOrigin(amount, origin Value) (step *Step, err error) {
	if amount.Type() != origin.Type() {
		return nil, errors.Wrapf(ErrIncompatibleType, "step increment (%s) and origin (%s) belong to different domains", amount.Type(), origin.Type())
	}

	positive := true
	switch typeCastedAmount := amount.(type) {
	case IntValue:
		positive = typeCastedAmount > 0
	case FloatValue:
		positive = typeCastedAmount > 0
	case DecimalValue:
		positive = typeCastedAmount.Decimal.IsPositive()
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s values can not be used as a step", amount.Type())
	}
	if !positive {
		return nil, errors.Wrapf(ErrInvalidStep, "step increment is %s", amount)
	}

	return &Step{amount: amount, origin: origin}, nil
}

// newDayStep creates the grid of a date Interval: an increment counted in days, anchored at the Unix epoch.
func newDayStep(days int64) *Step {
	return &Step{amount: IntValue(days), origin: NewDateValue(epochDay)}
}

// defaultStep returns the implicit grid of a discrete domain or nil for continuous ones.
func defaultStep(intervalType Type) *Step {
	switch intervalType {
	case TypeInteger:
		return &Step{amount: IntValue(1), origin: IntValue(0)}
	case TypeDate:
		return newDayStep(1)
	default:
		return nil
	}
}

// StepFromBytes unmarshals a Step from a sequence of bytes.
func StepFromBytes(stepBytes []byte) (step *Step, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(stepBytes)
	if step, err = StepFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse Step from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// StepFromMarshalUtil unmarshals a Step using a MarshalUtil (for easier unmarshalling).
func StepFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (step *Step, err error) {
	step = &Step{}
	if step.amount, err = ValueFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse step increment from MarshalUtil")

		return
	}
	if step.origin, err = ValueFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse step origin from MarshalUtil")

		return
	}

	return
}

// Amount returns the increment of the Step.
func (s *Step) Amount() Value {
	return s.amount
}

// Origin returns the value the grid is anchored at.
func (s *Step) Origin() Value {
	return s.origin
}

// OnStep returns true if the given value is an exact multiple of the increment relative to the origin.
func (s *Step) OnStep(value Value) bool {
	switch typeCastedValue := value.(type) {
	case IntValue:
		return floorMod(int64(typeCastedValue)-int64(s.origin.(IntValue)), int64(s.amount.(IntValue))) == 0
	case FloatValue:
		relative := (float64(typeCastedValue) - float64(s.origin.(FloatValue))) / float64(s.amount.(FloatValue))

		return scalar.EqualWithinAbsOrRel(relative, math.Round(relative), floatStepTolerance, floatStepTolerance)
	case DecimalValue:
		return s.decimalOffset(typeCastedValue).IsZero()
	case DateValue:
		return floorMod(dayNumber(typeCastedValue)-dayNumber(s.origin.(DateValue)), int64(s.amount.(IntValue))) == 0
	default:
		panic("values of this domain can not be snapped to a step grid")
	}
}

// Floor returns the largest on-step value that is smaller than or equal to the given value.
func (s *Step) Floor(value Value) Value {
	switch typeCastedValue := value.(type) {
	case IntValue:
		return typeCastedValue - IntValue(floorMod(int64(typeCastedValue)-int64(s.origin.(IntValue)), int64(s.amount.(IntValue))))
	case FloatValue:
		if s.OnStep(value) {
			return s.snap(typeCastedValue)
		}
		amount, origin := float64(s.amount.(FloatValue)), float64(s.origin.(FloatValue))

		return FloatValue(origin + math.Floor((float64(typeCastedValue)-origin)/amount)*amount)
	case DecimalValue:
		return NewDecimalValue(typeCastedValue.Decimal.Sub(s.decimalOffset(typeCastedValue)))
	case DateValue:
		offset := floorMod(dayNumber(typeCastedValue)-dayNumber(s.origin.(DateValue)), int64(s.amount.(IntValue)))

		return dateFromDayNumber(dayNumber(typeCastedValue) - offset)
	default:
		panic("values of this domain can not be snapped to a step grid")
	}
}

// Ceil returns the smallest on-step value that is bigger than or equal to the given value.
func (s *Step) Ceil(value Value) Value {
	if s.OnStep(value) {
		return s.snapIfFloat(value)
	}

	return s.mustIncrement(s.Floor(value))
}

// Next returns the smallest on-step value that is strictly bigger than the given value.
func (s *Step) Next(value Value) Value {
	return s.mustIncrement(s.Floor(value))
}

// Prev returns the largest on-step value that is strictly smaller than the given value.
func (s *Step) Prev(value Value) Value {
	if s.OnStep(value) {
		return s.mustDecrement(s.snapIfFloat(value))
	}

	return s.Floor(value)
}

// Bytes returns a marshaled version of the Step.
func (s *Step) Bytes() []byte {
	return marshalutil.New().
		Write(s.amount).
		Write(s.origin).
		Bytes()
}

// String returns a human-readable version of the Step.
func (s *Step) String() string {
	return stringify.Struct("Step",
		stringify.NewStructField("amount", s.amount),
		stringify.NewStructField("origin", s.origin),
	)
}

// snap removes the accumulated floating point error from an on-step float value.
func (s *Step) snap(value FloatValue) FloatValue {
	amount, origin := float64(s.amount.(FloatValue)), float64(s.origin.(FloatValue))

	return FloatValue(origin + math.Round((float64(value)-origin)/amount)*amount)
}

// snapIfFloat snaps float values to the grid and returns every other domain's value unchanged.
func (s *Step) snapIfFloat(value Value) Value {
	if floatValue, isFloat := value.(FloatValue); isFloat {
		return s.snap(floatValue)
	}

	return value
}

// decimalOffset returns the non-negative offset of the given value from the next lower grid point.
func (s *Step) decimalOffset(value DecimalValue) decimal.Decimal {
	offset := value.Decimal.Sub(s.origin.(DecimalValue).Decimal).Mod(s.amount.(DecimalValue).Decimal)
	if offset.IsNegative() {
		offset = offset.Add(s.amount.(DecimalValue).Decimal)
	}

	return offset
}

// mustIncrement moves an on-step value one step up the grid.
func (s *Step) mustIncrement(value Value) Value {
	switch typeCastedValue := value.(type) {
	case IntValue:
		return typeCastedValue + s.amount.(IntValue)
	case FloatValue:
		return typeCastedValue + s.amount.(FloatValue)
	case DecimalValue:
		return NewDecimalValue(typeCastedValue.Decimal.Add(s.amount.(DecimalValue).Decimal))
	case DateValue:
		return dateFromDayNumber(dayNumber(typeCastedValue) + int64(s.amount.(IntValue)))
	default:
		panic("values of this domain can not be snapped to a step grid")
	}
}

// mustDecrement moves an on-step value one step down the grid.
func (s *Step) mustDecrement(value Value) Value {
	switch typeCastedValue := value.(type) {
	case IntValue:
		return typeCastedValue - s.amount.(IntValue)
	case FloatValue:
		return typeCastedValue - s.amount.(FloatValue)
	case DecimalValue:
		return NewDecimalValue(typeCastedValue.Decimal.Sub(s.amount.(DecimalValue).Decimal))
	case DateValue:
		return dateFromDayNumber(dayNumber(typeCastedValue) - int64(s.amount.(IntValue)))
	default:
		panic("values of this domain can not be snapped to a step grid")
	}
}

// discretizeLower snaps a bounded lower EndPoint to the grid: closed bounds round away from the interior, open bounds
// move strictly toward it and become closed, so the covered on-step points never change.
func (s *Step) discretizeLower(endPoint *EndPoint) *EndPoint {
	if endPoint.Inclusive() {
		return NewEndPoint(s.Floor(endPoint.Value()), BoundTypeClosed)
	}

	return NewEndPoint(s.Next(endPoint.Value()), BoundTypeClosed)
}

// discretizeUpper snaps a bounded upper EndPoint to the grid (mirror of discretizeLower).
func (s *Step) discretizeUpper(endPoint *EndPoint) *EndPoint {
	if endPoint.Inclusive() {
		return NewEndPoint(s.Ceil(endPoint.Value()), BoundTypeClosed)
	}

	return NewEndPoint(s.Prev(endPoint.Value()), BoundTypeClosed)
}

// floorMod returns the non-negative remainder of a / b.
func floorMod(a, b int64) int64 {
	remainder := a % b
	if remainder < 0 {
		remainder += b
	}

	return remainder
}

// dayNumber returns the number of days between the Unix epoch and the given date.
func dayNumber(date DateValue) int64 {
	return date.time.Unix() / 86400
}

// dateFromDayNumber returns the date that lies the given number of days after the Unix epoch.
func dateFromDayNumber(days int64) DateValue {
	return DateValue{time: time.Unix(days*86400, 0).UTC()}
}
