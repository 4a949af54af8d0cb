package interval

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// region options //////////////////////////////////////////////////////////////////////////////////////////////////////

// Option tweaks how an Interval is built from raw bound values.
type Option func(*factoryOptions)

// factoryOptions collects the optional parameters of the factory functions.
type factoryOptions struct {
	intervalType   *Type
	step           any
	lowerBoundType BoundType
	upperBoundType BoundType
}

// WithType pins the Interval's domain instead of inferring it from the bound values.
func WithType(intervalType Type) Option {
	return func(options *factoryOptions) {
		options.intervalType = &intervalType
	}
}

// WithStep sets the discretization grid of the Interval. The increment is interpreted in the Interval's domain (a
// number of days for date Intervals).
func WithStep(step any) Option {
	return func(options *factoryOptions) {
		options.step = step
	}
}

// WithBoundTypes sets the inclusivity of the two bounds (both default to closed).
func WithBoundTypes(lower, upper BoundType) Option {
	return func(options *factoryOptions) {
		options.lowerBoundType = lower
		options.upperBoundType = upper
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region factory //////////////////////////////////////////////////////////////////////////////////////////////////////

// From builds an Interval from two raw bound values, inferring the narrowest domain that covers both. A nil bound
// leaves that side unbounded and never influences the inference; if both sides are unbounded the domain must be
// pinned with WithType or the construction fails with ErrIndeterminateType. Finite bounds of incompatible domains
// fail with ErrIncompatibleBounds.
func From(lower, upper any, opts ...Option) (result *Interval, err error) {
	options := &factoryOptions{
		lowerBoundType: BoundTypeClosed,
		upperBoundType: BoundTypeClosed,
	}
	for _, opt := range opts {
		opt(options)
	}

	lowerValue, err := inferValue(lower)
	if err != nil {
		return nil, err
	}
	upperValue, err := inferValue(upper)
	if err != nil {
		return nil, err
	}

	intervalType, err := resolveType(lowerValue, upperValue, options.intervalType)
	if err != nil {
		return nil, err
	}

	if lowerValue != nil {
		if lowerValue, err = convertValue(lowerValue, intervalType); err != nil {
			return nil, err
		}
	}
	if upperValue != nil {
		if upperValue, err = convertValue(upperValue, intervalType); err != nil {
			return nil, err
		}
	}

	var step *Step
	if options.step != nil {
		if step, err = buildStep(intervalType, options.step); err != nil {
			return nil, err
		}
	}

	var lowerEndPoint, upperEndPoint *EndPoint
	if lowerValue != nil {
		lowerEndPoint = NewEndPoint(lowerValue, options.lowerBoundType)
	}
	if upperValue != nil {
		upperEndPoint = NewEndPoint(upperValue, options.upperBoundType)
	}

	return newInterval(intervalType, lowerEndPoint, upperEndPoint, step)
}

// Closed returns an Interval that contains all Values greater than or equal to lower and less than or equal to
// upper.
func Closed(lower, upper any, opts ...Option) (result *Interval, err error) {
	return From(lower, upper, append(opts, WithBoundTypes(BoundTypeClosed, BoundTypeClosed))...)
}

// Open returns an Interval that contains all Values strictly greater than lower and strictly less than upper.
func Open(lower, upper any, opts ...Option) (result *Interval, err error) {
	return From(lower, upper, append(opts, WithBoundTypes(BoundTypeOpen, BoundTypeOpen))...)
}

// ClosedOpen returns an Interval that contains all Values greater than or equal to lower and strictly less than
// upper.
func ClosedOpen(lower, upper any, opts ...Option) (result *Interval, err error) {
	return From(lower, upper, append(opts, WithBoundTypes(BoundTypeClosed, BoundTypeOpen))...)
}

// OpenClosed returns an Interval that contains all Values strictly greater than lower and less than or equal to
// upper.
func OpenClosed(lower, upper any, opts ...Option) (result *Interval, err error) {
	return From(lower, upper, append(opts, WithBoundTypes(BoundTypeOpen, BoundTypeClosed))...)
}

// AtLeast returns an Interval that contains all Values greater than or equal to the lower bound.
func AtLeast(lower any, opts ...Option) (result *Interval, err error) {
	return From(lower, nil, append(opts, WithBoundTypes(BoundTypeClosed, BoundTypeOpen))...)
}

// AtMost returns an Interval that contains all Values less than or equal to the upper bound.
func AtMost(upper any, opts ...Option) (result *Interval, err error) {
	return From(nil, upper, append(opts, WithBoundTypes(BoundTypeOpen, BoundTypeClosed))...)
}

// GreaterThan returns an Interval that contains all Values strictly greater than the lower bound.
func GreaterThan(lower any, opts ...Option) (result *Interval, err error) {
	return From(lower, nil, append(opts, WithBoundTypes(BoundTypeOpen, BoundTypeOpen))...)
}

// LessThan returns an Interval that contains all Values strictly less than the upper bound.
func LessThan(upper any, opts ...Option) (result *Interval, err error) {
	return From(nil, upper, append(opts, WithBoundTypes(BoundTypeOpen, BoundTypeOpen))...)
}

// All returns an Interval that contains every Value of the given domain.
func All(intervalType Type) *Interval {
	return &Interval{
		intervalType: intervalType,
		step:         defaultStep(intervalType),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region type inference ///////////////////////////////////////////////////////////////////////////////////////////////

// inferValue maps a raw bound value onto its natural domain: Go integers to IntValue, floats to FloatValue, decimals
// to DecimalValue, strings to CharValue and times to DateValue or DateTimeValue (a time whose clock reads exactly
// midnight is a calendar day). A nil bound stays nil and means "unbounded".
func inferValue(raw any) (value Value, err error) {
	switch typeCastedRaw := raw.(type) {
	case nil:
		return nil, nil
	case Value:
		return typeCastedRaw, nil
	case int:
		return IntValue(typeCastedRaw), nil
	case int8:
		return IntValue(typeCastedRaw), nil
	case int16:
		return IntValue(typeCastedRaw), nil
	case int32:
		return IntValue(typeCastedRaw), nil
	case int64:
		return IntValue(typeCastedRaw), nil
	case uint:
		if uint64(typeCastedRaw) > math.MaxInt64 {
			return nil, errors.Wrapf(ErrIncompatibleBounds, "%d overflows the integer domain", typeCastedRaw)
		}

		return IntValue(typeCastedRaw), nil
	case uint8:
		return IntValue(typeCastedRaw), nil
	case uint16:
		return IntValue(typeCastedRaw), nil
	case uint32:
		return IntValue(typeCastedRaw), nil
	case uint64:
		if typeCastedRaw > math.MaxInt64 {
			return nil, errors.Wrapf(ErrIncompatibleBounds, "%d overflows the integer domain", typeCastedRaw)
		}

		return IntValue(typeCastedRaw), nil
	case float32:
		return FloatValue(typeCastedRaw), nil
	case float64:
		return FloatValue(typeCastedRaw), nil
	case decimal.Decimal:
		return NewDecimalValue(typeCastedRaw), nil
	case string:
		if typeCastedRaw == "" {
			return nil, errors.Wrap(ErrIncompatibleBounds, "empty string can not be a bound value")
		}

		return CharValue(typeCastedRaw), nil
	case time.Time:
		hour, minute, second := typeCastedRaw.Clock()
		if hour == 0 && minute == 0 && second == 0 && typeCastedRaw.Nanosecond() == 0 {
			return NewDateValue(typeCastedRaw), nil
		}

		return NewDateTimeValue(typeCastedRaw), nil
	default:
		return nil, errors.Wrapf(ErrIncompatibleBounds, "unsupported bound value %v (%T)", raw, raw)
	}
}

// resolveType determines the Interval's domain from the inferred bound values and the optional pinned type. An
// unbounded side never votes; a finite side of a narrower domain is promoted toward the wider one.
func resolveType(lowerValue, upperValue Value, pinnedType *Type) (intervalType Type, err error) {
	if pinnedType != nil {
		return *pinnedType, nil
	}

	switch {
	case lowerValue == nil && upperValue == nil:
		return 0, errors.Wrap(ErrIndeterminateType, "both bounds are unbounded")
	case lowerValue == nil:
		return upperValue.Type(), nil
	case upperValue == nil:
		return lowerValue.Type(), nil
	}

	if intervalType, err = promoteTypes(lowerValue.Type(), upperValue.Type()); err != nil {
		return 0, errors.Wrapf(ErrIncompatibleBounds, "%s and %s bounds can not form an interval", lowerValue.Type(), upperValue.Type())
	}

	return intervalType, nil
}

// buildStep interprets the raw step option in the Interval's domain.
func buildStep(intervalType Type, rawStep any) (step *Step, err error) {
	if providedStep, isStep := rawStep.(*Step); isStep {
		return providedStep, nil
	}

	if !intervalType.Steppable() {
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s intervals can not carry a step", intervalType)
	}

	if intervalType == TypeDate {
		days, castErr := cast.ToInt64E(rawStep)
		if castErr != nil {
			return nil, errors.Wrapf(ErrInvalidStep, "can not interpret %v as a number of days: %s", rawStep, castErr)
		}
		if days <= 0 {
			return nil, errors.Wrapf(ErrInvalidStep, "step increment is %d days", days)
		}

		return newDayStep(days), nil
	}

	amount, err := scalarValue(intervalType, rawStep)
	if err != nil {
		return nil, err
	}

	return NewStep(amount)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
