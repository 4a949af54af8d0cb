package interval

import (
	"reflect"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Coerce normalizes the right-hand operand of a binary operation into an Interval. The rule is applied in order:
//
//  1. an Interval of any Type is used directly,
//  2. a two-element sequence becomes a closed Interval over the receiver's domain and step (not re-inferred; a nil
//     element leaves that side unbounded),
//  3. anything else is treated as a single scalar and becomes a degenerate closed Interval.
//
// This makes "interval > 3" mean "interval > [3, 3]". Coerce is exported so the rule can be exercised without
// invoking an operator. Scalars whose natural domain can not be represented in the receiver's domain without loss
// (i.e. 3.5 against an integer interval, or a time against a numeric one) fail with ErrIncompatibleType.
func (i *Interval) Coerce(operand any) (result *Interval, err error) {
	switch typeCastedOperand := operand.(type) {
	case *Interval:
		return typeCastedOperand, nil
	case nil:
		return nil, errors.Wrap(ErrIncompatibleType, "can not coerce nil")
	}

	if lower, upper, isPair := pairElements(operand); isPair {
		lowerEndPoint, endPointErr := i.coercedEndPoint(lower)
		if endPointErr != nil {
			return nil, endPointErr
		}
		upperEndPoint, endPointErr := i.coercedEndPoint(upper)
		if endPointErr != nil {
			return nil, endPointErr
		}

		return newInterval(i.intervalType, lowerEndPoint, upperEndPoint, i.step)
	}

	value, err := scalarValue(i.intervalType, operand)
	if err != nil {
		return nil, err
	}

	return newInterval(i.intervalType, NewEndPoint(value, BoundTypeClosed), NewEndPoint(value, BoundTypeClosed), i.step)
}

// coercedEndPoint converts one element of a coerced pair into a closed EndPoint (or an unbounded side for nil).
func (i *Interval) coercedEndPoint(element any) (endPoint *EndPoint, err error) {
	if element == nil {
		return nil, nil
	}

	value, err := scalarValue(i.intervalType, element)
	if err != nil {
		return nil, err
	}

	return NewEndPoint(value, BoundTypeClosed), nil
}

// pairElements destructures a two-element slice or array operand.
func pairElements(operand any) (lower, upper any, isPair bool) {
	reflectedOperand := reflect.ValueOf(operand)
	if kind := reflectedOperand.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, nil, false
	}
	if reflectedOperand.Len() != 2 {
		return nil, nil, false
	}

	return reflectedOperand.Index(0).Interface(), reflectedOperand.Index(1).Interface(), true
}

// scalarValue converts a raw scalar into a Value of the given domain, failing if the conversion would lose
// information.
func scalarValue(target Type, raw any) (value Value, err error) {
	if rawValue, isValue := raw.(Value); isValue {
		return convertValue(rawValue, target)
	}

	switch target {
	case TypeInteger:
		return intScalar(raw)
	case TypeFloat:
		return floatScalar(raw)
	case TypeDecimal:
		return decimalScalar(raw)
	case TypeCharacter:
		stringRaw, isString := raw.(string)
		if !isString || stringRaw == "" {
			return nil, errors.Wrapf(ErrIncompatibleType, "can not coerce %v into a character value", raw)
		}

		return CharValue(stringRaw), nil
	case TypeDate, TypeDateTime:
		return calendarScalar(target, raw)
	default:
		return nil, errors.Wrapf(ErrIncompatibleType, "unsupported domain %s", target)
	}
}

// intScalar converts a raw scalar into an IntValue.
func intScalar(raw any) (value Value, err error) {
	switch typeCastedRaw := raw.(type) {
	case time.Time:
		return nil, errors.Wrap(ErrIncompatibleType, "can not coerce a time into an integer value")
	case float32:
		return wholeFloat(float64(typeCastedRaw))
	case float64:
		return wholeFloat(typeCastedRaw)
	case decimal.Decimal:
		return convertValue(NewDecimalValue(typeCastedRaw), TypeInteger)
	}

	intRaw, err := cast.ToInt64E(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrIncompatibleType, "can not coerce %v into an integer value: %s", raw, err)
	}

	return IntValue(intRaw), nil
}

// wholeFloat converts a float into an IntValue if it carries no fractional part.
func wholeFloat(raw float64) (value Value, err error) {
	return convertValue(FloatValue(raw), TypeInteger)
}

// floatScalar converts a raw scalar into a FloatValue.
func floatScalar(raw any) (value Value, err error) {
	switch typeCastedRaw := raw.(type) {
	case time.Time:
		return nil, errors.Wrap(ErrIncompatibleType, "can not coerce a time into a float value")
	case decimal.Decimal:
		return convertValue(NewDecimalValue(typeCastedRaw), TypeFloat)
	default:
		floatRaw, castErr := cast.ToFloat64E(typeCastedRaw)
		if castErr != nil {
			return nil, errors.Wrapf(ErrIncompatibleType, "can not coerce %v into a float value: %s", raw, castErr)
		}

		return FloatValue(floatRaw), nil
	}
}

// decimalScalar converts a raw scalar into a DecimalValue.
func decimalScalar(raw any) (value Value, err error) {
	switch typeCastedRaw := raw.(type) {
	case time.Time:
		return nil, errors.Wrap(ErrIncompatibleType, "can not coerce a time into a decimal value")
	case decimal.Decimal:
		return NewDecimalValue(typeCastedRaw), nil
	case string:
		decimalRaw, parseErr := decimal.NewFromString(typeCastedRaw)
		if parseErr != nil {
			return nil, errors.Wrapf(ErrIncompatibleType, "can not coerce %q into a decimal value: %s", typeCastedRaw, parseErr)
		}

		return NewDecimalValue(decimalRaw), nil
	case float32:
		return NewDecimalValue(decimal.NewFromFloat(float64(typeCastedRaw))), nil
	case float64:
		return NewDecimalValue(decimal.NewFromFloat(typeCastedRaw)), nil
	default:
		intRaw, castErr := cast.ToInt64E(raw)
		if castErr != nil {
			return nil, errors.Wrapf(ErrIncompatibleType, "can not coerce %v into a decimal value: %s", raw, castErr)
		}

		return NewDecimalValue(decimal.NewFromInt(intRaw)), nil
	}
}

// calendarScalar converts a raw scalar into a DateValue or DateTimeValue.
func calendarScalar(target Type, raw any) (value Value, err error) {
	switch raw.(type) {
	case time.Time, string:
	default:
		return nil, errors.Wrapf(ErrIncompatibleType, "can not coerce %v into a %s value", raw, target)
	}

	timeRaw, err := cast.ToTimeE(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrIncompatibleType, "can not coerce %v into a %s value: %s", raw, target, err)
	}

	// infer the instant's natural domain first so that narrowing into a date interval hits the midnight check of
	// convertValue instead of silently dropping the clock
	inferredValue, err := inferValue(timeRaw)
	if err != nil {
		return nil, errors.Wrapf(ErrIncompatibleType, "can not coerce %v into a %s value: %s", raw, target, err)
	}

	return convertValue(inferredValue, target)
}
