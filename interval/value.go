package interval

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/shopspring/decimal"
)

// region Type /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Type identifies the value domain that an Interval operates on. It governs how bound values are compared, which
// arithmetic is available and whether the domain carries an implicit unit step.
type Type uint8

const (
	// TypeInteger represents intervals over whole numbers (discrete, implicit step 1).
	TypeInteger Type = iota

	// TypeFloat represents intervals over floating point numbers (continuous unless an explicit step is set).
	TypeFloat

	// TypeDecimal represents intervals over arbitrary-precision decimals (continuous unless an explicit step is set).
	TypeDecimal

	// TypeCharacter represents intervals over strings ordered lexicographically.
	TypeCharacter

	// TypeDate represents intervals over calendar days (discrete, implicit step of one day).
	TypeDate

	// TypeDateTime represents intervals over instants in time (continuous).
	TypeDateTime
)

// TypeNames contains a dictionary of the names of Types.
var TypeNames = [...]string{
	"TypeInteger",
	"TypeFloat",
	"TypeDecimal",
	"TypeCharacter",
	"TypeDate",
	"TypeDateTime",
}

// TypeFromMarshalUtil unmarshals a Type using a MarshalUtil (for easier unmarshalling).
func TypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (intervalType Type, err error) {
	typeByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Wrapf(ErrParseBytesFailed, "failed to read Type: %s", err)

		return
	}

	if intervalType = Type(typeByte); intervalType > TypeDateTime {
		err = errors.Wrapf(ErrParseBytesFailed, "unsupported Type (%X)", intervalType)

		return
	}

	return
}

// Discrete returns true if the domain carries an implicit unit step (whole numbers and calendar days).
func (t Type) Discrete() bool {
	return t == TypeInteger || t == TypeDate
}

// Numeric returns true if the domain supports addition and subtraction of its values.
func (t Type) Numeric() bool {
	return t == TypeInteger || t == TypeFloat || t == TypeDecimal
}

// Steppable returns true if bound values of the domain can be snapped to a step grid.
func (t Type) Steppable() bool {
	return t.Numeric() || t == TypeDate
}

// Bytes returns a marshaled version of the Type.
func (t Type) Bytes() []byte {
	return []byte{byte(t)}
}

// String returns a human-readable version of the Type.
func (t Type) String() string {
	if int(t) >= len(TypeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}

	return TypeNames[t]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Value ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Value is an interface that is used by Intervals to compare bound values of the same domain. It is required to keep
// the Interval generic over the closed set of supported domains.
type Value interface {
	// Type returns the domain the Value belongs to.
	Type() Type

	// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
	Compare(other Value) int

	// Bytes returns a marshaled version of the Value (including its Type prefix).
	Bytes() []byte

	// String returns a human-readable version of the Value.
	String() string
}

// ValueFromBytes unmarshals a Value from a sequence of bytes.
func ValueFromBytes(valueBytes []byte) (value Value, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(valueBytes)
	if value, err = ValueFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Wrap(err, "failed to parse Value from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ValueFromMarshalUtil unmarshals a Value using a MarshalUtil (for easier unmarshalling).
func ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (value Value, err error) {
	valueType, err := TypeFromMarshalUtil(marshalUtil)
	if err != nil {
		err = errors.Wrap(err, "failed to parse Type from MarshalUtil")

		return
	}

	switch valueType {
	case TypeInteger:
		int64Value, int64Err := marshalUtil.ReadInt64()
		if int64Err != nil {
			err = errors.Wrapf(ErrParseBytesFailed, "failed to read int64: %s", int64Err)

			return
		}
		value = IntValue(int64Value)
	case TypeFloat:
		float64Value, float64Err := marshalUtil.ReadFloat64()
		if float64Err != nil {
			err = errors.Wrapf(ErrParseBytesFailed, "failed to read float64: %s", float64Err)

			return
		}
		value = FloatValue(float64Value)
	case TypeDecimal:
		value, err = decimalValueFromMarshalUtil(marshalUtil)
	case TypeCharacter:
		value, err = charValueFromMarshalUtil(marshalUtil)
	case TypeDate, TypeDateTime:
		timeValue, timeErr := marshalUtil.ReadTime()
		if timeErr != nil {
			err = errors.Wrapf(ErrParseBytesFailed, "failed to read time: %s", timeErr)

			return
		}
		if valueType == TypeDate {
			value = NewDateValue(timeValue)
		} else {
			value = NewDateTimeValue(timeValue)
		}
	default:
		err = errors.Wrapf(ErrParseBytesFailed, "unsupported Type (%X)", valueType)
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region IntValue /////////////////////////////////////////////////////////////////////////////////////////////////////

// IntValue is a wrapper for int64 values that makes these values compatible with the Value interface so they can be
// used as Interval bounds.
type IntValue int64

// Type returns the domain the Value belongs to.
func (i IntValue) Type() Type {
	return TypeInteger
}

// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i IntValue) Compare(other Value) int {
	typeCastedOtherValue, typeCastOK := other.(IntValue)
	if !typeCastOK {
		panic("can only compare IntValues to other IntValues")
	}

	switch {
	case i < typeCastedOtherValue:
		return -1
	case i > typeCastedOtherValue:
		return 1
	default:
		return 0
	}
}

// Bytes returns a marshaled version of the Value.
func (i IntValue) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(TypeInteger)).
		WriteInt64(int64(i)).
		Bytes()
}

// String returns a human-readable version of the Value.
func (i IntValue) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value = IntValue(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FloatValue ///////////////////////////////////////////////////////////////////////////////////////////////////

// FloatValue is a wrapper for float64 values that makes these values compatible with the Value interface so they can
// be used as Interval bounds.
type FloatValue float64

// Type returns the domain the Value belongs to.
func (f FloatValue) Type() Type {
	return TypeFloat
}

// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (f FloatValue) Compare(other Value) int {
	typeCastedOtherValue, typeCastOK := other.(FloatValue)
	if !typeCastOK {
		panic("can only compare FloatValues to other FloatValues")
	}

	switch {
	case f < typeCastedOtherValue:
		return -1
	case f > typeCastedOtherValue:
		return 1
	default:
		return 0
	}
}

// Bytes returns a marshaled version of the Value.
func (f FloatValue) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(TypeFloat)).
		WriteFloat64(float64(f)).
		Bytes()
}

// String returns a human-readable version of the Value. Whole values keep their decimal point ("2" renders as "2.0")
// so that the notation of a float Interval never reads like an integer one.
func (f FloatValue) String() string {
	formatted := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(formatted, ".eE") && !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f)) {
		formatted += ".0"
	}

	return formatted
}

// code contract (make sure the type implements all required methods).
var _ Value = FloatValue(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DecimalValue /////////////////////////////////////////////////////////////////////////////////////////////////

// DecimalValue is a wrapper for arbitrary-precision decimals that makes these values compatible with the Value
// interface so they can be used as Interval bounds.
type DecimalValue struct {
	decimal.Decimal
}

// NewDecimalValue wraps the given decimal in a DecimalValue.
func NewDecimalValue(d decimal.Decimal) DecimalValue {
	return DecimalValue{Decimal: d}
}

// decimalValueFromMarshalUtil unmarshals a DecimalValue using a MarshalUtil (for easier unmarshalling).
func decimalValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (decimalValue DecimalValue, err error) {
	length, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Wrapf(ErrParseBytesFailed, "failed to read decimal length: %s", err)

		return
	}
	decimalBytes, err := marshalUtil.ReadBytes(int(length))
	if err != nil {
		err = errors.Wrapf(ErrParseBytesFailed, "failed to read decimal bytes: %s", err)

		return
	}
	if err = decimalValue.Decimal.UnmarshalBinary(decimalBytes); err != nil {
		err = errors.Wrapf(ErrParseBytesFailed, "failed to unmarshal decimal: %s", err)

		return
	}

	return
}

// Type returns the domain the Value belongs to.
func (d DecimalValue) Type() Type {
	return TypeDecimal
}

// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (d DecimalValue) Compare(other Value) int {
	typeCastedOtherValue, typeCastOK := other.(DecimalValue)
	if !typeCastOK {
		panic("can only compare DecimalValues to other DecimalValues")
	}

	return d.Decimal.Cmp(typeCastedOtherValue.Decimal)
}

// Bytes returns a marshaled version of the Value.
func (d DecimalValue) Bytes() []byte {
	decimalBytes, err := d.Decimal.MarshalBinary()
	if err != nil {
		panic(err)
	}

	return marshalutil.New().
		WriteByte(byte(TypeDecimal)).
		WriteUint32(uint32(len(decimalBytes))).
		WriteBytes(decimalBytes).
		Bytes()
}

// code contract (make sure the type implements all required methods).
var _ Value = DecimalValue{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region CharValue ////////////////////////////////////////////////////////////////////////////////////////////////////

// CharValue is a wrapper for strings ordered lexicographically that makes these values compatible with the Value
// interface so they can be used as Interval bounds.
type CharValue string

// charValueFromMarshalUtil unmarshals a CharValue using a MarshalUtil (for easier unmarshalling).
func charValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (charValue CharValue, err error) {
	length, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Wrapf(ErrParseBytesFailed, "failed to read string length: %s", err)

		return
	}
	stringBytes, err := marshalUtil.ReadBytes(int(length))
	if err != nil {
		err = errors.Wrapf(ErrParseBytesFailed, "failed to read string bytes: %s", err)

		return
	}
	charValue = CharValue(stringBytes)

	return
}

// Type returns the domain the Value belongs to.
func (c CharValue) Type() Type {
	return TypeCharacter
}

// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (c CharValue) Compare(other Value) int {
	typeCastedOtherValue, typeCastOK := other.(CharValue)
	if !typeCastOK {
		panic("can only compare CharValues to other CharValues")
	}

	return strings.Compare(string(c), string(typeCastedOtherValue))
}

// Bytes returns a marshaled version of the Value.
func (c CharValue) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(TypeCharacter)).
		WriteUint32(uint32(len(c))).
		WriteBytes([]byte(c)).
		Bytes()
}

// String returns a human-readable version of the Value.
func (c CharValue) String() string {
	return string(c)
}

// code contract (make sure the type implements all required methods).
var _ Value = CharValue("")

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DateValue ////////////////////////////////////////////////////////////////////////////////////////////////////

// DateValue is a wrapper for calendar days that makes these values compatible with the Value interface so they can be
// used as Interval bounds. DateValues are normalized to midnight UTC.
type DateValue struct {
	time time.Time
}

// NewDateValue creates a DateValue from the calendar day the given time falls on.
func NewDateValue(t time.Time) DateValue {
	year, month, day := t.Date()

	return DateValue{time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Type returns the domain the Value belongs to.
func (d DateValue) Type() Type {
	return TypeDate
}

// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (d DateValue) Compare(other Value) int {
	typeCastedOtherValue, typeCastOK := other.(DateValue)
	if !typeCastOK {
		panic("can only compare DateValues to other DateValues")
	}

	return compareTimes(d.time, typeCastedOtherValue.time)
}

// Time returns the underlying time at midnight UTC.
func (d DateValue) Time() time.Time {
	return d.time
}

// Bytes returns a marshaled version of the Value.
func (d DateValue) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(TypeDate)).
		WriteTime(d.time).
		Bytes()
}

// String returns a human-readable version of the Value.
func (d DateValue) String() string {
	return d.time.Format("2006-01-02")
}

// code contract (make sure the type implements all required methods).
var _ Value = DateValue{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DateTimeValue ////////////////////////////////////////////////////////////////////////////////////////////////

// DateTimeValue is a wrapper for instants in time that makes these values compatible with the Value interface so they
// can be used as Interval bounds. DateTimeValues are normalized to UTC.
type DateTimeValue struct {
	time time.Time
}

// NewDateTimeValue creates a DateTimeValue from the given time.
func NewDateTimeValue(t time.Time) DateTimeValue {
	return DateTimeValue{time: t.UTC()}
}

// Type returns the domain the Value belongs to.
func (d DateTimeValue) Type() Type {
	return TypeDateTime
}

// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (d DateTimeValue) Compare(other Value) int {
	typeCastedOtherValue, typeCastOK := other.(DateTimeValue)
	if !typeCastOK {
		panic("can only compare DateTimeValues to other DateTimeValues")
	}

	return compareTimes(d.time, typeCastedOtherValue.time)
}

// Time returns the underlying time in UTC.
func (d DateTimeValue) Time() time.Time {
	return d.time
}

// Bytes returns a marshaled version of the Value.
func (d DateTimeValue) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(TypeDateTime)).
		WriteTime(d.time).
		Bytes()
}

// String returns a human-readable version of the Value.
func (d DateTimeValue) String() string {
	return d.time.Format("2006-01-02 15:04:05")
}

// code contract (make sure the type implements all required methods).
var _ Value = DateTimeValue{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region value helpers ////////////////////////////////////////////////////////////////////////////////////////////////

// decimalCentrePrecision bounds the number of decimal places of a computed decimal midpoint.
const decimalCentrePrecision = 16

// two is the divisor of midpoint computations over the decimal domain.
var two = decimal.NewFromInt(2)

// midpointInstant returns the instant halfway between the two given times.
func midpointInstant(lower, upper time.Time) DateTimeValue {
	return NewDateTimeValue(lower.Add(upper.Sub(lower) / 2))
}

// typeRanks orders the numeric domains for promotion (a mixed operation promotes to the higher-ranked domain).
var typeRanks = map[Type]int{
	TypeInteger: 0,
	TypeFloat:   1,
	TypeDecimal: 2,
}

// promoteTypes determines the common domain of a pairwise operation between values of the given domains.
func promoteTypes(a, b Type) (promotedType Type, err error) {
	if a == b {
		return a, nil
	}

	if a.Numeric() && b.Numeric() {
		if typeRanks[a] > typeRanks[b] {
			return a, nil
		}

		return b, nil
	}

	if (a == TypeDate || a == TypeDateTime) && (b == TypeDate || b == TypeDateTime) {
		return TypeDateTime, nil
	}

	return 0, errors.Wrapf(ErrIncompatibleType, "no common domain for %s and %s", a, b)
}

// convertValue converts a Value into the given domain, failing if the conversion would lose information.
func convertValue(value Value, target Type) (convertedValue Value, err error) {
	if value.Type() == target {
		return value, nil
	}

	switch typeCastedValue := value.(type) {
	case IntValue:
		switch target {
		case TypeFloat:
			return FloatValue(float64(typeCastedValue)), nil
		case TypeDecimal:
			return NewDecimalValue(decimal.NewFromInt(int64(typeCastedValue))), nil
		}
	case FloatValue:
		switch target {
		case TypeInteger:
			if float64(typeCastedValue) == math.Trunc(float64(typeCastedValue)) {
				return IntValue(int64(typeCastedValue)), nil
			}
		case TypeDecimal:
			return NewDecimalValue(decimal.NewFromFloat(float64(typeCastedValue))), nil
		}
	case DecimalValue:
		switch target {
		case TypeInteger:
			if typeCastedValue.Decimal.IsInteger() {
				return IntValue(typeCastedValue.Decimal.IntPart()), nil
			}
		case TypeFloat:
			asFloat := typeCastedValue.Decimal.InexactFloat64()
			if decimal.NewFromFloat(asFloat).Equal(typeCastedValue.Decimal) {
				return FloatValue(asFloat), nil
			}
		}
	case DateValue:
		if target == TypeDateTime {
			return NewDateTimeValue(typeCastedValue.time), nil
		}
	case DateTimeValue:
		if target == TypeDate {
			if midnight := NewDateValue(typeCastedValue.time); midnight.time.Equal(typeCastedValue.time) {
				return midnight, nil
			}
		}
	}

	return nil, errors.Wrapf(ErrIncompatibleType, "can not convert %s (%s) into %s", value, value.Type(), target)
}

// addValues adds two Values of the same numeric domain.
func addValues(a, b Value) (sum Value, err error) {
	switch typeCastedA := a.(type) {
	case IntValue:
		return typeCastedA + b.(IntValue), nil
	case FloatValue:
		return typeCastedA + b.(FloatValue), nil
	case DecimalValue:
		return NewDecimalValue(typeCastedA.Decimal.Add(b.(DecimalValue).Decimal)), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s values can not be added", a.Type())
	}
}

// subValues subtracts two Values of the same numeric domain.
func subValues(a, b Value) (difference Value, err error) {
	switch typeCastedA := a.(type) {
	case IntValue:
		return typeCastedA - b.(IntValue), nil
	case FloatValue:
		return typeCastedA - b.(FloatValue), nil
	case DecimalValue:
		return NewDecimalValue(typeCastedA.Decimal.Sub(b.(DecimalValue).Decimal)), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s values can not be subtracted", a.Type())
	}
}

// valueAsFloat converts a numeric Value into a float64.
func valueAsFloat(value Value) (result float64, err error) {
	switch typeCastedValue := value.(type) {
	case IntValue:
		return float64(typeCastedValue), nil
	case FloatValue:
		return float64(typeCastedValue), nil
	case DecimalValue:
		return typeCastedValue.Decimal.InexactFloat64(), nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedOperation, "%s values have no float representation", value.Type())
	}
}

// compareTimes orders two times chronologically.
func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
