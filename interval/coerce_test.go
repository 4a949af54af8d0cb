package interval

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoerce_Interval tests that Interval operands pass through untouched.
func TestCoerce_Interval(t *testing.T) {
	receiver, err := Closed(1, 5)
	require.NoError(t, err)
	operand, err := Closed(2.5, 3.5)
	require.NoError(t, err)

	coerced, err := receiver.Coerce(operand)
	require.NoError(t, err)
	assert.Same(t, operand, coerced, "an Interval operand is never rebuilt")
}

// TestCoerce_Scalar tests the degenerate-interval rule for scalar operands.
func TestCoerce_Scalar(t *testing.T) {
	receiver, err := Closed(1, 5)
	require.NoError(t, err)

	coerced, err := receiver.Coerce(3)
	require.NoError(t, err)
	assert.Equal(t, TypeInteger, coerced.Type())
	assert.Equal(t, IntValue(3), coerced.LowerEndPoint().Value())
	assert.Equal(t, IntValue(3), coerced.UpperEndPoint().Value())
	assert.True(t, coerced.Closed())
	assert.True(t, coerced.Degenerate())

	// a whole float narrows losslessly into the receiver's integer domain
	coerced, err = receiver.Coerce(3.0)
	require.NoError(t, err)
	assert.Equal(t, IntValue(3), coerced.LowerEndPoint().Value())

	_, err = receiver.Coerce(3.5)
	assert.True(t, errors.Is(err, ErrIncompatibleType), "3.5 does not fit the integer domain")

	_, err = receiver.Coerce(time.Now())
	assert.True(t, errors.Is(err, ErrIncompatibleType))

	_, err = receiver.Coerce(nil)
	assert.True(t, errors.Is(err, ErrIncompatibleType))
}

// TestCoerce_Pair tests the two-element sequence rule.
func TestCoerce_Pair(t *testing.T) {
	receiver, err := Closed(1, 5)
	require.NoError(t, err)

	coerced, err := receiver.Coerce([]int{2, 4})
	require.NoError(t, err)
	assert.True(t, coerced.Closed())
	assert.Equal(t, IntValue(2), coerced.LowerEndPoint().Value())
	assert.Equal(t, IntValue(4), coerced.UpperEndPoint().Value())

	coerced, err = receiver.Coerce([2]int{2, 4})
	require.NoError(t, err)
	assert.Equal(t, IntValue(2), coerced.LowerEndPoint().Value(), "arrays coerce like slices")

	// a nil element leaves that side unbounded
	coerced, err = receiver.Coerce([]any{nil, 4})
	require.NoError(t, err)
	assert.False(t, coerced.HasLowerBound())
	assert.Equal(t, IntValue(4), coerced.UpperEndPoint().Value())

	_, err = receiver.Coerce([]int{1, 2, 3})
	assert.True(t, errors.Is(err, ErrIncompatibleType), "only two-element sequences form an interval")

	_, err = receiver.Coerce([]int{5, 1})
	assert.True(t, errors.Is(err, ErrInvalidBounds), "a coerced pair still has to be ordered")
}

// TestCoerce_ReceiverDomain tests that coercion adopts the receiver's domain and step instead of re-inferring.
func TestCoerce_ReceiverDomain(t *testing.T) {
	floatReceiver, err := Closed(1.0, 5.0)
	require.NoError(t, err)
	coerced, err := floatReceiver.Coerce(3)
	require.NoError(t, err)
	assert.Equal(t, TypeFloat, coerced.Type(), "an integer scalar widens into the receiver's float domain")
	assert.Equal(t, FloatValue(3), coerced.LowerEndPoint().Value())

	steppedReceiver, err := Closed(0, 10, WithStep(2))
	require.NoError(t, err)
	coerced, err = steppedReceiver.Coerce(3)
	require.NoError(t, err)
	require.NotNil(t, coerced.Step())
	assert.Equal(t, IntValue(2), coerced.Step().Amount(), "the receiver's grid carries over")
	assert.Equal(t, IntValue(2), coerced.LowerEndPoint().Value(), "the coerced bound folds onto the receiver's grid")
	assert.Equal(t, IntValue(4), coerced.UpperEndPoint().Value())

	decimalReceiver, err := Closed(decimal.NewFromInt(0), decimal.NewFromInt(10))
	require.NoError(t, err)
	coerced, err = decimalReceiver.Coerce("2.5")
	require.NoError(t, err)
	assert.Equal(t, TypeDecimal, coerced.Type())
	assert.Zero(t, coerced.LowerEndPoint().Value().Compare(NewDecimalValue(decimal.RequireFromString("2.5"))))

	dateReceiver, err := Closed(
		time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	coerced, err = dateReceiver.Coerce("2020-03-15")
	require.NoError(t, err)
	assert.Equal(t, TypeDate, coerced.Type(), "textual dates coerce into the calendar domain")
}

// TestCoerce_CalendarPrecision tests that instants only narrow into the date domain when they name a whole day.
func TestCoerce_CalendarPrecision(t *testing.T) {
	dateReceiver, err := Closed(
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Equal(t, TypeDate, dateReceiver.Type())

	_, err = dateReceiver.Contains(time.Date(2000, time.January, 1, 13, 0, 0, 0, time.UTC))
	assert.True(t, errors.Is(err, ErrIncompatibleType), "an instant away from midnight does not name a day")

	_, err = dateReceiver.Coerce(time.Date(2000, time.January, 1, 0, 0, 0, 1, time.UTC))
	assert.True(t, errors.Is(err, ErrIncompatibleType), "a single nanosecond past midnight already leaves the day grid")

	contains, err := dateReceiver.Contains(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, contains, "a midnight instant names its day exactly")

	dateTimeReceiver, err := Closed(
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 2, 13, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Equal(t, TypeDateTime, dateTimeReceiver.Type())

	contains, err = dateTimeReceiver.Contains(time.Date(2000, time.January, 1, 13, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, contains, "the datetime domain accepts any instant")

	contains, err = dateTimeReceiver.Contains(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, contains, "a midnight instant widens losslessly into the datetime domain")
}

// TestCoerce_ErrorPropagation tests that coercion failures surface through the operators.
func TestCoerce_ErrorPropagation(t *testing.T) {
	receiver, err := Closed(1, 5)
	require.NoError(t, err)

	_, err = receiver.Add("not a number")
	assert.True(t, errors.Is(err, ErrIncompatibleType))

	_, err = receiver.Intersect(struct{}{})
	assert.True(t, errors.Is(err, ErrIncompatibleType))
}
