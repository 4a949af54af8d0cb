package interval

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStep_Validation tests the positivity and domain requirements of step construction.
func TestStep_Validation(t *testing.T) {
	_, err := NewStep(IntValue(0))
	assert.True(t, errors.Is(err, ErrInvalidStep), "a step amount of zero should be rejected")

	_, err = NewStep(IntValue(-2))
	assert.True(t, errors.Is(err, ErrInvalidStep), "a negative step amount should be rejected")

	_, err = NewStep(CharValue("a"))
	assert.True(t, errors.Is(err, ErrUnsupportedOperation), "the character domain has no step grid")

	step, err := NewStep(IntValue(3))
	require.NoError(t, err)
	assert.Equal(t, IntValue(3), step.Amount())
	assert.Equal(t, IntValue(0), step.Origin())
}

// TestStep_IntegerRounding tests grid rounding over the integers, including negative values.
func TestStep_IntegerRounding(t *testing.T) {
	step, err := NewStep(IntValue(3))
	require.NoError(t, err)

	assert.True(t, step.OnStep(IntValue(6)))
	assert.False(t, step.OnStep(IntValue(7)))

	assert.Equal(t, IntValue(6), step.Floor(IntValue(7)))
	assert.Equal(t, IntValue(9), step.Ceil(IntValue(7)))

	// floor division, not truncation
	assert.Equal(t, IntValue(-9), step.Floor(IntValue(-7)), "flooring must round toward negative infinity")
	assert.Equal(t, IntValue(-6), step.Ceil(IntValue(-7)))

	assert.Equal(t, IntValue(9), step.Next(IntValue(6)), "the successor of an on-grid value is the following grid point")
	assert.Equal(t, IntValue(9), step.Next(IntValue(7)))
	assert.Equal(t, IntValue(3), step.Prev(IntValue(6)))
	assert.Equal(t, IntValue(6), step.Prev(IntValue(7)))
}

// TestStep_Origin tests grids anchored away from zero.
func TestStep_Origin(t *testing.T) {
	step, err := NewStepWithOrigin(IntValue(5), IntValue(2))
	require.NoError(t, err)

	assert.True(t, step.OnStep(IntValue(7)), "7 = 2 + 1*5 lies on the shifted grid")
	assert.False(t, step.OnStep(IntValue(5)))

	assert.Equal(t, IntValue(7), step.Floor(IntValue(10)))
	assert.Equal(t, IntValue(12), step.Ceil(IntValue(10)))
}

// TestStep_FloatRounding tests the tolerance-based grid membership of the float domain.
func TestStep_FloatRounding(t *testing.T) {
	step, err := NewStep(FloatValue(0.1))
	require.NoError(t, err)

	// 0.3 is not exactly representable, membership must tolerate the drift
	assert.True(t, step.OnStep(FloatValue(0.3)))
	assert.True(t, step.OnStep(FloatValue(0.1+0.2)))
	assert.False(t, step.OnStep(FloatValue(0.35)))

	assert.InDelta(t, 0.3, float64(step.Floor(FloatValue(0.35)).(FloatValue)), 1e-12)
	assert.InDelta(t, 0.4, float64(step.Ceil(FloatValue(0.35)).(FloatValue)), 1e-12)
	assert.InDelta(t, 0.3, float64(step.Floor(FloatValue(0.1+0.2)).(FloatValue)), 1e-12, "on-grid values must snap instead of dropping a whole step")
}

// TestStep_DecimalRounding tests exact grid rounding over decimals.
func TestStep_DecimalRounding(t *testing.T) {
	step, err := NewStep(NewDecimalValue(decimal.RequireFromString("0.25")))
	require.NoError(t, err)

	assert.True(t, step.OnStep(NewDecimalValue(decimal.RequireFromString("1.75"))))
	assert.False(t, step.OnStep(NewDecimalValue(decimal.RequireFromString("1.8"))))

	floored := step.Floor(NewDecimalValue(decimal.RequireFromString("1.8")))
	assert.Zero(t, floored.Compare(NewDecimalValue(decimal.RequireFromString("1.75"))))

	ceiled := step.Ceil(NewDecimalValue(decimal.RequireFromString("1.8")))
	assert.Zero(t, ceiled.Compare(NewDecimalValue(decimal.RequireFromString("2"))))
}

// TestStep_DateRounding tests the day-count grid of the calendar domain.
func TestStep_DateRounding(t *testing.T) {
	step := newDayStep(7)

	epoch := NewDateValue(time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, step.OnStep(epoch))
	assert.True(t, step.OnStep(NewDateValue(time.Date(1970, time.January, 8, 0, 0, 0, 0, time.UTC))))
	assert.False(t, step.OnStep(NewDateValue(time.Date(1970, time.January, 5, 0, 0, 0, 0, time.UTC))))

	floored := step.Floor(NewDateValue(time.Date(1970, time.January, 5, 0, 0, 0, 0, time.UTC)))
	assert.Zero(t, floored.Compare(epoch))

	ceiled := step.Ceil(NewDateValue(time.Date(1970, time.January, 5, 0, 0, 0, 0, time.UTC)))
	assert.Zero(t, ceiled.Compare(NewDateValue(time.Date(1970, time.January, 8, 0, 0, 0, 0, time.UTC))))

	// grids cross the epoch without truncation artifacts
	floored = step.Floor(NewDateValue(time.Date(1969, time.December, 30, 0, 0, 0, 0, time.UTC)))
	assert.Zero(t, floored.Compare(NewDateValue(time.Date(1969, time.December, 25, 0, 0, 0, 0, time.UTC))))
}

// TestStep_Bytes tests the wire form round trip of steps.
func TestStep_Bytes(t *testing.T) {
	step, err := NewStepWithOrigin(IntValue(5), IntValue(2))
	require.NoError(t, err)

	restoredStep, consumedBytes, err := StepFromBytes(step.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(step.Bytes()), consumedBytes)
	assert.Equal(t, step.Amount(), restoredStep.Amount())
	assert.Equal(t, step.Origin(), restoredStep.Origin())
}
